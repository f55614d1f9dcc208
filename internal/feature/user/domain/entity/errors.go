package entity

import "errors"

// ErrCertificationCodeMismatch indicates that a presented certification code
// does not match the one issued at registration. The user's state is never
// changed when this error is returned.
var ErrCertificationCodeMismatch = errors.New("certification code does not match")
