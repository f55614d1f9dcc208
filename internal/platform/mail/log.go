package mail

import (
	"context"
	"log/slog"

	"community_backend/internal/feature/user/usecase"
)

// LogMailSender はメールを実際には送らず、内容をログに出力します。
// ローカル開発などSES認証情報が無い環境向けのフォールバックです。
type LogMailSender struct{}

var _ usecase.MailSender = LogMailSender{}

// Send logs the message instead of delivering it.
func (LogMailSender) Send(_ context.Context, to, subject, body string) error {
	slog.Info("mail (not delivered, log only)", "to", to, "subject", subject, "body", body)
	return nil
}
