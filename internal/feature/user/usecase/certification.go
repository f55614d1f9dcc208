package usecase

import (
	"context"
	"fmt"
)

// defaultBaseURL は認証リンクのベースURLが未設定の場合に使用されます。
const defaultBaseURL = "http://localhost:8080"

// CertificationSender はアカウント有効化メールの作成と送信を担当します。
type CertificationSender struct {
	mail    MailSender
	baseURL string
}

// NewCertificationSender はCertificationSenderの新しいインスタンスを生成します。
// baseURLが空の場合はローカル開発用のデフォルトを使用します。
func NewCertificationSender(mail MailSender, baseURL string) *CertificationSender {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &CertificationSender{mail: mail, baseURL: baseURL}
}

// SendCertificationEmail は認証リンクを含むメールを指定アドレスに送信します。
func (s *CertificationSender) SendCertificationEmail(ctx context.Context, email string, userID uint, code string) error {
	link := fmt.Sprintf("%s/api/users/%d/verify?certificationCode=%s", s.baseURL, userID, code)
	subject := "Please certify your email address"
	body := fmt.Sprintf("Please click the following link to certify your email address.\n%s", link)
	return s.mail.Send(ctx, email, subject, body)
}
