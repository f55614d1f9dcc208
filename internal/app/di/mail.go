// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"

	"community_backend/internal/feature/user/usecase"
	"community_backend/internal/platform/mail"
)

// NewMailSender creates a MailSender implementation.
// If SES credentials are configured, it returns an SES-backed implementation.
// Otherwise, it falls back to logging mails instead of delivering them.
func NewMailSender(ctx context.Context) usecase.MailSender {
	cfg := mail.LoadConfig()
	if !cfg.Enabled() {
		slog.Warn("SES credentials not set, mails will only be logged")
		return mail.LogMailSender{}
	}

	sender, err := mail.NewSESMailSender(ctx, cfg)
	if err != nil {
		slog.Warn("SES client setup failed, mails will only be logged", "error", err)
		return mail.LogMailSender{}
	}
	return sender
}
