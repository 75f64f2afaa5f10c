// Package mail contains Mailer implementations. The portal core only hands
// over verification material; actual delivery is an infrastructure concern.
package mail

import (
	"context"
	"log/slog"

	"caregate/internal/domain/service"
)

// logMailer writes outgoing mail to the structured log instead of an SMTP
// relay. Used in development and as the default when no relay is configured.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a Mailer that logs instead of sending.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

// SendVerificationEmail logs the verification token for the given address.
func (m *logMailer) SendVerificationEmail(ctx context.Context, email, token string) error {
	m.logger.InfoContext(ctx, "[Mail] Verification email",
		slog.String("to", email),
		slog.String("token", token),
	)

	return nil
}
