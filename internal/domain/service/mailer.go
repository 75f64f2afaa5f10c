package service

import "context"

// Mailer is the email delivery collaborator. Delivery itself is outside the
// core; the portal only hands over the verification link material.
type Mailer interface {
	// SendVerificationEmail delivers the one-time verification token to the
	// given address.
	SendVerificationEmail(ctx context.Context, email, token string) error
}
