package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WelcomeEmailData holds data for the welcome email sent when an admin
// creates a user account.
type WelcomeEmailData struct {
	Email    string
	Name     string
	Role     string
	SiteName string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendWelcome(ctx context.Context, data *WelcomeEmailData) error
}
