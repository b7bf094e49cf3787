package email

import (
	"crypto/tls"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

var ErrEmailServiceNotConfigured = errors.New("email service not configured")

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	UseTLS      bool
	UseSSL      bool
	FromAddress string
	BaseURL     string // base URL for links embedded in emails
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dialer.SSL = config.UseSSL
	if config.UseTLS {
		dialer.TLSConfig = &tls.Config{ServerName: config.Host}
	}

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendActivationEmail(to, token string) error {
	activationURL := fmt.Sprintf("%s/activate?token=%s", s.config.BaseURL, token)

	subject := "Activate Your Account"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome!</h2>
			<p>Please activate your account by clicking the link below:</p>
			<p><a href="%s">Activate Account</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link will expire in 24 hours.</p>
			<p>If you didn't create an account, please ignore this email.</p>
		</body>
		</html>
	`, activationURL, activationURL)

	plainBody := fmt.Sprintf(`
Welcome!

Please activate your account by visiting:
%s

This link will expire in 24 hours.

If you didn't create an account, please ignore this email.
	`, activationURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendEmailConfirmation(to, token string) error {
	confirmURL := fmt.Sprintf("%s/confirm-email?token=%s", s.config.BaseURL, token)

	subject := "Confirm Your New Email Address"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Email Change Requested</h2>
			<p>Please confirm this address as the new email for your account:</p>
			<p><a href="%s">Confirm Email Address</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>If you didn't request this change, please ignore this email.</p>
		</body>
		</html>
	`, confirmURL, confirmURL)

	plainBody := fmt.Sprintf(`
Email Change Requested

Please confirm this address as the new email for your account by visiting:
%s

If you didn't request this change, please ignore this email.
	`, confirmURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPasswordResetEmail(to, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.config.BaseURL, token)

	subject := "Reset Your Password"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password Reset Request</h2>
			<p>We received a request to reset your password. Click the link below to reset it:</p>
			<p><a href="%s">Reset Password</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link will expire in 30 minutes.</p>
			<p>If you didn't request a password reset, please ignore this email and your password will remain unchanged.</p>
		</body>
		</html>
	`, resetURL, resetURL)

	plainBody := fmt.Sprintf(`
Password Reset Request

We received a request to reset your password. Visit the following URL to reset it:
%s

This link will expire in 30 minutes.

If you didn't request a password reset, please ignore this email and your password will remain unchanged.
	`, resetURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPasswordChangedEmail(to string) error {
	subject := "Password Changed Successfully"
	htmlBody := `
		<html>
		<body>
			<h2>Password Changed</h2>
			<p>Your password has been successfully changed.</p>
			<p>If you didn't make this change, please contact support immediately.</p>
		</body>
		</html>
	`

	plainBody := `
Password Changed

Your password has been successfully changed.

If you didn't make this change, please contact support immediately.
	`

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTestEmail(to string) error {
	subject := "Helpdesk Test Email"
	body := "This is a test email confirming your SMTP settings are working."
	return s.sendEmail(to, subject, "<p>"+body+"</p>", body)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
