package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (s *SMTPEmailService) SendWelcomeEmail(to, displayName, accountNumber string) error {
	subject := "Welcome to GasTrack"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>Your customer account has been created.</p>
			<p>Your account number is <strong>%s</strong>. Please quote it when contacting us.</p>
			<p>You can open and track service requests from your account at any time.</p>
		</body>
		</html>
	`, displayName, accountNumber)

	plainBody := fmt.Sprintf(`
Welcome, %s!

Your customer account has been created.

Your account number is %s. Please quote it when contacting us.

You can open and track service requests from your account at any time.
	`, displayName, accountNumber)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) NotifyUrgentRequest(requestID uint, requestType, address string) error {
	subject := fmt.Sprintf("URGENT: %s reported (request #%d)", requestType, requestID)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Urgent service request</h2>
			<p>A <strong>%s</strong> was reported at:</p>
			<p>%s</p>
			<p>Request #%d requires immediate dispatch.</p>
		</body>
		</html>
	`, requestType, address, requestID)

	plainBody := fmt.Sprintf(`
Urgent service request

A %s was reported at:
%s

Request #%d requires immediate dispatch.
	`, requestType, address, requestID)

	// Urgent notifications go to the operations inbox, which is the
	// configured from-address by convention.
	return s.sendEmail(s.config.FromAddress, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) NotifyCommentAdded(to string, requestID uint, authorName string) error {
	subject := fmt.Sprintf("New comment on your service request #%d", requestID)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New comment on request #%d</h2>
			<p><strong>%s</strong> commented on your service request.</p>
			<p>Log in to your account to read it and reply.</p>
		</body>
		</html>
	`, requestID, authorName)

	plainBody := fmt.Sprintf(`
New comment on request #%d

%s commented on your service request.

Log in to your account to read it and reply.
	`, requestID, authorName)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// NoopEmailService is used when mail is disabled in configuration.
type NoopEmailService struct{}

func (NoopEmailService) SendWelcomeEmail(to, displayName, accountNumber string) error { return nil }

func (NoopEmailService) NotifyUrgentRequest(requestID uint, requestType, address string) error {
	return nil
}

func (NoopEmailService) NotifyCommentAdded(to string, requestID uint, authorName string) error {
	return nil
}
