package mailer

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"
)

// Mailer sends notification emails to class-coordinator contacts
type Mailer interface {
	SendBookingStatusNotice(toEmail, toName, studentName, facilityName, date, slot, status string) error
	SendViolationNotice(toEmail, toName, studentName, reason, punishment string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

type smtpMailer struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewMailer creates a Mailer backed by go-mail
func NewMailer(config SMTPConfig, logger zerolog.Logger) Mailer {
	return &smtpMailer{
		config: config,
		logger: logger,
	}
}

// send delivers one HTML message; when SMTP is not configured the message
// is logged and skipped so development setups keep working.
func (m *smtpMailer) send(toEmail, toName, subject, body string) error {
	if m.config.Host == "" || m.config.Username == "" {
		m.logger.Warn().
			Str("toEmail", toEmail).
			Str("subject", subject).
			Msg("SMTP not configured - notification email not sent")
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.AddToFormat(toName, toEmail); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	client, err := mail.NewClient(m.config.Host,
		mail.WithPort(m.config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.config.Username),
		mail.WithPassword(m.config.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	m.logger.Info().Str("toEmail", toEmail).Str("subject", subject).Msg("Notification email sent")
	return nil
}

// SendBookingStatusNotice notifies a class coordinator that a booking
// moved to a new status
func (m *smtpMailer) SendBookingStatusNotice(toEmail, toName, studentName, facilityName, date, slot, status string) error {
	subject := fmt.Sprintf("Booking %s - %s", status, facilityName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<p>Hello %s,</p>
			<p>The booking request by %s for <strong>%s</strong> on %s (%s) is now <strong>%s</strong>.</p>
			<p>Campus360</p>
		</body>
		</html>`, toName, studentName, facilityName, date, slot, status)
	return m.send(toEmail, toName, subject, body)
}

// SendViolationNotice notifies a class coordinator about a recorded
// disciplinary violation
func (m *smtpMailer) SendViolationNotice(toEmail, toName, studentName, reason, punishment string) error {
	subject := fmt.Sprintf("Disciplinary violation recorded - %s", studentName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<p>Hello %s,</p>
			<p>A disciplinary violation has been recorded for <strong>%s</strong>.</p>
			<p>Reason: %s<br/>Punishment: %s</p>
			<p>Campus360</p>
		</body>
		</html>`, toName, studentName, reason, punishment)
	return m.send(toEmail, toName, subject, body)
}
