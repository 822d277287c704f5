package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"secinstall/internal/models"
)

type EmailService interface {
	SendWelcomeEmail(email, name string) error
	SendInquiryNotification(q *models.Inquiry) error
}

type emailService struct {
	dialer      *gomail.Dialer
	from        string
	officeEmail string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail, officeEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer:      dialer,
		from:        fromEmail,
		officeEmail: officeEmail,
	}
}

func (s *emailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your SecInstall account")

	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your SecInstall back-office account has been created.</p>
		<p>Best regards,<br>The SecInstall Team</p>
	`, name)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

// SendInquiryNotification tells the office inbox about a fresh public
// submission so somebody picks it up.
func (s *emailService) SendInquiryNotification(q *models.Inquiry) error {
	if s.officeEmail == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.officeEmail)
	m.SetHeader("Subject", fmt.Sprintf("New inquiry %s (%s)", q.Reference, q.ServiceType))

	body := fmt.Sprintf(`
		<h3>New inquiry received</h3>
		<p><strong>%s</strong> &lt;%s&gt; %s</p>
		<p>Service: %s</p>
		<p>Address: %s</p>
		<p>%s</p>
	`, q.Name, q.Email, q.Phone, q.ServiceType, q.Address, q.Message)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send inquiry notification: %w", err)
	}
	return nil
}
