package mailer

import (
	"fmt"
	"nanomed-service/internal/app/drivers/mailer"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/exceptions"
	"net/smtp"
)

type mailerService struct {
	Client *mailer.SMTPClient
}

func NewMailerService(client *mailer.SMTPClient) MailerService {
	return &mailerService{
		Client: client,
	}
}

func (svc *mailerService) SendEmail(to, subject, body string) error {
	from := svc.Client.EmailSender
	msg := []byte(fmt.Sprintf(constvars.EmailBasicMessageFormat, to, subject, body))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err := smtp.SendMail(addr, svc.Client.Auth, from, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}
