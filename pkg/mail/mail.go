package mail

import (
	"smarttech/config"

	"gopkg.in/gomail.v2"
)

// Mailer 邮件发送接口
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	conf *config.MailConfig
}

var _ Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(conf *config.MailConfig) *SMTPMailer {
	return &SMTPMailer{conf: conf}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.conf.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.conf.Host, m.conf.Port, m.conf.Username, m.conf.Password)
	return d.DialAndSend(msg)
}
