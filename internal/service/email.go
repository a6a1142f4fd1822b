package service

import (
	"gopkg.in/gomail.v2"
)

// MailSender sends messages over an already-open SMTP connection. Batch
// senders keep one connection for the whole batch and must Close it on every
// exit path.
type MailSender interface {
	Send(to, subject, body string) error
	Close() error
}

type EmailService interface {
	// Dial opens a connection for a batch of sends.
	Dial() (MailSender, error)
	// Send delivers a single message over a short-lived connection.
	Send(to, subject, body string) error
}

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) dialer() *gomail.Dialer {
	return gomail.NewDialer(s.host, s.port, s.username, s.password)
}

func (s *emailService) message(to, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return m
}

func (s *emailService) Dial() (MailSender, error) {
	sc, err := s.dialer().Dial()
	if err != nil {
		return nil, err
	}
	return &smtpSender{svc: s, sc: sc}, nil
}

func (s *emailService) Send(to, subject, body string) error {
	return s.dialer().DialAndSend(s.message(to, subject, body))
}

type smtpSender struct {
	svc *emailService
	sc  gomail.SendCloser
}

func (s *smtpSender) Send(to, subject, body string) error {
	return gomail.Send(s.sc, s.svc.message(to, subject, body))
}

func (s *smtpSender) Close() error {
	return s.sc.Close()
}
