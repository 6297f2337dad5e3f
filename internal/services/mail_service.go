package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"time"
)

type IMailService interface {
	SendSubscriptionActivated(to, name, planName string, periodEnd time.Time) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // 587 (STARTTLS)
	Username string
	Password string
	From     string
	FromName string

	AppName string
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	htmlTpl := template.Must(template.New("activatedHTML").Parse(activatedHTMLTemplate))
	textTpl := template.Must(template.New("activatedText").Parse(activatedTextTemplate))

	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: htmlTpl,
		textTpl: textTpl,
	}, nil
}

// NewLogMailService returns a mailer that only logs. Used when SMTP
// credentials are not configured so activation still succeeds locally.
func NewLogMailService() IMailService {
	return &logMailService{}
}

type logMailService struct{}

func (l *logMailService) SendSubscriptionActivated(to, name, planName string, periodEnd time.Time) error {
	log.Printf("mail (not configured): subscription activated for %s (%s), plan %s, until %s",
		name, to, planName, periodEnd.Format(time.RFC3339))
	return nil
}

type activatedMailData struct {
	Name      string
	PlanName  string
	PeriodEnd string
	AppName   string
	Year      int
}

const activatedHTMLTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>Subscription active</title></head>
<body style="font-family:Arial,sans-serif;color:#1a202c;">
  <h1>You're all set, {{.Name}}</h1>
  <p>Your payment was received and your <strong>{{.PlanName}}</strong> subscription is now active.</p>
  <p>You have full access to every course until <strong>{{.PeriodEnd}}</strong>.</p>
  <p style="color:#718096;font-size:13px;">&copy; {{.Year}} {{.AppName}}</p>
</body>
</html>`

const activatedTextTemplate = `You're all set, {{.Name}}

Your payment was received and your {{.PlanName}} subscription is now active.
You have full access to every course until {{.PeriodEnd}}.

- {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) SendSubscriptionActivated(to, name, planName string, periodEnd time.Time) error {
	data := activatedMailData{
		Name:      name,
		PlanName:  planName,
		PeriodEnd: periodEnd.Format("2 January 2006"),
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	}

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}

	return s.send(to, "Your subscription is active", hb.String(), tb.String())
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	// STARTTLS path (port 587); smtp.SendMail negotiates TLS when the
	// server advertises it.
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes())
}
