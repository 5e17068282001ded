package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"os"
	"strconv"
	"strings"
	"time"
)

type IMailService interface {
	// SendResetCode mails a one-time password-reset code. The code is short
	// lived; the email never contains a login link.
	SendResetCode(to, code string) error
	SendNotice(to, subject, body string) error
}

// SMTPConfig is read once at startup from the SMTP_* environment.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseSSL   bool // implicit TLS on 465, otherwise STARTTLS when offered

	AppName string
}

func SMTPConfigFromEnv() SMTPConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port <= 0 {
		port = 587
	}
	appName := os.Getenv("APP_NAME")
	if appName == "" {
		appName = "FitCore"
	}
	return SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		FromName: os.Getenv("SMTP_FROM_NAME"),
		UseSSL:   port == 465,
		AppName:  appName,
	}
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("mailHTML").Parse(mailHTMLTemplate)),
		textTpl: template.Must(template.New("mailText").Parse(mailTextTemplate)),
	}
}

type mailData struct {
	Title   string
	Intro   string
	Code    string
	AppName string
	Year    int
}

const mailHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f4f4f7; color: #1f2933; font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .container { max-width: 560px; margin: 32px auto; background: #ffffff; border-radius: 10px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.08); }
    .header { padding: 24px 28px; background: #111827; color: #f9fafb; font-weight: 700; font-size: 20px; letter-spacing: 0.5px; }
    .body { padding: 28px; }
    h1 { margin: 0 0 12px; font-size: 22px; }
    p { margin: 0 0 16px; line-height: 1.6; color: #3e4c59; }
    .code { display: inline-block; margin: 16px 0; padding: 14px 28px; background: #f0f4ff; border: 1px solid #c7d2fe; border-radius: 8px; font-size: 28px; font-weight: 700; letter-spacing: 8px; color: #1d4ed8; }
    .footer { padding: 18px 28px; color: #9aa5b1; font-size: 12px; border-top: 1px solid #e4e7eb; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">{{.AppName}}</div>
    <div class="body">
      <h1>{{.Title}}</h1>
      <p>{{.Intro}}</p>
      {{if .Code}}<div class="code">{{.Code}}</div>{{end}}
    </div>
    <div class="footer">© {{.Year}} {{.AppName}}. All rights reserved.</div>
  </div>
</body>
</html>`

const mailTextTemplate = `{{.Title}}

{{.Intro}}
{{if .Code}}
Your code: {{.Code}}
{{end}}
-- {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) SendResetCode(to, code string) error {
	subject := "Your password reset code"
	html, text, err := s.render(mailData{
		Title:   subject,
		Intro:   "Use the code below to reset your password. It expires in 15 minutes. If you did not request a reset, ignore this email.",
		Code:    code,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

func (s *smtpMailService) SendNotice(to, subject, body string) error {
	html, text, err := s.render(mailData{
		Title:   subject,
		Intro:   body,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

func (s *smtpMailService) render(data mailData) (string, string, error) {
	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.fromHeader())
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

	var client *smtp.Client
	if s.cfg.UseSSL {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		client, err = smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			conn.Close()
			return err
		}
	} else {
		dialer := &net.Dialer{Timeout: 10 * time.Second}
		conn, err := dialer.Dial("tcp", addr)
		if err != nil {
			return err
		}
		client, err = smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			conn.Close()
			return err
		}
		if ok, _ := client.Extension("STARTTLS"); ok {
			tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
			if err := client.StartTLS(tlsCfg); err != nil {
				client.Close()
				return err
			}
		}
	}
	defer client.Quit()

	if s.cfg.Username != "" {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) fromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", name, s.cfg.From)
}
