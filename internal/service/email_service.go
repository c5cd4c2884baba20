package service

import (
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"github.com/David-iadg/consult-ia/internal/config"
	"github.com/David-iadg/consult-ia/internal/i18n"
	"github.com/David-iadg/consult-ia/internal/models"
)

const smtpDialTimeout = 15 * time.Second

// EmailService 联系表单通知邮件
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// Enabled 是否已启用邮件发送
func (s *EmailService) Enabled() bool {
	return s != nil && s.cfg != nil && s.cfg.Enabled
}

// SendContactNotification 通知站点管理员，回复地址设为访客邮箱
func (s *EmailService) SendContactNotification(submission *models.ContactSubmission, locale string) error {
	if !s.Enabled() {
		return ErrEmailServiceDisabled
	}
	to := strings.TrimSpace(s.cfg.NotifyTo)
	if to == "" || s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailServiceNotConfigured
	}
	if _, err := mail.ParseAddress(to); err != nil {
		return ErrInvalidEmail
	}

	subject, body := buildContactNotificationContent(submission, locale)
	msg := emailMessage{
		From:    formatAddress(s.cfg.From, s.cfg.FromName),
		To:      to,
		Subject: subject,
		Body:    body,
	}
	if _, err := mail.ParseAddress(submission.Email); err == nil {
		msg.ReplyTo = submission.Email
	}
	return normalizeEmailSendError(s.deliver(to, msg.Bytes()))
}

// deliver 按配置选择隐式 TLS、STARTTLS 或明文连接
func (s *EmailService) deliver(to string, raw []byte) error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	tlsCfg := &tls.Config{ServerName: s.cfg.Host}

	var conn net.Conn
	var err error
	dialer := &net.Dialer{Timeout: smtpDialTimeout}
	if s.cfg.UseSSL {
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, tlsCfg)
	} else {
		conn, err = dialer.Dial("tcp", addr)
	}
	if err != nil {
		return err
	}
	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer client.Close()

	if !s.cfg.UseSSL && s.cfg.UseTLS {
		if err := client.StartTLS(tlsCfg); err != nil {
			return err
		}
	}
	if s.cfg.Username != "" || s.cfg.Password != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
				return err
			}
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
	if _, err := w.Write(raw); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func buildContactNotificationContent(submission *models.ContactSubmission, locale string) (string, string) {
	normalized := i18n.NormalizeLocale(locale)
	if normalized == "" {
		normalized = i18n.DefaultLocale
	}
	subject := i18n.Sprintf(normalized, "email.contact_notification_title", submission.Subject)
	body := i18n.Sprintf(normalized, "email.contact_notification_body",
		submission.Name,
		submission.Email,
		submission.Subject,
		submission.Date.UTC().Format(time.RFC3339),
		submission.Message,
	)
	return subject, body
}

type emailMessage struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Bytes 纯文本 UTF-8 邮件，头部按 RFC 2047 编码
func (m emailMessage) Bytes() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.From)
	fmt.Fprintf(&b, "To: %s\r\n", m.To)
	if m.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", m.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", m.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(m.Body)
	return []byte(b.String())
}

func formatAddress(address, name string) string {
	if strings.TrimSpace(name) == "" {
		return address
	}
	return (&mail.Address{Name: name, Address: address}).String()
}

func normalizeEmailSendError(err error) error {
	if isEmailRecipientRejected(err) {
		return fmt.Errorf("%w: %v", ErrEmailRecipientRejected, err)
	}
	return err
}

var recipientRejectedHints = []string{
	"no such recipient",
	"no such user",
	"recipient not found",
	"recipient address rejected",
	"invalid recipient",
	"user unknown",
	"unknown user",
	"unknown mailbox",
	"mailbox unavailable",
}

// isEmailRecipientRejected 根据 SMTP 回复文本判断收件人被拒
func isEmailRecipientRejected(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(err.Error())
	for _, hint := range recipientRejectedHints {
		if strings.Contains(message, hint) {
			return true
		}
	}
	if !strings.Contains(message, "550") {
		return false
	}
	for _, hint := range []string{"recipient", "user", "mailbox", "address", "rcpt"} {
		if strings.Contains(message, hint) {
			return true
		}
	}
	return false
}
