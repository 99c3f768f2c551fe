package mailer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"golang.org/x/time/rate"
)

var (
	// ErrRateLimited возвращается при отмене ожидания слота лимитера
	ErrRateLimited = errors.New("mailer: rate limiter wait cancelled")

	// ErrSendFailed возвращается при ошибке SMTP отправки
	ErrSendFailed = errors.New("mailer: failed to send message")
)

// Message письмо с опциональным PNG вложением (QR-код пропуска)
type Message struct {
	To         string
	Subject    string
	Body       string // plain text
	Attachment []byte // PNG, может быть nil
	AttachName string
}

// Mailer отправляет почту через SMTP с ограничением исходящего потока
type Mailer struct {
	host     string
	port     int
	from     string
	password string
	limiter  *rate.Limiter
}

// New создает отправителя. ratePerMinute ограничивает число писем в минуту
func New(host string, port int, from, password string, ratePerMinute int) *Mailer {
	if ratePerMinute <= 0 {
		ratePerMinute = 10
	}

	return &Mailer{
		host:     host,
		port:     port,
		from:     from,
		password: password,
		limiter:  rate.NewLimiter(rate.Limit(float64(ratePerMinute)/60.0), ratePerMinute),
	}
}

// Send отправляет письмо, дожидаясь слота лимитера
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	raw := m.buildMIME(msg)
	if err := smtp.SendMail(addr, auth, m.from, []string{msg.To}, raw); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	return nil
}

// buildMIME собирает multipart/mixed сообщение с текстовой частью и PNG вложением
func (m *Mailer) buildMIME(msg Message) []byte {
	var b strings.Builder

	boundary := "vms-mail-boundary"

	b.WriteString(fmt.Sprintf("From: %s\r\n", m.from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")

	if msg.Attachment == nil {
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
		b.WriteString("\r\n")
		b.WriteString(msg.Body)
		return []byte(b.String())
	}

	b.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%s\r\n", boundary))
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")

	attachName := msg.AttachName
	if attachName == "" {
		attachName = "qr-pass.png"
	}

	b.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	b.WriteString("Content-Type: image/png\r\n")
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	b.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n", attachName))
	b.WriteString("\r\n")

	encoded := base64.StdEncoding.EncodeToString(msg.Attachment)
	// RFC 2045: строки base64 не длиннее 76 символов
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return []byte(b.String())
}
