package mail

import (
	"context"
	"crypto/rand"
	"crypto/tls"
	"encoding/hex"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"
)

var (
	// ErrSMTPHostPortRequired is returned when Host/Port are missing.
	ErrSMTPHostPortRequired = errors.New("smtp host and port are required")
	// ErrSMTPNoCredentials is returned when the account or its password is not configured.
	ErrSMTPNoCredentials = errors.New("smtp account and password are not configured")
	// ErrSMTPNoRecipients is returned when the message has no recipients.
	ErrSMTPNoRecipients = errors.New("no recipients provided")
	// ErrSMTPNoSender is returned when both Message.From and the configured default From are empty.
	ErrSMTPNoSender = errors.New("no sender provided")
)

// Security selects how the SMTP session is established.
type Security int

const (
	// SecurityImplicitTLS opens a TLS connection directly and authenticates over it.
	SecurityImplicitTLS Security = iota
	// SecuritySTARTTLS opens a plaintext connection and upgrades it with STARTTLS
	// before authenticating.
	SecuritySTARTTLS
)

// DefaultTimeout bounds connection establishment and session I/O.
const DefaultTimeout = 20 * time.Second

// SMTP is a Mail implementation that opens an authenticated session per send.
type SMTP struct {
	addr        string
	host        string
	username    string
	password    string
	defaultFrom string
	security    Security
	timeout     time.Duration
}

// SMTPConfig configures the SMTP implementation.
type SMTPConfig struct {
	// Host is the SMTP server hostname.
	Host string
	// Port is the SMTP server port.
	Port int
	// Username is the SMTP authentication username.
	Username string
	// Password is the SMTP authentication password.
	Password string
	// From is the default sender when Message.From is empty.
	From string
	// Security selects implicit TLS or STARTTLS session establishment.
	Security Security
	// Timeout bounds the session; DefaultTimeout when zero.
	Timeout time.Duration
}

// NewSMTP constructs an SMTP mail sender. Missing credentials are not an error
// here: they are detected on Send, before any connection is attempted.
func NewSMTP(cfg SMTPConfig) (*SMTP, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, ErrSMTPHostPortRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &SMTP{
		addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		host:        cfg.Host,
		username:    cfg.Username,
		password:    cfg.Password,
		defaultFrom: cfg.From,
		security:    cfg.Security,
		timeout:     timeout,
	}, nil
}

// Send delivers a message over an authenticated SMTP session. The session is
// opened and torn down per call; there is no retry.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Configuration problems must surface before any network I/O.
	if s.username == "" || s.password == "" {
		return ErrSMTPNoCredentials
	}
	if len(msg.To) == 0 {
		return ErrSMTPNoRecipients
	}

	from := msg.From
	if from == "" {
		from = s.defaultFrom
	}
	if from == "" {
		return ErrSMTPNoSender
	}

	raw := buildRaw(from, msg)

	client, err := s.dial()
	if err != nil {
		return err
	}
	defer client.Close()

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	for _, rcpt := range msg.To {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp rcpt to: %w", err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(raw)); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}

	return client.Quit()
}

// Close implements io.Closer for interface compatibility.
func (s *SMTP) Close() error {
	return nil
}

// dial establishes the session per the configured security mode. Both modes
// share one bounded dialer so a dead relay cannot block a request forever.
func (s *SMTP) dial() (*smtp.Client, error) {
	dialer := &net.Dialer{Timeout: s.timeout}
	tlsConfig := &tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}

	if s.security == SecurityImplicitTLS {
		conn, err := tls.DialWithDialer(dialer, "tcp", s.addr, tlsConfig)
		if err != nil {
			return nil, fmt.Errorf("smtp dial tls: %w", err)
		}
		_ = conn.SetDeadline(time.Now().Add(s.timeout))

		client, err := smtp.NewClient(conn, s.host)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("smtp handshake: %w", err)
		}
		return client, nil
	}

	conn, err := dialer.Dial("tcp", s.addr)
	if err != nil {
		return nil, fmt.Errorf("smtp dial: %w", err)
	}
	_ = conn.SetDeadline(time.Now().Add(s.timeout))

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("smtp handshake: %w", err)
	}

	if err := client.StartTLS(tlsConfig); err != nil {
		client.Close()
		return nil, fmt.Errorf("smtp starttls: %w", err)
	}

	return client, nil
}

func buildRaw(from string, msg Message) string {
	body, contentType := buildBody(msg)

	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", strings.Join(msg.To, ", ")),
		fmt.Sprintf("Subject: %s", mime.QEncoding.Encode("utf-8", msg.Subject)),
		"MIME-Version: 1.0",
		fmt.Sprintf("Content-Type: %s", contentType),
	}

	return strings.Join(headers, "\r\n") + "\r\n\r\n" + body
}

func buildBody(msg Message) (body string, contentType string) {
	if msg.HTMLBody != "" && msg.TextBody != "" {
		boundary := multipartBoundary()
		var sb strings.Builder
		sb.WriteString("This is a multipart message in MIME format.\r\n")
		fmt.Fprintf(&sb, "--%s\r\n", boundary)
		sb.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
		sb.WriteString("\r\n")
		sb.WriteString(msg.TextBody)
		sb.WriteString("\r\n")
		fmt.Fprintf(&sb, "--%s\r\n", boundary)
		sb.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		sb.WriteString("\r\n")
		sb.WriteString(msg.HTMLBody)
		sb.WriteString("\r\n")
		fmt.Fprintf(&sb, "--%s--", boundary)
		return sb.String(), fmt.Sprintf("multipart/alternative; boundary=%s", boundary)
	}

	if msg.HTMLBody != "" {
		return msg.HTMLBody, "text/html; charset=UTF-8"
	}

	return msg.TextBody, "text/plain; charset=UTF-8"
}

func multipartBoundary() string {
	var b [12]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "order-api-boundary-fallback"
	}
	return "order-api-boundary-" + hex.EncodeToString(b[:])
}
