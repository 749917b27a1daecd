package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/lambriz/order-api/internal/order/entity"
	"github.com/lambriz/order-api/internal/pkg/goerror"
	"github.com/lambriz/order-api/internal/pkg/instrument"
	"github.com/lambriz/order-api/internal/pkg/mail"
)

type fakeMail struct {
	err  error
	sent []mail.Message
}

func (f *fakeMail) Send(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMail) Close() error { return nil }

func TestDeliver_OK(t *testing.T) {
	client := &fakeMail{}
	m := New(client, instrument.NewNoop(), "shop@example.com", "ops@example.com")

	err := m.Deliver(context.Background(), entity.Notification{
		Subject:  "Новая заявка №1",
		TextBody: "text",
		HTMLBody: "<p>html</p>",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.sent) != 1 {
		t.Fatalf("sent = %d, want 1", len(client.sent))
	}
	msg := client.sent[0]
	if msg.From != "shop@example.com" {
		t.Errorf("from = %q", msg.From)
	}
	if len(msg.To) != 1 || msg.To[0] != "ops@example.com" {
		t.Errorf("to = %v", msg.To)
	}
	if msg.Subject != "Новая заявка №1" || msg.TextBody != "text" || msg.HTMLBody != "<p>html</p>" {
		t.Errorf("message = %+v", msg)
	}
}

func TestDeliver_MissingRecipient(t *testing.T) {
	client := &fakeMail{}
	m := New(client, instrument.NewNoop(), "shop@example.com", "")

	err := m.Deliver(context.Background(), entity.Notification{Subject: "s"})
	assertCode(t, err, goerror.CodeConfiguration)

	if len(client.sent) != 0 {
		t.Error("nothing should be sent without a recipient")
	}
}

func TestDeliver_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want goerror.Code
	}{
		{"missing credentials", mail.ErrSMTPNoCredentials, goerror.CodeConfiguration},
		{"missing recipients", mail.ErrSMTPNoRecipients, goerror.CodeConfiguration},
		{"missing sender", mail.ErrSMTPNoSender, goerror.CodeConfiguration},
		{"network failure", errors.New("dial tcp: connection refused"), goerror.CodeTransport},
		{"auth failure", errors.New("smtp auth: 535 authentication failed"), goerror.CodeTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(&fakeMail{err: tt.err}, instrument.NewNoop(), "shop@example.com", "ops@example.com")
			err := m.Deliver(context.Background(), entity.Notification{Subject: "s"})
			assertCode(t, err, tt.want)
		})
	}
}

func assertCode(t *testing.T, err error, want goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error type = %T (%v)", err, err)
	}
	if gerr.Code() != want {
		t.Errorf("code = %v, want %v", gerr.Code(), want)
	}
}
