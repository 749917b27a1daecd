// Package mailer adapts the generic SMTP client to order notifications with a
// fixed sender and recipient taken from configuration.
package mailer

import (
	"context"
	"errors"

	"github.com/lambriz/order-api/internal/order/entity"
	"github.com/lambriz/order-api/internal/pkg/goerror"
	"github.com/lambriz/order-api/internal/pkg/instrument"
	"github.com/lambriz/order-api/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

type Mailer struct {
	client mail.Mail
	ins    instrument.Instrumentation
	from   string
	to     string
}

func New(client mail.Mail, ins instrument.Instrumentation, from, to string) *Mailer {
	return &Mailer{client: client, ins: ins, from: from, to: to}
}

// Deliver sends the notification to the configured operator mailbox. Missing
// account, password or recipient settings surface as a configuration error
// without touching the network.
func (m *Mailer) Deliver(ctx context.Context, n entity.Notification) error {
	ctx, span := m.ins.Tracer("order.outbound.mailer").Start(ctx, "Deliver")
	defer span.End()

	if m.to == "" {
		return goerror.NewConfiguration("SMTP account, password or recipient is not configured")
	}

	err := m.client.Send(ctx, mail.Message{
		From:     m.from,
		To:       []string{m.to},
		Subject:  n.Subject,
		TextBody: n.TextBody,
		HTMLBody: n.HTMLBody,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		if errors.Is(err, mail.ErrSMTPNoCredentials) ||
			errors.Is(err, mail.ErrSMTPNoRecipients) ||
			errors.Is(err, mail.ErrSMTPNoSender) {
			return goerror.NewConfiguration("SMTP account, password or recipient is not configured")
		}
		return goerror.NewTransport(err)
	}

	return nil
}
