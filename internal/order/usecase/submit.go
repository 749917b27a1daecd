package usecase

import (
	"context"
	"log/slog"

	"github.com/lambriz/order-api/internal/order/entity"
	"github.com/lambriz/order-api/internal/pkg/goerror"
)

// Submit decodes a raw submission payload, renders the matching notification
// and hands it to the mailer. The payload is accepted as-is: missing fields
// fall back to placeholders, so only malformed JSON or a delivery failure
// produces an error.
func (s *Usecase) Submit(ctx context.Context, raw []byte) error {
	ctx, span := s.startSpan(ctx, "Submit")
	defer span.End()

	sub, err := entity.DecodeSubmission(raw, s.clock)
	if err != nil {
		slog.ErrorContext(ctx, "failed to decode submission", "error", err)
		return goerror.NewParse(err)
	}

	var n entity.Notification
	switch sub.Kind {
	case entity.KindFeedback:
		n = renderFeedback(sub.Feedback)
	default:
		n = renderOrder(sub.Order)
	}

	if err := s.mailer.Deliver(ctx, n); err != nil {
		slog.ErrorContext(ctx, "failed to deliver notification", "subject", n.Subject, "error", err)
		return err
	}

	slog.InfoContext(ctx, "notification delivered", "subject", n.Subject)
	return nil
}
