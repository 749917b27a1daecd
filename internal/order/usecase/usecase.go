package usecase

import (
	"context"

	"github.com/lambriz/order-api/internal/order/entity"
	"github.com/lambriz/order-api/internal/pkg/clock"
	"github.com/lambriz/order-api/internal/pkg/instrument"
	"go.opentelemetry.io/otel/trace"
)

// RepoMailer delivers a rendered notification to the shop operators.
type RepoMailer interface {
	Deliver(ctx context.Context, n entity.Notification) error
}

type Dependency struct {
	Mailer     RepoMailer
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

type Usecase struct {
	mailer RepoMailer
	clock  clock.Clocker
	ins    instrument.Instrumentation
}

func NewOrder(dep Dependency) *Usecase {
	return &Usecase{
		mailer: dep.Mailer,
		clock:  dep.Clock,
		ins:    dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("order.usecase").Start(ctx, name)
}
