package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lambriz/order-api/internal/order/entity"
	"github.com/lambriz/order-api/internal/pkg/clock"
	"github.com/lambriz/order-api/internal/pkg/goerror"
	"github.com/lambriz/order-api/internal/pkg/instrument"
)

type fakeMailer struct {
	sent []entity.Notification
	err  error
}

func (f *fakeMailer) Deliver(_ context.Context, n entity.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, n)
	return nil
}

func newTestUsecase(m RepoMailer) *Usecase {
	return NewOrder(Dependency{
		Mailer:     m,
		Clock:      clock.Fixed{T: time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)},
		Instrument: instrument.NewNoop(),
	})
}

func TestSubmit_Order(t *testing.T) {
	mailer := &fakeMailer{}
	uc := newTestUsecase(mailer)

	err := uc.Submit(context.Background(), []byte(`{"id":"9","items":[{"title":"Шкаф","price":100}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(mailer.sent))
	}
	if mailer.sent[0].Subject != "Новая заявка №9" {
		t.Errorf("subject = %q", mailer.sent[0].Subject)
	}
}

func TestSubmit_EmptyBodyStillNotifies(t *testing.T) {
	mailer := &fakeMailer{}
	uc := newTestUsecase(mailer)

	if err := uc.Submit(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(mailer.sent))
	}
	if mailer.sent[0].Subject != "Новая заявка №-" {
		t.Errorf("subject = %q", mailer.sent[0].Subject)
	}
}

func TestSubmit_Feedback(t *testing.T) {
	mailer := &fakeMailer{}
	uc := newTestUsecase(mailer)

	if err := uc.Submit(context.Background(), []byte(`{"requestType":"feedback","message":"привет"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mailer.sent[0].Subject != "Обратная связь" {
		t.Errorf("subject = %q", mailer.sent[0].Subject)
	}
}

func TestSubmit_InvalidJSON(t *testing.T) {
	mailer := &fakeMailer{}
	uc := newTestUsecase(mailer)

	err := uc.Submit(context.Background(), []byte("{broken"))
	if err == nil {
		t.Fatal("expected error")
	}

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error type = %T", err)
	}
	if gerr.Code() != goerror.CodeParse {
		t.Errorf("code = %v, want parse", gerr.Code())
	}
	if len(mailer.sent) != 0 {
		t.Errorf("no mail should be sent on parse failure")
	}
}

func TestSubmit_DeliveryFailurePropagates(t *testing.T) {
	wantErr := goerror.NewTransport(errors.New("relay refused"))
	uc := newTestUsecase(&fakeMailer{err: wantErr})

	err := uc.Submit(context.Background(), []byte(`{}`))
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}
