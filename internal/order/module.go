// Package order receives order and feedback submissions over HTTP and relays
// them to the shop operators by email.
package order

import (
	"github.com/lambriz/order-api/internal/order/inbound"
	"github.com/lambriz/order-api/internal/order/outbound/mailer"
	"github.com/lambriz/order-api/internal/order/usecase"
	"github.com/lambriz/order-api/internal/pkg/clock"
	"github.com/lambriz/order-api/internal/pkg/config"
	"github.com/lambriz/order-api/internal/pkg/instrument"
	"github.com/lambriz/order-api/internal/pkg/mail"
	"github.com/lambriz/order-api/internal/pkg/router"
	"github.com/samber/lo"
)

type Dependency struct {
	Config     config.Config
	Instrument instrument.Instrumentation
	Clock      clock.Clocker
	Router     *router.Router
	Mail       mail.Mail
}

func New(dep Dependency) error {
	// Sender and recipient fall back to the SMTP account itself, which suits
	// providers that only relay mail from the authenticated address.
	account := dep.Config.GetString("smtp.user")
	from := lo.CoalesceOrEmpty(dep.Config.GetString("mail.from"), account)
	to := lo.CoalesceOrEmpty(dep.Config.GetString("mail.to"), account)

	repoMail := mailer.New(dep.Mail, dep.Instrument, from, to)

	uc := usecase.NewOrder(usecase.Dependency{
		Mailer:     repoMail,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.Config.GetString("app.name"))

	return nil
}
