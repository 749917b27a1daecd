package app

import (
	"log/slog"
	"os"

	"github.com/lambriz/order-api/internal/order"
)

func (a *App) initModules() {
	if err := order.New(order.Dependency{
		Config:     a.config,
		Instrument: a.ins,
		Clock:      a.clock,
		Router:     a.router,
		Mail:       a.mail,
	}); err != nil {
		slog.Error("failed to init module order", "error", err)
		os.Exit(1)
	}
}
