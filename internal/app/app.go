package app

import (
	"context"
	"net/http"

	"github.com/lambriz/order-api/internal/pkg/clock"
	"github.com/lambriz/order-api/internal/pkg/config"
	"github.com/lambriz/order-api/internal/pkg/instrument"
	"github.com/lambriz/order-api/internal/pkg/mail"
	"github.com/lambriz/order-api/internal/pkg/router"
	"github.com/lambriz/order-api/internal/pkg/uid"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	clock clock.Clocker
	uuid  uid.StringID

	// resources
	mail mail.Mail

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initMail()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
