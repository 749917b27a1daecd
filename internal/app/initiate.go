package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/lambriz/order-api/internal/pkg/clock"
	"github.com/lambriz/order-api/internal/pkg/config"
	"github.com/lambriz/order-api/internal/pkg/instrument"
	"github.com/lambriz/order-api/internal/pkg/mail"
	"github.com/lambriz/order-api/internal/pkg/router"
	"github.com/lambriz/order-api/internal/pkg/uid"
	"github.com/rs/cors"
)

func (a *App) initConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config.env"
	}

	cfg, err := config.NewViper(path, map[string]any{
		"app.name":                           "lambriz-order-api",
		"port":                               8080,
		"allowed.origin":                     "*",
		"smtp.host":                          "smtp.yandex.ru",
		"smtp.port":                          465,
		"smtp.secure":                        true,
		"smtp.timeout_seconds":               20,
		"server.read_timeout_seconds":        30,
		"server.read_header_timeout_seconds": 10,
		"server.write_timeout_seconds":       30,
		"server.idle_timeout_seconds":        60,
		"instrument.metric_interval_seconds": 30,
	})
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		ServiceName:     a.config.GetString("app.name"),
		ServiceVersion:  a.config.GetString("app.version"),
		Environment:     a.config.GetString("app.env"),
		OTLPEndpoint:    a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:      a.config.GetBool("instrument.otlp_secure"),
		MetricsInterval: a.config.GetSecond("instrument.metric_interval_seconds"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()
}

func (a *App) initMail() {
	security := mail.SecuritySTARTTLS
	if a.config.GetBool("smtp.secure") {
		security = mail.SecurityImplicitTLS
	}

	sender, err := mail.NewSMTP(mail.SMTPConfig{
		Host:     a.config.GetString("smtp.host"),
		Port:     a.config.GetInt("smtp.port"),
		Username: a.config.GetString("smtp.user"),
		Password: a.config.GetString("smtp.pass"),
		From:     a.config.GetString("smtp.user"),
		Security: security,
		Timeout:  a.config.GetSecond("smtp.timeout_seconds"),
	})
	if err != nil {
		slog.Error("failed to init mail", "error", err)
		os.Exit(1)
	}

	a.mail = sender
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:        a.config,
		UUID:          a.uuid,
		Instrument:    a.ins,
		AllowedOrigin: a.config.GetString("allowed.origin"),
	})

	routerWithCORS := cors.New(cors.Options{
		AllowedOrigins: []string{a.config.GetString("allowed.origin")},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(a.router)

	port := a.config.GetInt("order.api.port")
	if port == 0 {
		port = a.config.GetInt("port")
	}

	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           routerWithCORS,
		ReadTimeout:       a.config.GetSecond("server.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("server.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("server.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("server.idle_timeout_seconds"),
	}
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Mail",
			fn: func(context.Context) error {
				return a.mail.Close()
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
