package inbound

import (
	"context"

	"github.com/lambriz/order-api/internal/pkg/router"
)

type uc interface {
	Submit(ctx context.Context, raw []byte) error
}

// RegisterHTTPEndpoint attaches the order endpoints to the router.
func RegisterHTTPEndpoint(r *router.Router, usecase uc, service string) {
	end := &httpEndpoint{uc: usecase, service: service}

	r.GET("/health", end.Health)
	r.POST("/api/order", end.SubmitOrder)
}

type httpEndpoint struct {
	uc      uc
	service string
}
