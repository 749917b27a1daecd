package inbound

import (
	"github.com/lambriz/order-api/internal/pkg/router"
)

// Health reports liveness. Browsers embedding the mini-app probe this before
// submitting, so it carries the CORS headers like every other route.
func (h *httpEndpoint) Health(r *router.Request) (any, error) {
	return healthResponse{OK: true, Service: h.service}, nil
}

// SubmitOrder accepts an order or feedback payload and triggers the email
// notification. The body is passed through as raw bytes; all interpretation
// happens in the usecase.
func (h *httpEndpoint) SubmitOrder(r *router.Request) (any, error) {
	raw, err := r.ReadBody()
	if err != nil {
		return nil, err
	}

	if err := h.uc.Submit(r.Context(), raw); err != nil {
		return nil, err
	}

	return submitOrderResponse{OK: true}, nil
}
