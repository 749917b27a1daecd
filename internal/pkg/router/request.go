package router

import (
	"io"
	"net/http"

	"github.com/lambriz/order-api/internal/pkg/goerror"
)

// Request wraps http.Request with helpers for inbound handlers.
type Request struct {
	// Request is the underlying http.Request.
	*http.Request
}

// ReadBody reads the full request body, bounded by the declared content
// length. A missing or zero-length body yields nil, which downstream decoding
// treats as an empty JSON object.
func (r *Request) ReadBody() ([]byte, error) {
	if r == nil || r.Body == nil || r.ContentLength <= 0 {
		return nil, nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, r.ContentLength))
	if err != nil {
		return nil, goerror.NewParse(err)
	}

	return raw, nil
}
