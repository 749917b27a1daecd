package router

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lambriz/order-api/internal/pkg/config"
	"github.com/lambriz/order-api/internal/pkg/goerror"
	"github.com/lambriz/order-api/internal/pkg/instrument"
	"github.com/lambriz/order-api/internal/pkg/uid"
)

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded) or an error.
type Handler func(r *Request) (any, error)

// Config holds dependencies required to build a Router.
type Config struct {
	// Config provides runtime configuration values.
	Config config.Config
	// UUID generates request correlation IDs.
	UUID uid.StringID
	// Instrument provides tracing and metrics helpers.
	Instrument instrument.Instrumentation
	// AllowedOrigin is the single origin echoed in CORS headers ("*" allows all).
	AllowedOrigin string
}

// Router is an http.Handler that wraps httprouter and a middleware chain.
//
// Every response it writes carries the CORS headers, and any OPTIONS request
// is answered with 204 regardless of path, matching the contract expected by
// the mini-app client.
type Router struct {
	hr            *httprouter.Router
	errorCodec    func(ctx context.Context, w http.ResponseWriter, err error)
	encoder       func(ctx context.Context, w http.ResponseWriter, resp any)
	mws           []Middleware
	allowedOrigin string
}

// NewRouter builds the default application router with standard middleware.
func NewRouter(cfg Config) *Router {
	hr := &httprouter.Router{
		RedirectTrailingSlash: true,
		RedirectFixedPath:     true,
		// Unmatched method+path pairs are reported as 404, not 405.
		HandleMethodNotAllowed: false,
		SaveMatchedRoutePath:   true,
		NotFound: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, errorResponse{OK: false, Error: "endpoint not found"}, http.StatusNotFound)
		}),
	}

	errorCodec := func(ctx context.Context, w http.ResponseWriter, err error) {
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			writeJSON(w, errorResponse{OK: false, Error: "Internal server error"}, http.StatusInternalServerError)
			return
		}

		writeJSON(w, errorResponse{OK: false, Error: gerr.Msg()}, gerr.StatusCode())
	}

	okCodec := func(ctx context.Context, w http.ResponseWriter, resp any) {
		if resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		code := http.StatusOK
		if sc, ok := resp.(interface {
			StatusCode() int
		}); ok {
			code = sc.StatusCode()
		}

		writeJSON(w, resp, code)
	}

	origin := cfg.AllowedOrigin
	if origin == "" {
		origin = "*"
	}

	return &Router{
		hr:            hr,
		errorCodec:    errorCodec,
		encoder:       okCodec,
		allowedOrigin: origin,
		mws: []Middleware{
			middlewareRecoverer,
			middlewareIP,
			middlewareCorrelationID(cfg.UUID),
			middlewareObservability(cfg.Instrument),
		},
	}
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, path, h, mws...)
}

// POST registers a POST endpoint using the application Handler signature.
func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPost, path, h, mws...)
}

func (r *Router) endpoint(method, path string, h Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(&Request{Request: re})
		if err != nil {
			if setter, ok := w.(interface{ SetError(error) }); ok {
				setter.SetError(err)
			}
			r.errorCodec(re.Context(), w, err)
			return
		}
		r.encoder(re.Context(), w, resp)
	}), append(r.mws, mws...)...))
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", r.allowedOrigin)
	h.Set("Access-Control-Allow-Methods", "POST,OPTIONS,GET")
	h.Set("Access-Control-Allow-Headers", "Content-Type")

	if req.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	r.hr.ServeHTTP(w, req)
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("server: failed to encode data to json", "error", err)
	}
}
