package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lambriz/order-api/internal/pkg/goerror"
	"github.com/lambriz/order-api/internal/pkg/instrument"
	"github.com/lambriz/order-api/internal/pkg/router"
	"github.com/lambriz/order-api/internal/pkg/uid"
)

type stubUsecase struct {
	err  error
	raws [][]byte
}

func (s *stubUsecase) Submit(_ context.Context, raw []byte) error {
	s.raws = append(s.raws, raw)
	return s.err
}

func newTestRouter(t *testing.T, usecase uc) *router.Router {
	t.Helper()

	r := router.NewRouter(router.Config{
		UUID:          uid.NewUUID(),
		Instrument:    instrument.NewNoop(),
		AllowedOrigin: "*",
	})
	RegisterHTTPEndpoint(r, usecase, "lambriz-order-api")
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, &stubUsecase{}), http.MethodGet, "/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		OK      bool   `json:"ok"`
		Service string `json:"service"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !resp.OK || resp.Service != "lambriz-order-api" {
		t.Errorf("resp = %+v", resp)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("missing CORS origin header, got %q", got)
	}
}

func TestSubmitOrder_OK(t *testing.T) {
	stub := &stubUsecase{}
	rec := doRequest(t, newTestRouter(t, stub), http.MethodPost, "/api/order", `{"id":"1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"ok":true}` {
		t.Errorf("body = %s", body)
	}
	if len(stub.raws) != 1 || string(stub.raws[0]) != `{"id":"1"}` {
		t.Errorf("usecase received %q", stub.raws)
	}
}

func TestSubmitOrder_EmptyBody(t *testing.T) {
	stub := &stubUsecase{}
	rec := doRequest(t, newTestRouter(t, stub), http.MethodPost, "/api/order", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(stub.raws) != 1 || stub.raws[0] != nil {
		t.Errorf("usecase received %q, want nil raw body", stub.raws)
	}
}

func TestSubmitOrder_Failure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "parse error",
			err:     goerror.NewParse(errors.New("unexpected end of JSON input")),
			wantMsg: "invalid JSON body: unexpected end of JSON input",
		},
		{
			name:    "configuration error",
			err:     goerror.NewConfiguration("SMTP account, password or recipient is not configured"),
			wantMsg: "SMTP account, password or recipient is not configured",
		},
		{
			name:    "transport error",
			err:     goerror.NewTransport(errors.New("dial tcp: connection refused")),
			wantMsg: "mail delivery failed: dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, newTestRouter(t, &stubUsecase{err: tt.err}), http.MethodPost, "/api/order", `{}`)

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", rec.Code)
			}

			var resp struct {
				OK    bool   `json:"ok"`
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if resp.OK {
				t.Error("ok must be false")
			}
			if resp.Error != tt.wantMsg {
				t.Errorf("error = %q, want %q", resp.Error, tt.wantMsg)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("error responses must carry CORS headers, got %q", got)
			}
		})
	}
}

func TestOptionsPreflight(t *testing.T) {
	for _, path := range []string{"/api/order", "/health", "/anything"} {
		rec := doRequest(t, newTestRouter(t, &stubUsecase{}), http.MethodOptions, path, "")

		if rec.Code != http.StatusNoContent {
			t.Errorf("OPTIONS %s status = %d, want 204", path, rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "POST,OPTIONS,GET" {
			t.Errorf("OPTIONS %s methods = %q", path, got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
			t.Errorf("OPTIONS %s headers = %q", path, got)
		}
	}
}

func TestUnknownRoutes(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/nope"},
		{http.MethodPost, "/api/other"},
		{http.MethodGet, "/api/order"},
	}

	for _, tt := range tests {
		rec := doRequest(t, newTestRouter(t, &stubUsecase{}), tt.method, tt.path, "")

		if rec.Code != http.StatusNotFound {
			t.Errorf("%s %s status = %d, want 404", tt.method, tt.path, rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("%s %s missing CORS origin header", tt.method, tt.path)
		}
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, &stubUsecase{}), http.MethodGet, "/health/", "")

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want 301 redirect", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/health" {
		t.Errorf("location = %q", loc)
	}
}
