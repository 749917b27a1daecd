package goerror

import (
	"errors"
	"net/http"
	"testing"
)

func TestErrorConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		wantCode Code
		wantMsg  string
	}{
		{"server", NewServer(cause), CodeInternal, "Internal server error"},
		{"parse", NewParse(cause), CodeParse, "invalid JSON body: boom"},
		{"configuration", NewConfiguration("smtp not configured"), CodeConfiguration, "smtp not configured"},
		{"transport", NewTransport(cause), CodeTransport, "mail delivery failed: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gerr *Error
			if !errors.As(tt.err, &gerr) {
				t.Fatalf("type = %T", tt.err)
			}
			if gerr.Code() != tt.wantCode {
				t.Errorf("code = %v, want %v", gerr.Code(), tt.wantCode)
			}
			if gerr.Msg() != tt.wantMsg {
				t.Errorf("msg = %q, want %q", gerr.Msg(), tt.wantMsg)
			}
			if gerr.StatusCode() != http.StatusInternalServerError {
				t.Errorf("status = %d, want 500", gerr.StatusCode())
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	if !errors.Is(NewTransport(cause), cause) {
		t.Error("transport error must wrap its cause")
	}
	if !errors.Is(NewParse(cause), cause) {
		t.Error("parse error must wrap its cause")
	}
}
