package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amishk599/bankradar/internal/model"
)

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", 0},
		{"120", 2 * time.Minute},
		{"-5", 0},
		{"soon", 0},
		{"Sun, 01 Mar 2026 12:00:30 GMT", 30 * time.Second},
		{"Sun, 01 Mar 2026 11:00:00 GMT", 0},
	}
	for _, tt := range tests {
		if got := parseRetryAfter(tt.value, now); got != tt.want {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestDoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept = %q", r.Header.Get("Accept"))
		}
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(`{"name":"SG"}`))
		case "/busy":
			w.Header().Set("Retry-After", "7")
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.Write([]byte(`not json`))
		}
	}))
	defer srv.Close()

	get := func(path string, out any) error {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+path, nil)
		if err != nil {
			t.Fatal(err)
		}
		return doJSON(srv.Client(), req, "test fetch", out)
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := get("/ok", &body); err != nil || body.Name != "SG" {
		t.Errorf("ok: body=%+v err=%v", body, err)
	}

	var httpErr *model.HTTPError
	if err := get("/busy", &body); !errors.As(err, &httpErr) || httpErr.StatusCode != 429 || httpErr.RetryAfter != 7*time.Second {
		t.Errorf("busy: err = %v", err)
	}

	if err := get("/garbage", &body); err == nil || errors.As(err, &httpErr) {
		t.Errorf("garbage: err = %v, want a decode error", err)
	}
}
