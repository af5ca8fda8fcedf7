package utils

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/rs/zerolog"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(nil)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}
	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(nil)
	client2 := NewHTTPClient(nil)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_NoRetries(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(nil).R().Get(srv.URL)

	if err != nil {
		t.Fatalf("expected no transport error, got: %v", err)
	}
	if resp.StatusCode() != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", resp.StatusCode())
	}
	if calls != 1 {
		t.Errorf("expected exactly one call, got %d", calls)
	}
}

func TestNewHTTPClient_LogsRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf).Level(zerolog.DebugLevel)}

	_, err := NewHTTPClient(log).R().SetHeader(HeaderRequestID, "req-42").Get(srv.URL)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !strings.Contains(buf.String(), `"request_id":"req-42"`) {
		t.Errorf("expected request id in log, got %s", buf.String())
	}
}
