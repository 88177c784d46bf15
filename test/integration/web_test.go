package integration

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/dmarkov/homepage/internal/application"
	"github.com/dmarkov/homepage/internal/config"
)

// newApp wires the full application against the real templates/ and static/
// directories at the repository root.
func newApp(t *testing.T) *application.App {
	t.Helper()

	cfg := config.Config{
		Port:                 ":0",
		TemplatesDir:         "templates",
		StaticDir:            "static",
		ShutdownGracePeriod:  50 * time.Millisecond,
		ReadHeaderTimeout:    time.Second,
		WriteTimeout:         time.Second,
		IdleTimeout:          time.Second,
		EnableRequestLogging: false,
		RateLimitRPS:         0,
		RateLimitBurst:       0,
	}

	app, err := application.New(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("application.New returned error: %v", err)
	}
	return app
}

func performRequest(t *testing.T, handler http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestServeFlow(t *testing.T) {
	router := newApp(t).Router()

	rec := performRequest(t, router, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from health, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("expected health body %q, got %q", "ok", rec.Body.String())
	}

	rec = performRequest(t, router, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from index, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<html") {
		t.Fatalf("expected rendered HTML page, got %q", rec.Body.String())
	}

	rec = performRequest(t, router, http.MethodGet, "/static/css/style.css", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from static asset, got %d", rec.Code)
	}
}

func TestRouteBoundaries(t *testing.T) {
	router := newApp(t).Router()

	rec := performRequest(t, router, http.MethodPost, "/health", strings.NewReader("{}"))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 from POST /health, got %d", rec.Code)
	}

	rec = performRequest(t, router, http.MethodPost, "/", strings.NewReader("{}"))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 from POST /, got %d", rec.Code)
	}

	rec = performRequest(t, router, http.MethodGet, "/nonexistent", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from unknown path, got %d", rec.Code)
	}
}

func TestFactoryProducesIdenticalRouteTables(t *testing.T) {
	first := newApp(t).Router()
	second := newApp(t).Router()

	for _, router := range []http.Handler{first, second} {
		rec := performRequest(t, router, http.MethodGet, "/health", nil)
		if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
			t.Fatalf("expected consistent health route, got %d %q", rec.Code, rec.Body.String())
		}
	}
}
