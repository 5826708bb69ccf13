package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go-calc-frontends/internal/observability"
	"go-calc-frontends/internal/session"
	"go-calc-frontends/internal/testutil"
	"go-calc-frontends/internal/web"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	observability.Logger = zap.NewNop()
	if err := web.InitMetrics(); err != nil {
		t.Fatalf("initializing web metrics: %v", err)
	}

	return NewRouter(web.NewHandler(session.New()))
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if body := w.Body.String(); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRouterCalculateSetsRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{
		"operand1": {"2"},
		"operand2": {"3"},
		"operator": {"+"},
	}
	req := testutil.NewFormRequest(t, "/calculate", form)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	requestID := w.Result().Header.Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected valid UUID in X-Request-ID, got %q: %v", requestID, err)
	}

	if !strings.Contains(w.Body.String(), "Result: 2 + 3 = 5") {
		t.Fatalf("expected result in page, got:\n%s", w.Body.String())
	}
}
