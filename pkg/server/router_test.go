package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/dmehra2102/otel-shop/pkg/metrics"
)

func TestNewRouter_Healthz(t *testing.T) {
	r := NewRouter(metrics.NewServerMetrics("test"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP"}`, w.Body.String())
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	require.NoError(t, err)
}

func TestRequestID_EchoesCaller(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc-123", r.Header.Get(RequestIDHeader))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestNewRouter_RecoversPanics(t *testing.T) {
	r := NewRouter(metrics.NewServerMetrics("panic"))
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	w := httptest.NewRecorder()
	Instrument("panic", r).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func recordedSpans(t *testing.T, r http.Handler, paths ...string) []sdktrace.ReadOnlySpan {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	h := Instrument("orders-service", r, otelhttp.WithTracerProvider(tp))

	for _, p := range paths {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}
	return rec.Ended()
}

func TestInstrument_SpanNamedAfterRoute(t *testing.T) {
	api := chi.NewRouter()
	api.Get("/api/v1/orders/{orderId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r := NewRouter(metrics.NewServerMetrics("spans"))
	r.Mount("/", api)

	spans := recordedSpans(t, r, "/api/v1/orders/abc", "/api/v1/orders/def")
	require.Len(t, spans, 2)
	for _, s := range spans {
		assert.Equal(t, "GET /api/v1/orders/{orderId}", s.Name())

		var route string
		for _, kv := range s.Attributes() {
			if kv.Key == attribute.Key("http.route") {
				route = kv.Value.AsString()
			}
		}
		assert.Equal(t, "/api/v1/orders/{orderId}", route)
	}
}

func TestInstrument_UnmatchedKeepsMethodName(t *testing.T) {
	r := NewRouter(metrics.NewServerMetrics("unmatched"))

	spans := recordedSpans(t, r, "/nope/123")
	require.Len(t, spans, 1)
	assert.Equal(t, http.MethodGet, spans[0].Name())
}

func TestInstrument_SkipsHealthz(t *testing.T) {
	r := NewRouter(metrics.NewServerMetrics("health"))

	assert.Empty(t, recordedSpans(t, r, "/healthz", "/metrics"))
}
