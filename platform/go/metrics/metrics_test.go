package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/zenGate-Global/yt-http-gateway/platform/go/cors"
)

func TestObserveCORS(t *testing.T) {
	m := New()

	m.ObserveCORS(cors.MethodOptions, cors.Terminated)
	m.ObserveCORS(cors.MethodOptions, cors.Terminated)
	m.ObserveCORS(cors.MethodGet, cors.Continue)

	require.Equal(t, 2.0, testutil.ToFloat64(m.corsDecisions.WithLabelValues("OPTIONS", "terminated")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.corsDecisions.WithLabelValues("GET", "continue")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.corsDecisions.WithLabelValues("other", "continue")))
}

func TestMiddlewareFeedsMetrics(t *testing.T) {
	m := New()
	handler := cors.Middleware(cors.WithObserver(m))(http.NotFoundHandler())

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodOptions, "/", nil))

	require.Equal(t, 1.0, testutil.ToFloat64(m.corsDecisions.WithLabelValues("other", "continue")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.corsDecisions.WithLabelValues("OPTIONS", "terminated")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveCORS(cors.MethodPut, cors.Continue)

	resp := httptest.NewRecorder()
	m.Handler().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `ytproxy_cors_decisions_total{method="PUT",outcome="continue"} 1`)
}
