package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/outfits/:id", "404"))
	RecordHTTPRequest("get", "/api/outfits/:id", http.StatusNotFound, 3*time.Millisecond)
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/outfits/:id", "404"))
	assert.Equal(t, before+1, after)
}

func TestRecordAnalysisDefaultsOutcome(t *testing.T) {
	before := testutil.ToFloat64(analysisRequests.WithLabelValues("unknown"))
	RecordAnalysis("", 0)
	assert.Equal(t, before+1, testutil.ToFloat64(analysisRequests.WithLabelValues("unknown")))
}

func TestInFlightGauge(t *testing.T) {
	done := RequestStarted()
	assert.Equal(t, float64(1), testutil.ToFloat64(httpInFlight))
	done()
	assert.Equal(t, float64(0), testutil.ToFloat64(httpInFlight))
}

func TestHandlerExposesRegistry(t *testing.T) {
	RecordAnalysis("success", time.Second)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "stylist_style_analysis_requests_total")
}
