package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Instrument)
	router.Get("/api/orders/{trackingID}/tracking", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/api/orders/{trackingID}/tracking", http.MethodGet, "404"))

	req := httptest.NewRequest(http.MethodGet, "/api/orders/PKG-20261019-0A1B2C3D/tracking", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/api/orders/{trackingID}/tracking", http.MethodGet, "404"))
	assert.Equal(t, before+1, after)
}

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { Register(reg) })

	ReconciliationsTotal.WithLabelValues(OutcomeReconciled).Inc()
	count, err := testutil.GatherAndCount(reg, "payment_reconciliations_total")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 1)
}
