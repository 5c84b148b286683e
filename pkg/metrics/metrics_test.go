package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/pkg/metrics"
)

func TestMetrics_ContadoresDeCodigos(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New("catalogo", reg)

	m.SKUGenerated(false)
	m.SKUGenerated(true)
	m.SKUGenerated(true)
	m.ProductCodeGenerated()
	m.CodeCollision("sku")

	n, err := testutil.GatherAndCount(reg, "catalogo_sku_generated_total", "catalogo_code_collisions_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	body := scrape(t, m)
	assert.Contains(t, body, `catalogo_sku_generated_total{model="generic"} 2`)
	assert.Contains(t, body, `catalogo_sku_generated_total{model="named"} 1`)
	assert.Contains(t, body, `catalogo_code_collisions_total{kind="sku"} 1`)
	assert.Contains(t, body, `catalogo_product_codes_generated_total 1`)
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := metrics.New("catalogo", nil)
	m.ObserveRequest(http.MethodGet, "/api/products", 200, 15*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `catalogo_http_requests_total{method="GET",path="/api/products",status="200"} 1`)
	assert.Contains(t, body, `catalogo_http_request_duration_seconds_count{method="GET",path="/api/products",status="200"} 1`)
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	b, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(b)
}
