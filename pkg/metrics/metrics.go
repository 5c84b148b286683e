// Package metrics expone las métricas Prometheus del servicio: tráfico HTTP y
// generación de códigos de catálogo (SKUs, códigos de producto y colisiones).
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores registrados en un Registerer.
type Metrics struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	skuGenerated *prometheus.CounterVec
	collisions   *prometheus.CounterVec
	productCodes prometheus.Counter
	gatherer     prometheus.Gatherer
}

// New registra los colectores con el prefijo namespace. Con reg nil usa un registro propio.
func New(namespace string, reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &Metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de peticiones HTTP",
		}, []string{"method", "path", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		skuGenerated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sku_generated_total",
			Help:      "SKUs generados, por tipo de segmento de modelo",
		}, []string{"model"}),
		collisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "code_collisions_total",
			Help:      "Códigos generados que ya existían y se descartaron",
		}, []string{"kind"}),
		productCodes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "product_codes_generated_total",
			Help:      "Códigos de producto generados",
		}),
		gatherer: reg,
	}
}

// ObserveRequest registra una petición HTTP terminada.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	s := strconv.Itoa(status)
	m.requests.WithLabelValues(method, path, s).Inc()
	m.duration.WithLabelValues(method, path, s).Observe(elapsed.Seconds())
}

// SKUGenerated cuenta un SKU emitido; generic indica segmento GEN.
func (m *Metrics) SKUGenerated(generic bool) {
	label := "named"
	if generic {
		label = "generic"
	}
	m.skuGenerated.WithLabelValues(label).Inc()
}

// ProductCodeGenerated cuenta un código de producto emitido.
func (m *Metrics) ProductCodeGenerated() { m.productCodes.Inc() }

// CodeCollision cuenta un código descartado por duplicado. kind: "sku" o "product_code".
func (m *Metrics) CodeCollision(kind string) { m.collisions.WithLabelValues(kind).Inc() }

// Handler devuelve el handler HTTP de exposición (/metrics).
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
