// Package metrics expõe as métricas Prometheus do servidor HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inflight        prometheus.Gauge
)

// Register inicializa os coletores e devolve o handler de /metrics.
// Idempotente: registros repetidos reutilizam os coletores existentes.
func Register(reg prometheus.Registerer) http.Handler {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	once.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de requests processados",
		}, []string{"method", "path", "status"})

		requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latência dos requests HTTP",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"})

		inflight = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Requests em andamento",
		})

		reg.MustRegister(requestsTotal, requestDuration, inflight)
	})

	return promhttp.Handler()
}

// Observe registra um request concluído. routePattern é o padrão da rota
// (ex.: /loja/users/{id}), não o path cru, para conter a cardinalidade.
func Observe(method, routePattern string, status int, dur time.Duration) {
	if requestsTotal == nil {
		return
	}
	requestsTotal.WithLabelValues(method, routePattern, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method, routePattern).Observe(dur.Seconds())
}

// TrackInflight marca início/fim de um request em andamento.
func TrackInflight(delta float64) {
	if inflight != nil {
		inflight.Add(delta)
	}
}
