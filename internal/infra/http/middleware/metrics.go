package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	recordatoriosEnviados = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recordatorios_enviados_total",
			Help: "Total number of reminder send attempts by outcome",
		},
		[]string{"estado"},
	)

	corridasTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recordatorios_corridas_total",
			Help: "Total number of dispatch runs",
		},
	)

	registroErrores = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recordatorios_registro_errores_total",
			Help: "Successful sends whose database record failed",
		},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

// RecordCorrida vuelca los contadores de una corrida terminada.
func RecordCorrida(exitosos, fallidos, registroFallidos int) {
	corridasTotal.Inc()
	recordatoriosEnviados.WithLabelValues("exitoso").Add(float64(exitosos))
	recordatoriosEnviados.WithLabelValues("fallido").Add(float64(fallidos))
	registroErrores.Add(float64(registroFallidos))
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}
