package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the booking service.
type Metrics struct {
	RPCRequests     *prometheus.CounterVec
	RPCDuration     *prometheus.HistogramVec
	BookingsCreated prometheus.Counter
}

// New registers the collectors on reg. Tests pass a fresh registry so
// repeated construction does not panic on duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RPCRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_rpc_requests_total",
			Help: "Booking RPCs handled, by method and status code",
		}, []string{"method", "code"}),
		RPCDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "booking_rpc_duration_seconds",
			Help:    "Booking RPC latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_bookings_created_total",
			Help: "Total number of bookings stored",
		}),
	}
}

func (m *Metrics) ObserveRPC(method, code string, elapsed time.Duration) {
	m.RPCRequests.WithLabelValues(method, code).Inc()
	m.RPCDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *Metrics) IncrementBookingsCreated() {
	m.BookingsCreated.Inc()
}
