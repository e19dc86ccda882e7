package memory

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// RegisterMetrics exposes the store's collection sizes as Prometheus gauges.
// Values are read at scrape time.
func (s *Store) RegisterMetrics(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "daily_quote",
			Subsystem: "store",
			Name:      "quotes",
			Help:      "Number of quotes currently held in memory.",
		}, func() float64 { return float64(s.QuoteCount()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "daily_quote",
			Subsystem: "store",
			Name:      "users",
			Help:      "Number of users currently held in memory.",
		}, func() float64 { return float64(s.UserCount()) }),
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("registering store metrics: %w", err)
		}
	}

	return nil
}
