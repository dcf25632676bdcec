package metrics

import (
	"arena-portal-backend/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ProgressMetrics counts resolutions served to customers. It implements
// domain.ProgressRecorder.
type ProgressMetrics struct {
	resolutions *prometheus.CounterVec
	delivered   prometheus.Counter
}

func NewProgressMetrics(reg prometheus.Registerer) *ProgressMetrics {
	factory := promauto.With(reg)
	return &ProgressMetrics{
		resolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "portal",
				Subsystem: "progress",
				Name:      "resolutions_total",
				Help:      "Order progress resolutions by current step and resolution path.",
			},
			[]string{"step", "resolved_by"},
		),
		delivered: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "portal",
				Subsystem: "progress",
				Name:      "delivered_total",
				Help:      "Resolutions of orders already delivered.",
			},
		),
	}
}

func (m *ProgressMetrics) ObserveProgress(p domain.Progress) {
	m.resolutions.WithLabelValues(string(p.CurrentStep), string(p.ResolvedBy)).Inc()
	if p.Delivered {
		m.delivered.Inc()
	}
}
