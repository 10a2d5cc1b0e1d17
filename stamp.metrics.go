package stamp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names
const (
	MetricParsesTotal       = "stamp_parses_total"
	MetricRendersTotal      = "stamp_renders_total"
	MetricUnknownElements   = "stamp_unknown_elements_total"
	MetricCounterIncrements = "stamp_counter_increments_total"
	MetricLabelResult       = "result"
	MetricResultOK          = "ok"
	MetricResultError       = "error"
)

// Metrics holds the Prometheus collectors for one or more engines.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Parses            *prometheus.CounterVec
	Renders           *prometheus.CounterVec
	UnknownElements   prometheus.Counter
	CounterIncrements prometheus.Counter
}

// NewMetrics creates and registers the collectors with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Parses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: MetricParsesTotal,
			Help: "Total number of template parses by result",
		}, []string{MetricLabelResult}),
		Renders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: MetricRendersTotal,
			Help: "Total number of format renders by result",
		}, []string{MetricLabelResult}),
		UnknownElements: factory.NewCounter(prometheus.CounterOpts{
			Name: MetricUnknownElements,
			Help: "Total number of placeholders kept as literal text because no element was registered",
		}),
		CounterIncrements: factory.NewCounter(prometheus.CounterOpts{
			Name: MetricCounterIncrements,
			Help: "Total number of counter element renders",
		}),
	}
}

func resultLabel(err error) string {
	if err != nil {
		return MetricResultError
	}
	return MetricResultOK
}

func (m *Metrics) observeParse(err error) {
	if m == nil {
		return
	}
	m.Parses.WithLabelValues(resultLabel(err)).Inc()
}

func (m *Metrics) observeRender(err error) {
	if m == nil {
		return
	}
	m.Renders.WithLabelValues(resultLabel(err)).Inc()
}

func (m *Metrics) incUnknown() {
	if m == nil {
		return
	}
	m.UnknownElements.Inc()
}

func (m *Metrics) incCounter() {
	if m == nil {
		return
	}
	m.CounterIncrements.Inc()
}
