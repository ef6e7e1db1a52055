package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts bot activity. The zero value is usable; counters are only
// exported after Register is called.
type Metrics struct {
	events        *prometheus.CounterVec
	gateChecks    *prometheus.CounterVec
	oracleErrors  prometheus.Counter
	mediaLookups  *prometheus.CounterVec
	mediaAdded    prometheus.Counter
	channelsAdded prometheus.Counter

	registerOnce sync.Once
}

// New creates metrics registered with registry. A nil registry yields no-op metrics.
func New(registry prometheus.Registerer) *Metrics {
	m := &Metrics{}
	m.Register(registry)
	return m
}

// Register registers Prometheus metrics with the given registry.
// If registry is nil, this is a no-op. Subsequent calls are no-ops.
func (m *Metrics) Register(registry prometheus.Registerer) {
	if registry == nil {
		return
	}

	m.registerOnce.Do(func() {
		factory := promauto.With(registry)

		m.events = factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kinogate_events_total",
			Help: "Total number of inbound events by kind",
		}, []string{"kind"})

		m.gateChecks = factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kinogate_gate_checks_total",
			Help: "Total number of subscription gate evaluations by result",
		}, []string{"result"})

		m.oracleErrors = factory.NewCounter(prometheus.CounterOpts{
			Name: "kinogate_oracle_errors_total",
			Help: "Total number of failed membership lookups",
		})

		m.mediaLookups = factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kinogate_media_lookups_total",
			Help: "Total number of media code lookups by result",
		}, []string{"result"})

		m.mediaAdded = factory.NewCounter(prometheus.CounterOpts{
			Name: "kinogate_media_added_total",
			Help: "Total number of media entries created",
		})

		m.channelsAdded = factory.NewCounter(prometheus.CounterOpts{
			Name: "kinogate_channels_added_total",
			Help: "Total number of required channels added",
		})
	})
}

// IncEvent counts an inbound event of the given kind.
func (m *Metrics) IncEvent(kind string) {
	if m != nil && m.events != nil {
		m.events.WithLabelValues(kind).Inc()
	}
}

// IncGateCheck counts a gate evaluation.
func (m *Metrics) IncGateCheck(satisfied bool) {
	if m == nil || m.gateChecks == nil {
		return
	}
	result := "unsatisfied"
	if satisfied {
		result = "satisfied"
	}
	m.gateChecks.WithLabelValues(result).Inc()
}

// IncOracleError counts a membership lookup that failed and was treated as unsubscribed.
func (m *Metrics) IncOracleError() {
	if m != nil && m.oracleErrors != nil {
		m.oracleErrors.Inc()
	}
}

// IncMediaLookup counts a code lookup; result is "hit", "miss", "gated" or "error".
func (m *Metrics) IncMediaLookup(result string) {
	if m != nil && m.mediaLookups != nil {
		m.mediaLookups.WithLabelValues(result).Inc()
	}
}

// IncMediaAdded counts a created media entry.
func (m *Metrics) IncMediaAdded() {
	if m != nil && m.mediaAdded != nil {
		m.mediaAdded.Inc()
	}
}

// IncChannelAdded counts an added channel.
func (m *Metrics) IncChannelAdded() {
	if m != nil && m.channelsAdded != nil {
		m.channelsAdded.Inc()
	}
}
