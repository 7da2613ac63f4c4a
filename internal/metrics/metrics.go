package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels recorded per tool invocation.
const (
	OutcomeOK         = "ok"
	OutcomeValidation = "validation_error"
	OutcomeDecode     = "decode_error"
	OutcomeGateway    = "gateway_error"
	OutcomeTimeout    = "timeout"
	OutcomeError      = "error"
)

// Collector tracks tool-invocation counts and latencies.
type Collector struct {
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hedera_mcp",
			Name:      "tool_invocations_total",
			Help:      "Tool invocations by tool name and outcome.",
		}, []string{"tool", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hedera_mcp",
			Name:      "tool_duration_seconds",
			Help:      "Tool invocation duration, gateway wait included.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool"}),
	}
	reg.MustRegister(c.invocations, c.duration)
	return c
}

func (c *Collector) Observe(tool, outcome string, elapsed time.Duration) {
	c.invocations.WithLabelValues(tool, outcome).Inc()
	c.duration.WithLabelValues(tool).Observe(elapsed.Seconds())
}
