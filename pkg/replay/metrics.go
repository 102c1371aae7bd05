package replay

import "github.com/prometheus/client_golang/prometheus"

// Metrics mirrors the teacher's namespaced prometheus.NewGauge/NewCounter
// convention (pkg/consensus/prometheus.go, cli/server/metrics.go).
var (
	transcodeTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ulispc",
		Name:      "transcode_total",
		Help:      "Number of transcodes run by the replay server; cache hits are not counted.",
	})
	transcodeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ulispc",
		Name:      "transcode_duration_seconds",
		Help:      "Time spent transcoding a submitted AST to uLisp.",
	})
	simulationEventsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ulispc",
		Name:      "simulation_events_total",
		Help:      "Number of simulator events captured across all runs.",
	})
	scopeStackDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ulispc",
		Name:      "scope_stack_depth",
		Help:      "Depth of the transcoder's scope stack. Registered only; the replay server does not set it.",
	})
)

func init() {
	prometheus.MustRegister(transcodeTotal, transcodeDuration, simulationEventsTotal, scopeStackDepth)
}
