// Package metrics counts what the terminal layer renders and exposes the
// counts in the Prometheus exposition format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"

	"github.com/agbru/colorize/internal/ui"
)

const namespace = "colorize"

// Recorder implements cli.Observer on top of Prometheus counters. Each
// Recorder owns its own registry, so several can coexist in one process.
type Recorder struct {
	registry *prometheus.Registry
	messages *prometheus.CounterVec
	progress prometheus.Counter
	ticks    prometheus.Counter
	handler  http.Handler
}

// Snapshot is a point-in-time reading of the render counters.
type Snapshot struct {
	Messages        map[ui.Category]uint64
	ProgressRenders uint64
	SpinnerTicks    uint64
}

// TotalMessages sums the per-category message counts.
func (s Snapshot) TotalMessages() uint64 {
	var n uint64
	for _, v := range s.Messages {
		n += v
	}
	return n
}

// NewRecorder creates a Recorder with the render counters and the Go runtime
// collector registered. Every category series starts at zero.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_total",
			Help:      "Themed log lines written, by category.",
		}, []string{"category"}),
		progress: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "progress_renders_total",
			Help:      "Progress bar redraws.",
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spinner_ticks_total",
			Help:      "Spinner frames drawn.",
		}),
	}
	for _, c := range ui.Categories {
		r.messages.WithLabelValues(string(c))
	}
	r.registry.MustRegister(r.messages, r.progress, r.ticks, collectors.NewGoCollector())
	r.handler = promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
	return r
}

// MessageWritten counts one line of the given category.
func (r *Recorder) MessageWritten(category ui.Category) {
	r.messages.WithLabelValues(string(category)).Inc()
}

// ProgressRendered counts one progress bar redraw.
func (r *Recorder) ProgressRendered() {
	r.progress.Inc()
}

// SpinnerTicked counts one spinner frame.
func (r *Recorder) SpinnerTicked() {
	r.ticks.Inc()
}

// Registry returns the registry the counters are registered with.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WritePrometheus serves the metrics in the Prometheus text format.
func (r *Recorder) WritePrometheus(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// WriteTextfile atomically writes the metrics to path, in the format read by
// the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// Snapshot reads the current counter values.
func (r *Recorder) Snapshot() Snapshot {
	s := Snapshot{
		Messages:        make(map[ui.Category]uint64, len(ui.Categories)),
		ProgressRenders: counterValue(r.progress),
		SpinnerTicks:    counterValue(r.ticks),
	}
	for _, c := range ui.Categories {
		s.Messages[c] = counterValue(r.messages.WithLabelValues(string(c)))
	}
	return s
}

func counterValue(c prometheus.Counter) uint64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return uint64(m.GetCounter().GetValue())
}
