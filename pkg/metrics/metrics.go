// Package metrics instruments every outgoing API call with Prometheus
// counters and histograms.
//
// The console is a short-lived process, so instead of exposing a scrape
// endpoint the collected metrics are gathered in-process and printed by the
// `flashpos stats` command. The dev backend additionally serves the standard
// promhttp handler on /metrics.
package metrics

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// APICallDuration tracks how long each backend call takes, broken down
	// by method, path, and status code.
	APICallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "flashpos",
			Subsystem: "api",
			Name:      "call_duration_seconds",
			Help:      "Duration of backend API calls in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// APICallTotal counts all backend API calls. Status "error" means the
	// call never produced an HTTP response (transport failure).
	APICallTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flashpos",
			Subsystem: "api",
			Name:      "calls_total",
			Help:      "Total number of backend API calls.",
		},
		[]string{"method", "path", "status"},
	)

	// CacheHits and CacheMisses track options-cache effectiveness.
	CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "flashpos",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Total options-cache hits.",
	})
	CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "flashpos",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Total options-cache misses.",
	})
)

// DefaultRegistry is the Prometheus registry used by FlashPOS.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		APICallDuration,
		APICallTotal,
		CacheHits,
		CacheMisses,
	)
}

// ObserveAPICall records one backend call. A zero status means the call
// failed before a response arrived.
func ObserveAPICall(method, path string, status int, d time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	APICallDuration.WithLabelValues(method, path, label).Observe(d.Seconds())
	APICallTotal.WithLabelValues(method, path, label).Inc()
}

// Handler returns the scrape endpoint handler, mounted by the dev backend.
func Handler() http.Handler {
	return promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{})
}

// Snapshot renders the flashpos_* metric families as readable lines for the
// `stats` command. Runtime and process collectors are skipped.
func Snapshot() (string, error) {
	families, err := DefaultRegistry.Gather()
	if err != nil {
		return "", fmt.Errorf("metrics: gather: %w", err)
	}

	var b strings.Builder
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "flashpos_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			sort.Strings(labels)

			var value string
			switch {
			case m.GetCounter() != nil:
				value = strconv.FormatFloat(m.GetCounter().GetValue(), 'f', -1, 64)
			case m.GetGauge() != nil:
				value = strconv.FormatFloat(m.GetGauge().GetValue(), 'f', -1, 64)
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				value = fmt.Sprintf("count=%d sum=%.3fs", h.GetSampleCount(), h.GetSampleSum())
			default:
				continue
			}

			b.WriteString(mf.GetName())
			if len(labels) > 0 {
				b.WriteString("{" + strings.Join(labels, ",") + "}")
			}
			b.WriteString(" " + value + "\n")
		}
	}
	return b.String(), nil
}

// Register lets callers add their own prometheus.Collector to the registry.
func Register(c prometheus.Collector) error {
	return DefaultRegistry.Register(c)
}
