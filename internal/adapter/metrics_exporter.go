package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

const (
	metricsNamespace = "suitegate"
	gateSubsystem    = "gate"
)

// MetricsExporter publishes a verdict for a metrics collector.
type MetricsExporter interface {
	ExportVerdict(ctx context.Context, path m.Path, verdict m.GateVerdict) error
}

// GateMetrics holds the gauges describing the latest verdict per branch and
// suite. They live in a private registry so a textfile only carries gate
// metrics.
type GateMetrics struct {
	registry *prometheus.Registry

	// Regressed is the number of newly failing tests.
	Regressed *prometheus.GaugeVec
	// Fixed is the number of baseline failures that no longer fail.
	Fixed *prometheus.GaugeVec
	// StillFailing is the number of failures shared with the baseline.
	StillFailing *prometheus.GaugeVec
	// NetNewFailures is max(0, current failed - baseline failed).
	NetNewFailures *prometheus.GaugeVec
	// Green is 1 for a passing gate, 0 otherwise.
	Green *prometheus.GaugeVec
	// BaselineAvailable is 0 when the comparison ran without a baseline.
	BaselineAvailable *prometheus.GaugeVec
}

// NewGateMetrics registers the gate gauges in a fresh registry.
func NewGateMetrics() *GateMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	labels := []string{"branch", "suite"}

	gauge := func(name, help string) *prometheus.GaugeVec {
		return factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: gateSubsystem,
			Name:      name,
			Help:      help,
		}, labels)
	}

	return &GateMetrics{
		registry:          registry,
		Regressed:         gauge("regressed_tests", "Tests failing now that did not fail in the baseline."),
		Fixed:             gauge("fixed_tests", "Baseline failures that no longer fail."),
		StillFailing:      gauge("still_failing_tests", "Tests failing in both the baseline and the current run."),
		NetNewFailures:    gauge("net_new_failures", "Increase of the failed counter over the baseline."),
		Green:             gauge("green", "1 if the gate passed, 0 otherwise."),
		BaselineAvailable: gauge("baseline_available", "1 if a baseline took part in the comparison."),
	}
}

// Observe sets every gauge from verdict.
func (g *GateMetrics) Observe(verdict m.GateVerdict) {
	ref := verdict.Ref()
	delta := verdict.Delta()

	g.Regressed.WithLabelValues(ref.Branch, ref.Suite).Set(float64(len(delta.Regressed)))
	g.Fixed.WithLabelValues(ref.Branch, ref.Suite).Set(float64(len(delta.Fixed)))
	g.StillFailing.WithLabelValues(ref.Branch, ref.Suite).Set(float64(len(delta.StillFailing)))
	g.NetNewFailures.WithLabelValues(ref.Branch, ref.Suite).Set(float64(verdict.Count().NetNewFailures))
	g.Green.WithLabelValues(ref.Branch, ref.Suite).Set(boolGauge(verdict.Green()))
	g.BaselineAvailable.WithLabelValues(ref.Branch, ref.Suite).Set(boolGauge(verdict.BaselineAvailable()))
}

// Gatherer exposes the private registry.
func (g *GateMetrics) Gatherer() prometheus.Gatherer {
	return g.registry
}

func boolGauge(value bool) float64 {
	if value {
		return 1
	}

	return 0
}

// TextfileExporter writes gate metrics in the node exporter textfile
// format.
type TextfileExporter struct {
	metrics *GateMetrics
}

// NewTextfileExporter creates an exporter with its own gauges.
func NewTextfileExporter() *TextfileExporter {
	return &TextfileExporter{metrics: NewGateMetrics()}
}

// Metrics returns the gauges backing the exporter.
func (e *TextfileExporter) Metrics() *GateMetrics {
	return e.metrics
}

// ExportVerdict implements MetricsExporter.
func (e *TextfileExporter) ExportVerdict(ctx context.Context, path m.Path, verdict m.GateVerdict) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.metrics.Observe(verdict)

	if err := prometheus.WriteToTextfile(string(path), e.metrics.Gatherer()); err != nil {
		slog.Error("failed to write metrics textfile", "path", path, "error", err)
		return fmt.Errorf("write metrics %s: %w", path, err)
	}

	return nil
}
