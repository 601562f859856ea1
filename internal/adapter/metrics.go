package adapter

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"gooze.dev/pkg/mutareport/internal/domain"
	m "gooze.dev/pkg/mutareport/internal/model"
)

const (
	metricsNamespace = "mutareport"
	rootMetricsPath  = "All files"
)

// WriteMetricsTextfile writes mutant counts, mutation scores and thresholds
// in the Prometheus textfile format to path. Excluded files and files
// without a defined score get no score sample.
func WriteMetricsTextfile(path string, root *m.Node, thresholds m.Thresholds, filter domain.MutateFilter) error {
	if filter == nil {
		filter = domain.NoFilter{}
	}

	registry := prometheus.NewRegistry()

	mutants := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "mutants",
		Help:      "Number of mutants by status.",
	}, []string{"status"})

	scores := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "mutation_score_percent",
		Help:      "Mutation score in percent by path.",
	}, []string{"path"})

	limits := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "threshold_percent",
		Help:      "Configured mutation score thresholds.",
	}, []string{"tier"})

	registry.MustRegister(mutants, scores, limits)

	stats := domain.ComputeStats(root)
	for _, status := range m.AllStatuses() {
		mutants.WithLabelValues(status.String()).Set(float64(stats.Count(status)))
	}

	setScore(scores, rootMetricsPath, stats.Score())

	for _, file := range root.Files() {
		if filter.Excluded(file) {
			continue
		}

		setScore(scores, file.RelativePath, domain.ComputeStats(file).Score())
	}

	limits.WithLabelValues("high").Set(float64(thresholds.High))
	limits.WithLabelValues("low").Set(float64(thresholds.Low))
	limits.WithLabelValues("break").Set(float64(thresholds.Break))

	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}

	slog.Debug("Wrote metrics textfile", "path", path)

	return nil
}

func setScore(scores *prometheus.GaugeVec, path string, score float64) {
	if math.IsNaN(score) {
		return
	}

	scores.WithLabelValues(path).Set(score * 100)
}
