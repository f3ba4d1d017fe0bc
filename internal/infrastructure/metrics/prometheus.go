package metrics

import (
	"bufio"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const (
	namespace = "seedgen"

	resultOk    = "ok"
	resultError = "error"
)

// Service collects pipeline stats on a private Prometheus registry.
type Service struct {
	registry *prometheus.Registry

	runs      *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewService returns a new metrics Service with all collectors registered.
func NewService() *Service {
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_total",
		Help:      "Number of completed runs by command and result.",
	}, []string{"command", "result"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stage_failures_total",
		Help:      "Number of failures by pipeline stage.",
	}, []string{"stage"})
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "stage_duration_seconds",
		Help:      "Time spent in every successfully completed pipeline stage.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 10, 7),
	}, []string{"stage"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(runs, failures, durations)

	return &Service{registry, runs, failures, durations}
}

func (s *Service) StageCompleted(stage string, elapsed time.Duration) {
	s.durations.WithLabelValues(stage).Observe(elapsed.Seconds())
}

func (s *Service) StageFailed(stage string) {
	s.failures.WithLabelValues(stage).Inc()
}

func (s *Service) RunCompleted(command string, err error) {
	result := resultOk
	if err != nil {
		result = resultError
	}
	s.runs.WithLabelValues(command, result).Inc()
}

// Registry returns the underlying registry, mostly for testing purposes.
func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}

// Dump writes every gathered metric family to w, one per line.
func (s *Service) Dump(w io.Writer) error {
	metricFamilies, err := s.registry.Gather()
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(w)
	defer writer.Flush()

	for _, mf := range metricFamilies {
		if _, err := writer.WriteString(mf.String() + "\n"); err != nil {
			return err
		}
	}
	log.Debugf("metrics: dumped %d metric families", len(metricFamilies))
	return nil
}
