// Package metric provides Prometheus metrics for the SurveyAuth tools.
package metric

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "surveyauth"

// Verification results used as label values.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// Registry holds all application metrics.
type Registry struct {
	reg *prometheus.Registry

	TokensGenerated   prometheus.Counter
	Verifications     *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	BuildInfo         *prometheus.GaugeVec
}

// NewRegistry creates a registry with every SurveyAuth metric registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		TokensGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_generated_total",
			Help:      "Total number of tokens generated",
		}),
		Verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_total",
			Help:      "Total number of token verifications by result",
		}, []string{"result"}),
		OperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of token operations in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"operation"}),
		BuildInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build information, value is always 1",
		}, []string{"version", "commit"}),
	}

	r.reg.MustRegister(
		r.TokensGenerated,
		r.Verifications,
		r.OperationDuration,
		r.BuildInfo,
		collectors.NewGoCollector(),
	)

	return r
}

// Gatherer exposes the underlying registry for export.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// SetBuildInfo records the running version.
func (r *Registry) SetBuildInfo(version, commit string) {
	r.BuildInfo.WithLabelValues(version, commit).Set(1)
}

// ObserveGenerated counts n issued tokens.
func (r *Registry) ObserveGenerated(n int) {
	r.TokensGenerated.Add(float64(n))
}

// ObserveVerification counts one verification outcome.
func (r *Registry) ObserveVerification(valid bool, err error) {
	switch {
	case err != nil:
		r.Verifications.WithLabelValues(ResultError).Inc()
	case valid:
		r.Verifications.WithLabelValues(ResultValid).Inc()
	default:
		r.Verifications.WithLabelValues(ResultInvalid).Inc()
	}
}

// Time records how long an operation took since start.
func (r *Registry) Time(operation string, start time.Time) {
	r.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// WriteTextfile writes all metrics to path in the Prometheus text
// format. The file is replaced atomically.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
