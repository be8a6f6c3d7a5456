// Package metric provides Prometheus metrics for the SurveyAuth tools.
//
// Metrics are kept in a private registry per process and exported with
// the node-exporter textfile format, so a one-shot command can leave its
// counters behind for a collector to pick up. There is no HTTP endpoint.
package metric
