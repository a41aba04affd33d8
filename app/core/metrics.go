package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/seriousplay/MegaSpace/pkg/metrics"
)

type Metrics struct {
	apiResponseTime      *prometheus.HistogramVec
	apiErrorCounter      *prometheus.CounterVec
	completionTime       *prometheus.HistogramVec
	completionError      *prometheus.CounterVec
	promptAssembleTime   *prometheus.HistogramVec
	recordFailureCounter *prometheus.CounterVec
}

func NewMetrics(ns, system string) *Metrics {
	// setup metric
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		apiResponseTime:      metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter:      metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		completionTime:       metrics.NewHistogramVec("completion_response_time", []string{"driver"}),
		completionError:      metrics.NewCounterVec("completion_error", []string{"driver"}),
		promptAssembleTime:   metrics.NewHistogramVec("prompt_assemble_time", nil),
		recordFailureCounter: metrics.NewCounterVec("interaction_record_failure", []string{"stage"}),
	}

	return m
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) CompletionTimer(driver string) *prometheus.Timer {
	return prometheus.NewTimer(m.completionTime.WithLabelValues(driver))
}

func (m *Metrics) CompletionErrorInc(driver string) {
	m.completionError.WithLabelValues(driver).Inc()
}

func (m *Metrics) PromptAssembleTimer() *prometheus.Timer {
	return prometheus.NewTimer(m.promptAssembleTime.WithLabelValues())
}

func (m *Metrics) RecordFailureInc(stage string) {
	m.recordFailureCounter.WithLabelValues(stage).Inc()
}
