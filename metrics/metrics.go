// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	MetricsNamespace       = "launchplan"
	MetricsSubsystemSystem = "system"
	MetricsSubsystemHTTP   = "http"
	MetricsSubsystemAPI    = "api"
	MetricsSubsystemLLM    = "llm"
	MetricsSubsystemPlans  = "plans"

	MetricsVersionLabel = "version"
)

type Metrics interface {
	GetRegistry() *prometheus.Registry

	ObserveAPIEndpointDuration(handler, method, statusCode string, elapsed float64)

	IncrementHTTPRequests()
	IncrementHTTPErrors()

	ObserveLLMRequest(provider string, elapsed float64)
	ObserveLLMFailure(provider string)
	ObserveLLMFallback(primary, fallback string)

	IncrementPlansGenerated(mode string)
	ObservePlanQuality(score float64)
}

type InstanceInfo struct {
	ServiceVersion string
}

// metrics used to instrumentate metrics in prometheus.
type metrics struct {
	registry *prometheus.Registry

	serviceStartTime prometheus.Gauge
	serviceInfo      prometheus.Gauge

	apiTime *prometheus.HistogramVec

	httpRequestsTotal prometheus.Counter
	httpErrorsTotal   prometheus.Counter

	llmRequestsTotal  *prometheus.CounterVec
	llmFailuresTotal  *prometheus.CounterVec
	llmFallbacksTotal *prometheus.CounterVec
	llmRequestTime    *prometheus.HistogramVec

	plansGeneratedTotal *prometheus.CounterVec
	planQuality         prometheus.Gauge
}

// NewMetrics Factory method to create a new metrics collector.
func NewMetrics(info InstanceInfo) Metrics {
	m := &metrics{}

	m.registry = prometheus.NewRegistry()
	options := collectors.ProcessCollectorOpts{
		Namespace: MetricsNamespace,
	}
	m.registry.MustRegister(collectors.NewProcessCollector(options))
	m.registry.MustRegister(collectors.NewGoCollector())

	m.serviceStartTime = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemSystem,
		Name:      "service_start_timestamp_seconds",
		Help:      "The time the service started.",
	})
	m.serviceStartTime.SetToCurrentTime()
	m.registry.MustRegister(m.serviceStartTime)

	m.serviceInfo = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemSystem,
		Name:      "service_info",
		Help:      "The service version.",
		ConstLabels: map[string]string{
			MetricsVersionLabel: info.ServiceVersion,
		},
	})
	m.serviceInfo.Set(1)
	m.registry.MustRegister(m.serviceInfo)

	m.apiTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystemAPI,
			Name:      "time_seconds",
			Help:      "Time to execute the api handler",
		},
		[]string{"handler", "method", "status_code"},
	)
	m.registry.MustRegister(m.apiTime)

	m.httpRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemHTTP,
		Name:      "requests_total",
		Help:      "The total number of http API requests.",
	})
	m.registry.MustRegister(m.httpRequestsTotal)

	m.httpErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemHTTP,
		Name:      "errors_total",
		Help:      "The total number of http API errors.",
	})
	m.registry.MustRegister(m.httpErrorsTotal)

	m.llmRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemLLM,
		Name:      "requests_total",
		Help:      "The total number of LLM requests.",
	}, []string{"provider"})
	m.registry.MustRegister(m.llmRequestsTotal)

	m.llmFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemLLM,
		Name:      "failures_total",
		Help:      "The total number of failed LLM requests.",
	}, []string{"provider"})
	m.registry.MustRegister(m.llmFailuresTotal)

	m.llmFallbacksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemLLM,
		Name:      "fallbacks_total",
		Help:      "The total number of requests retried against the fallback provider.",
	}, []string{"primary", "fallback"})
	m.registry.MustRegister(m.llmFallbacksTotal)

	m.llmRequestTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystemLLM,
			Name:      "request_time_seconds",
			Help:      "Time to complete an LLM request.",
			Buckets:   []float64{1, 2.5, 5, 10, 20, 30, 60, 120, 180},
		},
		[]string{"provider"},
	)
	m.registry.MustRegister(m.llmRequestTime)

	m.plansGeneratedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemPlans,
		Name:      "generated_total",
		Help:      "The total number of marketing plans generated.",
	}, []string{"mode"})
	m.registry.MustRegister(m.plansGeneratedTotal)

	m.planQuality = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemPlans,
		Name:      "quality_score",
		Help:      "The overall quality score of the most recently generated plan.",
	})
	m.registry.MustRegister(m.planQuality)

	return m
}

func (m *metrics) GetRegistry() *prometheus.Registry {
	return m.registry
}

func (m *metrics) ObserveAPIEndpointDuration(handler, method, statusCode string, elapsed float64) {
	if m != nil {
		m.apiTime.With(prometheus.Labels{"handler": handler, "method": method, "status_code": statusCode}).Observe(elapsed)
	}
}

func (m *metrics) IncrementHTTPRequests() {
	if m != nil {
		m.httpRequestsTotal.Inc()
	}
}

func (m *metrics) IncrementHTTPErrors() {
	if m != nil {
		m.httpErrorsTotal.Inc()
	}
}

func (m *metrics) ObserveLLMRequest(provider string, elapsed float64) {
	if m != nil {
		if provider == "" {
			provider = "unknown"
		}
		m.llmRequestsTotal.With(prometheus.Labels{"provider": provider}).Inc()
		m.llmRequestTime.With(prometheus.Labels{"provider": provider}).Observe(elapsed)
	}
}

func (m *metrics) ObserveLLMFailure(provider string) {
	if m != nil {
		if provider == "" {
			provider = "unknown"
		}
		m.llmFailuresTotal.With(prometheus.Labels{"provider": provider}).Inc()
	}
}

func (m *metrics) ObserveLLMFallback(primary, fallback string) {
	if m != nil {
		m.llmFallbacksTotal.With(prometheus.Labels{"primary": primary, "fallback": fallback}).Inc()
	}
}

func (m *metrics) IncrementPlansGenerated(mode string) {
	if m != nil {
		m.plansGeneratedTotal.With(prometheus.Labels{"mode": mode}).Inc()
	}
}

func (m *metrics) ObservePlanQuality(score float64) {
	if m != nil {
		m.planQuality.Set(score)
	}
}
