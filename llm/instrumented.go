// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package llm

import (
	"context"
	"time"

	"github.com/launchplan-ai/launchplan/logger"
)

// MetricsObserver defines the interface for observing request metrics.
type MetricsObserver interface {
	ObserveLLMRequest(provider string, elapsed float64)
	ObserveLLMFailure(provider string)
	ObserveLLMFallback(primary, fallback string)
}

// InstrumentedModel wraps a LanguageModel to record request counts,
// latencies and failures.
type InstrumentedModel struct {
	wrapped LanguageModel
	log     logger.Logger
	metrics MetricsObserver
}

func NewInstrumentedModel(wrapped LanguageModel, log logger.Logger, metrics MetricsObserver) *InstrumentedModel {
	return &InstrumentedModel{
		wrapped: wrapped,
		log:     log,
		metrics: metrics,
	}
}

func (m *InstrumentedModel) ChatCompletionNoStream(ctx context.Context, request CompletionRequest, opts ...LanguageModelOption) (string, error) {
	start := time.Now()
	response, err := m.wrapped.ChatCompletionNoStream(ctx, request, opts...)
	elapsed := time.Since(start).Seconds()

	if m.metrics != nil {
		m.metrics.ObserveLLMRequest(m.wrapped.Name(), elapsed)
		if err != nil {
			m.metrics.ObserveLLMFailure(m.wrapped.Name())
		}
	}

	m.log.Debug("llm request completed",
		"provider", m.wrapped.Name(),
		"elapsed_seconds", elapsed,
		"failed", err != nil)

	return response, err
}

func (m *InstrumentedModel) Name() string {
	return m.wrapped.Name()
}
