// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package gateway

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchplan-ai/launchplan/llm"
	"github.com/launchplan-ai/launchplan/logger"
	"github.com/launchplan-ai/launchplan/marketing"
	"github.com/launchplan-ai/launchplan/plan"
	"github.com/launchplan-ai/launchplan/prompts"
)

type stubModel struct {
	name     string
	response string
	err      error
	calls    int
}

func (s *stubModel) ChatCompletionNoStream(_ context.Context, _ llm.CompletionRequest, _ ...llm.LanguageModelOption) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubModel) Name() string {
	return s.name
}

type recordingMetrics struct {
	requests  int
	failures  int
	fallbacks [][2]string
}

func (r *recordingMetrics) ObserveLLMRequest(string, float64) {
	r.requests++
}

func (r *recordingMetrics) ObserveLLMFailure(string) {
	r.failures++
}

func (r *recordingMetrics) ObserveLLMFallback(primary, fallback string) {
	r.fallbacks = append(r.fallbacks, [2]string{primary, fallback})
}

func ollamaService() llm.ServiceConfig {
	return llm.ServiceConfig{
		Type:         llm.ServiceTypeOllama,
		APIURL:       "http://localhost:11434",
		DefaultModel: "llama3.2",
	}
}

func TestNew(t *testing.T) {
	t.Run("valid primary and fallback", func(t *testing.T) {
		primary := llm.ServiceConfig{
			Type:         llm.ServiceTypeOpenAI,
			APIKey:       "sk-test",
			DefaultModel: "gpt-4o",
		}
		g, err := New(primary, ollamaService(), logger.NewNop(), nil)
		require.NoError(t, err)
		require.NotNil(t, g)
		assert.NotNil(t, g.fallback)
		assert.Equal(t, "openai", g.Name())
	})

	t.Run("fallback skipped when same type as primary", func(t *testing.T) {
		g, err := New(ollamaService(), ollamaService(), logger.NewNop(), nil)
		require.NoError(t, err)
		assert.Nil(t, g.fallback)
		assert.Equal(t, "ollama", g.Name())
	})

	t.Run("unsupported primary type", func(t *testing.T) {
		primary := llm.ServiceConfig{Type: "watson"}
		g, err := New(primary, ollamaService(), logger.NewNop(), nil)
		require.Error(t, err)
		assert.Nil(t, g)

		var configErr *llm.ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Contains(t, err.Error(), "unsupported provider: watson")
	})

	t.Run("groq without api key", func(t *testing.T) {
		primary := llm.ServiceConfig{
			Type:         llm.ServiceTypeGroq,
			DefaultModel: "llama-3.3-70b-versatile",
		}
		g, err := New(primary, ollamaService(), logger.NewNop(), nil)
		require.Error(t, err)
		assert.Nil(t, g)
		assert.Contains(t, err.Error(), "GROQ_API_KEY not found in environment variables")
	})

	t.Run("invalid fallback rejected at construction", func(t *testing.T) {
		primary := llm.ServiceConfig{
			Type:         llm.ServiceTypeAnthropic,
			APIKey:       "sk-ant-test",
			DefaultModel: "claude-sonnet-4-20250514",
		}
		fallback := llm.ServiceConfig{Type: llm.ServiceTypeOllama}
		g, err := New(primary, fallback, logger.NewNop(), nil)
		require.Error(t, err)
		assert.Nil(t, g)

		var configErr *llm.ConfigurationError
		require.ErrorAs(t, err, &configErr)
	})
}

func TestChatCompletionNoStream(t *testing.T) {
	ctx := context.Background()
	request := llm.NewUserRequest("Analyze the market for EcoBottle.")

	t.Run("primary succeeds, fallback untouched", func(t *testing.T) {
		primary := &stubModel{name: "openai", response: "primary answer"}
		fallback := &stubModel{name: "ollama", response: "fallback answer"}
		metrics := &recordingMetrics{}
		g := &Gateway{primary: primary, fallback: fallback, log: logger.NewNop(), metrics: metrics}

		response, err := g.ChatCompletionNoStream(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, "primary answer", response)
		assert.Equal(t, 1, primary.calls)
		assert.Equal(t, 0, fallback.calls)
		assert.Empty(t, metrics.fallbacks)
	})

	t.Run("primary fails, fallback answers", func(t *testing.T) {
		primary := &stubModel{name: "groq", err: errors.New("rate limited")}
		fallback := &stubModel{name: "ollama", response: "fallback answer"}
		metrics := &recordingMetrics{}
		g := &Gateway{primary: primary, fallback: fallback, log: logger.NewNop(), metrics: metrics}

		response, err := g.ChatCompletionNoStream(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, "fallback answer", response)
		assert.Equal(t, 1, primary.calls)
		assert.Equal(t, 1, fallback.calls)
		require.Len(t, metrics.fallbacks, 1)
		assert.Equal(t, [2]string{"groq", "ollama"}, metrics.fallbacks[0])
	})

	t.Run("both fail, error names both providers", func(t *testing.T) {
		primary := &stubModel{name: "openai", err: errors.New("quota exceeded")}
		fallback := &stubModel{name: "ollama", err: errors.New("connection refused")}
		g := &Gateway{primary: primary, fallback: fallback, log: logger.NewNop()}

		response, err := g.ChatCompletionNoStream(ctx, request)
		require.Error(t, err)
		assert.Empty(t, response)
		assert.Contains(t, err.Error(), "both openai and ollama fallback failed")
		assert.Contains(t, err.Error(), "quota exceeded")
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("no fallback configured, primary error propagates", func(t *testing.T) {
		primaryErr := errors.New("model not found")
		primary := &stubModel{name: "ollama", err: primaryErr}
		g := &Gateway{primary: primary, log: logger.NewNop()}

		_, err := g.ChatCompletionNoStream(ctx, request)
		require.Error(t, err)
		assert.Equal(t, primaryErr, err)
		assert.Equal(t, 1, primary.calls)
	})
}

// Every pipeline call fails on the primary and recovers on the fallback; the
// generated document must still be complete.
func TestPipelineCompletesThroughFallback(t *testing.T) {
	primary := &stubModel{name: "groq", err: errors.New("rate limited")}
	fallback := &stubModel{name: "ollama", response: "{}"}
	g := &Gateway{primary: primary, fallback: fallback, log: logger.NewNop()}

	promptLibrary, err := prompts.New()
	require.NoError(t, err)

	orchestrator := marketing.New(g, promptLibrary, logger.NewNop())

	doc, err := orchestrator.GenerateDocument(context.Background(), plan.Attributes{
		"product_name":     "EcoBottle",
		"product_category": "drinkware",
	}, false)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, 5, primary.calls)
	assert.Equal(t, 5, fallback.calls)

	assert.Equal(t, "EcoBottle", doc.Metadata.ProductName)
	assert.Equal(t, "fast_v1", doc.Metadata.Version)
	require.Len(t, doc.Sections, len(plan.SectionKeys()))
	for _, key := range plan.SectionKeys() {
		assert.Contains(t, doc.Sections, key)
	}
	assert.InDelta(t, 7.5, doc.Evaluation.OverallScore, 0.001)
}
