// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/launchplan-ai/launchplan/anthropic"
	"github.com/launchplan-ai/launchplan/bedrock"
	"github.com/launchplan-ai/launchplan/llm"
	"github.com/launchplan-ai/launchplan/logger"
	"github.com/launchplan-ai/launchplan/ollama"
	"github.com/launchplan-ai/launchplan/openai"
)

// FactoryFunc builds a provider backend from its service configuration.
type FactoryFunc func(service llm.ServiceConfig, httpClient *http.Client) (llm.LanguageModel, error)

var providerFactories = map[string]FactoryFunc{}

// RegisterProviderFactory adds a backend constructor for a service type.
// Registering an already known type replaces the previous factory.
func RegisterProviderFactory(serviceType string, factory FactoryFunc) {
	providerFactories[serviceType] = factory
}

func init() {
	RegisterProviderFactory(llm.ServiceTypeOpenAI, func(service llm.ServiceConfig, httpClient *http.Client) (llm.LanguageModel, error) {
		return openai.New(openaiConfigFromService(service), httpClient), nil
	})
	RegisterProviderFactory(llm.ServiceTypeOpenAICompatible, func(service llm.ServiceConfig, httpClient *http.Client) (llm.LanguageModel, error) {
		return openai.NewCompatible(openaiConfigFromService(service), httpClient), nil
	})
	RegisterProviderFactory(llm.ServiceTypeAzure, func(service llm.ServiceConfig, httpClient *http.Client) (llm.LanguageModel, error) {
		return openai.NewAzure(openaiConfigFromService(service), httpClient), nil
	})
	RegisterProviderFactory(llm.ServiceTypeGroq, func(service llm.ServiceConfig, httpClient *http.Client) (llm.LanguageModel, error) {
		return openai.NewGroq(openaiConfigFromService(service), httpClient), nil
	})
	RegisterProviderFactory(llm.ServiceTypeAnthropic, func(service llm.ServiceConfig, httpClient *http.Client) (llm.LanguageModel, error) {
		return anthropic.New(service, httpClient), nil
	})
	RegisterProviderFactory(llm.ServiceTypeOllama, func(service llm.ServiceConfig, _ *http.Client) (llm.LanguageModel, error) {
		return ollama.New(service)
	})
	RegisterProviderFactory(llm.ServiceTypeBedrock, func(service llm.ServiceConfig, httpClient *http.Client) (llm.LanguageModel, error) {
		return bedrock.New(service, httpClient)
	})
}

func openaiConfigFromService(service llm.ServiceConfig) openai.Config {
	return openai.Config{
		APIKey:           service.APIKey,
		APIURL:           service.APIURL,
		OrgID:            service.OrgID,
		DefaultModel:     service.DefaultModel,
		OutputTokenLimit: service.OutputTokenLimit,
		RequestTimeout:   time.Duration(service.RequestTimeoutSeconds) * time.Second,
		ServiceName:      service.Type,
	}
}

// Gateway routes completion requests to a primary provider and retries a
// failed request once against the fallback provider. The fallback is not
// constructed when it would be the same service type as the primary.
type Gateway struct {
	primary  llm.LanguageModel
	fallback llm.LanguageModel
	log      logger.Logger
	metrics  llm.MetricsObserver
}

// New validates and constructs both providers up front so that
// misconfiguration surfaces at startup rather than on the first request.
func New(primary, fallback llm.ServiceConfig, log logger.Logger, metrics llm.MetricsObserver) (*Gateway, error) {
	primaryModel, err := buildModel(primary, log, metrics)
	if err != nil {
		return nil, err
	}

	g := &Gateway{
		primary: primaryModel,
		log:     log,
		metrics: metrics,
	}

	if fallback.Type != primary.Type {
		fallbackModel, err := buildModel(fallback, log, metrics)
		if err != nil {
			return nil, err
		}
		g.fallback = fallbackModel
	}

	return g, nil
}

func buildModel(service llm.ServiceConfig, log logger.Logger, metrics llm.MetricsObserver) (llm.LanguageModel, error) {
	if err := llm.ValidateService(service); err != nil {
		return nil, err
	}

	factory, ok := providerFactories[service.Type]
	if !ok {
		return nil, llm.NewConfigurationError("unsupported provider: %s", service.Type)
	}

	model, err := factory(service, &http.Client{})
	if err != nil {
		return nil, err
	}

	return llm.NewInstrumentedModel(model, log, metrics), nil
}

// ChatCompletionNoStream sends the request to the primary provider and, on
// failure, makes a single attempt against the fallback. When both fail the
// returned error carries both provider errors.
func (g *Gateway) ChatCompletionNoStream(ctx context.Context, request llm.CompletionRequest, opts ...llm.LanguageModelOption) (string, error) {
	response, primaryErr := g.primary.ChatCompletionNoStream(ctx, request, opts...)
	if primaryErr == nil {
		return response, nil
	}

	if g.fallback == nil {
		return "", primaryErr
	}

	g.log.Warn("primary provider failed, retrying with fallback",
		"primary", g.primary.Name(),
		"fallback", g.fallback.Name(),
		"error", primaryErr.Error(),
	)
	if g.metrics != nil {
		g.metrics.ObserveLLMFallback(g.primary.Name(), g.fallback.Name())
	}

	response, fallbackErr := g.fallback.ChatCompletionNoStream(ctx, request, opts...)
	if fallbackErr != nil {
		return "", errors.Errorf("both %s and %s fallback failed. primary error: %v, fallback error: %v",
			g.primary.Name(), g.fallback.Name(), primaryErr, fallbackErr)
	}

	return response, nil
}

// Name returns the primary provider name.
func (g *Gateway) Name() string {
	return g.primary.Name()
}
