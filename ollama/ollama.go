// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

// Package ollama implements the language model interface against a local or
// remote Ollama instance. Ollama is the designated fallback backend, so this
// provider must construct without credentials.
package ollama

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	ollamaSDK "github.com/tmc/langchaingo/llms/ollama"

	"github.com/launchplan-ai/launchplan/llm"
)

const (
	DefaultBaseURL = "http://host.docker.internal:11434"
	DefaultModel   = "llama3.2"

	// Local models generate slowly; allow far more headroom than the hosted
	// providers get.
	DefaultRequestTimeout = 120 * time.Second
)

type Ollama struct {
	client         *ollamaSDK.LLM
	defaultModel   string
	requestTimeout time.Duration
}

func New(llmService llm.ServiceConfig) (*Ollama, error) {
	baseURL := llmService.APIURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	model := llmService.DefaultModel
	if model == "" {
		model = DefaultModel
	}

	client, err := ollamaSDK.New(
		ollamaSDK.WithServerURL(baseURL),
		ollamaSDK.WithModel(model),
	)
	if err != nil {
		return nil, llm.NewConfigurationError("failed to create ollama client: %v", err)
	}

	timeout := DefaultRequestTimeout
	if llmService.RequestTimeoutSeconds > 0 {
		timeout = time.Duration(llmService.RequestTimeoutSeconds) * time.Second
	}

	return &Ollama{
		client:         client,
		defaultModel:   model,
		requestTimeout: timeout,
	}, nil
}

func postsToMessageContents(posts []llm.Post) []llms.MessageContent {
	result := make([]llms.MessageContent, 0, len(posts))

	for _, post := range posts {
		var role llms.ChatMessageType
		switch post.Role {
		case llm.PostRoleSystem:
			role = llms.ChatMessageTypeSystem
		case llm.PostRoleBot:
			role = llms.ChatMessageTypeAI
		case llm.PostRoleUser:
			role = llms.ChatMessageTypeHuman
		default:
			role = llms.ChatMessageTypeHuman
		}

		result = append(result, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(post.Message)},
		})
	}

	return result
}

func (o *Ollama) GetDefaultConfig() llm.LanguageModelConfig {
	return llm.LanguageModelConfig{
		Model: o.defaultModel,
	}
}

func (o *Ollama) createConfig(opts []llm.LanguageModelOption) llm.LanguageModelConfig {
	cfg := o.GetDefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (o *Ollama) ChatCompletionNoStream(ctx context.Context, request llm.CompletionRequest, opts ...llm.LanguageModelOption) (string, error) {
	cfg := o.createConfig(opts)
	messages := postsToMessageContents(request.Posts)

	callOpts := make([]llms.CallOption, 0, 4)
	if cfg.Model != "" {
		callOpts = append(callOpts, llms.WithModel(cfg.Model))
	}
	if cfg.MaxGeneratedTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(cfg.MaxGeneratedTokens))
	}
	if cfg.Temperature != nil {
		callOpts = append(callOpts, llms.WithTemperature(*cfg.Temperature))
	}
	if cfg.JSONOutputFormat != nil {
		// Ollama has no schema-constrained output, JSON mode is the closest.
		callOpts = append(callOpts, llms.WithJSONMode())
	}

	ctx, cancel := context.WithTimeout(ctx, o.requestTimeout)
	defer cancel()

	resp, err := o.client.GenerateContent(ctx, messages, callOpts...)
	if err != nil {
		return "", llm.NewProviderError(o.Name(), err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", llm.NewProviderError(o.Name(), errors.New("no completion choices returned"))
	}

	return resp.Choices[0].Content, nil
}

func (o *Ollama) Name() string {
	return llm.ServiceTypeOllama
}
