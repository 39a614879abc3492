// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

// Package openai implements the language model interface against the OpenAI
// API and any OpenAI-compatible endpoint, which covers Groq and Azure.
package openai

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/azure"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
	"github.com/pkg/errors"

	"github.com/launchplan-ai/launchplan/llm"
)

const (
	// GroqAPIURL is the OpenAI-compatible endpoint Groq exposes.
	GroqAPIURL = "https://api.groq.com/openai/v1"

	azureAPIVersion = "2025-04-01-preview"

	DefaultRequestTimeout = 60 * time.Second
)

type Config struct {
	APIKey           string        `json:"apiKey"`
	APIURL           string        `json:"apiURL"`
	OrgID            string        `json:"orgID"`
	DefaultModel     string        `json:"defaultModel"`
	OutputTokenLimit int           `json:"outputTokenLimit"`
	RequestTimeout   time.Duration `json:"requestTimeout"`

	// ServiceName labels this backend in errors and metrics. Defaults to
	// llm.ServiceTypeOpenAI.
	ServiceName string `json:"serviceName"`
}

type OpenAI struct {
	client openai.Client
	config Config
}

func New(config Config, httpClient *http.Client) *OpenAI {
	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithHTTPClient(httpClient),
	}

	if config.OrgID != "" {
		opts = append(opts, option.WithOrganization(config.OrgID))
	}

	return &OpenAI{
		client: openai.NewClient(opts...),
		config: withConfigDefaults(config, llm.ServiceTypeOpenAI),
	}
}

// NewCompatible targets any endpoint speaking the OpenAI chat completion
// protocol.
func NewCompatible(config Config, httpClient *http.Client) *OpenAI {
	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithHTTPClient(httpClient),
		option.WithBaseURL(strings.TrimSuffix(config.APIURL, "/")),
	}

	return &OpenAI{
		client: openai.NewClient(opts...),
		config: withConfigDefaults(config, llm.ServiceTypeOpenAICompatible),
	}
}

// NewGroq is NewCompatible pinned to the Groq endpoint.
func NewGroq(config Config, httpClient *http.Client) *OpenAI {
	config.APIURL = GroqAPIURL
	config.ServiceName = llm.ServiceTypeGroq
	return NewCompatible(config, httpClient)
}

func NewAzure(config Config, httpClient *http.Client) *OpenAI {
	opts := []option.RequestOption{
		azure.WithEndpoint(strings.TrimSuffix(config.APIURL, "/"), azureAPIVersion),
		azure.WithAPIKey(config.APIKey),
		option.WithHTTPClient(httpClient),
	}

	return &OpenAI{
		client: openai.NewClient(opts...),
		config: withConfigDefaults(config, llm.ServiceTypeAzure),
	}
}

func withConfigDefaults(config Config, serviceName string) Config {
	if config.ServiceName == "" {
		config.ServiceName = serviceName
	}
	if config.RequestTimeout == 0 {
		config.RequestTimeout = DefaultRequestTimeout
	}
	return config
}

func (s *OpenAI) GetDefaultConfig() llm.LanguageModelConfig {
	return llm.LanguageModelConfig{
		Model:              s.config.DefaultModel,
		MaxGeneratedTokens: s.config.OutputTokenLimit,
	}
}

func (s *OpenAI) createConfig(opts []llm.LanguageModelOption) llm.LanguageModelConfig {
	cfg := s.GetDefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// getModelConstant converts string model names to the SDK's model constants
func getModelConstant(model string) shared.ChatModel {
	switch model {
	case "gpt-4o":
		return shared.ChatModelGPT4o
	case "gpt-4o-mini":
		return shared.ChatModelGPT4oMini
	case "gpt-4-turbo":
		return shared.ChatModelGPT4Turbo
	case "gpt-4":
		return shared.ChatModelGPT4
	case "gpt-3.5-turbo":
		return shared.ChatModelGPT3_5Turbo
	default:
		// For compatible endpoints and newer versions, use the string as-is
		return model
	}
}

func postsToChatCompletionMessages(posts []llm.Post) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(posts))

	for _, post := range posts {
		switch post.Role {
		case llm.PostRoleSystem:
			result = append(result, openai.SystemMessage(post.Message))
		case llm.PostRoleBot:
			result = append(result, openai.AssistantMessage(post.Message))
		case llm.PostRoleUser:
			result = append(result, openai.UserMessage(post.Message))
		}
	}

	return result
}

func (s *OpenAI) completionRequestFromConfig(cfg llm.LanguageModelConfig) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model: getModelConstant(cfg.Model),
	}

	if cfg.MaxGeneratedTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(cfg.MaxGeneratedTokens))
	}

	if cfg.Temperature != nil {
		params.Temperature = openai.Float(*cfg.Temperature)
	}

	if cfg.JSONOutputFormat != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "output_format",
					Schema: cfg.JSONOutputFormat,
					Strict: openai.Bool(true),
				},
			},
		}
	}

	return params
}

func (s *OpenAI) ChatCompletionNoStream(ctx context.Context, request llm.CompletionRequest, opts ...llm.LanguageModelOption) (string, error) {
	cfg := s.createConfig(opts)
	params := s.completionRequestFromConfig(cfg)
	params.Messages = postsToChatCompletionMessages(request.Posts)

	ctx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	resp, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", llm.NewProviderError(s.Name(), err)
	}

	if len(resp.Choices) == 0 {
		return "", llm.NewProviderError(s.Name(), errors.New("no completion choices returned"))
	}

	return resp.Choices[0].Message.Content, nil
}

func (s *OpenAI) Name() string {
	return s.config.ServiceName
}
