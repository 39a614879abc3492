// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

// Package anthropic implements the language model interface against the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"net/http"
	"strings"
	"time"

	anthropicSDK "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/launchplan-ai/launchplan/llm"
)

const (
	DefaultMaxTokens      = 8192
	DefaultRequestTimeout = 60 * time.Second
)

type Anthropic struct {
	client           anthropicSDK.Client
	defaultModel     string
	outputTokenLimit int
	requestTimeout   time.Duration
}

func New(llmService llm.ServiceConfig, httpClient *http.Client) *Anthropic {
	client := anthropicSDK.NewClient(
		option.WithAPIKey(llmService.APIKey),
		option.WithHTTPClient(httpClient),
	)

	timeout := DefaultRequestTimeout
	if llmService.RequestTimeoutSeconds > 0 {
		timeout = time.Duration(llmService.RequestTimeoutSeconds) * time.Second
	}

	return &Anthropic{
		client:           client,
		defaultModel:     llmService.DefaultModel,
		outputTokenLimit: llmService.OutputTokenLimit,
		requestTimeout:   timeout,
	}
}

// conversationToMessages creates a system prompt and a slice of input
// messages from conversation posts. Consecutive posts with the same role are
// merged into one message, which the Messages API requires.
func conversationToMessages(posts []llm.Post) (string, []anthropicSDK.MessageParam) {
	systemMessage := ""
	messages := make([]anthropicSDK.MessageParam, 0, len(posts))

	var currentBlocks []anthropicSDK.ContentBlockParamUnion
	var currentRole anthropicSDK.MessageParamRole

	flushCurrentMessage := func() {
		if len(currentBlocks) > 0 {
			messages = append(messages, anthropicSDK.MessageParam{
				Role:    currentRole,
				Content: currentBlocks,
			})
			currentBlocks = nil
		}
	}

	for _, post := range posts {
		switch post.Role {
		case llm.PostRoleSystem:
			systemMessage += post.Message
			continue
		case llm.PostRoleBot:
			if currentRole != anthropicSDK.MessageParamRoleAssistant {
				flushCurrentMessage()
				currentRole = anthropicSDK.MessageParamRoleAssistant
			}
		case llm.PostRoleUser:
			if currentRole != anthropicSDK.MessageParamRoleUser {
				flushCurrentMessage()
				currentRole = anthropicSDK.MessageParamRoleUser
			}
		default:
			continue
		}

		if post.Message != "" {
			currentBlocks = append(currentBlocks, anthropicSDK.NewTextBlock(post.Message))
		}
	}

	flushCurrentMessage()
	return systemMessage, messages
}

func (a *Anthropic) GetDefaultConfig() llm.LanguageModelConfig {
	config := llm.LanguageModelConfig{
		Model: a.defaultModel,
	}
	if a.outputTokenLimit == 0 {
		config.MaxGeneratedTokens = DefaultMaxTokens
	} else {
		config.MaxGeneratedTokens = a.outputTokenLimit
	}
	return config
}

func (a *Anthropic) createConfig(opts []llm.LanguageModelOption) llm.LanguageModelConfig {
	cfg := a.GetDefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (a *Anthropic) ChatCompletionNoStream(ctx context.Context, request llm.CompletionRequest, opts ...llm.LanguageModelOption) (string, error) {
	cfg := a.createConfig(opts)
	system, messages := conversationToMessages(request.Posts)

	params := anthropicSDK.MessageNewParams{
		Model:     anthropicSDK.Model(cfg.Model),
		MaxTokens: int64(cfg.MaxGeneratedTokens),
		Messages:  messages,
	}

	if system != "" {
		params.System = []anthropicSDK.TextBlockParam{{
			Text: system,
		}}
	}

	if cfg.Temperature != nil {
		params.Temperature = anthropicSDK.Float(*cfg.Temperature)
	}

	ctx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()

	message, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", llm.NewProviderError(a.Name(), err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return text.String(), nil
}

func (a *Anthropic) Name() string {
	return llm.ServiceTypeAnthropic
}
