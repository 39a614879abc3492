// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

// Package llm defines the provider-agnostic completion types spoken by every
// language model backend and by the pipeline code that consumes them.
package llm

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
)

type PostRole string

const (
	PostRoleUser   PostRole = "user"
	PostRoleBot    PostRole = "bot"
	PostRoleSystem PostRole = "system"
)

// Post is a single message in a completion conversation.
type Post struct {
	Role    PostRole `json:"role"`
	Message string   `json:"message"`
}

// CompletionRequest is the transport-neutral request handed to providers.
type CompletionRequest struct {
	Posts []Post
}

// NewUserRequest builds a request containing a single user message.
func NewUserRequest(message string) CompletionRequest {
	return CompletionRequest{Posts: []Post{
		{Role: PostRoleUser, Message: message},
	}}
}

// NewSystemRequest builds a request with a system message followed by a user
// message.
func NewSystemRequest(system, message string) CompletionRequest {
	return CompletionRequest{Posts: []Post{
		{Role: PostRoleSystem, Message: system},
		{Role: PostRoleUser, Message: message},
	}}
}

// LanguageModelConfig holds the per-call generation parameters. Providers
// seed it from their service defaults and fold options on top.
type LanguageModelConfig struct {
	Model              string
	MaxGeneratedTokens int

	// Temperature is a pointer so an unset value defers to the provider
	// default instead of forcing zero.
	Temperature *float64

	// JSONOutputFormat requests schema-constrained output on providers that
	// support it. Providers without native support ignore it; callers must
	// still run responses through the tolerant extractor.
	JSONOutputFormat *jsonschema.Schema
}

type LanguageModelOption func(*LanguageModelConfig)

func WithModel(model string) LanguageModelOption {
	return func(cfg *LanguageModelConfig) {
		cfg.Model = model
	}
}

func WithMaxGeneratedTokens(maxGeneratedTokens int) LanguageModelOption {
	return func(cfg *LanguageModelConfig) {
		cfg.MaxGeneratedTokens = maxGeneratedTokens
	}
}

func WithTemperature(temperature float64) LanguageModelOption {
	return func(cfg *LanguageModelConfig) {
		cfg.Temperature = &temperature
	}
}

func WithJSONOutput(schema *jsonschema.Schema) LanguageModelOption {
	return func(cfg *LanguageModelConfig) {
		cfg.JSONOutputFormat = schema
	}
}

// LanguageModel is implemented by every provider backend. Responses are read
// whole; nothing in the pipeline consumes partial output.
type LanguageModel interface {
	ChatCompletionNoStream(ctx context.Context, request CompletionRequest, opts ...LanguageModelOption) (string, error)
	Name() string
}
