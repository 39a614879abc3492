// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

// Package bedrock implements the language model interface against the AWS
// Bedrock Converse API.
package bedrock

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/pkg/errors"

	"github.com/launchplan-ai/launchplan/llm"
)

const (
	DefaultMaxTokens      = 8192
	DefaultRequestTimeout = 60 * time.Second

	maxInt32 = 2147483647
)

type Bedrock struct {
	client           *bedrockruntime.Client
	defaultModel     string
	outputTokenLimit int
	requestTimeout   time.Duration
}

func New(llmService llm.ServiceConfig, httpClient *http.Client) (*Bedrock, error) {
	configOpts := []func(*config.LoadOptions) error{
		config.WithRegion(llmService.Region),
		config.WithHTTPClient(httpClient),
	}

	// Static IAM credentials when configured, otherwise the SDK default
	// credential chain (environment, shared config, instance role).
	if llmService.AWSAccessKeyID != "" && llmService.AWSSecretAccessKey != "" {
		configOpts = append(configOpts, config.WithCredentialsProvider(
			aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					llmService.AWSAccessKeyID,
					llmService.AWSSecretAccessKey,
					"",
				),
			),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), configOpts...)
	if err != nil {
		return nil, llm.NewConfigurationError("failed to load AWS config: %v", err)
	}

	var clientOpts []func(*bedrockruntime.Options)
	if llmService.APIURL != "" {
		clientOpts = append(clientOpts, func(o *bedrockruntime.Options) {
			o.BaseEndpoint = aws.String(llmService.APIURL)
		})
	}

	timeout := DefaultRequestTimeout
	if llmService.RequestTimeoutSeconds > 0 {
		timeout = time.Duration(llmService.RequestTimeoutSeconds) * time.Second
	}

	return &Bedrock{
		client:           bedrockruntime.NewFromConfig(cfg, clientOpts...),
		defaultModel:     llmService.DefaultModel,
		outputTokenLimit: llmService.OutputTokenLimit,
		requestTimeout:   timeout,
	}, nil
}

// conversationToMessages creates system blocks and a slice of messages from
// conversation posts. Consecutive posts with the same role are merged, which
// the Converse API requires.
func conversationToMessages(posts []llm.Post) ([]types.SystemContentBlock, []types.Message) {
	var systemBlocks []types.SystemContentBlock
	messages := make([]types.Message, 0, len(posts))

	var currentBlocks []types.ContentBlock
	var currentRole types.ConversationRole

	flushCurrentMessage := func() {
		if len(currentBlocks) > 0 {
			messages = append(messages, types.Message{
				Role:    currentRole,
				Content: currentBlocks,
			})
			currentBlocks = nil
		}
	}

	for _, post := range posts {
		switch post.Role {
		case llm.PostRoleSystem:
			// System messages go in a separate array
			systemBlocks = append(systemBlocks, &types.SystemContentBlockMemberText{
				Value: post.Message,
			})
			continue
		case llm.PostRoleBot:
			if currentRole != types.ConversationRoleAssistant {
				flushCurrentMessage()
				currentRole = types.ConversationRoleAssistant
			}
		case llm.PostRoleUser:
			if currentRole != types.ConversationRoleUser {
				flushCurrentMessage()
				currentRole = types.ConversationRoleUser
			}
		default:
			continue
		}

		if post.Message != "" {
			currentBlocks = append(currentBlocks, &types.ContentBlockMemberText{
				Value: post.Message,
			})
		}
	}

	flushCurrentMessage()
	return systemBlocks, messages
}

func (b *Bedrock) GetDefaultConfig() llm.LanguageModelConfig {
	config := llm.LanguageModelConfig{
		Model: b.defaultModel,
	}
	if b.outputTokenLimit == 0 {
		config.MaxGeneratedTokens = DefaultMaxTokens
	} else {
		config.MaxGeneratedTokens = b.outputTokenLimit
	}
	return config
}

func (b *Bedrock) createConfig(opts []llm.LanguageModelOption) llm.LanguageModelConfig {
	cfg := b.GetDefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (b *Bedrock) ChatCompletionNoStream(ctx context.Context, request llm.CompletionRequest, opts ...llm.LanguageModelOption) (string, error) {
	cfg := b.createConfig(opts)
	system, messages := conversationToMessages(request.Posts)

	if cfg.MaxGeneratedTokens > maxInt32 {
		return "", llm.NewProviderError(b.Name(), errors.Errorf("max token value (%d) exceeds int32 maximum", cfg.MaxGeneratedTokens))
	}

	params := &bedrockruntime.ConverseInput{
		ModelId:  aws.String(cfg.Model),
		Messages: messages,
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens: aws.Int32(int32(cfg.MaxGeneratedTokens)), //nolint:gosec // G115: Overflow checked above
		},
	}

	if len(system) > 0 {
		params.System = system
	}

	if cfg.Temperature != nil {
		params.InferenceConfig.Temperature = aws.Float32(float32(*cfg.Temperature))
	}

	ctx, cancel := context.WithTimeout(ctx, b.requestTimeout)
	defer cancel()

	out, err := b.client.Converse(ctx, params)
	if err != nil {
		return "", llm.NewProviderError(b.Name(), err)
	}

	message, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return "", llm.NewProviderError(b.Name(), errors.New("no message in converse output"))
	}

	var text strings.Builder
	for _, block := range message.Value.Content {
		if textBlock, ok := block.(*types.ContentBlockMemberText); ok {
			text.WriteString(textBlock.Value)
		}
	}

	return text.String(), nil
}

func (b *Bedrock) Name() string {
	return llm.ServiceTypeBedrock
}
