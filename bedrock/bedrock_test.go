// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package bedrock

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchplan-ai/launchplan/llm"
)

func TestConversationToMessages(t *testing.T) {
	t.Run("system and user messages", func(t *testing.T) {
		posts := []llm.Post{
			{Role: llm.PostRoleSystem, Message: "You are a helpful assistant."},
			{Role: llm.PostRoleUser, Message: "Hello!"},
		}

		system, messages := conversationToMessages(posts)

		require.Len(t, system, 1)
		systemText, ok := system[0].(*types.SystemContentBlockMemberText)
		require.True(t, ok)
		assert.Equal(t, "You are a helpful assistant.", systemText.Value)

		require.Len(t, messages, 1)
		assert.Equal(t, types.ConversationRoleUser, messages[0].Role)
	})

	t.Run("consecutive same-role posts merged", func(t *testing.T) {
		posts := []llm.Post{
			{Role: llm.PostRoleUser, Message: "First."},
			{Role: llm.PostRoleUser, Message: "Second."},
			{Role: llm.PostRoleBot, Message: "Reply."},
		}

		_, messages := conversationToMessages(posts)

		require.Len(t, messages, 2)
		assert.Equal(t, types.ConversationRoleUser, messages[0].Role)
		assert.Len(t, messages[0].Content, 2)
		assert.Equal(t, types.ConversationRoleAssistant, messages[1].Role)
	})

	t.Run("empty messages produce no blocks", func(t *testing.T) {
		posts := []llm.Post{
			{Role: llm.PostRoleUser, Message: ""},
		}

		system, messages := conversationToMessages(posts)
		assert.Empty(t, system)
		assert.Empty(t, messages)
	})
}

func TestGetDefaultConfig(t *testing.T) {
	b := &Bedrock{defaultModel: "anthropic.claude-3-5-sonnet-20241022-v2:0"}
	cfg := b.GetDefaultConfig()
	assert.Equal(t, "anthropic.claude-3-5-sonnet-20241022-v2:0", cfg.Model)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxGeneratedTokens)

	b.outputTokenLimit = 1024
	assert.Equal(t, 1024, b.GetDefaultConfig().MaxGeneratedTokens)
}
