// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchplan-ai/launchplan/logger"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{
			name:   "clean JSON object passes through",
			raw:    `{"score": 8}`,
			want:   `{"score": 8}`,
			wantOK: true,
		},
		{
			name:   "clean JSON array passes through",
			raw:    `["A", "B"]`,
			want:   `["A", "B"]`,
			wantOK: true,
		},
		{
			name:   "surrounding whitespace trimmed",
			raw:    "\n\n  {\"score\": 8}  \n",
			want:   `{"score": 8}`,
			wantOK: true,
		},
		{
			name:   "json code fence stripped",
			raw:    "Here is the analysis:\n```json\n{\"score\": 8}\n```\nHope that helps.",
			want:   `{"score": 8}`,
			wantOK: true,
		},
		{
			name:   "bare code fence stripped",
			raw:    "```\n{\"score\": 8}\n```",
			want:   `{"score": 8}`,
			wantOK: true,
		},
		{
			name:   "object embedded in prose",
			raw:    `The result is {"score": 8} as requested.`,
			want:   `{"score": 8}`,
			wantOK: true,
		},
		{
			name:   "nested object embedded in prose",
			raw:    `Sure! {"outer": {"inner": 1}} Let me know if you need more.`,
			want:   `{"outer": {"inner": 1}}`,
			wantOK: true,
		},
		{
			name:   "array embedded in prose",
			raw:    `Here are the strengths: ["A", "B"] as requested.`,
			want:   `["A", "B"]`,
			wantOK: true,
		},
		{
			name:   "array of objects embedded in prose",
			raw:    "Improvements below.\n[{\"area\": \"Pricing\"}, {\"area\": \"Channels\"}]\nDone.",
			want:   `[{"area": "Pricing"}, {"area": "Channels"}]`,
			wantOK: true,
		},
		{
			name:   "trailing comma in array repaired",
			raw:    `{"strengths": ["A","B",]}`,
			want:   `{"strengths": ["A","B"]}`,
			wantOK: true,
		},
		{
			name:   "trailing comma in object repaired",
			raw:    `{"a": 1, "b": 2,}`,
			want:   `{"a": 1, "b": 2}`,
			wantOK: true,
		},
		{
			name:   "trailing comma in bare array repaired",
			raw:    `["A","B",]`,
			want:   `["A","B"]`,
			wantOK: true,
		},
		{
			name:   "invalid backslash escape repaired",
			raw:    `{"dosage": "5\mg daily"}`,
			want:   `{"dosage": "5mg daily"}`,
			wantOK: true,
		},
		{
			name:   "control characters stripped",
			raw:    "{\"note\": \"ab\x01c\"}",
			want:   `{"note": "abc"}`,
			wantOK: true,
		},
		{
			name:   "fenced JSON with trailing comma repaired",
			raw:    "```json\n{\"kpis\": [\"reach\", \"ctr\",],}\n```",
			want:   `{"kpis": ["reach", "ctr"]}`,
			wantOK: true,
		},
		{
			name:   "prose with no braces fails",
			raw:    "I could not produce the requested analysis, sorry.",
			wantOK: false,
		},
		{
			name:   "empty input fails",
			raw:    "",
			wantOK: false,
		},
		{
			name:   "braces around non-JSON fail",
			raw:    "{this is not json at all}",
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.raw)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.JSONEq(t, tt.want, got)
			}
		})
	}
}

type strengthsPayload struct {
	Strengths []string `json:"strengths"`
}

func TestExtract(t *testing.T) {
	fallback := strengthsPayload{Strengths: []string{"default"}}

	t.Run("valid payload decodes", func(t *testing.T) {
		got := Extract(`{"strengths": ["A", "B"]}`, fallback)
		assert.Equal(t, []string{"A", "B"}, got.Strengths)
	})

	t.Run("repaired payload decodes", func(t *testing.T) {
		got := Extract(`{"strengths": ["A","B",]}`, fallback)
		assert.Equal(t, []string{"A", "B"}, got.Strengths)
	})

	t.Run("prose returns fallback", func(t *testing.T) {
		got := Extract("no structured content here", fallback)
		assert.Equal(t, fallback, got)
	})

	t.Run("shape mismatch returns fallback", func(t *testing.T) {
		got := Extract(`["just", "an", "array"]`, fallback)
		assert.Equal(t, fallback, got)
	})

	t.Run("missing keys decode to zero values", func(t *testing.T) {
		got := Extract(`{"unrelated": true}`, fallback)
		assert.Empty(t, got.Strengths)
	})
}

func TestExtractWithLog(t *testing.T) {
	log := logger.NewNop()
	fallback := strengthsPayload{Strengths: []string{"default"}}

	got := ExtractWithLog(log, "test_site", "not json", fallback)
	assert.Equal(t, fallback, got)

	got = ExtractWithLog(log, "test_site", `{"strengths": ["A"]}`, fallback)
	assert.Equal(t, []string{"A"}, got.Strengths)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcde...", truncate("abcdefgh", 5))
}
