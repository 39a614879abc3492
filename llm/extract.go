// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/launchplan-ai/launchplan/logger"
)

var (
	codeFencePattern     = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	trailingCommaPattern = regexp.MustCompile(`,(\s*[}\]])`)
	badEscapePattern     = regexp.MustCompile(`\\([^"\\/bfnrtu])`)
)

// ExtractJSON recovers the most plausible JSON payload from free-form model
// output. Models wrap JSON in code fences, preamble prose, trailing
// commentary, or emit it with small syntax defects; each stage below peels
// one of those layers and re-checks validity.
func ExtractJSON(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	if json.Valid([]byte(trimmed)) {
		return trimmed, true
	}

	if match := codeFencePattern.FindStringSubmatch(trimmed); match != nil {
		inner := strings.TrimSpace(match[1])
		if json.Valid([]byte(inner)) {
			return inner, true
		}
		// Keep working on the fenced content; it is the best candidate.
		trimmed = inner
	}

	// Slice out the outermost bracketed payload. Objects and arrays both
	// occur; when the text contains both, the one that opens first is the
	// payload and the other is nested inside it.
	delimiters := [][2]string{{"{", "}"}, {"[", "]"}}
	if bracket := strings.Index(trimmed, "["); bracket >= 0 {
		if brace := strings.Index(trimmed, "{"); brace < 0 || bracket < brace {
			delimiters = [][2]string{{"[", "]"}, {"{", "}"}}
		}
	}
	for _, delim := range delimiters {
		start := strings.Index(trimmed, delim[0])
		if start < 0 {
			continue
		}
		end := strings.LastIndex(trimmed, delim[1])
		if end <= start {
			continue
		}
		sliced := trimmed[start : end+1]
		if json.Valid([]byte(sliced)) {
			return sliced, true
		}
		repaired := repairJSON(sliced)
		if json.Valid([]byte(repaired)) {
			return repaired, true
		}
	}

	repaired := repairJSON(trimmed)
	if json.Valid([]byte(repaired)) {
		return repaired, true
	}

	return "", false
}

// repairJSON fixes the syntax defects models produce most often: trailing
// commas before closing brackets, stray backslash escapes, and raw control
// characters inside strings.
func repairJSON(s string) string {
	s = trailingCommaPattern.ReplaceAllString(s, "$1")
	s = badEscapePattern.ReplaceAllString(s, "$1")
	s = strings.Map(func(r rune) rune {
		if r >= 32 || r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		return -1
	}, s)
	return s
}

// Extract decodes model output into T, returning fallback when no usable
// JSON can be recovered or the payload does not fit T. It never fails; the
// caller's fallback defines the degraded result.
func Extract[T any](raw string, fallback T) T {
	candidate, ok := ExtractJSON(raw)
	if !ok {
		return fallback
	}
	var out T
	if err := json.Unmarshal([]byte(candidate), &out); err != nil {
		return fallback
	}
	return out
}

// ExtractWithLog behaves like Extract but logs a warning naming the call
// site when the fallback engages, so degraded documents remain diagnosable.
func ExtractWithLog[T any](log logger.Logger, site, raw string, fallback T) T {
	candidate, ok := ExtractJSON(raw)
	if !ok {
		log.Warn("failed to extract JSON, using fallback",
			"site", site,
			"response", truncate(raw, 200))
		return fallback
	}
	var out T
	if err := json.Unmarshal([]byte(candidate), &out); err != nil {
		log.Warn("extracted JSON did not match expected shape, using fallback",
			"site", site,
			"error", err,
			"response", truncate(raw, 200))
		return fallback
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
