// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

// Package evals runs the generation pipeline against live providers. Tests
// here are skipped unless GOEVALS is set, e.g. GOEVALS=1 go test ./evals.
// Providers are configured through the usual environment variables; the
// default is the local Ollama endpoint.
package evals

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/launchplan-ai/launchplan/config"
	"github.com/launchplan-ai/launchplan/gateway"
	"github.com/launchplan-ai/launchplan/llm"
	"github.com/launchplan-ai/launchplan/logger"
	"github.com/launchplan-ai/launchplan/prompts"
)

type EvalT struct {
	*testing.T
	*Eval
}

type Eval struct {
	Model   llm.LanguageModel
	Prompts *prompts.Prompts

	runNumber int
}

func NewEval() (*Eval, error) {
	promptLibrary, err := prompts.New()
	if err != nil {
		return nil, err
	}

	cfg := config.FromEnv()
	primary, fallback, err := cfg.LLM.ServiceConfigs()
	if err != nil {
		return nil, err
	}

	model, err := gateway.New(primary, fallback, logger.NewNop(), nil)
	if err != nil {
		return nil, err
	}

	return &Eval{
		Model:   model,
		Prompts: promptLibrary,
	}, nil
}

func NumEvalsOrSkip(t *testing.T) int {
	t.Helper()
	numEvals, err := strconv.Atoi(os.Getenv("GOEVALS"))
	if err != nil || numEvals < 1 {
		t.Skip("Skipping evals. Use GOEVALS=1 flag to run.")
	}

	return numEvals
}

func Run(t *testing.T, name string, f func(e *EvalT)) {
	numEvals := NumEvalsOrSkip(t)

	eval, err := NewEval()
	require.NoError(t, err)

	e := &EvalT{T: t, Eval: eval}

	t.Run(name, func(t *testing.T) {
		e.T = t
		for i := range numEvals {
			e.runNumber = i
			f(e)
		}
	})
}
