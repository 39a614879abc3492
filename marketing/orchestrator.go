// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package marketing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/launchplan-ai/launchplan/llm"
	"github.com/launchplan-ai/launchplan/logger"
	"github.com/launchplan-ai/launchplan/plan"
	"github.com/launchplan-ai/launchplan/prompts"
)

// Generation modes recorded in document metadata and metrics labels.
const (
	GenerationModeFast = "fast"
	GenerationModeFull = "full"
)

const (
	// All pipeline generation calls sample at the same temperature.
	generationTemperature = 0.7

	// Version tag for fast-mode documents. Full-mode documents carry
	// "1.<iterations>" instead.
	fastVersion = "fast_v1"

	// Full-mode plans scoring below this rerun the strategy phase once
	// with the evaluation feedback folded in.
	iterationThreshold = 8.0
)

// Recorder counts generated plans and tracks the latest quality score.
type Recorder interface {
	IncrementPlansGenerated(mode string)
	ObservePlanQuality(score float64)
}

// Orchestrator drives the research, strategy and compile phases that turn an
// intake attribute set into a compiled marketing plan document. Individual
// model calls degrade to structural defaults; the orchestrator fails only on
// context cancellation.
type Orchestrator struct {
	model     llm.LanguageModel
	prompts   *prompts.Prompts
	log       logger.Logger
	evaluator *Evaluator
	metrics   Recorder
	fullEval  bool
	now       func() time.Time
}

type Option func(*Orchestrator)

// WithFullEvaluation switches from the fast placeholder evaluation to the
// full evaluator pass, enabling auto-iteration.
func WithFullEvaluation() Option {
	return func(o *Orchestrator) {
		o.fullEval = true
	}
}

func WithMetrics(recorder Recorder) Option {
	return func(o *Orchestrator) {
		o.metrics = recorder
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

func New(model llm.LanguageModel, prompts *prompts.Prompts, log logger.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		model:   model,
		prompts: prompts,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.evaluator = NewEvaluator(model, prompts, log)
	return o
}

// GenerateDocument runs the full pipeline for one attribute set. In fast mode
// the document carries a fixed placeholder evaluation; in full mode the
// evaluator scores it, and when autoIterate is set and the score falls below
// the threshold the strategy phase reruns once with the evaluation feedback
// merged into a copy of the attributes. The returned document always has the
// complete section set, whatever the individual calls did.
func (o *Orchestrator) GenerateDocument(ctx context.Context, attrs plan.Attributes, autoIterate bool) (*plan.Document, error) {
	productName := attrs.Str("product_name", defaultProductName)
	mode := GenerationModeFast
	if o.fullEval {
		mode = GenerationModeFull
	}
	o.log.Info("marketing plan generation started",
		"product", productName, "mode", mode, "auto_iterate", autoIterate)

	research := o.researchPhase(ctx, attrs)
	strategy := o.strategyPhase(ctx, attrs, research)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doc *plan.Document
	if o.fullEval {
		report, err := o.evaluator.Evaluate(ctx, attrs, research, strategy)
		if err != nil {
			return nil, err
		}

		iterations := 0
		if autoIterate && report.OverallScore < iterationThreshold {
			o.log.Info("quality below threshold, rerunning strategy with feedback",
				"score", report.OverallScore, "threshold", iterationThreshold)
			attrs = attrs.Clone()
			attrs[improvementNotesKey] = improvementNotes(report)
			strategy = o.strategyPhase(ctx, attrs, research)
			if report, err = o.evaluator.Evaluate(ctx, attrs, research, strategy); err != nil {
				return nil, err
			}
			iterations++
		}

		doc = plan.Compile(attrs, research, strategy, o.now(), fmt.Sprintf("1.%d", iterations), GenerationModeFull)
		doc.Evaluation = report.Evaluation()
	} else {
		doc = plan.Compile(attrs, research, strategy, o.now(), fastVersion, GenerationModeFast)
		doc.Evaluation = fastEvaluation()
	}
	doc.Metadata.QualityScore = doc.Evaluation.OverallScore

	if o.metrics != nil {
		o.metrics.IncrementPlansGenerated(mode)
		o.metrics.ObservePlanQuality(doc.Metadata.QualityScore)
	}
	o.log.Info("marketing plan generation completed",
		"product", productName, "sections", len(doc.Sections), "quality_score", doc.Metadata.QualityScore)
	return doc, nil
}

// researchPhase issues the market analysis and SWOT calls.
func (o *Orchestrator) researchPhase(ctx context.Context, attrs plan.Attributes) plan.Research {
	o.log.Info("research phase started")

	return plan.Research{
		MarketIntelligence: generateFragment(ctx, o, prompts.PromptMarketAnalysis,
			marketAnalysisPromptData(attrs), plan.DefaultMarketIntelligence()),
		SWOT: generateFragment(ctx, o, prompts.PromptSWOTAnalysis,
			swotPromptData(attrs), plan.DefaultSWOT()),
	}
}

// strategyPhase issues the positioning call plus the two combined calls and
// splits their payloads into the strategy aggregate.
func (o *Orchestrator) strategyPhase(ctx context.Context, attrs plan.Attributes, research plan.Research) plan.Strategy {
	o.log.Info("strategy phase started")

	var strategy plan.Strategy
	strategy.Positioning = generateFragment(ctx, o, prompts.PromptPositioning,
		positioningPromptData(attrs, research), plan.DefaultPositioning())

	goalsMix := generateFragment(ctx, o, prompts.PromptGoalsMarketingMix,
		goalsMixPromptData(attrs, research), plan.DefaultGoalsMarketingMix())
	strategy.Goals = plan.GoalsKPIs{Goals: goalsMix.Goals, KPIs: goalsMix.KPIs}
	strategy.MarketingMix = goalsMix.MarketingMix

	actionBudgetRisks := generateFragment(ctx, o, prompts.PromptActionBudgetRisks,
		actionBudgetRisksPromptData(attrs, research), plan.DefaultActionBudgetRisks())
	strategy.ActionPlan = actionBudgetRisks.ActionPlan
	strategy.BudgetMonitoring = plan.BudgetMonitoring{
		Budget:     actionBudgetRisks.Budget,
		Monitoring: actionBudgetRisks.Monitoring,
	}
	strategy.RisksLaunch = plan.RisksLaunch{
		Risks:          actionBudgetRisks.Risks,
		LaunchStrategy: actionBudgetRisks.LaunchStrategy,
	}

	return strategy
}

// generateFragment renders one pipeline prompt, runs it through the model,
// and extracts the typed fragment, substituting fallback when the call or
// the parse fails. Pipeline calls degrade; they never abort the run.
// A package function because methods cannot carry type parameters.
func generateFragment[T any](ctx context.Context, o *Orchestrator, template string, data any, fallback T) T {
	prompt, err := o.prompts.Format(template, data)
	if err != nil {
		o.log.Error("failed to render generation prompt, using default",
			"template", template, "error", err.Error())
		return fallback
	}

	response, err := o.model.ChatCompletionNoStream(ctx,
		llm.NewUserRequest(prompt), llm.WithTemperature(generationTemperature))
	if err != nil {
		o.log.Warn("generation call failed, using default",
			"template", template, "error", err.Error())
		return fallback
	}

	return llm.ExtractWithLog(o.log, template, response, fallback)
}

// improvementNotes renders the evaluation findings the strategy rerun should
// address: the leading weaknesses, suggestions and recommendations.
func improvementNotes(report *Report) string {
	var lines []string
	for _, weakness := range report.Weaknesses[:min(3, len(report.Weaknesses))] {
		lines = append(lines, "- Weakness: "+weakness)
	}
	for _, improvement := range report.ImprovementSuggestions[:min(3, len(report.ImprovementSuggestions))] {
		lines = append(lines, "- Suggestion: "+improvement.Suggestion)
	}
	for _, recommendation := range report.FinalRecommendations[:min(2, len(report.FinalRecommendations))] {
		lines = append(lines, "- Focus: "+recommendation)
	}
	return strings.Join(lines, "\n")
}
