// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package marketing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/launchplan-ai/launchplan/llm"
	"github.com/launchplan-ai/launchplan/logger"
	"github.com/launchplan-ai/launchplan/plan"
	"github.com/launchplan-ai/launchplan/prompts"
)

// The six criteria every evaluation scores. The criteria call must produce
// exactly these entries so the overall score is always a mean of six.
var evaluationCriteria = []string{
	"consistency",
	"quality",
	"originality",
	"feasibility",
	"completeness",
	"ethics",
}

const defaultCriterionScore = 7.0

// Per-call sampling temperatures. Scoring runs cold, creative alternatives
// run hot.
const (
	criteriaTemperature     = 0.3
	strengthsTemperature    = 0.5
	weaknessesTemperature   = 0.5
	improvementsTemperature = 0.6
	consistencyTemperature  = 0.4
	ethicsTemperature       = 0.4
	alternativesTemperature = 0.8
)

const (
	systemCriteria     = "You are an expert marketing plan evaluator. Provide honest, constructive assessments. Be critical but fair. Always respond with valid JSON format."
	systemStrengths    = "You are an expert marketing analyst. Identify genuine strengths. Always respond with valid JSON format."
	systemWeaknesses   = "You are an expert marketing critic. Identify real weaknesses constructively. Always respond with valid JSON format."
	systemImprovements = "You are an expert marketing consultant. Provide actionable, specific improvements. Always respond with valid JSON format."
	systemConsistency  = "You are an expert at strategic alignment analysis. Be thorough and specific. Always respond with valid JSON format."
	systemEthics       = "You are an expert in marketing ethics. Be vigilant but balanced. Always respond with valid JSON format."
	systemAlternatives = "You are a creative marketing strategist. Provide innovative alternatives. Always respond with valid JSON format."
)

// Improvement is one concrete, prioritized change the evaluator suggests.
type Improvement struct {
	Area           string `json:"area"`
	Issue          string `json:"issue"`
	Suggestion     string `json:"suggestion"`
	Priority       string `json:"priority"`
	ExpectedImpact string `json:"expected_impact"`
}

// ConsistencyCheck reports how well the strategy lines up with the research.
type ConsistencyCheck struct {
	ConsistencyScore float64  `json:"consistency_score"`
	AlignedElements  []string `json:"aligned_elements"`
	Inconsistencies  []string `json:"inconsistencies"`
	Recommendations  []string `json:"recommendations"`
}

// EthicsCheck reports ethical concerns in the plan's messaging and
// promotional tactics.
type EthicsCheck struct {
	EthicsScore     float64  `json:"ethics_score"`
	Concerns        []string `json:"concerns"`
	PositiveAspects []string `json:"positive_aspects"`
	Recommendations []string `json:"recommendations"`
}

// Alternatives holds the evaluator's creative counter-proposals. The entries
// are model-shaped objects with no fixed schema, so they stay untyped.
type Alternatives struct {
	Positioning []any `json:"positioning_alternatives"`
	Audience    []any `json:"audience_alternatives"`
	Channel     []any `json:"channel_alternatives"`
	Campaign    []any `json:"campaign_alternatives"`
	Launch      []any `json:"launch_alternatives"`
}

// Report is the full evaluation of a generated plan. The iteration path reads
// its weaknesses, suggestions and recommendations to steer the rerun; the
// compiled document keeps only the condensed Evaluation block.
type Report struct {
	OverallScore           float64            `json:"overall_score"`
	CriterionScores        map[string]float64 `json:"criterion_scores"`
	Strengths              []string           `json:"strengths"`
	Weaknesses             []string           `json:"weaknesses"`
	ImprovementSuggestions []Improvement      `json:"improvement_suggestions"`
	ConsistencyCheck       ConsistencyCheck   `json:"consistency_check"`
	EthicsCheck            EthicsCheck        `json:"ethics_check"`
	Alternatives           Alternatives       `json:"alternatives"`
	FinalRecommendations   []string           `json:"final_recommendations"`
}

// Evaluation condenses the report into the document's quality block.
func (r *Report) Evaluation() plan.Evaluation {
	return plan.Evaluation{
		OverallScore:    r.OverallScore,
		CriterionScores: r.CriterionScores,
		Strengths:       r.Strengths,
		Weaknesses:      r.Weaknesses,
		Recommendations: r.FinalRecommendations,
	}
}

// Evaluator scores a generated plan with a series of dedicated model calls.
// Every call degrades to a fixed default when the model fails or returns
// something unparseable; evaluation never aborts a generation run.
type Evaluator struct {
	model   llm.LanguageModel
	prompts *prompts.Prompts
	log     logger.Logger
}

func NewEvaluator(model llm.LanguageModel, prompts *prompts.Prompts, log logger.Logger) *Evaluator {
	return &Evaluator{
		model:   model,
		prompts: prompts,
		log:     log,
	}
}

type criteriaData struct {
	PlanSummary string
}

type summaryData struct {
	StrategySummary string
}

type consistencyData struct {
	TargetAudience string
	Opportunities  string
	Threats        string
	Positioning    string
	KeyMessages    string
	Goals          string
}

type ethicsData struct {
	Messaging  string
	Promotions string
}

type alternativesData struct {
	ProductName string
	Positioning string
	Channels    string
}

type criterionAssessment struct {
	Score         float64 `json:"score"`
	Justification string  `json:"justification"`
}

// Evaluate runs the seven assessment calls and aggregates them into a
// report. It returns an error only when ctx is done; individual call
// failures degrade to their defaults.
func (e *Evaluator) Evaluate(ctx context.Context, attrs plan.Attributes, research plan.Research, strategy plan.Strategy) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.log.Info("plan evaluation started", "product", attrs.Str("product_name", defaultProductName))

	report := &Report{
		CriterionScores: e.evaluateCriteria(ctx, attrs, strategy),
	}

	summary := summaryData{StrategySummary: strategySummary(strategy)}
	report.Strengths = evalCall(ctx, e, prompts.PromptEvalStrengths, summary,
		systemStrengths, strengthsTemperature, defaultStrengths())
	report.Weaknesses = evalCall(ctx, e, prompts.PromptEvalWeaknesses, summary,
		systemWeaknesses, weaknessesTemperature, defaultWeaknesses())
	report.ImprovementSuggestions = evalCall(ctx, e, prompts.PromptEvalImprovements, summary,
		systemImprovements, improvementsTemperature, defaultImprovements())
	report.ConsistencyCheck = evalCall(ctx, e, prompts.PromptEvalConsistency, consistencyPromptData(attrs, research, strategy),
		systemConsistency, consistencyTemperature, defaultConsistency())
	report.EthicsCheck = evalCall(ctx, e, prompts.PromptEvalEthics, ethicsPromptData(strategy),
		systemEthics, ethicsTemperature, defaultEthics())
	report.Alternatives = evalCall(ctx, e, prompts.PromptEvalAlternatives, alternativesPromptData(attrs, strategy),
		systemAlternatives, alternativesTemperature, defaultAlternatives())

	var total float64
	for _, score := range report.CriterionScores {
		total += score
	}
	report.OverallScore = total / float64(len(evaluationCriteria))
	report.FinalRecommendations = finalRecommendations(report)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.log.Info("plan evaluation completed", "overall_score", report.OverallScore)
	return report, nil
}

// evaluateCriteria scores the plan against the six fixed criteria. Criteria
// the model skipped or mangled score the default, so the result always has
// exactly six entries and the mean is well defined.
func (e *Evaluator) evaluateCriteria(ctx context.Context, attrs plan.Attributes, strategy plan.Strategy) map[string]float64 {
	data := criteriaData{PlanSummary: planSummary(attrs, strategy)}
	assessments := evalCall(ctx, e, prompts.PromptEvalCriteria, data,
		systemCriteria, criteriaTemperature, map[string]criterionAssessment{})

	scores := make(map[string]float64, len(evaluationCriteria))
	for _, criterion := range evaluationCriteria {
		score := defaultCriterionScore
		if assessment, ok := assessments[criterion]; ok {
			score = clampScore(assessment.Score)
		}
		scores[criterion] = score
	}
	return scores
}

// evalCall renders one evaluation prompt, runs it through the model, and
// extracts the typed result, substituting fallback when anything fails.
// A package function because methods cannot carry type parameters.
func evalCall[T any](ctx context.Context, e *Evaluator, template string, data any, system string, temperature float64, fallback T) T {
	prompt, err := e.prompts.Format(template, data)
	if err != nil {
		e.log.Error("failed to render evaluation prompt, using default",
			"template", template, "error", err.Error())
		return fallback
	}

	response, err := e.model.ChatCompletionNoStream(ctx,
		llm.NewSystemRequest(system, prompt), llm.WithTemperature(temperature))
	if err != nil {
		e.log.Warn("evaluation call failed, using default",
			"template", template, "error", err.Error())
		return fallback
	}

	return llm.ExtractWithLog(e.log, template, response, fallback)
}

// finalRecommendations assembles the prioritized action list from the
// report's findings: high-priority fixes first, then the most pressing
// consistency and ethics findings, then medium-priority fixes while room
// remains. Capped at six.
func finalRecommendations(report *Report) []string {
	recommendations := []string{}

	var high, medium []Improvement
	for _, improvement := range report.ImprovementSuggestions {
		switch improvement.Priority {
		case "High":
			high = append(high, improvement)
		case "Medium":
			medium = append(medium, improvement)
		}
	}

	for _, improvement := range high[:min(3, len(high))] {
		recommendations = append(recommendations, "HIGH PRIORITY: "+improvement.Suggestion)
	}
	if len(report.ConsistencyCheck.Inconsistencies) > 0 {
		recommendations = append(recommendations, "CONSISTENCY: "+report.ConsistencyCheck.Inconsistencies[0])
	}
	if len(report.EthicsCheck.Concerns) > 0 {
		recommendations = append(recommendations, "ETHICS: Address "+report.EthicsCheck.Concerns[0])
	}
	if len(medium) > 0 && len(recommendations) < 5 {
		for _, improvement := range medium[:min(2, len(medium))] {
			recommendations = append(recommendations, "IMPROVE: "+improvement.Suggestion)
		}
	}

	return recommendations[:min(6, len(recommendations))]
}

// planSummary condenses the intake and strategy into the few lines the
// criteria prompt scores against.
func planSummary(attrs plan.Attributes, strategy plan.Strategy) string {
	lines := []string{
		"Product: " + attrs.Str("product_name", "N/A"),
		"Target: " + attrs.Str("target_primary", "N/A"),
		"Positioning: " + orNA(strategy.Positioning.PositioningStatement),
		fmt.Sprintf("Goals: %d goals defined", len(strategy.Goals.Goals)),
		"Budget: " + orNA(strategy.BudgetMonitoring.Budget.Total),
		"Channels: " + attrs.Str("marketing_channels", "N/A"),
	}
	return strings.Join(lines, "\n")
}

// strategySummary serializes the strategy aggregate for the free-text
// assessment prompts, truncated to keep the prompt bounded.
func strategySummary(strategy plan.Strategy) string {
	raw, err := json.MarshalIndent(strategy, "", "  ")
	if err != nil {
		return ""
	}
	return clip(string(raw), 3000)
}

func consistencyPromptData(attrs plan.Attributes, research plan.Research, strategy plan.Strategy) consistencyData {
	goals := make([]string, 0, len(strategy.Goals.Goals))
	for _, goal := range strategy.Goals.Goals {
		goals = append(goals, goal.Goal)
	}
	return consistencyData{
		TargetAudience: attrs.Str("target_primary", "N/A"),
		Opportunities:  strings.Join(research.SWOT.OpportunityTitles(), ", "),
		Threats:        strings.Join(research.SWOT.ThreatTitles(), ", "),
		Positioning:    orNA(strategy.Positioning.PositioningStatement),
		KeyMessages:    strings.Join(strategy.Positioning.Messaging, ", "),
		Goals:          strings.Join(goals, ", "),
	}
}

func ethicsPromptData(strategy plan.Strategy) ethicsData {
	messaging, _ := json.MarshalIndent(strategy.Positioning.Messaging, "", "  ")
	promotions, _ := json.MarshalIndent(strategy.MarketingMix.Promotion, "", "  ")
	return ethicsData{
		Messaging:  clip(string(messaging), 1000),
		Promotions: clip(string(promotions), 1000),
	}
}

func alternativesPromptData(attrs plan.Attributes, strategy plan.Strategy) alternativesData {
	return alternativesData{
		ProductName: attrs.Str("product_name", "N/A"),
		Positioning: orNA(strategy.Positioning.PositioningStatement),
		Channels:    attrs.Str("marketing_channels", "N/A"),
	}
}

func defaultStrengths() []string {
	return []string{
		"Comprehensive market analysis",
		"Clear target audience definition",
		"Well-structured action plan",
	}
}

func defaultWeaknesses() []string {
	return []string{
		"Budget allocation could be more detailed",
		"Timeline may be optimistic",
		"Risk mitigation needs more specificity",
	}
}

func defaultImprovements() []Improvement {
	return []Improvement{
		{
			Area:           "General",
			Issue:          "Needs more specificity",
			Suggestion:     "Add more concrete details",
			Priority:       "Medium",
			ExpectedImpact: "Improved clarity",
		},
	}
}

func defaultConsistency() ConsistencyCheck {
	return ConsistencyCheck{
		ConsistencyScore: 8.0,
		AlignedElements:  []string{"Strategy aligns with research"},
		Inconsistencies:  []string{},
		Recommendations:  []string{},
	}
}

func defaultEthics() EthicsCheck {
	return EthicsCheck{
		EthicsScore:     9.0,
		Concerns:        []string{},
		PositiveAspects: []string{"Transparent messaging", "Respectful approach"},
		Recommendations: []string{},
	}
}

func defaultAlternatives() Alternatives {
	return Alternatives{
		Positioning: []any{},
		Audience:    []any{},
		Channel:     []any{},
		Campaign:    []any{},
		Launch:      []any{},
	}
}

// fastEvaluation is the placeholder quality block attached in fast mode,
// where the evaluation pass is skipped entirely.
func fastEvaluation() plan.Evaluation {
	return plan.Evaluation{
		OverallScore: 7.5,
		Note:         "Fast generation mode - detailed quality check skipped",
		CriterionScores: map[string]float64{
			"consistency":  7.5,
			"quality":      7.5,
			"originality":  7.0,
			"feasibility":  8.0,
			"completeness": 7.0,
			"ethics":       8.5,
		},
		Strengths: []string{
			"Quick generation time",
			"Comprehensive structure",
			"Clear actionable insights",
		},
		Weaknesses: []string{
			"Less detailed than full mode",
			"Automated quality check",
		},
		Recommendations: []string{
			"Review and customize generated content",
			"Add specific budget numbers",
			"Validate target audience assumptions",
		},
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// clip truncates s to at most limit bytes without splitting a rune.
func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
