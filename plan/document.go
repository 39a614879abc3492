// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

// Package plan holds the marketing plan document model: the caller-supplied
// attribute set, the structured fragments decoded from generation calls,
// and the compiled twelve-section document with its markdown export.
package plan

import (
	"fmt"
	"time"
)

// Section identifiers, in document order.
const (
	SectionExecutiveSummary    = "1_executive_summary"
	SectionMissionVisionValue  = "2_mission_vision_value"
	SectionSituationAnalysis   = "3_situation_market_analysis"
	SectionSWOT                = "4_swot_analysis"
	SectionAudiencePositioning = "5_target_audience_positioning"
	SectionGoalsKPIs           = "6_marketing_goals_kpis"
	SectionMarketingMix        = "7_strategy_marketing_mix"
	SectionActionPlan          = "8_tactics_action_plan"
	SectionBudget              = "9_budget_resources"
	SectionMonitoring          = "10_monitoring_evaluation"
	SectionRisks               = "11_risks_mitigation"
	SectionLaunchStrategy      = "12_launch_strategy"
)

var sectionRegistry = []struct {
	key         string
	title       string
	description string
}{
	{
		key:         SectionExecutiveSummary,
		title:       "1. Executive Summary",
		description: "A brief overview of the entire plan: what the product is, what the objectives are, which strategy is followed, and what results are expected.",
	},
	{
		key:         SectionMissionVisionValue,
		title:       "2. Mission, Vision & Value Proposition",
		description: "What is the goal and vision of the project? What makes the product unique and why would customers choose it?",
	},
	{
		key:         SectionSituationAnalysis,
		title:       "3. Situation & Market Analysis",
		description: "Analysis of the current situation, internal strengths and weaknesses, and the external market (opportunities and threats). Includes SWOT and PEST analysis.",
	},
	{
		key:         SectionSWOT,
		title:       "4. SWOT Analysis",
		description: "Overview of strengths, weaknesses, opportunities, and threats that impact the product or organization.",
	},
	{
		key:         SectionAudiencePositioning,
		title:       "5. Target Audience & Positioning",
		description: "Who is the target audience? How is the product positioned relative to competitors and what place does it occupy in the consumer's mind?",
	},
	{
		key:         SectionGoalsKPIs,
		title:       "6. Marketing Goals & KPIs",
		description: "Clear and measurable objectives (SMART). Including key performance indicators to measure success, such as conversion rate or market share.",
	},
	{
		key:         SectionMarketingMix,
		title:       "7. Strategy & Marketing Mix (7Ps)",
		description: "The overarching strategy to achieve the goals. Focus on the marketing mix (Product, Price, Place, Promotion, People, Process, Physical Evidence).",
	},
	{
		key:         SectionActionPlan,
		title:       "8. Tactics & Action Plan",
		description: "Concrete actions and a timeline of activities (pre-launch, launch, and follow-up).",
	},
	{
		key:         SectionBudget,
		title:       "9. Budget & Resources",
		description: "Cost estimation, required resources, and expected revenues. Including ROI estimation.",
	},
	{
		key:         SectionMonitoring,
		title:       "10. Monitoring & Evaluation",
		description: "How progress is measured and when evaluations take place to adjust the plan.",
	},
	{
		key:         SectionRisks,
		title:       "11. Risks & Mitigation",
		description: "Overview of potential risks (such as market failure or technical problems) and how they are addressed.",
	},
	{
		key:         SectionLaunchStrategy,
		title:       "12. Launch Strategy for New Product",
		description: "Planning of product introduction, adoption strategy, and launch phases.",
	},
}

// SectionKeys returns the twelve section identifiers in document order.
func SectionKeys() []string {
	keys := make([]string, len(sectionRegistry))
	for i, def := range sectionRegistry {
		keys[i] = def.key
	}
	return keys
}

// Metadata identifies one generated document.
type Metadata struct {
	ProductName    string    `json:"product_name"`
	GeneratedAt    time.Time `json:"generated_at"`
	Version        string    `json:"version"`
	GenerationMode string    `json:"generation_mode"`
	QualityScore   float64   `json:"quality_score"`
}

// Section is one of the twelve document sections.
type Section struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     any    `json:"content"`
}

// Evaluation is the document's quality block.
type Evaluation struct {
	OverallScore    float64            `json:"overall_score"`
	Note            string             `json:"note,omitempty"`
	CriterionScores map[string]float64 `json:"criterion_scores"`
	Strengths       []string           `json:"strengths"`
	Weaknesses      []string           `json:"weaknesses"`
	Recommendations []string           `json:"recommendations"`
}

// Raw preserves the phase aggregates verbatim for audit and debugging.
type Raw struct {
	Research Research `json:"research"`
	Strategy Strategy `json:"strategy"`
}

// Document is the compiled marketing plan handed back to the caller. The
// Sections map always carries exactly the twelve registry keys, however many
// of the underlying calls fell back to defaults.
type Document struct {
	Metadata   Metadata           `json:"metadata"`
	Sections   map[string]Section `json:"sections"`
	Evaluation Evaluation         `json:"evaluation"`
	Raw        Raw                `json:"raw_data"`
}

// ExecutiveSummary is the compiled content of section 1.
type ExecutiveSummary struct {
	Overview           string       `json:"overview"`
	ProductDescription string       `json:"product_description"`
	Objectives         []string     `json:"objectives"`
	StrategyOverview   string       `json:"strategy_overview"`
	ExpectedResults    string       `json:"expected_results"`
	TargetMarket       Demographics `json:"target_market"`
}

// MissionVisionValue is the compiled content of section 2.
type MissionVisionValue struct {
	Mission             string           `json:"mission"`
	Vision              string           `json:"vision"`
	ValueProposition    string           `json:"value_proposition"`
	UniqueSellingPoints []string         `json:"unique_selling_points"`
	BrandPersonality    BrandPersonality `json:"brand_personality"`
}

// SituationAnalysis is the compiled content of section 3.
type SituationAnalysis struct {
	CurrentSituation    string       `json:"current_situation"`
	MarketSize          string       `json:"market_size"`
	GrowthRate          string       `json:"growth_rate"`
	Trends              []string     `json:"trends"`
	Competitors         []Competitor `json:"competitors"`
	PESTAnalysis        PESTAnalysis `json:"pest_analysis"`
	MarketOpportunities []string     `json:"market_opportunities"`
}

// AudiencePositioning is the compiled content of section 5.
type AudiencePositioning struct {
	TargetDemographics       Demographics   `json:"target_demographics"`
	TargetPsychographics     Psychographics `json:"target_psychographics"`
	PositioningStatement     string         `json:"positioning_statement"`
	PositioningVsCompetitors string         `json:"positioning_vs_competitors"`
	Messaging                []string       `json:"messaging"`
}

// RiskRegister is the compiled content of section 11.
type RiskRegister struct {
	Risks []Risk `json:"risks"`
}

// Compile maps the two phase aggregates into the twelve-section document.
// It is a pure reshaping step: no network calls, and all twelve sections are
// produced even when every upstream fragment is a default. The evaluation
// block and the metadata quality score are attached by the caller afterward.
func Compile(attrs Attributes, research Research, strategy Strategy, now time.Time, version, mode string) *Document {
	name := attrs.Str("product_name", "Unknown Product")

	goals := strategy.Goals.Goals
	if len(goals) > 3 {
		goals = goals[:3]
	}
	objectives := make([]string, 0, len(goals))
	for _, g := range goals {
		objectives = append(objectives, g.Goal)
	}

	roi := strategy.BudgetMonitoring.Budget.ROIProjection
	if roi == "" {
		roi = "positive"
	}

	contents := map[string]any{
		SectionExecutiveSummary: ExecutiveSummary{
			Overview:           fmt.Sprintf("Complete marketing plan for %s. %s", name, strategy.Positioning.ValueProposition),
			ProductDescription: attrs.Str("product_features", "Innovative product in the market"),
			Objectives:         objectives,
			StrategyOverview:   strategy.Positioning.PositioningStatement,
			ExpectedResults:    fmt.Sprintf("ROI: %s", roi),
			TargetMarket:       research.MarketIntelligence.TargetDemographics,
		},
		SectionMissionVisionValue: MissionVisionValue{
			Mission:             strategy.Positioning.Mission,
			Vision:              strategy.Positioning.Vision,
			ValueProposition:    strategy.Positioning.ValueProposition,
			UniqueSellingPoints: strategy.Positioning.UniqueSellingPoints,
			BrandPersonality:    strategy.Positioning.BrandPersonality,
		},
		SectionSituationAnalysis: SituationAnalysis{
			CurrentSituation:    research.MarketIntelligence.CurrentSituation,
			MarketSize:          research.MarketIntelligence.MarketSize,
			GrowthRate:          research.MarketIntelligence.GrowthRate,
			Trends:              research.MarketIntelligence.Trends,
			Competitors:         research.MarketIntelligence.Competitors,
			PESTAnalysis:        research.MarketIntelligence.PESTAnalysis,
			MarketOpportunities: research.MarketIntelligence.MarketOpportunities,
		},
		SectionSWOT: research.SWOT,
		SectionAudiencePositioning: AudiencePositioning{
			TargetDemographics:       research.MarketIntelligence.TargetDemographics,
			TargetPsychographics:     research.MarketIntelligence.TargetPsychographics,
			PositioningStatement:     strategy.Positioning.PositioningStatement,
			PositioningVsCompetitors: strategy.Positioning.PositioningVsCompetitors,
			Messaging:                strategy.Positioning.Messaging,
		},
		SectionGoalsKPIs:      strategy.Goals,
		SectionMarketingMix:   strategy.MarketingMix,
		SectionActionPlan:     strategy.ActionPlan,
		SectionBudget:         strategy.BudgetMonitoring.Budget,
		SectionMonitoring:     strategy.BudgetMonitoring.Monitoring,
		SectionRisks:          RiskRegister{Risks: strategy.RisksLaunch.Risks},
		SectionLaunchStrategy: strategy.RisksLaunch.LaunchStrategy,
	}

	doc := &Document{
		Metadata: Metadata{
			ProductName:    name,
			GeneratedAt:    now,
			Version:        version,
			GenerationMode: mode,
		},
		Sections: make(map[string]Section, len(sectionRegistry)),
		Raw:      Raw{Research: research, Strategy: strategy},
	}
	for _, def := range sectionRegistry {
		doc.Sections[def.key] = Section{
			Title:       def.title,
			Description: def.description,
			Content:     contents[def.key],
		}
	}
	return doc
}
