// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package marketing

import (
	"strings"

	"github.com/launchplan-ai/launchplan/plan"
)

// Fallback values substituted for intake fields the user left empty. The
// prompts read better with a generic hint than with a blank line.
const (
	defaultProductName = "Unknown Product"
	defaultCategory    = "general"
	defaultAudience    = "general consumers"
	defaultCompetitors = "market competitors"
	defaultBudget      = "moderate"
	defaultLaunchDate  = "Q1 2026"
	defaultChannels    = "Various channels"
)

// improvementNotesKey carries evaluation feedback into the strategy rerun.
// It is injected by the iteration path only, never supplied by callers.
const improvementNotesKey = "_improvement_notes"

type marketAnalysisData struct {
	ProductName       string
	Category          string
	Features          string
	USP               string
	TargetPrimary     string
	TargetSecondary   string
	Demographics      string
	Psychographics    string
	Competitors       string
	MarketSize        string
	CompetitorPricing string
}

func marketAnalysisPromptData(attrs plan.Attributes) marketAnalysisData {
	return marketAnalysisData{
		ProductName:       attrs.Str("product_name", defaultProductName),
		Category:          attrs.Str("product_category", defaultCategory),
		Features:          attrs.Str("product_features", ""),
		USP:               attrs.Str("product_usp", ""),
		TargetPrimary:     attrs.Str("target_primary", defaultAudience),
		TargetSecondary:   attrs.Str("target_secondary", ""),
		Demographics:      attrs.Str("target_demographics", ""),
		Psychographics:    attrs.Str("target_psychographics", ""),
		Competitors:       attrs.Str("competitors", defaultCompetitors),
		MarketSize:        attrs.Str("market_size", ""),
		CompetitorPricing: attrs.Str("competitor_pricing", ""),
	}
}

type swotData struct {
	ProductName   string
	Category      string
	Features      string
	USP           string
	TargetPrimary string
	Competitors   string
}

func swotPromptData(attrs plan.Attributes) swotData {
	return swotData{
		ProductName:   attrs.Str("product_name", defaultProductName),
		Category:      attrs.Str("product_category", defaultCategory),
		Features:      attrs.Str("product_features", ""),
		USP:           attrs.Str("product_usp", ""),
		TargetPrimary: attrs.Str("target_primary", defaultAudience),
		Competitors:   attrs.Str("competitors", defaultCompetitors),
	}
}

type positioningData struct {
	ProductName         string
	Category            string
	Features            string
	USP                 string
	Branding            string
	Variants            string
	TargetPrimary       string
	TargetProblems      string
	ToneOfVoice         string
	MarketOpportunities string
	ImprovementNotes    string
}

// positioningPromptData feeds the positioning prompt. Opportunity titles from
// the SWOT research flow in so the positioning can lean on them.
func positioningPromptData(attrs plan.Attributes, research plan.Research) positioningData {
	return positioningData{
		ProductName:         attrs.Str("product_name", defaultProductName),
		Category:            attrs.Str("product_category", defaultCategory),
		Features:            attrs.Str("product_features", ""),
		USP:                 attrs.Str("product_usp", ""),
		Branding:            attrs.Str("product_branding", ""),
		Variants:            attrs.Str("product_variants", ""),
		TargetPrimary:       attrs.Str("target_primary", defaultAudience),
		TargetProblems:      attrs.Str("target_problems", ""),
		ToneOfVoice:         attrs.Str("tone_of_voice", ""),
		MarketOpportunities: strings.Join(research.SWOT.OpportunityTitles(), ", "),
		ImprovementNotes:    attrs.Str(improvementNotesKey, ""),
	}
}

type goalsMixData struct {
	ProductName          string
	Features             string
	USP                  string
	Variants             string
	Branding             string
	MarketingBudget      string
	ProductionCost       string
	SuggestedPrice       string
	DesiredMargin        string
	LaunchDate           string
	DistributionChannels string
	MarketingChannels    string
	ToneOfVoice          string
	MarketTrends         string
	ImprovementNotes     string
}

// goalsMixPromptData feeds the combined goals, KPIs and 7Ps prompt. Market
// trends from the research phase flow in.
func goalsMixPromptData(attrs plan.Attributes, research plan.Research) goalsMixData {
	return goalsMixData{
		ProductName:          attrs.Str("product_name", defaultProductName),
		Features:             attrs.Str("product_features", ""),
		USP:                  attrs.Str("product_usp", ""),
		Variants:             attrs.Str("product_variants", ""),
		Branding:             attrs.Str("product_branding", ""),
		MarketingBudget:      attrs.Str("marketing_budget", defaultBudget),
		ProductionCost:       attrs.Str("production_cost", ""),
		SuggestedPrice:       attrs.Str("suggested_price", ""),
		DesiredMargin:        attrs.Str("desired_margin", ""),
		LaunchDate:           attrs.Str("launch_date", defaultLaunchDate),
		DistributionChannels: attrs.Str("distribution_channels", defaultChannels),
		MarketingChannels:    attrs.Str("marketing_channels", defaultChannels),
		ToneOfVoice:          attrs.Str("tone_of_voice", ""),
		MarketTrends:         strings.Join(research.MarketIntelligence.Trends, ", "),
		ImprovementNotes:     attrs.Str(improvementNotesKey, ""),
	}
}

type actionBudgetRisksData struct {
	ProductName          string
	LaunchDate           string
	TargetPrimary        string
	Competitors          string
	MarketingChannels    string
	DistributionChannels string
	MarketingBudget      string
	ProductionCost       string
	SuggestedPrice       string
	DesiredMargin        string
	MarketThreats        string
	ImprovementNotes     string
}

// actionBudgetRisksPromptData feeds the combined action plan, budget and risk
// prompt. Threat titles from the SWOT research flow in so the risk register
// addresses them.
func actionBudgetRisksPromptData(attrs plan.Attributes, research plan.Research) actionBudgetRisksData {
	return actionBudgetRisksData{
		ProductName:          attrs.Str("product_name", defaultProductName),
		LaunchDate:           attrs.Str("launch_date", defaultLaunchDate),
		TargetPrimary:        attrs.Str("target_primary", defaultAudience),
		Competitors:          attrs.Str("competitors", defaultCompetitors),
		MarketingChannels:    attrs.Str("marketing_channels", defaultChannels),
		DistributionChannels: attrs.Str("distribution_channels", defaultChannels),
		MarketingBudget:      attrs.Str("marketing_budget", defaultBudget),
		ProductionCost:       attrs.Str("production_cost", ""),
		SuggestedPrice:       attrs.Str("suggested_price", ""),
		DesiredMargin:        attrs.Str("desired_margin", ""),
		MarketThreats:        strings.Join(research.SWOT.ThreatTitles(), ", "),
		ImprovementNotes:     attrs.Str(improvementNotesKey, ""),
	}
}
