// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package marketing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchplan-ai/launchplan/plan"
	"github.com/launchplan-ai/launchplan/prompts"
)

func TestMarketAnalysisPromptData(t *testing.T) {
	t.Run("defaults for missing attributes", func(t *testing.T) {
		data := marketAnalysisPromptData(plan.Attributes{})

		assert.Equal(t, "Unknown Product", data.ProductName)
		assert.Equal(t, "general", data.Category)
		assert.Equal(t, "general consumers", data.TargetPrimary)
		assert.Equal(t, "market competitors", data.Competitors)
		assert.Empty(t, data.Features)
		assert.Empty(t, data.MarketSize)
	})

	t.Run("attributes pass through, lists joined", func(t *testing.T) {
		data := marketAnalysisPromptData(plan.Attributes{
			"product_name": "EcoBottle",
			"competitors":  []string{"HydraCo", "SipWell"},
			"market_size":  "$2B",
		})

		assert.Equal(t, "EcoBottle", data.ProductName)
		assert.Equal(t, "HydraCo, SipWell", data.Competitors)
		assert.Equal(t, "$2B", data.MarketSize)
	})
}

func TestPositioningPromptData(t *testing.T) {
	attrs := plan.Attributes{
		"product_name":  "EcoBottle",
		"tone_of_voice": "warm",
	}

	data := positioningPromptData(attrs, testResearch())
	assert.Equal(t, "EcoBottle", data.ProductName)
	assert.Equal(t, "warm", data.ToneOfVoice)
	assert.Equal(t, "Corporate gifting, EU expansion", data.MarketOpportunities)
	assert.Empty(t, data.ImprovementNotes)

	attrs[improvementNotesKey] = "- Weakness: thin budget"
	data = positioningPromptData(attrs, testResearch())
	assert.Equal(t, "- Weakness: thin budget", data.ImprovementNotes)
}

func TestGoalsMixPromptData(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		data := goalsMixPromptData(plan.Attributes{}, plan.Research{})

		assert.Equal(t, "Unknown Product", data.ProductName)
		assert.Equal(t, "moderate", data.MarketingBudget)
		assert.Equal(t, "Q1 2026", data.LaunchDate)
		assert.Equal(t, "Various channels", data.MarketingChannels)
		assert.Equal(t, "Various channels", data.DistributionChannels)
		assert.Empty(t, data.MarketTrends)
	})

	t.Run("research trends and channel lists flow in", func(t *testing.T) {
		research := plan.Research{
			MarketIntelligence: plan.MarketIntelligence{
				Trends: []string{"Sustainability", "Premiumization"},
			},
		}
		data := goalsMixPromptData(plan.Attributes{
			"marketing_channels":    []string{"social media", "email"},
			"distribution_channels": []string{"DTC"},
			"launch_date":           "2026-04-01",
		}, research)

		assert.Equal(t, "Sustainability, Premiumization", data.MarketTrends)
		assert.Equal(t, "social media, email", data.MarketingChannels)
		assert.Equal(t, "DTC", data.DistributionChannels)
		assert.Equal(t, "2026-04-01", data.LaunchDate)
	})
}

func TestActionBudgetRisksPromptData(t *testing.T) {
	data := actionBudgetRisksPromptData(plan.Attributes{
		"product_name": "EcoBottle",
	}, testResearch())

	assert.Equal(t, "EcoBottle", data.ProductName)
	assert.Equal(t, "Q1 2026", data.LaunchDate)
	assert.Equal(t, "general consumers", data.TargetPrimary)
	assert.Equal(t, "market competitors", data.Competitors)
	assert.Equal(t, "Price war", data.MarketThreats)
}

func TestPositioningPromptOptionalBlocks(t *testing.T) {
	p, err := prompts.New()
	require.NoError(t, err)

	t.Run("omitted without research or feedback", func(t *testing.T) {
		prompt, err := p.Format(prompts.PromptPositioning, positioningPromptData(plan.Attributes{}, plan.Research{}))
		require.NoError(t, err)

		assert.Contains(t, prompt, "Unknown Product")
		assert.NotContains(t, prompt, "RESEARCH FINDINGS")
		assert.NotContains(t, prompt, "IMPROVEMENT FEEDBACK")
	})

	t.Run("rendered when present", func(t *testing.T) {
		attrs := plan.Attributes{improvementNotesKey: "- Focus: sharpen pricing"}
		prompt, err := p.Format(prompts.PromptPositioning, positioningPromptData(attrs, testResearch()))
		require.NoError(t, err)

		assert.Contains(t, prompt, "**RESEARCH FINDINGS:**")
		assert.Contains(t, prompt, "Market Opportunities: Corporate gifting, EU expansion")
		assert.Contains(t, prompt, "**IMPROVEMENT FEEDBACK FROM PREVIOUS DRAFT:**")
		assert.Contains(t, prompt, "- Focus: sharpen pricing")
	})
}
