// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		data map[string]any
		want []string
	}{
		{
			name: PromptMarketAnalysis,
			data: map[string]any{"ProductName": "EcoBottle", "Category": "drinkware"},
			want: []string{
				"SITUATION & MARKET ANALYSIS for EcoBottle (drinkware)",
				`"market_opportunities"`,
				`"pest_analysis"`,
			},
		},
		{
			name: PromptSWOTAnalysis,
			data: map[string]any{"ProductName": "EcoBottle"},
			want: []string{"SWOT ANALYSIS for EcoBottle", `"strengths"`, `"threats"`},
		},
		{
			name: PromptPositioning,
			data: map[string]any{"ProductName": "EcoBottle"},
			want: []string{"MISSION, VISION, VALUE PROPOSITION & POSITIONING", `"positioning_statement"`},
		},
		{
			name: PromptGoalsMarketingMix,
			data: map[string]any{"ProductName": "EcoBottle", "MarketingBudget": "50k"},
			want: []string{"MARKETING GOALS & KPIs", "7Ps Strategy", `"marketing_mix"`, `"kpis"`},
		},
		{
			name: PromptActionBudgetRisks,
			data: map[string]any{"ProductName": "EcoBottle", "LaunchDate": "Q1 2026"},
			want: []string{"ACTION PLAN", "RISK MANAGEMENT & LAUNCH STRATEGY", `"launch_strategy"`, `"target_date": "Q1 2026"`},
		},
		{
			name: PromptEvalCriteria,
			data: map[string]any{"PlanSummary": "Product: EcoBottle"},
			want: []string{"Product: EcoBottle", "1. CONSISTENCY (0-10)", "6. ETHICS (0-10)"},
		},
		{
			name: PromptEvalStrengths,
			data: map[string]any{"StrategySummary": "{}"},
			want: []string{"identify 5-7 key strengths", "Format as JSON array of strings."},
		},
		{
			name: PromptEvalWeaknesses,
			data: map[string]any{"StrategySummary": "{}"},
			want: []string{"identify 5-7 key weaknesses or gaps"},
		},
		{
			name: PromptEvalImprovements,
			data: map[string]any{"StrategySummary": "{}"},
			want: []string{"6-8 specific, actionable improvement suggestions", "expected_impact"},
		},
		{
			name: PromptEvalConsistency,
			data: map[string]any{"TargetAudience": "urban commuters"},
			want: []string{"Target Audience: urban commuters", "consistency_score"},
		},
		{
			name: PromptEvalEthics,
			data: map[string]any{"Messaging": "{}", "Promotions": "{}"},
			want: []string{"ethical considerations", "ethics_score"},
		},
		{
			name: PromptEvalAlternatives,
			data: map[string]any{"ProductName": "EcoBottle"},
			want: []string{"PRODUCT: EcoBottle", "positioning_alternatives"},
		},
		{
			name: PromptFieldCompetitors,
			data: map[string]any{"Context": "Product Name: EcoBottle"},
			want: []string{"list 3-5 key competitors", "Product Name: EcoBottle"},
		},
		{
			name: PromptFieldProductCategory,
			data: map[string]any{"Context": "Product Name: EcoBottle"},
			want: []string{"concise product category (1-3 words)"},
		},
		{
			name: PromptFieldProductFeatures,
			data: map[string]any{"Context": "x"},
			want: []string{"list 3-5 key features and functionalities"},
		},
		{
			name: PromptFieldProductUSP,
			data: map[string]any{"Context": "x"},
			want: []string{"2-3 unique selling points"},
		},
		{
			name: PromptFieldProductBranding,
			data: map[string]any{"Context": "x"},
			want: []string{"branding and packaging ideas"},
		},
		{
			name: PromptFieldTargetPrimary,
			data: map[string]any{"Context": "x"},
			want: []string{"describe the primary target audience"},
		},
		{
			name: PromptFieldTargetDemographics,
			data: map[string]any{"Context": "x"},
			want: []string{"demographic details (age, gender, location, income)"},
		},
		{
			name: PromptFieldTargetPsychographics,
			data: map[string]any{"Context": "x"},
			want: []string{"psychographic details (interests, lifestyle, values)"},
		},
		{
			name: PromptFieldTargetProblems,
			data: map[string]any{"Context": "x"},
			want: []string{"customer needs or problems"},
		},
		{
			name: PromptFieldSuggestedPrice,
			data: map[string]any{"Context": "x"},
			want: []string{"suggest a price or price range"},
		},
		{
			name: PromptFieldMarketingChannels,
			data: map[string]any{"Context": "x"},
			want: []string{"best marketing channels"},
		},
		{
			name: PromptFieldToneOfVoice,
			data: map[string]any{"Context": "x"},
			want: []string{"tone of voice and key message"},
		},
		{
			name: PromptFieldSalesGoals,
			data: map[string]any{"Context": "x"},
			want: []string{"realistic sales goals"},
		},
		{
			name: PromptFieldGeneric,
			data: map[string]any{"FieldName": "seasonality", "Context": "x"},
			want: []string{"suggest a value for 'seasonality'"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, err := p.Format(tc.name, tc.data)
			require.NoError(t, err)
			for _, want := range tc.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestFormatUnknownTemplate(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	_, err = p.Format("no_such_template", nil)
	require.Error(t, err)
}

func TestFormatResearchContextBlocks(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	t.Run("positioning includes opportunities when present", func(t *testing.T) {
		out, err := p.Format(PromptPositioning, map[string]any{
			"ProductName":         "EcoBottle",
			"MarketOpportunities": "refill stations, corporate gifting",
		})
		require.NoError(t, err)
		assert.Contains(t, out, "**RESEARCH FINDINGS:**")
		assert.Contains(t, out, "refill stations, corporate gifting")
	})

	t.Run("positioning omits research block when absent", func(t *testing.T) {
		out, err := p.Format(PromptPositioning, map[string]any{"ProductName": "EcoBottle"})
		require.NoError(t, err)
		assert.NotContains(t, out, "**RESEARCH FINDINGS:**")
	})

	t.Run("strategy prompts carry improvement feedback when present", func(t *testing.T) {
		out, err := p.Format(PromptGoalsMarketingMix, map[string]any{
			"ProductName":      "EcoBottle",
			"ImprovementNotes": "weaknesses: vague budget",
		})
		require.NoError(t, err)
		assert.Contains(t, out, "IMPROVEMENT FEEDBACK FROM PREVIOUS DRAFT")
		assert.Contains(t, out, "weaknesses: vague budget")
	})
}
