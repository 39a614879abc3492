// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package prompts

// Automatically generated convenience vars for the filenames in prompts/
const (
	PromptActionBudgetRisks         = "action_budget_risks"
	PromptGoalsMarketingMix         = "goals_marketing_mix"
	PromptMarketAnalysis            = "market_analysis"
	PromptPositioning               = "positioning"
	PromptSWOTAnalysis              = "swot_analysis"
	PromptEvalAlternatives          = "eval_alternatives"
	PromptEvalConsistency           = "eval_consistency"
	PromptEvalCriteria              = "eval_criteria"
	PromptEvalEthics                = "eval_ethics"
	PromptEvalImprovements          = "eval_improvements"
	PromptEvalStrengths             = "eval_strengths"
	PromptEvalWeaknesses            = "eval_weaknesses"
	PromptFieldCompetitors          = "field_competitors"
	PromptFieldGeneric              = "field_generic"
	PromptFieldMarketingChannels    = "field_marketing_channels"
	PromptFieldProductBranding      = "field_product_branding"
	PromptFieldProductCategory      = "field_product_category"
	PromptFieldProductFeatures      = "field_product_features"
	PromptFieldProductUSP           = "field_product_usp"
	PromptFieldSalesGoals           = "field_sales_goals"
	PromptFieldSuggestedPrice       = "field_suggested_price"
	PromptFieldTargetDemographics   = "field_target_demographics"
	PromptFieldTargetPrimary        = "field_target_primary"
	PromptFieldTargetProblems       = "field_target_problems"
	PromptFieldTargetPsychographics = "field_target_psychographics"
	PromptFieldToneOfVoice          = "field_tone_of_voice"
)
