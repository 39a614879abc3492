// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package marketing

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/launchplan-ai/launchplan/llm"
	"github.com/launchplan-ai/launchplan/logger"
	"github.com/launchplan-ai/launchplan/plan"
	"github.com/launchplan-ai/launchplan/prompts"
)

// fieldPromptTemplates maps intake field names to their dedicated suggestion
// prompts. Fields without an entry fall back to the generic prompt.
var fieldPromptTemplates = map[string]string{
	"product_category":      prompts.PromptFieldProductCategory,
	"product_features":      prompts.PromptFieldProductFeatures,
	"product_usp":           prompts.PromptFieldProductUSP,
	"product_branding":      prompts.PromptFieldProductBranding,
	"target_primary":        prompts.PromptFieldTargetPrimary,
	"target_demographics":   prompts.PromptFieldTargetDemographics,
	"target_psychographics": prompts.PromptFieldTargetPsychographics,
	"target_problems":       prompts.PromptFieldTargetProblems,
	"competitors":           prompts.PromptFieldCompetitors,
	"suggested_price":       prompts.PromptFieldSuggestedPrice,
	"marketing_channels":    prompts.PromptFieldMarketingChannels,
	"tone_of_voice":         prompts.PromptFieldToneOfVoice,
	"sales_goals":           prompts.PromptFieldSalesGoals,
}

const fieldSystemMessage = "You are a helpful marketing assistant that provides concise, practical suggestions for product marketing plans. Keep responses brief and directly usable."

const fieldSuggestionSuffix = "Provide a clear, concise, and actionable suggestion. Keep it brief and directly usable."

const fieldSuggestionTemperature = 0.7

type fieldPromptData struct {
	FieldName string
	Context   string
}

// FieldAssistant suggests values for individual intake fields while the user
// fills in the product questionnaire. Unlike the pipeline calls it returns
// provider errors to the caller; there is no sensible default suggestion.
type FieldAssistant struct {
	model   llm.LanguageModel
	prompts *prompts.Prompts
	log     logger.Logger
}

func NewFieldAssistant(model llm.LanguageModel, prompts *prompts.Prompts, log logger.Logger) *FieldAssistant {
	return &FieldAssistant{
		model:   model,
		prompts: prompts,
		log:     log,
	}
}

// SuggestField returns a short prose suggestion for the named intake field,
// grounded on whatever attributes the user has already filled in.
func (f *FieldAssistant) SuggestField(ctx context.Context, fieldName string, attrs plan.Attributes) (string, error) {
	data := fieldPromptData{
		FieldName: fieldName,
		Context:   fieldContext(attrs),
	}

	template, ok := fieldPromptTemplates[fieldName]
	if !ok {
		template = prompts.PromptFieldGeneric
	}
	prompt, err := f.prompts.Format(template, data)
	if err != nil {
		return "", errors.Wrapf(err, "unable to build suggestion prompt for field %s", fieldName)
	}

	request := llm.NewSystemRequest(fieldSystemMessage, prompt+"\n\n"+fieldSuggestionSuffix)
	response, err := f.model.ChatCompletionNoStream(ctx, request,
		llm.WithTemperature(fieldSuggestionTemperature))
	if err != nil {
		return "", errors.Wrapf(err, "field suggestion failed for %s", fieldName)
	}

	f.log.Debug("field suggestion generated", "field", fieldName)
	return strings.TrimSpace(response), nil
}

// fieldContext summarizes the filled intake fields for the suggestion
// prompts. Empty fields are omitted.
func fieldContext(attrs plan.Attributes) string {
	lines := make([]string, 0, 8)
	add := func(label, key string) {
		if value := attrs.Str(key, ""); value != "" {
			lines = append(lines, label+": "+value)
		}
	}
	add("Product Name", "product_name")
	add("Category", "product_category")
	add("Features", "product_features")
	add("USPs", "product_usp")
	add("Target Audience", "target_primary")
	add("Demographics", "target_demographics")
	add("Competitors", "competitors")
	add("Price", "suggested_price")

	if len(lines) == 0 {
		return "No information provided yet."
	}
	return strings.Join(lines, "\n")
}
