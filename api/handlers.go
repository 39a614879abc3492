// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/launchplan-ai/launchplan/plan"
	"github.com/launchplan-ai/launchplan/store"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// CreatePlanRequest is the payload for starting a generation. Attributes
// carries the intake form fields keyed by field name.
type CreatePlanRequest struct {
	Attributes  map[string]any `json:"attributes"`
	AutoIterate bool           `json:"auto_iterate"`
}

// CreatePlanResponse acknowledges an accepted generation request.
type CreatePlanResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

// PlanStatusResponse reports the state of a generation session. Document is
// set once the pipeline has finished.
type PlanStatusResponse struct {
	SessionID string         `json:"session_id"`
	Status    string         `json:"status"`
	PlanID    string         `json:"plan_id,omitempty"`
	Error     string         `json:"error,omitempty"`
	Document  *plan.Document `json:"document,omitempty"`
}

// ListPlansResponse wraps the stored plan summaries.
type ListPlansResponse struct {
	Plans []store.PlanSummary `json:"plans"`
}

// SuggestionRequest asks for a value suggestion for one intake field, given
// whatever attributes the user has filled in so far.
type SuggestionRequest struct {
	FieldName  string         `json:"field_name"`
	Attributes map[string]any `json:"attributes"`
}

// SuggestionResponse carries the generated suggestion.
type SuggestionResponse struct {
	FieldName  string `json:"field_name"`
	Suggestion string `json:"suggestion"`
}

func (a *API) handleCreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	attrs := plan.Attributes(req.Attributes)
	if attrs.Str("product_name", "") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_name is required"})
		return
	}

	sessionID := uuid.New().String()
	a.sessions.begin(sessionID)

	a.log.Info("plan generation accepted",
		"session_id", sessionID,
		"product_name", attrs.Str("product_name", ""),
		"auto_iterate", req.AutoIterate,
	)

	go a.runGeneration(sessionID, attrs, req.AutoIterate)

	c.JSON(http.StatusAccepted, CreatePlanResponse{
		SessionID: sessionID,
		Status:    statusProcessing,
	})
}

// runGeneration drives the pipeline for one session and records the outcome
// in the tracker. Runs detached from the accepting request.
func (a *API) runGeneration(sessionID string, attrs plan.Attributes, autoIterate bool) {
	ctx := context.Background()

	doc, err := a.generator.GenerateDocument(ctx, attrs, autoIterate)
	if err != nil {
		a.log.Error("plan generation failed", "session_id", sessionID, "error", err.Error())
		a.sessions.fail(sessionID, err.Error())
		return
	}

	planID := ""
	if a.store != nil {
		id, saveErr := a.store.SavePlan(ctx, sessionID, doc)
		if saveErr != nil {
			a.log.Error("unable to persist plan", "session_id", sessionID, "error", saveErr.Error())
		} else {
			planID = id
		}
	}

	a.sessions.complete(sessionID, doc, planID)
}

func (a *API) handleGetPlan(c *gin.Context) {
	sessionID := c.Param("sessionID")

	if s, ok := a.sessions.get(sessionID); ok {
		resp := PlanStatusResponse{SessionID: sessionID, Status: s.Status}
		switch s.Status {
		case statusCompleted:
			resp.PlanID = s.PlanID
			resp.Document = s.Document
		case statusFailed:
			resp.Error = s.Error
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	// Unknown to this process; plans finished in an earlier run may still be
	// in the store.
	if a.store != nil {
		stored, err := a.store.GetPlanBySession(c.Request.Context(), sessionID)
		if err == nil {
			c.JSON(http.StatusOK, PlanStatusResponse{
				SessionID: sessionID,
				Status:    statusCompleted,
				PlanID:    stored.ID,
				Document:  stored.Document,
			})
			return
		}
		if !errors.Is(err, store.ErrNotFound) {
			a.log.Error("unable to load plan", "session_id", sessionID, "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load plan"})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
}

func (a *API) handleListPlans(c *gin.Context) {
	if a.store == nil {
		c.JSON(http.StatusOK, ListPlansResponse{Plans: []store.PlanSummary{}})
		return
	}

	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxListLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = parsed
	}

	plans, err := a.store.ListPlans(c.Request.Context(), limit)
	if err != nil {
		a.log.Error("unable to list plans", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list plans"})
		return
	}

	c.JSON(http.StatusOK, ListPlansResponse{Plans: plans})
}

func (a *API) handleDeletePlan(c *gin.Context) {
	if a.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "persistence is not configured"})
		return
	}

	id := c.Param("id")
	if err := a.store.DeletePlan(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		a.log.Error("unable to delete plan", "plan_id", id, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to delete plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (a *API) handleSuggestField(c *gin.Context) {
	var req SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.FieldName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field_name is required"})
		return
	}

	suggestion, err := a.assistant.SuggestField(c.Request.Context(), req.FieldName, plan.Attributes(req.Attributes))
	if err != nil {
		a.log.Error("field suggestion failed", "field_name", req.FieldName, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to generate suggestion"})
		return
	}

	c.JSON(http.StatusOK, SuggestionResponse{
		FieldName:  req.FieldName,
		Suggestion: suggestion,
	})
}
