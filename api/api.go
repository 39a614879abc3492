// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

// Package api exposes plan generation, field suggestions, and stored plan
// management over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/launchplan-ai/launchplan/logger"
	"github.com/launchplan-ai/launchplan/metrics"
	"github.com/launchplan-ai/launchplan/plan"
	"github.com/launchplan-ai/launchplan/store"
)

// Generator runs the full generation pipeline for one set of intake
// attributes. Satisfied by marketing.Orchestrator.
type Generator interface {
	GenerateDocument(ctx context.Context, attrs plan.Attributes, autoIterate bool) (*plan.Document, error)
}

// Suggester produces a suggestion for a single intake field. Satisfied by
// marketing.FieldAssistant.
type Suggester interface {
	SuggestField(ctx context.Context, fieldName string, attrs plan.Attributes) (string, error)
}

// PlanStore persists completed documents. Satisfied by store.Store. A nil
// PlanStore disables persistence; generated plans are then only available
// from the in-memory session tracker.
type PlanStore interface {
	SavePlan(ctx context.Context, sessionID string, doc *plan.Document) (string, error)
	GetPlanBySession(ctx context.Context, sessionID string) (*store.StoredPlan, error)
	ListPlans(ctx context.Context, limit int) ([]store.PlanSummary, error)
	DeletePlan(ctx context.Context, id string) error
}

// API hosts the HTTP routes for plan generation and retrieval.
type API struct {
	generator Generator
	assistant Suggester
	store     PlanStore
	metrics   metrics.Metrics
	log       logger.Logger
	apiKey    string
	sessions  *sessionTracker
	engine    *gin.Engine
}

// New sets up the router. apiKey is the shared secret clients must present
// in the X-API-Key header; an empty key disables authentication.
func New(generator Generator, assistant Suggester, planStore PlanStore, metricsService metrics.Metrics, log logger.Logger, apiKey string) *API {
	a := &API{
		generator: generator,
		assistant: assistant,
		store:     planStore,
		metrics:   metricsService,
		log:       log,
		apiKey:    apiKey,
		sessions:  newSessionTracker(),
	}

	if apiKey == "" {
		log.Warn("no API key configured, authentication is disabled")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(a.metricsMiddleware)

	router.GET("/health", a.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metricsService.GetRegistry(), promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	v1.Use(a.apiKeyRequired)
	v1.POST("/plans", a.handleCreatePlan)
	v1.GET("/plans", a.handleListPlans)
	v1.GET("/plans/:sessionID", a.handleGetPlan)
	v1.DELETE("/plans/:id", a.handleDeletePlan)
	v1.POST("/suggestions", a.handleSuggestField)

	a.engine = router

	return a
}

// ServeHTTP implements http.Handler so the API can be mounted on any server.
func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.engine.ServeHTTP(w, r)
}

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
