// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// apiKeyRequired rejects requests whose X-API-Key header does not match the
// configured key. Routes outside /api/v1 (health, metrics) are not guarded.
func (a *API) apiKeyRequired(c *gin.Context) {
	if a.apiKey == "" {
		c.Next()
		return
	}

	if c.GetHeader("X-API-Key") != a.apiKey {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
		return
	}

	c.Next()
}

// metricsMiddleware records request counts, error counts, and per-endpoint
// latency for every route.
func (a *API) metricsMiddleware(c *gin.Context) {
	a.metrics.IncrementHTTPRequests()
	start := time.Now()

	c.Next()

	status := c.Writer.Status()
	if status >= http.StatusBadRequest {
		a.metrics.IncrementHTTPErrors()
	}

	handler := c.FullPath()
	if handler == "" {
		handler = "unknown"
	}
	a.metrics.ObserveAPIEndpointDuration(handler, c.Request.Method, strconv.Itoa(status), time.Since(start).Seconds())
}
