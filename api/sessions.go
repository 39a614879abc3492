// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package api

import (
	"sync"

	"github.com/launchplan-ai/launchplan/plan"
)

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
	statusFailed     = "failed"
)

// session tracks one generation request from acceptance to completion.
type session struct {
	Status   string
	Document *plan.Document
	PlanID   string
	Error    string
}

// sessionTracker keeps in-flight and recently finished generations in memory
// so callers can poll without hitting the store.
type sessionTracker struct {
	mu       sync.Mutex
	sessions map[string]session
}

func newSessionTracker() *sessionTracker {
	return &sessionTracker{
		sessions: make(map[string]session),
	}
}

func (t *sessionTracker) begin(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions[sessionID] = session{Status: statusProcessing}
}

func (t *sessionTracker) complete(sessionID string, doc *plan.Document, planID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions[sessionID] = session{Status: statusCompleted, Document: doc, PlanID: planID}
}

func (t *sessionTracker) fail(sessionID string, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions[sessionID] = session{Status: statusFailed, Error: message}
}

func (t *sessionTracker) get(sessionID string) (session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[sessionID]
	return s, ok
}
