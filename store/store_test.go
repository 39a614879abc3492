// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchplan-ai/launchplan/logger"
	"github.com/launchplan-ai/launchplan/plan"
)

// testStore connects to the database named by TEST_DATABASE_URL. These are
// integration tests; without a live Postgres they skip.
func testStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping store integration tests")
	}

	s, err := New(dsn, logger.NewNop())
	require.NoError(t, err, "Failed to connect to PostgreSQL. Is PostgreSQL running?")
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Init(context.Background()))
	return s
}

func testDocument(productName string) *plan.Document {
	doc := plan.Compile(
		plan.Attributes{"product_name": productName},
		plan.Research{}, plan.Strategy{},
		time.Now().UTC(), "fast_v1", "fast",
	)
	doc.Metadata.QualityScore = 7.5
	return doc
}

func TestStoreRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	sessionID := uuid.New().String()
	id, err := s.SavePlan(ctx, sessionID, testDocument("EcoBottle"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.GetPlan(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, sessionID, got.SessionID)
	assert.Equal(t, "EcoBottle", got.Document.Metadata.ProductName)
	assert.Len(t, got.Document.Sections, 12)

	bySession, err := s.GetPlanBySession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, id, bySession.ID)

	summaries, err := s.ListPlans(ctx, 50)
	require.NoError(t, err)
	found := false
	for _, summary := range summaries {
		if summary.ID == id {
			found = true
			assert.Equal(t, "EcoBottle", summary.ProductName)
			assert.Equal(t, 7.5, summary.QualityScore)
			assert.Equal(t, sessionID, summary.SessionID)
		}
	}
	assert.True(t, found, "saved plan missing from listing")

	require.NoError(t, s.DeletePlan(ctx, id))
	_, err = s.GetPlan(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeletePlan(ctx, id), ErrNotFound)
}

func TestGetPlanBySessionReturnsLatest(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	sessionID := uuid.New().String()
	first, err := s.SavePlan(ctx, sessionID, testDocument("EcoBottle"))
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := s.SavePlan(ctx, sessionID, testDocument("EcoBottle v2"))
	require.NoError(t, err)

	got, err := s.GetPlanBySession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, second, got.ID)
	assert.Equal(t, "EcoBottle v2", got.Document.Metadata.ProductName)

	require.NoError(t, s.DeletePlan(ctx, first))
	require.NoError(t, s.DeletePlan(ctx, second))
}

func TestGetPlanUnknownID(t *testing.T) {
	s := testStore(t)

	_, err := s.GetPlan(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetPlanBySession(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrNotFound)
}
