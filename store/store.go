// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

// Package store persists compiled marketing plan documents in Postgres.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/launchplan-ai/launchplan/logger"
	"github.com/launchplan-ai/launchplan/plan"
)

// Schema identifiers shared by Init and the query builders.
const (
	tableName          = "marketing_plans"
	columnID           = "id"
	columnSessionID    = "session_id"
	columnProductName  = "product_name"
	columnQualityScore = "quality_score"
	columnDocument     = "document"
	columnCreatedAt    = "created_at"
	indexSession       = "idx_marketing_plans_session"
)

// ErrNotFound is returned when no plan matches the requested id or session.
var ErrNotFound = errors.New("plan not found")

// StoredPlan is one persisted document with its storage identifiers.
type StoredPlan struct {
	ID        string         `json:"id"`
	SessionID string         `json:"session_id"`
	Document  *plan.Document `json:"document"`
	CreatedAt time.Time      `json:"created_at"`
}

// PlanSummary is the metadata-only listing row.
type PlanSummary struct {
	ID           string    `json:"id" db:"id"`
	SessionID    string    `json:"session_id" db:"session_id"`
	ProductName  string    `json:"product_name" db:"product_name"`
	QualityScore float64   `json:"quality_score" db:"quality_score"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type planRow struct {
	ID        string    `db:"id"`
	SessionID string    `db:"session_id"`
	Document  []byte    `db:"document"`
	CreatedAt time.Time `db:"created_at"`
}

// Store owns the Postgres connection pool for plan persistence.
type Store struct {
	db  *sqlx.DB
	log logger.Logger
}

// New connects to Postgres and verifies the connection.
func New(dsn string, log logger.Logger) (*Store, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to database")
	}

	return &Store{
		db:  db,
		log: log,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Init creates the plans table and its indexes when missing.
// Table and column names cannot be parameterized in PostgreSQL, so the
// schema is assembled from the package-level constants.
func (s *Store) Init(ctx context.Context) error {
	schema := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		%s UUID PRIMARY KEY,
		%s TEXT NOT NULL,
		%s TEXT NOT NULL,
		%s NUMERIC NOT NULL,
		%s JSONB NOT NULL,
		%s TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS %s ON %s(%s);
	`,
		tableName,
		columnID, columnSessionID, columnProductName,
		columnQualityScore, columnDocument, columnCreatedAt,
		indexSession, tableName, columnSessionID,
	)

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "unable to create plans schema")
	}

	s.log.Info("plan store initialized", "table", tableName)
	return nil
}

func (s *Store) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// SavePlan persists one compiled document and returns its new id.
func (s *Store) SavePlan(ctx context.Context, sessionID string, doc *plan.Document) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "unable to serialize document")
	}

	id := uuid.New().String()
	query, args, err := s.builder().
		Insert(tableName).
		Columns(columnID, columnSessionID, columnProductName, columnQualityScore, columnDocument).
		Values(id, sessionID, doc.Metadata.ProductName, doc.Metadata.QualityScore, payload).
		ToSql()
	if err != nil {
		return "", errors.Wrap(err, "unable to build insert query")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return "", errors.Wrap(err, "unable to save plan")
	}

	s.log.Info("plan saved", "id", id, "session_id", sessionID,
		"product", doc.Metadata.ProductName)
	return id, nil
}

// GetPlan fetches one plan by id.
func (s *Store) GetPlan(ctx context.Context, id string) (*StoredPlan, error) {
	query, args, err := s.builder().
		Select(columnID, columnSessionID, columnDocument, columnCreatedAt).
		From(tableName).
		Where(sq.Eq{columnID: id}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build select query")
	}

	var row planRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "unable to fetch plan")
	}

	return rowToStoredPlan(row)
}

// GetPlanBySession fetches the most recent plan generated for a session.
func (s *Store) GetPlanBySession(ctx context.Context, sessionID string) (*StoredPlan, error) {
	query, args, err := s.builder().
		Select(columnID, columnSessionID, columnDocument, columnCreatedAt).
		From(tableName).
		Where(sq.Eq{columnSessionID: sessionID}).
		OrderBy(columnCreatedAt + " DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build select query")
	}

	var row planRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "unable to fetch plan for session")
	}

	return rowToStoredPlan(row)
}

// ListPlans returns metadata for the most recent plans, newest first.
func (s *Store) ListPlans(ctx context.Context, limit int) ([]PlanSummary, error) {
	query, args, err := s.builder().
		Select(columnID, columnSessionID, columnProductName, columnQualityScore, columnCreatedAt).
		From(tableName).
		OrderBy(columnCreatedAt + " DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build list query")
	}

	summaries := []PlanSummary{}
	if err := s.db.SelectContext(ctx, &summaries, query, args...); err != nil {
		return nil, errors.Wrap(err, "unable to list plans")
	}
	return summaries, nil
}

// DeletePlan removes one plan by id.
func (s *Store) DeletePlan(ctx context.Context, id string) error {
	query, args, err := s.builder().
		Delete(tableName).
		Where(sq.Eq{columnID: id}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "unable to build delete query")
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "unable to delete plan")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "unable to read delete result")
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.log.Info("plan deleted", "id", id)
	return nil
}

func rowToStoredPlan(row planRow) (*StoredPlan, error) {
	var doc plan.Document
	if err := json.Unmarshal(row.Document, &doc); err != nil {
		return nil, errors.Wrap(err, "unable to decode stored document")
	}
	return &StoredPlan{
		ID:        row.ID,
		SessionID: row.SessionID,
		Document:  &doc,
		CreatedAt: row.CreatedAt,
	}, nil
}
