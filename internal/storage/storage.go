// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/lab-service/internal/db"
	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var examColumns = []string{"id", "title", "description", "date", "created_by", "organization_id", "team_id", "created_at"}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}

	return id.String(), nil
}

func (s *Storage) CreateExam(ctx context.Context, e *types.Exam) (*types.Exam, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateExam")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var exam types.Exam
	err = s.db.Statement(ctx).
		Insert("exams").
		Columns("id", "title", "description", "date", "created_by", "organization_id", "team_id").
		Values(id, e.Title, e.Description, e.Date, e.CreatedBy, e.OrganizationID, e.TeamID).
		Suffix("RETURNING " + strings.Join(examColumns, ", ")).
		QueryRowContext(ctx).
		Scan(&exam.ID, &exam.Title, &exam.Description, &exam.Date, &exam.CreatedBy, &exam.OrganizationID, &exam.TeamID, &exam.CreatedAt)

	if err != nil {
		return nil, translate(err, "insert exam")
	}

	return &exam, nil
}

func (s *Storage) ListExamsByOrganization(ctx context.Context, organizationID string) ([]*types.Exam, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListExamsByOrganization")
	defer span.End()

	return s.listExams(ctx, sq.Eq{"organization_id": organizationID})
}

func (s *Storage) ListExamsByTeam(ctx context.Context, teamID string) ([]*types.Exam, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListExamsByTeam")
	defer span.End()

	return s.listExams(ctx, sq.Eq{"team_id": teamID})
}

// listExams orders by the exam date, creation time breaks ties
func (s *Storage) listExams(ctx context.Context, where sq.Eq) ([]*types.Exam, error) {
	rows, err := s.db.Statement(ctx).
		Select(examColumns...).
		From("exams").
		Where(where).
		OrderBy("date ASC", "created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list exams")
	}
	defer rows.Close()

	exams := make([]*types.Exam, 0)
	for rows.Next() {
		var e types.Exam
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.CreatedBy, &e.OrganizationID, &e.TeamID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exam: %w", err)
		}
		exams = append(exams, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return exams, nil
}

func (s *Storage) DeleteExam(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteExam")
	defer span.End()

	return s.deleteByID(ctx, "exams", id)
}

func (s *Storage) deleteByID(ctx context.Context, table, id string) error {
	res, err := s.db.Statement(ctx).
		Delete(table).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		// a malformed id can never match a row
		if IsInvalidTextError(err) {
			return ErrNotFound
		}
		return translate(err, "delete from "+table)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
