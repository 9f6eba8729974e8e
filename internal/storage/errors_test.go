// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/canonical/lab-service/pkg/result"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"pgx no rows", pgx.ErrNoRows, ErrNotFound},
		{"sql no rows", sql.ErrNoRows, ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, ErrDuplicateKey},
		{"invalid text", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "22P02"}), ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translate(tt.err, "op"); !errors.Is(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	if translate(nil, "op") != nil {
		t.Error("expected nil")
	}

	other := errors.New("connection reset")
	if got := translate(other, "list exams"); !errors.Is(got, other) || got.Error() != "failed to list exams: connection reset" {
		t.Errorf("unexpected translation %v", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind result.Kind
		wantMsg  string
	}{
		{"not found", ErrNotFound, result.KindNotFound, "Exam not found"},
		{"duplicate", fmt.Errorf("insert: %w", ErrDuplicateKey), result.KindInvalidArgument, "Exam already exists"},
		{"invalid id", ErrInvalidID, result.KindInvalidArgument, "Invalid exam id"},
		{"other", errors.New("db down"), result.KindUnknown, "db down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify(tt.err, "Exam")

			if result.KindOf(err) != tt.wantKind {
				t.Errorf("expected kind %v, got %v", tt.wantKind, result.KindOf(err))
			}

			if result.MessageOf(err) != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, result.MessageOf(err))
			}
		})
	}
}
