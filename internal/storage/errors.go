// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/canonical/lab-service/pkg/result"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicateKey = errors.New("duplicate key violation")
	ErrInvalidID    = errors.New("invalid identifier")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation  = "23505"
	pgErrCodeInvalidTextValue = "22P02"
)

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeUniqueViolation
	}
	return false
}

// IsInvalidTextError reports malformed literals, a non uuid id ends up here
func IsInvalidTextError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeInvalidTextValue
	}
	return false
}

// translate maps driver errors onto the storage sentinels, op names the failed operation
func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, ErrDuplicateKey)
	case IsInvalidTextError(err):
		return fmt.Errorf("%s: %w", op, ErrInvalidID)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}

// Classify renders a storage failure as a result error, entity names the record in messages
func Classify(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return result.Wrap(result.KindNotFound, entity+" not found", err)
	case errors.Is(err, ErrDuplicateKey):
		return result.Wrap(result.KindInvalidArgument, entity+" already exists", err)
	case errors.Is(err, ErrInvalidID):
		return result.Wrap(result.KindInvalidArgument, "Invalid "+strings.ToLower(entity)+" id", err)
	default:
		return result.Wrap(result.KindUnknown, err.Error(), err)
	}
}
