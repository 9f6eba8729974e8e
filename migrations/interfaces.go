// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migrations

import (
	"context"

	"github.com/pressly/goose/v3"
)

// ProviderInterface is the part of *goose.Provider the Runner drives
type ProviderInterface interface {
	Up(context.Context) ([]*goose.MigrationResult, error)
	Down(context.Context) (*goose.MigrationResult, error)
	DownTo(context.Context, int64) ([]*goose.MigrationResult, error)
	Status(context.Context) ([]*goose.MigrationStatus, error)
	HasPending(context.Context) (bool, error)
	GetDBVersion(context.Context) (int64, error)
}
