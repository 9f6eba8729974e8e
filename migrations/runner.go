// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migrations

import (
	"context"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/canonical/lab-service/internal/logging"
)

const (
	CheckOK      = "ok"
	CheckPending = "pending"
	CheckUnknown = "unknown"
)

// Step is one migration applied or rolled back
type Step struct {
	Version   int64         `json:"version"`
	Source    string        `json:"source"`
	Direction string        `json:"direction"`
	Duration  time.Duration `json:"duration"`
	Empty     bool          `json:"empty,omitempty"`
}

// State is one known migration and when it was applied, nil when pending
type State struct {
	Version   int64      `json:"version"`
	Source    string     `json:"source"`
	AppliedAt *time.Time `json:"appliedAt"`
}

type Check struct {
	Status  string `json:"status"`
	Version int64  `json:"version"`
}

// Runner applies and inspects the schema through a goose provider
type Runner struct {
	provider ProviderInterface

	logger logging.LoggerInterface
}

func (r *Runner) Up(ctx context.Context) ([]Step, error) {
	results, err := r.provider.Up(ctx)
	if err != nil {
		r.logger.Errorf("failed to apply migrations: %v", err)
		return nil, err
	}

	return steps(results), nil
}

// Down rolls back a single migration when version is negative, otherwise everything
// above version
func (r *Runner) Down(ctx context.Context, version int64) ([]Step, error) {
	if version >= 0 {
		results, err := r.provider.DownTo(ctx, version)
		if err != nil {
			r.logger.Errorf("failed to roll back to version %d: %v", version, err)
			return nil, err
		}

		return steps(results), nil
	}

	res, err := r.provider.Down(ctx)
	if err != nil {
		r.logger.Errorf("failed to roll back: %v", err)
		return nil, err
	}

	return steps([]*goose.MigrationResult{res}), nil
}

func (r *Runner) Status(ctx context.Context) ([]State, error) {
	statuses, err := r.provider.Status(ctx)
	if err != nil {
		r.logger.Errorf("failed to read migration status: %v", err)
		return nil, err
	}

	states := make([]State, 0, len(statuses))
	for _, s := range statuses {
		if s == nil || s.Source == nil {
			continue
		}

		state := State{Version: s.Source.Version, Source: s.Source.Path}
		if s.State == goose.StateApplied {
			appliedAt := s.AppliedAt
			state.AppliedAt = &appliedAt
		}

		states = append(states, state)
	}

	return states, nil
}

// Check reports CheckPending with the current version when migrations are waiting,
// CheckOK when the schema is current and CheckUnknown when the version table cannot
// be read
func (r *Runner) Check(ctx context.Context) (*Check, error) {
	pending, err := r.provider.HasPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := r.provider.GetDBVersion(ctx)
	if err != nil {
		if pending {
			return nil, fmt.Errorf("migrations are pending, current version unknown: %w", err)
		}

		r.logger.Debugf("failed to read schema version: %v", err)
		return &Check{Status: CheckUnknown}, nil
	}

	if pending {
		return &Check{Status: CheckPending, Version: current}, nil
	}

	return &Check{Status: CheckOK, Version: current}, nil
}

func steps(results []*goose.MigrationResult) []Step {
	out := make([]Step, 0, len(results))

	for _, res := range results {
		if res == nil || res.Source == nil {
			continue
		}

		out = append(out, Step{
			Version:   res.Source.Version,
			Source:    res.Source.Path,
			Direction: res.Direction,
			Duration:  res.Duration,
			Empty:     res.Empty,
		})
	}

	return out
}

func NewRunner(provider ProviderInterface, logger logging.LoggerInterface) *Runner {
	r := new(Runner)

	r.provider = provider
	r.logger = logger

	return r
}
