// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/lab-service/internal/types"
)

type StorageInterface interface {
	CreateExam(ctx context.Context, e *types.Exam) (*types.Exam, error)
	ListExamsByOrganization(ctx context.Context, organizationID string) ([]*types.Exam, error)
	ListExamsByTeam(ctx context.Context, teamID string) ([]*types.Exam, error)
	DeleteExam(ctx context.Context, id string) error

	CreateMessage(ctx context.Context, m *types.Message) (*types.Message, error)
	ListMessagesByOrganization(ctx context.Context, organizationID string, limit uint64) ([]*types.Message, error)
	ListMessagesByTeam(ctx context.Context, teamID string, limit uint64) ([]*types.Message, error)

	CreateFile(ctx context.Context, f *types.File) (*types.File, error)
	ListFilesByOrganization(ctx context.Context, organizationID string) ([]*types.File, error)
	ListFilesByTeam(ctx context.Context, teamID string) ([]*types.File, error)

	CreateGroup(ctx context.Context, g *types.Group) (*types.Group, error)
	GetGroupByID(ctx context.Context, id string) (*types.Group, error)
	ListGroupsByOrganization(ctx context.Context, organizationID string) ([]*types.Group, error)
	DeleteGroup(ctx context.Context, id string) error
}
