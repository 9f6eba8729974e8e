// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package exam

import (
	"context"

	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

type ServiceInterface interface {
	CreateExam(ctx context.Context, e *types.Exam) result.Result[*types.Exam]
	GetExamsByOrganization(ctx context.Context, organizationID string) result.Result[[]*types.Exam]
	GetExamsByTeam(ctx context.Context, teamID string) result.Result[[]*types.Exam]
	DeleteExam(ctx context.Context, id string) result.Result[bool]
}

type StorageInterface interface {
	CreateExam(ctx context.Context, e *types.Exam) (*types.Exam, error)
	ListExamsByOrganization(ctx context.Context, organizationID string) ([]*types.Exam, error)
	ListExamsByTeam(ctx context.Context, teamID string) ([]*types.Exam, error)
	DeleteExam(ctx context.Context, id string) error
}
