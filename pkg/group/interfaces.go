// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package group

import (
	"context"

	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

type ServiceInterface interface {
	CreateGroup(ctx context.Context, g *types.Group) result.Result[*types.Group]
	ListGroups(ctx context.Context, organizationID string) result.Result[[]*types.Group]
	GetGroup(ctx context.Context, id string) result.Result[*types.Group]
	DeleteGroup(ctx context.Context, id string) result.Result[bool]
}

type StorageInterface interface {
	CreateGroup(ctx context.Context, g *types.Group) (*types.Group, error)
	GetGroupByID(ctx context.Context, id string) (*types.Group, error)
	ListGroupsByOrganization(ctx context.Context, organizationID string) ([]*types.Group, error)
	DeleteGroup(ctx context.Context, id string) error
}
