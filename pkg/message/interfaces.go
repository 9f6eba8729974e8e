// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package message

import (
	"context"

	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

type ServiceInterface interface {
	SendMessage(ctx context.Context, m *types.Message) result.Result[*types.Message]
	GetMessagesByOrganization(ctx context.Context, organizationID string, limit int) result.Result[[]*types.Message]
	GetMessagesByTeam(ctx context.Context, teamID string, limit int) result.Result[[]*types.Message]
}

type StorageInterface interface {
	CreateMessage(ctx context.Context, m *types.Message) (*types.Message, error)
	ListMessagesByOrganization(ctx context.Context, organizationID string, limit uint64) ([]*types.Message, error)
	ListMessagesByTeam(ctx context.Context, teamID string, limit uint64) ([]*types.Message, error)
}
