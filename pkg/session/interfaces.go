// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

type ServiceInterface interface {
	GetSession(ctx context.Context, h types.Headers) result.Result[*types.Session]
}

type KratosClientInterface interface {
	GetSession(ctx context.Context, h types.Headers) (*types.Session, error)
}
