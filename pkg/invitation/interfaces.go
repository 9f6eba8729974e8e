// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"

	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

type ServiceInterface interface {
	InviteMember(ctx context.Context, h types.Headers, organizationID, email, role string) result.Result[*types.Invitation]
	GetUserInvitations(ctx context.Context, h types.Headers) result.Result[[]types.EnrichedInvitation]
	AcceptInvitation(ctx context.Context, h types.Headers, invitationID string) result.Result[*types.Invitation]
	RejectInvitation(ctx context.Context, h types.Headers, invitationID string) result.Result[*types.Invitation]
}

type ProviderInterface interface {
	ListOrganizations(ctx context.Context, h types.Headers) ([]types.Organization, error)
	CreateInvitation(ctx context.Context, h types.Headers, organizationID, email, role string) (*types.Invitation, error)
	ListUserInvitations(ctx context.Context, h types.Headers, email string) ([]types.Invitation, error)
	AcceptInvitation(ctx context.Context, h types.Headers, invitationID string) (*types.Invitation, error)
	RejectInvitation(ctx context.Context, h types.Headers, invitationID string) (*types.Invitation, error)
}

type SessionInterface interface {
	GetSession(ctx context.Context, h types.Headers) (*types.Session, error)
}
