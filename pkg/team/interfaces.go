// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"

	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

type ServiceInterface interface {
	GetTeamsWithMembership(ctx context.Context, h types.Headers, organizationID string) result.Result[*types.TeamSplit]
	CreateTeam(ctx context.Context, h types.Headers, organizationID, name, password string) result.Result[*types.Team]
	JoinTeamWithPassword(ctx context.Context, h types.Headers, teamID, password, organizationID string) result.Result[*types.TeamMember]
}

type ProviderInterface interface {
	ListOrganizationTeams(ctx context.Context, h types.Headers, organizationID string) ([]types.Team, error)
	ListUserTeams(ctx context.Context, h types.Headers) ([]types.Team, error)
	CreateTeam(ctx context.Context, h types.Headers, organizationID, name, passwordHash string) (*types.Team, error)
	AddTeamMember(ctx context.Context, h types.Headers, teamID, userID string) (*types.TeamMember, error)
}

type SessionInterface interface {
	GetSession(ctx context.Context, h types.Headers) (*types.Session, error)
}

type PasswordVerifierInterface interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
