// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"errors"

	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/orgapi"
	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	provider  ProviderInterface
	sessions  SessionInterface
	passwords PasswordVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	provider ProviderInterface,
	sessions SessionInterface,
	passwords PasswordVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		provider:  provider,
		sessions:  sessions,
		passwords: passwords,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// GetTeamsWithMembership partitions the organization's teams by the caller's membership,
// both halves keep the organization's ordering
func (s *Service) GetTeamsWithMembership(ctx context.Context, h types.Headers, organizationID string) result.Result[*types.TeamSplit] {
	ctx, span := s.tracer.Start(ctx, "team.Service.GetTeamsWithMembership")
	defer span.End()

	teams, err := s.provider.ListOrganizationTeams(ctx, h, organizationID)
	if err != nil {
		s.logger.Errorf("failed to list teams of %s: %v", organizationID, err)
		return result.Fail[*types.TeamSplit](orgapi.Classify(err))
	}

	userTeams, err := s.provider.ListUserTeams(ctx, h)
	if err != nil {
		s.logger.Errorf("failed to list user teams: %v", err)
		return result.Fail[*types.TeamSplit](orgapi.Classify(err))
	}

	return result.Ok(split(teams, userTeams))
}

func split(teams, userTeams []types.Team) *types.TeamSplit {
	joinedIDs := make(map[string]struct{}, len(userTeams))
	for _, t := range userTeams {
		joinedIDs[t.ID] = struct{}{}
	}

	out := &types.TeamSplit{
		Joined:    make([]types.Team, 0),
		Available: make([]types.Team, 0),
	}

	for _, t := range teams {
		if _, ok := joinedIDs[t.ID]; ok {
			out.Joined = append(out.Joined, t.Public())
		} else {
			out.Available = append(out.Available, t.Public())
		}
	}

	return out
}

// CreateTeam hashes the optional password, the provider only ever sees the hash
func (s *Service) CreateTeam(ctx context.Context, h types.Headers, organizationID, name, password string) result.Result[*types.Team] {
	ctx, span := s.tracer.Start(ctx, "team.Service.CreateTeam")
	defer span.End()

	hash := ""
	if password != "" {
		var err error
		if hash, err = s.passwords.Hash(password); err != nil {
			s.logger.Errorf("failed to hash password for team %s: %v", name, err)
			return result.Fail[*types.Team](result.Wrap(result.KindInvalidArgument, "Password could not be hashed", err))
		}
	}

	team, err := s.provider.CreateTeam(ctx, h, organizationID, name, hash)
	if err != nil {
		s.logger.Errorf("failed to create team %s: %v", name, err)
		return result.Fail[*types.Team](orgapi.Classify(err))
	}

	public := team.Public()

	return result.Ok(&public)
}

// JoinTeamWithPassword checks, in order, that the team exists in the organization, that
// the password matches and that the caller is signed in, then adds the caller
func (s *Service) JoinTeamWithPassword(ctx context.Context, h types.Headers, teamID, password, organizationID string) result.Result[*types.TeamMember] {
	ctx, span := s.tracer.Start(ctx, "team.Service.JoinTeamWithPassword")
	defer span.End()

	teams, err := s.provider.ListOrganizationTeams(ctx, h, organizationID)
	if err != nil {
		s.logger.Errorf("failed to list teams of %s: %v", organizationID, err)
		return result.Fail[*types.TeamMember](orgapi.Classify(err))
	}

	var team *types.Team
	for i := range teams {
		if teams[i].ID == teamID {
			team = &teams[i]
			break
		}
	}

	if team == nil {
		return result.Fail[*types.TeamMember](result.ErrTeamNotFound)
	}

	if team.Password == "" || !s.passwords.Verify(team.Password, password) {
		s.logger.Security().AuthzFailure("", "team:"+teamID)
		return result.Fail[*types.TeamMember](result.ErrInvalidPassword)
	}

	session, err := s.sessions.GetSession(ctx, h)
	if err != nil {
		if errors.Is(err, result.ErrUnauthenticated) {
			return result.Fail[*types.TeamMember](result.ErrUnauthenticated)
		}

		s.logger.Errorf("failed to resolve session: %v", err)
		return result.Fail[*types.TeamMember](orgapi.Classify(err))
	}

	if session == nil || session.UserID == "" {
		return result.Fail[*types.TeamMember](result.ErrUnauthenticated)
	}

	member, err := s.provider.AddTeamMember(ctx, h, teamID, session.UserID)
	if err != nil {
		s.logger.Errorf("failed to add %s to team %s: %v", session.UserID, teamID, err)
		return result.Fail[*types.TeamMember](orgapi.Classify(err))
	}

	return result.Ok(member)
}
