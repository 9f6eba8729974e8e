// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

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
	provider ProviderInterface
	sessions SessionInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	provider ProviderInterface,
	sessions SessionInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		provider: provider,
		sessions: sessions,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) InviteMember(ctx context.Context, h types.Headers, organizationID, email, role string) result.Result[*types.Invitation] {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.InviteMember")
	defer span.End()

	if role == "" {
		role = types.RoleMember
	}

	inv, err := s.provider.CreateInvitation(ctx, h, organizationID, email, role)
	if err != nil {
		s.logger.Errorf("failed to invite %s to %s: %v", email, organizationID, err)
		return result.Fail[*types.Invitation](orgapi.Classify(err))
	}

	return result.Ok(inv)
}

// GetUserInvitations lists the caller's pending invitations, each joined with the name
// and slug of its organization. Organizations the caller cannot see are reported as
// unknown rather than failing the listing
func (s *Service) GetUserInvitations(ctx context.Context, h types.Headers) result.Result[[]types.EnrichedInvitation] {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.GetUserInvitations")
	defer span.End()

	session, err := s.sessions.GetSession(ctx, h)
	if err != nil {
		if !errors.Is(err, result.ErrUnauthenticated) {
			s.logger.Errorf("failed to resolve session: %v", err)
		}
		return result.Fail[[]types.EnrichedInvitation](orgapi.Classify(err))
	}

	if session == nil || session.Email == "" {
		return result.Fail[[]types.EnrichedInvitation](result.ErrUnauthenticated)
	}

	invitations, err := s.provider.ListUserInvitations(ctx, h, session.Email)
	if err != nil {
		s.logger.Errorf("failed to list invitations of %s: %v", session.Email, err)
		return result.Fail[[]types.EnrichedInvitation](orgapi.Classify(err))
	}

	orgs, err := s.provider.ListOrganizations(ctx, h)
	if err != nil {
		s.logger.Errorf("failed to list organizations: %v", err)
		if errors.Is(err, orgapi.ErrNotArray) {
			return result.Fail[[]types.EnrichedInvitation](result.ErrOrganizationsNotArray)
		}
		return result.Fail[[]types.EnrichedInvitation](orgapi.Classify(err))
	}

	return result.Ok(enrich(invitations, orgs))
}

func enrich(invitations []types.Invitation, orgs []types.Organization) []types.EnrichedInvitation {
	byID := make(map[string]types.Organization, len(orgs))
	for _, o := range orgs {
		byID[o.ID] = o
	}

	out := make([]types.EnrichedInvitation, 0, len(invitations))
	for _, inv := range invitations {
		if inv.Status != types.InvitationPending {
			continue
		}

		e := types.EnrichedInvitation{
			Invitation:       inv,
			OrganizationName: types.UnknownOrganizationName,
		}

		if o, ok := byID[inv.OrganizationID]; ok {
			e.OrganizationName = o.Name
			e.OrganizationSlug = o.Slug
		}

		out = append(out, e)
	}

	return out
}

func (s *Service) AcceptInvitation(ctx context.Context, h types.Headers, invitationID string) result.Result[*types.Invitation] {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.AcceptInvitation")
	defer span.End()

	inv, err := s.provider.AcceptInvitation(ctx, h, invitationID)
	if err != nil {
		s.logger.Errorf("failed to accept invitation %s: %v", invitationID, err)
		return result.Fail[*types.Invitation](orgapi.Classify(err))
	}

	return result.Ok(inv)
}

func (s *Service) RejectInvitation(ctx context.Context, h types.Headers, invitationID string) result.Result[*types.Invitation] {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.RejectInvitation")
	defer span.End()

	inv, err := s.provider.RejectInvitation(ctx, h, invitationID)
	if err != nil {
		s.logger.Errorf("failed to reject invitation %s: %v", invitationID, err)
		return result.Fail[*types.Invitation](orgapi.Classify(err))
	}

	return result.Ok(inv)
}
