// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"errors"

	"github.com/gosimple/slug"
	"golang.org/x/sync/errgroup"

	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/orgapi"
	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

const defaultBatchSize = 5

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	provider  ProviderInterface
	batchSize int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	provider ProviderInterface,
	batchSize int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &Service{
		provider:  provider,
		batchSize: batchSize,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

func (s *Service) ListOrganizations(ctx context.Context, h types.Headers) result.Result[[]types.Organization] {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListOrganizations")
	defer span.End()

	orgs, err := s.listOrganizations(ctx, h)
	if err != nil {
		s.logger.Errorf("failed to list organizations: %v", err)
		return result.Fail[[]types.Organization](err)
	}

	return result.Ok(orgs)
}

func (s *Service) GetOrganizationBySlug(ctx context.Context, h types.Headers, slug string) result.Result[*types.Organization] {
	ctx, span := s.tracer.Start(ctx, "organization.Service.GetOrganizationBySlug")
	defer span.End()

	return s.find(ctx, h, func(o types.Organization) bool { return o.Slug == slug })
}

func (s *Service) GetOrganizationByID(ctx context.Context, h types.Headers, id string) result.Result[*types.Organization] {
	ctx, span := s.tracer.Start(ctx, "organization.Service.GetOrganizationByID")
	defer span.End()

	return s.find(ctx, h, func(o types.Organization) bool { return o.ID == id })
}

// find scans the caller's organizations, the provider has no lookup endpoint
func (s *Service) find(ctx context.Context, h types.Headers, match func(types.Organization) bool) result.Result[*types.Organization] {
	orgs, err := s.listOrganizations(ctx, h)
	if err != nil {
		s.logger.Errorf("failed to look up organization: %v", err)
		return result.Fail[*types.Organization](err)
	}

	for i := range orgs {
		if match(orgs[i]) {
			return result.Ok(&orgs[i])
		}
	}

	return result.Fail[*types.Organization](result.ErrOrganizationNotFound)
}

// GetOrganizationsWithOwners attaches the member count and owner to every organization.
// Member lists are fetched in sequential batches, each batch concurrently, and any
// failure fails the whole call
func (s *Service) GetOrganizationsWithOwners(ctx context.Context, h types.Headers) result.Result[[]types.OrganizationWithOwner] {
	ctx, span := s.tracer.Start(ctx, "organization.Service.GetOrganizationsWithOwners")
	defer span.End()

	orgs, err := s.listOrganizations(ctx, h)
	if err != nil {
		s.logger.Errorf("failed to list organizations: %v", err)
		return result.Fail[[]types.OrganizationWithOwner](err)
	}

	out := make([]types.OrganizationWithOwner, len(orgs))

	for start := 0; start < len(orgs); start += s.batchSize {
		end := min(start+s.batchSize, len(orgs))

		g, gCtx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			g.Go(func() error {
				members, err := s.provider.ListMembers(gCtx, h, orgs[i].ID)
				if err != nil {
					return err
				}

				out[i] = withOwner(orgs[i], members)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			s.logger.Errorf("failed to fetch organization members: %v", err)
			return result.Fail[[]types.OrganizationWithOwner](orgapi.Classify(err))
		}
	}

	return result.Ok(out)
}

func (s *Service) ListMembers(ctx context.Context, h types.Headers, organizationID string) result.Result[[]types.Member] {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListMembers")
	defer span.End()

	members, err := s.provider.ListMembers(ctx, h, organizationID)
	if err != nil {
		s.logger.Errorf("failed to list members of %s: %v", organizationID, err)
		return result.Fail[[]types.Member](orgapi.Classify(err))
	}

	if members == nil {
		members = make([]types.Member, 0)
	}

	return result.Ok(members)
}

// CreateOrganization derives the slug from the name when none is given
func (s *Service) CreateOrganization(ctx context.Context, h types.Headers, name, orgSlug, logo string) result.Result[*types.Organization] {
	ctx, span := s.tracer.Start(ctx, "organization.Service.CreateOrganization")
	defer span.End()

	if orgSlug == "" {
		orgSlug = slug.Make(name)
	}

	if !slug.IsSlug(orgSlug) {
		return result.Fail[*types.Organization](result.NewError(result.KindInvalidArgument, "Invalid organization slug"))
	}

	org, err := s.provider.CreateOrganization(ctx, h, name, orgSlug, logo)
	if err != nil {
		s.logger.Errorf("failed to create organization %s: %v", orgSlug, err)
		return result.Fail[*types.Organization](orgapi.Classify(err))
	}

	return result.Ok(org)
}

func (s *Service) listOrganizations(ctx context.Context, h types.Headers) ([]types.Organization, error) {
	orgs, err := s.provider.ListOrganizations(ctx, h)
	if err != nil {
		if errors.Is(err, orgapi.ErrNotArray) {
			return nil, result.ErrOrganizationsNotArray
		}

		return nil, orgapi.Classify(err)
	}

	if orgs == nil {
		orgs = make([]types.Organization, 0)
	}

	return orgs, nil
}

func withOwner(org types.Organization, members []types.Member) types.OrganizationWithOwner {
	o := types.OrganizationWithOwner{
		Organization: org,
		MemberCount:  len(members),
	}

	for _, m := range members {
		if m.Role == types.RoleOwner {
			o.Owner = &types.Owner{Name: m.User.Name, Email: m.User.Email}
			break
		}
	}

	return o
}
