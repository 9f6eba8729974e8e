// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"

	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

type ServiceInterface interface {
	ListOrganizations(ctx context.Context, h types.Headers) result.Result[[]types.Organization]
	GetOrganizationBySlug(ctx context.Context, h types.Headers, slug string) result.Result[*types.Organization]
	GetOrganizationByID(ctx context.Context, h types.Headers, id string) result.Result[*types.Organization]
	GetOrganizationsWithOwners(ctx context.Context, h types.Headers) result.Result[[]types.OrganizationWithOwner]
	ListMembers(ctx context.Context, h types.Headers, organizationID string) result.Result[[]types.Member]
	CreateOrganization(ctx context.Context, h types.Headers, name, slug, logo string) result.Result[*types.Organization]
}

type ProviderInterface interface {
	ListOrganizations(ctx context.Context, h types.Headers) ([]types.Organization, error)
	ListMembers(ctx context.Context, h types.Headers, organizationID string) ([]types.Member, error)
	CreateOrganization(ctx context.Context, h types.Headers, name, slug, logo string) (*types.Organization, error)
}
