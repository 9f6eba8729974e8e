// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/lab-service/internal/types"
)

var groupColumns = []string{"id", "name", "description", "organization_id", "created_by", "created_at"}

func (s *Storage) CreateGroup(ctx context.Context, g *types.Group) (*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateGroup")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var group types.Group
	err = s.db.Statement(ctx).
		Insert("study_groups").
		Columns("id", "name", "description", "organization_id", "created_by").
		Values(id, g.Name, g.Description, g.OrganizationID, g.CreatedBy).
		Suffix("RETURNING " + strings.Join(groupColumns, ", ")).
		QueryRowContext(ctx).
		Scan(&group.ID, &group.Name, &group.Description, &group.OrganizationID, &group.CreatedBy, &group.CreatedAt)

	if err != nil {
		return nil, translate(err, "insert group")
	}

	return &group, nil
}

func (s *Storage) GetGroupByID(ctx context.Context, id string) (*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetGroupByID")
	defer span.End()

	var g types.Group
	err := s.db.Statement(ctx).
		Select(groupColumns...).
		From("study_groups").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&g.ID, &g.Name, &g.Description, &g.OrganizationID, &g.CreatedBy, &g.CreatedAt)

	if err != nil {
		if IsInvalidTextError(err) {
			return nil, ErrNotFound
		}
		return nil, translate(err, "get group")
	}

	return &g, nil
}

func (s *Storage) ListGroupsByOrganization(ctx context.Context, organizationID string) ([]*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListGroupsByOrganization")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(groupColumns...).
		From("study_groups").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("name ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list groups")
	}
	defer rows.Close()

	groups := make([]*types.Group, 0)
	for rows.Next() {
		var g types.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.OrganizationID, &g.CreatedBy, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return groups, nil
}

func (s *Storage) DeleteGroup(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteGroup")
	defer span.End()

	return s.deleteByID(ctx, "study_groups", id)
}
