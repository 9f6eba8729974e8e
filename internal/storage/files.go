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

var fileColumns = []string{"id", "name", "storage_id", "content_type", "size", "uploaded_by", "organization_id", "team_id", "created_at"}

func (s *Storage) CreateFile(ctx context.Context, f *types.File) (*types.File, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateFile")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var file types.File
	err = s.db.Statement(ctx).
		Insert("files").
		Columns("id", "name", "storage_id", "content_type", "size", "uploaded_by", "organization_id", "team_id").
		Values(id, f.Name, f.StorageID, f.ContentType, f.Size, f.UploadedBy, f.OrganizationID, f.TeamID).
		Suffix("RETURNING " + strings.Join(fileColumns, ", ")).
		QueryRowContext(ctx).
		Scan(&file.ID, &file.Name, &file.StorageID, &file.ContentType, &file.Size, &file.UploadedBy, &file.OrganizationID, &file.TeamID, &file.CreatedAt)

	if err != nil {
		return nil, translate(err, "insert file")
	}

	return &file, nil
}

func (s *Storage) ListFilesByOrganization(ctx context.Context, organizationID string) ([]*types.File, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListFilesByOrganization")
	defer span.End()

	return s.listFiles(ctx, sq.Eq{"organization_id": organizationID})
}

func (s *Storage) ListFilesByTeam(ctx context.Context, teamID string) ([]*types.File, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListFilesByTeam")
	defer span.End()

	return s.listFiles(ctx, sq.Eq{"team_id": teamID})
}

func (s *Storage) listFiles(ctx context.Context, where sq.Eq) ([]*types.File, error) {
	rows, err := s.db.Statement(ctx).
		Select(fileColumns...).
		From("files").
		Where(where).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list files")
	}
	defer rows.Close()

	files := make([]*types.File, 0)
	for rows.Next() {
		var f types.File
		if err := rows.Scan(&f.ID, &f.Name, &f.StorageID, &f.ContentType, &f.Size, &f.UploadedBy, &f.OrganizationID, &f.TeamID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return files, nil
}
