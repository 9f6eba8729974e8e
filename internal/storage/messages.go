// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/lab-service/internal/types"
)

var messageColumns = []string{"id", "content", "author_id", "author_name", "organization_id", "team_id", "created_at"}

func (s *Storage) CreateMessage(ctx context.Context, m *types.Message) (*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMessage")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var msg types.Message
	err = s.db.Statement(ctx).
		Insert("messages").
		Columns("id", "content", "author_id", "author_name", "organization_id", "team_id").
		Values(id, m.Content, m.AuthorID, m.AuthorName, m.OrganizationID, m.TeamID).
		Suffix("RETURNING " + strings.Join(messageColumns, ", ")).
		QueryRowContext(ctx).
		Scan(&msg.ID, &msg.Content, &msg.AuthorID, &msg.AuthorName, &msg.OrganizationID, &msg.TeamID, &msg.CreatedAt)

	if err != nil {
		return nil, translate(err, "insert message")
	}

	return &msg, nil
}

func (s *Storage) ListMessagesByOrganization(ctx context.Context, organizationID string, limit uint64) ([]*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMessagesByOrganization")
	defer span.End()

	return s.listMessages(ctx, sq.Eq{"organization_id": organizationID}, limit)
}

func (s *Storage) ListMessagesByTeam(ctx context.Context, teamID string, limit uint64) ([]*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMessagesByTeam")
	defer span.End()

	return s.listMessages(ctx, sq.Eq{"team_id": teamID}, limit)
}

// listMessages returns the latest limit messages, oldest first
func (s *Storage) listMessages(ctx context.Context, where sq.Eq, limit uint64) ([]*types.Message, error) {
	rows, err := s.db.Statement(ctx).
		Select(messageColumns...).
		From("messages").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list messages")
	}
	defer rows.Close()

	messages := make([]*types.Message, 0)
	for rows.Next() {
		var m types.Message
		if err := rows.Scan(&m.ID, &m.Content, &m.AuthorID, &m.AuthorName, &m.OrganizationID, &m.TeamID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	slices.Reverse(messages)

	return messages, nil
}
