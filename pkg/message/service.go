// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package message

import (
	"context"

	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/storage"
	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

const (
	entity = "Message"

	DefaultLimit = 100
	MaxLimit     = 500
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) SendMessage(ctx context.Context, m *types.Message) result.Result[*types.Message] {
	ctx, span := s.tracer.Start(ctx, "message.Service.SendMessage")
	defer span.End()

	created, err := s.storage.CreateMessage(ctx, m)
	if err != nil {
		s.logger.Errorf("failed to send message from %s: %v", m.AuthorID, err)
		return result.Fail[*types.Message](storage.Classify(err, entity))
	}

	return result.Ok(created)
}

// GetMessagesByOrganization returns the most recent messages, oldest first
func (s *Service) GetMessagesByOrganization(ctx context.Context, organizationID string, limit int) result.Result[[]*types.Message] {
	ctx, span := s.tracer.Start(ctx, "message.Service.GetMessagesByOrganization")
	defer span.End()

	messages, err := s.storage.ListMessagesByOrganization(ctx, organizationID, clamp(limit))
	if err != nil {
		s.logger.Errorf("failed to list messages of organization %s: %v", organizationID, err)
		return result.Fail[[]*types.Message](storage.Classify(err, entity))
	}

	return result.Ok(nonNil(messages))
}

func (s *Service) GetMessagesByTeam(ctx context.Context, teamID string, limit int) result.Result[[]*types.Message] {
	ctx, span := s.tracer.Start(ctx, "message.Service.GetMessagesByTeam")
	defer span.End()

	messages, err := s.storage.ListMessagesByTeam(ctx, teamID, clamp(limit))
	if err != nil {
		s.logger.Errorf("failed to list messages of team %s: %v", teamID, err)
		return result.Fail[[]*types.Message](storage.Classify(err, entity))
	}

	return result.Ok(nonNil(messages))
}

func clamp(limit int) uint64 {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}

	return uint64(limit)
}

func nonNil(messages []*types.Message) []*types.Message {
	if messages == nil {
		return make([]*types.Message, 0)
	}

	return messages
}
