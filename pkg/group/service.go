// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package group

import (
	"context"

	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/storage"
	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

const entity = "Group"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateGroup fails with an invalid argument when the organization already has a group
// with the same name
func (s *Service) CreateGroup(ctx context.Context, g *types.Group) result.Result[*types.Group] {
	ctx, span := s.tracer.Start(ctx, "group.Service.CreateGroup")
	defer span.End()

	created, err := s.storage.CreateGroup(ctx, g)
	if err != nil {
		s.logger.Errorf("failed to create group %q: %v", g.Name, err)
		return result.Fail[*types.Group](storage.Classify(err, entity))
	}

	return result.Ok(created)
}

func (s *Service) ListGroups(ctx context.Context, organizationID string) result.Result[[]*types.Group] {
	ctx, span := s.tracer.Start(ctx, "group.Service.ListGroups")
	defer span.End()

	groups, err := s.storage.ListGroupsByOrganization(ctx, organizationID)
	if err != nil {
		s.logger.Errorf("failed to list groups of organization %s: %v", organizationID, err)
		return result.Fail[[]*types.Group](storage.Classify(err, entity))
	}

	if groups == nil {
		groups = make([]*types.Group, 0)
	}

	return result.Ok(groups)
}

func (s *Service) GetGroup(ctx context.Context, id string) result.Result[*types.Group] {
	ctx, span := s.tracer.Start(ctx, "group.Service.GetGroup")
	defer span.End()

	g, err := s.storage.GetGroupByID(ctx, id)
	if err != nil {
		s.logger.Errorf("failed to get group %s: %v", id, err)
		return result.Fail[*types.Group](storage.Classify(err, entity))
	}

	return result.Ok(g)
}

func (s *Service) DeleteGroup(ctx context.Context, id string) result.Result[bool] {
	ctx, span := s.tracer.Start(ctx, "group.Service.DeleteGroup")
	defer span.End()

	if err := s.storage.DeleteGroup(ctx, id); err != nil {
		s.logger.Errorf("failed to delete group %s: %v", id, err)
		return result.Fail[bool](storage.Classify(err, entity))
	}

	return result.Ok(true)
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
