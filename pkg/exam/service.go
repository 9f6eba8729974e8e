// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package exam

import (
	"context"

	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/storage"
	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

const entity = "Exam"

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

func (s *Service) CreateExam(ctx context.Context, e *types.Exam) result.Result[*types.Exam] {
	ctx, span := s.tracer.Start(ctx, "exam.Service.CreateExam")
	defer span.End()

	created, err := s.storage.CreateExam(ctx, e)
	if err != nil {
		s.logger.Errorf("failed to create exam %q: %v", e.Title, err)
		return result.Fail[*types.Exam](storage.Classify(err, entity))
	}

	return result.Ok(created)
}

// GetExamsByOrganization lists exams by their scheduled date, earliest first
func (s *Service) GetExamsByOrganization(ctx context.Context, organizationID string) result.Result[[]*types.Exam] {
	ctx, span := s.tracer.Start(ctx, "exam.Service.GetExamsByOrganization")
	defer span.End()

	exams, err := s.storage.ListExamsByOrganization(ctx, organizationID)
	if err != nil {
		s.logger.Errorf("failed to list exams of organization %s: %v", organizationID, err)
		return result.Fail[[]*types.Exam](storage.Classify(err, entity))
	}

	return result.Ok(nonNil(exams))
}

func (s *Service) GetExamsByTeam(ctx context.Context, teamID string) result.Result[[]*types.Exam] {
	ctx, span := s.tracer.Start(ctx, "exam.Service.GetExamsByTeam")
	defer span.End()

	exams, err := s.storage.ListExamsByTeam(ctx, teamID)
	if err != nil {
		s.logger.Errorf("failed to list exams of team %s: %v", teamID, err)
		return result.Fail[[]*types.Exam](storage.Classify(err, entity))
	}

	return result.Ok(nonNil(exams))
}

// DeleteExam fails with not found when nothing was deleted
func (s *Service) DeleteExam(ctx context.Context, id string) result.Result[bool] {
	ctx, span := s.tracer.Start(ctx, "exam.Service.DeleteExam")
	defer span.End()

	if err := s.storage.DeleteExam(ctx, id); err != nil {
		s.logger.Errorf("failed to delete exam %s: %v", id, err)
		return result.Fail[bool](storage.Classify(err, entity))
	}

	return result.Ok(true)
}

func nonNil(exams []*types.Exam) []*types.Exam {
	if exams == nil {
		return make([]*types.Exam, 0)
	}

	return exams
}
