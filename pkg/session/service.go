// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"

	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	kratos KratosClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(kratos KratosClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		kratos:  kratos,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) GetSession(ctx context.Context, h types.Headers) result.Result[*types.Session] {
	ctx, span := s.tracer.Start(ctx, "session.Service.GetSession")
	defer span.End()

	session, err := s.kratos.GetSession(ctx, h)
	if err != nil {
		if errors.Is(err, result.ErrUnauthenticated) {
			return result.Fail[*types.Session](result.ErrUnauthenticated)
		}

		s.logger.Errorf("failed to resolve session: %v", err)
		return result.Fail[*types.Session](result.Wrap(result.KindUnknown, err.Error(), err))
	}

	return result.Ok(session)
}
