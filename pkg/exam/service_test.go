// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package exam

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lab-service/internal/storage"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

//go:generate mockgen -build_flags=--mod=mod -package exam -destination ./mock_exam.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package exam -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package exam -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package exam -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_CreateExam(t *testing.T) {
	input := &types.Exam{
		Title:          "Math Final Exam",
		Date:           time.Now().Add(24 * time.Hour),
		CreatedBy:      "user123",
		OrganizationID: "org123",
	}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(s *MockStorageInterface, l *MockLoggerInterface) {
				created := *input
				created.ID = "exam-1"
				s.EXPECT().CreateExam(gomock.Any(), input).Return(&created, nil)
			},
		},
		{
			name: "storage error",
			setupMocks: func(s *MockStorageInterface, l *MockLoggerInterface) {
				s.EXPECT().CreateExam(gomock.Any(), input).Return(nil, dbErr)
				l.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "exam.Service.CreateExam").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			r := s.CreateExam(context.Background(), input)

			if tc.expectedErr != nil {
				if !errors.Is(r.Err(), tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, r.Err())
				}
				if r.Message() != "db error" {
					t.Errorf("expected stringified error, got %q", r.Message())
				}
				return
			}

			if !r.OK() || r.Data().ID != "exam-1" {
				t.Errorf("unexpected result %+v (%v)", r.Data(), r.Err())
			}
		})
	}
}

func TestService_GetExamsByOrganization(t *testing.T) {
	testCases := []struct {
		name          string
		stored        []*types.Exam
		storageErr    error
		expectedCount int
	}{
		{name: "two exams", stored: []*types.Exam{{ID: "e1"}, {ID: "e2"}}, expectedCount: 2},
		{name: "nil from storage renders empty", stored: nil, expectedCount: 0},
		{name: "storage error", storageErr: errors.New("db error")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "exam.Service.GetExamsByOrganization").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStorage.EXPECT().ListExamsByOrganization(gomock.Any(), "org123").Return(tc.stored, tc.storageErr)
			if tc.storageErr != nil {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			}

			r := s.GetExamsByOrganization(context.Background(), "org123")

			if tc.storageErr != nil {
				if r.OK() || r.Data() != nil {
					t.Errorf("expected failure with nil data, got %v (%v)", r.Data(), r.Err())
				}
				return
			}

			if r.Data() == nil || len(r.Data()) != tc.expectedCount {
				t.Errorf("expected %d exams, got %v", tc.expectedCount, r.Data())
			}
		})
	}
}

func TestService_DeleteExam(t *testing.T) {
	testCases := []struct {
		name        string
		storageErr  error
		expected    bool
		expectedMsg string
		expectedErr result.Kind
	}{
		{name: "deleted", expected: true},
		{name: "missing", storageErr: storage.ErrNotFound, expectedMsg: "Exam not found", expectedErr: result.KindNotFound},
		{name: "db error", storageErr: errors.New("db error"), expectedMsg: "db error", expectedErr: result.KindUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "exam.Service.DeleteExam").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStorage.EXPECT().DeleteExam(gomock.Any(), "exam-1").Return(tc.storageErr)
			if tc.storageErr != nil {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			}

			r := s.DeleteExam(context.Background(), "exam-1")

			if r.Data() != tc.expected {
				t.Errorf("expected data %v, got %v", tc.expected, r.Data())
			}

			if tc.storageErr != nil {
				if r.Kind() != tc.expectedErr || r.Message() != tc.expectedMsg {
					t.Errorf("expected %v %q, got %v %q", tc.expectedErr, tc.expectedMsg, r.Kind(), r.Message())
				}
			}
		})
	}
}
