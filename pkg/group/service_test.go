// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package group

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lab-service/internal/storage"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

//go:generate mockgen -build_flags=--mod=mod -package group -destination ./mock_group.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package group -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package group -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package group -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_CreateGroup(t *testing.T) {
	input := &types.Group{Name: "Study Buddies", OrganizationID: "org-1", CreatedBy: "user-1"}

	testCases := []struct {
		name         string
		storageErr   error
		expectedKind result.Kind
		expectedMsg  string
	}{
		{name: "created"},
		{name: "duplicate name", storageErr: storage.ErrDuplicateKey, expectedKind: result.KindInvalidArgument, expectedMsg: "Group already exists"},
		{name: "db error", storageErr: errors.New("db down"), expectedKind: result.KindUnknown, expectedMsg: "db down"},
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

			mockTracer.EXPECT().Start(gomock.Any(), "group.Service.CreateGroup").Return(context.Background(), trace.SpanFromContext(context.Background()))

			if tc.storageErr != nil {
				mockStorage.EXPECT().CreateGroup(gomock.Any(), input).Return(nil, tc.storageErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			} else {
				created := *input
				created.ID = "g1"
				mockStorage.EXPECT().CreateGroup(gomock.Any(), input).Return(&created, nil)
			}

			r := s.CreateGroup(context.Background(), input)

			if tc.storageErr != nil {
				if r.Kind() != tc.expectedKind || r.Message() != tc.expectedMsg {
					t.Errorf("expected %v %q, got %v %q", tc.expectedKind, tc.expectedMsg, r.Kind(), r.Message())
				}
				return
			}

			if r.Data().ID != "g1" {
				t.Errorf("unexpected group %+v", r.Data())
			}
		})
	}
}

func TestService_GetGroup(t *testing.T) {
	testCases := []struct {
		name       string
		stored     *types.Group
		storageErr error
	}{
		{name: "found", stored: &types.Group{ID: "g1", Name: "Study Buddies"}},
		{name: "missing", storageErr: storage.ErrNotFound},
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

			mockTracer.EXPECT().Start(gomock.Any(), "group.Service.GetGroup").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStorage.EXPECT().GetGroupByID(gomock.Any(), "g1").Return(tc.stored, tc.storageErr)
			if tc.storageErr != nil {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			}

			r := s.GetGroup(context.Background(), "g1")

			if tc.storageErr != nil {
				if r.Kind() != result.KindNotFound || r.Message() != "Group not found" || r.Data() != nil {
					t.Errorf("expected not found, got %v %q", r.Kind(), r.Message())
				}
				return
			}

			if r.Data() != tc.stored {
				t.Errorf("expected %+v, got %+v", tc.stored, r.Data())
			}
		})
	}
}

func TestService_ListGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "group.Service.ListGroups").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().ListGroupsByOrganization(gomock.Any(), "org-1").Return(nil, nil)

	r := s.ListGroups(context.Background(), "org-1")

	if !r.OK() || r.Data() == nil || len(r.Data()) != 0 {
		t.Errorf("expected empty non nil list, got %v (%v)", r.Data(), r.Err())
	}
}

func TestService_DeleteGroup(t *testing.T) {
	testCases := []struct {
		name       string
		storageErr error
		expected   bool
	}{
		{name: "deleted", expected: true},
		{name: "missing", storageErr: storage.ErrNotFound},
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

			mockTracer.EXPECT().Start(gomock.Any(), "group.Service.DeleteGroup").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStorage.EXPECT().DeleteGroup(gomock.Any(), "g1").Return(tc.storageErr)
			if tc.storageErr != nil {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			}

			r := s.DeleteGroup(context.Background(), "g1")

			if r.Data() != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, r.Data())
			}

			if tc.storageErr != nil && r.Message() != "Group not found" {
				t.Errorf("expected not found message, got %q", r.Message())
			}
		})
	}
}
