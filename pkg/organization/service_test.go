// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lab-service/internal/orgapi"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_organization.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var (
	headers = types.Headers{Cookie: "session=abc"}
	orgs    = []types.Organization{
		{ID: "org-1", Name: "Physics Lab", Slug: "physics-lab"},
		{ID: "org-2", Name: "Chemistry Lab", Slug: "chemistry-lab"},
	}
)

func TestService_GetOrganizationByID(t *testing.T) {
	testCases := []struct {
		name        string
		id          string
		setupMocks  func(*MockProviderInterface, *MockLoggerInterface)
		expectedOrg *types.Organization
		expectedErr error
	}{
		{
			name: "found",
			id:   "org-2",
			setupMocks: func(p *MockProviderInterface, l *MockLoggerInterface) {
				p.EXPECT().ListOrganizations(gomock.Any(), headers).Return(orgs, nil)
			},
			expectedOrg: &orgs[1],
		},
		{
			name: "not in list",
			id:   "org-404",
			setupMocks: func(p *MockProviderInterface, l *MockLoggerInterface) {
				p.EXPECT().ListOrganizations(gomock.Any(), headers).Return(orgs, nil)
			},
			expectedErr: result.ErrOrganizationNotFound,
		},
		{
			name: "empty list",
			id:   "org-1",
			setupMocks: func(p *MockProviderInterface, l *MockLoggerInterface) {
				p.EXPECT().ListOrganizations(gomock.Any(), headers).Return([]types.Organization{}, nil)
			},
			expectedErr: result.ErrOrganizationNotFound,
		},
		{
			name: "response not array",
			id:   "org-1",
			setupMocks: func(p *MockProviderInterface, l *MockLoggerInterface) {
				p.EXPECT().ListOrganizations(gomock.Any(), headers).Return(nil, fmt.Errorf("decode: %w", orgapi.ErrNotArray))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			},
			expectedErr: result.ErrOrganizationsNotArray,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProvider := NewMockProviderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockProvider, 5, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.GetOrganizationByID").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockProvider, mockLogger)

			r := s.GetOrganizationByID(context.Background(), headers, tc.id)

			if tc.expectedErr != nil {
				if !errors.Is(r.Err(), tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, r.Err())
				}
				if r.Data() != nil {
					t.Errorf("expected nil data on failure, got %+v", r.Data())
				}
				if r.Message() != result.MessageOf(tc.expectedErr) {
					t.Errorf("expected message %q, got %q", result.MessageOf(tc.expectedErr), r.Message())
				}
				return
			}

			if !r.OK() {
				t.Fatalf("unexpected error: %v", r.Err())
			}

			if r.Data().ID != tc.expectedOrg.ID {
				t.Errorf("expected %s, got %s", tc.expectedOrg.ID, r.Data().ID)
			}
		})
	}
}

func TestService_GetOrganizationBySlug(t *testing.T) {
	testCases := []struct {
		name        string
		slug        string
		providerErr error
		expectedID  string
		expectedErr error
	}{
		{name: "found", slug: "physics-lab", expectedID: "org-1"},
		{name: "not found", slug: "biology-lab", expectedErr: result.ErrOrganizationNotFound},
		{name: "not array", slug: "physics-lab", providerErr: orgapi.ErrNotArray, expectedErr: result.ErrOrganizationsNotArray},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProvider := NewMockProviderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockProvider, 5, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.GetOrganizationBySlug").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

			if tc.providerErr != nil {
				mockProvider.EXPECT().ListOrganizations(gomock.Any(), headers).Return(nil, tc.providerErr)
			} else {
				mockProvider.EXPECT().ListOrganizations(gomock.Any(), headers).Return(orgs, nil)
			}

			r := s.GetOrganizationBySlug(context.Background(), headers, tc.slug)

			if tc.expectedErr != nil {
				if !errors.Is(r.Err(), tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, r.Err())
				}
				return
			}

			if !r.OK() || r.Data().ID != tc.expectedID {
				t.Errorf("expected %s, got %+v (%v)", tc.expectedID, r.Data(), r.Err())
			}
		})
	}
}

func TestService_GetOrganizationsWithOwners(t *testing.T) {
	members := map[string][]types.Member{
		"org-1": {
			{ID: "m1", Role: types.RoleMember, User: types.User{Name: "Bob", Email: "bob@example.com"}},
			{ID: "m2", Role: types.RoleOwner, User: types.User{Name: "Ada", Email: "ada@example.com"}},
		},
		"org-2": {
			{ID: "m3", Role: types.RoleAdmin, User: types.User{Name: "Eve", Email: "eve@example.com"}},
		},
	}

	testCases := []struct {
		name        string
		setupMocks  func(*MockProviderInterface, *MockLoggerInterface)
		expected    []types.OrganizationWithOwner
		expectedErr bool
	}{
		{
			name: "owners attached",
			setupMocks: func(p *MockProviderInterface, l *MockLoggerInterface) {
				p.EXPECT().ListOrganizations(gomock.Any(), headers).Return(orgs, nil)
				p.EXPECT().ListMembers(gomock.Any(), headers, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ types.Headers, id string) ([]types.Member, error) {
						return members[id], nil
					},
				).Times(2)
			},
			expected: []types.OrganizationWithOwner{
				{Organization: orgs[0], MemberCount: 2, Owner: &types.Owner{Name: "Ada", Email: "ada@example.com"}},
				{Organization: orgs[1], MemberCount: 1},
			},
		},
		{
			name: "zero organizations never fetch members",
			setupMocks: func(p *MockProviderInterface, l *MockLoggerInterface) {
				p.EXPECT().ListOrganizations(gomock.Any(), headers).Return([]types.Organization{}, nil)
				p.EXPECT().ListMembers(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expected: []types.OrganizationWithOwner{},
		},
		{
			name: "member fetch failure fails everything",
			setupMocks: func(p *MockProviderInterface, l *MockLoggerInterface) {
				p.EXPECT().ListOrganizations(gomock.Any(), headers).Return(orgs, nil)
				p.EXPECT().ListMembers(gomock.Any(), headers, "org-1").Return(members["org-1"], nil).AnyTimes()
				p.EXPECT().ListMembers(gomock.Any(), headers, "org-2").Return(nil, errors.New("provider down"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProvider := NewMockProviderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockProvider, 5, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.GetOrganizationsWithOwners").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockProvider, mockLogger)

			r := s.GetOrganizationsWithOwners(context.Background(), headers)

			if tc.expectedErr {
				if r.OK() {
					t.Fatal("expected error but got none")
				}
				if r.Data() != nil {
					t.Errorf("expected nil data on failure, got %v", r.Data())
				}
				if r.Message() != "provider down" {
					t.Errorf("expected provider message, got %q", r.Message())
				}
				return
			}

			if !r.OK() {
				t.Fatalf("unexpected error: %v", r.Err())
			}

			got := r.Data()
			if got == nil {
				t.Fatal("expected non nil list")
			}

			if len(got) != len(tc.expected) {
				t.Fatalf("expected %d organizations, got %d", len(tc.expected), len(got))
			}

			for i := range got {
				if got[i].ID != tc.expected[i].ID || got[i].MemberCount != tc.expected[i].MemberCount {
					t.Errorf("entry %d: expected %+v, got %+v", i, tc.expected[i], got[i])
				}

				switch {
				case tc.expected[i].Owner == nil && got[i].Owner != nil:
					t.Errorf("entry %d: expected no owner, got %+v", i, got[i].Owner)
				case tc.expected[i].Owner != nil && (got[i].Owner == nil || *got[i].Owner != *tc.expected[i].Owner):
					t.Errorf("entry %d: expected owner %+v, got %+v", i, tc.expected[i].Owner, got[i].Owner)
				}
			}
		})
	}
}

func TestService_GetOrganizationsWithOwners_BoundedFanOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := NewMockProviderInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	const batchSize = 3

	many := make([]types.Organization, 11)
	for i := range many {
		many[i] = types.Organization{ID: fmt.Sprintf("org-%d", i)}
	}

	var inFlight, peak atomic.Int32

	mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.GetOrganizationsWithOwners").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockProvider.EXPECT().ListOrganizations(gomock.Any(), headers).Return(many, nil)
	mockProvider.EXPECT().ListMembers(gomock.Any(), headers, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ types.Headers, _ string) ([]types.Member, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return []types.Member{}, nil
		},
	).Times(len(many))

	s := NewService(mockProvider, batchSize, mockTracer, mockMonitor, mockLogger)

	r := s.GetOrganizationsWithOwners(context.Background(), headers)
	if !r.OK() {
		t.Fatalf("unexpected error: %v", r.Err())
	}

	if p := peak.Load(); p > batchSize {
		t.Errorf("expected at most %d concurrent member calls, got %d", batchSize, p)
	}

	for i, o := range r.Data() {
		if o.ID != many[i].ID {
			t.Errorf("expected order preserved at %d: %s, got %s", i, many[i].ID, o.ID)
		}
	}
}

func TestService_CreateOrganization(t *testing.T) {
	testCases := []struct {
		name         string
		orgName      string
		slug         string
		expectedSlug string
		expectedErr  result.Kind
		providerErr  error
	}{
		{name: "slug derived from name", orgName: "Physics Lab 2026", expectedSlug: "physics-lab-2026"},
		{name: "explicit slug", orgName: "Physics", slug: "phys", expectedSlug: "phys"},
		{name: "invalid slug", orgName: "Physics", slug: "Not A Slug", expectedErr: result.KindInvalidArgument},
		{name: "provider rejects", orgName: "Physics", expectedSlug: "physics", providerErr: &orgapi.StatusError{StatusCode: 400, Message: "Organization already exists"}, expectedErr: result.KindInvalidArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProvider := NewMockProviderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockProvider, 5, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.CreateOrganization").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

			if tc.expectedSlug != "" {
				created := &types.Organization{ID: "org-new", Name: tc.orgName, Slug: tc.expectedSlug}
				var err error
				if tc.providerErr != nil {
					created, err = nil, tc.providerErr
				}
				mockProvider.EXPECT().CreateOrganization(gomock.Any(), headers, tc.orgName, tc.expectedSlug, "").Return(created, err)
			}

			r := s.CreateOrganization(context.Background(), headers, tc.orgName, tc.slug, "")

			if tc.expectedErr != result.KindUnknown {
				if r.OK() || r.Kind() != tc.expectedErr {
					t.Errorf("expected %v failure, got %v", tc.expectedErr, r.Err())
				}
				return
			}

			if !r.OK() {
				t.Fatalf("unexpected error: %v", r.Err())
			}

			if r.Data().Slug != tc.expectedSlug {
				t.Errorf("expected slug %s, got %s", tc.expectedSlug, r.Data().Slug)
			}
		})
	}
}

func TestService_ListOrganizations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := NewMockProviderInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockProvider, 0, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "organization.Service.ListOrganizations").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockProvider.EXPECT().ListOrganizations(gomock.Any(), headers).Return(nil, nil)

	r := s.ListOrganizations(context.Background(), headers)
	if !r.OK() {
		t.Fatalf("unexpected error: %v", r.Err())
	}

	if r.Data() == nil || len(r.Data()) != 0 {
		t.Errorf("expected empty non nil list, got %v", r.Data())
	}
}
