// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lab-service/internal/orgapi"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_invitation.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var (
	headers = types.Headers{Cookie: "session=abc"}
	session = &types.Session{ID: "s1", UserID: "user-1", Email: "ada@example.com"}
)

func TestService_GetUserInvitations(t *testing.T) {
	invitations := []types.Invitation{
		{ID: "inv-1", OrganizationID: "org-1", Email: "ada@example.com", Status: types.InvitationPending},
		{ID: "inv-2", OrganizationID: "org-gone", Email: "ada@example.com", Status: types.InvitationPending},
		{ID: "inv-3", OrganizationID: "org-1", Email: "ada@example.com", Status: types.InvitationAccepted},
	}
	orgs := []types.Organization{{ID: "org-1", Name: "Physics Lab", Slug: "physics-lab"}}

	testCases := []struct {
		name        string
		setupMocks  func(*MockProviderInterface, *MockSessionInterface, *MockLoggerInterface)
		expected    []types.EnrichedInvitation
		expectedErr error
	}{
		{
			name: "enriched with unknown fallback",
			setupMocks: func(p *MockProviderInterface, s *MockSessionInterface, l *MockLoggerInterface) {
				s.EXPECT().GetSession(gomock.Any(), headers).Return(session, nil)
				p.EXPECT().ListUserInvitations(gomock.Any(), headers, "ada@example.com").Return(invitations, nil)
				p.EXPECT().ListOrganizations(gomock.Any(), headers).Return(orgs, nil)
			},
			expected: []types.EnrichedInvitation{
				{Invitation: invitations[0], OrganizationName: "Physics Lab", OrganizationSlug: "physics-lab"},
				{Invitation: invitations[1], OrganizationName: types.UnknownOrganizationName},
			},
		},
		{
			name: "no invitations",
			setupMocks: func(p *MockProviderInterface, s *MockSessionInterface, l *MockLoggerInterface) {
				s.EXPECT().GetSession(gomock.Any(), headers).Return(session, nil)
				p.EXPECT().ListUserInvitations(gomock.Any(), headers, "ada@example.com").Return([]types.Invitation{}, nil)
				p.EXPECT().ListOrganizations(gomock.Any(), headers).Return(orgs, nil)
			},
			expected: []types.EnrichedInvitation{},
		},
		{
			name: "unauthenticated",
			setupMocks: func(p *MockProviderInterface, s *MockSessionInterface, l *MockLoggerInterface) {
				s.EXPECT().GetSession(gomock.Any(), headers).Return(nil, result.ErrUnauthenticated)
				p.EXPECT().ListUserInvitations(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedErr: result.ErrUnauthenticated,
		},
		{
			name: "organizations not array",
			setupMocks: func(p *MockProviderInterface, s *MockSessionInterface, l *MockLoggerInterface) {
				s.EXPECT().GetSession(gomock.Any(), headers).Return(session, nil)
				p.EXPECT().ListUserInvitations(gomock.Any(), headers, "ada@example.com").Return(invitations, nil)
				p.EXPECT().ListOrganizations(gomock.Any(), headers).Return(nil, orgapi.ErrNotArray)
				l.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			},
			expectedErr: result.ErrOrganizationsNotArray,
		},
		{
			name: "invitation listing fails",
			setupMocks: func(p *MockProviderInterface, s *MockSessionInterface, l *MockLoggerInterface) {
				s.EXPECT().GetSession(gomock.Any(), headers).Return(session, nil)
				p.EXPECT().ListUserInvitations(gomock.Any(), headers, "ada@example.com").Return(nil, errors.New("timeout"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			},
			expectedErr: result.NewError(result.KindUnknown, "timeout"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProvider := NewMockProviderInterface(ctrl)
			mockSessions := NewMockSessionInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockProvider, mockSessions, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "invitation.Service.GetUserInvitations").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockProvider, mockSessions, mockLogger)

			r := s.GetUserInvitations(context.Background(), headers)

			if tc.expectedErr != nil {
				if !errors.Is(r.Err(), tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, r.Err())
				}
				if r.Data() != nil {
					t.Errorf("expected nil data, got %v", r.Data())
				}
				return
			}

			if !r.OK() {
				t.Fatalf("unexpected error: %v", r.Err())
			}

			got := r.Data()
			if got == nil || len(got) != len(tc.expected) {
				t.Fatalf("expected %d invitations, got %v", len(tc.expected), got)
			}

			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("entry %d: expected %+v, got %+v", i, tc.expected[i], got[i])
				}
			}
		})
	}
}

func TestService_InviteMember(t *testing.T) {
	testCases := []struct {
		name         string
		role         string
		expectedRole string
		providerErr  error
		expectedKind result.Kind
	}{
		{name: "default role", expectedRole: types.RoleMember},
		{name: "admin", role: types.RoleAdmin, expectedRole: types.RoleAdmin},
		{name: "already invited", expectedRole: types.RoleMember, providerErr: &orgapi.StatusError{StatusCode: 400, Message: "User is already invited"}, expectedKind: result.KindInvalidArgument},
		{name: "session expired", expectedRole: types.RoleMember, providerErr: &orgapi.StatusError{StatusCode: 401}, expectedKind: result.KindUnauthenticated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProvider := NewMockProviderInterface(ctrl)
			mockSessions := NewMockSessionInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockProvider, mockSessions, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "invitation.Service.InviteMember").Return(context.Background(), trace.SpanFromContext(context.Background()))

			var inv *types.Invitation
			if tc.providerErr == nil {
				inv = &types.Invitation{ID: "inv-1", Role: tc.expectedRole, Status: types.InvitationPending}
			} else {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			}
			mockProvider.EXPECT().CreateInvitation(gomock.Any(), headers, "org-1", "bob@example.com", tc.expectedRole).Return(inv, tc.providerErr)

			r := s.InviteMember(context.Background(), headers, "org-1", "bob@example.com", tc.role)

			if tc.providerErr != nil {
				if r.OK() || r.Kind() != tc.expectedKind {
					t.Errorf("expected %v failure, got %v", tc.expectedKind, r.Err())
				}
				return
			}

			if !r.OK() || r.Data().Role != tc.expectedRole {
				t.Errorf("expected invitation with role %s, got %+v (%v)", tc.expectedRole, r.Data(), r.Err())
			}
		})
	}
}

func TestService_AnswerInvitation(t *testing.T) {
	testCases := []struct {
		name   string
		accept bool
		err    error
	}{
		{name: "accept", accept: true},
		{name: "reject", accept: false},
		{name: "accept missing", accept: true, err: &orgapi.StatusError{StatusCode: 404, Message: "Invitation not found"}},
		{name: "reject failure", accept: false, err: errors.New("boom")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProvider := NewMockProviderInterface(ctrl)
			mockSessions := NewMockSessionInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockProvider, mockSessions, mockTracer, mockMonitor, mockLogger)

			if tc.err != nil {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			}

			var r result.Result[*types.Invitation]
			if tc.accept {
				mockTracer.EXPECT().Start(gomock.Any(), "invitation.Service.AcceptInvitation").Return(context.Background(), trace.SpanFromContext(context.Background()))
				var inv *types.Invitation
				if tc.err == nil {
					inv = &types.Invitation{ID: "inv-1", Status: types.InvitationAccepted}
				}
				mockProvider.EXPECT().AcceptInvitation(gomock.Any(), headers, "inv-1").Return(inv, tc.err)
				r = s.AcceptInvitation(context.Background(), headers, "inv-1")
			} else {
				mockTracer.EXPECT().Start(gomock.Any(), "invitation.Service.RejectInvitation").Return(context.Background(), trace.SpanFromContext(context.Background()))
				var inv *types.Invitation
				if tc.err == nil {
					inv = &types.Invitation{ID: "inv-1", Status: types.InvitationRejected}
				}
				mockProvider.EXPECT().RejectInvitation(gomock.Any(), headers, "inv-1").Return(inv, tc.err)
				r = s.RejectInvitation(context.Background(), headers, "inv-1")
			}

			if tc.err != nil {
				if r.OK() {
					t.Fatal("expected error but got none")
				}
				return
			}

			if !r.OK() || r.Data().ID != "inv-1" {
				t.Errorf("unexpected result %+v (%v)", r.Data(), r.Err())
			}
		})
	}
}
