// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_team.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var headers = types.Headers{SessionToken: "tok"}

type mocks struct {
	provider  *MockProviderInterface
	sessions  *MockSessionInterface
	passwords *MockPasswordVerifierInterface
	tracer    *MockTracingInterface
	logger    *MockLoggerInterface
	security  *MockSecurityLoggerInterface
	monitor   *MockMonitorInterface
}

func newMocks(ctrl *gomock.Controller) *mocks {
	return &mocks{
		provider:  NewMockProviderInterface(ctrl),
		sessions:  NewMockSessionInterface(ctrl),
		passwords: NewMockPasswordVerifierInterface(ctrl),
		tracer:    NewMockTracingInterface(ctrl),
		logger:    NewMockLoggerInterface(ctrl),
		security:  NewMockSecurityLoggerInterface(ctrl),
		monitor:   NewMockMonitorInterface(ctrl),
	}
}

func (m *mocks) service() *Service {
	return NewService(m.provider, m.sessions, m.passwords, m.tracer, m.monitor, m.logger)
}

func TestService_GetTeamsWithMembership(t *testing.T) {
	orgTeams := []types.Team{
		{ID: "t1", Name: "Red", Password: "hash-1"},
		{ID: "t2", Name: "Green"},
		{ID: "t3", Name: "Blue"},
		{ID: "t4", Name: "Yellow"},
	}

	testCases := []struct {
		name              string
		userTeams         []types.Team
		expectedJoined    []string
		expectedAvailable []string
	}{
		{
			name:              "some joined",
			userTeams:         []types.Team{{ID: "t3"}, {ID: "t1"}, {ID: "other-org-team"}},
			expectedJoined:    []string{"t1", "t3"},
			expectedAvailable: []string{"t2", "t4"},
		},
		{
			name:              "none joined",
			userTeams:         []types.Team{},
			expectedJoined:    []string{},
			expectedAvailable: []string{"t1", "t2", "t3", "t4"},
		},
		{
			name:              "all joined",
			userTeams:         orgTeams,
			expectedJoined:    []string{"t1", "t2", "t3", "t4"},
			expectedAvailable: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.tracer.EXPECT().Start(gomock.Any(), "team.Service.GetTeamsWithMembership").Return(context.Background(), trace.SpanFromContext(context.Background()))
			m.provider.EXPECT().ListOrganizationTeams(gomock.Any(), headers, "org-1").Return(orgTeams, nil)
			m.provider.EXPECT().ListUserTeams(gomock.Any(), headers).Return(tc.userTeams, nil)

			r := m.service().GetTeamsWithMembership(context.Background(), headers, "org-1")
			if !r.OK() {
				t.Fatalf("unexpected error: %v", r.Err())
			}

			got := r.Data()
			assertIDs(t, "joined", got.Joined, tc.expectedJoined)
			assertIDs(t, "available", got.Available, tc.expectedAvailable)

			if len(got.Joined)+len(got.Available) != len(orgTeams) {
				t.Errorf("joined and available must cover all %d teams", len(orgTeams))
			}

			for _, team := range append(got.Joined, got.Available...) {
				if team.Password != "" {
					t.Errorf("password hash of %s leaked", team.ID)
				}
			}
		})
	}
}

func assertIDs(t *testing.T, label string, teams []types.Team, want []string) {
	t.Helper()

	if teams == nil {
		t.Fatalf("%s must not be nil", label)
	}

	if len(teams) != len(want) {
		t.Fatalf("%s: expected %v, got %v", label, want, teams)
	}

	for i := range want {
		if teams[i].ID != want[i] {
			t.Errorf("%s[%d]: expected %s, got %s", label, i, want[i], teams[i].ID)
		}
	}
}

func TestService_GetTeamsWithMembership_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.tracer.EXPECT().Start(gomock.Any(), "team.Service.GetTeamsWithMembership").Return(context.Background(), trace.SpanFromContext(context.Background()))
	m.provider.EXPECT().ListOrganizationTeams(gomock.Any(), headers, "org-1").Return([]types.Team{}, nil)
	m.provider.EXPECT().ListUserTeams(gomock.Any(), headers).Return(nil, errors.New("provider down"))
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)

	r := m.service().GetTeamsWithMembership(context.Background(), headers, "org-1")

	if r.OK() || r.Data() != nil || r.Message() != "provider down" {
		t.Errorf("expected provider failure, got data=%v err=%v", r.Data(), r.Err())
	}
}

func TestService_JoinTeamWithPassword(t *testing.T) {
	teams := []types.Team{
		{ID: "t1", Name: "Red", OrganizationID: "org-1", Password: "stored-hash"},
		{ID: "t2", Name: "Open", OrganizationID: "org-1"},
	}
	session := &types.Session{ID: "s1", UserID: "user-1"}
	member := &types.TeamMember{ID: "tm1", TeamID: "t1", UserID: "user-1"}

	testCases := []struct {
		name        string
		teamID      string
		password    string
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name:     "joined",
			teamID:   "t1",
			password: "secret",
			setupMocks: func(m *mocks) {
				m.provider.EXPECT().ListOrganizationTeams(gomock.Any(), headers, "org-1").Return(teams, nil)
				m.passwords.EXPECT().Verify("stored-hash", "secret").Return(true)
				m.sessions.EXPECT().GetSession(gomock.Any(), headers).Return(session, nil)
				m.provider.EXPECT().AddTeamMember(gomock.Any(), headers, "t1", "user-1").Return(member, nil)
			},
		},
		{
			name:     "team not found never verifies",
			teamID:   "t9",
			password: "secret",
			setupMocks: func(m *mocks) {
				m.provider.EXPECT().ListOrganizationTeams(gomock.Any(), headers, "org-1").Return(teams, nil)
				m.passwords.EXPECT().Verify(gomock.Any(), gomock.Any()).Times(0)
				m.sessions.EXPECT().GetSession(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedErr: result.ErrTeamNotFound,
		},
		{
			name:     "wrong password",
			teamID:   "t1",
			password: "nope",
			setupMocks: func(m *mocks) {
				m.provider.EXPECT().ListOrganizationTeams(gomock.Any(), headers, "org-1").Return(teams, nil)
				m.passwords.EXPECT().Verify("stored-hash", "nope").Return(false)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure("", "team:t1")
				m.sessions.EXPECT().GetSession(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedErr: result.ErrInvalidPassword,
		},
		{
			name:     "team without password",
			teamID:   "t2",
			password: "anything",
			setupMocks: func(m *mocks) {
				m.provider.EXPECT().ListOrganizationTeams(gomock.Any(), headers, "org-1").Return(teams, nil)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure("", "team:t2")
			},
			expectedErr: result.ErrInvalidPassword,
		},
		{
			name:     "no session",
			teamID:   "t1",
			password: "secret",
			setupMocks: func(m *mocks) {
				m.provider.EXPECT().ListOrganizationTeams(gomock.Any(), headers, "org-1").Return(teams, nil)
				m.passwords.EXPECT().Verify("stored-hash", "secret").Return(true)
				m.sessions.EXPECT().GetSession(gomock.Any(), headers).Return(nil, fmt.Errorf("whoami: %w", result.ErrUnauthenticated))
				m.provider.EXPECT().AddTeamMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedErr: result.ErrUnauthenticated,
		},
		{
			name:     "add member fails",
			teamID:   "t1",
			password: "secret",
			setupMocks: func(m *mocks) {
				m.provider.EXPECT().ListOrganizationTeams(gomock.Any(), headers, "org-1").Return(teams, nil)
				m.passwords.EXPECT().Verify("stored-hash", "secret").Return(true)
				m.sessions.EXPECT().GetSession(gomock.Any(), headers).Return(session, nil)
				m.provider.EXPECT().AddTeamMember(gomock.Any(), headers, "t1", "user-1").Return(nil, errors.New("already a member"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			},
			expectedErr: result.NewError(result.KindUnknown, "already a member"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.tracer.EXPECT().Start(gomock.Any(), "team.Service.JoinTeamWithPassword").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(m)

			r := m.service().JoinTeamWithPassword(context.Background(), headers, tc.teamID, tc.password, "org-1")

			if tc.expectedErr != nil {
				if !errors.Is(r.Err(), tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, r.Err())
				}
				if r.Data() != nil {
					t.Errorf("expected nil data, got %+v", r.Data())
				}
				return
			}

			if !r.OK() {
				t.Fatalf("unexpected error: %v", r.Err())
			}

			if *r.Data() != *member {
				t.Errorf("expected %+v, got %+v", member, r.Data())
			}
		})
	}
}

func TestService_JoinTeamWithPassword_Bcrypt(t *testing.T) {
	verifier := NewBcryptVerifier(bcrypt.MinCost)

	hash, err := verifier.Hash("correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	teams := []types.Team{{ID: "t1", Password: hash}}

	for _, tc := range []struct {
		password string
		joined   bool
	}{
		{"correct horse", true},
		{"battery staple", false},
	} {
		t.Run(tc.password, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.tracer.EXPECT().Start(gomock.Any(), "team.Service.JoinTeamWithPassword").Return(context.Background(), trace.SpanFromContext(context.Background()))
			m.provider.EXPECT().ListOrganizationTeams(gomock.Any(), headers, "org-1").Return(teams, nil)

			if tc.joined {
				m.sessions.EXPECT().GetSession(gomock.Any(), headers).Return(&types.Session{UserID: "user-1"}, nil)
				m.provider.EXPECT().AddTeamMember(gomock.Any(), headers, "t1", "user-1").Return(&types.TeamMember{TeamID: "t1", UserID: "user-1"}, nil)
			} else {
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure(gomock.Any(), gomock.Any())
			}

			s := NewService(m.provider, m.sessions, verifier, m.tracer, m.monitor, m.logger)
			r := s.JoinTeamWithPassword(context.Background(), headers, "t1", tc.password, "org-1")

			if r.OK() != tc.joined {
				t.Errorf("expected joined=%v, got %v", tc.joined, r.Err())
			}
		})
	}
}

func TestService_CreateTeam(t *testing.T) {
	testCases := []struct {
		name       string
		password   string
		setupMocks func(*mocks)
		wantErr    bool
	}{
		{
			name:     "with password",
			password: "secret",
			setupMocks: func(m *mocks) {
				m.passwords.EXPECT().Hash("secret").Return("hashed", nil)
				m.provider.EXPECT().CreateTeam(gomock.Any(), headers, "org-1", "Red", "hashed").
					Return(&types.Team{ID: "t1", Name: "Red", Password: "hashed"}, nil)
			},
		},
		{
			name: "without password",
			setupMocks: func(m *mocks) {
				m.passwords.EXPECT().Hash(gomock.Any()).Times(0)
				m.provider.EXPECT().CreateTeam(gomock.Any(), headers, "org-1", "Red", "").
					Return(&types.Team{ID: "t1", Name: "Red"}, nil)
			},
		},
		{
			name:     "provider error",
			password: "secret",
			setupMocks: func(m *mocks) {
				m.passwords.EXPECT().Hash("secret").Return("hashed", nil)
				m.provider.EXPECT().CreateTeam(gomock.Any(), headers, "org-1", "Red", "hashed").Return(nil, errors.New("boom"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.tracer.EXPECT().Start(gomock.Any(), "team.Service.CreateTeam").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(m)

			r := m.service().CreateTeam(context.Background(), headers, "org-1", "Red", tc.password)

			if tc.wantErr {
				if r.OK() {
					t.Fatal("expected error but got none")
				}
				return
			}

			if !r.OK() {
				t.Fatalf("unexpected error: %v", r.Err())
			}

			if r.Data().Password != "" {
				t.Error("password hash must not be returned")
			}
		})
	}
}
