// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lab-service/internal/identity"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setupMocks func(*MockServiceInterface)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "split",
			method: http.MethodGet,
			path:   "/api/v0/organizations/org-1/teams",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetTeamsWithMembership(gomock.Any(), headers, "org-1").
					Return(result.Ok(&types.TeamSplit{Joined: []types.Team{}, Available: []types.Team{}}))
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"joined":[],"available":[]}}`,
		},
		{
			name:   "join wrong password",
			method: http.MethodPost,
			path:   "/api/v0/teams/t1/join",
			body:   `{"organizationId":"org-1","password":"nope"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().JoinTeamWithPassword(gomock.Any(), headers, "t1", "nope", "org-1").
					Return(result.Fail[*types.TeamMember](result.ErrInvalidPassword))
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"data":null,"error":"Invalid password"}`,
		},
		{
			name:   "join unauthenticated",
			method: http.MethodPost,
			path:   "/api/v0/teams/t1/join",
			body:   `{"organizationId":"org-1","password":"secret"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().JoinTeamWithPassword(gomock.Any(), headers, "t1", "secret", "org-1").
					Return(result.Fail[*types.TeamMember](result.ErrUnauthenticated))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"data":null,"error":"User not authenticated"}`,
		},
		{
			name:       "join without password",
			method:     http.MethodPost,
			path:       "/api/v0/teams/t1/join",
			body:       `{"organizationId":"org-1"}`,
			setupMocks: func(s *MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error":"password is required"`,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/api/v0/teams",
			body:   `{"organizationId":"org-1","name":"Red","password":"secret"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateTeam(gomock.Any(), headers, "org-1", "Red", "secret").
					Return(result.Ok(&types.Team{ID: "t1", Name: "Red", OrganizationID: "org-1"}))
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"t1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockSvc)

			mux := chi.NewMux()
			NewAPI(mockSvc, NewMockLoggerInterface(ctrl)).RegisterEndpoints(mux)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req = req.WithContext(identity.WithHeaders(req.Context(), headers))
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("expected body to contain %s, got %s", tt.wantBody, rec.Body.String())
			}
		})
	}
}
