// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

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
			name:   "invite",
			method: http.MethodPost,
			path:   "/api/v0/invitations",
			body:   `{"organizationId":"org-1","email":"bob@example.com","role":"admin"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().InviteMember(gomock.Any(), headers, "org-1", "bob@example.com", "admin").
					Return(result.Ok(&types.Invitation{ID: "inv-1"}))
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"inv-1"`,
		},
		{
			name:       "invite as owner refused",
			method:     http.MethodPost,
			path:       "/api/v0/invitations",
			body:       `{"organizationId":"org-1","email":"bob@example.com","role":"owner"}`,
			setupMocks: func(s *MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error":"role must be one of [member admin]"`,
		},
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/api/v0/invitations",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetUserInvitations(gomock.Any(), headers).Return(result.Ok([]types.EnrichedInvitation{
					{Invitation: types.Invitation{ID: "inv-1"}, OrganizationName: types.UnknownOrganizationName},
				}))
			},
			wantStatus: http.StatusOK,
			wantBody:   `"organizationName":"Unknown Organization"`,
		},
		{
			name:   "accept",
			method: http.MethodPost,
			path:   "/api/v0/invitations/inv-1/accept",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().AcceptInvitation(gomock.Any(), headers, "inv-1").
					Return(result.Ok(&types.Invitation{ID: "inv-1", Status: types.InvitationAccepted}))
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"accepted"`,
		},
		{
			name:   "reject missing",
			method: http.MethodPost,
			path:   "/api/v0/invitations/inv-9/reject",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().RejectInvitation(gomock.Any(), headers, "inv-9").
					Return(result.Fail[*types.Invitation](result.NewError(result.KindNotFound, "Invitation not found")))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"data":null,"error":"Invitation not found"}`,
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
