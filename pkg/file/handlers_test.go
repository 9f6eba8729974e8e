// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package file

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

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
			name:   "upload url",
			method: http.MethodPost,
			path:   "/api/v0/files/upload-url",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GenerateUploadURL(gomock.Any()).
					Return(result.Ok(&types.UploadURL{UploadURL: "https://s3/put", StorageID: "sid-1"}))
			},
			wantStatus: http.StatusOK,
			wantBody:   `"storageId":"sid-1"`,
		},
		{
			name:   "save",
			method: http.MethodPost,
			path:   "/api/v0/files",
			body:   `{"name":"notes.pdf","storageId":"sid-1","contentType":"application/pdf","size":42,"uploadedBy":"u1","organizationId":"org-1"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SaveFile(gomock.Any(), &types.File{Name: "notes.pdf", StorageID: "sid-1", ContentType: "application/pdf", Size: 42, UploadedBy: "u1", OrganizationID: "org-1"}).
					Return(result.Ok(&types.File{ID: "f1", Name: "notes.pdf"}))
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"f1"`,
		},
		{
			name:       "save without storage id",
			method:     http.MethodPost,
			path:       "/api/v0/files",
			body:       `{"name":"notes.pdf","uploadedBy":"u1","organizationId":"org-1"}`,
			setupMocks: func(s *MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"data":null,"error":"storageId is required"}`,
		},
		{
			name:   "team files",
			method: http.MethodGet,
			path:   "/api/v0/teams/team-1/files",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetFilesByTeam(gomock.Any(), "team-1").Return(result.Ok([]*types.File{}))
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":[]}`,
		},
		{
			name:   "organization files",
			method: http.MethodGet,
			path:   "/api/v0/organizations/org-1/files",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetFilesByOrganization(gomock.Any(), "org-1").Return(result.Fail[[]*types.File](errors.New("db down")))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"data":null,"error":"db down"}`,
		},
		{
			name:   "single url",
			method: http.MethodGet,
			path:   "/api/v0/files/sid-1/url",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetFileURL(gomock.Any(), "sid-1").Return(result.Ok("https://s3/get/sid-1"))
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":"https://s3/get/sid-1"}`,
		},
		{
			name:   "batch urls",
			method: http.MethodPost,
			path:   "/api/v0/files/urls",
			body:   `{"storageIds":["a","b"]}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetFileURLs(gomock.Any(), []string{"a", "b"}).
					Return(result.Ok([]types.FileURL{{StorageID: "a", URL: "ua"}, {StorageID: "b", URL: "ub"}}))
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":[{"storageId":"a","url":"ua"},{"storageId":"b","url":"ub"}]}`,
		},
		{
			name:       "batch urls without ids",
			method:     http.MethodPost,
			path:       "/api/v0/files/urls",
			body:       `{}`,
			setupMocks: func(s *MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error":"storageIds is required"`,
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
