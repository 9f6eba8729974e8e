// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lab-service/internal/identity"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_session.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_GetSession(t *testing.T) {
	headers := types.Headers{Cookie: "ory_kratos_session=abc"}
	session := &types.Session{ID: "s1", UserID: "user-1", Email: "ada@example.com"}

	testCases := []struct {
		name        string
		kratosErr   error
		expectedErr error
		logged      bool
	}{
		{name: "active"},
		{name: "no session", kratosErr: result.ErrUnauthenticated, expectedErr: result.ErrUnauthenticated},
		{name: "kratos down", kratosErr: errors.New("connection refused"), expectedErr: result.NewError(result.KindUnknown, "connection refused"), logged: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockKratos := NewMockKratosClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockKratos, mockTracer, monitoring.NewNoopMonitor("test"), mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "session.Service.GetSession").Return(context.Background(), trace.SpanFromContext(context.Background()))
			if tc.kratosErr != nil {
				mockKratos.EXPECT().GetSession(gomock.Any(), headers).Return(nil, tc.kratosErr)
			} else {
				mockKratos.EXPECT().GetSession(gomock.Any(), headers).Return(session, nil)
			}
			if tc.logged {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			}

			r := s.GetSession(context.Background(), headers)

			if tc.expectedErr != nil {
				if !errors.Is(r.Err(), tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, r.Err())
				}
				return
			}

			if r.Data() != session {
				t.Errorf("expected %+v, got %+v", session, r.Data())
			}
		})
	}
}

func TestAPI_GetSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	headers := types.Headers{SessionToken: "tok"}

	mockSvc := NewMockServiceInterface(ctrl)
	mockSvc.EXPECT().GetSession(gomock.Any(), headers).Return(result.Fail[*types.Session](result.ErrUnauthenticated))

	mux := chi.NewMux()
	NewAPI(mockSvc).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/session", nil)
	req = req.WithContext(identity.WithHeaders(req.Context(), headers))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}

	if body := strings.TrimSpace(rec.Body.String()); body != `{"data":null,"error":"User not authenticated"}` {
		t.Errorf("unexpected body %s", body)
	}
}
