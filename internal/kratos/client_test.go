// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

const activeSession = `{
  "id": "session-1",
  "active": true,
  "expires_at": "2030-01-01T00:00:00Z",
  "identity": {
    "id": "user-1",
    "schema_id": "default",
    "schema_url": "http://kratos/schemas/default",
    "traits": {"email": "ada@example.com", "name": {"first": "Ada", "last": "Lovelace"}}
  }
}`

func TestClient_GetSession(t *testing.T) {
	tests := []struct {
		name        string
		headers     types.Headers
		status      int
		body        string
		wantSession *types.Session
		wantErr     error
		wantCalled  bool
	}{
		{
			name:       "cookie session",
			headers:    types.Headers{Cookie: "ory_kratos_session=abc"},
			status:     http.StatusOK,
			body:       activeSession,
			wantCalled: true,
			wantSession: &types.Session{
				ID:        "session-1",
				UserID:    "user-1",
				Email:     "ada@example.com",
				Name:      "Ada Lovelace",
				ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:       "token rejected",
			headers:    types.Headers{SessionToken: "bad"},
			status:     http.StatusUnauthorized,
			body:       `{"error":{"code":401,"message":"no valid session"}}`,
			wantCalled: true,
			wantErr:    result.ErrUnauthenticated,
		},
		{
			name:       "inactive session",
			headers:    types.Headers{SessionToken: "tok"},
			status:     http.StatusOK,
			body:       `{"id":"session-2","active":false}`,
			wantCalled: true,
			wantErr:    result.ErrUnauthenticated,
		},
		{
			name:    "no credentials",
			headers: types.Headers{},
			wantErr: result.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true

				if r.URL.Path != "/sessions/whoami" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}

				if tt.headers.Cookie != "" && r.Header.Get("Cookie") != tt.headers.Cookie {
					t.Errorf("expected cookie %q, got %q", tt.headers.Cookie, r.Header.Get("Cookie"))
				}

				if tt.headers.SessionToken != "" && r.Header.Get("X-Session-Token") != tt.headers.SessionToken {
					t.Errorf("expected session token %q, got %q", tt.headers.SessionToken, r.Header.Get("X-Session-Token"))
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			session, err := c.GetSession(context.Background(), tt.headers)

			if called != tt.wantCalled {
				t.Errorf("expected provider called=%v, got %v", tt.wantCalled, called)
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if *session != *tt.wantSession {
				t.Errorf("expected %+v, got %+v", tt.wantSession, session)
			}
		})
	}
}
