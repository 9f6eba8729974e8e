// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/internal/types"
)

func TestMiddleware_HTTPMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    types.Headers
	}{
		{
			name:    "cookie",
			headers: map[string]string{"Cookie": "ory_session=abc"},
			want:    types.Headers{Cookie: "ory_session=abc"},
		},
		{
			name:    "bearer token",
			headers: map[string]string{"Authorization": "Bearer tok"},
			want:    types.Headers{Authorization: "Bearer tok", SessionToken: "tok"},
		},
		{
			name: "anonymous",
			want: types.Headers{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			var got types.Headers
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = HeadersFromContext(r.Context())
			})

			r := httptest.NewRequest(http.MethodGet, "/api/v0/session", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			m.HTTPMiddleware(next).ServeHTTP(httptest.NewRecorder(), r)

			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestHeadersFromContext_Empty(t *testing.T) {
	if h := HeadersFromContext(context.Background()); !h.Empty() {
		t.Errorf("expected empty headers, got %+v", h)
	}
}
