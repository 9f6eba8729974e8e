// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHeadersFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected Headers
	}{
		{
			name:     "cookie only",
			headers:  map[string]string{"Cookie": "ory_session=abc"},
			expected: Headers{Cookie: "ory_session=abc"},
		},
		{
			name:     "bearer token doubles as session token",
			headers:  map[string]string{"Authorization": "Bearer tok"},
			expected: Headers{Authorization: "Bearer tok", SessionToken: "tok"},
		},
		{
			name:     "explicit session token wins",
			headers:  map[string]string{"Authorization": "Bearer tok", "X-Session-Token": "other"},
			expected: Headers{Authorization: "Bearer tok", SessionToken: "other"},
		},
		{
			name:     "no session headers",
			headers:  map[string]string{},
			expected: Headers{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			h := HeadersFromRequest(req)
			if h != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, h)
			}

			if h.Empty() != (len(tt.headers) == 0) {
				t.Errorf("unexpected Empty() result for %+v", h)
			}
		})
	}
}

func TestHeadersApply(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Headers{Cookie: "c=1", SessionToken: "tok"}.Apply(req)

	if req.Header.Get("Cookie") != "c=1" {
		t.Errorf("cookie not forwarded")
	}

	if req.Header.Get("X-Session-Token") != "tok" {
		t.Errorf("session token not forwarded")
	}

	if req.Header.Get("Authorization") != "" {
		t.Errorf("authorization must stay empty")
	}
}

func TestTeamPublic(t *testing.T) {
	team := Team{ID: "t1", Password: "$2a$10$hash"}

	if team.Public().Password != "" {
		t.Error("password hash leaked")
	}

	if team.Password == "" {
		t.Error("Public must not mutate the receiver")
	}
}
