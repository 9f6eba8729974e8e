// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgapi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/canonical/lab-service/pkg/result"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind result.Kind
		wantMsg  string
	}{
		{"not array", fmt.Errorf("list: %w", ErrNotArray), result.KindMalformedResponse, "Provider response not array"},
		{"unauthorized", &StatusError{StatusCode: 401, Message: "no session"}, result.KindUnauthenticated, "User not authenticated"},
		{"not found", &StatusError{StatusCode: 404, Message: "Invitation not found"}, result.KindNotFound, "Invitation not found"},
		{"bad request", &StatusError{StatusCode: 400, Message: "slug taken"}, result.KindInvalidArgument, "slug taken"},
		{"server error", &StatusError{StatusCode: 503}, result.KindUnknown, "provider returned status 503"},
		{"transport", errors.New("connection refused"), result.KindUnknown, "connection refused"},
		{"already classified", result.ErrTeamNotFound, result.KindNotFound, "Team not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify(tt.err)

			if k := result.KindOf(err); k != tt.wantKind {
				t.Errorf("expected kind %v, got %v", tt.wantKind, k)
			}

			if m := result.MessageOf(err); m != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, m)
			}
		})
	}

	if Classify(nil) != nil {
		t.Error("expected nil for nil error")
	}
}
