// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package exam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/storage"
	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/internal/types"
)

// memoryStorage keeps exams in memory with the same ordering and not found rules as the
// postgres storage
type memoryStorage struct {
	mu    sync.Mutex
	seq   int
	exams map[string]*types.Exam
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{exams: make(map[string]*types.Exam)}
}

func (m *memoryStorage) CreateExam(_ context.Context, e *types.Exam) (*types.Exam, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	created := *e
	created.ID = fmt.Sprintf("exam-%d", m.seq)
	created.CreatedAt = time.Unix(int64(m.seq), 0)
	m.exams[created.ID] = &created

	return &created, nil
}

func (m *memoryStorage) list(match func(*types.Exam) bool) []*types.Exam {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*types.Exam, 0)
	for _, e := range m.exams {
		if match(e) {
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Date.Before(out[j].Date)
	})

	return out
}

func (m *memoryStorage) ListExamsByOrganization(_ context.Context, organizationID string) ([]*types.Exam, error) {
	return m.list(func(e *types.Exam) bool { return e.OrganizationID == organizationID }), nil
}

func (m *memoryStorage) ListExamsByTeam(_ context.Context, teamID string) ([]*types.Exam, error) {
	return m.list(func(e *types.Exam) bool { return e.TeamID == teamID }), nil
}

func (m *memoryStorage) DeleteExam(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.exams[id]; !ok {
		return storage.ErrNotFound
	}

	delete(m.exams, id)

	return nil
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func call(t *testing.T, mux http.Handler, method, path, body string) (int, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope %s: %v", rec.Body.String(), err)
	}

	return rec.Code, env
}

func newTestMux() *chi.Mux {
	s := NewService(newMemoryStorage(), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	mux := chi.NewMux()
	NewAPI(s, logging.NewNoopLogger()).RegisterEndpoints(mux)

	return mux
}

func TestAPI_ExamLifecycle(t *testing.T) {
	mux := newTestMux()

	date := time.Now().Add(24 * time.Hour).UnixMilli()
	body := fmt.Sprintf(`{"title":"Math Final Exam","date":%d,"createdBy":"user123","organizationId":"org123"}`, date)

	code, env := call(t, mux, http.MethodPost, "/api/v0/exams", body)
	if code != http.StatusOK || env.Error != "" {
		t.Fatalf("create failed: %d %s", code, env.Error)
	}

	var created types.Exam
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("invalid exam: %v", err)
	}

	_, env = call(t, mux, http.MethodGet, "/api/v0/organizations/org123/exams", "")

	var exams []types.Exam
	if err := json.Unmarshal(env.Data, &exams); err != nil {
		t.Fatalf("invalid exam list: %v", err)
	}

	if len(exams) != 1 || exams[0].Title != "Math Final Exam" {
		t.Fatalf("expected exactly the created exam, got %+v", exams)
	}

	code, env = call(t, mux, http.MethodDelete, "/api/v0/exams/"+created.ID, "")
	if code != http.StatusOK || string(env.Data) != "true" {
		t.Fatalf("delete failed: %d %s %s", code, env.Data, env.Error)
	}

	_, env = call(t, mux, http.MethodGet, "/api/v0/organizations/org123/exams", "")
	if string(env.Data) != "[]" {
		t.Fatalf("expected empty list after delete, got %s", env.Data)
	}

	code, env = call(t, mux, http.MethodDelete, "/api/v0/exams/"+created.ID, "")
	if code != http.StatusNotFound || string(env.Data) != "false" || env.Error == "" {
		t.Errorf("expected {data:false, error} on second delete, got %d %s %q", code, env.Data, env.Error)
	}
}

func TestAPI_ExamsOrderedByDate(t *testing.T) {
	mux := newTestMux()

	now := time.Now()
	for _, e := range []struct {
		title string
		at    time.Time
	}{
		{"Late", now.Add(72 * time.Hour)},
		{"Early", now.Add(24 * time.Hour)},
		{"Middle", now.Add(48 * time.Hour)},
	} {
		body := fmt.Sprintf(`{"title":%q,"date":%q,"createdBy":"user123","organizationId":"org123","teamId":"team-1"}`, e.title, e.at.UTC().Format(time.RFC3339))
		if code, env := call(t, mux, http.MethodPost, "/api/v0/exams", body); code != http.StatusOK {
			t.Fatalf("create %s failed: %s", e.title, env.Error)
		}
	}

	_, env := call(t, mux, http.MethodGet, "/api/v0/teams/team-1/exams", "")

	var exams []types.Exam
	if err := json.Unmarshal(env.Data, &exams); err != nil {
		t.Fatalf("invalid exam list: %v", err)
	}

	got := make([]string, 0, len(exams))
	for _, e := range exams {
		got = append(got, e.Title)
	}

	if strings.Join(got, ",") != "Early,Middle,Late" {
		t.Errorf("expected date ascending order, got %v", got)
	}
}

func TestAPI_CreateExamValidation(t *testing.T) {
	mux := newTestMux()

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing title", `{"date":1,"createdBy":"u","organizationId":"o"}`, "title is required"},
		{"missing date", `{"title":"x","createdBy":"u","organizationId":"o"}`, "date is required"},
		{"missing organization", `{"title":"x","date":1,"createdBy":"u"}`, "organizationId is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := call(t, mux, http.MethodPost, "/api/v0/exams", tt.body)

			if code != http.StatusBadRequest || env.Error != tt.wantErr || string(env.Data) != "null" {
				t.Errorf("expected 400 %q, got %d %q %s", tt.wantErr, code, env.Error, env.Data)
			}
		})
	}
}
