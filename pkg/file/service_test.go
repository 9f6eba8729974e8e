// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package file

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lab-service/internal/storage"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

//go:generate mockgen -build_flags=--mod=mod -package file -destination ./mock_file.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package file -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package file -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package file -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type mocks struct {
	storage *MockStorageInterface
	objects *MockObjectStoreInterface
	tracer  *MockTracingInterface
	logger  *MockLoggerInterface
	monitor *MockMonitorInterface
}

func newMocks(ctrl *gomock.Controller) *mocks {
	return &mocks{
		storage: NewMockStorageInterface(ctrl),
		objects: NewMockObjectStoreInterface(ctrl),
		tracer:  NewMockTracingInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
		monitor: NewMockMonitorInterface(ctrl),
	}
}

func (m *mocks) service(concurrency int) *Service {
	return NewService(m.storage, m.objects, concurrency, m.tracer, m.monitor, m.logger)
}

func (m *mocks) expectSpan(name string) {
	m.tracer.EXPECT().Start(gomock.Any(), name).Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func TestService_GenerateUploadURL(t *testing.T) {
	expiresAt := time.Now().Add(15 * time.Minute)

	testCases := []struct {
		name       string
		presignErr error
	}{
		{name: "presigned"},
		{name: "presign error", presignErr: errors.New("no credentials")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.expectSpan("file.Service.GenerateUploadURL")

			if tc.presignErr != nil {
				m.objects.EXPECT().UploadURL(gomock.Any()).Return("", "", time.Time{}, tc.presignErr)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			} else {
				m.objects.EXPECT().UploadURL(gomock.Any()).Return("sid-1", "https://s3/put/sid-1", expiresAt, nil)
			}

			r := m.service(0).GenerateUploadURL(context.Background())

			if tc.presignErr != nil {
				if r.OK() || r.Data() != nil || r.Message() != "no credentials" {
					t.Errorf("expected failure, got %+v %q", r.Data(), r.Message())
				}
				return
			}

			if r.Data().StorageID != "sid-1" || r.Data().UploadURL != "https://s3/put/sid-1" || !r.Data().ExpiresAt.Equal(expiresAt) {
				t.Errorf("unexpected upload url %+v", r.Data())
			}
		})
	}
}

func TestService_SaveFile(t *testing.T) {
	testCases := []struct {
		name        string
		storageErr  error
		expectedMsg string
	}{
		{name: "saved"},
		{name: "storage id reused", storageErr: storage.ErrDuplicateKey, expectedMsg: "File already exists"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.expectSpan("file.Service.SaveFile")

			f := &types.File{Name: "notes.pdf", StorageID: "sid-1", UploadedBy: "user-1", OrganizationID: "org-1"}

			m.storage.EXPECT().CreateFile(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, in *types.File) (*types.File, error) {
					if in.ContentType != "application/octet-stream" {
						t.Errorf("expected default content type, got %q", in.ContentType)
					}
					if tc.storageErr != nil {
						return nil, tc.storageErr
					}
					out := *in
					out.ID = "f1"
					return &out, nil
				},
			)
			if tc.storageErr != nil {
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			}

			r := m.service(0).SaveFile(context.Background(), f)

			if tc.storageErr != nil {
				if r.Kind() != result.KindInvalidArgument || r.Message() != tc.expectedMsg {
					t.Errorf("expected %q, got %v %q", tc.expectedMsg, r.Kind(), r.Message())
				}
				return
			}

			if r.Data().ID != "f1" {
				t.Errorf("unexpected file %+v", r.Data())
			}
		})
	}
}

func TestService_GetFilesByOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.expectSpan("file.Service.GetFilesByOrganization")

	m.storage.EXPECT().ListFilesByOrganization(gomock.Any(), "org-1").Return([]*types.File{
		{ID: "f1", StorageID: "sid-1"},
		{ID: "f2", StorageID: "sid-2"},
	}, nil)
	m.objects.EXPECT().DownloadURL(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (string, error) {
			return "https://s3/get/" + id, nil
		},
	).Times(2)

	r := m.service(0).GetFilesByOrganization(context.Background(), "org-1")

	if !r.OK() || len(r.Data()) != 2 {
		t.Fatalf("unexpected result %v (%v)", r.Data(), r.Err())
	}

	for _, f := range r.Data() {
		if f.URL != "https://s3/get/"+f.StorageID {
			t.Errorf("expected url of %s, got %s", f.StorageID, f.URL)
		}
	}
}

func TestService_GetFilesByTeam(t *testing.T) {
	testCases := []struct {
		name       string
		files      []*types.File
		storageErr error
		presignErr error
	}{
		{name: "no files", files: nil},
		{name: "storage error", storageErr: errors.New("db down")},
		{name: "presign error", files: []*types.File{{ID: "f1", StorageID: "sid-1"}}, presignErr: errors.New("bad bucket")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.expectSpan("file.Service.GetFilesByTeam")

			m.storage.EXPECT().ListFilesByTeam(gomock.Any(), "team-1").Return(tc.files, tc.storageErr)
			if tc.presignErr != nil {
				m.objects.EXPECT().DownloadURL(gomock.Any(), "sid-1").Return("", tc.presignErr)
			}
			if tc.storageErr != nil || tc.presignErr != nil {
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			}

			r := m.service(0).GetFilesByTeam(context.Background(), "team-1")

			if tc.storageErr != nil || tc.presignErr != nil {
				if r.OK() || r.Data() != nil {
					t.Errorf("expected failure with nil data, got %v", r.Data())
				}
				return
			}

			if r.Data() == nil || len(r.Data()) != 0 {
				t.Errorf("expected empty list, got %v", r.Data())
			}
		})
	}
}

func TestService_GetFileURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.expectSpan("file.Service.GetFileURL")
	m.objects.EXPECT().DownloadURL(gomock.Any(), "sid-1").Return("https://s3/get/sid-1", nil)

	r := m.service(0).GetFileURL(context.Background(), "sid-1")

	if r.Data() != "https://s3/get/sid-1" {
		t.Errorf("unexpected url %q", r.Data())
	}
}

func TestService_GetFileURLsKeepsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ids := make([]string, 12)
	for i := range ids {
		ids[i] = fmt.Sprintf("sid-%02d", i)
	}

	m := newMocks(ctrl)
	m.expectSpan("file.Service.GetFileURLs")
	m.objects.EXPECT().DownloadURL(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (string, error) {
			var n int
			if _, err := fmt.Sscanf(id, "sid-%d", &n); err != nil {
				return "", err
			}
			// later ids finish first
			time.Sleep(time.Duration(len(ids)-n) * time.Millisecond)
			return "url-" + id, nil
		},
	).Times(len(ids))

	r := m.service(4).GetFileURLs(context.Background(), ids)

	if !r.OK() || len(r.Data()) != len(ids) {
		t.Fatalf("unexpected result %v (%v)", r.Data(), r.Err())
	}

	for i, u := range r.Data() {
		if u.StorageID != ids[i] || u.URL != "url-"+ids[i] {
			t.Errorf("position %d: expected %s, got %+v", i, ids[i], u)
		}
	}
}

func TestService_GetFileURLsConcurrencyCap(t *testing.T) {
	const limit = 3

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var inFlight, peak atomic.Int32

	m := newMocks(ctrl)
	m.expectSpan("file.Service.GetFileURLs")
	m.objects.EXPECT().DownloadURL(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (string, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return "url-" + id, nil
		},
	).Times(10)

	ids := make([]string, 10)
	for i := range ids {
		ids[i] = fmt.Sprintf("sid-%d", i)
	}

	r := m.service(limit).GetFileURLs(context.Background(), ids)

	if !r.OK() {
		t.Fatalf("unexpected error %v", r.Err())
	}

	if peak.Load() > limit {
		t.Errorf("expected at most %d concurrent presign calls, got %d", limit, peak.Load())
	}
}
