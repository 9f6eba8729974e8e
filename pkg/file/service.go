// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package file

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/storage"
	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

const (
	entity = "File"

	DefaultConcurrency = 5
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage     StorageInterface
	objects     ObjectStoreInterface
	concurrency int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) GenerateUploadURL(ctx context.Context) result.Result[*types.UploadURL] {
	ctx, span := s.tracer.Start(ctx, "file.Service.GenerateUploadURL")
	defer span.End()

	storageID, url, expiresAt, err := s.objects.UploadURL(ctx)
	if err != nil {
		s.logger.Errorf("failed to generate upload url: %v", err)
		return result.Fail[*types.UploadURL](err)
	}

	return result.Ok(&types.UploadURL{UploadURL: url, StorageID: storageID, ExpiresAt: expiresAt})
}

// SaveFile records a blob previously uploaded through an upload url
func (s *Service) SaveFile(ctx context.Context, f *types.File) result.Result[*types.File] {
	ctx, span := s.tracer.Start(ctx, "file.Service.SaveFile")
	defer span.End()

	if f.ContentType == "" {
		f.ContentType = "application/octet-stream"
	}

	created, err := s.storage.CreateFile(ctx, f)
	if err != nil {
		s.logger.Errorf("failed to save file %q: %v", f.Name, err)
		return result.Fail[*types.File](storage.Classify(err, entity))
	}

	return result.Ok(created)
}

func (s *Service) GetFilesByOrganization(ctx context.Context, organizationID string) result.Result[[]*types.File] {
	ctx, span := s.tracer.Start(ctx, "file.Service.GetFilesByOrganization")
	defer span.End()

	files, err := s.storage.ListFilesByOrganization(ctx, organizationID)
	if err != nil {
		s.logger.Errorf("failed to list files of organization %s: %v", organizationID, err)
		return result.Fail[[]*types.File](storage.Classify(err, entity))
	}

	return s.withURLs(ctx, files)
}

func (s *Service) GetFilesByTeam(ctx context.Context, teamID string) result.Result[[]*types.File] {
	ctx, span := s.tracer.Start(ctx, "file.Service.GetFilesByTeam")
	defer span.End()

	files, err := s.storage.ListFilesByTeam(ctx, teamID)
	if err != nil {
		s.logger.Errorf("failed to list files of team %s: %v", teamID, err)
		return result.Fail[[]*types.File](storage.Classify(err, entity))
	}

	return s.withURLs(ctx, files)
}

func (s *Service) GetFileURL(ctx context.Context, storageID string) result.Result[string] {
	ctx, span := s.tracer.Start(ctx, "file.Service.GetFileURL")
	defer span.End()

	url, err := s.objects.DownloadURL(ctx, storageID)
	if err != nil {
		s.logger.Errorf("failed to resolve url of %s: %v", storageID, err)
		return result.Fail[string](err)
	}

	return result.Ok(url)
}

// GetFileURLs resolves download urls in the order the storage ids were given
func (s *Service) GetFileURLs(ctx context.Context, storageIDs []string) result.Result[[]types.FileURL] {
	ctx, span := s.tracer.Start(ctx, "file.Service.GetFileURLs")
	defer span.End()

	urls, err := s.resolve(ctx, storageIDs)
	if err != nil {
		s.logger.Errorf("failed to resolve file urls: %v", err)
		return result.Fail[[]types.FileURL](err)
	}

	out := make([]types.FileURL, len(storageIDs))
	for i, id := range storageIDs {
		out[i] = types.FileURL{StorageID: id, URL: urls[i]}
	}

	return result.Ok(out)
}

func (s *Service) withURLs(ctx context.Context, files []*types.File) result.Result[[]*types.File] {
	ids := make([]string, len(files))
	for i, f := range files {
		ids[i] = f.StorageID
	}

	urls, err := s.resolve(ctx, ids)
	if err != nil {
		s.logger.Errorf("failed to resolve file urls: %v", err)
		return result.Fail[[]*types.File](err)
	}

	out := make([]*types.File, 0, len(files))
	for i, f := range files {
		f.URL = urls[i]
		out = append(out, f)
	}

	return result.Ok(out)
}

// resolve presigns every id with at most s.concurrency requests in flight
func (s *Service) resolve(ctx context.Context, storageIDs []string) ([]string, error) {
	urls := make([]string, len(storageIDs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, id := range storageIDs {
		g.Go(func() error {
			url, err := s.objects.DownloadURL(gCtx, id)
			if err != nil {
				return err
			}

			urls[i] = url

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return urls, nil
}

func NewService(storage StorageInterface, objects ObjectStoreInterface, concurrency int, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.objects = objects

	s.concurrency = concurrency
	if s.concurrency <= 0 {
		s.concurrency = DefaultConcurrency
	}

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
