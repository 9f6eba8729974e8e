// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/tracing"
)

type Config struct {
	Endpoint       string
	AccessKey      string
	SecretKey      string
	Bucket         string
	UseSSL         bool
	UploadURLTTL   time.Duration
	DownloadURLTTL time.Duration
}

// Store hands out presigned URLs, blobs never pass through the service
type Store struct {
	client         PresignerInterface
	bucket         string
	uploadURLTTL   time.Duration
	downloadURLTTL time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// UploadURL generates a fresh storage id and a presigned PUT url for it
func (s *Store) UploadURL(ctx context.Context) (string, string, time.Time, error) {
	ctx, span := s.tracer.Start(ctx, "objectstore.Store.UploadURL")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to generate storage id: %w", err)
	}

	expiresAt := time.Now().Add(s.uploadURLTTL)

	u, err := s.client.PresignedPutObject(ctx, s.bucket, id.String(), s.uploadURLTTL)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to presign upload: %w", err)
	}

	return id.String(), u.String(), expiresAt, nil
}

// DownloadURL returns a presigned GET url for an existing storage id
func (s *Store) DownloadURL(ctx context.Context, storageID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "objectstore.Store.DownloadURL")
	defer span.End()

	u, err := s.client.PresignedGetObject(ctx, s.bucket, storageID, s.downloadURLTTL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign download of %s: %w", storageID, err)
	}

	return u.String(), nil
}

func NewStore(client PresignerInterface, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Store {
	s := new(Store)

	s.client = client
	s.bucket = cfg.Bucket
	s.uploadURLTTL = cfg.UploadURLTTL
	s.downloadURLTTL = cfg.DownloadURLTTL

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// NewMinioClient builds the S3 client. Presigning is local, the endpoint is not contacted
func NewMinioClient(cfg Config) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: "us-east-1",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	return client, nil
}
