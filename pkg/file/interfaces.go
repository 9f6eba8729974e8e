// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package file

import (
	"context"
	"time"

	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

type ServiceInterface interface {
	GenerateUploadURL(ctx context.Context) result.Result[*types.UploadURL]
	SaveFile(ctx context.Context, f *types.File) result.Result[*types.File]
	GetFilesByOrganization(ctx context.Context, organizationID string) result.Result[[]*types.File]
	GetFilesByTeam(ctx context.Context, teamID string) result.Result[[]*types.File]
	GetFileURL(ctx context.Context, storageID string) result.Result[string]
	GetFileURLs(ctx context.Context, storageIDs []string) result.Result[[]types.FileURL]
}

type StorageInterface interface {
	CreateFile(ctx context.Context, f *types.File) (*types.File, error)
	ListFilesByOrganization(ctx context.Context, organizationID string) ([]*types.File, error)
	ListFilesByTeam(ctx context.Context, teamID string) ([]*types.File, error)
}

type ObjectStoreInterface interface {
	UploadURL(ctx context.Context) (string, string, time.Time, error)
	DownloadURL(ctx context.Context, storageID string) (string, error)
}
