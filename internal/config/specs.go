// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port               int      `envconfig:"port" default:"8080"`
	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	KratosPublicURL string `envconfig:"kratos_public_url" required:"true"`

	ProviderURL       string        `envconfig:"provider_url" required:"true"`
	ProviderTimeout   time.Duration `envconfig:"provider_timeout" default:"10s"`
	ProviderBatchSize int           `envconfig:"provider_batch_size" default:"5"`

	FileURLConcurrency int `envconfig:"file_url_concurrency" default:"5"`

	ObjectStorageEndpoint  string        `envconfig:"object_storage_endpoint" required:"true"`
	ObjectStorageAccessKey string        `envconfig:"object_storage_access_key"`
	ObjectStorageSecretKey string        `envconfig:"object_storage_secret_key"`
	ObjectStorageBucket    string        `envconfig:"object_storage_bucket" default:"lab-files"`
	ObjectStorageUseSSL    bool          `envconfig:"object_storage_use_ssl" default:"true"`
	UploadURLTTL           time.Duration `envconfig:"upload_url_ttl" default:"15m"`
	DownloadURLTTL         time.Duration `envconfig:"download_url_ttl" default:"1h"`
}
