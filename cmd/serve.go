// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/lab-service/internal/config"
	"github.com/canonical/lab-service/internal/db"
	"github.com/canonical/lab-service/internal/identity"
	"github.com/canonical/lab-service/internal/kratos"
	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring/prometheus"
	"github.com/canonical/lab-service/internal/objectstore"
	"github.com/canonical/lab-service/internal/orgapi"
	"github.com/canonical/lab-service/internal/storage"
	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/pkg/exam"
	"github.com/canonical/lab-service/pkg/file"
	"github.com/canonical/lab-service/pkg/group"
	"github.com/canonical/lab-service/pkg/invitation"
	"github.com/canonical/lab-service/pkg/message"
	"github.com/canonical/lab-service/pkg/organization"
	"github.com/canonical/lab-service/pkg/session"
	"github.com/canonical/lab-service/pkg/team"
	"github.com/canonical/lab-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("lab-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	objectsConfig := objectstore.Config{
		Endpoint:       specs.ObjectStorageEndpoint,
		AccessKey:      specs.ObjectStorageAccessKey,
		SecretKey:      specs.ObjectStorageSecretKey,
		Bucket:         specs.ObjectStorageBucket,
		UseSSL:         specs.ObjectStorageUseSSL,
		UploadURLTTL:   specs.UploadURLTTL,
		DownloadURLTTL: specs.DownloadURLTTL,
	}
	minioClient, err := objectstore.NewMinioClient(objectsConfig)
	if err != nil {
		return err
	}
	objects := objectstore.NewStore(minioClient, objectsConfig, tracer, monitor, logger)

	kratosClient := kratos.NewClient(specs.KratosPublicURL, specs.ProviderTimeout, tracer, monitor, logger)

	provider, err := orgapi.NewClient(specs.ProviderURL, specs.ProviderTimeout, tracer, monitor, logger)
	if err != nil {
		return err
	}

	apis := []web.APIInterface{
		organization.NewAPI(organization.NewService(provider, specs.ProviderBatchSize, tracer, monitor, logger), logger),
		team.NewAPI(team.NewService(provider, kratosClient, team.NewBcryptVerifier(bcrypt.DefaultCost), tracer, monitor, logger), logger),
		invitation.NewAPI(invitation.NewService(provider, kratosClient, tracer, monitor, logger), logger),
		session.NewAPI(session.NewService(kratosClient, tracer, monitor, logger)),
		exam.NewAPI(exam.NewService(s, tracer, monitor, logger), logger),
		message.NewAPI(message.NewService(s, tracer, monitor, logger), logger),
		file.NewAPI(file.NewService(s, objects, specs.FileURLConcurrency, tracer, monitor, logger), logger),
		group.NewAPI(group.NewService(s, tracer, monitor, logger), logger),
	}

	router := web.NewRouter(
		apis,
		identity.NewMiddleware(tracer, monitor, logger),
		dbClient,
		specs.CORSAllowedOrigins,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
