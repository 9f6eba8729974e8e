// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/notify"
	"github.com/canonical/lab-service/pkg/result"
)

const clientTimeout = 30 * time.Second

// errReported marks failures already shown to the user
var errReported = errors.New("reported")

type apiClient struct {
	endpoint string
	headers  types.Headers
	http     *http.Client
}

// getClient builds a client for the server at --endpoint carrying the session flags
func getClient() *apiClient {
	e := endpoint
	if !strings.HasPrefix(e, "http") {
		e = "http://" + e
	}

	return &apiClient{
		endpoint: strings.TrimSuffix(e, "/"),
		headers:  types.Headers{Cookie: cookie, SessionToken: sessionToken},
		http: &http.Client{
			Timeout:   clientTimeout,
			Transport: tracing.NewHTTPTransport(nil),
		},
	}
}

// call performs one request against the API and decodes the envelope. Transport and
// decoding failures become failed results so every outcome reaches the notifier
func call[T any](ctx context.Context, c *apiClient, method, path string, body any) result.Result[T] {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return result.Fail[T](fmt.Errorf("failed to marshal request: %w", err))
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return result.Fail[T](err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.headers.Apply(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return result.Fail[T](fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	var r result.Result[T]
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return result.Fail[T](fmt.Errorf("invalid response (status %d): %w", resp.StatusCode, err))
	}

	return r
}

// report notifies the outcome of r, failures turn into errReported
func report[T any](cmd *cobra.Command, r result.Result[T], successMessage, defaultMessage string) error {
	n := notify.NewWriterNotifier(cmd.OutOrStdout(), cmd.ErrOrStderr())

	if !notify.HandleResult(n, r, successMessage, defaultMessage) {
		return errReported
	}

	return nil
}
