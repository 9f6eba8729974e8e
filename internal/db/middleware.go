// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	httptypes "github.com/canonical/lab-service/internal/http/types"
	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/pkg/result"
)

// ErrCommitFailed is rendered to the client when the handler succeeded but its
// transaction could not be committed
var ErrCommitFailed = result.NewError(result.KindUnknown, "Failed to save changes")

var errRequestFailed = errors.New("request failed")

// TransactionMiddleware wraps mutating requests in a transaction that commits only when
// the handler answers with a status below 400. The response is held back until the
// commit outcome is known.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			buf := newBufferedResponse(w)

			err := db.WithTx(r.Context(), func(txCtx context.Context) error {
				next.ServeHTTP(buf, r.WithContext(txCtx))

				if buf.status >= http.StatusBadRequest {
					return fmt.Errorf("%w with status %d", errRequestFailed, buf.status)
				}

				return nil
			})

			switch {
			case err == nil:
			case errors.Is(err, errRequestFailed):
				logger.Debugf("transaction rolled back for %s %s: %v", r.Method, r.URL.Path, err)
			default:
				logger.Errorf("transaction not committed for %s %s: %v", r.Method, r.URL.Path, err)
				httptypes.WriteError[any](w, result.Wrap(ErrCommitFailed.Kind, ErrCommitFailed.Message, err))
				return
			}

			buf.flush()
		})
	}
}

// bufferedResponse shares the header map of the real writer but keeps status and body
// until flush
type bufferedResponse struct {
	w           http.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func newBufferedResponse(w http.ResponseWriter) *bufferedResponse {
	return &bufferedResponse{w: w, status: http.StatusOK}
}

func (b *bufferedResponse) Header() http.Header {
	return b.w.Header()
}

func (b *bufferedResponse) WriteHeader(code int) {
	if b.wroteHeader {
		return
	}

	b.status = code
	b.wroteHeader = true
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	if !b.wroteHeader {
		b.WriteHeader(http.StatusOK)
	}

	return b.body.Write(p)
}

func (b *bufferedResponse) flush() {
	b.w.WriteHeader(b.status)
	_, _ = b.w.Write(b.body.Bytes())
}
