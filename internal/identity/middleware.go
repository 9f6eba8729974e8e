// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"

	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/internal/types"
)

type headersContextKey struct{}

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware captures the caller's session headers so handlers can pass them on to
// the providers explicitly
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		h := types.HeadersFromRequest(r)
		if h.Empty() {
			m.logger.Debugf("request to %s carries no session headers", r.URL.Path)
		}

		ctx = WithHeaders(ctx, h)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithHeaders(ctx context.Context, h types.Headers) context.Context {
	return context.WithValue(ctx, headersContextKey{}, h)
}

// HeadersFromContext returns the headers stored by the middleware, or an empty carrier
func HeadersFromContext(ctx context.Context) types.Headers {
	if h, ok := ctx.Value(headersContextKey{}).(types.Headers); ok {
		return h
	}

	return types.Headers{}
}
