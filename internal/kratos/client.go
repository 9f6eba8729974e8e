// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"
	"time"

	ory "github.com/ory/client-go"

	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

type ClientInterface interface {
	GetSession(ctx context.Context, h types.Headers) (*types.Session, error)
}

// Client resolves session cookies and tokens against the Kratos public API
type Client struct {
	client  *ory.APIClient
	timeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosPublicURL string, timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosPublicURL}}
	conf.HTTPClient = &http.Client{Transport: tracing.NewHTTPTransport(http.DefaultTransport)}

	return &Client{
		client:  ory.NewAPIClient(conf),
		timeout: timeout,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) GetSession(ctx context.Context, h types.Headers) (*types.Session, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetSession")
	defer span.End()

	if h.Cookie == "" && h.SessionToken == "" {
		return nil, result.ErrUnauthenticated
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := c.client.FrontendAPI.ToSession(ctx)
	if h.Cookie != "" {
		req = req.Cookie(h.Cookie)
	}
	if h.SessionToken != "" {
		req = req.XSessionToken(h.SessionToken)
	}

	session, r, err := req.Execute()
	c.recordAvailability(r, err)

	if err != nil {
		if r != nil && (r.StatusCode == http.StatusUnauthorized || r.StatusCode == http.StatusForbidden) {
			c.logger.Security().AuthnFailure("", "invalid session")
			return nil, result.ErrUnauthenticated
		}

		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	if !session.GetActive() || !session.HasIdentity() {
		c.logger.Security().AuthnFailure(session.GetId(), "inactive session")
		return nil, result.ErrUnauthenticated
	}

	return toSession(session), nil
}

func (c *Client) recordAvailability(r *http.Response, err error) {
	available := 1.0
	if err != nil && (r == nil || r.StatusCode >= http.StatusInternalServerError) {
		available = 0
	}

	if mErr := c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, available); mErr != nil {
		c.logger.Debugf("failed to record kratos availability: %v", mErr)
	}
}

func toSession(s *ory.Session) *types.Session {
	identity := s.GetIdentity()

	session := &types.Session{
		ID:        s.GetId(),
		UserID:    identity.GetId(),
		ExpiresAt: s.GetExpiresAt(),
	}

	traits, ok := identity.GetTraits().(map[string]interface{})
	if !ok {
		return session
	}

	if email, ok := traits["email"].(string); ok {
		session.Email = email
	}

	switch name := traits["name"].(type) {
	case string:
		session.Name = name
	case map[string]interface{}:
		first, _ := name["first"].(string)
		last, _ := name["last"].(string)
		session.Name = joinName(first, last)
	}

	return session
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
