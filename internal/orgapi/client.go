// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package orgapi talks to the hosted organization provider: organizations, members,
// invitations and teams. Every call forwards the caller's session headers and runs
// under its own deadline. Nothing is retried.
package orgapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/monitoring"
	"github.com/canonical/lab-service/internal/tracing"
	"github.com/canonical/lab-service/internal/types"
)

const maxResponseBytes = 4 << 20

// ErrNotArray is returned when a list endpoint answers with something other than a JSON array
var ErrNotArray = errors.New("response not array")

// StatusError is a non 2xx answer from the provider
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider returned status %d", e.StatusCode)
	}

	return e.Message
}

type Client struct {
	baseURL *url.URL
	client  *http.Client
	timeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(baseURL string, timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid provider url: %w", err)
	}

	c := new(Client)
	c.baseURL = u
	c.client = &http.Client{Transport: tracing.NewHTTPTransport(http.DefaultTransport)}
	c.timeout = timeout

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c, nil
}

func (c *Client) ListOrganizations(ctx context.Context, h types.Headers) ([]types.Organization, error) {
	ctx, span := c.tracer.Start(ctx, "orgapi.Client.ListOrganizations")
	defer span.End()

	raw, err := c.do(ctx, h, http.MethodGet, "/organization/list", nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeArray[types.Organization](raw)
}

func (c *Client) ListMembers(ctx context.Context, h types.Headers, organizationID string) ([]types.Member, error) {
	ctx, span := c.tracer.Start(ctx, "orgapi.Client.ListMembers")
	defer span.End()

	raw, err := c.do(ctx, h, http.MethodGet, "/organization/list-members", url.Values{"organizationId": {organizationID}}, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Members json.RawMessage `json:"members"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: members payload is %s", ErrNotArray, typeErr.Value)
		}

		return nil, fmt.Errorf("failed to decode members: %w", err)
	}

	return decodeArray[types.Member](payload.Members)
}

func (c *Client) CreateOrganization(ctx context.Context, h types.Headers, name, slug, logo string) (*types.Organization, error) {
	ctx, span := c.tracer.Start(ctx, "orgapi.Client.CreateOrganization")
	defer span.End()

	body := map[string]string{"name": name, "slug": slug}
	if logo != "" {
		body["logo"] = logo
	}

	raw, err := c.do(ctx, h, http.MethodPost, "/organization/create", nil, body)
	if err != nil {
		return nil, err
	}

	return decodeObject[types.Organization](raw)
}

func (c *Client) CreateInvitation(ctx context.Context, h types.Headers, organizationID, email, role string) (*types.Invitation, error) {
	ctx, span := c.tracer.Start(ctx, "orgapi.Client.CreateInvitation")
	defer span.End()

	body := map[string]string{"organizationId": organizationID, "email": email, "role": role}

	raw, err := c.do(ctx, h, http.MethodPost, "/organization/invite-member", nil, body)
	if err != nil {
		return nil, err
	}

	return decodeObject[types.Invitation](raw)
}

func (c *Client) ListUserInvitations(ctx context.Context, h types.Headers, email string) ([]types.Invitation, error) {
	ctx, span := c.tracer.Start(ctx, "orgapi.Client.ListUserInvitations")
	defer span.End()

	raw, err := c.do(ctx, h, http.MethodGet, "/organization/list-user-invitations", url.Values{"email": {email}}, nil)
	if err != nil {
		return nil, err
	}

	return decodeArray[types.Invitation](raw)
}

func (c *Client) AcceptInvitation(ctx context.Context, h types.Headers, invitationID string) (*types.Invitation, error) {
	ctx, span := c.tracer.Start(ctx, "orgapi.Client.AcceptInvitation")
	defer span.End()

	return c.answerInvitation(ctx, h, "/organization/accept-invitation", invitationID)
}

func (c *Client) RejectInvitation(ctx context.Context, h types.Headers, invitationID string) (*types.Invitation, error) {
	ctx, span := c.tracer.Start(ctx, "orgapi.Client.RejectInvitation")
	defer span.End()

	return c.answerInvitation(ctx, h, "/organization/reject-invitation", invitationID)
}

func (c *Client) answerInvitation(ctx context.Context, h types.Headers, path, invitationID string) (*types.Invitation, error) {
	raw, err := c.do(ctx, h, http.MethodPost, path, nil, map[string]string{"invitationId": invitationID})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Invitation *types.Invitation `json:"invitation"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode invitation: %w", err)
	}

	if payload.Invitation == nil {
		return nil, fmt.Errorf("provider returned no invitation")
	}

	return payload.Invitation, nil
}

func (c *Client) ListOrganizationTeams(ctx context.Context, h types.Headers, organizationID string) ([]types.Team, error) {
	ctx, span := c.tracer.Start(ctx, "orgapi.Client.ListOrganizationTeams")
	defer span.End()

	raw, err := c.do(ctx, h, http.MethodGet, "/organization/list-teams", url.Values{"organizationId": {organizationID}}, nil)
	if err != nil {
		return nil, err
	}

	return decodeArray[types.Team](raw)
}

func (c *Client) ListUserTeams(ctx context.Context, h types.Headers) ([]types.Team, error) {
	ctx, span := c.tracer.Start(ctx, "orgapi.Client.ListUserTeams")
	defer span.End()

	raw, err := c.do(ctx, h, http.MethodGet, "/organization/list-user-teams", nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeArray[types.Team](raw)
}

// CreateTeam expects passwordHash to be hashed already, the provider stores it verbatim
func (c *Client) CreateTeam(ctx context.Context, h types.Headers, organizationID, name, passwordHash string) (*types.Team, error) {
	ctx, span := c.tracer.Start(ctx, "orgapi.Client.CreateTeam")
	defer span.End()

	body := map[string]string{"organizationId": organizationID, "name": name}
	if passwordHash != "" {
		body["password"] = passwordHash
	}

	raw, err := c.do(ctx, h, http.MethodPost, "/organization/create-team", nil, body)
	if err != nil {
		return nil, err
	}

	return decodeObject[types.Team](raw)
}

func (c *Client) AddTeamMember(ctx context.Context, h types.Headers, teamID, userID string) (*types.TeamMember, error) {
	ctx, span := c.tracer.Start(ctx, "orgapi.Client.AddTeamMember")
	defer span.End()

	raw, err := c.do(ctx, h, http.MethodPost, "/organization/add-team-member", nil, map[string]string{"teamId": teamID, "userId": userID})
	if err != nil {
		return nil, err
	}

	return decodeObject[types.TeamMember](raw)
}

func (c *Client) do(ctx context.Context, h types.Headers, method, path string, query url.Values, body any) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	h.Apply(req)

	resp, err := c.client.Do(req)
	c.recordAvailability(resp, err)
	if err != nil {
		return nil, fmt.Errorf("provider request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debugf("provider %s %s returned %d", method, path, resp.StatusCode)
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	return raw, nil
}

func (c *Client) recordAvailability(resp *http.Response, err error) {
	available := 1.0
	if err != nil || (resp != nil && resp.StatusCode >= http.StatusInternalServerError) {
		available = 0
	}

	if mErr := c.monitor.SetDependencyAvailability(map[string]string{"component": "organization_provider"}, available); mErr != nil {
		c.logger.Debugf("failed to record provider availability: %v", mErr)
	}
}

func errorMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}

	if payload.Message != "" {
		return payload.Message
	}

	return payload.Error
}

// decodeArray refuses anything but a JSON array, null included
func decodeArray[T any](raw []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	out := make([]T, 0)
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	return out, nil
}

func decodeObject[T any](raw []byte) (*T, error) {
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	return out, nil
}
