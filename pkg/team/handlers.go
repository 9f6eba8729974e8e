// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/lab-service/internal/http/types"
	"github.com/canonical/lab-service/internal/identity"
	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/types"
)

type CreateTeamRequest struct {
	OrganizationID string `json:"organizationId" validate:"required"`
	Name           string `json:"name" validate:"required,max=100"`
	Password       string `json:"password" validate:"omitempty,max=72"`
}

type JoinTeamRequest struct {
	OrganizationID string `json:"organizationId" validate:"required"`
	Password       string `json:"password" validate:"required,max=72"`
}

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/organizations/{id}/teams", a.listWithMembership)
	mux.Post("/api/v0/teams", a.create)
	mux.Post("/api/v0/teams/{id}/join", a.join)
}

func (a *API) listWithMembership(w http.ResponseWriter, r *http.Request) {
	h := identity.HeadersFromContext(r.Context())

	httptypes.WriteResult(w, a.service.GetTeamsWithMembership(r.Context(), h, chi.URLParam(r, "id")))
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError[*types.Team](w, err)
		return
	}

	h := identity.HeadersFromContext(r.Context())

	httptypes.WriteResult(w, a.service.CreateTeam(r.Context(), h, req.OrganizationID, req.Name, req.Password))
}

func (a *API) join(w http.ResponseWriter, r *http.Request) {
	var req JoinTeamRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError[*types.TeamMember](w, err)
		return
	}

	h := identity.HeadersFromContext(r.Context())

	httptypes.WriteResult(w, a.service.JoinTeamWithPassword(r.Context(), h, chi.URLParam(r, "id"), req.Password, req.OrganizationID))
}
