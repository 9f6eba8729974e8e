// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/lab-service/internal/http/types"
	"github.com/canonical/lab-service/internal/identity"
	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/types"
)

type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"omitempty,max=100"`
	Logo string `json:"logo" validate:"omitempty,url"`
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
	mux.Get("/api/v0/organizations", a.list)
	mux.Post("/api/v0/organizations", a.create)
	mux.Get("/api/v0/organizations/owners", a.listWithOwners)
	mux.Get("/api/v0/organizations/by-slug/{slug}", a.getBySlug)
	mux.Get("/api/v0/organizations/{id}", a.getByID)
	mux.Get("/api/v0/organizations/{id}/members", a.listMembers)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	h := identity.HeadersFromContext(r.Context())

	httptypes.WriteResult(w, a.service.ListOrganizations(r.Context(), h))
}

func (a *API) listWithOwners(w http.ResponseWriter, r *http.Request) {
	h := identity.HeadersFromContext(r.Context())

	httptypes.WriteResult(w, a.service.GetOrganizationsWithOwners(r.Context(), h))
}

func (a *API) getBySlug(w http.ResponseWriter, r *http.Request) {
	h := identity.HeadersFromContext(r.Context())

	httptypes.WriteResult(w, a.service.GetOrganizationBySlug(r.Context(), h, chi.URLParam(r, "slug")))
}

func (a *API) getByID(w http.ResponseWriter, r *http.Request) {
	h := identity.HeadersFromContext(r.Context())

	httptypes.WriteResult(w, a.service.GetOrganizationByID(r.Context(), h, chi.URLParam(r, "id")))
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	h := identity.HeadersFromContext(r.Context())

	httptypes.WriteResult(w, a.service.ListMembers(r.Context(), h, chi.URLParam(r, "id")))
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrganizationRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError[*types.Organization](w, err)
		return
	}

	h := identity.HeadersFromContext(r.Context())

	httptypes.WriteResult(w, a.service.CreateOrganization(r.Context(), h, req.Name, req.Slug, req.Logo))
}
