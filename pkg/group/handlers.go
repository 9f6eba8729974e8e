// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package group

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/lab-service/internal/http/types"
	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/types"
)

type CreateGroupRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Description    string `json:"description" validate:"max=1000"`
	OrganizationID string `json:"organizationId" validate:"required"`
	CreatedBy      string `json:"createdBy" validate:"required"`
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
	mux.Post("/api/v0/groups", a.create)
	mux.Get("/api/v0/organizations/{id}/groups", a.list)
	mux.Get("/api/v0/groups/{id}", a.get)
	mux.Delete("/api/v0/groups/{id}", a.delete)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError[*types.Group](w, err)
		return
	}

	g := &types.Group{
		Name:           req.Name,
		Description:    req.Description,
		OrganizationID: req.OrganizationID,
		CreatedBy:      req.CreatedBy,
	}

	httptypes.WriteResult(w, a.service.CreateGroup(r.Context(), g))
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteResult(w, a.service.ListGroups(r.Context(), chi.URLParam(r, "id")))
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteResult(w, a.service.GetGroup(r.Context(), chi.URLParam(r, "id")))
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteResult(w, a.service.DeleteGroup(r.Context(), chi.URLParam(r, "id")))
}
