// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package message

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/lab-service/internal/http/types"
	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/types"
)

type SendMessageRequest struct {
	Content        string `json:"content" validate:"required,max=4000"`
	AuthorID       string `json:"authorId" validate:"required"`
	AuthorName     string `json:"authorName" validate:"max=200"`
	OrganizationID string `json:"organizationId" validate:"required"`
	TeamID         string `json:"teamId"`
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
	mux.Post("/api/v0/messages", a.send)
	mux.Get("/api/v0/organizations/{id}/messages", a.listByOrganization)
	mux.Get("/api/v0/teams/{id}/messages", a.listByTeam)
}

func (a *API) send(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError[*types.Message](w, err)
		return
	}

	m := &types.Message{
		Content:        req.Content,
		AuthorID:       req.AuthorID,
		AuthorName:     req.AuthorName,
		OrganizationID: req.OrganizationID,
		TeamID:         req.TeamID,
	}

	httptypes.WriteResult(w, a.service.SendMessage(r.Context(), m))
}

func (a *API) listByOrganization(w http.ResponseWriter, r *http.Request) {
	limit, err := httptypes.QueryInt(r, "limit", DefaultLimit)
	if err != nil {
		httptypes.WriteError[[]*types.Message](w, err)
		return
	}

	httptypes.WriteResult(w, a.service.GetMessagesByOrganization(r.Context(), chi.URLParam(r, "id"), limit))
}

func (a *API) listByTeam(w http.ResponseWriter, r *http.Request) {
	limit, err := httptypes.QueryInt(r, "limit", DefaultLimit)
	if err != nil {
		httptypes.WriteError[[]*types.Message](w, err)
		return
	}

	httptypes.WriteResult(w, a.service.GetMessagesByTeam(r.Context(), chi.URLParam(r, "id"), limit))
}
