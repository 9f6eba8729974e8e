// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/lab-service/internal/http/types"
	"github.com/canonical/lab-service/internal/identity"
	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/types"
)

type InviteMemberRequest struct {
	OrganizationID string `json:"organizationId" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Role           string `json:"role" validate:"omitempty,oneof=member admin"`
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
	mux.Post("/api/v0/invitations", a.invite)
	mux.Get("/api/v0/invitations", a.list)
	mux.Post("/api/v0/invitations/{id}/accept", a.accept)
	mux.Post("/api/v0/invitations/{id}/reject", a.reject)
}

func (a *API) invite(w http.ResponseWriter, r *http.Request) {
	var req InviteMemberRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError[*types.Invitation](w, err)
		return
	}

	h := identity.HeadersFromContext(r.Context())

	httptypes.WriteResult(w, a.service.InviteMember(r.Context(), h, req.OrganizationID, req.Email, req.Role))
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	h := identity.HeadersFromContext(r.Context())

	httptypes.WriteResult(w, a.service.GetUserInvitations(r.Context(), h))
}

func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	h := identity.HeadersFromContext(r.Context())

	httptypes.WriteResult(w, a.service.AcceptInvitation(r.Context(), h, chi.URLParam(r, "id")))
}

func (a *API) reject(w http.ResponseWriter, r *http.Request) {
	h := identity.HeadersFromContext(r.Context())

	httptypes.WriteResult(w, a.service.RejectInvitation(r.Context(), h, chi.URLParam(r, "id")))
}
