// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/lab-service/internal/http/types"
	"github.com/canonical/lab-service/internal/identity"
)

type API struct {
	service ServiceInterface
}

func NewAPI(service ServiceInterface) *API {
	return &API{
		service: service,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/session", a.get)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	h := identity.HeadersFromContext(r.Context())

	httptypes.WriteResult(w, a.service.GetSession(r.Context(), h))
}
