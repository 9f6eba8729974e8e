// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package exam

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/lab-service/internal/http/types"
	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/result"
)

type CreateExamRequest struct {
	Title          string          `json:"title" validate:"required,max=200"`
	Description    string          `json:"description" validate:"max=2000"`
	Date           types.Timestamp `json:"date"`
	CreatedBy      string          `json:"createdBy" validate:"required"`
	OrganizationID string          `json:"organizationId" validate:"required"`
	TeamID         string          `json:"teamId"`
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
	mux.Post("/api/v0/exams", a.create)
	mux.Get("/api/v0/organizations/{id}/exams", a.listByOrganization)
	mux.Get("/api/v0/teams/{id}/exams", a.listByTeam)
	mux.Delete("/api/v0/exams/{id}", a.delete)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	var req CreateExamRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError[*types.Exam](w, err)
		return
	}

	if req.Date.IsZero() {
		httptypes.WriteError[*types.Exam](w, result.NewError(result.KindInvalidArgument, "date is required"))
		return
	}

	e := &types.Exam{
		Title:          req.Title,
		Description:    req.Description,
		Date:           req.Date.Time,
		CreatedBy:      req.CreatedBy,
		OrganizationID: req.OrganizationID,
		TeamID:         req.TeamID,
	}

	httptypes.WriteResult(w, a.service.CreateExam(r.Context(), e))
}

func (a *API) listByOrganization(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteResult(w, a.service.GetExamsByOrganization(r.Context(), chi.URLParam(r, "id")))
}

func (a *API) listByTeam(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteResult(w, a.service.GetExamsByTeam(r.Context(), chi.URLParam(r, "id")))
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteResult(w, a.service.DeleteExam(r.Context(), chi.URLParam(r, "id")))
}
