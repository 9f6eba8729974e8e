// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package file

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/lab-service/internal/http/types"
	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/internal/types"
)

type SaveFileRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	StorageID      string `json:"storageId" validate:"required"`
	ContentType    string `json:"contentType" validate:"max=255"`
	Size           int64  `json:"size" validate:"gte=0"`
	UploadedBy     string `json:"uploadedBy" validate:"required"`
	OrganizationID string `json:"organizationId" validate:"required"`
	TeamID         string `json:"teamId"`
}

type FileURLsRequest struct {
	StorageIDs []string `json:"storageIds" validate:"required,max=100,dive,required"`
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
	mux.Post("/api/v0/files/upload-url", a.uploadURL)
	mux.Post("/api/v0/files", a.save)
	mux.Get("/api/v0/organizations/{id}/files", a.listByOrganization)
	mux.Get("/api/v0/teams/{id}/files", a.listByTeam)
	mux.Get("/api/v0/files/{storageId}/url", a.url)
	mux.Post("/api/v0/files/urls", a.urls)
}

func (a *API) uploadURL(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteResult(w, a.service.GenerateUploadURL(r.Context()))
}

func (a *API) save(w http.ResponseWriter, r *http.Request) {
	var req SaveFileRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError[*types.File](w, err)
		return
	}

	f := &types.File{
		Name:           req.Name,
		StorageID:      req.StorageID,
		ContentType:    req.ContentType,
		Size:           req.Size,
		UploadedBy:     req.UploadedBy,
		OrganizationID: req.OrganizationID,
		TeamID:         req.TeamID,
	}

	httptypes.WriteResult(w, a.service.SaveFile(r.Context(), f))
}

func (a *API) listByOrganization(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteResult(w, a.service.GetFilesByOrganization(r.Context(), chi.URLParam(r, "id")))
}

func (a *API) listByTeam(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteResult(w, a.service.GetFilesByTeam(r.Context(), chi.URLParam(r, "id")))
}

func (a *API) url(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteResult(w, a.service.GetFileURL(r.Context(), chi.URLParam(r, "storageId")))
}

func (a *API) urls(w http.ResponseWriter, r *http.Request) {
	var req FileURLsRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError[[]types.FileURL](w, err)
		return
	}

	httptypes.WriteResult(w, a.service.GetFileURLs(r.Context(), req.StorageIDs))
}
