// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"

	"github.com/canonical/lab-service/pkg/result"
)

// HTTPStatusFromKind maps an error kind onto the status code a failed envelope is sent with
func HTTPStatusFromKind(k result.Kind) int {
	switch k {
	case result.KindNotFound:
		return http.StatusNotFound
	case result.KindInvalidPassword:
		return http.StatusForbidden
	case result.KindUnauthenticated:
		return http.StatusUnauthorized
	case result.KindInvalidArgument:
		return http.StatusBadRequest
	case result.KindMalformedResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteResult renders r as the JSON envelope, the status code follows the error kind
func WriteResult[T any](w http.ResponseWriter, r result.Result[T]) {
	status := http.StatusOK
	if !r.OK() {
		status = HTTPStatusFromKind(r.Kind())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(r)
}

// WriteError renders err as a failed envelope of T
func WriteError[T any](w http.ResponseWriter, err error) {
	WriteResult(w, result.Fail[T](err))
}
