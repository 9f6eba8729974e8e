// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgapi

import (
	"errors"
	"net/http"

	"github.com/canonical/lab-service/pkg/result"
)

// Classify turns a provider failure into a result error. Errors that are already
// classified pass through untouched
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var classified *result.Error
	if errors.As(err, &classified) {
		return err
	}

	if errors.Is(err, ErrNotArray) {
		return result.Wrap(result.KindMalformedResponse, "Provider response not array", err)
	}

	var se *StatusError
	if errors.As(err, &se) {
		switch se.StatusCode {
		case http.StatusUnauthorized:
			return result.Wrap(result.KindUnauthenticated, result.ErrUnauthenticated.Message, err)
		case http.StatusNotFound:
			return result.Wrap(result.KindNotFound, se.Error(), err)
		case http.StatusBadRequest:
			return result.Wrap(result.KindInvalidArgument, se.Error(), err)
		}
	}

	return result.Wrap(result.KindUnknown, err.Error(), err)
}
