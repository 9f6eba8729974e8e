// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"net/http"
	"strings"
)

const (
	HeaderCookie        = "Cookie"
	HeaderAuthorization = "Authorization"
	HeaderSessionToken  = "X-Session-Token"
)

// Headers is the caller's session carrier. It is handed explicitly to every call that
// reaches the organization or session provider, there is no ambient session state.
type Headers struct {
	Cookie        string
	Authorization string
	SessionToken  string
}

// HeadersFromRequest copies the session relevant headers of an incoming request
func HeadersFromRequest(r *http.Request) Headers {
	h := Headers{
		Cookie:        r.Header.Get(HeaderCookie),
		Authorization: r.Header.Get(HeaderAuthorization),
		SessionToken:  r.Header.Get(HeaderSessionToken),
	}

	if h.SessionToken == "" && strings.HasPrefix(h.Authorization, "Bearer ") {
		h.SessionToken = strings.TrimPrefix(h.Authorization, "Bearer ")
	}

	return h
}

// Apply sets the carried headers on an outgoing request
func (h Headers) Apply(req *http.Request) {
	if h.Cookie != "" {
		req.Header.Set(HeaderCookie, h.Cookie)
	}

	if h.Authorization != "" {
		req.Header.Set(HeaderAuthorization, h.Authorization)
	}

	if h.SessionToken != "" {
		req.Header.Set(HeaderSessionToken, h.SessionToken)
	}
}

func (h Headers) Empty() bool {
	return h.Cookie == "" && h.Authorization == "" && h.SessionToken == ""
}
