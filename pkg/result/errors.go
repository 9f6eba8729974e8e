// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package result

import (
	"errors"
)

// Kind classifies a failure so the transport layer can choose how to render it
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidPassword
	KindUnauthenticated
	KindMalformedResponse
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidPassword:
		return "invalid_password"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindMalformedResponse:
		return "malformed_response"
	case KindInvalidArgument:
		return "invalid_argument"
	default:
		return "unknown"
	}
}

// Error is a classified failure. Message is what the caller gets to see, Err is kept for logs
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinels by kind and message so wrapped copies still compare equal
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Kind == t.Kind && e.Message == t.Message
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause to a classified error without changing the rendered message
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

var (
	ErrOrganizationNotFound  = NewError(KindNotFound, "Organization not found")
	ErrOrganizationsNotArray = NewError(KindMalformedResponse, "Organizations response not array")
	ErrTeamNotFound          = NewError(KindNotFound, "Team not found")
	ErrInvalidPassword       = NewError(KindInvalidPassword, "Invalid password")
	ErrUnauthenticated       = NewError(KindUnauthenticated, "User not authenticated")
)

// KindOf returns the kind of the first classified error in the chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind
	}

	return KindUnknown
}

// MessageOf renders err for a user: classified errors use their message, anything else its Error().
// A nil *Error renders empty
func MessageOf(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		if e == nil {
			return ""
		}

		return e.Message
	}

	return err.Error()
}
