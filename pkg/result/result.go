// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package result holds the envelope every client facing operation returns.
//
// A Result serializes to {"data": T, "error": "..."}. On failure data is the zero value
// of T, so pointers, slices and maps render as null and booleans as false, and error
// carries the rendered message. On success error is omitted.
package result

import (
	"encoding/json"
	"errors"
)

type Result[T any] struct {
	data T
	err  error
}

type envelope[T any] struct {
	Data  T      `json:"data"`
	Error string `json:"error,omitempty"`
}

func Ok[T any](v T) Result[T] {
	return Result[T]{data: v}
}

func Fail[T any](err error) Result[T] {
	if err == nil {
		err = NewError(KindUnknown, "unknown error")
	}

	return Result[T]{err: err}
}

// From builds a Result from the usual (value, error) pair
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}

	return Ok(v)
}

func (r Result[T]) Data() T {
	return r.data
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) OK() bool {
	return r.err == nil
}

func (r Result[T]) Kind() Kind {
	if r.err == nil {
		return KindUnknown
	}

	return KindOf(r.err)
}

func (r Result[T]) Message() string {
	return MessageOf(r.err)
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.err != nil {
		var zero T
		return json.Marshal(envelope[T]{Data: zero, Error: r.Message()})
	}

	return json.Marshal(envelope[T]{Data: r.data})
}

// UnmarshalJSON restores an envelope produced by MarshalJSON, the error kind is not
// transported and decodes as KindUnknown
func (r *Result[T]) UnmarshalJSON(b []byte) error {
	var e envelope[T]
	if err := json.Unmarshal(b, &e); err != nil {
		return err
	}

	if e.Error != "" {
		var zero T
		r.data = zero
		r.err = errors.New(e.Error)
		return nil
	}

	r.data = e.Data
	r.err = nil

	return nil
}
