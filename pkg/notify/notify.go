// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

import (
	"fmt"
	"io"

	"github.com/canonical/lab-service/pkg/result"
)

// HandleError resolves a caught value into a message, notifies it and returns it.
// Errors render through result.MessageOf, strings are used as they are and anything
// else falls back to defaultMessage.
func HandleError(n NotifierInterface, v any, defaultMessage string) string {
	message := defaultMessage

	switch e := v.(type) {
	case error:
		if m := result.MessageOf(e); m != "" {
			message = m
		}
	case string:
		if e != "" {
			message = e
		}
	}

	n.Error(message)

	return message
}

// HandleResult notifies the outcome of r and reports whether it succeeded
func HandleResult[T any](n NotifierInterface, r result.Result[T], successMessage, defaultMessage string) bool {
	if r.OK() {
		if successMessage != "" {
			n.Success(successMessage)
		}

		return true
	}

	HandleError(n, r.Err(), defaultMessage)

	return false
}

// WriterNotifier prints notifications as single lines, errors go to their own writer
type WriterNotifier struct {
	out io.Writer
	err io.Writer
}

func (w *WriterNotifier) Success(message string) {
	fmt.Fprintf(w.out, "✓ %s\n", message)
}

func (w *WriterNotifier) Error(message string) {
	fmt.Fprintf(w.err, "✗ %s\n", message)
}

func NewWriterNotifier(out, err io.Writer) *WriterNotifier {
	return &WriterNotifier{out: out, err: err}
}
