// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

// NotifierInterface is the user facing notification channel (toasts in a UI, lines in a terminal)
type NotifierInterface interface {
	Success(message string)
	Error(message string)
}
