// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventSystemStartup  = "sys_startup"
	eventSystemShutdown = "sys_shutdown"
	eventAuthnFailure   = "authn_login_fail"
	eventAuthzFailure   = "authz_fail"

	appID = "lab-service"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger emits security relevant events with a stable event vocabulary
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Warn("system startup", zap.String("event", eventSystemStartup+":"+appID))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Warn("system shutdown", zap.String("event", eventSystemShutdown+":"+appID))
}

func (s *SecurityLogger) AuthnFailure(userID, reason string) {
	s.l.Warn(
		"authentication failure",
		zap.String("event", eventAuthnFailure+":"+userID),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String("event", eventAuthzFailure+":"+userID+","+resource),
	)
}
