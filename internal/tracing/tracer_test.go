// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"testing"
)

func TestNewTracerDisabled(t *testing.T) {
	tracer := NewTracer(NewNoopConfig())

	ctx, span := tracer.Start(context.Background(), "tracing.TestNewTracerDisabled")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}

	if span.SpanContext().IsSampled() {
		t.Error("noop tracer must not sample spans")
	}
}

func TestNewNoopTracer(t *testing.T) {
	_, span := NewNoopTracer().Start(context.Background(), "noop")
	defer span.End()

	if span.IsRecording() {
		t.Error("noop span must not record")
	}
}
