package tracing

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func installRecorder(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(sdktrace.NewTracerProvider()) })
	return exporter
}

func TestStartDBSpan_Success(t *testing.T) {
	exporter := installRecorder(t)

	_, span := StartDBSpan(context.Background(), "sqlite", "AuthorRepo.Get")
	EndDBSpan(span, nil)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	got := spans[0]
	if got.Name != "AuthorRepo.Get" {
		t.Errorf("expected span name 'AuthorRepo.Get', got '%s'", got.Name)
	}
	if got.SpanKind != trace.SpanKindClient {
		t.Errorf("expected client span, got %v", got.SpanKind)
	}
	if got.Status.Code != codes.Unset {
		t.Errorf("expected unset status, got %v", got.Status.Code)
	}

	foundSystem := false
	for _, attr := range got.Attributes {
		if attr.Key == "db.system" {
			foundSystem = true
			if attr.Value.AsString() != "sqlite" {
				t.Errorf("expected db.system=sqlite, got %s", attr.Value.AsString())
			}
		}
	}
	if !foundSystem {
		t.Error("db.system attribute not found")
	}
}

func TestEndDBSpan_RecordsError(t *testing.T) {
	exporter := installRecorder(t)

	_, span := StartDBSpan(context.Background(), "postgres", "MagazineRepo.Create")
	EndDBSpan(span, errors.New("connection refused"))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("expected error status, got %v", spans[0].Status.Code)
	}
	if spans[0].Status.Description != "connection refused" {
		t.Errorf("unexpected status description %q", spans[0].Status.Description)
	}
	if len(spans[0].Events) == 0 {
		t.Error("expected an exception event")
	}
}
