package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "lunafinder", cfg.ServiceName)
	assert.Equal(t, "dev", cfg.ServiceVersion)
	assert.Equal(t, "localhost:4317", cfg.Endpoint)
	assert.True(t, cfg.Insecure)
	assert.Equal(t, 1.0, cfg.SampleRate)
}

func TestInitDisabled(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.Enabled = false

	shutdown, err := Init(ctx, cfg)
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	// Should be able to call shutdown without error
	err = shutdown(ctx)
	assert.NoError(t, err)

	// Should not be enabled
	assert.False(t, IsEnabled())
}

func TestTracerReturnsNoOp(t *testing.T) {
	// Reset state
	tracer = nil
	enabled = false

	// Without initialization, should return no-op tracer
	tr := Tracer()
	require.NotNil(t, tr)
}

func TestStartSpan(t *testing.T) {
	ctx := context.Background()

	// Even without initialization, StartSpan should work (no-op)
	newCtx, span := StartSpan(ctx, "test.operation")
	require.NotNil(t, newCtx)
	require.NotNil(t, span)

	// Should be able to end the span
	span.End()
}

func TestSpanFromContext(t *testing.T) {
	ctx := context.Background()

	// Should return a span even without active span
	span := SpanFromContext(ctx)
	require.NotNil(t, span)
}

func TestAddEvent(t *testing.T) {
	ctx := context.Background()

	// Should not panic with no active span
	require.NotPanics(t, func() {
		AddEvent(ctx, "test.event")
	})
}

func TestRecordError(t *testing.T) {
	ctx := context.Background()

	// Should not panic with nil error
	require.NotPanics(t, func() {
		RecordError(ctx, nil)
	})

	// Should not panic with error
	require.NotPanics(t, func() {
		RecordError(ctx, errors.New("test error"))
	})
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()

	// Should not panic
	require.NotPanics(t, func() {
		SetStatus(ctx, codes.Ok, "success")
	})

	require.NotPanics(t, func() {
		SetStatus(ctx, codes.Error, "failed")
	})
}

func TestSetAttributes(t *testing.T) {
	ctx := context.Background()

	// Should not panic
	require.NotPanics(t, func() {
		SetAttributes(ctx, ClientIP("192.168.1.1"))
	})
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()

	// Without active span, should return empty string
	traceID := TraceID(ctx)
	assert.Equal(t, "", traceID)
}

func TestSpanID(t *testing.T) {
	ctx := context.Background()

	// Without active span, should return empty string
	spanID := SpanID(ctx)
	assert.Equal(t, "", spanID)
}

func TestAttributeHelpers(t *testing.T) {
	t.Run("ClientIP", func(t *testing.T) {
		attr := ClientIP("192.168.1.100")
		assert.Equal(t, AttrClientIP, string(attr.Key))
		assert.Equal(t, "192.168.1.100", attr.Value.AsString())
	})

	t.Run("ClientAddr", func(t *testing.T) {
		attr := ClientAddr("192.168.1.100:12345")
		assert.Equal(t, AttrClientAddr, string(attr.Key))
		assert.Equal(t, "192.168.1.100:12345", attr.Value.AsString())
	})

	t.Run("FSOperation", func(t *testing.T) {
		attr := FSOperation("resolve")
		assert.Equal(t, AttrOperation, string(attr.Key))
		assert.Equal(t, "resolve", attr.Value.AsString())
	})

	t.Run("FSMount", func(t *testing.T) {
		attr := FSMount("docs")
		assert.Equal(t, AttrMount, string(attr.Key))
		assert.Equal(t, "docs", attr.Value.AsString())
	})

	t.Run("FSPath", func(t *testing.T) {
		attr := FSPath("guides/setup.md")
		assert.Equal(t, AttrPath, string(attr.Key))
		assert.Equal(t, "guides/setup.md", attr.Value.AsString())
	})

	t.Run("FSKind", func(t *testing.T) {
		attr := FSKind("directory")
		assert.Equal(t, AttrKind, string(attr.Key))
		assert.Equal(t, "directory", attr.Value.AsString())
	})

	t.Run("FSSize", func(t *testing.T) {
		attr := FSSize(1048576)
		assert.Equal(t, AttrSize, string(attr.Key))
		assert.Equal(t, int64(1048576), attr.Value.AsInt64())
	})

	t.Run("FSEntries", func(t *testing.T) {
		attr := FSEntries(42)
		assert.Equal(t, AttrEntries, string(attr.Key))
		assert.Equal(t, int64(42), attr.Value.AsInt64())
	})

	t.Run("FSDepth", func(t *testing.T) {
		attr := FSDepth(12)
		assert.Equal(t, AttrDepth, string(attr.Key))
		assert.Equal(t, int64(12), attr.Value.AsInt64())
	})

	t.Run("FSOutcome", func(t *testing.T) {
		attr := FSOutcome("traversal_rejected")
		assert.Equal(t, AttrOutcome, string(attr.Key))
		assert.Equal(t, "traversal_rejected", attr.Value.AsString())
	})

	t.Run("RegistryMounts", func(t *testing.T) {
		attr := RegistryMounts(3)
		assert.Equal(t, AttrMounts, string(attr.Key))
		assert.Equal(t, int64(3), attr.Value.AsInt64())
	})
}

func TestStartVFSSpan(t *testing.T) {
	ctx := context.Background()

	newCtx, span := StartVFSSpan(ctx, "resolve", "docs", "a/b.md")
	require.NotNil(t, newCtx)
	require.NotNil(t, span)
	span.End()

	// With additional attributes
	newCtx2, span2 := StartVFSSpan(ctx, "list", "docs", ".", FSEntries(10))
	require.NotNil(t, newCtx2)
	require.NotNil(t, span2)
	span2.End()
}
