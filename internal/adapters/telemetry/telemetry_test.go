package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/bundler/internal/adapters/telemetry"
	"go.trai.ch/bundler/internal/core/domain"
	"go.trai.ch/bundler/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// recorder keeps every finished span.
type recorder struct {
	spans []sdktrace.ReadOnlySpan
}

func (r *recorder) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (r *recorder) OnEnd(s sdktrace.ReadOnlySpan) {
	r.spans = append(r.spans, s)
}

func (r *recorder) ForceFlush(context.Context) error {
	return nil
}

func (r *recorder) Shutdown(context.Context) error {
	return nil
}

func TestOTelTracer_Attributes(t *testing.T) {
	rec := &recorder{}
	tracer := telemetry.NewOTelTracer("test", rec)

	_, span := tracer.Start(context.Background(), "build")
	span.SetAttribute("target", domain.TargetLinux)
	span.SetAttribute("exit_code", 0)
	span.SetAttribute("size", int64(42))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("inspected", true)
	span.SetAttribute("argv", []string{"pyinstaller", "--onefile"})
	span.SetAttribute("other", struct{ A int }{A: 1})
	span.End()

	require.Len(t, rec.spans, 1)
	got := map[attribute.Key]attribute.Value{}
	for _, kv := range rec.spans[0].Attributes() {
		got[kv.Key] = kv.Value
	}

	assert.Equal(t, "Linux", got["target"].AsString())
	assert.Equal(t, int64(0), got["exit_code"].AsInt64())
	assert.Equal(t, int64(42), got["size"].AsInt64())
	assert.InDelta(t, 0.5, got["ratio"].AsFloat64(), 0.0001)
	assert.True(t, got["inspected"].AsBool())
	assert.Equal(t, []string{"pyinstaller", "--onefile"}, got["argv"].AsStringSlice())
	assert.Equal(t, "{1}", got["other"].AsString())

	require.NoError(t, tracer.Shutdown(context.Background()))
}

func TestOTelSpan_RecordError(t *testing.T) {
	rec := &recorder{}
	tracer := telemetry.NewOTelTracer("test", rec)

	_, span := tracer.Start(context.Background(), "build")
	span.RecordError(nil)
	span.RecordError(errors.New("exit status 1"))
	span.End()

	require.Len(t, rec.spans, 1)
	assert.Equal(t, codes.Error, rec.spans[0].Status().Code)
	assert.Equal(t, "exit status 1", rec.spans[0].Status().Description)
}

func TestLogBridge_LogsRootSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var infos []string
	mockLogger.EXPECT().Info(gomock.Any()).Do(func(msg string) { infos = append(infos, msg) }).Times(1)

	tracer := telemetry.NewOTelTracer("test", telemetry.NewLogBridge(mockLogger))

	ctx, root := tracer.Start(context.Background(), "build Linux")
	_, child := tracer.Start(ctx, "execute pyinstaller")
	child.End()
	root.End()

	require.Len(t, infos, 1)
	assert.Regexp(t, `^build Linux finished in \d+\.\ds$`, infos[0])
}

func TestLogBridge_FailedSpanWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var warning string
	mockLogger.EXPECT().Warn(gomock.Any()).Do(func(msg string) { warning = msg }).Times(1)

	tracer := telemetry.NewOTelTracer("test", telemetry.NewLogBridge(mockLogger))

	_, span := tracer.Start(context.Background(), "build Linux")
	span.RecordError(errors.New("exit status 1"))
	span.End()

	assert.Regexp(t, `^build Linux failed after \d+\.\ds$`, warning)
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	got, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, got)
	require.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}
