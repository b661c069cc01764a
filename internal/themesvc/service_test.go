package themesvc

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/telemetry"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

func TestRoundTripEveryFormat(t *testing.T) {
	svc := New(zerolog.Nop())
	ctx := context.Background()
	for _, format := range Formats() {
		for name, doc := range theme.Builtins() {
			t.Run(string(format)+"/"+name, func(t *testing.T) {
				text, err := svc.Export(ctx, format, doc, name)
				require.NoError(t, err)

				got, err := svc.Import(ctx, format, text)
				require.NoError(t, err)
				assert.Equal(t, doc, got)
			})
		}
	}
}

func TestImportRejectsInvalid(t *testing.T) {
	svc := New(zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Import(ctx, FormatJSON, `{"paletteDark": {}, "typography": {}}`)
	require.Error(t, err)
	assert.Equal(t, errdef.CodeValidation, errdef.CodeOf(err))
	assert.Equal(t, "paletteLight", errdef.FieldOf(err))

	_, err = svc.Import(ctx, FormatYAML, "paletteLight:\n  primary: not-a-color\npaletteDark: {}\ntypography: {}\n")
	require.Error(t, err)
	assert.Equal(t, "paletteLight.Primary", errdef.FieldOf(err))

	for _, format := range Formats() {
		_, err = svc.Import(ctx, format, "  \n")
		assert.Equal(t, errdef.CodeInvalidFormat, errdef.CodeOf(err), format)
	}

	_, err = svc.Import(ctx, FormatTOML, "paletteLight = [")
	assert.Equal(t, errdef.CodeInvalidFormat, errdef.CodeOf(err))

	_, err = svc.Import(ctx, Format("xml"), "<theme/>")
	assert.Equal(t, errdef.CodeInvalidFormat, errdef.CodeOf(err))
}

func TestImportSourceIsLenient(t *testing.T) {
	doc, err := New(zerolog.Nop()).Import(context.Background(), FormatSource, "not really a theme")
	require.NoError(t, err)
	assert.Equal(t, theme.Baseline(), doc)
}

func TestExportRejects(t *testing.T) {
	svc := New(zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Export(ctx, FormatSource, theme.Cashable(), " ")
	assert.Equal(t, errdef.CodeInvalidFormat, errdef.CodeOf(err))

	_, err = svc.Export(ctx, FormatJSON, nil, "x")
	assert.Equal(t, errdef.CodeValidation, errdef.CodeOf(err))
	assert.Equal(t, "document", errdef.FieldOf(err))
}

func TestExportTimestampsAndNamespace(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := New(zerolog.Nop(), WithNamespace("Acme"), WithTimestamps(func() time.Time { return at }))
	text, err := svc.Export(context.Background(), FormatSource, theme.Cashable(), "Stamped")
	require.NoError(t, err)
	assert.Contains(t, text, "namespace Acme;")
	assert.Contains(t, text, "Generated on 2025-01-02 03:04:05 UTC")
}

func TestCollectionRoundTrip(t *testing.T) {
	var logs bytes.Buffer
	svc := New(zerolog.New(&logs))
	ctx := context.Background()

	text, err := svc.ExportCollection(ctx, theme.Builtins())
	require.NoError(t, err)

	env, err := svc.ImportCollection(ctx, text)
	require.NoError(t, err)
	assert.Equal(t, theme.Builtins(), env.Themes)
	assert.Empty(t, env.Skipped)
	assert.Contains(t, logs.String(), "Imported 4 themes.")
}

func TestImportCollectionReportsSkips(t *testing.T) {
	var logs bytes.Buffer
	svc := New(zerolog.New(&logs))

	env, err := svc.ImportCollection(context.Background(), `{"themes": {
		"good": {"paletteLight": {}, "paletteDark": {}, "typography": {}},
		"bad": {"paletteLight": {}, "typography": {}}
	}}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"good"}, env.Names())
	assert.Equal(t, []string{"bad"}, env.Skipped)
	assert.Contains(t, logs.String(), `"theme":"bad"`)
	assert.Contains(t, logs.String(), `"field":"paletteDark"`)

	_, err = svc.ImportCollection(context.Background(), `{"other": {}}`)
	assert.Equal(t, errdef.CodeInvalidFormat, errdef.CodeOf(err))
}

func TestExportCollectionRejectsInvalidEntry(t *testing.T) {
	docs := theme.Builtins()
	docs["broken"] = &theme.Document{}
	_, err := New(zerolog.Nop()).ExportCollection(context.Background(), docs)
	require.Error(t, err)
	assert.Equal(t, errdef.CodeValidation, errdef.CodeOf(err))
	assert.Contains(t, err.Error(), `theme "broken"`)
}

func TestGuardConvertsPanic(t *testing.T) {
	svc := New(zerolog.Nop())
	err := func() (err error) {
		defer svc.guard("test", &err)
		panic("boom")
	}()
	require.Error(t, err)
	assert.Equal(t, errdef.CodeParse, errdef.CodeOf(err))
	assert.Contains(t, err.Error(), "boom")
}

func TestOperationsAreTraced(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	inst, err := telemetry.New(telemetry.Config{ServiceName: "test"}, telemetry.WithSpanProcessor(recorder))
	require.NoError(t, err)
	t.Cleanup(func() { _ = inst.Shutdown(context.Background()) })

	svc := New(zerolog.Nop(), WithTelemetry(inst))
	ctx := context.Background()
	text, err := svc.Export(ctx, FormatJSON, theme.Cashable(), "c")
	require.NoError(t, err)
	_, err = svc.Import(ctx, FormatJSON, text)
	require.NoError(t, err)
	_, err = svc.Import(ctx, FormatJSON, "{}")
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, "themekit.export", spans[0].Name())
	assert.Equal(t, "themekit.import", spans[1].Name())
	assert.Equal(t, codes.Ok, spans[1].Status().Code)
	assert.Equal(t, codes.Error, spans[2].Status().Code)
}

