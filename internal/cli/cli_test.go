package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/jsoncodec"
	"github.com/unkn0wn-root/themekit/internal/telemetry"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

type result struct {
	out    string
	errOut string
	err    error
}

func execute(t *testing.T, opts Options, args ...string) result {
	t.Helper()
	if opts.Getenv == nil {
		opts.Getenv = func(string) string { return "" }
	}
	cmd := NewRootCommand(opts)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

// isolate points the configuration directory at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("THEMEKIT_CONFIG_DIR", dir)
	t.Setenv("THEMEKIT_EXPORT_FORMAT", "")
	t.Setenv("THEMEKIT_LOG_LEVEL", "")
	t.Setenv("CLICOLOR_FORCE", "")
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func builtinJSON(t *testing.T, doc *theme.Document) string {
	t.Helper()
	text, err := jsoncodec.Encode(doc)
	require.NoError(t, err)
	return text
}

func TestBuiltinListsNames(t *testing.T) {
	isolate(t)
	res := execute(t, Options{}, "builtin")
	require.NoError(t, res.err)
	assert.Equal(t, strings.Join(theme.BuiltinNames, "\n")+"\n", res.out)
}

func TestBuiltinExportsSource(t *testing.T) {
	isolate(t)
	res := execute(t, Options{}, "builtin", "cool-minimal-theme", "--to", "cs")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "namespace Themes;")
	assert.Contains(t, res.out, `/// Theme "Cool Minimal Theme".`)
	assert.Contains(t, res.out, "public static class CoolMinimalThemeTheme")
	assert.NotContains(t, res.out, "Generated on")
}

func TestBuiltinUnknownName(t *testing.T) {
	isolate(t)
	res := execute(t, Options{}, "builtin", "nope")
	require.Error(t, res.err)
	assert.True(t, errdef.Is(res.err, errdef.CodeNotFound))
}

func TestExportFormatPrecedence(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "settings.toml"), "[export]\nformat = \"toml\"\ntimestamp = true\n")

	res := execute(t, Options{}, "builtin", theme.DefaultThemeName)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "[paletteLight]")

	t.Setenv("THEMEKIT_EXPORT_FORMAT", "yaml")
	res = execute(t, Options{}, "builtin", theme.DefaultThemeName)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "paletteLight:\n")

	now := func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	res = execute(t, Options{Now: now}, "builtin", theme.DefaultThemeName, "--to", "source")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "/// Generated on 2024-05-01 12:00:00 UTC.")
}

func TestConvertRoundTrip(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	jsonPath := writeFile(t, filepath.Join(work, "ocean.json"), builtinJSON(t, theme.WarmMinimal()))
	csPath := filepath.Join(work, "out", "ocean.cs")

	res := execute(t, Options{}, "convert", jsonPath, "--to", "source", "-o", csPath)
	require.NoError(t, res.err)
	assert.Equal(t, "Wrote "+csPath+"\n", res.out)

	data, err := os.ReadFile(csPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `/// Theme "ocean".`)

	res = execute(t, Options{}, "convert", csPath, "--to", "json")
	require.NoError(t, res.err)
	back, err := jsoncodec.Decode(res.out)
	require.NoError(t, err)
	assert.Equal(t, theme.WarmMinimal(), back)
}

func TestConvertNameAndClipboard(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	path := writeFile(t, filepath.Join(work, "theme.json"), builtinJSON(t, theme.Cashable()))

	var copied string
	opts := Options{Clipboard: func(s string) error { copied = s; return nil }}
	res := execute(t, opts, "convert", path, "--to", "source", "--name", "Brand", "--clipboard")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "public static class BrandTheme")
	assert.Equal(t, res.out, copied)
}

func TestConvertHighlight(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	path := writeFile(t, filepath.Join(work, "theme.json"), builtinJSON(t, theme.Cashable()))

	res := execute(t, Options{}, "convert", path, "--to", "source", "--highlight")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "\x1b[")
	assert.Contains(t, res.out, "MudTheme")
}

func TestConvertNeedsKnownFormat(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	path := writeFile(t, filepath.Join(work, "theme.txt"), "{}")

	res := execute(t, Options{}, "convert", path, "--to", "json")
	require.Error(t, res.err)
	assert.True(t, errdef.Is(res.err, errdef.CodeInvalidFormat))
	assert.Contains(t, res.err.Error(), "--from")
}

func TestValidate(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	good := writeFile(t, filepath.Join(work, "good.json"), builtinJSON(t, theme.Cashable()))
	bad := writeFile(t, filepath.Join(work, "bad.json"), `{"paletteLight": {"primary": "#12"}}`)

	res := execute(t, Options{}, "validate", good)
	require.NoError(t, res.err)
	assert.Equal(t, "valid\n", res.out)

	res = execute(t, Options{}, "validate", bad)
	require.Error(t, res.err)
	assert.True(t, strings.HasPrefix(res.out, "invalid: "))
}

func TestFailedCommandFlushesSpans(t *testing.T) {
	isolate(t)
	bad := writeFile(t, filepath.Join(t.TempDir(), "bad.json"), `{"paletteLight": {"primary": "#12"}}`)
	exporter := tracetest.NewInMemoryExporter()

	res := execute(t, Options{Telemetry: []telemetry.Option{telemetry.WithExporter(exporter)}}, "validate", bad)
	require.Error(t, res.err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "themekit.import", spans[0].Name)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
}

func TestImportCollection(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	envelope := fmt.Sprintf(
		`{"themes": {"Ocean Blue": %s, "Broken": {"paletteLight": {"primary": "nope"}}}}`,
		builtinJSON(t, theme.CoolMinimal()),
	)
	path := writeFile(t, filepath.Join(work, "themes.json"), envelope)
	outDir := filepath.Join(work, "imported")

	res := execute(t, Options{}, "import", path, "--out", outDir)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Imported 1 theme. Skipped 1 invalid theme: Broken")
	assert.Contains(t, res.out, "skipped Broken:")

	data, err := os.ReadFile(filepath.Join(outDir, "ocean-blue.json"))
	require.NoError(t, err)
	doc, err := jsoncodec.Decode(string(data))
	require.NoError(t, err)
	assert.Equal(t, theme.CoolMinimal(), doc)
}

func TestImportRejectsBareTheme(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	path := writeFile(t, filepath.Join(work, "one.json"), builtinJSON(t, theme.Cashable()))

	res := execute(t, Options{}, "import", path)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "Invalid theme collection format")
}

func TestListIncludesUserThemes(t *testing.T) {
	isolate(t)
	themes := t.TempDir()
	writeFile(t, filepath.Join(themes, "night-owl.json"), builtinJSON(t, theme.UltraMinimal()))

	res := execute(t, Options{}, "list", "--themes-dir", themes)
	require.NoError(t, res.err)
	lines := strings.Split(strings.TrimSpace(res.out), "\n")
	require.Len(t, lines, len(theme.BuiltinNames)+2)
	assert.Contains(t, lines[0], "KEY")
	assert.Contains(t, res.out, "night-owl")
	assert.Contains(t, res.out, "Night Owl")
	assert.Contains(t, res.out, "user")
}

func TestDiff(t *testing.T) {
	isolate(t)
	res := execute(t, Options{}, "diff", theme.DefaultThemeName, "cashabletheme")
	require.NoError(t, res.err)
	assert.Equal(t, "no differences\n", res.out)

	res = execute(t, Options{}, "diff", theme.DefaultThemeName, theme.CoolMinimalName)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "--- "+theme.DefaultThemeName)
	assert.Contains(t, res.out, "+++ "+theme.CoolMinimalName)
	assert.Contains(t, res.out, "@@")
}

func TestDiffUnknownTheme(t *testing.T) {
	isolate(t)
	res := execute(t, Options{}, "diff", theme.DefaultThemeName, "missing-theme")
	require.Error(t, res.err)
	assert.True(t, errdef.Is(res.err, errdef.CodeNotFound))
}

func TestPreview(t *testing.T) {
	isolate(t)
	res := execute(t, Options{}, "preview", theme.CoolMinimalName, "--dark")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.out, theme.CoolMinimalName+"\n"))
	assert.Contains(t, res.out, "Palette (dark)")
	assert.Contains(t, res.out, string(theme.CoolMinimal().PaletteDark.Primary))

	res = execute(t, Options{}, "preview", theme.CoolMinimalName)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Palette (light)")
}

func TestRunScript(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	writeFile(t, filepath.Join(work, "warm.json"), builtinJSON(t, theme.WarmMinimal()))
	script := writeFile(t, filepath.Join(work, "edit.yaml"), `
steps:
  - action: change
    name: Cool Minimal Theme
  - action: set
    path: paletteLight.Primary
    value: "#1e88e5"
  - action: save
    name: Ocean
  - action: save
    name: Warm Copy
    file: warm.json
  - action: dark
    dark: true
  - action: language
    code: nl-NL
`)
	outDir := filepath.Join(work, "export")

	res := execute(t, Options{}, "run", script, "--export", outDir, "--to", "json")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Current: Cool Minimal Theme (dark)\n")
	assert.Contains(t, res.out, "Language: nl-NL\n")
	assert.Contains(t, res.out, "Collection (6):")
	assert.Contains(t, res.out, "Actions: 6\n")

	data, err := os.ReadFile(filepath.Join(outDir, "ocean.json"))
	require.NoError(t, err)
	doc, err := jsoncodec.Decode(string(data))
	require.NoError(t, err)
	assert.Equal(t, "#1E88E5", string(doc.PaletteLight.Primary))
	assert.FileExists(t, filepath.Join(outDir, "warm-copy.json"))
}

func TestRunScriptStopsAtFailure(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	script := writeFile(t, filepath.Join(work, "bad.yaml"), `
steps:
  - action: dark
    dark: true
  - action: change
    name: Nowhere
`)

	res := execute(t, Options{}, "run", script)
	require.Error(t, res.err)
	assert.True(t, errdef.Is(res.err, errdef.CodeNotFound))
	assert.Contains(t, res.out, "Actions: 1\n")
}

func TestGlobalFlags(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "settings.json"), `{"export": {"format": "yaml"}}`)

	res := execute(t, Options{}, "--config-dir", dir, "--log-level", "debug", "--log-format", "json", "builtin", theme.DefaultThemeName)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "paletteLight:\n")
	assert.Contains(t, res.errOut, `"message":"settings loaded"`)

	res = execute(t, Options{}, "--log-format", "xml", "builtin")
	require.Error(t, res.err)
	assert.True(t, errdef.Is(res.err, errdef.CodeConfig))
}

func TestWatchRebuildsOnChange(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	src := writeFile(t, filepath.Join(work, "ocean.json"), builtinJSON(t, theme.Cashable()))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(src, old, old))
	out := filepath.Join(work, "ocean.yaml")

	cmd := NewRootCommand(Options{Getenv: func(string) string { return "" }})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"watch", src, "--to", "yaml", "-o", out, "--interval", "10ms"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(out)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)

	warm := theme.WarmMinimal()
	require.NoError(t, os.WriteFile(src, []byte(builtinJSON(t, warm)), 0o644))
	want := string(warm.PaletteLight.Primary)
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && strings.Contains(string(data), want)
	}, 5*time.Second, 10*time.Millisecond, "expected %s in rebuilt output", want)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchNeedsOut(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	src := writeFile(t, filepath.Join(work, "ocean.json"), builtinJSON(t, theme.Cashable()))

	res := execute(t, Options{}, "watch", src)
	require.Error(t, res.err)
	assert.True(t, errdef.Is(res.err, errdef.CodeConfig))
}

func TestHistoryRecordsRuns(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	script := writeFile(t, filepath.Join(work, "dark.yaml"), "steps:\n  - action: dark\n    dark: true\n  - action: reset\n")

	res := execute(t, Options{}, "history")
	require.NoError(t, res.err)
	assert.Equal(t, "No history\n", res.out)

	require.NoError(t, execute(t, Options{}, "run", script).err)
	require.NoError(t, execute(t, Options{}, "run", script, "--no-journal").err)

	res = execute(t, Options{}, "history", "--limit", "0")
	require.NoError(t, res.err)
	lines := strings.Split(strings.TrimSpace(res.out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ACTION")
	assert.Contains(t, res.out, "reset")
	assert.Contains(t, res.out, "dark")

	res = execute(t, Options{}, "history", "--clear")
	require.NoError(t, res.err)
	res = execute(t, Options{}, "history")
	require.NoError(t, res.err)
	assert.Equal(t, "No history\n", res.out)
}
