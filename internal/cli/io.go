package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/quick"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/themekit/internal/config"
	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/source"
	"github.com/unkn0wn-root/themekit/internal/theme"
	"github.com/unkn0wn-root/themekit/internal/themesvc"
)

const stdinPath = "-"

var lexers = map[themesvc.Format]string{
	themesvc.FormatJSON:   "json",
	themesvc.FormatSource: "c#",
	themesvc.FormatTOML:   "toml",
	themesvc.FormatYAML:   "yaml",
}

// readInput reads path, or standard input when path is "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errdef.Wrap(errdef.CodeFilesystem, err, "read stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errdef.Wrap(errdef.CodeFilesystem, err, "read %s", path)
	}
	return string(data), nil
}

// inputFormat uses the explicit name when given and otherwise the file
// extension.
func inputFormat(name, path string) (themesvc.Format, error) {
	if strings.TrimSpace(name) != "" {
		return themesvc.ParseFormat(name)
	}
	if format, ok := themesvc.FormatForPath(path); ok {
		return format, nil
	}
	return "", errdef.New(errdef.CodeInvalidFormat, "cannot infer the format of %s; pass --from", path)
}

// loadTheme reads and imports one theme file.
func (a *app) loadTheme(cmd *cobra.Command, path, formatName string) (*theme.Document, themesvc.Format, string, error) {
	format, err := inputFormat(formatName, path)
	if err != nil {
		return nil, "", "", err
	}
	text, err := readInput(cmd, path)
	if err != nil {
		return nil, "", "", err
	}
	doc, err := a.svc.Import(cmd.Context(), format, text)
	if err != nil {
		return nil, "", "", err
	}
	return doc, format, themeName(path, format, text), nil
}

// themeName picks a display name: the generated-source header when there is
// one, else the file name without extension.
func themeName(path string, format themesvc.Format, text string) string {
	if format == themesvc.FormatSource {
		if name, ok := source.NameFromHeader(text); ok {
			return name
		}
	}
	if path == stdinPath || path == "" {
		return "Custom"
	}
	base := filepath.Base(path)
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
		return stem
	}
	return "Custom"
}

func (a *app) exportFormat(cmd *cobra.Command) (themesvc.Format, error) {
	return themesvc.ParseFormat(a.setting(cmd, "to", "export-format", a.settings.Export.Format))
}

type emitOptions struct {
	out       string
	highlight bool
	clipboard bool
}

func addEmitFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "o", "", "Write the result to this file instead of stdout")
	cmd.Flags().Bool("highlight", false, "Syntax-highlight the output")
	cmd.Flags().Bool("clipboard", false, "Copy the result to the clipboard")
}

func emitFlags(cmd *cobra.Command) emitOptions {
	out, _ := cmd.Flags().GetString("out")
	highlight, _ := cmd.Flags().GetBool("highlight")
	copyOut, _ := cmd.Flags().GetBool("clipboard")
	return emitOptions{out: out, highlight: highlight, clipboard: copyOut}
}

// emit writes text to a file or stdout, optionally copying it to the
// clipboard. Highlighting only applies to stdout.
func (a *app) emit(cmd *cobra.Command, text string, format themesvc.Format, opts emitOptions) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if opts.clipboard {
		if err := a.copyToClipboard(text); err != nil {
			return errdef.Wrap(errdef.CodeFilesystem, err, "copy to clipboard")
		}
		a.logger.Info().Int("bytes", len(text)).Msg("copied to clipboard")
	}

	if opts.out != "" {
		if err := os.MkdirAll(filepath.Dir(opts.out), 0o755); err != nil {
			return errdef.Wrap(errdef.CodeFilesystem, err, "create %s", filepath.Dir(opts.out))
		}
		if err := config.WriteFileAtomic(opts.out, []byte(text), 0o644); err != nil {
			return errdef.Wrap(errdef.CodeFilesystem, err, "write %s", opts.out)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.out)
		return nil
	}

	w := cmd.OutOrStdout()
	if opts.highlight {
		highlighted, err := highlight(text, format, a.settings.Export.HighlightStyle)
		if err != nil {
			a.logger.Warn().Err(err).Msg("highlight failed; writing plain text")
		} else {
			text = highlighted
		}
	}
	_, err := io.WriteString(w, text)
	return err
}

func highlight(text string, format themesvc.Format, style string) (string, error) {
	lexer, ok := lexers[format]
	if !ok {
		return text, nil
	}
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, text, lexer, "terminal256", style); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (a *app) copyToClipboard(text string) error {
	if a.opts.Clipboard != nil {
		return a.opts.Clipboard(text)
	}
	return clipboard.WriteAll(text)
}

// writeTheme exports doc into dir as <slug>.<ext> and returns the path.
func (a *app) writeTheme(cmd *cobra.Command, dir, name string, doc *theme.Document, format themesvc.Format) (string, error) {
	out, err := a.svc.Export(cmd.Context(), format, doc, name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errdef.Wrap(errdef.CodeFilesystem, err, "create %s", dir)
	}
	slug := themesvc.Slug(name)
	if slug == "" {
		slug = "theme"
	}
	path := filepath.Join(dir, slug+format.Extension())
	if err := config.WriteFileAtomic(path, []byte(out+"\n"), 0o644); err != nil {
		return "", errdef.Wrap(errdef.CodeFilesystem, err, "write %s", path)
	}
	return path, nil
}
