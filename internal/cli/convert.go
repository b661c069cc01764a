package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/aymanbagabas/go-udiff"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/theme"
	"github.com/unkn0wn-root/themekit/internal/themesvc"
)

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert a theme between formats",
		Long: heredoc.Doc(`
			Import FILE and export it in another format. The input format is
			taken from --from or the file extension; "-" reads standard input.
		`),
		Example: heredoc.Doc(`
			themekit convert ocean.json --to source --name Ocean
			themekit convert ocean.cs --to yaml -o ocean.yaml
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			doc, _, name, err := a.loadTheme(cmd, args[0], from)
			if err != nil {
				return err
			}
			to, err := a.exportFormat(cmd)
			if err != nil {
				return err
			}
			if override, _ := cmd.Flags().GetString("name"); strings.TrimSpace(override) != "" {
				name = override
			}
			out, err := a.svc.Export(cmd.Context(), to, doc, name)
			if err != nil {
				return err
			}
			return a.emit(cmd, out, to, emitFlags(cmd))
		},
	}
	cmd.Flags().String("from", "", "Input format: json, source, toml, yaml")
	cmd.Flags().String("to", "", "Output format (default from settings)")
	cmd.Flags().String("name", "", "Theme name used in generated source")
	addEmitFlags(cmd)
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that a theme file is complete and well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			if _, _, _, err := a.loadTheme(cmd, args[0], from); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "invalid: %v\n", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	cmd.Flags().String("from", "", "Input format: json, source, toml, yaml")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a multi-theme collection",
		Long: heredoc.Doc(`
			Import a JSON collection of the form {"themes": {"Name": {...}}}.
			Invalid entries are skipped and listed; the import fails only when
			no entry is usable. With --out every accepted theme is written to
			DIR as JSON.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			env, err := a.svc.ImportCollection(cmd.Context(), text)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, env.Summary())
			for _, name := range env.Skipped {
				fmt.Fprintf(w, "  skipped %s: %v\n", name, env.Problems[name])
			}

			dir, _ := cmd.Flags().GetString("out")
			if dir == "" {
				for _, name := range env.Names() {
					fmt.Fprintf(w, "  %s\n", name)
				}
				return nil
			}
			for _, name := range env.Names() {
				path, err := a.writeTheme(cmd, dir, name, env.Themes[name], themesvc.FormatJSON)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "  %s -> %s\n", name, path)
			}
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "", "Directory to write accepted themes to")
	return cmd
}

func newBuiltinCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "builtin [NAME]",
		Short: "List the built-in themes or export one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range theme.BuiltinNames {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			name, doc, err := findBuiltin(args[0])
			if err != nil {
				return err
			}
			to, err := a.exportFormat(cmd)
			if err != nil {
				return err
			}
			out, err := a.svc.Export(cmd.Context(), to, doc, name)
			if err != nil {
				return err
			}
			return a.emit(cmd, out, to, emitFlags(cmd))
		},
	}
	cmd.Flags().String("to", "", "Output format (default from settings)")
	addEmitFlags(cmd)
	return cmd
}

// findBuiltin matches a built-in by exact name, case-insensitive name or slug.
func findBuiltin(query string) (string, *theme.Document, error) {
	query = strings.TrimSpace(query)
	for _, name := range theme.BuiltinNames {
		if strings.EqualFold(name, query) || themesvc.Slug(name) == themesvc.Slug(query) {
			doc, _ := theme.Builtin(name)
			return name, doc, nil
		}
	}
	names := append([]string(nil), theme.BuiltinNames...)
	sort.Strings(names)
	return "", nil, errdef.New(
		errdef.CodeNotFound,
		"no built-in theme %q (have %s)",
		query,
		strings.Join(names, ", "),
	)
}

func newDiffCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff A B",
		Short: "Show a unified diff of two themes' generated source",
		Long: heredoc.Doc(`
			Compare two themes by the source they generate. A and B are
			catalog names (see "themekit list") or theme files.
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			var rendered [2]string
			for i, path := range args {
				doc, _, err := a.resolveTheme(cmd, path, from)
				if err != nil {
					return err
				}
				// One shared class name so only theme values show up.
				out, err := a.svc.Export(cmd.Context(), themesvc.FormatSource, doc, "Theme")
				if err != nil {
					return err
				}
				rendered[i] = out + "\n"
			}
			diff := udiff.Unified(args[0], args[1], rendered[0], rendered[1])
			if diff == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no differences")
				return nil
			}
			return a.emit(cmd, diff, "", emitOptions{})
		},
	}
	cmd.Flags().String("from", "", "Input format for both files (default from extension)")
	return cmd
}
