package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/themekit/internal/config"
	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/theme"
	"github.com/unkn0wn-root/themekit/internal/themesvc"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in and user theme files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := a.catalog(cmd)
			if err != nil {
				a.logger.Warn().Err(err).Msg("some theme files were skipped")
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tORIGIN\tFORMAT\tPATH")
			for _, def := range catalog.All() {
				format := string(def.Format)
				if format == "" {
					format = "-"
				}
				path := def.Path
				if path == "" {
					path = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", def.Key, def.DisplayName, def.Origin, format, path)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringSlice("themes-dir", nil, "Theme directories to scan (repeatable)")
	return cmd
}

// catalog loads built-ins plus user themes from --themes-dir, the settings
// file, or the default themes directory, in that order of preference.
func (a *app) catalog(cmd *cobra.Command) (themesvc.Catalog, error) {
	dirs := a.settings.ThemeDirs
	if f := cmd.Flags().Lookup("themes-dir"); f != nil && f.Changed {
		dirs, _ = cmd.Flags().GetStringSlice("themes-dir")
	}
	if len(dirs) == 0 {
		dirs = []string{config.ThemesDir()}
	}
	return themesvc.LoadCatalog(dirs)
}

// resolveTheme finds a theme by catalog key or name, falling back to a
// file path.
func (a *app) resolveTheme(cmd *cobra.Command, ref, formatName string) (*theme.Document, string, error) {
	catalog, err := a.catalog(cmd)
	if err != nil {
		a.logger.Debug().Err(err).Msg("catalog incomplete")
	}
	if def, ok := catalog.Lookup(ref); ok {
		return theme.Clone(def.Doc), def.DisplayName, nil
	}
	if ref != stdinPath {
		if _, err := os.Stat(ref); err != nil {
			return nil, "", errdef.Wrap(errdef.CodeNotFound, err, "no theme or file named %q", ref)
		}
	}
	doc, _, name, err := a.loadTheme(cmd, ref, formatName)
	if err != nil {
		return nil, "", err
	}
	return doc, name, nil
}
