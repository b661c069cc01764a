package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/themekit/internal/config"
	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/store"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run SCRIPT",
		Short: "Replay a YAML action script against the theme editor state",
		Long: heredoc.Doc(`
			Replay the steps of SCRIPT against a fresh editor state holding the
			built-in themes. Steps run in order and stop at the first failure.
			Files named by update and save steps are resolved relative to the
			script.

			  steps:
			    - action: change
			      name: Cool Minimal Theme
			    - action: set
			      path: paletteLight.Primary
			      value: "#1E88E5"
			    - action: save
			      name: Ocean
			    - action: update
			      file: ocean.toml

			With --export every collection entry is written to DIR.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errdef.Wrap(errdef.CodeFilesystem, err, "read %s", args[0])
			}
			script, err := store.ParseScript(data)
			if err != nil {
				return err
			}

			st := store.New(a.logger, a.initialState())
			base := filepath.Dir(args[0])
			loader := func(file, format string) (*theme.Document, error) {
				if !filepath.IsAbs(file) {
					file = filepath.Join(base, file)
				}
				doc, _, _, err := a.loadTheme(cmd, file, format)
				return doc, err
			}

			final, playErr := store.Play(st, script, loader)
			writeSummary(cmd, final, len(st.History()))
			if noJournal, _ := cmd.Flags().GetBool("no-journal"); !noJournal {
				journal := store.NewJournal(config.HistoryPath(), 0)
				if err := journal.Append(st.History()...); err != nil {
					a.logger.Warn().Err(err).Str("path", journal.Path()).Msg("journal not saved")
				}
			}
			if playErr != nil {
				return playErr
			}

			dir, _ := cmd.Flags().GetString("export")
			if dir == "" {
				return nil
			}
			format, err := a.exportFormat(cmd)
			if err != nil {
				return err
			}
			for _, name := range final.Names() {
				path, err := a.writeTheme(cmd, dir, name, final.Collection[name], format)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s -> %s\n", name, path)
			}
			return nil
		},
	}
	cmd.Flags().String("export", "", "Directory to write the final collection to")
	cmd.Flags().String("to", "", "Format for --export (default from settings)")
	cmd.Flags().Bool("no-journal", false, "Do not record the replayed actions in the history journal")
	return cmd
}

func newHistoryCmd(_ *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the actions recorded by previous runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			journal := store.NewJournal(config.HistoryPath(), 0)
			if wipe, _ := cmd.Flags().GetBool("clear"); wipe {
				if err := journal.Clear(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
				return nil
			}
			if err := journal.Load(); err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")
			entries := journal.Entries(limit)
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tACTION\tTARGET\tCURRENT\tID")
			for _, rec := range entries {
				target := rec.Target
				if target == "" {
					target = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					rec.At.Local().Format(time.DateTime), rec.Action, target, rec.Current, rec.ID)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Int("limit", 20, "Number of entries to show (0 for all)")
	cmd.Flags().Bool("clear", false, "Delete the recorded history")
	return cmd
}

// initialState is the built-in collection with the preferences from settings.
func (a *app) initialState() store.State {
	s := store.Initial()
	s.DarkMode = a.settings.DarkMode
	if store.IsSupportedLanguage(a.settings.Language) {
		s.Language = a.settings.Language
	}
	if name := strings.TrimSpace(a.settings.DefaultTheme); name != "" && s.Has(name) {
		s = store.Reduce(s, store.ChangeTheme{Name: name})
	}
	return s
}

func writeSummary(cmd *cobra.Command, s store.State, actions int) {
	w := cmd.OutOrStdout()
	mode := "light"
	if s.DarkMode {
		mode = "dark"
	}
	fmt.Fprintf(w, "Current: %s (%s)\n", s.CurrentName, mode)
	fmt.Fprintf(w, "Language: %s\n", s.Language)
	names := s.Names()
	fmt.Fprintf(w, "Collection (%d): %s\n", len(names), strings.Join(names, ", "))
	fmt.Fprintf(w, "Actions: %d\n", actions)
}
