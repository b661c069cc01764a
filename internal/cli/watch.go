package cli

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/themesvc"
	"github.com/unkn0wn-root/themekit/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-export a theme file every time it changes",
		Long: heredoc.Doc(`
			Convert FILE once, then poll it and convert again after every
			change until interrupted. A change that no longer imports is
			reported and the last good output is kept.
		`),
		Example: "  themekit watch ocean.toml --to source -o Themes/OceanTheme.cs",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			from, _ := cmd.Flags().GetString("from")
			format, err := inputFormat(from, path)
			if err != nil {
				return err
			}
			to, err := a.exportFormat(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				return errdef.New(errdef.CodeConfig, "watch needs --out")
			}
			interval, _ := cmd.Flags().GetDuration("interval")

			w := watch.New(watch.Options{Interval: interval})
			data, err := w.Add(path)
			if err != nil {
				return err
			}
			if err := a.rebuild(cmd, path, format, string(data), to, out); err != nil {
				return err
			}

			ctx := cmd.Context()
			go w.Run(ctx)
			for evt := range w.Events() {
				if evt.Kind == watch.Removed {
					a.logger.Warn().Str("path", evt.Path).Msg("theme file removed; waiting for it to return")
					continue
				}
				if err := a.rebuild(cmd, path, format, string(evt.Data), to, out); err != nil {
					a.logger.Warn().Str("path", evt.Path).Str("field", errdef.FieldOf(err)).Err(err).Msg("rebuild failed")
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", evt.Path, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().String("from", "", "Input format (default from extension)")
	cmd.Flags().String("to", "", "Output format (default from settings)")
	cmd.Flags().StringP("out", "o", "", "File to write on every change")
	cmd.Flags().Duration("interval", time.Second, "Polling interval")
	return cmd
}

func (a *app) rebuild(cmd *cobra.Command, path string, from themesvc.Format, text string, to themesvc.Format, out string) error {
	doc, err := a.svc.Import(cmd.Context(), from, text)
	if err != nil {
		return err
	}
	rendered, err := a.svc.Export(cmd.Context(), to, doc, themeName(path, from, text))
	if err != nil {
		return err
	}
	return a.emit(cmd, rendered, to, emitOptions{out: out})
}
