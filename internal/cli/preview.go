package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/themekit/internal/preview"
)

func newPreviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview THEME",
		Short: "Show a theme's palette as terminal swatches",
		Long: "THEME is a catalog name or a theme file. Without --dark the " +
			"palette follows the settings, then the terminal background.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			doc, name, err := a.resolveTheme(cmd, args[0], from)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			profile, termDark := preview.Terminal(w)
			dark := a.settings.DarkMode || termDark
			if f := cmd.Flags().Lookup("dark"); f.Changed {
				dark, _ = cmd.Flags().GetBool("dark")
			}
			width, _ := cmd.Flags().GetInt("width")

			out, err := preview.Render(doc, preview.Options{Dark: dark, Width: width, Profile: profile})
			if err != nil {
				return err
			}
			fmt.Fprintln(w, name)
			_, err = io.WriteString(w, out)
			return err
		},
	}
	cmd.Flags().String("from", "", "Input format when THEME is a file")
	cmd.Flags().Bool("dark", false, "Show the dark palette")
	cmd.Flags().Int("width", 0, "Maximum line width (default 72)")
	return cmd
}
