// Package cli is the themekit command-line front end.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unkn0wn-root/themekit/internal/config"
	"github.com/unkn0wn-root/themekit/internal/logging"
	"github.com/unkn0wn-root/themekit/internal/telemetry"
	"github.com/unkn0wn-root/themekit/internal/themesvc"
)

const envPrefix = "THEMEKIT"

// Options carries build metadata and the hooks tests replace.
type Options struct {
	Version string
	// Clipboard receives text copied with --clipboard.
	Clipboard func(string) error
	// Now stamps generated source when timestamps are enabled.
	Now func() time.Time
	// Getenv reads telemetry settings.
	Getenv func(string) string
	// Telemetry is passed to telemetry.New, e.g. to install an exporter.
	Telemetry []telemetry.Option
}

type app struct {
	opts     Options
	v        *viper.Viper
	settings config.Settings
	logger   zerolog.Logger
	tel      telemetry.Instrumenter
	svc      *themesvc.Service
}

// NewRootCommand builds the command tree. Every call returns an independent
// tree with its own flag and env bindings.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}

	a := &app{opts: opts, v: viper.New(), logger: zerolog.Nop(), tel: telemetry.Noop()}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "themekit",
		Short: "Convert, validate and preview UI themes",
		Long: heredoc.Doc(`
			themekit converts theme documents between JSON, TOML, YAML and
			generated C# source, validates them, and previews their palettes.

			Settings are read from settings.toml or settings.json in the
			configuration directory. Flags override THEMEKIT_* environment
			variables, which override the settings file.
		`),
		Version:           opts.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.String("config-dir", "", "Configuration directory (default: user config dir/themekit)")
	flags.String("log-level", "warn", "Log level: trace, debug, info, warn, error, disabled")
	flags.String("log-format", logging.FormatConsole, "Log format: console or json")
	for _, name := range []string{"config-dir", "log-level", "log-format"} {
		if err := a.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", name, err))
		}
	}

	root.AddCommand(
		newConvertCmd(a),
		newValidateCmd(a),
		newImportCmd(a),
		newBuiltinCmd(a),
		newListCmd(a),
		newDiffCmd(a),
		newPreviewCmd(a),
		newRunCmd(a),
		newWatchCmd(a),
		newHistoryCmd(a),
	)
	// Post-run hooks are skipped when RunE fails, so telemetry is flushed
	// from the commands themselves.
	for _, c := range root.Commands() {
		if c.RunE != nil {
			c.RunE = a.flushing(c.RunE)
		}
	}
	return root
}

func (a *app) flushing(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.teardown(cmd.Context())
		return run(cmd, args)
	}
}

// Execute runs the command tree against the process arguments.
func Execute(ctx context.Context, opts Options) error {
	return NewRootCommand(opts).ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if dir := strings.TrimSpace(a.v.GetString("config-dir")); dir != "" {
		if err := os.Setenv(envPrefix+"_CONFIG_DIR", dir); err != nil {
			return err
		}
	}

	logger, err := logging.New(logging.Options{
		Level:  a.v.GetString("log-level"),
		Format: a.v.GetString("log-format"),
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.logger = logger

	settings, handle, err := config.LoadSettings()
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger.Debug().Str("path", handle.Path).Str("format", string(handle.Format)).Msg("settings loaded")

	telCfg := telemetry.ConfigFromEnv(a.opts.Getenv)
	telCfg.Version = a.opts.Version
	tel, err := telemetry.New(telCfg, a.opts.Telemetry...)
	if err != nil {
		if telCfg.Enabled() {
			a.logger.Warn().Err(err).Msg("telemetry init error")
		}
		tel = telemetry.Noop()
	}
	a.tel = tel

	svcOpts := []themesvc.Option{
		themesvc.WithTelemetry(a.tel),
		themesvc.WithNamespace(a.settings.Export.Namespace),
	}
	if a.settings.Export.Timestamp {
		svcOpts = append(svcOpts, themesvc.WithTimestamps(a.opts.Now))
	}
	a.svc = themesvc.New(a.logger, svcOpts...)
	return nil
}

// teardown flushes and stops telemetry. Later calls are no-ops.
func (a *app) teardown(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	// An interrupted command still gets its spans exported.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := a.tel.Shutdown(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("telemetry shutdown")
	}
}

// setting resolves a per-command flag: an explicit flag wins, then the
// THEMEKIT_<KEY> environment variable, then fallback.
func (a *app) setting(cmd *cobra.Command, flag, key, fallback string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}
	if v := strings.TrimSpace(a.v.GetString(key)); v != "" {
		return v
	}
	return fallback
}
