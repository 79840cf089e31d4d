package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kbukum/analytics/config"
	"github.com/kbukum/analytics/logger"
	"github.com/kbukum/analytics/observability"
	"github.com/kbukum/analytics/version"
)

const serviceName = "analytics"

// app is the state shared by subcommands once the root pre-run has loaded
// configuration.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg      *config.Config
	log      *logger.Logger
	shutdown func(context.Context) error
}

func addGlobalFlags(fs *pflag.FlagSet, a *app) {
	fs.StringVarP(&a.configPath, "config", "c", "", "Config file with service settings and providers (env ANALYTICS_CONFIG)")
	fs.StringVar(&a.logLevel, "log-level", "", "Log level (debug|info|warn|error), overrides config")
	fs.StringVar(&a.logFormat, "log-format", "", "Log format (console|json), overrides config")
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:     serviceName,
		Short:   "Analytics dispatcher CLI",
		Long:    "Inspect the built-in provider integrations and replay analytics calls through them.",
		Version: version.Get().Short(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addGlobalFlags(cmd.PersistentFlags(), a)

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		return a.setup(c.Context(), c.ErrOrStderr())
	}
	cmd.PersistentPostRunE = func(c *cobra.Command, _ []string) error {
		if a.shutdown == nil {
			return nil
		}
		return a.shutdown(c.Context())
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdProviders())
	cmd.AddCommand(newCmdReplay(a))
	return cmd
}

func (a *app) setup(ctx context.Context, stderr io.Writer) error {
	if a.configPath == "" {
		a.configPath = os.Getenv("ANALYTICS_CONFIG")
	}

	var opts []config.LoaderOption
	if a.configPath != "" {
		opts = append(opts, config.WithConfigFile(a.configPath))
	}
	cfg, err := config.Load(serviceName, opts...)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Logging.Validate(); err != nil {
		return err
	}
	cfg.Logging.Writer = stderr

	a.cfg = cfg
	a.log = logger.New(&cfg.Logging, cfg.Name)
	logger.SetGlobalLogger(a.log)

	info := version.Get()
	a.shutdown, err = observability.Setup(ctx, cfg.Telemetry, cfg.Name, info.Version, cfg.Environment)
	if err != nil {
		return err
	}
	return nil
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	if err := root.Execute(); err != nil {
		logger.Error("command failed", logger.ErrorFields(root.Name(), err))
		os.Exit(1)
	}
}
