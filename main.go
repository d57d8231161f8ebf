package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/content"
)

var (
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:           "folio",
	Short:         "Serve or export the portfolio site",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "folio", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd, exportCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "folio:", err)
		os.Exit(1)
	}
}

// setup loads the configuration, logger and content every command needs.
func setup() (*Config, zerolog.Logger, *content.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	log := newLogger(cfg, os.Stderr)

	site, err := content.Load(content.Source(cfg.ContentDir))
	if err != nil {
		return nil, log, nil, err
	}
	src := "embedded"
	if cfg.ContentDir != "" {
		src = cfg.ContentDir
	}
	log.Debug().Str("source", src).Int("projects", len(site.Projects)).Msg("content loaded")
	return cfg, log, content.NewStore(site), nil
}

// newApp wires the handlers' dependencies. The returned close function
// releases the analytics database.
func newApp(ctx context.Context, cfg *Config, log zerolog.Logger, store *content.Store) (*app, func() error, error) {
	render, err := newRenderer(cfg, store)
	if err != nil {
		return nil, nil, err
	}
	a := &app{cfg: cfg, log: log, store: store, render: render}

	a.admin, err = newAdminAuth(cfg)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() error { return nil }
	if cfg.AnalyticsEnabled {
		a.analytics, err = openAnalytics(ctx, cfg.AnalyticsDSN, log)
		if err != nil {
			return nil, nil, err
		}
		if _, err := a.analytics.Cleanup(ctx, cfg.AnalyticsRetention); err != nil {
			log.Warn().Err(err).Msg("initial privacy cleanup failed")
		}
		closeFn = a.analytics.Close
		log.Info().Msg("visit analytics enabled with hashed addresses")
	}
	return a, closeFn, nil
}
