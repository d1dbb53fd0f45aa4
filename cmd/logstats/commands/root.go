// Package commands implements the logstats CLI commands.
package commands

import (
	"github.com/spf13/cobra"

	"log-stats/internal/app"
	"log-stats/internal/shared/configs"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand builds the logstats command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "logstats",
		Short: "Statistics for Combined Log Format access logs",
		Long: `logstats reads one web server access log in Combined Log Format and reports request
counts by status and hour, the busiest client IPs, the error rate and the average response size.

Commands:
  run       Analyze a log and print the report
  serve     Analyze a log and serve the report over HTTP
  reports   Inspect saved reports`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file (optional)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newServeCommand(opts))
	rootCmd.AddCommand(newReportsCommand(opts))

	return rootCmd
}

// loadConfig reads the config file, if any, and applies the persistent flag overrides.
func (opts *globalOptions) loadConfig() (*configs.Config, error) {
	cfg, err := configs.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, nil
}

// newApp builds the application for cmd. Logs go to the command's stderr.
func (opts *globalOptions) newApp(cmd *cobra.Command, cfg *configs.Config) (*app.App, error) {
	return app.New(cfg, cmd.ErrOrStderr())
}
