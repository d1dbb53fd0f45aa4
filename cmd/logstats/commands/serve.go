package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"log-stats/internal/app"
)

type serveCommand struct {
	global  *globalOptions
	filters filterFlags
	port    int
}

func newServeCommand(global *globalOptions) *cobra.Command {
	sc := &serveCommand{global: global}

	cmd := &cobra.Command{
		Use:   "serve <logfile>",
		Short: "Analyze a log and serve the report over HTTP",
		Long: `Analyze a log once, then serve the report until interrupted.

Routes:
  GET /report                 the report
  GET /report/status/{code}   request count of one status code
  GET /reports                ids of saved reports
  GET /reports/{runID}        one saved report
  GET /metrics                Prometheus metrics`,
		Args: cobra.ExactArgs(1),
		RunE: sc.run,
	}

	sc.filters.register(cmd)
	cmd.Flags().IntVarP(&sc.port, "port", "p", 0, "listen port (default from config, 8080)")

	return cmd
}

func (sc *serveCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := sc.global.loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = sc.port
	}
	application, err := sc.global.newApp(cmd, cfg)
	if err != nil {
		return err
	}

	result, err := application.Run(cmd.Context(), app.RunOptions{
		Source:  args[0],
		Filters: sc.filters.options(cmd, cfg),
		Save:    cfg.Report.Save,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return application.Serve(ctx, result)
}
