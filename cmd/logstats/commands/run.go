package commands

import (
	"github.com/spf13/cobra"

	"log-stats/internal/app"
)

const flagSave = "save"

// runCommand holds the flags of the run command.
type runCommand struct {
	global  *globalOptions
	filters filterFlags
	format  string
	save    bool
}

func newRunCommand(global *globalOptions) *cobra.Command {
	rc := &runCommand{global: global}

	cmd := &cobra.Command{
		Use:   "run <logfile>",
		Short: "Analyze a log and print the report",
		Long: `Analyze a log and print the report to stdout. Use "-" to read the log from stdin.

Lines that do not match the Combined Log Format are counted as skipped_lines; they never stop the run.`,
		Args: cobra.ExactArgs(1),
		RunE: rc.run,
	}

	rc.filters.register(cmd)
	cmd.Flags().StringVarP(&rc.format, "format", "f", "", "output format: json or table (default from config, json)")
	cmd.Flags().BoolVar(&rc.save, flagSave, false, "archive the report under its run id (default from config)")

	return cmd
}

func (rc *runCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := rc.global.loadConfig()
	if err != nil {
		return err
	}
	application, err := rc.global.newApp(cmd, cfg)
	if err != nil {
		return err
	}

	save := cfg.Report.Save
	if cmd.Flags().Changed(flagSave) {
		save = rc.save
	}

	result, err := application.Run(cmd.Context(), app.RunOptions{
		Source:  args[0],
		Filters: rc.filters.options(cmd, cfg),
		Save:    save,
	})
	if err != nil {
		return err
	}

	return application.Render(cmd.OutOrStdout(), result.Report, rc.format)
}
