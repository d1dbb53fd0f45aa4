package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportsCommand(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Inspect saved reports",
	}

	cmd.AddCommand(newReportsListCommand(global))
	cmd.AddCommand(newReportsShowCommand(global))

	return cmd
}

func newReportsListCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the run ids of saved reports, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			application, err := global.newApp(cmd, cfg)
			if err != nil {
				return err
			}

			runIDs, err := application.ListReports(cmd.Context())
			if err != nil {
				return err
			}
			for _, runID := range runIDs {
				fmt.Fprintln(cmd.OutOrStdout(), runID)
			}
			return nil
		},
	}
}

func newReportsShowCommand(global *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <runID>",
		Short: "Print a saved report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			application, err := global.newApp(cmd, cfg)
			if err != nil {
				return err
			}

			record, err := application.GetReport(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return application.Render(cmd.OutOrStdout(), record.Report, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json or table (default from config, json)")

	return cmd
}
