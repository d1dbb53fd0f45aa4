package commands

import (
	"github.com/spf13/cobra"

	"log-stats/internal/filters"
	"log-stats/internal/shared/configs"
)

const flagTopIPs = "top-ips"

// filterFlags are the report filters shared by run and serve.
type filterFlags struct {
	from   string
	to     string
	status string
	topN   int
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", `only count requests at or after this UTC time ("YYYY-MM-DD HH:MM")`)
	cmd.Flags().StringVar(&f.to, "to", "", `only count requests at or before this UTC time ("YYYY-MM-DD HH:MM")`)
	cmd.Flags().StringVar(&f.status, "status", "", "only count requests of a status class: 2xx, 3xx, 4xx or 5xx")
	cmd.Flags().IntVar(&f.topN, flagTopIPs, 0, "number of top client IPs to report (default from config, 10)")
}

// options resolves the flags against the config. --top-ips wins over report.top_n when given.
func (f *filterFlags) options(cmd *cobra.Command, cfg *configs.Config) filters.FilterOptions {
	topN := cfg.Report.TopN
	if cmd.Flags().Changed(flagTopIPs) {
		topN = f.topN
	}
	return filters.FilterOptions{
		From:   f.from,
		To:     f.to,
		Status: f.status,
		TopN:   topN,
	}
}
