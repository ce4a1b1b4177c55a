package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/locfang/locfang/pkg/gitlib"
	"github.com/locfang/locfang/pkg/history"
)

// RangeCommand holds the configuration for the range command.
type RangeCommand struct {
	flags commonFlags
	repo  string
	since string
	until string
}

// NewRangeCommand creates and configures the range command.
func NewRangeCommand() *cobra.Command {
	rc := &RangeCommand{}

	cobraCmd := &cobra.Command{
		Use:   "range",
		Short: "Count lines of code for every commit in a date range",
		Long: `Range walks the commits reachable from HEAD whose author date falls inside
the --since/--until bounds (both inclusive, YYYY-MM-DD) and analyzes each
one, oldest first. Without bounds every reachable commit is analyzed. A
commit that fails to analyze is logged and skipped.`,
		Args: cobra.NoArgs,
		RunE: rc.run,
	}

	rc.flags.register(cobraCmd)
	cobraCmd.Flags().StringVar(&rc.repo, "repo", ".", "Path to the git repository")
	cobraCmd.Flags().StringVar(&rc.since, "since", "", "Start date (YYYY-MM-DD, inclusive)")
	cobraCmd.Flags().StringVar(&rc.until, "until", "", "End date (YYYY-MM-DD, inclusive)")

	return cobraCmd
}

func (rc *RangeCommand) run(cmd *cobra.Command, _ []string) error {
	dateRange, err := history.ParseDateRange(rc.since, rc.until)
	if err != nil {
		return err
	}

	session, err := rc.flags.setup(cmd)
	if err != nil {
		return err
	}

	repo, err := gitlib.Open(rc.repo)
	if err != nil {
		return err
	}
	defer repo.Free()

	walker := history.NewWalker(repo, session.runner, session.metrics, nil)

	commits, err := walker.AnalyzeRange(cmd.Context(), dateRange)
	if err != nil {
		return err
	}

	return session.render(rc.flags.outPath, func(w io.Writer) error {
		return session.reporter.Range(w, commits)
	})
}
