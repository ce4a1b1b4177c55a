package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/locfang/locfang/pkg/snapshot"
)

// ScanCommand holds the configuration for the scan command.
type ScanCommand struct {
	flags commonFlags
}

// NewScanCommand creates and configures the scan command.
func NewScanCommand() *cobra.Command {
	sc := &ScanCommand{}

	cobraCmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Count lines of code in a directory tree",
		Long: `Scan walks a directory tree, classifies every recognized source file
into code, comment, and blank lines, and reports per-language totals.`,
		Args: cobra.MaximumNArgs(1),
		RunE: sc.run,
	}

	sc.flags.register(cobraCmd)

	return cobraCmd
}

func (sc *ScanCommand) run(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	session, err := sc.flags.setup(cmd)
	if err != nil {
		return err
	}

	provider, err := snapshot.NewWorktreeProvider(dir, session.matcher)
	if err != nil {
		return err
	}

	stats, err := session.runner.Run(cmd.Context(), provider)
	if err != nil {
		return err
	}

	return session.render(sc.flags.outPath, func(w io.Writer) error {
		return session.reporter.Project(w, stats)
	})
}
