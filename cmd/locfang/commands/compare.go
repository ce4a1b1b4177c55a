package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/locfang/locfang/pkg/gitlib"
	"github.com/locfang/locfang/pkg/history"
)

// CompareCommand holds the configuration for the compare command.
type CompareCommand struct {
	flags commonFlags
	repo  string
}

// NewCompareCommand creates and configures the compare command.
func NewCompareCommand() *cobra.Command {
	cc := &CompareCommand{}

	cobraCmd := &cobra.Command{
		Use:   "compare <old-revision> <new-revision>",
		Short: "Compare lines of code between two commits",
		Long: `Compare analyzes both commits and reports the changed-path partition and
the per-file code-line delta for modified files. A renamed file counts as a
removal plus an addition.`,
		Args: cobra.ExactArgs(2),
		RunE: cc.run,
	}

	cc.flags.register(cobraCmd)
	cobraCmd.Flags().StringVar(&cc.repo, "repo", ".", "Path to the git repository")

	return cobraCmd
}

func (cc *CompareCommand) run(cmd *cobra.Command, args []string) error {
	session, err := cc.flags.setup(cmd)
	if err != nil {
		return err
	}

	repo, err := gitlib.Open(cc.repo)
	if err != nil {
		return err
	}
	defer repo.Free()

	walker := history.NewWalker(repo, session.runner, session.metrics, nil)

	comparison, err := walker.Compare(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	return session.render(cc.flags.outPath, func(w io.Writer) error {
		return session.reporter.Comparison(w, comparison)
	})
}
