package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/locfang/locfang/pkg/gitlib"
	"github.com/locfang/locfang/pkg/history"
)

// CommitCommand holds the configuration for the commit command.
type CommitCommand struct {
	flags commonFlags
	repo  string
}

// NewCommitCommand creates and configures the commit command.
func NewCommitCommand() *cobra.Command {
	cc := &CommitCommand{}

	cobraCmd := &cobra.Command{
		Use:   "commit <revision>",
		Short: "Count lines of code at one commit",
		Long: `Commit resolves a revision (hash, abbreviated hash, branch, tag, HEAD~n)
and analyzes the full tree of that commit. Blob contents are read from the
object store in memory; the working directory is never touched.`,
		Args: cobra.ExactArgs(1),
		RunE: cc.run,
	}

	cc.flags.register(cobraCmd)
	cobraCmd.Flags().StringVar(&cc.repo, "repo", ".", "Path to the git repository")

	return cobraCmd
}

func (cc *CommitCommand) run(cmd *cobra.Command, args []string) error {
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

	stats, err := walker.AnalyzeCommit(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return session.render(cc.flags.outPath, func(w io.Writer) error {
		return session.reporter.Commit(w, stats)
	})
}
