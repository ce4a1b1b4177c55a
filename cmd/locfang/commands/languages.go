package commands

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/locfang/locfang/pkg/langmap"
)

// NewLanguagesCommand creates the languages command.
func NewLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and their file extensions",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			tbl := table.NewWriter()
			tbl.SetOutputMirror(os.Stdout)
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"Language", "Extensions"})

			for _, language := range langmap.Languages() {
				tbl.AppendRow(table.Row{language, strings.Join(langmap.ExtensionsFor(language), ", ")})
			}

			tbl.Render()
		},
	}
}
