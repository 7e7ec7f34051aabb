package command

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/arloliu/flowrec/ie"
)

func newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "list the known information elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.NewWriter()
			t.AppendHeader(table.Row{"ID", "Element", "Width", "Kind"})
			for _, e := range ie.All() {
				t.AppendRow(table.Row{e.ID, e.Name, e.Width, e.Kind})
			}
			t.SetColumnConfigs([]table.ColumnConfig{
				{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignCenter},
				{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignCenter},
			})
			t.SetOutputMirror(cmd.OutOrStdout())
			t.Render()

			return nil
		},
	}
}
