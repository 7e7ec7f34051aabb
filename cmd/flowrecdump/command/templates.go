package command

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/arloliu/flowrec/record"
	"github.com/arloliu/flowrec/template"
)

func newTemplatesCommand() *cobra.Command {
	var id uint16

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "show the built-in templates with field offsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tmpls := record.Templates()
			if cmd.Flags().Changed("id") {
				tmpl, err := record.TemplateByID(id)
				if err != nil {
					return err
				}
				tmpls = []*template.Record{tmpl}
			}

			out := cmd.OutOrStdout()
			for i, tmpl := range tmpls {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, tmpl.String())
				renderTemplate(cmd, tmpl)
				fmt.Fprintf(out, "signature: %016x\n", tmpl.Signature())
				fmt.Fprintf(out, "body:      % x\n", tmpl.Bytes())
			}

			return nil
		},
	}
	cmd.Flags().Uint16Var(&id, "id", 0, "only show the template with this id")

	return cmd
}

func renderTemplate(cmd *cobra.Command, tmpl *template.Record) {
	offsets := tmpl.Offsets()

	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Element", "ID", "Offset", "Width", "Kind"})
	for i, e := range tmpl.Fields {
		t.AppendRow(table.Row{i, e.Name, e.ID, offsets[i], e.Width, e.Kind})
	}
	t.AppendFooter(table.Row{"", "", "", "total", tmpl.Length(), ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.SetOutputMirror(cmd.OutOrStdout())
	t.Render()
}
