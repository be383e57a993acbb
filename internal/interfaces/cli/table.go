package cli

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// renderTable writes an aligned table to the command's stdout.
func renderTable(cmd *cobra.Command, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetColumnSeparator("  ")
	table.SetHeaderLine(true)
	table.AppendBulk(rows)
	table.Render()
}
