package countservice

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// WriteReport renders the counting result on w as a text table. When no
// source files were accepted it prints an informational line instead.
func WriteReport(w io.Writer, result *Result) error {
	if result.Agg.TotalFiles == 0 {
		_, err := fmt.Fprintf(w, "No source files found under %s.\n", result.Root)
		return err
	}

	_, err := fmt.Fprintf(w, "Counted %d files under %s (%s)\n\n",
		result.Agg.TotalFiles, result.Root, result.Source)
	if err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)

	// Keep header and footer exactly as written instead of upper-casing
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault

	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Files", Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Name: "Lines", Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	tbl.AppendHeader(table.Row{"Extension", "Files", "Lines"})
	for _, row := range result.Agg.Rows() {
		tbl.AppendRow(table.Row{row.Extension, row.Files, row.Lines})
	}
	tbl.AppendFooter(table.Row{"TOTAL", result.Agg.TotalFiles, result.Agg.TotalLines})

	tbl.Render()

	return nil
}
