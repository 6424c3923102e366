package summary

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/evidenceworks/go-exif-harvest/internal/metadata"
	"github.com/evidenceworks/go-exif-harvest/internal/types"
)

// PrintPreview writes the first head rows of the flattened table as an
// aligned text table, one column per tag path. Unset cells render empty.
func PrintPreview(w io.Writer, table *metadata.Table, head int) {
	if head < 0 {
		head = 0
	}
	if head > len(table.Rows) {
		head = len(table.Rows)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, strings.Join(table.Columns, "\t"))
	for _, row := range table.Rows[:head] {
		cells := make([]string, len(table.Columns))
		for i, column := range table.Columns {
			cells[i] = metadata.ValueString(row[column])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

// PrintSummary writes the per-tag statistics as an aligned text table
func PrintSummary(w io.Writer, summaries []types.ColumnSummary) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Tag\tNonNullCount\tUniqueValues")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", s.Tag, s.NonNullCount, s.UniqueValues)
	}
	tw.Flush()
}

// PrintDiffs writes the differing tags with both sides' statistics. Missing
// sides render as empty cells.
func PrintDiffs(w io.Writer, diffs []types.SummaryDiff) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Tag\tNonNullCount_old\tUniqueValues_old\tNonNullCount_new\tUniqueValues_new")
	for _, d := range diffs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.Tag,
			statString(d.OldNonNullCount), statString(d.OldUniqueValues),
			statString(d.NewNonNullCount), statString(d.NewUniqueValues))
	}
	tw.Flush()
}

// statString renders a possibly missing statistic
func statString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
