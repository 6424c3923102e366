package summary

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/evidenceworks/go-exif-harvest/internal/metadata"
	"github.com/evidenceworks/go-exif-harvest/internal/types"
)

// Summarize computes per-column statistics over a flattened table: the number
// of rows with a present value and the number of distinct present values.
// Results are sorted ascending by tag name regardless of input order, so
// re-running on identical input yields identical output.
func Summarize(table *metadata.Table) []types.ColumnSummary {
	summaries := make([]types.ColumnSummary, 0, len(table.Columns))

	for _, column := range table.Columns {
		nonNull := 0
		distinct := make(map[string]bool)
		for _, row := range table.Rows {
			value, ok := row[column]
			if !ok || value == nil {
				continue
			}
			nonNull++
			distinct[distinctKey(value)] = true
		}
		summaries = append(summaries, types.ColumnSummary{
			Tag:          column,
			NonNullCount: nonNull,
			UniqueValues: len(distinct),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Tag < summaries[j].Tag
	})
	return summaries
}

// distinctKey builds the identity of a cell value for uniqueness counting.
// The key carries the JSON type so the string "5" and the number 5 stay
// distinct values.
func distinctKey(v interface{}) string {
	switch value := v.(type) {
	case string:
		return "s:" + value
	case json.Number:
		return "n:" + value.String()
	case bool:
		return "b:" + strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%T:%v", value, value)
	}
}
