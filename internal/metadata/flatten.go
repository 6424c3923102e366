package metadata

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Table is the flattened form of a record list: one row per record, one
// column per dot-joined field path. Columns are sorted ascending with plain
// byte-wise comparison so output is stable between runs.
type Table struct {
	Columns []string
	Rows    []map[string]interface{}
}

// Flatten resolves every record's nesting into dot-joined key paths and
// collects the rows into a Table. The column set is the union of all keys
// seen; rows missing a key leave that cell unset.
func Flatten(records []Record) *Table {
	rows := make([]map[string]interface{}, 0, len(records))
	columnSet := make(map[string]bool)

	for _, record := range records {
		row := make(map[string]interface{})
		flattenValue("", map[string]interface{}(record), row)
		for column := range row {
			columnSet[column] = true
		}
		rows = append(rows, row)
	}

	columns := make([]string, 0, len(columnSet))
	for column := range columnSet {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	return &Table{Columns: columns, Rows: rows}
}

// flattenValue writes v into row under the given path prefix, recursing into
// objects and arrays. List indices become path components; JSON null leaves
// the cell unset.
func flattenValue(prefix string, v interface{}, row map[string]interface{}) {
	switch value := v.(type) {
	case map[string]interface{}:
		for key, nested := range value {
			flattenValue(joinPath(prefix, key), nested, row)
		}
	case []interface{}:
		for i, element := range value {
			flattenValue(joinPath(prefix, strconv.Itoa(i)), element, row)
		}
	case nil:
		// null cells stay absent
	default:
		row[prefix] = value
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// ValueString renders a flattened cell for display. Unset and null cells
// render as the empty string.
func ValueString(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
