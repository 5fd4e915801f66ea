package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/harshithgowdakt/colvec/internal/array"
	"github.com/harshithgowdakt/colvec/internal/types"
)

// OutputFormat specifies the result format.
type OutputFormat string

const (
	FormatTabSeparated OutputFormat = "TabSeparated"
	FormatJSON         OutputFormat = "JSON"
	FormatCSV          OutputFormat = "CSV"
)

// ParseFormat parses a format string (case-insensitive).
func ParseFormat(s string) OutputFormat {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "csv":
		return FormatCSV
	default:
		return FormatTabSeparated
	}
}

// FormatBatch writes a batch in the specified format.
func FormatBatch(w io.Writer, b *array.Batch, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return formatJSON(w, b)
	case FormatCSV:
		return formatCSV(w, b)
	default:
		return formatTabSeparated(w, b)
	}
}

func formatTabSeparated(w io.Writer, b *array.Batch) error {
	fmt.Fprintln(w, strings.Join(b.Names, "\t"))
	for row := 0; row < b.NumRows(); row++ {
		vals := make([]string, 0, b.NumColumns())
		for c := 0; c < b.NumColumns(); c++ {
			col := b.Columns[c]
			vals = append(vals, types.FormatValue(col.DataType(), col.Value(row)))
		}
		fmt.Fprintln(w, strings.Join(vals, "\t"))
	}
	return nil
}

func formatCSV(w io.Writer, b *array.Batch) error {
	fmt.Fprintln(w, strings.Join(quoteCSV(b.Names), ","))
	for row := 0; row < b.NumRows(); row++ {
		vals := make([]string, 0, b.NumColumns())
		for c := 0; c < b.NumColumns(); c++ {
			col := b.Columns[c]
			s := types.FormatValue(col.DataType(), col.Value(row))
			if col.Value(row) != nil && isTextual(col) {
				s = `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
			}
			vals = append(vals, s)
		}
		fmt.Fprintln(w, strings.Join(vals, ","))
	}
	return nil
}

func formatJSON(w io.Writer, b *array.Batch) error {
	type resultJSON struct {
		Meta []map[string]string      `json:"meta"`
		Data []map[string]interface{} `json:"data"`
		Rows int                      `json:"rows"`
	}

	result := resultJSON{Rows: b.NumRows()}
	for i, name := range b.Names {
		result.Meta = append(result.Meta, map[string]string{
			"name": name,
			"type": columnTypeName(b.Columns[i]),
		})
	}
	for row := 0; row < b.NumRows(); row++ {
		rowMap := make(map[string]interface{}, b.NumColumns())
		for c, name := range b.Names {
			v := b.Columns[c].Value(row)
			if bs, ok := v.([]byte); ok {
				v = string(bs)
			}
			rowMap[name] = v
		}
		result.Data = append(result.Data, rowMap)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// columnTypeName prints Dictionary columns as Dictionary(Inner).
func columnTypeName(col array.Array) string {
	if d, ok := col.(interface{ ValueType() types.DataType }); ok {
		return fmt.Sprintf("Dictionary(%s)", d.ValueType().Name())
	}
	return col.DataType().Name()
}

func isTextual(col array.Array) bool {
	if d, ok := col.(interface{ ValueType() types.DataType }); ok {
		return d.ValueType().IsUTF8()
	}
	return col.DataType().IsUTF8()
}

func quoteCSV(vals []string) []string {
	result := make([]string, len(vals))
	for i, v := range vals {
		if strings.ContainsAny(v, ",\"\n") {
			result[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
		} else {
			result[i] = v
		}
	}
	return result
}
