// Command coltake is a debugging tool for the gather kernel: it loads a
// CSV file (optionally lz4-framed) into columnar arrays, applies a take
// index list, and prints the reordered rows.
//
//	coltake -file data.csv -types int64,string,float64 -indices 3,,1,3
//
// A literal NULL cell (or an empty index entry) marks a null row.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pierrec/lz4/v4"

	"github.com/harshithgowdakt/colvec/internal/array"
	"github.com/harshithgowdakt/colvec/internal/compute/take"
	"github.com/harshithgowdakt/colvec/internal/types"
)

func main() {
	file := flag.String("file", "-", "CSV input path, - for stdin; .lz4 files are decompressed")
	typeList := flag.String("types", "", "comma-separated column types, e.g. int64,string,float64; wrap in dictionary(...) to dictionary-encode")
	header := flag.Bool("header", true, "first CSV row holds column names")
	indexList := flag.String("indices", "", "comma-separated row indices; empty entries are null")
	indexType := flag.String("index-type", "int64", "index column width: int32 or int64")
	format := flag.String("format", "tsv", "output format: tsv, csv, or json")
	flag.Parse()

	if *typeList == "" {
		fatalf("missing required -types")
	}
	if *indexList == "" {
		fatalf("missing required -indices")
	}

	records, err := readCSV(*file)
	if err != nil {
		fatalf("read input: %v", err)
	}
	if len(records) == 0 {
		fatalf("input has no rows")
	}

	typeNames := strings.Split(*typeList, ",")
	names := make([]string, len(typeNames))
	for i := range names {
		names[i] = fmt.Sprintf("col%d", i)
	}
	if *header {
		copy(names, records[0])
		records = records[1:]
	}

	cols := make([]array.Array, len(typeNames))
	for c, tn := range typeNames {
		dt, isDict, err := types.ParseColumnType(tn)
		if err != nil {
			fatalf("column %d: %v", c, err)
		}
		cells := make([]string, len(records))
		for r, rec := range records {
			if c >= len(rec) {
				fatalf("row %d has %d cells, expected %d", r, len(rec), len(typeNames))
			}
			cells[r] = rec[c]
		}
		col, err := buildColumn(dt, isDict, cells)
		if err != nil {
			fatalf("column %d (%s): %v", c, dt.Name(), err)
		}
		cols[c] = col
	}

	batch, err := array.NewBatch(names, cols)
	if err != nil {
		fatalf("%v", err)
	}

	var out *array.Batch
	switch *indexType {
	case "int32":
		indices, err := parseIndices[int32](types.TypeInt32, *indexList)
		if err != nil {
			fatalf("parse indices: %v", err)
		}
		out, err = take.TakeBatch(batch, indices)
		if err != nil {
			fatalf("take: %v", err)
		}
	case "int64":
		indices, err := parseIndices[int64](types.TypeInt64, *indexList)
		if err != nil {
			fatalf("parse indices: %v", err)
		}
		out, err = take.TakeBatch(batch, indices)
		if err != nil {
			fatalf("take: %v", err)
		}
	default:
		fatalf("unknown index type %q", *indexType)
	}

	if err := FormatBatch(os.Stdout, out, ParseFormat(*format)); err != nil {
		fatalf("format output: %v", err)
	}
}

// readCSV loads all records, decompressing lz4-framed files by extension.
func readCSV(path string) ([][]string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
		if strings.HasSuffix(path, ".lz4") {
			r = lz4.NewReader(f)
		}
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

func buildColumn(dt types.DataType, isDict bool, cells []string) (array.Array, error) {
	if isDict {
		if !dt.IsUTF8() {
			return nil, fmt.Errorf("dictionary encoding supports string columns, not %s", dt.Name())
		}
		vals, valid := splitNulls(cells)
		return array.DictionaryFromStrings[uint32](dt, vals, valid), nil
	}
	switch dt {
	case types.TypeBool:
		vals := make([]bool, len(cells))
		valid := make([]bool, len(cells))
		hasNull := false
		for i, c := range cells {
			if isNullCell(c) {
				hasNull = true
				continue
			}
			v, err := types.ParseValue(dt, c)
			if err != nil {
				return nil, err
			}
			vals[i] = v.(bool)
			valid[i] = true
		}
		if !hasNull {
			valid = nil
		}
		return array.BooleanFromValues(vals, valid), nil
	case types.TypeInt8:
		return buildPrimitive[int8](dt, cells)
	case types.TypeInt16:
		return buildPrimitive[int16](dt, cells)
	case types.TypeInt32, types.TypeDate32, types.TypeTime32:
		return buildPrimitive[int32](dt, cells)
	case types.TypeInt64, types.TypeDate64, types.TypeTime64,
		types.TypeTimestamp, types.TypeDuration:
		return buildPrimitive[int64](dt, cells)
	case types.TypeUInt8:
		return buildPrimitive[uint8](dt, cells)
	case types.TypeUInt16:
		return buildPrimitive[uint16](dt, cells)
	case types.TypeUInt32:
		return buildPrimitive[uint32](dt, cells)
	case types.TypeUInt64:
		return buildPrimitive[uint64](dt, cells)
	case types.TypeFloat32:
		return buildPrimitive[float32](dt, cells)
	case types.TypeFloat64:
		return buildPrimitive[float64](dt, cells)
	case types.TypeString, types.TypeBinary:
		vals, valid := splitNulls(cells)
		return array.BytesFromStrings[int32](dt, vals, valid), nil
	case types.TypeLargeString, types.TypeLargeBinary:
		vals, valid := splitNulls(cells)
		return array.BytesFromStrings[int64](dt, vals, valid), nil
	default:
		return nil, fmt.Errorf("cannot build column of type %s", dt.Name())
	}
}

func buildPrimitive[T types.Native](dt types.DataType, cells []string) (array.Array, error) {
	vals := make([]T, len(cells))
	valid := make([]bool, len(cells))
	hasNull := false
	for i, c := range cells {
		if isNullCell(c) {
			hasNull = true
			continue
		}
		v, err := types.ParseValue(dt, c)
		if err != nil {
			return nil, err
		}
		vals[i] = v.(T)
		valid[i] = true
	}
	if !hasNull {
		valid = nil
	}
	return array.PrimitiveFromValues(dt, vals, valid), nil
}

func parseIndices[O types.Offset](dt types.DataType, list string) (*array.Primitive[O], error) {
	parts := strings.Split(list, ",")
	vals := make([]O, len(parts))
	valid := make([]bool, len(parts))
	hasNull := false
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == "NULL" {
			hasNull = true
			continue
		}
		v, err := strconv.ParseInt(p, 10, dt.FixedSize()*8)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		vals[i] = O(v)
		valid[i] = true
	}
	if !hasNull {
		valid = nil
	}
	return array.PrimitiveFromValues(dt, vals, valid), nil
}

func splitNulls(cells []string) ([]string, []bool) {
	valid := make([]bool, len(cells))
	vals := make([]string, len(cells))
	hasNull := false
	for i, c := range cells {
		if isNullCell(c) {
			hasNull = true
			continue
		}
		vals[i] = c
		valid[i] = true
	}
	if !hasNull {
		valid = nil
	}
	return vals, valid
}

func isNullCell(c string) bool {
	return c == "NULL"
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
