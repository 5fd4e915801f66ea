package main

import (
	"strings"
	"testing"

	"github.com/harshithgowdakt/colvec/internal/array"
	"github.com/harshithgowdakt/colvec/internal/types"
)

func testBatch(t *testing.T) *array.Batch {
	t.Helper()
	ids := array.PrimitiveFromValues(types.TypeInt64,
		[]int64{1, 0, 3}, []bool{true, false, true})
	names := array.BytesFromStrings[int32](types.TypeString,
		[]string{"a", "b", "c"}, nil)
	b, err := array.NewBatch([]string{"id", "name"}, []array.Array{ids, names})
	if err != nil {
		t.Fatalf("NewBatch: %v", err)
	}
	return b
}

func TestFormatTabSeparated(t *testing.T) {
	var sb strings.Builder
	if err := FormatBatch(&sb, testBatch(t), FormatTabSeparated); err != nil {
		t.Fatalf("format: %v", err)
	}
	want := "id\tname\n1\ta\nNULL\tb\n3\tc\n"
	if sb.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", sb.String(), want)
	}
}

func TestFormatCSVQuotesStrings(t *testing.T) {
	var sb strings.Builder
	if err := FormatBatch(&sb, testBatch(t), FormatCSV); err != nil {
		t.Fatalf("format: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[1] != `1,"a"` {
		t.Fatalf("unexpected row: %q", lines[1])
	}
	if lines[2] != `NULL,"b"` {
		t.Fatalf("unexpected null row: %q", lines[2])
	}
}

func TestFormatJSONDictionaryMeta(t *testing.T) {
	d := array.DictionaryFromStrings[uint32](types.TypeString,
		[]string{"x", "y", "x"}, nil)
	b, err := array.NewBatch([]string{"tag"}, []array.Array{d})
	if err != nil {
		t.Fatalf("NewBatch: %v", err)
	}
	var sb strings.Builder
	if err := FormatBatch(&sb, b, FormatJSON); err != nil {
		t.Fatalf("format: %v", err)
	}
	if !strings.Contains(sb.String(), `"type": "Dictionary(String)"`) {
		t.Fatalf("missing dictionary meta in output:\n%s", sb.String())
	}
	if !strings.Contains(sb.String(), `"rows": 3`) {
		t.Fatalf("missing row count in output:\n%s", sb.String())
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("json") != FormatJSON {
		t.Fatalf("json not parsed")
	}
	if ParseFormat("CSV") != FormatCSV {
		t.Fatalf("csv not parsed")
	}
	if ParseFormat("anything") != FormatTabSeparated {
		t.Fatalf("default format not TabSeparated")
	}
}
