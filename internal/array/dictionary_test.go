package array_test

import (
	"testing"

	"github.com/harshithgowdakt/colvec/internal/array"
	"github.com/harshithgowdakt/colvec/internal/types"
)

func TestDictionaryBasicOperations(t *testing.T) {
	d := array.DictionaryFromStrings[uint32](types.TypeString,
		[]string{"hello", "world", "hello"}, nil)

	if d.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", d.Len())
	}
	if d.DataType() != types.TypeDictionary {
		t.Fatalf("expected TypeDictionary, got %v", d.DataType())
	}
	if d.ValueType() != types.TypeString {
		t.Fatalf("expected TypeString values, got %v", d.ValueType())
	}
	if d.KeyType() != types.TypeUInt32 {
		t.Fatalf("expected TypeUInt32 keys, got %v", d.KeyType())
	}
	if d.Value(0).(string) != "hello" {
		t.Fatalf("expected 'hello', got %v", d.Value(0))
	}
	if d.Value(1).(string) != "world" {
		t.Fatalf("expected 'world', got %v", d.Value(1))
	}
	if d.Value(2).(string) != "hello" {
		t.Fatalf("expected 'hello', got %v", d.Value(2))
	}
}

func TestDictionaryDeduplication(t *testing.T) {
	// 10 rows but only 3 unique values in the pool.
	values := []string{"a", "b", "c", "a", "b", "c", "a", "b", "c", "a"}
	d := array.DictionaryFromStrings[uint16](types.TypeString, values, nil)

	if d.Len() != 10 {
		t.Fatalf("expected 10 rows, got %d", d.Len())
	}
	if d.Values.Len() != 3 {
		t.Fatalf("expected 3 unique values in pool, got %d", d.Values.Len())
	}
	for i, want := range values {
		if d.Value(i).(string) != want {
			t.Fatalf("row %d: expected %q, got %v", i, want, d.Value(i))
		}
	}
}

func TestDictionaryNulls(t *testing.T) {
	d := array.DictionaryFromStrings[uint8](types.TypeString,
		[]string{"x", "", "x"}, []bool{true, false, true})

	if !d.IsNull(1) {
		t.Fatalf("row 1 should be null")
	}
	if d.Value(1) != nil {
		t.Fatalf("expected nil for null row, got %v", d.Value(1))
	}
	if d.NullN() != 1 {
		t.Fatalf("expected 1 null, got %d", d.NullN())
	}
	// The null row must not have leaked an entry into the pool.
	if d.Values.Len() != 1 {
		t.Fatalf("expected 1 unique value in pool, got %d", d.Values.Len())
	}
}

func TestDictionaryNullPoolValue(t *testing.T) {
	// A valid key referencing a null pool value makes the row null.
	pool := array.BytesFromStrings[int32](types.TypeString,
		[]string{"a", ""}, []bool{true, false})
	keys := array.PrimitiveFromValues(types.TypeUInt8, []uint8{0, 1}, nil)
	d := array.NewDictionary(keys, pool)

	if d.IsNull(0) {
		t.Fatalf("row 0 should be valid")
	}
	if !d.IsNull(1) {
		t.Fatalf("row 1 should be null through the pool")
	}
}
