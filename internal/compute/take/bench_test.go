package take_test

import (
	"fmt"
	"testing"

	"github.com/harshithgowdakt/colvec/internal/array"
	"github.com/harshithgowdakt/colvec/internal/compute/take"
	"github.com/harshithgowdakt/colvec/internal/types"
)

// benchIndices builds a shuffled-looking index column without pulling in
// math/rand state between runs.
func benchIndices(n, srcLen int) *array.Primitive[int32] {
	vals := make([]int32, n)
	seed := uint32(2463534242)
	for i := range vals {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		vals[i] = int32(seed % uint32(srcLen))
	}
	return array.PrimitiveFromValues(types.TypeInt32, vals, nil)
}

func BenchmarkTakeInt64(b *testing.B) {
	const n = 1 << 16
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = int64(i)
	}
	src := array.PrimitiveFromValues(types.TypeInt64, vals, nil)
	indices := benchIndices(n, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := take.Take(src, indices); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTakeString(b *testing.B) {
	const n = 1 << 14
	vals := make([]string, n)
	for i := range vals {
		vals[i] = fmt.Sprintf("row_%d", i)
	}
	src := array.BytesFromStrings[int32](types.TypeString, vals, nil)
	indices := benchIndices(n, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := take.Take(src, indices); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTakeDictionary(b *testing.B) {
	const n = 1 << 16
	vals := make([]string, n)
	for i := range vals {
		vals[i] = fmt.Sprintf("cat_%d", i%100)
	}
	src := array.DictionaryFromStrings[uint32](types.TypeString, vals, nil)
	indices := benchIndices(n, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := take.Take(src, indices); err != nil {
			b.Fatal(err)
		}
	}
}
