package array

import (
	"fmt"

	"github.com/harshithgowdakt/colvec/internal/types"
)

// Batch is a set of named columns, all the same length.
type Batch struct {
	Names     []string
	Columns   []Array
	nameIndex map[string]int
}

// NewBatch creates a batch from parallel slices of names and columns.
// Column lengths must agree.
func NewBatch(names []string, cols []Array) (*Batch, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("batch: %d names for %d columns", len(names), len(cols))
	}
	for i := 1; i < len(cols); i++ {
		if cols[i].Len() != cols[0].Len() {
			return nil, fmt.Errorf("batch: column %q has %d rows, expected %d",
				names[i], cols[i].Len(), cols[0].Len())
		}
	}
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[n] = i
	}
	return &Batch{Names: names, Columns: cols, nameIndex: idx}, nil
}

// NumRows returns the number of rows in the batch.
func (b *Batch) NumRows() int {
	if len(b.Columns) == 0 {
		return 0
	}
	return b.Columns[0].Len()
}

// NumColumns returns the number of columns.
func (b *Batch) NumColumns() int {
	return len(b.Columns)
}

// Column returns the column with the given name.
func (b *Batch) Column(name string) (Array, bool) {
	if b.nameIndex == nil {
		b.rebuildIndex()
	}
	i, ok := b.nameIndex[name]
	if !ok {
		return nil, false
	}
	return b.Columns[i], true
}

// ColumnIndex returns the index of a column by name.
func (b *Batch) ColumnIndex(name string) (int, bool) {
	if b.nameIndex == nil {
		b.rebuildIndex()
	}
	i, ok := b.nameIndex[name]
	return i, ok
}

// ColumnTypes returns the data types of all columns.
func (b *Batch) ColumnTypes() []types.DataType {
	dts := make([]types.DataType, len(b.Columns))
	for i, c := range b.Columns {
		dts[i] = c.DataType()
	}
	return dts
}

func (b *Batch) rebuildIndex() {
	b.nameIndex = make(map[string]int, len(b.Names))
	for i, n := range b.Names {
		b.nameIndex[n] = i
	}
}
