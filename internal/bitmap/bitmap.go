// Package bitmap provides the packed bit sequence used for boolean values
// and for per-row validity (a clear bit marks the row NULL). Bits are
// stored LSB-first within each byte.
package bitmap

import "math/bits"

// Bitmap is a fixed-length packed bit sequence.
type Bitmap struct {
	data   []byte
	length int
}

// New creates a bitmap of n bits, all clear.
func New(n int) *Bitmap {
	return &Bitmap{
		data:   make([]byte, (n+7)/8),
		length: n,
	}
}

// FromBools packs a bool slice into a bitmap.
func FromBools(vals []bool) *Bitmap {
	b := New(len(vals))
	for i, v := range vals {
		if v {
			b.Set(i)
		}
	}
	return b
}

// FromBytes wraps an existing packed buffer without copying. The buffer
// must hold at least (n+7)/8 bytes.
func FromBytes(data []byte, n int) *Bitmap {
	return &Bitmap{data: data, length: n}
}

// Len returns the number of bits.
func (b *Bitmap) Len() int { return b.length }

// Bytes returns the backing buffer. Trailing padding bits are undefined.
func (b *Bitmap) Bytes() []byte { return b.data }

// Get returns bit i.
func (b *Bitmap) Get(i int) bool {
	b.check(i)
	return b.data[i>>3]&(1<<(i&7)) != 0
}

// Set sets bit i.
func (b *Bitmap) Set(i int) {
	b.check(i)
	b.data[i>>3] |= 1 << (i & 7)
}

// Clear clears bit i.
func (b *Bitmap) Clear(i int) {
	b.check(i)
	b.data[i>>3] &^= 1 << (i & 7)
}

// SetTo sets bit i to v.
func (b *Bitmap) SetTo(i int, v bool) {
	if v {
		b.Set(i)
	} else {
		b.Clear(i)
	}
}

// CountSet returns the number of set bits.
func (b *Bitmap) CountSet() int {
	n := 0
	full := b.length / 8
	for _, by := range b.data[:full] {
		n += bits.OnesCount8(by)
	}
	if rem := b.length % 8; rem > 0 {
		n += bits.OnesCount8(b.data[full] & (1<<rem - 1))
	}
	return n
}

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	d := make([]byte, len(b.data))
	copy(d, b.data)
	return &Bitmap{data: d, length: b.length}
}

func (b *Bitmap) check(i int) {
	if i < 0 || i >= b.length {
		panic("bitmap: index out of range")
	}
}
