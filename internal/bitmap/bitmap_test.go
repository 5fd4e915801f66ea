package bitmap_test

import (
	"testing"

	"github.com/harshithgowdakt/colvec/internal/bitmap"
)

func TestSetGetClear(t *testing.T) {
	b := bitmap.New(19)
	if b.Len() != 19 {
		t.Fatalf("expected length 19, got %d", b.Len())
	}
	for i := 0; i < 19; i++ {
		if b.Get(i) {
			t.Fatalf("bit %d set in fresh bitmap", i)
		}
	}
	b.Set(0)
	b.Set(7)
	b.Set(8)
	b.Set(18)
	for i := 0; i < 19; i++ {
		want := i == 0 || i == 7 || i == 8 || i == 18
		if b.Get(i) != want {
			t.Fatalf("bit %d: expected %v, got %v", i, want, b.Get(i))
		}
	}
	b.Clear(7)
	if b.Get(7) {
		t.Fatalf("bit 7 still set after Clear")
	}
}

func TestFromBools(t *testing.T) {
	vals := []bool{true, false, false, true, true, false, true, true, false, true}
	b := bitmap.FromBools(vals)
	if b.Len() != len(vals) {
		t.Fatalf("expected length %d, got %d", len(vals), b.Len())
	}
	for i, v := range vals {
		if b.Get(i) != v {
			t.Fatalf("bit %d: expected %v, got %v", i, v, b.Get(i))
		}
	}
}

func TestCountSet(t *testing.T) {
	b := bitmap.New(17)
	if b.CountSet() != 0 {
		t.Fatalf("expected 0 set bits, got %d", b.CountSet())
	}
	for _, i := range []int{0, 3, 8, 15, 16} {
		b.Set(i)
	}
	if b.CountSet() != 5 {
		t.Fatalf("expected 5 set bits, got %d", b.CountSet())
	}
}

func TestCountSetIgnoresPadding(t *testing.T) {
	// Padding bits beyond the logical length must not be counted.
	b := bitmap.FromBytes([]byte{0xFF}, 3)
	if b.CountSet() != 3 {
		t.Fatalf("expected 3 set bits, got %d", b.CountSet())
	}
}

func TestSetTo(t *testing.T) {
	b := bitmap.New(4)
	b.SetTo(2, true)
	if !b.Get(2) {
		t.Fatalf("bit 2 not set")
	}
	b.SetTo(2, false)
	if b.Get(2) {
		t.Fatalf("bit 2 still set")
	}
}

func TestClone(t *testing.T) {
	b := bitmap.New(9)
	b.Set(4)
	c := b.Clone()
	c.Set(5)
	if b.Get(5) {
		t.Fatalf("clone mutation leaked into original")
	}
	if !c.Get(4) {
		t.Fatalf("clone lost bit 4")
	}
}

func TestOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on out-of-range access")
		}
	}()
	b := bitmap.New(8)
	b.Get(8)
}
