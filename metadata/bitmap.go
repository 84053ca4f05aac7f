package metadata

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a set of record positions backed by a roaring bitmap.
type Bitmap struct {
	rb *roaring.Bitmap
}

// NewBitmap creates a new empty bitmap.
func NewBitmap() *Bitmap {
	return &Bitmap{rb: roaring.New()}
}

// Range returns a bitmap holding the positions [0, n).
func Range(n int) *Bitmap {
	b := NewBitmap()
	if n > 0 {
		b.rb.AddRange(0, uint64(n))
	}
	return b
}

// Add adds a position to the bitmap.
func (b *Bitmap) Add(pos uint32) {
	b.rb.Add(pos)
}

// IsEmpty returns true if the bitmap is empty.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of positions in the bitmap.
func (b *Bitmap) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// And computes the intersection of two bitmaps in place.
func (b *Bitmap) And(other *Bitmap) {
	b.rb.And(other.rb)
}

// Positions returns an ascending iterator over the bitmap.
func (b *Bitmap) Positions() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
