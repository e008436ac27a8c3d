// Package bitmap provides the row set used to intersect range query results.
//
// Rows are dense uint32 numbers assigned by the index, so a compressed
// Roaring bitmap keeps candidate sets small and makes AND cheap even when
// a single rule matches most of the data set.
package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a set of row numbers.
type Bitmap struct {
	rb *roaring.Bitmap
}

// New creates a new empty bitmap.
func New() *Bitmap {
	return &Bitmap{
		rb: roaring.New(),
	}
}

// Of creates a bitmap holding rows.
func Of(rows ...uint32) *Bitmap {
	return &Bitmap{
		rb: roaring.BitmapOf(rows...),
	}
}

// Add adds a row to the bitmap.
func (b *Bitmap) Add(row uint32) {
	b.rb.Add(row)
}

// Contains checks if a row is in the bitmap.
func (b *Bitmap) Contains(row uint32) bool {
	return b.rb.Contains(row)
}

// IsEmpty returns true if the bitmap is empty.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of rows in the bitmap.
func (b *Bitmap) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{
		rb: b.rb.Clone(),
	}
}

// And intersects b with other in place.
func (b *Bitmap) And(other *Bitmap) {
	b.rb.And(other.rb)
}

// Iterator returns an iterator over the rows in ascending order.
func (b *Bitmap) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
