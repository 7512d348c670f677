// Package autobuf is a growable buffer that keeps its first few elements inline
// and only allocates once they overflow.
package autobuf

import "iter"

// InlineSize is the number of elements stored without a heap allocation.
const InlineSize = 10

type Buffer[T any] struct {
	inline [InlineSize]T
	n      int
	spill  []T
}

func (b *Buffer[T]) Append(vs ...T) {
	for _, v := range vs {
		if b.n < InlineSize {
			b.inline[b.n] = v
		} else {
			b.spill = append(b.spill, v)
		}
		b.n++
	}
}

func (b *Buffer[T]) Len() int {
	return b.n
}

// Spilled reports whether the buffer outgrew its inline storage.
func (b *Buffer[T]) Spilled() bool {
	return b.n > InlineSize
}

func (b *Buffer[T]) At(i int) T {
	if i < 0 || i >= b.n {
		panic("autobuf: index out of range")
	}
	if i < InlineSize {
		return b.inline[i]
	}
	return b.spill[i-InlineSize]
}

func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < b.n; i++ {
			if !yield(i, b.At(i)) {
				return
			}
		}
	}
}

// Reset empties the buffer, zeroing stored elements so they can be collected.
// Spill capacity is kept for reuse.
func (b *Buffer[T]) Reset() {
	var zero T
	for i := 0; i < b.n && i < InlineSize; i++ {
		b.inline[i] = zero
	}
	clear(b.spill)
	b.spill = b.spill[:0]
	b.n = 0
}
