// Package turn provides circular ordering over a fixed list of players. The
// same ordering drives the turns of a round and the bidding of an auction.
package turn

import (
	"fmt"
	"iter"
)

// Order is a circular sequence over a fixed list. same locates an item in the
// list; it lets callers look players up by identity rather than by value.
type Order[T any] struct {
	items []T
	same  func(a, b T) bool
}

// NewOrder returns an order over items. The slice is not copied; callers must
// not reorder it afterwards.
func NewOrder[T any](items []T, same func(a, b T) bool) *Order[T] {
	return &Order[T]{items: items, same: same}
}

func (o *Order[T]) Len() int { return len(o.items) }

func (o *Order[T]) index(item T) int {
	for i, it := range o.items {
		if o.same(it, item) {
			return i
		}
	}
	panic(fmt.Sprintf("turn: item %v is not part of the order", item))
}

func (o *Order[T]) nextIndex(i int) int {
	return (i + 1) % len(o.items)
}

// Next returns the item immediately after item.
func (o *Order[T]) Next(item T) T {
	return o.items[o.nextIndex(o.index(item))]
}

// CirclingFrom yields item and then cycles through the list forever. Each
// range over the returned sequence starts again from item.
func (o *Order[T]) CirclingFrom(item T) iter.Seq[T] {
	start := o.index(item)
	return func(yield func(T) bool) {
		for i := start; ; i = o.nextIndex(i) {
			if !yield(o.items[i]) {
				return
			}
		}
	}
}

// OneCircleFromNext returns the items following item, wrapping once and ending
// with item itself.
func (o *Order[T]) OneCircleFromNext(item T) []T {
	n := len(o.items)
	i := o.index(item)
	out := make([]T, 0, n)
	for k := 0; k < n; k++ {
		i = o.nextIndex(i)
		out = append(out, o.items[i])
	}
	return out
}
