package tqdm

import (
	"io"
	"iter"
)

// Iterator is a single-pass cursor over a sequence.
// Next advances the cursor and reports whether Value holds a new item.
// Once Next returns false, Err reports the cause, or nil when the
// sequence simply ran out of items.
type Iterator[T any] interface {
	io.Closer
	Err() error
	Next() bool
	Value() T
}

// Sequence is anything with a known length that can be iterated from the start.
type Sequence[T any] interface {
	Len() int
	Iterate() Iterator[T]
}

// SliceSeq adapts a slice to Sequence.
type SliceSeq[T any] []T

// Slice returns a Sequence over items. The slice is never modified.
func Slice[T any](items []T) SliceSeq[T] {
	return SliceSeq[T](items)
}

// Len returns the number of items in the slice.
func (s SliceSeq[T]) Len() int { return len(s) }

// Iterate returns a fresh cursor positioned before the first item.
func (s SliceSeq[T]) Iterate() Iterator[T] {
	return &sliceIter[T]{items: s}
}

type sliceIter[T any] struct {
	items  []T
	index  int
	value  T
	closed bool
}

func (i *sliceIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *sliceIter[T]) Err() error { return nil }

func (i *sliceIter[T]) Next() bool {
	if i.closed || i.index >= len(i.items) {
		return false
	}
	i.value = i.items[i.index]
	i.index++
	return true
}

func (i *sliceIter[T]) Value() T { return i.value }

// Range returns the sequence 0, 1, ..., n-1. A negative n is empty.
func Range(n int) Sequence[int] {
	return rangeSeq(max(n, 0))
}

type rangeSeq int

func (r rangeSeq) Len() int { return int(r) }

func (r rangeSeq) Iterate() Iterator[int] {
	return &rangeIter{end: int(r), value: -1}
}

type rangeIter struct {
	end    int
	value  int
	closed bool
}

func (i *rangeIter) Close() error {
	i.closed = true
	return nil
}

func (i *rangeIter) Err() error { return nil }

func (i *rangeIter) Next() bool {
	if i.closed || i.value+1 >= i.end {
		return false
	}
	i.value++
	return true
}

func (i *rangeIter) Value() int { return i.value }

// FromSeq adapts a range-over-func iterator whose length is known up front.
// n is reported by Len as is; it is not checked against what seq yields.
func FromSeq[T any](n int, seq iter.Seq[T]) Sequence[T] {
	return FromSeqErr(n, func(yield func(T, error) bool) {
		for v := range seq {
			if !yield(v, nil) {
				return
			}
		}
	})
}

// FromSeqErr is FromSeq for producers that can fail. The first non-nil
// error ends the iteration and is reported by Err.
func FromSeqErr[T any](n int, seq iter.Seq2[T, error]) Sequence[T] {
	return pullSeq[T]{n: n, seq: seq}
}

type pullSeq[T any] struct {
	n   int
	seq iter.Seq2[T, error]
}

func (s pullSeq[T]) Len() int { return s.n }

func (s pullSeq[T]) Iterate() Iterator[T] {
	next, stop := iter.Pull2(s.seq)
	return &pullIter[T]{next: next, stop: stop}
}

type pullIter[T any] struct {
	next  func() (T, error, bool)
	stop  func()
	value T
	err   error
	done  bool
}

func (i *pullIter[T]) Close() error {
	i.done = true
	i.stop()
	return nil
}

func (i *pullIter[T]) Err() error { return i.err }

func (i *pullIter[T]) Next() bool {
	if i.done {
		return false
	}
	v, err, ok := i.next()
	if !ok {
		i.done = true
		return false
	}
	if err != nil {
		i.err = err
		i.done = true
		i.stop()
		return false
	}
	i.value = v
	return true
}

func (i *pullIter[T]) Value() T { return i.value }

// Collect drains it into a slice and closes it.
// The iteration error wins over the close error.
func Collect[T any](it Iterator[T]) (items []T, err error) {
	defer func() {
		closeErr := it.Close()
		if err == nil {
			err = closeErr
		}
	}()

	for it.Next() {
		items = append(items, it.Value())
	}
	return items, it.Err()
}
