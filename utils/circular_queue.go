package utils

import (
	"iter"

	"github.com/freerun/freerun/oerror"
)

// CircularQueue is a fixed capacity FIFO. Appending to a full queue drops the oldest element.
type CircularQueue[T any] struct {
	items []T
	head  int
	tail  int
	size  int
}

// NewCircularQueue returns a queue holding up to capacity elements. If fill is non-nil the queue starts full
// of values returned by it; otherwise it starts empty.
func NewCircularQueue[T any](capacity int, fill func() T) *CircularQueue[T] {
	queue := &CircularQueue[T]{items: make([]T, max(capacity, 0))}
	if fill != nil {
		for index := range queue.items {
			queue.items[index] = fill()
		}
		queue.size = len(queue.items)
	}
	return queue
}

// Get returns the element at logical position index (0 = oldest), or an error if out of range.
func (q *CircularQueue[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= q.size {
		return zero, oerror.New("circular queue: get %d out of range [0, %d)", index, q.size)
	}
	return q.items[(q.head+index)%len(q.items)], nil
}

// Set replaces the element at logical position index (0 = oldest), or returns an error if out of range.
func (q *CircularQueue[T]) Set(index int, item T) error {
	if index < 0 || index >= q.size {
		return oerror.New("circular queue: set %d out of range [0, %d)", index, q.size)
	}
	q.items[(q.head+index)%len(q.items)] = item
	return nil
}

// Newest returns the most recently appended element. ok is false if the queue is empty.
func (q *CircularQueue[T]) Newest() (item T, ok bool) {
	if q.size == 0 {
		return item, false
	}
	return q.items[(q.head+q.size-1)%len(q.items)], true
}

// Iter yields the elements from oldest to newest.
func (q *CircularQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for index := range q.size {
			if !yield(q.items[(q.head+index)%len(q.items)]) {
				return
			}
		}
	}
}

// Len returns the number of elements held.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Cap returns the maximum number of elements the queue can hold.
func (q *CircularQueue[T]) Cap() int {
	return len(q.items)
}

// Pop removes and returns the oldest element. ok is false if the queue is empty.
func (q *CircularQueue[T]) Pop() (item T, ok bool) {
	if q.size == 0 {
		return item, false
	}
	item = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return item, true
}

// Append adds an item as the newest element, or returns an error if the queue has zero capacity.
func (q *CircularQueue[T]) Append(item T) error {
	if len(q.items) == 0 {
		return oerror.New("circular queue: append on zero-capacity queue")
	}
	q.items[q.tail] = item
	if q.size == len(q.items) {
		// Full: the write above replaced the oldest element.
		q.head = (q.head + 1) % len(q.items)
	} else {
		q.size++
	}
	q.tail = (q.tail + 1) % len(q.items)
	return nil
}

// Clear empties the queue without changing its capacity.
func (q *CircularQueue[T]) Clear() {
	clear(q.items)
	q.head, q.tail, q.size = 0, 0, 0
}
