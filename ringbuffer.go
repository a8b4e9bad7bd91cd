package ringdeque

// RingBuffer is a generic, growable, double-ended circular buffer. Logical
// element i lives in slot (head+i) % cap, so both ends can be pushed and
// popped in constant time without moving the others.
//
// The zero value is an empty buffer with no allocated storage.
type RingBuffer[T any] struct {
	// data holds the slots; len(data) is the capacity. Only the slots in
	// the logical range [head, head+size) modulo len(data) hold live
	// elements; every other slot is the zero value.
	data []T
	// head is the slot index of the logical first element. Meaningless
	// while the capacity is zero.
	head int
	// size is the number of live elements, 0 <= size <= len(data).
	size int
}

// New creates an empty RingBuffer with no allocated storage.
func New[T any]() *RingBuffer[T] {
	return &RingBuffer[T]{}
}

// Len returns the number of elements in the buffer.
func (rb *RingBuffer[T]) Len() int {
	return rb.size
}

// Cap returns the number of slots currently allocated.
func (rb *RingBuffer[T]) Cap() int {
	return len(rb.data)
}

// Empty reports whether the buffer holds no elements.
func (rb *RingBuffer[T]) Empty() bool {
	return rb.size == 0
}

// At returns a pointer to the element at logical index i. It performs no
// bounds checking: i must satisfy 0 <= i < Len(). The pointer is valid until
// the next reallocation, or until an insert or erase shifts the element.
func (rb *RingBuffer[T]) At(i int) *T {
	return &rb.data[(rb.head+i)%len(rb.data)]
}

// Front returns a pointer to the first element. The buffer must not be empty.
func (rb *RingBuffer[T]) Front() *T {
	return rb.At(0)
}

// Back returns a pointer to the last element. The buffer must not be empty.
func (rb *RingBuffer[T]) Back() *T {
	return rb.At(rb.size - 1)
}

// Data exposes the raw slot storage. A flat index into the returned slice is
// not a logical index unless the buffer's head happens to sit at slot 0; use
// At for logical addressing. The slice is valid until the next reallocation.
func (rb *RingBuffer[T]) Data() []T {
	return rb.data
}

// PushBack appends v after the last element, growing the buffer if it is
// full. Amortized O(1). Growth either fully succeeds or leaves the buffer
// untouched.
func (rb *RingBuffer[T]) PushBack(v T) {
	if rb.size == len(rb.data) {
		rb.grow()
	}
	rb.data[(rb.head+rb.size)%len(rb.data)] = v
	rb.size++
}

// PushFront prepends v before the first element, growing the buffer if it is
// full. Amortized O(1). Growth either fully succeeds or leaves the buffer
// untouched.
func (rb *RingBuffer[T]) PushFront(v T) {
	if rb.size == len(rb.data) {
		rb.grow()
	}
	rb.head = (rb.head - 1 + len(rb.data)) % len(rb.data)
	rb.data[rb.head] = v
	rb.size++
}

// PopBack removes the last element. The buffer must not be empty. The vacated
// slot is zeroed so the element no longer pins any memory.
func (rb *RingBuffer[T]) PopBack() {
	var zero T
	rb.size--
	rb.data[(rb.head+rb.size)%len(rb.data)] = zero
}

// PopFront removes the first element. The buffer must not be empty. The
// vacated slot is zeroed so the element no longer pins any memory.
func (rb *RingBuffer[T]) PopFront() {
	var zero T
	rb.data[rb.head] = zero
	rb.head = (rb.head + 1) % len(rb.data)
	rb.size--
}

// Clear removes every element but keeps the allocated storage for reuse.
func (rb *RingBuffer[T]) Clear() {
	for !rb.Empty() {
		rb.PopBack()
	}
}

// Reserve grows the storage so at least n elements fit without further
// reallocation. It never shrinks. Live elements are re-based at slot 0, so
// outstanding cursors and pointers into the old storage are invalidated.
// The new storage is fully populated before the buffer adopts it.
func (rb *RingBuffer[T]) Reserve(n int) {
	if len(rb.data) >= n {
		return
	}
	newData := make([]T, n)
	k := copy(newData, rb.data[rb.head:min(rb.head+rb.size, len(rb.data))])
	copy(newData[k:], rb.data[:rb.size-k])
	rb.data = newData
	rb.head = 0
}

// grow doubles the capacity; an unallocated buffer grows to capacity 1.
func (rb *RingBuffer[T]) grow() {
	rb.Reserve(max(1, 2*len(rb.data)))
}

// Insert places v immediately before the position pos refers to and returns a
// cursor to the inserted element. Elements keep their relative order. The
// element is pushed at whichever end is nearer to pos and swapped into place,
// so the shift touches at most half the buffer. O(n) worst case; on a panic
// mid-shift the buffer stays valid but may be partially reordered. Cursors at
// or after pos are invalidated (all cursors, if a growth occurs).
func (rb *RingBuffer[T]) Insert(pos Cursor[T], v T) Cursor[T] {
	delta := pos.Diff(rb.Begin())
	if delta < rb.size/2 {
		rb.PushFront(v)
		spot := rb.Begin().Add(delta)
		for i := rb.Begin(); i.Before(spot); i = i.Next() {
			iterSwap(i, i.Next())
		}
		return spot
	}
	rb.PushBack(v)
	spot := rb.Begin().Add(delta)
	for i := rb.End().Prev(); i.After(spot); i = i.Prev() {
		iterSwap(i, i.Prev())
	}
	return spot
}

// Erase removes the element pos refers to and returns a cursor to its
// successor. Equivalent to EraseRange(pos, pos.Next()).
func (rb *RingBuffer[T]) Erase(pos Cursor[T]) Cursor[T] {
	return rb.EraseRange(pos, pos.Next())
}

// EraseRange removes the half-open logical range [first, last), preserving
// the order of the survivors. The gap is closed toward whichever end has
// fewer surviving elements, then that many elements are popped from that end,
// so the shift touches at most half the buffer. O(n) worst case; on a panic
// mid-shift the buffer stays valid but may be partially reordered. Returns a
// cursor to the element that followed the erased range. Cursors at or after
// first are invalidated.
func (rb *RingBuffer[T]) EraseRange(first, last Cursor[T]) Cursor[T] {
	delta := last.Diff(first)
	if delta <= 0 {
		return first
	}
	if rb.End().Diff(last) < rb.size/2 {
		for i := first; i.Add(delta).Before(rb.End()); i = i.Next() {
			iterSwap(i, i.Add(delta))
		}
		for n := 0; n < delta; n++ {
			rb.PopBack()
		}
		return first
	}
	diff := first.Diff(rb.Begin())
	floor := rb.Begin().Add(delta)
	for i := last.Prev(); i.After(floor) || i.Equal(floor); i = i.Prev() {
		iterSwap(i, i.Sub(delta))
	}
	for n := 0; n < delta; n++ {
		rb.PopFront()
	}
	return rb.Begin().Add(diff)
}

// Clone returns a deep copy. The copy is compacted: its capacity equals the
// source's length and its elements start at slot 0, regardless of how the
// source is laid out.
func (rb *RingBuffer[T]) Clone() *RingBuffer[T] {
	c := &RingBuffer[T]{size: rb.size}
	if rb.size > 0 {
		c.data = make([]T, rb.size)
		k := copy(c.data, rb.data[rb.head:])
		copy(c.data[k:], rb.data[:rb.size-k])
	}
	return c
}

// CopyFrom replaces the buffer's contents with a deep copy of other. The copy
// is built in full before being swapped in, so on failure the receiver is
// unchanged. Copying a buffer from itself is a no-op.
func (rb *RingBuffer[T]) CopyFrom(other *RingBuffer[T]) {
	if rb.Same(other) {
		return
	}
	tmp := other.Clone()
	rb.Swap(tmp)
}

// Swap exchanges the contents of two buffers in O(1) by swapping their
// internal fields. No elements are copied. Cursors keep following the buffer
// they were created from, so after a swap they see the other contents.
func (rb *RingBuffer[T]) Swap(other *RingBuffer[T]) {
	rb.data, other.data = other.data, rb.data
	rb.head, other.head = other.head, rb.head
	rb.size, other.size = other.size, rb.size
}

// Same reports whether two buffers are the same buffer: identical backing
// storage, head, and length. It is an identity comparison, not a content
// comparison; two independently allocated buffers with equal elements are
// never Same, while two empty buffers that never allocated are. Use Equal
// for element-wise comparison.
func (rb *RingBuffer[T]) Same(other *RingBuffer[T]) bool {
	return rb.sameStorage(other) && rb.head == other.head && rb.size == other.size
}

func (rb *RingBuffer[T]) sameStorage(other *RingBuffer[T]) bool {
	if len(rb.data) == 0 || len(other.data) == 0 {
		return len(rb.data) == 0 && len(other.data) == 0
	}
	return &rb.data[0] == &other.data[0]
}

// Equal reports whether both buffers hold the same elements in the same
// logical order, compared with eq. Storage layout, capacity, and head
// position are ignored.
func (rb *RingBuffer[T]) Equal(other *RingBuffer[T], eq func(a, b T) bool) bool {
	if rb.size != other.size {
		return false
	}
	for i := 0; i < rb.size; i++ {
		if !eq(*rb.At(i), *other.At(i)) {
			return false
		}
	}
	return true
}

// Items returns a copy of the elements ordered from front to back. The buffer
// is not modified.
func (rb *RingBuffer[T]) Items() []T {
	if rb.size == 0 {
		return nil
	}
	items := make([]T, rb.size)
	k := copy(items, rb.data[rb.head:])
	copy(items[k:], rb.data[:rb.size-k])
	return items
}

// Begin returns a cursor to the first element (equal to End on an empty
// buffer).
func (rb *RingBuffer[T]) Begin() Cursor[T] {
	return Cursor[T]{buf: rb}
}

// End returns the past-the-end cursor. It must not be dereferenced.
func (rb *RingBuffer[T]) End() Cursor[T] {
	return Cursor[T]{buf: rb, offset: rb.size}
}

// RBegin returns a cursor to the last element, the starting point of a
// reverse traversal with Prev (equal to REnd on an empty buffer).
func (rb *RingBuffer[T]) RBegin() Cursor[T] {
	return Cursor[T]{buf: rb, offset: rb.size - 1}
}

// REnd returns the before-the-front sentinel ending a reverse traversal. It
// must not be dereferenced.
func (rb *RingBuffer[T]) REnd() Cursor[T] {
	return Cursor[T]{buf: rb, offset: -1}
}
