package ringdeque

// Cursor is a position inside a RingBuffer, held as a logical offset from
// the front. It does not own or pin anything: arithmetic is pure offset math,
// and the offset is translated to a storage slot only when the cursor is
// dereferenced, through the buffer's state at that moment.
//
// A cursor's offset may move before the front or past the end during
// arithmetic; such a cursor compares and moves normally but must not be
// dereferenced. A cursor is invalidated by any reallocation of its buffer,
// and by inserts or erases at or before its position.
type Cursor[T any] struct {
	buf    *RingBuffer[T]
	offset int
}

// slot translates the cursor's logical offset to a storage slot index.
func (c Cursor[T]) slot() int {
	return (c.buf.head + c.offset) % len(c.buf.data)
}

// Next returns a cursor one position forward.
func (c Cursor[T]) Next() Cursor[T] {
	c.offset++
	return c
}

// Prev returns a cursor one position backward.
func (c Cursor[T]) Prev() Cursor[T] {
	c.offset--
	return c
}

// Add returns a cursor n positions forward (backward for negative n).
func (c Cursor[T]) Add(n int) Cursor[T] {
	c.offset += n
	return c
}

// Sub returns a cursor n positions backward (forward for negative n).
func (c Cursor[T]) Sub(n int) Cursor[T] {
	c.offset -= n
	return c
}

// Diff returns the signed distance from other to c. Only meaningful for
// cursors of the same buffer.
func (c Cursor[T]) Diff(other Cursor[T]) int {
	return c.offset - other.offset
}

// Offset returns the cursor's logical offset from the front of its buffer.
func (c Cursor[T]) Offset() int {
	return c.offset
}

// Ref returns a pointer to the element at the cursor's position. The cursor
// must be within the logical range of its buffer; this is not checked.
func (c Cursor[T]) Ref() *T {
	return &c.buf.data[c.slot()]
}

// Get returns the element at the cursor's position.
func (c Cursor[T]) Get() T {
	return *c.Ref()
}

// Set overwrites the element at the cursor's position.
func (c Cursor[T]) Set(v T) {
	*c.Ref() = v
}

// At returns a pointer to the element n positions forward of the cursor.
func (c Cursor[T]) At(n int) *T {
	return c.Add(n).Ref()
}

// Equal reports whether both cursors address the same position of the same
// buffer.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.buf == other.buf && c.offset == other.offset
}

// Before reports whether c precedes other in the same buffer. Cursors of
// different buffers are never Before one another.
func (c Cursor[T]) Before(other Cursor[T]) bool {
	return c.buf == other.buf && c.offset < other.offset
}

// After reports whether c follows other in the same buffer. Cursors of
// different buffers are never After one another.
func (c Cursor[T]) After(other Cursor[T]) bool {
	return c.buf == other.buf && c.offset > other.offset
}

// iterSwap exchanges the elements at two cursor positions.
func iterSwap[T any](a, b Cursor[T]) {
	pa, pb := a.Ref(), b.Ref()
	*pa, *pb = *pb, *pa
}
