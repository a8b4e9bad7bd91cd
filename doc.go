/*
Package ringdeque provides a generic, growable, double-ended circular buffer.

The RingBuffer stores its elements in a single wraparound slot array and
supports amortized constant-time insertion and removal at both ends, constant
time random access by logical index, and linear-time insertion and removal at
arbitrary positions. It is a low-level building block for queues, sliding
windows, and deques.

It uses Go's generics, allowing it to store elements of any type. The zero
value is an empty buffer ready for use.

Usage:

Create a buffer and push elements at either end:

	rb := ringdeque.New[string]()
	rb.PushBack("world")
	rb.PushFront("hello")

Access elements by logical index, or at the ends:

	first := *rb.Front()  // "hello"
	last := *rb.Back()    // "world"
	second := *rb.At(1)   // "world"

Pop from either end:

	rb.PopFront() // removes "hello"
	rb.PopBack()  // removes "world"

Capacity Management:

The buffer grows automatically when a push finds it full, doubling its
capacity (an empty buffer grows to capacity 1). Reserve pre-allocates so that
a known number of pushes triggers no reallocation:

	rb.Reserve(1024)

Capacity never shrinks. Clear removes every element but keeps the allocated
storage for reuse.

Cursors:

A Cursor is a lightweight, non-owning position into a buffer, addressed by
logical offset from the front. Cursors support random-access arithmetic and
dereference lazily, so moving a cursor never touches memory:

	for c := rb.Begin(); c.Before(rb.End()); c = c.Next() {
		fmt.Println(c.Get())
	}

	mid := rb.Begin().Add(rb.Len() / 2)
	rb.Insert(mid, "middle")

Reverse traversal walks from RBegin back to REnd with Prev.

Any operation that reallocates storage (Reserve, or a push that grows the
buffer) invalidates outstanding cursors and any pointers obtained from At,
Front, Back, or Data. Insert and erase invalidate cursors at or after the
affected position. See the method documentation for the exact rules.

Concurrency:

RingBuffer performs no internal locking. A buffer may be mutated by one
goroutine at a time; concurrent readers are safe only while no goroutine
mutates. Callers needing concurrent access must synchronize externally.

Performance Contract:

Indexed access and cursor dereference perform no bounds checking. Reading out
of the logical range, popping an empty buffer, or dereferencing a cursor past
the ends is undefined: it may panic or silently yield a stale slot. Callers
are expected to uphold these preconditions; the container trades checks for
speed.
*/
package ringdeque
