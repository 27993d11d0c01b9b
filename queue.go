package byteq

import (
	"errors"
	"sync"
)

// ErrInvalidArgument is returned when an operation receives a nil or empty
// byte slice, or when New is asked for a non-positive capacity. Operations
// that return it have no side effects.
var ErrInvalidArgument = errors.New("byteq: invalid argument")

// Queue is a fixed-capacity, concurrency-safe circular byte FIFO. Bytes are
// stored in a ring of capacity+1 slots; the one spare slot keeps a full queue
// distinguishable from an empty one by cursor comparison alone. The zero
// value is not ready for use; construct via New.
type Queue struct {
	mu    sync.Mutex
	buf   []byte // len(buf) == capacity+1, one slot is the full/empty sentinel
	head  int    // oldest byte; meaningful only when count > 0
	tail  int    // one past the newest byte; next write position
	count int    // occupied bytes, 0..len(buf)-1
}

// New creates a queue that holds up to size bytes.
//
// Returns ErrInvalidArgument when size is not positive. The backing buffer is
// allocated once and never grows. All exported methods are safe for
// concurrent use.
func New(size int) (*Queue, error) {
	if size <= 0 {
		return nil, ErrInvalidArgument
	}
	return &Queue{buf: make([]byte, size+1)}, nil
}

// Put copies bytes from p into the queue, stopping early if the queue fills.
//
// Returns the number of bytes accepted, which is less than len(p) when the
// queue ran out of space; a short write is not an error and the caller must
// retry the remainder if full transfer is required. Put never blocks.
// A nil or empty p is rejected with ErrInvalidArgument. Complexity: O(n).
func (q *Queue) Put(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, ErrInvalidArgument
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(p)
	if free := q.free(); n > free {
		n = free
	}
	q.write(p[:n])
	return n, nil
}

// Get copies up to len(p) bytes out of the queue in FIFO order, stopping
// early if the queue empties.
//
// Returns the number of bytes copied; zero with a nil error means the queue
// was empty. Get never blocks — see the blockingqueue subpackage for waiting
// consumers. A nil or empty p is rejected with ErrInvalidArgument.
// Complexity: O(n).
func (q *Queue) Get(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, ErrInvalidArgument
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(p)
	if n > q.count {
		n = q.count
	}
	q.read(p[:n])
	return n, nil
}

// Peek copies up to len(p) bytes from the head of the queue without
// consuming them. Returns the number of bytes copied.
// A nil or empty p is rejected with ErrInvalidArgument.
func (q *Queue) Peek(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, ErrInvalidArgument
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(p)
	if n > q.count {
		n = q.count
	}
	m := copy(p[:n], q.buf[q.head:])
	copy(p[m:n], q.buf)
	return n, nil
}

// Len returns the number of bytes currently queued.
// Complexity: O(1). Safe for concurrent use, but the value is a snapshot and
// may be stale by the time the caller acts on it.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Cap returns the queue's logical capacity: the maximum number of bytes it
// can hold. Fixed at construction.
func (q *Queue) Cap() int {
	return len(q.buf) - 1
}

// Free returns the number of bytes the queue can accept before filling.
// Snapshot semantics, as with Len.
func (q *Queue) Free() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.free()
}

// IsEmpty reports whether the queue holds no bytes.
// Equivalent to Len() == 0.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

// IsFull reports whether the queue is at capacity.
func (q *Queue) IsFull() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return (q.tail+1)%len(q.buf) == q.head
}

// Clear discards all queued bytes by resetting the cursors. The backing
// buffer is kept; the queue behaves as freshly constructed afterwards.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.head, q.tail, q.count = 0, 0, 0
}

// free returns the writable byte count. Caller holds mu.
func (q *Queue) free() int {
	return (q.head - q.tail - 1 + len(q.buf)) % len(q.buf)
}

// write copies p into the ring at tail and advances the cursor. Caller holds
// mu and has clamped len(p) to the free space.
func (q *Queue) write(p []byte) {
	n := copy(q.buf[q.tail:], p)
	copy(q.buf, p[n:])
	q.tail = (q.tail + len(p)) % len(q.buf)
	q.count += len(p)
}

// read copies len(p) bytes out of the ring at head and advances the cursor.
// Caller holds mu and has clamped len(p) to the occupied count.
func (q *Queue) read(p []byte) {
	n := copy(p, q.buf[q.head:])
	copy(p[n:], q.buf)
	q.head = (q.head + len(p)) % len(q.buf)
	q.count -= len(p)
}
