package event

// ReaderID is a per-consumer cursor handle into a Channel
type ReaderID int

// Channel is a single-writer, multi-reader broadcast log
// Each registered reader owns an absolute offset; Read returns everything written since that offset
// Readers see events in write order, exactly once
//
// Overflow: oldest events dropped when capacity is reached, lagging readers skip forward
type Channel[T any] struct {
	buf      []T
	base     uint64   // Absolute index of buf[0]
	cursors  []uint64 // Absolute read offset per reader
	capacity int
	dropped  uint64
}

// NewChannel creates a channel holding at most capacity unread events
// Non-positive capacity means unbounded
func NewChannel[T any](capacity int) *Channel[T] {
	return &Channel[T]{
		buf:      make([]T, 0, 64),
		capacity: capacity,
	}
}

// Register adds a reader positioned at the current end of the log
// Events written before registration are never delivered to it
func (c *Channel[T]) Register() ReaderID {
	c.cursors = append(c.cursors, c.end())
	return ReaderID(len(c.cursors) - 1)
}

// Write appends one event
func (c *Channel[T]) Write(ev T) {
	if c.capacity > 0 && len(c.buf) >= c.capacity {
		c.buf = c.buf[1:]
		c.base++
		c.dropped++
		for i, cur := range c.cursors {
			if cur < c.base {
				c.cursors[i] = c.base
			}
		}
	}
	c.buf = append(c.buf, ev)
}

// Read returns all events since the reader's last call and advances its cursor
// The returned slice is a copy; writes during iteration do not alias it
func (c *Channel[T]) Read(r ReaderID) []T {
	cur := c.cursors[r]
	end := c.end()
	if cur >= end {
		return nil
	}
	out := make([]T, end-cur)
	copy(out, c.buf[cur-c.base:])
	c.cursors[r] = end
	return out
}

// Pending returns the number of unread events for reader r
func (c *Channel[T]) Pending(r ReaderID) int {
	return int(c.end() - c.cursors[r])
}

// Len returns the number of retained events
func (c *Channel[T]) Len() int {
	return len(c.buf)
}

// Dropped returns the total number of events lost to overflow
func (c *Channel[T]) Dropped() uint64 {
	return c.dropped
}

// Rotate discards events every reader has consumed
// Called once per tick; with no readers the whole log is discarded
func (c *Channel[T]) Rotate() {
	low := c.end()
	for _, cur := range c.cursors {
		if cur < low {
			low = cur
		}
	}
	n := int(low - c.base)
	if n == 0 {
		return
	}
	remaining := copy(c.buf, c.buf[n:])
	var zero T
	for i := remaining; i < len(c.buf); i++ {
		c.buf[i] = zero
	}
	c.buf = c.buf[:remaining]
	c.base = low
}

func (c *Channel[T]) end() uint64 {
	return c.base + uint64(len(c.buf))
}
