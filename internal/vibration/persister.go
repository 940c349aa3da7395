package vibration

// RowSink is the durable destination for completed rows. A batch
// handed to InsertRows must land atomically: either every row commits
// or none do. Implemented by the SQLite store.
type RowSink interface {
	InsertRows(rows []Row) error
}

// Persister accumulates completed rows and flushes them in fixed-size
// transactional batches. A batch that fails to flush is logged and
// discarded rather than retried: re-inserting risks duplicates and
// queueing risks unbounded growth, so the live pipeline keeps its
// availability at the cost of that batch. Spilling failed batches to
// a local queue is a possible future improvement.
type Persister struct {
	sink    RowSink
	size    int
	pending []Row
}

// NewPersister creates a persister flushing every size rows.
func NewPersister(sink RowSink, size int) *Persister {
	return &Persister{
		sink:    sink,
		size:    size,
		pending: make([]Row, 0, size),
	}
}

// Append queues a row and flushes once the batch threshold is reached.
// Flush failures are absorbed here; the caller keeps processing.
func (b *Persister) Append(row Row) {
	b.pending = append(b.pending, row)
	if len(b.pending) >= b.size {
		b.flush()
	}
}

// Close flushes any remaining rows. It is the stream-termination drain
// step and must run before the store handle is released. The error is
// returned for logging; a failed final flush never crashes the
// process.
func (b *Persister) Close() error {
	if len(b.pending) == 0 {
		return nil
	}
	n := len(b.pending)
	err := b.sink.InsertRows(b.pending)
	b.pending = b.pending[:0]
	if err != nil {
		return err
	}
	diagf("final flush: %d rows", n)
	return nil
}

// Pending returns the number of rows awaiting flush.
func (b *Persister) Pending() int {
	return len(b.pending)
}

func (b *Persister) flush() {
	if err := b.sink.InsertRows(b.pending); err != nil {
		opsf("dropping batch of %d rows after failed flush: %v", len(b.pending), err)
	} else {
		diagf("flushed %d rows", len(b.pending))
	}
	b.pending = b.pending[:0]
}
