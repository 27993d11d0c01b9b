// Package byteq provides a fixed-capacity circular byte queue for passing
// byte streams between goroutines.
//
// The queue is concurrency-safe: all exported methods use internal locking
// and may be called from multiple goroutines. Construct a queue with New;
// capacity is fixed at construction and the backing buffer never grows.
// Put and Get transfer as many bytes as capacity and occupancy allow and
// report the short count when the queue fills or empties mid-transfer; a
// short transfer is a normal outcome, not an error.
//
// The root package never blocks. For consumers that need to wait for data —
// indefinitely, with a timeout, or under a context — use the blockingqueue
// subpackage, which layers a condition variable over this queue.
package byteq
