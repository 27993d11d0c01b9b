package byteq

// Advanced: Blocking and Timeout Patterns
//
// byteq exposes a non-blocking, concurrency-safe byte FIFO. Blocking
// consumption — a reader goroutine that sleeps until a producer delivers
// bytes — lives in the blockingqueue subpackage, which pairs this queue with
// a sync.Cond and uses the standard "wait in a loop" pattern so spurious
// wakeups re-enter the wait.
//
// Typical driver-feeds-consumer wiring:
//
//	bq, _ := blockingqueue.New(4096)
//
//	// Producer (e.g., a device read loop). Put never blocks; it reports a
//	// short count when the queue is full and the remainder must be retried.
//	for chunk := range incoming {
//	    for len(chunk) > 0 {
//	        n, err := bq.Put(chunk)
//	        if err != nil {
//	            return // closed
//	        }
//	        chunk = chunk[n:]
//	    }
//	}
//
//	// Consumer. Get blocks while empty and returns whatever is available,
//	// up to len(buf).
//	buf := make([]byte, 512)
//	for {
//	    n, err := bq.Get(buf)
//	    if err != nil {
//	        return // closed
//	    }
//	    handle(buf[:n])
//	}
//
// When the consumer must not wait forever, GetTimeout bounds the wait with a
// deadline fixed at call entry (a timeout of zero is a pure poll), and
// GetContext ties the wait to a context for cancellation.
