package logger

import "time"

// idleSleep is how long the drain goroutine parks when the ring is
// empty. Short enough that tail latency stays in the tens of
// microseconds, long enough not to burn a core.
const idleSleep = 50 * time.Microsecond

// drain is the single consumer. It pops up to BatchWrite slots,
// formats each into a reusable buffer, and hands the whole batch to
// the sink as one vectored write. The loop exits only after the stop
// flag is down AND a full pop pass found the ring empty, so every
// record enqueued before Close is written first.
func (l *Logger) drain() {
	defer close(l.done)

	batch := l.opts.BatchWrite
	bufs := make([][]byte, batch)
	for i := range bufs {
		bufs[i] = make([]byte, 0, recordMax)
	}
	iovs := make([][]byte, 0, batch)
	var s Slot

	for {
		// Read the flag before popping: an empty pass that started after
		// the flag went down proves nothing enqueued before Close remains.
		stopping := !l.running.Load()
		iovs = iovs[:0]
		for i := 0; i < batch; i++ {
			if !l.ring.TryPop(&s) {
				break
			}
			bufs[i] = appendRecord(bufs[i][:0], &s, l.color)
			iovs = append(iovs, bufs[i])
		}

		if len(iovs) > 0 {
			total := 0
			for _, b := range iovs {
				total += len(b)
			}
			if err := l.sink.writeBatch(iovs); err != nil {
				// Best effort: drop the batch, count the failure.
				l.writeErrors.Add(1)
				continue
			}
			l.batches.Add(1)
			l.bytesOut.Add(uint64(total))
			continue
		}

		if stopping {
			return
		}
		time.Sleep(idleSleep)
	}
}
