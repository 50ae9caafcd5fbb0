// Package logger is an asynchronous multi-producer single-consumer
// logging pipeline. Producers render records into fixed-size slots
// and enqueue them on a lock-free ring; a single background drain
// goroutine batches slots into vectored writes on the sink
// descriptor. Producer latency is bounded and no drain-path error
// ever reaches a producer.
package logger

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// Logger owns the ring, the sink and the drain goroutine.
type Logger struct {
	opts    Options
	ring    *Ring
	sink    *Sink
	limiter *rate.Limiter
	color   bool

	running atomic.Bool
	closed  atomic.Bool
	done    chan struct{}

	enqueued    atomic.Uint64
	filtered    atomic.Uint64
	truncated   atomic.Uint64
	rateLimited atomic.Uint64
	dropped     atomic.Uint64
	batches     atomic.Uint64
	bytesOut    atomic.Uint64
	writeErrors atomic.Uint64
}

// New opens the sink named by opts.OutputFile and starts the drain
// goroutine. The returned logger must be Closed to guarantee queued
// records reach the sink.
func New(opts Options) (*Logger, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	opts = opts.withDefaults()

	sink, err := openSink(opts.OutputFile)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		opts:  opts,
		ring:  NewRing(opts.RingSize),
		sink:  sink,
		color: opts.Color && sink.Terminal(),
		done:  make(chan struct{}),
	}
	if opts.MaxLogRate > 0 {
		l.limiter = rate.NewLimiter(rate.Limit(opts.MaxLogRate), opts.MaxLogRate)
	}

	l.running.Store(true)
	go l.drain()
	return l, nil
}

// Log renders a record on the caller's stack and enqueues it.
// Returns false when the record was gated before the ring: severity
// below MinLevel, rate limited, or (with DropOnFull) a full ring.
// Messages longer than MsgMax-1 bytes are truncated silently.
func (l *Logger) Log(level Level, format string, args ...any) bool {
	if level < l.opts.MinLevel {
		l.filtered.Add(1)
		return false
	}
	if l.limiter != nil && !l.limiter.Allow() {
		l.rateLimited.Add(1)
		return false
	}

	var s Slot
	s.level = level
	s.sec, s.nsec = walltime()

	b := s.msg[:0]
	if l.opts.EnableCaller {
		b = appendCaller(b)
	}
	b = fmt.Appendf(b, format, args...)

	if len(b) > MsgMax-1 {
		// Overflow grows b off the slot; copy the prefix back.
		copy(s.msg[:MsgMax-1], b)
		s.msg[MsgMax-1] = 0
		s.n = MsgMax - 1
		l.truncated.Add(1)
	} else {
		// b still aliases s.msg.
		s.n = uint32(len(b))
	}

	if l.opts.DropOnFull {
		if !l.ring.TryPush(&s) {
			l.dropped.Add(1)
			return false
		}
	} else {
		l.ring.Push(&s)
	}
	l.enqueued.Add(1)
	return true
}

// Tracef logs at trace severity.
func (l *Logger) Tracef(format string, args ...any) { l.Log(LevelTrace, format, args...) }

// Debugf logs at debug severity.
func (l *Logger) Debugf(format string, args ...any) { l.Log(LevelDebug, format, args...) }

// Infof logs at info severity.
func (l *Logger) Infof(format string, args ...any) { l.Log(LevelInfo, format, args...) }

// Warnf logs at warn severity.
func (l *Logger) Warnf(format string, args ...any) { l.Log(LevelWarn, format, args...) }

// Errorf logs at error severity.
func (l *Logger) Errorf(format string, args ...any) { l.Log(LevelError, format, args...) }

// Fatalf logs at fatal severity, drains the pipeline and exits.
func (l *Logger) Fatalf(format string, args ...any) {
	l.Log(LevelFatal, format, args...)
	l.Close()
	os.Exit(1)
}

// MinLevel returns the configured severity gate.
func (l *Logger) MinLevel() Level { return l.opts.MinLevel }

// Close stops the drain goroutine after it has observed an empty
// ring, then releases the sink if owned. Every Log that returned true
// before Close was called is on the sink when Close returns. Safe to
// call more than once.
func (l *Logger) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		<-l.done
		return nil
	}
	l.running.Store(false)
	<-l.done
	return l.sink.Close()
}

// Stats is a point-in-time snapshot of the pipeline counters.
type Stats struct {
	Enqueued    uint64 `json:"enqueued"`
	Filtered    uint64 `json:"filtered"`
	Truncated   uint64 `json:"truncated"`
	RateLimited uint64 `json:"rate_limited"`
	Dropped     uint64 `json:"dropped"`
	Queued      int    `json:"queued"`
	Batches     uint64 `json:"batches"`
	BytesOut    uint64 `json:"bytes_out"`
	WriteErrors uint64 `json:"write_errors"`
}

// Stats snapshots the pipeline counters. Individual counters are
// consistent; the set as a whole is racy under load.
func (l *Logger) Stats() Stats {
	return Stats{
		Enqueued:    l.enqueued.Load(),
		Filtered:    l.filtered.Load(),
		Truncated:   l.truncated.Load(),
		RateLimited: l.rateLimited.Load(),
		Dropped:     l.dropped.Load(),
		Queued:      l.ring.Len(),
		Batches:     l.batches.Load(),
		BytesOut:    l.bytesOut.Load(),
		WriteErrors: l.writeErrors.Load(),
	}
}

// String renders the snapshot as JSON.
func (s Stats) String() string {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf("stats: %v", err)
	}
	return string(b)
}
