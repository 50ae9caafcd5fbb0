package logger

import "fmt"

const (
	defaultRingSize   = 1024
	defaultBatchWrite = 256

	// maxBatchWrite keeps one batch within IOV_MAX descriptors.
	maxBatchWrite = 1024
)

// Options configures a Logger. The zero value is not usable on its
// own: OutputFile must name a sink.
type Options struct {
	// MinLevel drops records of strictly lower severity before they
	// reach the ring. Default LevelTrace (everything passes).
	MinLevel Level

	// OutputFile selects the sink: "stdout", "stderr", or a path
	// opened with create-or-append semantics (mode 0644). Required.
	OutputFile string

	// BatchWrite caps the number of records drained into one vectored
	// write. Default 256.
	BatchWrite int

	// RingSize is the ring capacity in slots; must be a power of two.
	// Default 1024.
	RingSize int

	// DropOnFull switches the producer from blocking on a full ring
	// to dropping the record and returning false.
	DropOnFull bool

	// MaxLogRate limits accepted records per second across all
	// producers. Zero means unlimited.
	MaxLogRate int

	// EnableCaller prefixes each message with the producing
	// file:line. Costs a stack lookup per record.
	EnableCaller bool

	// Color wraps level tags in ANSI colors when the sink is a
	// terminal. Off by default so the wire format stays byte-exact.
	Color bool
}

// withDefaults fills unset numeric fields.
func (o Options) withDefaults() Options {
	if o.BatchWrite <= 0 {
		o.BatchWrite = defaultBatchWrite
	}
	if o.BatchWrite > maxBatchWrite {
		o.BatchWrite = maxBatchWrite
	}
	if o.RingSize <= 0 {
		o.RingSize = defaultRingSize
	}
	return o
}

// Validate reports the first configuration error.
func (o Options) Validate() error {
	if o.OutputFile == "" {
		return fmt.Errorf("output_file is required")
	}
	if o.MinLevel >= levelCount {
		return fmt.Errorf("min_level out of range: %d", o.MinLevel)
	}
	if o.BatchWrite < 0 {
		return fmt.Errorf("batch_write cannot be negative")
	}
	if o.MaxLogRate < 0 {
		return fmt.Errorf("max_log_rate cannot be negative")
	}
	if o.RingSize < 0 || (o.RingSize > 0 && o.RingSize&(o.RingSize-1) != 0) {
		return fmt.Errorf("ring_size must be a power of two, got %d", o.RingSize)
	}
	return nil
}
