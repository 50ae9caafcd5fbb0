package logger

import "unsafe"

const (
	// CacheLineSize is the alignment unit for all hot shared state.
	CacheLineSize = 64

	// MsgMax is the inline message capacity of a Slot in bytes.
	// Longer messages are truncated to MsgMax-1 and NUL terminated.
	MsgMax = 512
)

// Slot is one ring entry: a single log record with its metadata.
// The header occupies exactly one cacheline and the message body a
// whole number of cachelines, so two slots never share a line and
// the ring can move slots by plain value copy.
type Slot struct {
	sec   int64  // wall-clock seconds at enqueue
	nsec  int32  // wall-clock nanoseconds at enqueue
	level Level  // severity
	_     [3]byte
	n     uint32 // message byte count, <= MsgMax-1
	_     [CacheLineSize - 20]byte
	msg   [MsgMax]byte
}

// Compile-time layout checks. A slot must span whole cachelines and
// the message buffer must start on a cacheline boundary.
const (
	_ = -(unsafe.Sizeof(Slot{}) % CacheLineSize)
	_ = -(unsafe.Offsetof(Slot{}.msg) % CacheLineSize)
)

// Body returns the message bytes of the slot.
func (s *Slot) Body() []byte { return s.msg[:s.n] }

// Level returns the severity of the slot.
func (s *Slot) Level() Level { return s.level }

// setMsg copies b into the inline buffer, truncating to MsgMax-1
// with a terminating NUL when b does not fit.
func (s *Slot) setMsg(b []byte) {
	if len(b) > MsgMax-1 {
		copy(s.msg[:MsgMax-1], b)
		s.msg[MsgMax-1] = 0
		s.n = MsgMax - 1
		return
	}
	copy(s.msg[:], b)
	s.n = uint32(len(b))
}
