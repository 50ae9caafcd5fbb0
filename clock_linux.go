//go:build linux

package logger

import (
	"time"

	"golang.org/x/sys/unix"
)

// walltime captures the current wall clock. The coarse clock is a
// vDSO read of a tick-granular timestamp, which is all a one-second
// log header resolution needs; fall back to the precise clock when
// the kernel lacks it.
func walltime() (sec int64, nsec int32) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME_COARSE, &ts); err == nil {
		return ts.Sec, int32(ts.Nsec)
	}
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err == nil {
		return ts.Sec, int32(ts.Nsec)
	}
	now := time.Now()
	return now.Unix(), int32(now.Nanosecond())
}
