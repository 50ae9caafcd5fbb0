//go:build !linux

package logger

import "time"

// walltime captures the current wall clock.
func walltime() (sec int64, nsec int32) {
	now := time.Now()
	return now.Unix(), int32(now.Nanosecond())
}
