//go:build !windows

package logger

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// writeBatch issues one vectored write covering all descriptors,
// re-issuing the unwritten tail after partial writes. EINTR retries
// immediately, EAGAIN yields first. Any other error abandons the
// remainder of the batch.
func (s *Sink) writeBatch(iovs [][]byte) error {
	fd := int(s.file.Fd())
	for len(iovs) > 0 {
		n, err := unix.Writev(fd, iovs)
		if err != nil {
			switch err {
			case unix.EINTR:
				continue
			case unix.EAGAIN:
				runtime.Gosched()
				continue
			default:
				return err
			}
		}
		iovs = advance(iovs, n)
	}
	return nil
}
