//go:build windows

package logger

import "github.com/mattn/go-colorable"

// writeBatch has no vectored syscall on Windows; records are written
// sequentially. Console sinks go through colorable so ANSI level
// colors survive the legacy console.
func (s *Sink) writeBatch(iovs [][]byte) error {
	if s.w == nil {
		if s.term {
			s.w = colorable.NewColorable(s.file)
		} else {
			s.w = s.file
		}
	}
	for _, b := range iovs {
		for len(b) > 0 {
			n, err := s.w.Write(b)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}
