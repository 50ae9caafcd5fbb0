package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Sink names mapped to the standard descriptors.
const (
	SinkStdout = "stdout"
	SinkStderr = "stderr"
)

// Sink is the file descriptor receiving formatted records. The logger
// owns the descriptor iff it opened it; the standard streams are
// never closed.
type Sink struct {
	file  *os.File
	owned bool
	term  bool
	w     io.Writer // non-vectored fallback path, set lazily
}

// openSink resolves an output name. "stdout" and "stderr" map to the
// standard streams; any other value is opened create-or-append.
func openSink(name string) (*Sink, error) {
	switch name {
	case SinkStdout:
		return &Sink{file: os.Stdout, term: isTerm(os.Stdout)}, nil
	case SinkStderr:
		return &Sink{file: os.Stderr, term: isTerm(os.Stderr)}, nil
	}

	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open sink %s: %w", name, err)
	}
	return &Sink{file: f, owned: true}, nil
}

// Terminal reports whether the sink is an interactive terminal.
func (s *Sink) Terminal() bool { return s.term }

// Close releases the descriptor when the sink owns it.
func (s *Sink) Close() error {
	if !s.owned {
		return nil
	}
	return s.file.Close()
}

func isTerm(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// advance steps a descriptor list past n written bytes, slicing the
// buffer a partial write stopped in.
func advance(iovs [][]byte, n int) [][]byte {
	for len(iovs) > 0 && n >= len(iovs[0]) {
		n -= len(iovs[0])
		iovs = iovs[1:]
	}
	if len(iovs) > 0 && n > 0 {
		iovs[0] = iovs[0][n:]
	}
	return iovs
}
