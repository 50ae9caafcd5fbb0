package logger

import (
	"fmt"

	"github.com/go-stack/stack"
)

// callerSkip reaches the frame that invoked Log. The leveled helpers
// forward to Log, so their call sites resolve one frame high; callers
// that need exact sites should log through Log directly.
const callerSkip = 2

// appendCaller renders the producing call site as a "file.go:42: "
// message prefix.
func appendCaller(b []byte) []byte {
	return fmt.Appendf(b, "%v: ", stack.Caller(callerSkip))
}
