// Package bug implements the third error channel described in spec.md §7:
// detected data-structure invariant violations are not user-recoverable and
// must abort the process with a message that points at the offending source
// location, modeled on original_source/src/util/bug.rs's SynlessBug trait.
package bug

import (
	"fmt"
	"runtime"
)

// Bug is raised by panic() when a core invariant is violated: a cycle would
// be introduced into the forest, a sort bitset lookup that must succeed
// fails, a notation index survives validation but is out of range at
// render time, and so on. Bugs are never recovered from by the core.
type Bug struct {
	File    string
	Line    int
	Message string
}

func (b *Bug) Error() string {
	return fmt.Sprintf("synless bug at %s:%d: %s (this is a bug, please file an issue)", b.File, b.Line, b.Message)
}

// Bugf panics with a Bug naming the caller's file and line.
func Bugf(format string, args ...any) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "unknown", 0
	}
	panic(&Bug{File: file, Line: line, Message: fmt.Sprintf(format, args...)})
}

// Assert panics with a Bug if cond is false.
func Assert(cond bool, format string, args ...any) {
	if cond {
		return
	}
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "unknown", 0
	}
	panic(&Bug{File: file, Line: line, Message: fmt.Sprintf(format, args...)})
}
