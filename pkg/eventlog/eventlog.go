package eventlog

import (
	"fmt"
	"sync"

	"github.com/jitlab/warmsim/pkg/common"
)

// Log is the append-only list of human-readable event lines exposed to the
// host surface. Only the trailing EventLogCapacity lines are retained; older
// lines are evicted from the head.
type Log struct {
	mutex    sync.Mutex
	lines    []string
	capacity int
}

func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = common.EventLogCapacity
	}

	return &Log{
		lines:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Append formats and records one event line, evicting the oldest line first
// when the log is at capacity.
func (l *Log) Append(format string, args ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.lines = append(l.lines, fmt.Sprintf(format, args...))

	if len(l.lines) > l.capacity {
		l.lines = l.lines[len(l.lines)-l.capacity:]
	}
}

// Lines returns a copy of the retained lines, oldest first.
func (l *Log) Lines() []string {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	result := make([]string, len(l.lines))
	copy(result, l.lines)

	return result
}

func (l *Log) Len() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return len(l.lines)
}

// Clear drops all retained lines.
func (l *Log) Clear() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.lines = l.lines[:0]
}
