// Package session holds the in-memory log of completed calculations for one
// running front-end instance. The log is append-only apart from Clear, lives
// for the lifetime of the process, and is never persisted.
package session

import (
	"fmt"
	"strconv"
	"sync"
)

// EmptyMessage is the sentinel line rendered when no calculations have been
// performed yet. Callers must not treat it as a real history entry.
const EmptyMessage = "No calculations yet."

// Record is one completed calculation. Immutable once created.
type Record struct {
	A        float64
	B        float64
	Operator string
	Result   float64
}

// String renders the record as "{a} {op} {b} = {r}".
func (r Record) String() string {
	return fmt.Sprintf("%s %s %s = %s",
		formatNumber(r.A), r.Operator, formatNumber(r.B), formatNumber(r.Result))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Session is an insertion-ordered log of Records, owned by a single front-end
// instance. The console loop is strictly sequential, but the web front end
// shares its session across net/http handler goroutines, so all access is
// mutex-guarded. The change callback runs outside the lock.
type Session struct {
	mu       sync.Mutex
	records  []Record
	onChange func(n int)
}

func New() *Session {
	return &Session{}
}

// OnChange registers fn to be called after every Append and Clear with the
// new history length. At most one callback is held.
func (s *Session) OnChange(fn func(n int)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Append adds rec to the end of the log. Only successful calculations are
// appended; failed ones never reach the session.
func (s *Session) Append(rec Record) {
	s.mu.Lock()
	s.records = append(s.records, rec)
	n := len(s.records)
	fn := s.onChange
	s.mu.Unlock()

	notify(fn, n)
}

// Clear empties the log. Calling it on an empty session is a no-op beyond
// the change notification.
func (s *Session) Clear() {
	s.mu.Lock()
	s.records = s.records[:0]
	fn := s.onChange
	s.mu.Unlock()

	notify(fn, 0)
}

// Len returns the number of records in the log.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Render returns one display line per record, 1-indexed, oldest first:
// "1. 10 + 5 = 15". An empty session renders as the single EmptyMessage line.
func (s *Session) Render() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		return []string{EmptyMessage}
	}
	lines := make([]string, len(s.records))
	for i, rec := range s.records {
		lines[i] = fmt.Sprintf("%d. %s", i+1, rec)
	}
	return lines
}

func notify(fn func(n int), n int) {
	if fn != nil {
		fn(n)
	}
}
