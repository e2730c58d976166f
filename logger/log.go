// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry represents a single line/entry in the log
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	Repeated  int
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.Repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.Repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is a bounded list of log entries. The zero value is not usable, use
// NewLogger() instead.
//
// The hardware runs in a single goroutine but the GUI and the debugger may
// read the log from another goroutine. Access is therefore guarded.
type Logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	// entries are also written to echo as they are made
	echo io.Writer
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// Log adds an entry to the logger. The detail argument is formatted with the
// %v verb so errors and Stringers can be logged directly.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}

	var d string
	switch detail := detail.(type) {
	case string:
		d = detail
	case error:
		d = detail.Error()
	default:
		d = fmt.Sprintf("%v", detail)
	}

	l.log(tag, d)
}

// Logf adds a formatted entry to the logger.
func (l *Logger) Logf(perm Permission, tag string, pattern string, args ...any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}
	l.log(tag, fmt.Sprintf(pattern, args...))
}

func (l *Logger) log(tag, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// entries are single lines
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e != nil && e.Tag == tag && e.Detail == detail {
		e.Repeated++
		e.Timestamp = time.Now()
	} else {
		l.entries = append(l.entries, Entry{
			Timestamp: time.Now(),
			Tag:       tag,
			Detail:    detail,
		})
		e = &l.entries[len(l.entries)-1]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}

	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}
}

// Clear all entries.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Write contents of the logger to io.Writer.
func (l *Logger) Write(output io.Writer) {
	l.Tail(output, -1)
}

// Tail writes the last N entries to io.Writer. A negative number writes every
// entry.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if number < 0 || number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho writes every new entry to output as well as keeping it. A nil
// output stops the echo.
func (l *Logger) SetEcho(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = output
}

// Copy returns a copy of every entry in the logger.
func (l *Logger) Copy() []Entry {
	l.crit.Lock()
	defer l.crit.Unlock()
	c := make([]Entry, len(l.entries))
	copy(c, l.entries)
	return c
}
