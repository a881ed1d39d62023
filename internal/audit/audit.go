// Package audit provides structured event logging for install runs.
// Events are stored as JSON Lines (JSONL) in the target's config root.
package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"time"

	"github.com/praxis-engineering/retrofit/internal/config"
	"github.com/praxis-engineering/retrofit/internal/logging"
	"github.com/praxis-engineering/retrofit/internal/system"
)

// EventType classifies a run event.
type EventType string

const (
	EventDetect     EventType = "detect"
	EventCheckpoint EventType = "checkpoint"
	EventMigrate    EventType = "migrate"
	EventValidate   EventType = "validate"
	EventRollback   EventType = "rollback"
	EventError      EventType = "error"
)

// Event represents a single audit log entry.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Mode      string    `json:"mode,omitempty"`
	Details   string    `json:"details,omitempty"`
}

// Logger appends and reads run events for a target project.
// Events live in <target>/.retrofit/events.jsonl.
type Logger struct {
	fs   system.FileSystem
	path string
}

// NewLogger creates an audit logger for the target project.
func NewLogger(fs system.FileSystem, target string) *Logger {
	return &Logger{fs: fs, path: config.NewPaths(target).EventLog()}
}

// Log appends an event. Audit failures are reported in debug logs but
// never fail the run; the log is an aid, not a dependency.
func (l *Logger) Log(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logging.Debug("failed to marshal audit event", "error", err)
		return
	}

	if err := l.fs.AppendFile(l.path, append(data, '\n'), 0644); err != nil {
		logging.Debug("failed to append audit event", "path", l.path, "error", err)
	}
}

// LogEvent is a convenience method that creates and logs an event.
func (l *Logger) LogEvent(t EventType, mode, details string) {
	l.Log(Event{Type: t, Mode: mode, Details: details})
}

// Events reads back all recorded events, oldest first.
func (l *Logger) Events() ([]Event, error) {
	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		return nil, err
	}

	var events []Event
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			// Skip corrupt lines rather than losing the readable ones.
			continue
		}
		events = append(events, ev)
	}
	return events, scanner.Err()
}
