// Package logger records interpreter session events as newline delimited
// JSON for later inspection.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// Kind identifies the type of a recorded event.
type Kind string

const (
	KindSessionStart Kind = "session_start"
	KindSessionEnd   Kind = "session_end"
	KindDispatch     Kind = "dispatch"
	KindAliasDefine  Kind = "alias_define"
	KindAliasRemove  Kind = "alias_remove"
	KindLaunchError  Kind = "launch_error"
)

// Event is a single entry in the event log.
type Event struct {
	TimestampMicros int64    `json:"timestamp_micros"`
	SessionID       string   `json:"session_id"`
	Kind            Kind     `json:"kind"`
	Command         []string `json:"command,omitempty"`
	Alias           string   `json:"alias,omitempty"`
	Target          string   `json:"target,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// Recorder is a callback that stores events in an external datastore.
type Recorder func(e *Event) error

// Logger captures interaction events for the interpreter.
type Logger struct {
	Record Recorder
}

// NewJSONLinesRecorder creates a Logger that exports events in newline
// delimited JSON object format.
func NewJSONLinesRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(e *Event) error {
			entry, err := json.Marshal(e)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// Nop creates a Logger that discards everything.
func Nop() *Logger {
	return &Logger{
		Record: func(*Event) error { return nil },
	}
}

// NewSession creates a logger with an attached session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// SessionLogger stamps events with a shared session ID and timestamp.
type SessionLogger struct {
	*Logger
	sessionID string
}

// Record fills in the event's session fields and stores it.
func (l *SessionLogger) Record(event Event) error {
	event.TimestampMicros = time.Now().UnixMicro()
	event.SessionID = l.sessionID
	return l.Logger.Record(&event)
}
