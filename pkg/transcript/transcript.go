// Package transcript records one entry per conversational turn and writes
// the session as a JSON array.
package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// TimestampLayout is the local-time layout used for Entry.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// ToolCalculator is the tool_used value recorded for calculator turns.
const ToolCalculator = "calculator"

// Entry is one persisted turn.
type Entry struct {
	Timestamp   string `json:"timestamp"`
	UserInput   string `json:"user_input"`
	BotResponse string `json:"bot_response"`
	ToolUsed    string `json:"tool_used,omitempty"`
}

// Log is an append-only, ordered list of entries for one session.
// It is not safe for concurrent use.
type Log struct {
	entries []Entry
	now     func() time.Time
}

// NewLog returns an empty log. A nil clock uses time.Now.
func NewLog(now func() time.Time) *Log {
	if now == nil {
		now = time.Now
	}
	return &Log{now: now}
}

// Append records a turn stamped with the current time and returns the entry.
func (l *Log) Append(userInput, botResponse, toolUsed string) Entry {
	e := Entry{
		Timestamp:   l.now().Format(TimestampLayout),
		UserInput:   userInput,
		BotResponse: botResponse,
		ToolUsed:    toolUsed,
	}
	l.entries = append(l.entries, e)
	return e
}

// Len returns the number of recorded turns.
func (l *Log) Len() int { return len(l.entries) }

// Entries returns a copy of the recorded turns in order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Save writes the whole log to path, replacing any existing file.
// An empty log is written as [].
func (l *Log) Save(path string) error {
	entries := l.entries
	if entries == nil {
		entries = []Entry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode log: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write log %s: %w", path, err)
	}
	return nil
}

// Load reads a log file written by Save.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read log %s: %w", path, err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode log %s: %w", path, err)
	}
	return entries, nil
}
