package agent

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/minhyannv/toolbot-go/pkg/transcript"
)

func TestSessionTurnAppendsOneEntryPerTurn(t *testing.T) {
	bot := newTestBot(t, &fakeCompleter{reply: "answer"})
	now := func() time.Time { return time.Date(2024, 3, 4, 5, 6, 7, 0, time.Local) }
	s := NewSession(uuid.Nil, bot, now, nil)
	if s.ID == uuid.Nil {
		t.Fatal("expected session id")
	}

	inputs := []string{"hello", "sum of 3 and", "why is the sky blue", "write a haiku"}
	for i, in := range inputs {
		s.Turn(context.Background(), in)
		if got := len(s.Entries()); got != i+1 {
			t.Fatalf("after turn %d expected %d entries, got %d", i, i+1, got)
		}
	}

	entries := s.Entries()
	for i, e := range entries {
		if e.UserInput != inputs[i] {
			t.Fatalf("entry %d: expected input %q, got %q", i, inputs[i], e.UserInput)
		}
		if e.Timestamp != "2024-03-04 05:06:07.000000" || e.BotResponse == "" {
			t.Fatalf("entry %d incomplete: %+v", i, e)
		}
	}
	if entries[1].ToolUsed != transcript.ToolCalculator {
		t.Fatalf("expected calculator entry, got %+v", entries[1])
	}
	if entries[0].ToolUsed != "" || entries[2].ToolUsed != "" {
		t.Fatalf("expected no tool on non-calculator entries: %+v", entries)
	}
}

func TestSessionCalculationErrorStillLogged(t *testing.T) {
	s := NewSession(uuid.Nil, newTestBot(t, &fakeCompleter{}), nil, nil)

	reply := s.Turn(context.Background(), "divided opinions")
	entries := s.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ToolUsed != "calculator" || entries[0].BotResponse != reply.Text {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
}

func TestNewSessionKeepsGivenID(t *testing.T) {
	id := uuid.New()
	if s := NewSession(id, newTestBot(t, &fakeCompleter{}), nil, nil); s.ID != id {
		t.Fatalf("expected id %s, got %s", id, s.ID)
	}
}

func TestSessionSave(t *testing.T) {
	s := NewSession(uuid.Nil, newTestBot(t, &fakeCompleter{reply: "ok"}), nil, nil)
	s.Turn(context.Background(), "hi")
	s.Turn(context.Background(), "6 times 9")

	path := filepath.Join(t.TempDir(), "interaction_logs.json")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	entries, err := transcript.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 2 || entries[1].BotResponse != "The calculator tool is being used.\nThe result is: 54" {
		t.Fatalf("unexpected saved entries: %+v", entries)
	}
}
