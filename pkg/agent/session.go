package agent

import (
	"context"
	"time"

	"github.com/google/uuid"

	loggerpkg "github.com/minhyannv/toolbot-go/pkg/logger"
	"github.com/minhyannv/toolbot-go/pkg/transcript"
)

// Session pairs a Bot with the transcript of one process run.
type Session struct {
	ID  uuid.UUID
	bot *Bot
	log *transcript.Log

	logger loggerpkg.Logger
}

// NewSession starts an empty session. A nil id gets a random one; a nil
// clock uses time.Now.
func NewSession(id uuid.UUID, bot *Bot, now func() time.Time, logger loggerpkg.Logger) *Session {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Session{
		ID:     id,
		bot:    bot,
		log:    transcript.NewLog(now),
		logger: loggerpkg.OrNop(logger),
	}
}

// Turn answers one input and records exactly one transcript entry for it.
func (s *Session) Turn(ctx context.Context, input string) Reply {
	reply := s.bot.Respond(ctx, input)
	s.log.Append(input, reply.Text, reply.Tool)
	s.logger.Debug("turn recorded", map[string]any{
		"route": reply.Route,
		"turns": s.log.Len(),
	})
	return reply
}

// Entries returns the recorded turns in order.
func (s *Session) Entries() []transcript.Entry {
	return s.log.Entries()
}

// Save writes the transcript to path.
func (s *Session) Save(path string) error {
	if err := s.log.Save(path); err != nil {
		return err
	}
	s.logger.Info("session log saved", map[string]any{
		"path":  path,
		"turns": s.log.Len(),
	})
	return nil
}
