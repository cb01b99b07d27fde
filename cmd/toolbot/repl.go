package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minhyannv/toolbot-go/pkg/agent"
	loggerpkg "github.com/minhyannv/toolbot-go/pkg/logger"
)

const exitCommand = "exit"

// replOptions configures REPL behavior.
type replOptions struct {
	LogPath string
	Logger  loggerpkg.Logger
}

// runREPL reads lines until "exit", answering each through the session.
// Lines have no length limit. The transcript is written only when the user
// types "exit"; running out of input leaves no log file behind.
func runREPL(ctx context.Context, session *agent.Session, opts replOptions, in io.Reader, out io.Writer) error {
	if session == nil {
		return errors.New("session is required")
	}
	if in == nil {
		return errors.New("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}
	logger := loggerpkg.OrNop(opts.Logger)
	logger.Debug("repl start", map[string]any{"log_path": opts.LogPath})

	reader := bufio.NewReader(in)
	printWelcome(out)

	for {
		_, _ = fmt.Fprint(out, "You: ")
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read input: %w", readErr)
		}
		if readErr != nil && line == "" {
			break
		}

		input := strings.TrimSpace(line)
		if strings.EqualFold(input, exitCommand) {
			_, _ = fmt.Fprintln(out, "Bot: Goodbye!")
			if err := session.Save(opts.LogPath); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "Interaction log saved to %s\n", opts.LogPath)
			return nil
		}

		reply := session.Turn(ctx, input)
		_, _ = fmt.Fprintf(out, "Bot: %s\n\n", reply.Text)

		// A final line without a newline is still answered.
		if readErr != nil {
			break
		}
	}

	logger.Warn("input closed before exit; interaction log not written", map[string]any{
		"turns": len(session.Entries()),
	})
	return nil
}

func printWelcome(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Chatbot with LLM + Calculator Tool")
	_, _ = fmt.Fprintf(out, "Type '%s' to quit\n", exitCommand)
	_, _ = fmt.Fprintln(out)
}
