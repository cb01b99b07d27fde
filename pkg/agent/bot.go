// Package agent routes one user input to the greeting responder, the
// calculator, or the completion service.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minhyannv/toolbot-go/pkg/calc"
	"github.com/minhyannv/toolbot-go/pkg/classify"
	"github.com/minhyannv/toolbot-go/pkg/completion"
	loggerpkg "github.com/minhyannv/toolbot-go/pkg/logger"
	"github.com/minhyannv/toolbot-go/pkg/prompt"
	"github.com/minhyannv/toolbot-go/pkg/transcript"
)

// Route names, in evaluation order.
const (
	RouteGreeting   = "greeting"
	RouteMultiQuery = "multi_query"
	RouteCalculator = "calculator"
	RouteQuestion   = "question"
	RouteStepByStep = "step_by_step"
)

const (
	GreetingReply   = "Hello! How can I help you today?"
	MultiQueryReply = "I'm currently not able to handle multiple questions in a single input. Please ask one at a time."
	calculatorLead  = "The calculator tool is being used.\n"
)

// Reply is the bot's answer to one input.
type Reply struct {
	Text  string
	Route string
	// Tool is recorded as tool_used; only the calculator sets it.
	Tool string
}

type route struct {
	name   string
	match  func(text string) bool
	handle func(ctx context.Context, text string) Reply
}

// Bot holds the ordered route table.
type Bot struct {
	classifier *classify.Classifier
	completer  completion.Service
	routes     []route
	logger     loggerpkg.Logger
}

// New builds a Bot from its two capabilities.
func New(tagger classify.Tagger, completer completion.Service, opts ...BotOption) (*Bot, error) {
	if tagger == nil {
		return nil, errors.New("tagger is required")
	}
	if completer == nil {
		return nil, errors.New("completion service is required")
	}
	deps := botDeps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}
	deps.logger = loggerpkg.OrNop(deps.logger)

	b := &Bot{
		classifier: classify.New(tagger, deps.logger),
		completer:  completer,
		logger:     deps.logger,
	}
	// First match wins; the order is part of the contract.
	b.routes = []route{
		{name: RouteGreeting, match: classify.IsGreeting, handle: b.greet},
		{name: RouteMultiQuery, match: b.classifier.IsMultiQuery, handle: b.refuse},
		{name: RouteCalculator, match: classify.IsMathExpression, handle: b.calculate},
		{name: RouteQuestion, match: b.classifier.ContainsQuestionWord, handle: b.answer},
		{name: RouteStepByStep, match: func(string) bool { return true }, handle: b.explain},
	}
	return b, nil
}

// Respond routes input through the table and returns the first handler's reply.
func (b *Bot) Respond(ctx context.Context, input string) Reply {
	input = strings.TrimSpace(input)
	for _, r := range b.routes {
		if !r.match(input) {
			continue
		}
		b.logger.Debug("route selected", map[string]any{"route": r.name})
		reply := r.handle(ctx, input)
		reply.Route = r.name
		return reply
	}
	// Unreachable: the last route matches everything.
	return Reply{}
}

func (b *Bot) greet(context.Context, string) Reply {
	return Reply{Text: GreetingReply}
}

func (b *Bot) refuse(context.Context, string) Reply {
	return Reply{Text: MultiQueryReply}
}

func (b *Bot) calculate(_ context.Context, text string) Reply {
	expression := classify.ExtractExpression(text)
	b.logger.Debug("expression extracted", map[string]any{"expression": expression})

	result, err := calc.Evaluate(expression)
	if err != nil {
		return Reply{
			Text: calculatorLead + fmt.Sprintf("Error in calculation: %v", err),
			Tool: transcript.ToolCalculator,
		}
	}
	return Reply{
		Text: calculatorLead + "The result is: " + calc.Format(result),
		Tool: transcript.ToolCalculator,
	}
}

func (b *Bot) answer(ctx context.Context, text string) Reply {
	return Reply{Text: b.completer.Complete(ctx, text, completion.ModeConcise)}
}

func (b *Bot) explain(ctx context.Context, text string) Reply {
	return Reply{Text: b.completer.Complete(ctx, prompt.BuildStepPrompt(text), completion.ModeStepByStep)}
}
