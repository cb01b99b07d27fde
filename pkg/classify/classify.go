// Package classify holds the text predicates used to route user input and
// the extractor that turns arithmetic phrasing into a canonical expression.
package classify

import (
	"regexp"
	"strings"

	loggerpkg "github.com/minhyannv/toolbot-go/pkg/logger"
)

// Token is one tagged token. Tag uses Penn Treebank labels.
type Token struct {
	Text string
	Tag  string
}

// Tagger tokenizes and part-of-speech tags text.
type Tagger interface {
	Tag(text string) ([]Token, error)
}

var greetings = map[string]struct{}{
	"hi":             {},
	"hello":          {},
	"hey":            {},
	"good morning":   {},
	"good evening":   {},
	"good afternoon": {},
}

var questionWords = map[string]struct{}{
	"what":  {},
	"who":   {},
	"when":  {},
	"where": {},
	"why":   {},
	"how":   {},
	"which": {},
	"whom":  {},
	"whose": {},
}

var (
	numericOpPattern = regexp.MustCompile(`\d+\s*[+\-*/]\s*\d+`)
	// Substring match on purpose: "summer" and "address" also fire.
	mathKeywordPattern = regexp.MustCompile(`add|plus|sum|subtract|minus|difference|multiply|times|product|divide|divided`)
)

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// IsGreeting reports whether text is exactly one of the fixed greetings.
func IsGreeting(text string) bool {
	_, ok := greetings[normalize(text)]
	return ok
}

// IsMathExpression reports whether text looks like arithmetic, either as
// "digits operator digits" or by containing an arithmetic keyword.
func IsMathExpression(text string) bool {
	text = normalize(text)
	return numericOpPattern.MatchString(text) || mathKeywordPattern.MatchString(text)
}

// Classifier evaluates the predicates that need a Tagger.
type Classifier struct {
	tagger Tagger
	logger loggerpkg.Logger
}

// New builds a Classifier. A nil logger discards tagger warnings.
func New(tagger Tagger, logger loggerpkg.Logger) *Classifier {
	return &Classifier{tagger: tagger, logger: loggerpkg.OrNop(logger)}
}

// ContainsQuestionWord reports whether the tagger marks any interrogative
// word (what, who, ...) with a wh-tag (WDT, WP, WP$, WRB).
func (c *Classifier) ContainsQuestionWord(text string) bool {
	if c.tagger == nil {
		return false
	}
	tokens, err := c.tagger.Tag(normalize(text))
	if err != nil {
		c.logger.Warn("tagger failed", map[string]any{"error": err.Error()})
		return false
	}
	for _, tok := range tokens {
		if _, ok := questionWords[strings.ToLower(tok.Text)]; ok && strings.HasPrefix(tok.Tag, "W") {
			return true
		}
	}
	return false
}

// IsMultiQuery reports whether text mixes arithmetic with a question word.
func (c *Classifier) IsMultiQuery(text string) bool {
	return IsMathExpression(text) && c.ContainsQuestionWord(text)
}
