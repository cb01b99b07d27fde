package classify

import (
	"regexp"
	"strings"
)

type rewriteRule struct {
	pattern *regexp.Regexp
	// template is expanded for every match; ${1} and ${2} are the operands.
	template string
}

// rewriteRules are tried in order; the first rule that matches wins.
var rewriteRules = []rewriteRule{
	{regexp.MustCompile(`sum\s+of\s+(\d+)\s+and\s+(\d+)`), "${1} + ${2}"},
	{regexp.MustCompile(`add\s+(\d+)\s+and\s+(\d+)`), "${1} + ${2}"},
	{regexp.MustCompile(`add\s+(\d+)\s+to\s+(\d+)`), "${2} + ${1}"},
	{regexp.MustCompile(`subtract\s+(\d+)\s+from\s+(\d+)`), "${2} - ${1}"},
	{regexp.MustCompile(`(\d+)\s+minus\s+(\d+)`), "${1} - ${2}"},
	{regexp.MustCompile(`(\d+)\s+plus\s+(\d+)`), "${1} + ${2}"},
	{regexp.MustCompile(`multiply\s+(\d+)\s+and\s+(\d+)`), "${1} * ${2}"},
	{regexp.MustCompile(`(\d+)\s+times\s+(\d+)`), "${1} * ${2}"},
	{regexp.MustCompile(`divide\s+(\d+)\s+by\s+(\d+)`), "${1} / ${2}"},
	{regexp.MustCompile(`(\d+)\s+divided\s+by\s+(\d+)`), "${1} / ${2}"},
}

var (
	nonExpressionChars = regexp.MustCompile(`[^\d+\-*/.]`)
	whitespaceRun      = regexp.MustCompile(`\s+`)
)

// ExtractExpression rewrites arithmetic phrasing such as "sum of 3 and 4"
// into "3 + 4". The winning rule rewrites every occurrence in place and the
// rest of the text is kept, so "sum of 1 and 2 plus 3" becomes
// "1 + 2 plus 3" and fails evaluation instead of silently dropping "plus 3".
// Text that fits no rule is reduced to its digits, operators and decimal
// points; the result may be malformed or empty.
func ExtractExpression(text string) string {
	text = normalize(text)
	for _, rule := range rewriteRules {
		if !rule.pattern.MatchString(text) {
			continue
		}
		return rule.pattern.ReplaceAllString(text, rule.template)
	}

	cleaned := nonExpressionChars.ReplaceAllString(text, " ")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(cleaned, " "))
}
