// Package prompt holds the instructions sent to the completion service.
package prompt

import (
	"strings"
)

const (
	StepByStepSystem = "You are a helpful assistant that explains everything step-by-step."
	ConciseSystem    = "You are a helpful assistant that answers concisely."
)

// BuildStepPrompt wraps a user question for the step-by-step fallback route.
func BuildStepPrompt(userInput string) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful assistant that always answers step-by-step.\n")
	sb.WriteString("Avoid solving direct math calculations.\n")
	sb.WriteString("User question: ")
	sb.WriteString(singleLine(userInput))
	sb.WriteString("\nRespond clearly and logically with steps:")
	return sb.String()
}

// singleLine keeps the question on the "User question:" line.
func singleLine(value string) string {
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.TrimSpace(value)
}
