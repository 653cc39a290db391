// Package assistant is the rule-based study helper behind the chat endpoint.
//
// There is no language model here. A prompt is matched against fixed tables
// in a fixed precedence order:
//
//  1. a leading question word ("what", "how", ...)
//  2. the first topic keyword contained anywhere in the prompt
//  3. a subject name (math, science, english, history)
//  4. a generic fallback that echoes the first learning verb it finds
//
// Every table is an ordered slice, never a map, so the first match is the same
// on every run.
package assistant

import (
	"slices"
	"strings"
)

// Branch names the rule family that produced a response.
// Used as a metrics label.
type Branch string

const (
	BranchQuestion Branch = "question"
	BranchKeyword  Branch = "keyword"
	BranchSubject  Branch = "subject"
	BranchFallback Branch = "fallback"
)

// rule pairs a lower-case pattern with its canned response.
type rule struct {
	pattern  string
	response string
}

// learningVerbs are echoed back by the fallback response.
var learningVerbs = []string{"learn", "study", "understand", "explain", "help", "know", "practice"}

const fallbackTopic = "this topic"

// Respond returns the canned reply for prompt. It never fails: an empty
// prompt falls through to the generic fallback.
func Respond(prompt string) string {
	response, _ := Classify(prompt)
	return response
}

// Classify is Respond plus the branch that matched.
func Classify(prompt string) (string, Branch) {
	lower := strings.ToLower(prompt)

	for _, r := range questionRules {
		if strings.HasPrefix(lower, r.pattern) {
			return r.response, BranchQuestion
		}
	}

	for _, r := range keywordRules {
		if strings.Contains(lower, r.pattern) {
			return r.response, BranchKeyword
		}
	}

	for _, r := range subjectRules {
		if strings.Contains(lower, r.pattern) {
			return r.response, BranchSubject
		}
	}

	return fallback(lower), BranchFallback
}

func fallback(lower string) string {
	topic := fallbackTopic
	for _, word := range strings.Fields(lower) {
		if slices.Contains(learningVerbs, word) {
			topic = word
			break
		}
	}

	return "I understand you're asking about " + topic + ". Let's explore it together! To help you better, could you:\n" +
		"1. Specify the subject area (math, science, english, history)\n" +
		"2. Share what you already know about this\n" +
		"3. Tell me what aspect you find most challenging\n" +
		"This will help me provide more targeted assistance!"
}
