package rules

// Package rules implements the local response engine: a rule-based responder
// that produces a plausible reply for a given specialty whenever the remote
// channel is unavailable. It is a pure function of (specialty, utterance,
// rule table); no I/O, no hidden state.

import (
	"strings"

	"github.com/comigor/medchat-go/internal/msg"
)

// rule pairs an ordered keyword set with its canned response. The first rule
// whose keywords intersect the utterance wins; list order is the tie-break.
type rule struct {
	keywords []string
	response string
}

// specialtyTable holds everything the engine knows about one specialty.
type specialtyTable struct {
	greeting   string
	closing    string
	conditions []string
	rules      []rule
}

var greetingWords = []string{"hello", "hi", "hey"}
var greetingPhrases = []string{"good morning", "good afternoon"}
var gratitudeMarkers = []string{"thank", "thanks", "appreciate"}

const genericTriage = "Could you tell me a bit more about your symptoms? When did they start, and how severe are they?"

// Generate produces the assistant reply for a user utterance. It never fails
// and never blocks; unknown specialties get a generic triage prompt.
func Generate(specialty, utterance string) msg.Message {
	return msg.New(msg.SenderCounterpart, replyText(specialty, utterance))
}

func replyText(specialty, utterance string) string {
	normalized := strings.ToLower(strings.TrimSpace(utterance))

	table, ok := tables[strings.ToLower(strings.TrimSpace(specialty))]
	if !ok {
		return genericTriage
	}

	if isGreeting(normalized) {
		return table.greeting
	}
	if isGratitude(normalized) {
		return table.closing
	}

	for _, r := range table.rules {
		for _, kw := range r.keywords {
			if strings.Contains(normalized, kw) {
				return r.response
			}
		}
	}

	return "I most often see " + strings.Join(table.conditions, ", ") +
		". Could you describe your symptoms in more detail so I can help?"
}

func isGreeting(normalized string) bool {
	for _, p := range greetingPhrases {
		if strings.Contains(normalized, p) {
			return true
		}
	}
	for _, w := range strings.FieldsFunc(normalized, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '!' || r == '?'
	}) {
		for _, g := range greetingWords {
			if w == g {
				return true
			}
		}
	}
	return false
}

func isGratitude(normalized string) bool {
	for _, m := range gratitudeMarkers {
		if strings.Contains(normalized, m) {
			return true
		}
	}
	return false
}
