package workflow

import (
	"strings"
	"time"
)

// Intent keyword tables. Matching is deliberately plain token lookup so the
// behavior stays auditable.
var affirmativeWords = []string{"yes", "yeah", "yep", "sure", "ok", "okay", "proceed", "book", "confirm"}
var negativeWords = []string{"no", "nope", "nah", "cancel", "don't", "dont"}

// Filler tokens that carry no symptom content on their own.
var fillerWords = []string{
	"hi", "hello", "hey", "thanks", "thank", "you", "please",
	"good", "morning", "afternoon", "evening", "i", "am", "fine",
}

var weekdayLookup = map[string]string{
	"monday": "Monday", "mon": "Monday",
	"tuesday": "Tuesday", "tue": "Tuesday", "tues": "Tuesday",
	"wednesday": "Wednesday", "wed": "Wednesday",
	"thursday": "Thursday", "thu": "Thursday", "thur": "Thursday", "thurs": "Thursday",
	"friday": "Friday", "fri": "Friday",
	"saturday": "Saturday", "sat": "Saturday",
	"sunday": "Sunday", "sun": "Sunday",
}

// normalizeTokens lowercases and splits the message, trimming punctuation
// but keeping apostrophes so "don't" survives.
func normalizeTokens(message string) []string {
	fields := strings.Fields(strings.ToLower(message))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.TrimFunc(f, func(r rune) bool {
			return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != '\''
		})
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func hasAnyToken(tokens []string, words []string) bool {
	for _, tok := range tokens {
		for _, w := range words {
			if tok == w {
				return true
			}
		}
	}
	return false
}

// IsNegative reports a declining message. Checked before IsAffirmative
// everywhere, so "yes, actually no" backs out.
func IsNegative(message string) bool {
	return hasAnyToken(normalizeTokens(message), negativeWords)
}

// IsAffirmative reports a consenting message.
func IsAffirmative(message string) bool {
	return hasAnyToken(normalizeTokens(message), affirmativeWords)
}

// isSmallTalk reports whether the message consists solely of greetings,
// confirmations and filler, with nothing to classify.
func isSmallTalk(message string) bool {
	tokens := normalizeTokens(message)
	if len(tokens) == 0 {
		return true
	}
	for _, tok := range tokens {
		if !inList(tok, affirmativeWords) && !inList(tok, negativeWords) && !inList(tok, fillerWords) {
			return false
		}
	}
	return true
}

func inList(tok string, words []string) bool {
	for _, w := range words {
		if tok == w {
			return true
		}
	}
	return false
}

// ExtractDay pulls a weekday name out of the message. "tomorrow" and
// "today" resolve against now.
func ExtractDay(message string, now time.Time) (string, bool) {
	tokens := normalizeTokens(message)
	for _, tok := range tokens {
		if full, ok := weekdayLookup[tok]; ok {
			return full, true
		}
	}
	lower := strings.ToLower(message)
	if strings.Contains(lower, "tomorrow") {
		return now.AddDate(0, 0, 1).Weekday().String(), true
	}
	if strings.Contains(lower, "today") {
		return now.Weekday().String(), true
	}
	return "", false
}

// wantsAnotherBooking spots a request to start over after completion.
func wantsAnotherBooking(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "book another") ||
		strings.Contains(lower, "another appointment") ||
		strings.Contains(lower, "new appointment")
}
