package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"plain yes", "yes", true},
		{"yes with punctuation", "Yes!", true},
		{"yeah", "yeah sounds good", true},
		{"okay", "okay", true},
		{"proceed", "please proceed", true},
		{"book", "book it", true},
		{"unrelated", "I have a headache", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAffirmative(tt.message))
		})
	}
}

func TestIsNegative(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"plain no", "no", true},
		{"nope", "nope", true},
		{"cancel", "cancel that", true},
		{"contracted", "I don't want that", true},
		{"contracted no apostrophe", "i dont think so", true},
		{"know is not no", "I know", false},
		{"unrelated", "Tuesday works", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNegative(tt.message))
		})
	}
}

func TestNegativeWinsOverAffirmative(t *testing.T) {
	msg := "yes... actually no, cancel"
	assert.True(t, IsAffirmative(msg))
	assert.True(t, IsNegative(msg))
	// The confirmation handler checks IsNegative first, so a mixed message
	// must read as negative there.
}

func TestExtractDay(t *testing.T) {
	// 2025-06-01 is a Sunday.
	now := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		message string
		want    string
		found   bool
	}{
		{"full name", "Tuesday works for me", "Tuesday", true},
		{"lowercase", "how about wednesday", "Wednesday", true},
		{"abbreviation", "thu is fine", "Thursday", true},
		{"with punctuation", "Monday!", "Monday", true},
		{"tomorrow resolves", "tomorrow please", "Monday", true},
		{"today resolves", "can I come today", "Sunday", true},
		{"no day", "yes please", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDay(tt.message, now)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSmallTalk(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"greeting", "hi", true},
		{"affirmative only", "yes please", true},
		{"negative only", "no thanks", true},
		{"empty", "   ", true},
		{"symptom", "I have a headache", false},
		{"mixed", "yes I have chest pain", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSmallTalk(tt.message))
		})
	}
}

func TestWantsAnotherBooking(t *testing.T) {
	assert.True(t, wantsAnotherBooking("I'd like to book another appointment"))
	assert.True(t, wantsAnotherBooking("new appointment please"))
	assert.False(t, wantsAnotherBooking("thanks, that's all"))
}
