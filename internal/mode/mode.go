// Package mode holds the closed set of journaling modes and the prompt
// template bound to each of them.
package mode

import (
	"fmt"
)

// Mode identifier constants.
// Use these instead of string literals for compile-time safety.
const (
	MorningIntention  = "morning-intention"
	EveningReflection = "evening-reflection"
	WeeklyReview      = "weekly-review"
	DeepDiveLetter    = "deep-dive-letter"
)

// ---------------------------------------------------------------------------
// Mode type - represents a validated journaling mode
// ---------------------------------------------------------------------------

// Mode represents a validated journaling mode.
// Zero value is invalid and must not be used with Template().
// Use Parse to create from user input, or the pre-parsed values.
type Mode struct {
	id string
}

// Pre-parsed modes for use in code.
var (
	MorningIntentionMode  = Mode{id: MorningIntention}
	EveningReflectionMode = Mode{id: EveningReflection}
	WeeklyReviewMode      = Mode{id: WeeklyReview}
	DeepDiveLetterMode    = Mode{id: DeepDiveLetter}
)

// Compile-time interface compliance check.
var _ fmt.Stringer = Mode{}

// Entry is one selectable mode as shown to the user.
type Entry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// order defines the canonical order for List().
// This is the order of the selection control.
var order = []string{
	MorningIntention,
	EveningReflection,
	WeeklyReview,
	DeepDiveLetter,
}

// labels maps mode identifiers to their human-readable labels.
var labels = map[string]string{
	MorningIntention:  "Morning: Mind-Clear & Daily Intention",
	EveningReflection: "Evening: Daily Log & Reflection",
	WeeklyReview:      "Weekly: Review & Plan",
	DeepDiveLetter:    "Deep Dive: Unsent Letter",
}

// Parse validates and parses a mode identifier.
// Returns ErrUnknown if the identifier is not recognized.
// Matching is exact: no trimming, no case folding.
func Parse(s string) (Mode, error) {
	if s == "" {
		return Mode{}, fmt.Errorf("mode cannot be empty: %w", ErrUnknown)
	}
	if _, ok := templates[s]; !ok {
		return Mode{}, fmt.Errorf("unknown mode %q: %w", s, ErrUnknown)
	}
	return Mode{id: s}, nil
}

// ParseLabel resolves a mode from either its identifier or its label.
// HTML forms and older clients post the label text.
func ParseLabel(s string) (Mode, error) {
	for id, label := range labels {
		if s == label {
			return Mode{id: id}, nil
		}
	}
	return Parse(s)
}

// MustParse parses a mode identifier, panicking if invalid.
// Use only for compile-time constants and tests.
func MustParse(s string) Mode {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns the mode identifier.
// Returns empty string for zero value.
func (m Mode) String() string {
	return m.id
}

// Label returns the human-readable label, or empty string for zero value.
func (m Mode) Label() string {
	return labels[m.id]
}

// IsZero returns true if no mode is set.
func (m Mode) IsZero() bool {
	return m.id == ""
}

// List returns the selectable modes in canonical order.
// The result is a copy.
func List() []Entry {
	result := make([]Entry, len(order))
	for i, id := range order {
		result[i] = Entry{ID: id, Label: labels[id]}
	}
	return result
}

// IDs returns the mode identifiers in canonical order.
func IDs() []string {
	result := make([]string, len(order))
	copy(result, order)
	return result
}

// TemplateFor returns the prompt template bound to m.
// Returns ErrUnknown for the zero value or a mode that has no template.
func TemplateFor(m Mode) (Template, error) {
	if m.IsZero() {
		return nil, fmt.Errorf("mode not set: %w", ErrUnknown)
	}
	t, ok := templates[m.id]
	if !ok {
		return nil, fmt.Errorf("unknown mode %q: %w", m.id, ErrUnknown)
	}
	return t, nil
}
