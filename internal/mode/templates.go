package mode

import "fmt"

// Template renders the prompt for one mode.
// The user's text is inserted verbatim, without escaping.
type Template func(userText string) string

// templates maps mode identifiers to their prompt templates.
// Prompts are versioned with the binary; update requires rebuild.
var templates = map[string]Template{
	MorningIntention:  slot(morningPrompt),
	EveningReflection: slot(eveningPrompt),
	WeeklyReview:      slot(weeklyPrompt),
	DeepDiveLetter:    slot(deepDivePrompt),
}

// slot turns a prompt with a single %s verb into a Template.
func slot(format string) Template {
	return func(userText string) string {
		return fmt.Sprintf(format, userText)
	}
}

// Each prompt is one persona line, one task directive, the quoted user text
// and a response cue.

const morningPrompt = `Act as a calm and focused mindset coach. The user is doing their morning mind-clear.
Based on their thoughts below, help them formulate one clear, positive, and actionable intention for the day.

User's thoughts: "%s"

Your guidance:`

const eveningPrompt = `Act as a compassionate and insightful journal guide. The user is reflecting on their day.
Based on their daily log below, ask one deep, open-ended reflective question that helps them find a key insight or lesson.

User's log: "%s"

Your reflective question:`

const weeklyPrompt = `Act as a strategic personal coach. The user is reviewing their past week to plan the next one.
Based on their weekly summary below, identify one major theme or recurring obstacle and suggest one small, concrete action they can take next week to address it.

User's weekly review: "%s"

Your strategic suggestion:`

const deepDivePrompt = `Act as a wise and empathetic listener. The user is writing an 'unsent letter' to process their emotions.
Read the letter below. Your role is NOT to give advice, but to validate their feelings and reflect their core emotion back to them in a single, supportive sentence.

User's letter: "%s"

Your supportive reflection:`
