package model

import "slices"

// Mood is the self-reported emotional state attached to a journal entry.
type Mood string

const (
	Confident   Mood = "confident"
	Optimistic  Mood = "optimistic"
	Neutral     Mood = "neutral"
	Pessimistic Mood = "pessimistic"
	Depressed   Mood = "depressed"
	Stressed    Mood = "stressed"
)

var moodList = []Mood{Confident, Optimistic, Neutral, Pessimistic, Depressed, Stressed}

func (m Mood) String() string {
	return string(m)
}

func IsValidMood(s string) bool {
	return slices.Contains(moodList, Mood(s))
}

func MoodList() []string {
	rtn := make([]string, len(moodList))
	for i, m := range moodList {
		rtn[i] = string(m)
	}
	return rtn
}
