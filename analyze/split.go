package analyze

import "strings"

// Marker is the literal the model is instructed to end its answer with. The
// raw response is stored unsplit and cut on this marker every time it is
// rendered, so the two halves always re-derive from one string.
const Marker = "Recommandation:"

type Result struct {
	Analysis       string `json:"analysis"`
	Recommendation string `json:"recommendation,omitempty"`
}

// Split cuts raw on the first occurrence of Marker. Everything before becomes
// the analysis body, everything after the recommendation, both trimmed. When
// the marker is absent the whole text is the analysis and the recommendation
// stays empty.
func Split(raw string) Result {
	before, after, found := strings.Cut(raw, Marker)

	rtn := Result{Analysis: strings.TrimSpace(before)}
	if found {
		rtn.Recommendation = strings.TrimSpace(after)
	}
	return rtn
}
