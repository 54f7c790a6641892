package analyze

import (
	"encoding/json"
	"fmt"

	m "tradetalk/internal/model"
)

// Prompt literals are a fixed contract with the rendering side: the coach
// persona and the closing instruction that makes the model emit the Marker
// line the split depends on.
const systemPrompt = "Tu es un coach de trading sympa et direct. " +
	"Tu parles comme un ami qui connaît bien le trading. " +
	"Tu donnes des conseils pratiques sans être trop formel. " +
	"Tu restes professionnel mais avec une touche d'humour. " +
	"Tu évites les phrases longues et complexes."

func buildUserPrompt(trades []m.Trade, journal *m.JournalEntry) (string, error) {

	serialized, err := json.Marshal(trades)
	if err != nil {
		return "", fmt.Errorf("failed to serialize trades: %w", err)
	}

	journalPart := ""
	if journal != nil {
		journalPart = fmt.Sprintf("\nÉtat d'esprit du trader: %s\nJournal: %s\n", journal.Mood, journal.Content)
	}

	return fmt.Sprintf(`Analysez ces trades du point de vue technique et psychologique.
Trades: %s
%s
Dis-moi vite:
1. Comment j'ai géré mes trades techniquement
2. Si mon état d'esprit a influencé mes décisions
3. Ce que je peux améliorer

Sois concis et direct. Max 200 mots.
Finis par une phrase de motivation ou un conseil pratique, genre "%s ..."`, serialized, journalPart, Marker), nil
}
