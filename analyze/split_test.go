package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {

	t.Run("marker present", func(t *testing.T) {
		r := Split("Foo bar.\n\nRecommandation: Do X")
		assert.Equal(t, "Foo bar.", r.Analysis)
		assert.Equal(t, "Do X", r.Recommendation)
	})

	t.Run("marker absent", func(t *testing.T) {
		r := Split("Juste une analyse, rien de plus.")
		assert.Equal(t, "Juste une analyse, rien de plus.", r.Analysis)
		assert.Empty(t, r.Recommendation)
	})

	t.Run("splits on first occurrence only", func(t *testing.T) {
		r := Split("Body.\nRecommandation: A. Recommandation: B")
		assert.Equal(t, "Body.", r.Analysis)
		assert.Equal(t, "A. Recommandation: B", r.Recommendation)
	})

	t.Run("marker with nothing after", func(t *testing.T) {
		r := Split("Body.\nRecommandation:   ")
		assert.Equal(t, "Body.", r.Analysis)
		assert.Empty(t, r.Recommendation)
	})
}
