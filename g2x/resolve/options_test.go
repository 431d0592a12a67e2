package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightsNormalized(t *testing.T) {
	assert.Equal(t, DefaultWeights, Weights{}.Normalized(), "all-zero weights fall back to defaults")
	assert.Equal(t, DefaultWeights, Weights{Path: -1, Album: 0.5, File: 0.2}.Normalized())

	w := Weights{Path: 1, Album: 1, File: 2}.Normalized()
	assert.InDelta(t, 0.25, w.Path, 1e-9)
	assert.InDelta(t, 0.25, w.Album, 1e-9)
	assert.InDelta(t, 0.5, w.File, 1e-9)
}

func TestOptionsMerge(t *testing.T) {
	base := DefaultOptions()

	same := base.Merge(nil)
	assert.Equal(t, base, same)

	merged := base.Merge(&Params{
		Threshold:          Float(0.7),
		ConfidenceGap:      Float(0),
		Weights:            &Weights{Path: 1},
		BordaTopK:          Int(5),
		MinConsensusPoints: Int(6),
	})
	assert.Equal(t, 0.7, merged.Threshold)
	assert.Equal(t, 0.0, merged.ConfidenceGap, "zero is a valid override")
	assert.Equal(t, base.LowerThreshold, merged.LowerThreshold)
	assert.Equal(t, Weights{Path: 1}, merged.Weights)
	assert.Equal(t, 5, merged.BordaTopK)
	assert.Equal(t, 6, merged.MinConsensusPoints)

	merged.Synonyms["extra"] = "value"
	_, leaked := base.Synonyms["extra"]
	assert.False(t, leaked, "merge copies the synonym table")
}

func TestParseStrategyType(t *testing.T) {
	st, err := ParseStrategyType(" Consensus ")
	require.NoError(t, err)
	assert.Equal(t, StrategyConsensus, st)

	_, err = ParseStrategyType("vote")
	assert.ErrorIs(t, err, ErrInvalidStrategy)

	assert.NoError(t, DefaultSingleStrategy().Validate())
	assert.ErrorIs(t, Strategy{Type: "borda"}.Validate(), ErrInvalidStrategy)
}
