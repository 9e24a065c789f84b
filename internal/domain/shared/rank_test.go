package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearthforge/pf2-builder/internal/domain/shared"
)

func TestRankString(t *testing.T) {
	assert.Equal(t, "untrained", shared.RankUntrained.String())
	assert.Equal(t, "trained", shared.RankTrained.String())
	assert.Equal(t, "expert", shared.RankExpert.String())
	assert.Equal(t, "master", shared.RankMaster.String())
	assert.Equal(t, "legendary", shared.RankLegendary.String())
}

func TestMaxRank(t *testing.T) {
	assert.Equal(t, shared.RankExpert, shared.MaxRank(shared.RankExpert, shared.RankTrained))
	assert.Equal(t, shared.RankExpert, shared.MaxRank(shared.RankTrained, shared.RankExpert))
	assert.Equal(t, shared.RankUntrained, shared.MaxRank(shared.RankUntrained, shared.RankUntrained))
}

func TestNormalizeSourceRank(t *testing.T) {
	tests := []struct {
		source   int
		expected shared.Rank
	}{
		{-1, shared.RankUntrained},
		{0, shared.RankUntrained},
		{1, shared.RankTrained},
		{2, shared.RankExpert},
		{3, shared.RankMaster},
		{4, shared.RankLegendary},
		{9, shared.RankLegendary},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, shared.NormalizeSourceRank(tt.source), "source %d", tt.source)
	}
}
