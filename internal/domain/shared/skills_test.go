package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearthforge/pf2-builder/internal/domain/shared"
)

func TestIsSkill(t *testing.T) {
	assert.True(t, shared.IsSkill("athletics"))
	assert.True(t, shared.IsSkill("thievery"))
	assert.False(t, shared.IsSkill("piloting"))
	assert.False(t, shared.IsSkill(""))
}

func TestEverySkillHasAnAbility(t *testing.T) {
	for _, s := range shared.Skills {
		assert.Contains(t, shared.SkillAbilities, s)
	}
}

func TestSkillRankCap(t *testing.T) {
	assert.Equal(t, shared.RankExpert, shared.SkillRankCap(3))
	assert.Equal(t, shared.RankExpert, shared.SkillRankCap(6))
	assert.Equal(t, shared.RankMaster, shared.SkillRankCap(7))
	assert.Equal(t, shared.RankMaster, shared.SkillRankCap(14))
	assert.Equal(t, shared.RankLegendary, shared.SkillRankCap(15))
	assert.Equal(t, shared.RankLegendary, shared.SkillRankCap(19))
}
