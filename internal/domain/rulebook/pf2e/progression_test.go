package pf2e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
	"github.com/hearthforge/pf2-builder/internal/domain/rulebook/pf2e"
	"github.com/hearthforge/pf2-builder/internal/domain/shared"
)

func TestProficiencyAt_WalksSteps(t *testing.T) {
	tests := []struct {
		level    int
		expected shared.Rank
	}{
		{1, shared.RankExpert},
		{6, shared.RankExpert},
		{7, shared.RankMaster},
		{20, shared.RankMaster},
	}

	for _, tt := range tests {
		got := pf2e.ProficiencyAt("fighter", pf2e.TrackPerception, tt.level)
		assert.Equal(t, tt.expected, got, "level %d", tt.level)
	}
}

func TestProficiencyAt_SaveTracks(t *testing.T) {
	assert.Equal(t, shared.RankExpert, pf2e.ProficiencyAt("fighter", pf2e.SaveTrack(shared.SaveFortitude), 1))
	assert.Equal(t, shared.RankMaster, pf2e.ProficiencyAt("fighter", pf2e.SaveTrack(shared.SaveFortitude), 9))
	assert.Equal(t, shared.RankTrained, pf2e.ProficiencyAt("fighter", pf2e.SaveTrack(shared.SaveWill), 1))
	assert.Equal(t, shared.RankExpert, pf2e.ProficiencyAt("wizard", pf2e.SaveTrack(shared.SaveWill), 1))
}

func TestProficiencyAt_LevelClamps(t *testing.T) {
	assert.Equal(t, pf2e.ProficiencyAt("rogue", pf2e.TrackPerception, 1),
		pf2e.ProficiencyAt("rogue", pf2e.TrackPerception, -3))
	assert.Equal(t, pf2e.ProficiencyAt("rogue", pf2e.TrackPerception, 20),
		pf2e.ProficiencyAt("rogue", pf2e.TrackPerception, 99))
}

func TestProficiencyAt_AliasFallback(t *testing.T) {
	canonical := pf2e.ProficiencyAt("kineticist", pf2e.SaveTrack(shared.SaveFortitude), 9)

	assert.Equal(t, canonical, pf2e.ProficiencyAt("kineticist-playtest", pf2e.SaveTrack(shared.SaveFortitude), 9))
	assert.Equal(t, canonical, pf2e.ProficiencyAt("Kineticist", pf2e.SaveTrack(shared.SaveFortitude), 9))
	assert.Equal(t, canonical, pf2e.ProficiencyAt("KINETICIST", pf2e.SaveTrack(shared.SaveFortitude), 9))
}

func TestProficiencyAt_UnknownClassUsesDefault(t *testing.T) {
	assert.Equal(t, shared.RankTrained, pf2e.ProficiencyAt("gunslinger", pf2e.TrackArmorLight, 10))
	assert.Equal(t, shared.RankTrained, pf2e.ProficiencyAt("gunslinger", pf2e.TrackWeaponSimple, 10))
	assert.Equal(t, shared.RankUntrained, pf2e.ProficiencyAt("gunslinger", pf2e.TrackArmorHeavy, 10))
	assert.Equal(t, shared.RankUntrained, pf2e.ProficiencyAt("gunslinger", pf2e.SaveTrack(shared.SaveWill), 10))
}

func TestHitPointsPerLevel(t *testing.T) {
	assert.Equal(t, 10, pf2e.HitPointsPerLevel("fighter"))
	assert.Equal(t, 6, pf2e.HitPointsPerLevel("wizard"))
	assert.Equal(t, 8, pf2e.HitPointsPerLevel("rogue"))
	assert.Equal(t, 6, pf2e.HitPointsPerLevel("some-future-class"))
}

func TestFeatGrantLevels(t *testing.T) {
	fighterClass := pf2e.FeatGrantLevels("fighter", rulebook.FeatTypeClass)
	assert.Equal(t, []int{1, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20}, fighterClass)

	// returned slice is a copy
	fighterClass[0] = 99
	assert.Equal(t, []int{1, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20}, pf2e.FeatGrantLevels("fighter", rulebook.FeatTypeClass))

	assert.Equal(t, []int{3, 7, 11, 15, 19}, pf2e.FeatGrantLevels("wizard", rulebook.FeatTypeGeneral))
}
