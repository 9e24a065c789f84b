package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
	mockrulebook "github.com/hearthforge/pf2-builder/internal/domain/rulebook/mock"
	"github.com/hearthforge/pf2-builder/internal/domain/shared"
	"github.com/hearthforge/pf2-builder/internal/rules"
	"github.com/hearthforge/pf2-builder/internal/testutils"
)

func TestCombatUpgrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mockrulebook.NewMockClient(ctrl)

	mockClient.EXPECT().GetFeat("armor-proficiency").Return(&rulebook.Feat{
		ID:    "armor-proficiency",
		Level: 1,
		Rules: []rulebook.RuleEntry{
			{Key: rulebook.RuleKeyProficiency, Selector: "armor:medium", Value: "1"},
			{Key: rulebook.RuleKeyProficiency, Selector: "weapon:martial", Value: "2"},
		},
	}, nil).AnyTimes()

	resolver := rules.NewResolver(mockClient)

	c := testutils.CreateTestCharacter("human", "soldier", "wizard")
	testutils.AddFeat(c, "armor-proficiency", 1)

	armor, weapons := resolver.CombatUpgrades(c)
	assert.Equal(t, shared.RankTrained, armor[shared.ArmorMedium])
	assert.Equal(t, shared.RankExpert, weapons[shared.WeaponMartial])
	assert.NotContains(t, armor, shared.ArmorHeavy)
}

func TestCombatUpgrades_HighestWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mockrulebook.NewMockClient(ctrl)

	mockClient.EXPECT().GetFeat("basic-training").Return(&rulebook.Feat{
		ID:    "basic-training",
		Level: 1,
		Rules: []rulebook.RuleEntry{
			{Key: rulebook.RuleKeyProficiency, Selector: "armor:light", Value: "1"},
		},
	}, nil).AnyTimes()
	mockClient.EXPECT().GetFeat("advanced-training").Return(&rulebook.Feat{
		ID:    "advanced-training",
		Level: 6,
		Rules: []rulebook.RuleEntry{
			{Key: rulebook.RuleKeyProficiency, Selector: "armor:light", Value: "2"},
		},
	}, nil).AnyTimes()

	resolver := rules.NewResolver(mockClient)

	c := testutils.CreateTestCharacter("human", "soldier", "wizard")
	c.Level = 6
	testutils.AddFeat(c, "basic-training", 1)
	testutils.AddFeat(c, "advanced-training", 6)

	armor, _ := resolver.CombatUpgrades(c)
	assert.Equal(t, shared.RankExpert, armor[shared.ArmorLight])
}
