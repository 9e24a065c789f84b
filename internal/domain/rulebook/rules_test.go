package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
)

func TestClassify_FlatModifier(t *testing.T) {
	rule := rulebook.Classify(rulebook.RuleEntry{
		Key:       rulebook.RuleKeyFlatModifier,
		Selector:  rulebook.SelectorInitiative,
		BonusType: "circumstance",
		Value:     "2",
	})

	flat, ok := rule.(rulebook.FlatModifierRule)
	require.True(t, ok)
	assert.Equal(t, rulebook.SelectorInitiative, flat.Target)
	assert.Equal(t, "circumstance", flat.BonusType)
	assert.Equal(t, 2, flat.Value.Eval(1))
}

func TestClassify_FlatModifierClassValues(t *testing.T) {
	rule := rulebook.Classify(rulebook.RuleEntry{
		Key:      rulebook.RuleKeyFlatModifier,
		Selector: rulebook.SelectorSpeed,
		Value:    "5",
		ClassValues: map[string]string{
			"monk": "10",
		},
	})

	flat, ok := rule.(rulebook.FlatModifierRule)
	require.True(t, ok)
	assert.Equal(t, 5, flat.Value.Eval(3))
	require.Contains(t, flat.ClassValues, "monk")
	assert.Equal(t, 10, flat.ClassValues["monk"].Eval(3))
}

func TestClassify_Proficiency(t *testing.T) {
	rule := rulebook.Classify(rulebook.RuleEntry{
		Key:   rulebook.RuleKeyProficiency,
		Path:  "acumen-target",
		Value: "ternary(gte(@actor.level,17),3,2)",
	})

	prof, ok := rule.(rulebook.ProficiencyUpgradeRule)
	require.True(t, ok)
	assert.Equal(t, "acumen-target", prof.Path)
	assert.Equal(t, 2, prof.Rank.Eval(5))
	assert.Equal(t, 3, prof.Rank.Eval(17))
}

func TestClassify_GrantItem(t *testing.T) {
	rule := rulebook.Classify(rulebook.RuleEntry{
		Key:   rulebook.RuleKeyGrantItem,
		Value: "Compendium.feats.School Familiarity",
	})

	grant, ok := rule.(rulebook.GrantItemRule)
	require.True(t, ok)
	assert.Equal(t, "Compendium.feats.School Familiarity", grant.Ref)
}

func TestClassify_UnknownKey(t *testing.T) {
	rule := rulebook.Classify(rulebook.RuleEntry{Key: "roll-option", Value: "whatever"})

	unknown, ok := rule.(rulebook.UnknownRule)
	require.True(t, ok)
	assert.Equal(t, "roll-option", unknown.Key)
}

func TestGrantRefID(t *testing.T) {
	tests := []struct {
		ref      string
		expected string
	}{
		{"Compendium.feats.School Familiarity", "school-familiarity"},
		{"Compendium.feats.basic-arcana", "basic-arcana"},
		{"Basic Arcana", "basic-arcana"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, rulebook.GrantRefID(tt.ref), "ref %q", tt.ref)
	}
}

func TestFeatTraitHelpers(t *testing.T) {
	feat := &rulebook.Feat{
		ID:     "wizard-dedication",
		Traits: []string{"Archetype", "Dedication", "multiclass"},
	}

	assert.True(t, feat.HasTrait("archetype"))
	assert.True(t, feat.HasTrait("MULTICLASS"))
	assert.False(t, feat.HasTrait("general"))
	assert.True(t, feat.IsDedication())

	assert.False(t, (&rulebook.Feat{Traits: []string{"archetype"}}).IsDedication())
}
