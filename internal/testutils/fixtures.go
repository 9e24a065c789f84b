// Package testutils provides shared fixtures for service and engine tests.
package testutils

import (
	char "github.com/hearthforge/pf2-builder/internal/domain/character"
	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
	"github.com/hearthforge/pf2-builder/internal/domain/shared"
)

// CreateTestCharacter creates a level-1 character with the given build ids
// and no choices recorded beyond the class key ability boost
func CreateTestCharacter(ancestryID, backgroundID, classID string) *char.Character {
	return &char.Character{
		ID:           "test-character",
		OwnerID:      "test-owner",
		Name:         "Test Character",
		Level:        1,
		AncestryID:   ancestryID,
		BackgroundID: backgroundID,
		ClassID:      classID,
	}
}

// CreateTestFighter creates the standard fighter fixture: human soldier,
// STR key boost, CON 14 via free boosts
func CreateTestFighter() *char.Character {
	c := CreateTestCharacter("human", "soldier", "fighter")
	c.Boosts = char.Boosts{
		AncestryFree: []shared.Ability{shared.AbilityStrength, shared.AbilityConstitution},
		Background:   shared.AbilityStrength,
		Class:        shared.AbilityStrength,
		LevelOneFree: []shared.Ability{shared.AbilityConstitution, shared.AbilityDexterity},
	}
	return c
}

// CreateTestWizard creates a wizard fixture: elf scholar, INT-focused
func CreateTestWizard() *char.Character {
	c := CreateTestCharacter("elf", "scholar", "wizard")
	c.Boosts = char.Boosts{
		AncestryFree: []shared.Ability{shared.AbilityIntelligence},
		Background:   shared.AbilityIntelligence,
		Class:        shared.AbilityIntelligence,
		LevelOneFree: []shared.Ability{shared.AbilityIntelligence, shared.AbilityDexterity},
	}
	return c
}

// AddFeat records a feat selection at the given level
func AddFeat(c *char.Character, featID string, level int) *char.FeatSelection {
	sel := &char.FeatSelection{FeatID: featID, Level: level}
	c.Feats = append(c.Feats, sel)
	return sel
}

// AddItem adds an owned item with the given state
func AddItem(c *char.Character, itemID string, worn, invested bool) *char.OwnedItem {
	item := &char.OwnedItem{ItemID: itemID, Worn: worn, Invested: invested}
	c.Equipment = append(c.Equipment, item)
	return item
}

// CreateTestFeat creates a minimal feat entity for mock-backed tests
func CreateTestFeat(id string, level int, traits ...string) *rulebook.Feat {
	return &rulebook.Feat{
		ID:     id,
		Name:   id,
		Level:  level,
		Traits: traits,
	}
}

// CreateTestDedication creates an archetype dedication feat entity
func CreateTestDedication(archetype string, level int) *rulebook.Feat {
	return &rulebook.Feat{
		ID:     archetype + "-dedication",
		Name:   archetype + " Dedication",
		Level:  level,
		Traits: []string{rulebook.TraitArchetype, rulebook.TraitDedication},
	}
}
