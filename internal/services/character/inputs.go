package character

import (
	char "github.com/hearthforge/pf2-builder/internal/domain/character"
	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
	"github.com/hearthforge/pf2-builder/internal/domain/shared"
	"github.com/hearthforge/pf2-builder/internal/services/archetype"
)

// CreateCharacterInput holds the data for creating a character
type CreateCharacterInput struct {
	OwnerID      string
	Name         string
	AncestryID   string
	BackgroundID string
	ClassID      string
}

// CreateCharacterOutput holds the created character
type CreateCharacterOutput struct {
	Character *char.Character
}

// MutationOutput is the common output of a mutation: the recalculated record
type MutationOutput struct {
	Character *char.Character
}

// SetLevelInput holds the data for changing level
type SetLevelInput struct {
	Character *char.Character
	Level     int
}

// AddFeatInput holds the data for taking a feat
type AddFeatInput struct {
	Character *char.Character
	FeatID    string

	// Level the feat is taken at
	Level int

	Source   string
	SlotType rulebook.FeatType
	Choices  map[string]string
}

// AddFeatOutput carries the recalculated record and the dedication decision.
// When the decision disallows the pick, Character is the unmodified input.
type AddFeatOutput struct {
	Character *char.Character
	Decision  archetype.Decision
}

// RemoveFeatInput holds the data for removing a feat
type RemoveFeatInput struct {
	Character *char.Character
	FeatID    string
}

// RemoveArchetypeInput holds the data for removing a dedication line
type RemoveArchetypeInput struct {
	Character *char.Character
	Archetype string
}

// AddItemInput holds the data for adding an item
type AddItemInput struct {
	Character *char.Character
	ItemID    string
}

// SetItemStateInput holds the data for toggling worn or invested state
type SetItemStateInput struct {
	Character *char.Character
	ItemID    string
	State     bool
}

// SelectSpellChoiceInput holds the data for configuring a spell-granting item
type SelectSpellChoiceInput struct {
	Character *char.Character
	ItemID    string
	ChoiceID  string
}

// SetSkillIncreaseInput holds the data for a skill-increase pick
type SetSkillIncreaseInput struct {
	Character *char.Character
	Level     int
	Skill     shared.Skill
}

// SetAbilityBoostsInput replaces the recorded boost choices wholesale
type SetAbilityBoostsInput struct {
	Character *char.Character
	Boosts    char.Boosts
}
