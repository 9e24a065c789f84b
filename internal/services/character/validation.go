package character

import (
	"github.com/hearthforge/pf2-builder/internal/domain/shared"
	apperrs "github.com/hearthforge/pf2-builder/internal/errors"
)

// Validator validates its own input
type Validator interface {
	Validate() error
}

// ValidateInput runs an input's own validation, rejecting nil inputs first
func ValidateInput(input Validator) error {
	if input == nil {
		return apperrs.InvalidArgument("input is required")
	}
	return input.Validate()
}

// Validate checks the create input
func (i *CreateCharacterInput) Validate() error {
	if i == nil {
		return apperrs.InvalidArgument("input is required")
	}
	if i.Name == "" {
		return apperrs.Validation("character name is required")
	}
	if i.AncestryID == "" {
		return apperrs.Validation("ancestry id is required")
	}
	if i.BackgroundID == "" {
		return apperrs.Validation("background id is required")
	}
	if i.ClassID == "" {
		return apperrs.Validation("class id is required")
	}
	return nil
}

// Validate checks the set level input
func (i *SetLevelInput) Validate() error {
	if i == nil || i.Character == nil {
		return apperrs.InvalidArgument("character is required")
	}
	if i.Level < 1 || i.Level > 20 {
		return apperrs.Validationf("level %d is out of range 1-20", i.Level)
	}
	return nil
}

// Validate checks the add feat input
func (i *AddFeatInput) Validate() error {
	if i == nil || i.Character == nil {
		return apperrs.InvalidArgument("character is required")
	}
	if i.FeatID == "" {
		return apperrs.Validation("feat id is required")
	}
	if i.Level < 1 || i.Level > 20 {
		return apperrs.Validationf("level %d is out of range 1-20", i.Level)
	}
	return nil
}

// Validate checks the remove feat input
func (i *RemoveFeatInput) Validate() error {
	if i == nil || i.Character == nil {
		return apperrs.InvalidArgument("character is required")
	}
	if i.FeatID == "" {
		return apperrs.Validation("feat id is required")
	}
	return nil
}

// Validate checks the remove archetype input
func (i *RemoveArchetypeInput) Validate() error {
	if i == nil || i.Character == nil {
		return apperrs.InvalidArgument("character is required")
	}
	if i.Archetype == "" {
		return apperrs.Validation("archetype name is required")
	}
	return nil
}

// Validate checks the add item input
func (i *AddItemInput) Validate() error {
	if i == nil || i.Character == nil {
		return apperrs.InvalidArgument("character is required")
	}
	if i.ItemID == "" {
		return apperrs.Validation("item id is required")
	}
	return nil
}

// Validate checks the item state input
func (i *SetItemStateInput) Validate() error {
	if i == nil || i.Character == nil {
		return apperrs.InvalidArgument("character is required")
	}
	if i.ItemID == "" {
		return apperrs.Validation("item id is required")
	}
	return nil
}

// Validate checks the spell choice input
func (i *SelectSpellChoiceInput) Validate() error {
	if i == nil || i.Character == nil {
		return apperrs.InvalidArgument("character is required")
	}
	if i.ItemID == "" {
		return apperrs.Validation("item id is required")
	}
	if i.ChoiceID == "" {
		return apperrs.Validation("choice id is required")
	}
	return nil
}

// Validate checks the skill increase input
func (i *SetSkillIncreaseInput) Validate() error {
	if i == nil || i.Character == nil {
		return apperrs.InvalidArgument("character is required")
	}
	if i.Level < 1 || i.Level > 20 {
		return apperrs.Validationf("level %d is out of range 1-20", i.Level)
	}
	if !shared.IsSkill(string(i.Skill)) {
		return apperrs.Validationf("'%s' is not a skill", i.Skill)
	}
	return nil
}

// Validate checks the ability boosts input
func (i *SetAbilityBoostsInput) Validate() error {
	if i == nil || i.Character == nil {
		return apperrs.InvalidArgument("character is required")
	}
	for _, a := range i.Boosts.AncestryFree {
		if !shared.IsAbility(a) {
			return apperrs.Validationf("'%s' is not an ability", a)
		}
	}
	for _, a := range i.Boosts.LevelOneFree {
		if !shared.IsAbility(a) {
			return apperrs.Validationf("'%s' is not an ability", a)
		}
	}
	for lvl, set := range i.Boosts.ByLevel {
		if lvl < 1 || lvl > 20 {
			return apperrs.Validationf("boost level %d is out of range 1-20", lvl)
		}
		for _, a := range set {
			if !shared.IsAbility(a) {
				return apperrs.Validationf("'%s' is not an ability", a)
			}
		}
	}
	return nil
}
