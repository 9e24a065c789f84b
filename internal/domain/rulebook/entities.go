// Package rulebook defines the static rules-content entities the engine
// consumes: classes, ancestries, backgrounds, feats, items and spells, plus
// the declarative rule entries attached to them. Content is opaque data; the
// engine never depends on specific ids.
package rulebook

import (
	"strings"

	"github.com/hearthforge/pf2-builder/internal/domain/shared"
)

// FeatType categorizes feat slots
type FeatType string

const (
	FeatTypeClass    FeatType = "class"
	FeatTypeSkill    FeatType = "skill"
	FeatTypeGeneral  FeatType = "general"
	FeatTypeAncestry FeatType = "ancestry"
)

// Traits with structural meaning to the engine
const (
	TraitArchetype  = "archetype"
	TraitDedication = "dedication"
)

// Class describes a character class. Proficiency progression lives in the
// per-ruleset tables, keyed by class id.
type Class struct {
	ID         string
	Name       string
	KeyAbility shared.Ability

	// TrainedSkills are granted at level 1; FreeSkills is the number of
	// additional level-1 picks the player makes
	TrainedSkills []shared.Skill
	FreeSkills    int

	// Specializations lists the subclass-style selections the class offers
	// (muses, elements, schools)
	Specializations []string

	// SpecializationSkills maps a specialization id to the skill trainings
	// it grants (elemental junctions and the like)
	SpecializationSkills map[string][]shared.Skill
}

// Ancestry describes an ancestry
type Ancestry struct {
	ID   string
	Name string

	HP    int
	Speed int

	Boosts     []shared.Ability
	Flaws      []shared.Ability
	FreeBoosts int

	Languages []string
	Senses    []string
}

// Background describes a background
type Background struct {
	ID   string
	Name string

	Boost         shared.Ability
	TrainedSkills []shared.Skill
	Languages     []string
	InnateSpells  []InnateSpellGrant
}

// InnateSpellGrant is an innate spell granted by a background or feat
type InnateSpellGrant struct {
	SpellID string
	MaxUses int
}

// Feat describes a feat and its declarative effects
type Feat struct {
	ID   string
	Name string

	// Level is the minimum level at which the feat may be taken
	Level int

	Traits        []string
	Prerequisites []string

	Rules []RuleEntry

	// TrainedSkills are skill trainings the feat grants outright
	// (dedication-style grants)
	TrainedSkills []shared.Skill

	InnateSpells []InnateSpellGrant
}

// HasTrait reports whether the feat carries the given trait
func (f *Feat) HasTrait(trait string) bool {
	for _, t := range f.Traits {
		if strings.EqualFold(t, trait) {
			return true
		}
	}
	return false
}

// IsDedication reports whether the feat is an archetype dedication
func (f *Feat) IsDedication() bool {
	return f.HasTrait(TraitArchetype) && f.HasTrait(TraitDedication)
}

// Item describes an equippable item
type Item struct {
	ID   string
	Name string

	// ArmorCategory is set for armor items, empty otherwise
	ArmorCategory shared.ArmorCategory

	// ACBonus is the item bonus to AC while worn
	ACBonus int

	// ApexAbility, when set, boosts that ability while the item is invested
	ApexAbility shared.Ability

	Rules []RuleEntry

	// SpellChoices are the configurations a spell-granting item offers; the
	// wearer selects one and gains its spell while the item is invested
	SpellChoices []SpellChoice
}

// SpellChoice is one selectable configuration of a spell-granting item
type SpellChoice struct {
	ID        string
	SpellID   string
	DailyUses int
}

// ChoiceByID returns the spell choice with the given id, or nil
func (i *Item) ChoiceByID(id string) *SpellChoice {
	for idx := range i.SpellChoices {
		if i.SpellChoices[idx].ID == id {
			return &i.SpellChoices[idx]
		}
	}
	return nil
}

// Spell describes a spell
type Spell struct {
	ID        string
	Name      string
	Tradition string
	Level     int
}
