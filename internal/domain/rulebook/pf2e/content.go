package pf2e

import (
	errs "github.com/hearthforge/pf2-builder/internal/errors"

	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
	"github.com/hearthforge/pf2-builder/internal/domain/shared"
)

// DefaultBonusLanguages is the placeholder pool bonus languages are drawn
// from, in order, when the Intelligence modifier grants extras
var DefaultBonusLanguages = []string{
	"draconic", "dwarven", "elven", "gnomish", "goblin",
	"halfling", "jotun", "orcish", "sylvan", "undercommon",
}

var classes = map[string]*rulebook.Class{
	"fighter": {
		ID:            "fighter",
		Name:          "Fighter",
		KeyAbility:    shared.AbilityStrength,
		TrainedSkills: []shared.Skill{shared.SkillAthletics},
		FreeSkills:    3,
	},
	"wizard": {
		ID:            "wizard",
		Name:          "Wizard",
		KeyAbility:    shared.AbilityIntelligence,
		TrainedSkills: []shared.Skill{shared.SkillArcana},
		FreeSkills:    2,
		Specializations: []string{
			"school-of-evocation", "school-of-illusion", "school-of-necromancy",
		},
	},
	"rogue": {
		ID:            "rogue",
		Name:          "Rogue",
		KeyAbility:    shared.AbilityDexterity,
		TrainedSkills: []shared.Skill{shared.SkillStealth},
		FreeSkills:    7,
		Specializations: []string{
			"thief", "ruffian", "scoundrel",
		},
	},
	"kineticist": {
		ID:            "kineticist",
		Name:          "Kineticist",
		KeyAbility:    shared.AbilityConstitution,
		TrainedSkills: []shared.Skill{shared.SkillNature},
		FreeSkills:    3,
		Specializations: []string{
			"air", "earth", "fire", "metal", "water", "wood",
		},
		SpecializationSkills: map[string][]shared.Skill{
			"air":   {shared.SkillAcrobatics},
			"earth": {shared.SkillAthletics},
			"fire":  {shared.SkillIntimidation},
			"metal": {shared.SkillCrafting},
			"water": {shared.SkillAthletics},
			"wood":  {shared.SkillSurvival},
		},
	},
}

var ancestries = map[string]*rulebook.Ancestry{
	"human": {
		ID:         "human",
		Name:       "Human",
		HP:         8,
		Speed:      25,
		FreeBoosts: 2,
		Languages:  []string{"common"},
		Senses:     []string{"normal-vision"},
	},
	"dwarf": {
		ID:         "dwarf",
		Name:       "Dwarf",
		HP:         10,
		Speed:      20,
		Boosts:     []shared.Ability{shared.AbilityConstitution, shared.AbilityWisdom},
		Flaws:      []shared.Ability{shared.AbilityCharisma},
		FreeBoosts: 1,
		Languages:  []string{"common", "dwarven"},
		Senses:     []string{"darkvision"},
	},
	"elf": {
		ID:         "elf",
		Name:       "Elf",
		HP:         6,
		Speed:      30,
		Boosts:     []shared.Ability{shared.AbilityDexterity, shared.AbilityIntelligence},
		Flaws:      []shared.Ability{shared.AbilityConstitution},
		FreeBoosts: 1,
		Languages:  []string{"common", "elven"},
		Senses:     []string{"low-light-vision"},
	},
}

var backgrounds = map[string]*rulebook.Background{
	"soldier": {
		ID:            "soldier",
		Name:          "Soldier",
		Boost:         shared.AbilityStrength,
		TrainedSkills: []shared.Skill{shared.SkillAthletics},
	},
	"scholar": {
		ID:            "scholar",
		Name:          "Scholar",
		Boost:         shared.AbilityIntelligence,
		TrainedSkills: []shared.Skill{shared.SkillArcana},
		Languages:     []string{"draconic"},
	},
	"field-medic": {
		ID:            "field-medic",
		Name:          "Field Medic",
		Boost:         shared.AbilityConstitution,
		TrainedSkills: []shared.Skill{shared.SkillMedicine},
		InnateSpells: []rulebook.InnateSpellGrant{
			{SpellID: "stabilize", MaxUses: 1},
		},
	},
}

var feats = map[string]*rulebook.Feat{
	"incredible-initiative": {
		ID:     "incredible-initiative",
		Name:   "Incredible Initiative",
		Level:  1,
		Traits: []string{"general"},
		Rules: []rulebook.RuleEntry{
			{
				Key:       rulebook.RuleKeyFlatModifier,
				Selector:  rulebook.SelectorInitiative,
				BonusType: "circumstance",
				Value:     "2",
			},
		},
	},
	"fleet": {
		ID:     "fleet",
		Name:   "Fleet",
		Level:  1,
		Traits: []string{"general"},
		Rules: []rulebook.RuleEntry{
			{
				Key:       rulebook.RuleKeyFlatModifier,
				Selector:  rulebook.SelectorSpeed,
				BonusType: "status",
				Value:     "5",
			},
		},
	},
	"sprinters-stride": {
		ID:     "sprinters-stride",
		Name:   "Sprinter's Stride",
		Level:  9,
		Traits: []string{"general"},
		Rules: []rulebook.RuleEntry{
			{
				Key:       rulebook.RuleKeyFlatModifier,
				Selector:  rulebook.SelectorSpeed,
				BonusType: "status",
				Value:     "10",
			},
		},
	},
	"toughness": {
		ID:     "toughness",
		Name:   "Toughness",
		Level:  1,
		Traits: []string{"general"},
		Rules: []rulebook.RuleEntry{
			{
				Key:      rulebook.RuleKeyFlatModifier,
				Selector: rulebook.SelectorHP,
				Value:    "@actor.level",
			},
		},
	},
	"untrained-improvisation": {
		ID:     "untrained-improvisation",
		Name:   "Untrained Improvisation",
		Level:  1,
		Traits: []string{"general"},
		Rules: []rulebook.RuleEntry{
			{
				Key:       rulebook.RuleKeyFlatModifier,
				Selector:  rulebook.SelectorUntrainedSkills,
				BonusType: "circumstance",
				Value:     "@actor.level+clamp(-2,floor((@actor.level-7)/2),0)",
			},
		},
	},
	"canny-acumen": {
		ID:     "canny-acumen",
		Name:   "Canny Acumen",
		Level:  1,
		Traits: []string{"general"},
		Rules: []rulebook.RuleEntry{
			{
				Key:   rulebook.RuleKeyProficiency,
				Path:  "acumen-target",
				Value: "ternary(gte(@actor.level,17),3,2)",
			},
		},
	},
	"bastion-discipline": {
		ID:     "bastion-discipline",
		Name:   "Bastion Discipline",
		Level:  4,
		Traits: []string{"general"},
		Rules: []rulebook.RuleEntry{
			{
				Key:       rulebook.RuleKeyFlatModifier,
				Selector:  rulebook.SelectorAC,
				BonusType: "status",
				Value:     "1",
				Predicate: &rulebook.Predicate{All: []rulebook.Clause{
					rulebook.AnyOf(
						rulebook.Condition{Kind: rulebook.ConditionClass, ID: "fighter"},
						rulebook.Condition{Kind: rulebook.ConditionFeat, ID: "sentinel-dedication"},
					),
				}},
			},
		},
	},
	"wizard-dedication": {
		ID:            "wizard-dedication",
		Name:          "Wizard Dedication",
		Level:         2,
		Traits:        []string{"archetype", "dedication", "multiclass"},
		TrainedSkills: []shared.Skill{shared.SkillArcana},
		Rules: []rulebook.RuleEntry{
			{
				Key:   rulebook.RuleKeyGrantItem,
				Value: "Compendium.feats.School Familiarity",
			},
		},
	},
	"school-familiarity": {
		ID:            "school-familiarity",
		Name:          "School Familiarity",
		Level:         2,
		Traits:        []string{"archetype"},
		Prerequisites: []string{"Wizard Dedication"},
	},
	"basic-arcana": {
		ID:            "basic-arcana",
		Name:          "Basic Arcana",
		Level:         4,
		Traits:        []string{"archetype"},
		Prerequisites: []string{"Wizard Dedication"},
	},
	"fighter-dedication": {
		ID:            "fighter-dedication",
		Name:          "Fighter Dedication",
		Level:         2,
		Traits:        []string{"archetype", "dedication", "multiclass"},
		TrainedSkills: []shared.Skill{shared.SkillAthletics},
	},
	"opportunist": {
		ID:            "opportunist",
		Name:          "Opportunist",
		Level:         4,
		Traits:        []string{"archetype"},
		Prerequisites: []string{"Fighter Dedication"},
	},
	"sentinel-dedication": {
		ID:     "sentinel-dedication",
		Name:   "Sentinel Dedication",
		Level:  2,
		Traits: []string{"archetype", "dedication"},
	},
	"fey-gift": {
		ID:     "fey-gift",
		Name:   "Fey Gift",
		Level:  1,
		Traits: []string{"elf"},
		InnateSpells: []rulebook.InnateSpellGrant{
			{SpellID: "daze", MaxUses: 1},
		},
	},
}

var items = map[string]*rulebook.Item{
	"leather-armor": {
		ID:            "leather-armor",
		Name:          "Leather Armor",
		ArmorCategory: shared.ArmorLight,
		ACBonus:       1,
	},
	"breastplate": {
		ID:            "breastplate",
		Name:          "Breastplate",
		ArmorCategory: shared.ArmorMedium,
		ACBonus:       4,
	},
	"full-plate": {
		ID:            "full-plate",
		Name:          "Full Plate",
		ArmorCategory: shared.ArmorHeavy,
		ACBonus:       6,
	},
	"diadem-of-intellect": {
		ID:          "diadem-of-intellect",
		Name:        "Diadem of Intellect",
		ApexAbility: shared.AbilityIntelligence,
	},
	"warding-charm": {
		ID:   "warding-charm",
		Name: "Warding Charm",
		Rules: []rulebook.RuleEntry{
			{
				Key:       rulebook.RuleKeyFlatModifier,
				Selector:  string(shared.SaveFortitude),
				BonusType: "item",
				Value:     "1",
			},
		},
	},
	"champions-shield-pin": {
		ID:   "champions-shield-pin",
		Name: "Champion's Shield Pin",
		Rules: []rulebook.RuleEntry{
			{
				Key:       rulebook.RuleKeyFlatModifier,
				Selector:  rulebook.SelectorAC,
				BonusType: "item",
				Value:     "1",
				Predicate: rulebook.ClassIs("fighter"),
			},
		},
	},
	"pearly-white-spindle": {
		ID:   "pearly-white-spindle",
		Name: "Pearly White Spindle Aeon Stone",
		SpellChoices: []rulebook.SpellChoice{
			{ID: "guidance", SpellID: "guidance", DailyUses: 1},
			{ID: "shield", SpellID: "shield", DailyUses: 1},
		},
	},
}

var spells = map[string]*rulebook.Spell{
	"guidance":     {ID: "guidance", Name: "Guidance", Tradition: "divine", Level: 0},
	"shield":       {ID: "shield", Name: "Shield", Tradition: "arcane", Level: 0},
	"daze":         {ID: "daze", Name: "Daze", Tradition: "occult", Level: 0},
	"stabilize":    {ID: "stabilize", Name: "Stabilize", Tradition: "divine", Level: 0},
	"detect-magic": {ID: "detect-magic", Name: "Detect Magic", Tradition: "arcane", Level: 0},
}

// StaticClient serves the built-in content tables. It is safe for
// concurrent use; the tables are never mutated after init.
type StaticClient struct{}

// NewStaticClient returns a client over the built-in content
func NewStaticClient() *StaticClient {
	return &StaticClient{}
}

// GetClass returns a class by id
func (c *StaticClient) GetClass(id string) (*rulebook.Class, error) {
	if cl, ok := classes[id]; ok {
		return cl, nil
	}
	return nil, errs.NotFoundf("class '%s' not found", id)
}

// GetAncestry returns an ancestry by id
func (c *StaticClient) GetAncestry(id string) (*rulebook.Ancestry, error) {
	if a, ok := ancestries[id]; ok {
		return a, nil
	}
	return nil, errs.NotFoundf("ancestry '%s' not found", id)
}

// GetBackground returns a background by id
func (c *StaticClient) GetBackground(id string) (*rulebook.Background, error) {
	if b, ok := backgrounds[id]; ok {
		return b, nil
	}
	return nil, errs.NotFoundf("background '%s' not found", id)
}

// GetFeat returns a feat by id
func (c *StaticClient) GetFeat(id string) (*rulebook.Feat, error) {
	if f, ok := feats[id]; ok {
		return f, nil
	}
	return nil, errs.NotFoundf("feat '%s' not found", id)
}

// GetItem returns an item by id
func (c *StaticClient) GetItem(id string) (*rulebook.Item, error) {
	if i, ok := items[id]; ok {
		return i, nil
	}
	return nil, errs.NotFoundf("item '%s' not found", id)
}

// GetSpell returns a spell by id
func (c *StaticClient) GetSpell(id string) (*rulebook.Spell, error) {
	if s, ok := spells[id]; ok {
		return s, nil
	}
	return nil, errs.NotFoundf("spell '%s' not found", id)
}

// ListClasses returns all classes
func (c *StaticClient) ListClasses() ([]*rulebook.Class, error) {
	out := make([]*rulebook.Class, 0, len(classes))
	for _, cl := range classes {
		out = append(out, cl)
	}
	return out, nil
}

// ListFeats returns all feats
func (c *StaticClient) ListFeats() ([]*rulebook.Feat, error) {
	out := make([]*rulebook.Feat, 0, len(feats))
	for _, f := range feats {
		out = append(out, f)
	}
	return out, nil
}

// ListItems returns all items
func (c *StaticClient) ListItems() ([]*rulebook.Item, error) {
	out := make([]*rulebook.Item, 0, len(items))
	for _, i := range items {
		out = append(out, i)
	}
	return out, nil
}

// ListSpells returns all spells
func (c *StaticClient) ListSpells() ([]*rulebook.Spell, error) {
	out := make([]*rulebook.Spell, 0, len(spells))
	for _, s := range spells {
		out = append(out, s)
	}
	return out, nil
}

// SpellGrantingSpellIDs returns every spell id reachable through any item's
// spell choices
func (c *StaticClient) SpellGrantingSpellIDs() []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, item := range items {
		for _, choice := range item.SpellChoices {
			if !seen[choice.SpellID] {
				seen[choice.SpellID] = true
				out = append(out, choice.SpellID)
			}
		}
	}
	return out
}
