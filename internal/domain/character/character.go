// Package character holds the character record: the bag of player choices
// accumulated over twenty levels plus every statistic derived from them.
// The record is owned by the caller; the recalculation engine transforms a
// working copy and hands back a new value.
package character

import (
	"sort"

	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
	"github.com/hearthforge/pf2-builder/internal/domain/shared"
)

// Character is the root entity
type Character struct {
	ID      string
	OwnerID string
	Name    string

	Level int

	AncestryID      string
	BackgroundID    string
	ClassID         string
	Specializations []string

	// AbilityScores is derived from Boosts on every recalculation
	AbilityScores map[shared.Ability]int
	Boosts        Boosts

	Skills     map[shared.Skill]shared.Rank
	Saves      map[shared.Save]shared.Rank
	Perception shared.Rank

	ArmorProficiencies  map[shared.ArmorCategory]shared.Rank
	WeaponProficiencies map[shared.WeaponCategory]shared.Rank

	// ArmorClassRank is the effective AC proficiency for whatever armor is
	// currently equipped (unarmored if none)
	ArmorClassRank shared.Rank

	HitPoints HitPoints
	Speed     Speed
	Senses    []string
	Languages []string

	Feats     []*FeatSelection
	Equipment []*OwnedItem

	// Buffs is derived state, keyed by stable id; each origin prefix is
	// owned by the stage that regenerates it
	Buffs map[string]*Buff

	Spellcasting Spellcasting

	// Dedications tracks archetype progress by archetype name
	Dedications map[string]*DedicationProgress

	// ManualSkillTraining are the player's level-1 trained-skill picks
	ManualSkillTraining []shared.Skill

	// OverlapSkill is the substitute pick granted when background training
	// overlaps class training
	OverlapSkill shared.Skill

	// IntBonusSkills are extra trained skills from the Intelligence
	// modifier, picked by the player
	IntBonusSkills []shared.Skill

	// SkillIncreases maps increase level (3, 5, ..., 19) to the chosen skill
	SkillIncreases map[int]shared.Skill
}

// Boosts records every ability-boost choice by source. Data recorded for a
// level above the character's current level stays put and simply has no
// effect until the level is reached again.
type Boosts struct {
	AncestryFree []shared.Ability
	Background   shared.Ability
	Class        shared.Ability
	LevelOneFree []shared.Ability

	// ByLevel holds the per-level-up boost sets, keyed by the level they
	// were taken at
	ByLevel map[int][]shared.Ability
}

// HitPoints tracks maximum, current and temporary hit points
type HitPoints struct {
	Max       int
	Current   int
	Temporary int
}

// Speed tracks movement speeds in feet. Only Land is derived; the other
// modes pass through recalculation unchanged.
type Speed struct {
	Land   int
	Swim   int
	Climb  int
	Fly    int
	Burrow int
}

// FeatSelection is one feat the player has taken
type FeatSelection struct {
	FeatID string

	// Level is the level the feat was acquired at; the feat contributes
	// nothing while the character's level is below it
	Level int

	Source   string
	SlotType rulebook.FeatType

	// Choices stores named sub-selections made when taking the feat
	// (e.g. which save Canny Acumen targets)
	Choices map[string]string

	// GrantedBy names the feat that granted this one automatically
	GrantedBy string

	Locked bool
}

// OwnedItem is one item in the character's equipment list
type OwnedItem struct {
	ItemID   string
	Worn     bool
	Invested bool

	SpellGrant *SpellGrantState
}

// SpellGrantState is the per-item state of a spell-granting item
type SpellGrantState struct {
	SelectedChoice string
	DailyUses      Uses

	// LastReset is an ISO-8601 date (yyyy-mm-dd)
	LastReset string
}

// Uses is a current/max usage pair
type Uses struct {
	Current int
	Max     int
}

// DedicationProgress tracks one archetype's dedication state
type DedicationProgress struct {
	// DedicationLevel is the level the dedication feat was taken at
	DedicationLevel int

	// FeatCount counts archetype feats taken, the dedication included.
	// The dedication stops constraining new dedications at three.
	FeatCount int
}

// Satisfied reports whether the two-further-feats requirement is met
func (p *DedicationProgress) Satisfied() bool {
	return p.FeatCount >= 3
}

// Remaining returns how many archetype feats are still required
func (p *DedicationProgress) Remaining() int {
	r := 3 - p.FeatCount
	if r < 0 {
		return 0
	}
	return r
}

// ActiveFeats returns the feats in effect at the character's current level,
// sorted by acquisition level then id for deterministic iteration
func (c *Character) ActiveFeats() []*FeatSelection {
	active := make([]*FeatSelection, 0, len(c.Feats))
	for _, f := range c.Feats {
		if f.Level <= c.Level {
			active = append(active, f)
		}
	}
	sortFeats(active)
	return active
}

// FeatsSortedByLevel returns every recorded feat, level-gated or not,
// sorted by acquisition level then id
func (c *Character) FeatsSortedByLevel() []*FeatSelection {
	all := make([]*FeatSelection, len(c.Feats))
	copy(all, c.Feats)
	sortFeats(all)
	return all
}

func sortFeats(feats []*FeatSelection) {
	sort.SliceStable(feats, func(i, j int) bool {
		if feats[i].Level != feats[j].Level {
			return feats[i].Level < feats[j].Level
		}
		return feats[i].FeatID < feats[j].FeatID
	})
}

// HasActiveFeat reports whether a level-gated feat with the id is present
func (c *Character) HasActiveFeat(featID string) bool {
	for _, f := range c.Feats {
		if f.FeatID == featID && f.Level <= c.Level {
			return true
		}
	}
	return false
}

// FeatSelectionByID returns the first recorded selection of the feat, or nil
func (c *Character) FeatSelectionByID(featID string) *FeatSelection {
	for _, f := range c.Feats {
		if f.FeatID == featID {
			return f
		}
	}
	return nil
}

// ItemByID returns the owned item with the given item id, or nil
func (c *Character) ItemByID(itemID string) *OwnedItem {
	for _, it := range c.Equipment {
		if it.ItemID == itemID {
			return it
		}
	}
	return nil
}

// AbilityModifier returns the modifier for an ability
func (c *Character) AbilityModifier(a shared.Ability) int {
	return shared.Modifier(c.AbilityScores[a])
}

// Clone returns a deep copy of the character. The engine recalculates
// against a clone so the caller's value is never aliased mid-run.
func (c *Character) Clone() *Character {
	out := *c

	out.Specializations = append([]string(nil), c.Specializations...)
	out.Senses = append([]string(nil), c.Senses...)
	out.Languages = append([]string(nil), c.Languages...)
	out.ManualSkillTraining = append([]shared.Skill(nil), c.ManualSkillTraining...)
	out.IntBonusSkills = append([]shared.Skill(nil), c.IntBonusSkills...)

	out.AbilityScores = make(map[shared.Ability]int, len(c.AbilityScores))
	for k, v := range c.AbilityScores {
		out.AbilityScores[k] = v
	}
	out.Skills = make(map[shared.Skill]shared.Rank, len(c.Skills))
	for k, v := range c.Skills {
		out.Skills[k] = v
	}
	out.Saves = make(map[shared.Save]shared.Rank, len(c.Saves))
	for k, v := range c.Saves {
		out.Saves[k] = v
	}
	out.ArmorProficiencies = make(map[shared.ArmorCategory]shared.Rank, len(c.ArmorProficiencies))
	for k, v := range c.ArmorProficiencies {
		out.ArmorProficiencies[k] = v
	}
	out.WeaponProficiencies = make(map[shared.WeaponCategory]shared.Rank, len(c.WeaponProficiencies))
	for k, v := range c.WeaponProficiencies {
		out.WeaponProficiencies[k] = v
	}
	out.SkillIncreases = make(map[int]shared.Skill, len(c.SkillIncreases))
	for k, v := range c.SkillIncreases {
		out.SkillIncreases[k] = v
	}

	out.Boosts = c.Boosts
	out.Boosts.AncestryFree = append([]shared.Ability(nil), c.Boosts.AncestryFree...)
	out.Boosts.LevelOneFree = append([]shared.Ability(nil), c.Boosts.LevelOneFree...)
	out.Boosts.ByLevel = make(map[int][]shared.Ability, len(c.Boosts.ByLevel))
	for lvl, boosts := range c.Boosts.ByLevel {
		out.Boosts.ByLevel[lvl] = append([]shared.Ability(nil), boosts...)
	}

	out.Feats = make([]*FeatSelection, len(c.Feats))
	for i, f := range c.Feats {
		fc := *f
		if f.Choices != nil {
			fc.Choices = make(map[string]string, len(f.Choices))
			for k, v := range f.Choices {
				fc.Choices[k] = v
			}
		}
		out.Feats[i] = &fc
	}

	out.Equipment = make([]*OwnedItem, len(c.Equipment))
	for i, it := range c.Equipment {
		ic := *it
		if it.SpellGrant != nil {
			sg := *it.SpellGrant
			ic.SpellGrant = &sg
		}
		out.Equipment[i] = &ic
	}

	out.Buffs = make(map[string]*Buff, len(c.Buffs))
	for id, b := range c.Buffs {
		bc := *b
		out.Buffs[id] = &bc
	}

	out.Dedications = make(map[string]*DedicationProgress, len(c.Dedications))
	for name, p := range c.Dedications {
		pc := *p
		out.Dedications[name] = &pc
	}

	out.Spellcasting = c.Spellcasting.clone()

	return &out
}
