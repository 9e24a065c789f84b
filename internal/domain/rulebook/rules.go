package rulebook

import "strings"

// Rule entry keys the engine understands. Entries with any other key are
// carried as UnknownRule and contribute nothing; content updates may ship
// keys this build has never seen.
const (
	RuleKeyFlatModifier = "flat-modifier"
	RuleKeyProficiency  = "proficiency"
	RuleKeyGrantItem    = "grant-item"
)

// Selector prefixes and special selectors for flat modifiers
const (
	SelectorInitiative      = "initiative"
	SelectorAC              = "ac"
	SelectorSpeed           = "speed"
	SelectorAttack          = "attack"
	SelectorDamage          = "damage"
	SelectorHP              = "hp"
	SelectorUntrainedSkills = "skill:untrained"
	SelectorPerception      = "perception"
)

// RuleEntry is the loosely-typed wire form of a declarative effect as it
// appears in content data. Classify turns it into a typed rule.
type RuleEntry struct {
	Key      string
	Selector string

	// Value is a formula string ("2", "@actor.level", ...). ClassValues,
	// when present, overrides Value per class id.
	Value       string
	ClassValues map[string]string

	// BonusType tags flat modifiers (status, item, circumstance)
	BonusType string

	// Path names the selection-choice key that stores the concrete target
	// for proficiency rules whose target the player picked earlier
	Path string

	Predicate *Predicate
}

// Rule is the closed set of typed rule variants
type Rule interface {
	rule()
}

// FlatModifierRule contributes a numeric bonus to a named target
type FlatModifierRule struct {
	Target      string
	BonusType   string
	Value       Formula
	ClassValues map[string]Formula
	Predicate   *Predicate
}

// ProficiencyUpgradeRule raises a save or perception rank to at least the
// evaluated target. Rank evaluates on the content sources' 0..4 scale.
type ProficiencyUpgradeRule struct {
	Target    string
	Path      string
	Rank      Formula
	Predicate *Predicate
}

// GrantItemRule grants another entity, referenced by a compound string
type GrantItemRule struct {
	Ref string
}

// UnknownRule is any entry the engine does not understand
type UnknownRule struct {
	Key string
}

func (FlatModifierRule) rule()       {}
func (ProficiencyUpgradeRule) rule() {}
func (GrantItemRule) rule()          {}
func (UnknownRule) rule()            {}

// Classify resolves a rule entry into its typed variant. Malformed values
// parse to no-op formulas; unknown keys classify as UnknownRule.
func Classify(e RuleEntry) Rule {
	switch e.Key {
	case RuleKeyFlatModifier:
		r := FlatModifierRule{
			Target:    e.Selector,
			BonusType: e.BonusType,
			Value:     ParseFormula(e.Value),
			Predicate: e.Predicate,
		}
		if len(e.ClassValues) > 0 {
			r.ClassValues = make(map[string]Formula, len(e.ClassValues))
			for classID, v := range e.ClassValues {
				r.ClassValues[classID] = ParseFormula(v)
			}
		}
		return r
	case RuleKeyProficiency:
		return ProficiencyUpgradeRule{
			Target:    e.Selector,
			Path:      e.Path,
			Rank:      ParseFormula(e.Value),
			Predicate: e.Predicate,
		}
	case RuleKeyGrantItem:
		return GrantItemRule{Ref: e.Value}
	default:
		return UnknownRule{Key: e.Key}
	}
}

// GrantRefID extracts the granted entity's id from a compound reference
// string: the last dot-separated segment, lowercased, spaces to hyphens.
// "Compendium.feats.Basic Arcana" resolves to "basic-arcana".
func GrantRefID(ref string) string {
	seg := ref
	if idx := strings.LastIndex(ref, "."); idx >= 0 {
		seg = ref[idx+1:]
	}
	seg = strings.TrimSpace(strings.ToLower(seg))
	return strings.ReplaceAll(seg, " ", "-")
}
