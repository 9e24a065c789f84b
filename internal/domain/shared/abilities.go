package shared

// Ability identifies one of the six ability scores
type Ability string

// Abilities lists all six abilities in standard order
var Abilities = []Ability{AbilityStrength, AbilityDexterity, AbilityConstitution, AbilityIntelligence, AbilityWisdom, AbilityCharisma}

const (
	AbilityNone         Ability = ""
	AbilityStrength     Ability = "str"
	AbilityDexterity    Ability = "dex"
	AbilityConstitution Ability = "con"
	AbilityIntelligence Ability = "int"
	AbilityWisdom       Ability = "wis"
	AbilityCharisma     Ability = "cha"
)

// IsAbility reports whether a is one of the six abilities
func IsAbility(a Ability) bool {
	for _, known := range Abilities {
		if a == known {
			return true
		}
	}
	return false
}

// BaseAbilityScore is the starting value before boosts and flaws
const BaseAbilityScore = 10

// BoostThreshold is the score at or above which a boost grants +1 instead of +2
const BoostThreshold = 18

// Modifier converts an ability score to its modifier
func Modifier(score int) int {
	// floor division that is correct for scores below 10
	if score >= 10 {
		return (score - 10) / 2
	}
	return -((11 - score) / 2)
}

// ApplyBoost raises a score by one boost step: +2 below 18, +1 at 18 or higher
func ApplyBoost(score int) int {
	if score >= BoostThreshold {
		return score + 1
	}
	return score + 2
}

// ApplyFlaw lowers a score by a flat 2
func ApplyFlaw(score int) int {
	return score - 2
}
