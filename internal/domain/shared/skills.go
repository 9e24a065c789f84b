package shared

// Skill identifies a skill by its lowercase id
type Skill string

const (
	SkillAcrobatics   Skill = "acrobatics"
	SkillArcana       Skill = "arcana"
	SkillAthletics    Skill = "athletics"
	SkillCrafting     Skill = "crafting"
	SkillDeception    Skill = "deception"
	SkillDiplomacy    Skill = "diplomacy"
	SkillIntimidation Skill = "intimidation"
	SkillMedicine     Skill = "medicine"
	SkillNature       Skill = "nature"
	SkillOccultism    Skill = "occultism"
	SkillPerformance  Skill = "performance"
	SkillReligion     Skill = "religion"
	SkillSociety      Skill = "society"
	SkillStealth      Skill = "stealth"
	SkillSurvival     Skill = "survival"
	SkillThievery     Skill = "thievery"
)

// Skills lists the core skill catalogue in alphabetical order
var Skills = []Skill{
	SkillAcrobatics,
	SkillArcana,
	SkillAthletics,
	SkillCrafting,
	SkillDeception,
	SkillDiplomacy,
	SkillIntimidation,
	SkillMedicine,
	SkillNature,
	SkillOccultism,
	SkillPerformance,
	SkillReligion,
	SkillSociety,
	SkillStealth,
	SkillSurvival,
	SkillThievery,
}

// SkillAbilities maps each skill to its governing ability
var SkillAbilities = map[Skill]Ability{
	SkillAcrobatics:   AbilityDexterity,
	SkillArcana:       AbilityIntelligence,
	SkillAthletics:    AbilityStrength,
	SkillCrafting:     AbilityIntelligence,
	SkillDeception:    AbilityCharisma,
	SkillDiplomacy:    AbilityCharisma,
	SkillIntimidation: AbilityCharisma,
	SkillMedicine:     AbilityWisdom,
	SkillNature:       AbilityWisdom,
	SkillOccultism:    AbilityIntelligence,
	SkillPerformance:  AbilityCharisma,
	SkillReligion:     AbilityWisdom,
	SkillSociety:      AbilityIntelligence,
	SkillStealth:      AbilityDexterity,
	SkillSurvival:     AbilityWisdom,
	SkillThievery:     AbilityDexterity,
}

// IsSkill reports whether the id names a core skill
func IsSkill(id string) bool {
	_, ok := SkillAbilities[Skill(id)]
	return ok
}

// SkillIncreaseLevels are the levels at which a class grants a free skill
// increase pick
var SkillIncreaseLevels = []int{3, 5, 7, 9, 11, 13, 15, 17, 19}

// SkillRankCap returns the highest rank a skill-increase pick may reach at a
// given level: expert before 7, master before 15, legendary from 15 on
func SkillRankCap(level int) Rank {
	switch {
	case level >= 15:
		return RankLegendary
	case level >= 7:
		return RankMaster
	default:
		return RankExpert
	}
}
