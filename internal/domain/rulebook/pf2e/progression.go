// Package pf2e carries the built-in rules content: class proficiency
// progressions, the starter content tables, and the static lookup client
// over them. The tables are data, not logic; the engine treats them as
// opaque input.
package pf2e

import (
	"strings"

	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
	"github.com/hearthforge/pf2-builder/internal/domain/shared"
)

// Track identifies one proficiency progression track
type Track string

const (
	TrackArmorUnarmored Track = "armor:unarmored"
	TrackArmorLight     Track = "armor:light"
	TrackArmorMedium    Track = "armor:medium"
	TrackArmorHeavy     Track = "armor:heavy"

	TrackWeaponUnarmed  Track = "weapon:unarmed"
	TrackWeaponSimple   Track = "weapon:simple"
	TrackWeaponMartial  Track = "weapon:martial"
	TrackWeaponAdvanced Track = "weapon:advanced"

	TrackSaveFortitude Track = "save:fortitude"
	TrackSaveReflex    Track = "save:reflex"
	TrackSaveWill      Track = "save:will"

	TrackPerception Track = "perception"
)

// ArmorTrack maps an armor category to its track
func ArmorTrack(c shared.ArmorCategory) Track {
	return Track("armor:" + string(c))
}

// WeaponTrack maps a weapon category to its track
func WeaponTrack(c shared.WeaponCategory) Track {
	return Track("weapon:" + string(c))
}

// SaveTrack maps a save to its track
func SaveTrack(s shared.Save) Track {
	return Track("save:" + string(s))
}

// Step is one milestone in a track: at Level the rank becomes Rank
type Step struct {
	Level int
	Rank  shared.Rank
}

// Progression is one class's full proficiency progression
type Progression struct {
	HPPerLevel int
	Tracks     map[Track][]Step
	FeatLevels map[rulebook.FeatType][]int
}

// defaultFeatLevels is the standard feat-grant schedule shared by most
// classes
var defaultFeatLevels = map[rulebook.FeatType][]int{
	rulebook.FeatTypeClass:    {2, 4, 6, 8, 10, 12, 14, 16, 18, 20},
	rulebook.FeatTypeSkill:    {2, 4, 6, 8, 10, 12, 14, 16, 18, 20},
	rulebook.FeatTypeGeneral:  {3, 7, 11, 15, 19},
	rulebook.FeatTypeAncestry: {1, 5, 9, 13, 17},
}

// defaultProgression is the conservative fallback for unknown class ids:
// trained in unarmored/light armor and simple/unarmed weapons, untrained
// everywhere else, no save or perception data.
var defaultProgression = Progression{
	HPPerLevel: 6,
	Tracks: map[Track][]Step{
		TrackArmorUnarmored: {{1, shared.RankTrained}},
		TrackArmorLight:     {{1, shared.RankTrained}},
		TrackWeaponUnarmed:  {{1, shared.RankTrained}},
		TrackWeaponSimple:   {{1, shared.RankTrained}},
	},
	FeatLevels: defaultFeatLevels,
}

// progressions holds the per-class tables, keyed by class id
var progressions = map[string]Progression{
	"fighter": {
		HPPerLevel: 10,
		Tracks: map[Track][]Step{
			TrackArmorUnarmored: {{1, shared.RankTrained}, {11, shared.RankExpert}, {17, shared.RankMaster}},
			TrackArmorLight:     {{1, shared.RankTrained}, {11, shared.RankExpert}, {17, shared.RankMaster}},
			TrackArmorMedium:    {{1, shared.RankTrained}, {11, shared.RankExpert}, {17, shared.RankMaster}},
			TrackArmorHeavy:     {{1, shared.RankTrained}, {11, shared.RankExpert}, {17, shared.RankMaster}},
			TrackWeaponUnarmed:  {{1, shared.RankExpert}, {5, shared.RankMaster}, {13, shared.RankLegendary}},
			TrackWeaponSimple:   {{1, shared.RankExpert}, {5, shared.RankMaster}, {13, shared.RankLegendary}},
			TrackWeaponMartial:  {{1, shared.RankExpert}, {5, shared.RankMaster}, {13, shared.RankLegendary}},
			TrackWeaponAdvanced: {{1, shared.RankTrained}, {5, shared.RankExpert}, {13, shared.RankMaster}},
			TrackSaveFortitude:  {{1, shared.RankExpert}, {9, shared.RankMaster}},
			TrackSaveReflex:     {{1, shared.RankExpert}, {15, shared.RankMaster}},
			TrackSaveWill:       {{1, shared.RankTrained}, {3, shared.RankExpert}, {15, shared.RankMaster}},
			TrackPerception:     {{1, shared.RankExpert}, {7, shared.RankMaster}},
		},
		FeatLevels: map[rulebook.FeatType][]int{
			rulebook.FeatTypeClass:    {1, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20},
			rulebook.FeatTypeSkill:    {2, 4, 6, 8, 10, 12, 14, 16, 18, 20},
			rulebook.FeatTypeGeneral:  {3, 7, 11, 15, 19},
			rulebook.FeatTypeAncestry: {1, 5, 9, 13, 17},
		},
	},
	"wizard": {
		HPPerLevel: 6,
		Tracks: map[Track][]Step{
			TrackArmorUnarmored: {{1, shared.RankTrained}, {13, shared.RankExpert}},
			TrackWeaponUnarmed:  {{1, shared.RankTrained}, {11, shared.RankExpert}},
			TrackWeaponSimple:   {{1, shared.RankTrained}, {11, shared.RankExpert}},
			TrackSaveFortitude:  {{1, shared.RankTrained}, {9, shared.RankExpert}},
			TrackSaveReflex:     {{1, shared.RankTrained}, {5, shared.RankExpert}},
			TrackSaveWill:       {{1, shared.RankExpert}, {11, shared.RankMaster}},
			TrackPerception:     {{1, shared.RankTrained}, {11, shared.RankExpert}},
		},
		FeatLevels: defaultFeatLevels,
	},
	"rogue": {
		HPPerLevel: 8,
		Tracks: map[Track][]Step{
			TrackArmorUnarmored: {{1, shared.RankTrained}, {13, shared.RankExpert}},
			TrackArmorLight:     {{1, shared.RankTrained}, {13, shared.RankExpert}},
			TrackWeaponUnarmed:  {{1, shared.RankTrained}, {5, shared.RankExpert}},
			TrackWeaponSimple:   {{1, shared.RankTrained}, {5, shared.RankExpert}},
			TrackSaveFortitude:  {{1, shared.RankTrained}, {7, shared.RankExpert}},
			TrackSaveReflex:     {{1, shared.RankExpert}, {7, shared.RankMaster}, {13, shared.RankLegendary}},
			TrackSaveWill:       {{1, shared.RankExpert}, {17, shared.RankMaster}},
			TrackPerception:     {{1, shared.RankExpert}, {7, shared.RankMaster}, {13, shared.RankLegendary}},
		},
		FeatLevels: map[rulebook.FeatType][]int{
			rulebook.FeatTypeClass:    {1, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20},
			rulebook.FeatTypeSkill:    {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
			rulebook.FeatTypeGeneral:  {3, 7, 11, 15, 19},
			rulebook.FeatTypeAncestry: {1, 5, 9, 13, 17},
		},
	},
	"kineticist": {
		HPPerLevel: 8,
		Tracks: map[Track][]Step{
			TrackArmorUnarmored: {{1, shared.RankTrained}, {13, shared.RankExpert}},
			TrackArmorLight:     {{1, shared.RankTrained}, {13, shared.RankExpert}},
			TrackWeaponUnarmed:  {{1, shared.RankTrained}, {11, shared.RankExpert}},
			TrackWeaponSimple:   {{1, shared.RankTrained}, {11, shared.RankExpert}},
			TrackSaveFortitude:  {{1, shared.RankExpert}, {9, shared.RankMaster}, {17, shared.RankLegendary}},
			TrackSaveReflex:     {{1, shared.RankExpert}, {15, shared.RankMaster}},
			TrackSaveWill:       {{1, shared.RankTrained}, {9, shared.RankExpert}},
			TrackPerception:     {{1, shared.RankTrained}, {5, shared.RankExpert}},
		},
		FeatLevels: defaultFeatLevels,
	},
}

// classAliases maps legacy ids and display names to canonical class ids
var classAliases = map[string]string{
	"Fighter":             "fighter",
	"Wizard":              "wizard",
	"Rogue":               "rogue",
	"Kineticist":          "kineticist",
	"kineticist-playtest": "kineticist",
}

// clampLevel clamps a level into the 1..20 range; out-of-range input is
// data damage, not a reason to fail a lookup
func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 20 {
		return 20
	}
	return level
}

// lookupProgression resolves a class id through the fallback chain:
// exact id, alias, lowercase id, then the conservative default.
func lookupProgression(classID string) Progression {
	if p, ok := progressions[classID]; ok {
		return p
	}
	if canonical, ok := classAliases[classID]; ok {
		if p, ok := progressions[canonical]; ok {
			return p
		}
	}
	if p, ok := progressions[strings.ToLower(classID)]; ok {
		return p
	}
	return defaultProgression
}

// ProficiencyAt returns the class's rank on a track at a level. Unknown
// classes and tracks degrade to untrained; levels clamp to 1..20.
func ProficiencyAt(classID string, track Track, level int) shared.Rank {
	level = clampLevel(level)
	steps := lookupProgression(classID).Tracks[track]

	rank := shared.RankUntrained
	for _, step := range steps {
		if step.Level > level {
			break
		}
		rank = step.Rank
	}
	return rank
}

// HitPointsPerLevel returns the class's HP gained per level
func HitPointsPerLevel(classID string) int {
	return lookupProgression(classID).HPPerLevel
}

// FeatGrantLevels returns the sorted levels at which the class grants a
// feat slot of the given type
func FeatGrantLevels(classID string, featType rulebook.FeatType) []int {
	p := lookupProgression(classID)
	levels := p.FeatLevels[featType]
	out := make([]int, len(levels))
	copy(out, levels)
	return out
}
