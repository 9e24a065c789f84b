package rules

import (
	"strings"

	"github.com/hearthforge/pf2-builder/internal/domain/character"
	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
	"github.com/hearthforge/pf2-builder/internal/domain/shared"
)

// CombatUpgrades folds proficiency-upgrade rules targeting armor
// ("armor:<category>") and weapon ("weapon:<category>") categories from
// active feats into per-category minimum ranks
func (r *Resolver) CombatUpgrades(c *character.Character) (map[shared.ArmorCategory]shared.Rank, map[shared.WeaponCategory]shared.Rank) {
	ctx := r.Context(c)
	armor := make(map[shared.ArmorCategory]shared.Rank)
	weapons := make(map[shared.WeaponCategory]shared.Rank)

	for _, sel := range c.ActiveFeats() {
		feat, err := r.client.GetFeat(sel.FeatID)
		if err != nil {
			continue
		}
		for _, entry := range feat.Rules {
			rule, ok := rulebook.Classify(entry).(rulebook.ProficiencyUpgradeRule)
			if !ok {
				continue
			}
			if !rule.Predicate.Matches(ctx) {
				continue
			}

			target := rule.Target
			if rule.Path != "" {
				target = sel.Choices[rule.Path]
			}
			rank := shared.NormalizeSourceRank(rule.Rank.Eval(c.Level))

			if id, ok := strings.CutPrefix(target, "armor:"); ok {
				cat := shared.ArmorCategory(id)
				if rank > armor[cat] {
					armor[cat] = rank
				}
				continue
			}
			if id, ok := strings.CutPrefix(target, "weapon:"); ok {
				cat := shared.WeaponCategory(id)
				if rank > weapons[cat] {
					weapons[cat] = rank
				}
			}
		}
	}
	return armor, weapons
}
