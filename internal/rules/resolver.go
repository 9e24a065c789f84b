// Package rules resolves the declarative rule entries on selected feats and
// equipment into concrete numeric effects: buffs keyed by stable ids and
// minimum proficiency ranks. Resolution is idempotent; re-running it on an
// unchanged character reproduces the same effect set.
package rules

import (
	"strings"

	"github.com/hearthforge/pf2-builder/internal/domain/character"
	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
	"github.com/hearthforge/pf2-builder/internal/domain/shared"
)

// Resolver evaluates rule entries against a character
type Resolver struct {
	client rulebook.Client
}

// NewResolver creates a resolver over the given content client
func NewResolver(client rulebook.Client) *Resolver {
	return &Resolver{client: client}
}

// Context builds the predicate context for a character. Predicates test
// against feats currently in effect, so level gating applies there too.
func (r *Resolver) Context(c *character.Character) rulebook.PredicateContext {
	return rulebook.PredicateContext{
		ClassID: c.ClassID,
		HasFeat: c.HasActiveFeat,
	}
}

// FeatBuffs resolves every flat-modifier rule on the character's active
// feats into buffs. Feats recorded above the current level contribute
// nothing; unknown feat ids are skipped.
func (r *Resolver) FeatBuffs(c *character.Character) []*character.Buff {
	ctx := r.Context(c)

	var buffs []*character.Buff
	for _, sel := range c.ActiveFeats() {
		feat, err := r.client.GetFeat(sel.FeatID)
		if err != nil {
			continue
		}
		origin := character.FeatOrigin(feat.ID)
		buffs = append(buffs, r.flatModifierBuffs(c, ctx, origin, feat.Rules)...)
	}
	return buffs
}

// ItemBuffs resolves flat-modifier rules on items currently worn or
// invested
func (r *Resolver) ItemBuffs(c *character.Character) []*character.Buff {
	ctx := r.Context(c)

	var buffs []*character.Buff
	for _, owned := range c.Equipment {
		if !owned.Worn && !owned.Invested {
			continue
		}
		item, err := r.client.GetItem(owned.ItemID)
		if err != nil {
			continue
		}
		origin := character.EquipmentOrigin(item.ID)
		buffs = append(buffs, r.flatModifierBuffs(c, ctx, origin, item.Rules)...)
	}
	return buffs
}

func (r *Resolver) flatModifierBuffs(c *character.Character, ctx rulebook.PredicateContext, origin string, entries []rulebook.RuleEntry) []*character.Buff {
	var buffs []*character.Buff
	for _, entry := range entries {
		rule, ok := rulebook.Classify(entry).(rulebook.FlatModifierRule)
		if !ok {
			continue
		}
		if !rule.Predicate.Matches(ctx) {
			continue
		}

		value := rule.Value
		if classValue, ok := rule.ClassValues[c.ClassID]; ok {
			value = classValue
		}
		amount := value.Eval(c.Level)
		if amount == 0 {
			continue
		}

		if rule.Target == rulebook.SelectorUntrainedSkills {
			for _, skill := range shared.Skills {
				if c.Skills[skill] > shared.RankUntrained {
					continue
				}
				buffs = append(buffs, character.NewBuff(origin, "skill:"+string(skill), rule.BonusType, amount))
			}
			continue
		}

		buffs = append(buffs, character.NewBuff(origin, rule.Target, rule.BonusType, amount))
	}
	return buffs
}

// SaveUpgrades folds proficiency-upgrade rules from active feats into
// per-target minimum ranks. Targets are save ids and "perception". Rules
// whose target the player chose earlier resolve it from the stored choice.
func (r *Resolver) SaveUpgrades(c *character.Character) map[string]shared.Rank {
	ctx := r.Context(c)
	mins := make(map[string]shared.Rank)

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
			if !isSaveTarget(target) {
				continue
			}

			rank := shared.NormalizeSourceRank(rule.Rank.Eval(c.Level))
			if rank > mins[target] {
				mins[target] = rank
			}
		}
	}
	return mins
}

// SkillUpgrades folds proficiency-upgrade rules targeting skills
// ("skill:<id>") into per-skill minimum ranks
func (r *Resolver) SkillUpgrades(c *character.Character) map[shared.Skill]shared.Rank {
	ctx := r.Context(c)
	mins := make(map[shared.Skill]shared.Rank)

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
			id, ok := strings.CutPrefix(target, "skill:")
			if !ok || !shared.IsSkill(id) {
				continue
			}

			rank := shared.NormalizeSourceRank(rule.Rank.Eval(c.Level))
			if rank > mins[shared.Skill(id)] {
				mins[shared.Skill(id)] = rank
			}
		}
	}
	return mins
}

func isSaveTarget(target string) bool {
	switch target {
	case string(shared.SaveFortitude), string(shared.SaveReflex), string(shared.SaveWill), rulebook.SelectorPerception:
		return true
	}
	return false
}
