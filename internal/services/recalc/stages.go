package recalc

import (
	"sort"
	"strings"

	"github.com/hearthforge/pf2-builder/internal/domain/character"
	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
	"github.com/hearthforge/pf2-builder/internal/domain/rulebook/pf2e"
	"github.com/hearthforge/pf2-builder/internal/domain/shared"
)

// Stage 1: ability scores. All six start at 10; ancestry flaws, ancestry
// fixed boosts, then player-chosen boosts in source order, with per-level
// boosts gated by the level they were taken at.
func (e *Engine) abilityScores(c *character.Character) {
	scores := make(map[shared.Ability]int, len(shared.Abilities))
	for _, a := range shared.Abilities {
		scores[a] = shared.BaseAbilityScore
	}

	if ancestry, err := e.client.GetAncestry(c.AncestryID); err == nil {
		for _, a := range ancestry.Flaws {
			scores[a] = shared.ApplyFlaw(scores[a])
		}
		for _, a := range ancestry.Boosts {
			scores[a] = shared.ApplyBoost(scores[a])
		}
	}

	for _, a := range c.Boosts.AncestryFree {
		scores[a] = shared.ApplyBoost(scores[a])
	}
	if c.Boosts.Background != shared.AbilityNone {
		scores[c.Boosts.Background] = shared.ApplyBoost(scores[c.Boosts.Background])
	}
	if c.Boosts.Class != shared.AbilityNone {
		scores[c.Boosts.Class] = shared.ApplyBoost(scores[c.Boosts.Class])
	}
	for _, a := range c.Boosts.LevelOneFree {
		scores[a] = shared.ApplyBoost(scores[a])
	}

	levels := make([]int, 0, len(c.Boosts.ByLevel))
	for lvl := range c.Boosts.ByLevel {
		if lvl <= c.Level {
			levels = append(levels, lvl)
		}
	}
	sort.Ints(levels)
	for _, lvl := range levels {
		for _, a := range c.Boosts.ByLevel[lvl] {
			scores[a] = shared.ApplyBoost(scores[a])
		}
	}

	c.AbilityScores = scores
}

// Stage 2: skills. Reset to untrained, then layer trainings from class,
// background, the overlap substitute, manual picks, Intelligence-bonus
// picks, specialization grants, feat upgrades, feat-granted trainings, and
// finally the player's skill-increase picks under the level-gated cap.
func (e *Engine) skills(c *character.Character) {
	skills := make(map[shared.Skill]shared.Rank, len(shared.Skills))
	for _, s := range shared.Skills {
		skills[s] = shared.RankUntrained
	}

	train := func(s shared.Skill) {
		if _, ok := skills[s]; !ok {
			return
		}
		skills[s] = shared.MaxRank(skills[s], shared.RankTrained)
	}

	var class *rulebook.Class
	if cl, err := e.client.GetClass(c.ClassID); err == nil {
		class = cl
		for _, s := range cl.TrainedSkills {
			train(s)
		}
	}
	if bg, err := e.client.GetBackground(c.BackgroundID); err == nil {
		for _, s := range bg.TrainedSkills {
			train(s)
		}
	}
	if c.OverlapSkill != "" {
		train(c.OverlapSkill)
	}

	// level-1 manual picks only ever train, never downgrade; entries
	// outside the catalogue are treated as absent
	for _, s := range c.ManualSkillTraining {
		train(s)
	}

	// Intelligence-bonus picks, capped by the current modifier; unknown
	// entries do not use up a pick
	intMod := shared.Modifier(c.AbilityScores[shared.AbilityIntelligence])
	used := 0
	for _, s := range c.IntBonusSkills {
		if used >= intMod {
			break
		}
		if _, ok := skills[s]; !ok {
			continue
		}
		used++
		train(s)
	}

	if class != nil {
		for _, spec := range c.Specializations {
			for _, s := range class.SpecializationSkills[spec] {
				train(s)
			}
		}
	}

	c.Skills = skills

	// feat-driven rank upgrades
	for skill, rank := range e.resolver.SkillUpgrades(c) {
		c.Skills[skill] = shared.MaxRank(c.Skills[skill], rank)
	}

	// trainings granted outright by active feats (dedications included)
	for _, sel := range c.ActiveFeats() {
		feat, err := e.client.GetFeat(sel.FeatID)
		if err != nil {
			continue
		}
		for _, s := range feat.TrainedSkills {
			c.Skills[s] = shared.MaxRank(c.Skills[s], shared.RankTrained)
		}
	}

	// skill-increase picks: one rank per pick, capped by the pick's level,
	// never lowering a rank a feat already pushed higher
	for _, lvl := range shared.SkillIncreaseLevels {
		if lvl > c.Level {
			break
		}
		skill, ok := c.SkillIncreases[lvl]
		if !ok || !shared.IsSkill(string(skill)) {
			continue
		}
		next := c.Skills[skill] + 2
		if next > shared.SkillRankCap(lvl) {
			continue
		}
		c.Skills[skill] = next
	}
}

// Stage 3: saves and perception. Table base ranks at the current level,
// then resolver upgrades folded in by maximum. Dynamic-target rules were
// already resolved from the stored choice by the resolver.
func (e *Engine) savesAndPerception(c *character.Character) {
	saves := make(map[shared.Save]shared.Rank, len(shared.Saves))
	for _, save := range shared.Saves {
		saves[save] = pf2e.ProficiencyAt(c.ClassID, pf2e.SaveTrack(save), c.Level)
	}
	perception := pf2e.ProficiencyAt(c.ClassID, pf2e.TrackPerception, c.Level)

	for target, rank := range e.resolver.SaveUpgrades(c) {
		if target == rulebook.SelectorPerception {
			perception = shared.MaxRank(perception, rank)
			continue
		}
		save := shared.Save(target)
		saves[save] = shared.MaxRank(saves[save], rank)
	}

	c.Saves = saves
	c.Perception = perception
}

// Stage 4: armor and weapon proficiencies. Table values fold in by maximum
// against anything already present, then feat upgrades; the effective AC
// rank follows whichever category matches equipped armor.
func (e *Engine) combatProficiencies(c *character.Character) {
	if c.ArmorProficiencies == nil {
		c.ArmorProficiencies = make(map[shared.ArmorCategory]shared.Rank, len(shared.ArmorCategories))
	}
	if c.WeaponProficiencies == nil {
		c.WeaponProficiencies = make(map[shared.WeaponCategory]shared.Rank, len(shared.WeaponCategories))
	}

	for _, cat := range shared.ArmorCategories {
		table := pf2e.ProficiencyAt(c.ClassID, pf2e.ArmorTrack(cat), c.Level)
		c.ArmorProficiencies[cat] = shared.MaxRank(c.ArmorProficiencies[cat], table)
	}
	for _, cat := range shared.WeaponCategories {
		table := pf2e.ProficiencyAt(c.ClassID, pf2e.WeaponTrack(cat), c.Level)
		c.WeaponProficiencies[cat] = shared.MaxRank(c.WeaponProficiencies[cat], table)
	}

	armorUp, weaponUp := e.resolver.CombatUpgrades(c)
	for cat, rank := range armorUp {
		c.ArmorProficiencies[cat] = shared.MaxRank(c.ArmorProficiencies[cat], rank)
	}
	for cat, rank := range weaponUp {
		c.WeaponProficiencies[cat] = shared.MaxRank(c.WeaponProficiencies[cat], rank)
	}

	c.ArmorClassRank = c.ArmorProficiencies[e.equippedArmorCategory(c)]
}

func (e *Engine) equippedArmorCategory(c *character.Character) shared.ArmorCategory {
	for _, owned := range c.Equipment {
		if !owned.Worn {
			continue
		}
		item, err := e.client.GetItem(owned.ItemID)
		if err != nil {
			continue
		}
		if item.ArmorCategory != "" {
			return item.ArmorCategory
		}
	}
	return shared.ArmorUnarmored
}

// Stage 5: hit points. ancestry flat HP + (class HP per level + CON
// modifier) per level, plus flat HP feat effects.
func (e *Engine) hitPoints(c *character.Character) {
	ancestryHP := 0
	if ancestry, err := e.client.GetAncestry(c.AncestryID); err == nil {
		ancestryHP = ancestry.HP
	}

	conMod := c.AbilityModifier(shared.AbilityConstitution)
	max := ancestryHP + (pf2e.HitPointsPerLevel(c.ClassID)+conMod)*c.Level

	for _, b := range e.resolver.FeatBuffs(c) {
		if b.Target == rulebook.SelectorHP {
			max += b.Value
		}
	}

	c.HitPoints.Max = max
	if c.HitPoints.Current <= 0 || c.HitPoints.Current > max {
		c.HitPoints.Current = max
	}
}

// Stage 6: land speed. Ancestry base plus the single highest applicable
// feat speed bonus; bonuses do not stack. Other movement types pass
// through untouched.
func (e *Engine) speed(c *character.Character) {
	ancestry, err := e.client.GetAncestry(c.AncestryID)
	if err != nil {
		return
	}

	bonus := 0
	for _, b := range e.resolver.FeatBuffs(c) {
		if b.Target == rulebook.SelectorSpeed && b.Value > bonus {
			bonus = b.Value
		}
	}
	c.Speed.Land = ancestry.Speed + bonus
}

// Stage 7: senses come from the ancestry. Feat-based sense additions are a
// future extension.
func (e *Engine) senses(c *character.Character) {
	ancestry, err := e.client.GetAncestry(c.AncestryID)
	if err != nil {
		return
	}
	if len(ancestry.Senses) == 0 {
		c.Senses = []string{"normal-vision"}
		return
	}
	c.Senses = append([]string(nil), ancestry.Senses...)
}

// Stage 8: languages. Ancestry plus background languages deduplicated,
// plus bonus languages drawn from the configured pool, one per point of
// positive Intelligence modifier.
func (e *Engine) languages(c *character.Character) {
	seen := make(map[string]bool)
	var langs []string
	add := func(l string) {
		if l != "" && !seen[l] {
			seen[l] = true
			langs = append(langs, l)
		}
	}

	ancestryKnown := false
	if ancestry, err := e.client.GetAncestry(c.AncestryID); err == nil {
		ancestryKnown = true
		for _, l := range ancestry.Languages {
			add(l)
		}
	}
	if bg, err := e.client.GetBackground(c.BackgroundID); err == nil {
		for _, l := range bg.Languages {
			add(l)
		}
	}
	if !ancestryKnown && len(langs) == 0 {
		return
	}

	bonus := shared.Modifier(c.AbilityScores[shared.AbilityIntelligence])
	for _, l := range e.bonusLanguages {
		if bonus <= 0 {
			break
		}
		if !seen[l] {
			add(l)
			bonus--
		}
	}

	c.Languages = langs
}

// Stage 9: feat buffs. The feat: origin prefix is owned here: every pass
// deletes and regenerates it, so buffs from removed or out-of-level feats
// cannot linger.
func (e *Engine) featBuffs(c *character.Character) {
	c.RemoveBuffsByOriginPrefix(character.OriginPrefixFeat)
	for _, b := range e.resolver.FeatBuffs(c) {
		c.SetBuff(b)
	}
}

// Stage 10: equipment bonuses. Regenerates the equipment: origin prefix
// from items currently worn or invested: rule-driven buffs, direct armor
// AC bonuses, and apex ability boosts (investment required).
func (e *Engine) equipmentBonuses(c *character.Character) {
	c.RemoveBuffsByOriginPrefix(character.OriginPrefixEquipment)

	for _, b := range e.resolver.ItemBuffs(c) {
		c.SetBuff(b)
	}

	for _, owned := range c.Equipment {
		item, err := e.client.GetItem(owned.ItemID)
		if err != nil {
			continue
		}
		if owned.Worn && item.ACBonus > 0 {
			c.SetBuff(character.NewBuff(character.EquipmentOrigin(item.ID), rulebook.SelectorAC, "item", item.ACBonus))
		}
		if owned.Invested && item.ApexAbility != shared.AbilityNone {
			c.AbilityScores[item.ApexAbility] = shared.ApplyBoost(c.AbilityScores[item.ApexAbility])
		}
	}
}

// Stage 11: spell-granting items. Computes the granted set from invested
// items with a selected choice and remaining uses, then reconciles the
// known-spell list: item-sourced spells inside the global grantable set
// disappear when no longer granted; spells from any other source are never
// touched.
func (e *Engine) spellItems(c *character.Character) {
	today := e.clock.Now().Format("2006-01-02")
	granted := make(map[string]string)
	for _, owned := range c.Equipment {
		if !owned.Invested || owned.SpellGrant == nil || owned.SpellGrant.SelectedChoice == "" {
			continue
		}
		if effectiveUses(owned.SpellGrant, today) <= 0 {
			continue
		}
		item, err := e.client.GetItem(owned.ItemID)
		if err != nil {
			continue
		}
		choice := item.ChoiceByID(owned.SpellGrant.SelectedChoice)
		if choice == nil {
			continue
		}
		granted[choice.SpellID] = item.ID
	}

	grantable := make(map[string]bool)
	for _, id := range e.client.SpellGrantingSpellIDs() {
		grantable[id] = true
	}

	kept := c.Spellcasting.Known[:0]
	for _, k := range c.Spellcasting.Known {
		_, stillGranted := granted[k.SpellID]
		if grantable[k.SpellID] && !stillGranted && strings.HasPrefix(k.Source, "item:") {
			continue
		}
		kept = append(kept, k)
	}
	c.Spellcasting.Known = kept

	spellIDs := make([]string, 0, len(granted))
	for spellID := range granted {
		spellIDs = append(spellIDs, spellID)
	}
	sort.Strings(spellIDs)
	for _, spellID := range spellIDs {
		c.Spellcasting.AddKnownSpell(spellID, "item:"+granted[spellID])
	}
}

// effectiveUses is the use-count the grant decision runs against. A stale
// reset date means the daily refill is still pending later in this same
// pass, so the item already counts as refilled.
func effectiveUses(grant *character.SpellGrantState, today string) int {
	if grant.LastReset != today {
		return grant.DailyUses.Max
	}
	return grant.DailyUses.Current
}

// Stage 12: innate spells. The full set is recomputed from the background
// and active feats; existing entries keep their current use-counts while
// taking the newly computed maximum.
func (e *Engine) innateSpells(c *character.Character) {
	type grant struct {
		spellID string
		source  string
		maxUses int
	}
	var grants []grant

	if bg, err := e.client.GetBackground(c.BackgroundID); err == nil {
		for _, g := range bg.InnateSpells {
			grants = append(grants, grant{g.SpellID, "background:" + bg.ID, g.MaxUses})
		}
	}
	for _, sel := range c.ActiveFeats() {
		feat, err := e.client.GetFeat(sel.FeatID)
		if err != nil {
			continue
		}
		for _, g := range feat.InnateSpells {
			grants = append(grants, grant{g.SpellID, "feat:" + feat.ID, g.MaxUses})
		}
	}

	existing := make(map[string]character.InnateSpell, len(c.Spellcasting.Innate))
	for _, inn := range c.Spellcasting.Innate {
		existing[inn.SpellID] = inn
	}

	out := make([]character.InnateSpell, 0, len(grants))
	seen := make(map[string]bool)
	for _, g := range grants {
		if seen[g.spellID] {
			continue
		}
		seen[g.spellID] = true

		inn := character.InnateSpell{
			SpellID: g.spellID,
			Source:  g.source,
			Uses:    character.Uses{Current: g.maxUses, Max: g.maxUses},
		}
		if prev, ok := existing[g.spellID]; ok {
			inn.Uses.Current = prev.Uses.Current
			if inn.Uses.Current > inn.Uses.Max {
				inn.Uses.Current = inn.Uses.Max
			}
		}
		out = append(out, inn)
	}
	c.Spellcasting.Innate = out
}

// Stage 13: daily-use reset. Equipped spell-granting items whose last
// reset date is not today refill to max and stamp the new date.
func (e *Engine) dailyReset(c *character.Character) {
	today := e.clock.Now().Format("2006-01-02")
	for _, owned := range c.Equipment {
		if owned.SpellGrant == nil {
			continue
		}
		if !owned.Worn && !owned.Invested {
			continue
		}
		if owned.SpellGrant.LastReset == today {
			continue
		}
		owned.SpellGrant.DailyUses.Current = owned.SpellGrant.DailyUses.Max
		owned.SpellGrant.LastReset = today
	}
}
