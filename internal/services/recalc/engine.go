// Package recalc implements the character recalculation engine: a fixed,
// ordered pipeline of pure stages that rederives every dependent statistic
// from the stored choice record on every mutation. The engine holds no
// state between runs; each run clones the input and returns the recomputed
// copy. No stage can fail; missing or malformed data degrades to defaults
// for the fields that stage computes.
package recalc

import (
	"github.com/hearthforge/pf2-builder/internal/domain/character"
	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
	"github.com/hearthforge/pf2-builder/internal/domain/rulebook/pf2e"
	"github.com/hearthforge/pf2-builder/internal/pkg/clock"
	"github.com/hearthforge/pf2-builder/internal/rules"
)

// Stage is one named step of the pipeline. Later stages read fields only
// earlier stages produce, so the slice order is the contract.
type Stage struct {
	Name  string
	Apply func(*character.Character)
}

// Config holds engine configuration
type Config struct {
	// Client is required
	Client rulebook.Client

	// Resolver is optional; a default over Client is created if nil
	Resolver *rules.Resolver

	// Clock is optional; real time is used if nil
	Clock clock.Clock

	// BonusLanguages overrides the pool bonus languages are drawn from.
	// The fixed default pool is placeholder policy, not ruleset behavior.
	BonusLanguages []string
}

// Engine runs the recalculation pipeline
type Engine struct {
	client         rulebook.Client
	resolver       *rules.Resolver
	clock          clock.Clock
	bonusLanguages []string
	stages         []Stage
}

// NewEngine creates an engine from config
func NewEngine(cfg *Config) *Engine {
	if cfg.Client == nil {
		panic("rulebook client is required")
	}

	e := &Engine{
		client:         cfg.Client,
		resolver:       cfg.Resolver,
		clock:          cfg.Clock,
		bonusLanguages: cfg.BonusLanguages,
	}
	if e.resolver == nil {
		e.resolver = rules.NewResolver(cfg.Client)
	}
	if e.clock == nil {
		e.clock = clock.New()
	}
	if e.bonusLanguages == nil {
		e.bonusLanguages = pf2e.DefaultBonusLanguages
	}

	e.stages = []Stage{
		{Name: "ability-scores", Apply: e.abilityScores},
		{Name: "skills", Apply: e.skills},
		{Name: "saves-and-perception", Apply: e.savesAndPerception},
		{Name: "combat-proficiencies", Apply: e.combatProficiencies},
		{Name: "hit-points", Apply: e.hitPoints},
		{Name: "speed", Apply: e.speed},
		{Name: "senses", Apply: e.senses},
		{Name: "languages", Apply: e.languages},
		{Name: "feat-buffs", Apply: e.featBuffs},
		{Name: "equipment-bonuses", Apply: e.equipmentBonuses},
		{Name: "spell-items", Apply: e.spellItems},
		{Name: "innate-spells", Apply: e.innateSpells},
		{Name: "daily-reset", Apply: e.dailyReset},
	}
	return e
}

// StageNames returns the pipeline order
func (e *Engine) StageNames() []string {
	names := make([]string, len(e.stages))
	for i, s := range e.stages {
		names[i] = s.Name
	}
	return names
}

// Recalculate rederives every dependent statistic. The input is never
// mutated; the returned character is a fully recomputed copy safe to
// persist or render.
func (e *Engine) Recalculate(c *character.Character) *character.Character {
	out := c.Clone()
	for _, stage := range e.stages {
		stage.Apply(out)
	}
	return out
}
