// Package character is the builder-facing mutation service. Every mutation
// applies a change to a copy of the stored record, replays dedication
// state, and re-runs the full recalculation engine; callers always get
// back a fully recomputed snapshot.
package character

import (
	"context"

	char "github.com/hearthforge/pf2-builder/internal/domain/character"
	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
	"github.com/hearthforge/pf2-builder/internal/domain/shared"
	apperrs "github.com/hearthforge/pf2-builder/internal/errors"
	"github.com/hearthforge/pf2-builder/internal/services/archetype"
	"github.com/hearthforge/pf2-builder/internal/services/recalc"
	"github.com/hearthforge/pf2-builder/internal/uuid"
)

// Service defines the character builder service interface
type Service interface {
	// CreateCharacter creates a new level-1 character with defaults
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// SetLevel changes the character's level. Choices recorded above the
	// new level are kept; only their effects are gated off.
	SetLevel(ctx context.Context, input *SetLevelInput) (*MutationOutput, error)

	// AddFeat takes a feat, subject to the dedication constraint. A
	// disallowed selection is a decision, not an error.
	AddFeat(ctx context.Context, input *AddFeatInput) (*AddFeatOutput, error)

	// RemoveFeat removes a single feat selection
	RemoveFeat(ctx context.Context, input *RemoveFeatInput) (*MutationOutput, error)

	// RemoveArchetype removes a dedication and cascades to every feat of
	// that archetype
	RemoveArchetype(ctx context.Context, input *RemoveArchetypeInput) (*MutationOutput, error)

	// AddItem adds an item to the equipment list
	AddItem(ctx context.Context, input *AddItemInput) (*MutationOutput, error)

	// SetItemWorn toggles an item's worn state
	SetItemWorn(ctx context.Context, input *SetItemStateInput) (*MutationOutput, error)

	// SetItemInvested toggles an item's invested state
	SetItemInvested(ctx context.Context, input *SetItemStateInput) (*MutationOutput, error)

	// SelectSpellChoice picks a spell-granting item's configuration
	SelectSpellChoice(ctx context.Context, input *SelectSpellChoiceInput) (*MutationOutput, error)

	// SetSkillIncrease records the skill-increase pick for a level
	SetSkillIncrease(ctx context.Context, input *SetSkillIncreaseInput) (*MutationOutput, error)

	// SetAbilityBoosts replaces the recorded boost choices
	SetAbilityBoosts(ctx context.Context, input *SetAbilityBoostsInput) (*MutationOutput, error)
}

// service implements the Service interface
type service struct {
	client  rulebook.Client
	engine  *recalc.Engine
	tracker *archetype.Tracker
	uuidGen uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client rulebook.Client // required

	Engine        *recalc.Engine     // optional, default over Client
	Tracker       *archetype.Tracker // optional, default over Client
	UUIDGenerator uuid.Generator     // optional, default google generator
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Client == nil {
		panic("rulebook client is required")
	}

	svc := &service{
		client:  cfg.Client,
		engine:  cfg.Engine,
		tracker: cfg.Tracker,
		uuidGen: cfg.UUIDGenerator,
	}
	if svc.engine == nil {
		svc.engine = recalc.NewEngine(&recalc.Config{Client: cfg.Client})
	}
	if svc.tracker == nil {
		svc.tracker = archetype.NewTracker(cfg.Client)
	}
	if svc.uuidGen == nil {
		svc.uuidGen = uuid.NewGoogleUUIDGenerator()
	}
	return svc
}

// CreateCharacter creates a new character
func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrs.Wrap(err, "invalid character creation input")
	}

	if _, err := s.client.GetAncestry(input.AncestryID); err != nil {
		return nil, apperrs.Wrapf(err, "failed to get ancestry '%s'", input.AncestryID)
	}
	background, err := s.client.GetBackground(input.BackgroundID)
	if err != nil {
		return nil, apperrs.Wrapf(err, "failed to get background '%s'", input.BackgroundID)
	}
	class, err := s.client.GetClass(input.ClassID)
	if err != nil {
		return nil, apperrs.Wrapf(err, "failed to get class '%s'", input.ClassID)
	}

	c := &char.Character{
		ID:           s.uuidGen.New(),
		OwnerID:      input.OwnerID,
		Name:         input.Name,
		Level:        1,
		AncestryID:   input.AncestryID,
		BackgroundID: input.BackgroundID,
		ClassID:      input.ClassID,
		Boosts: char.Boosts{
			Class:      class.KeyAbility,
			Background: background.Boost,
		},
	}

	return &CreateCharacterOutput{Character: s.engine.Recalculate(c)}, nil
}

// SetLevel changes the character's level
func (s *service) SetLevel(ctx context.Context, input *SetLevelInput) (*MutationOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrs.Wrap(err, "invalid set level input")
	}

	c := input.Character.Clone()
	c.Level = input.Level
	return s.finish(c), nil
}

// AddFeat takes a feat
func (s *service) AddFeat(ctx context.Context, input *AddFeatInput) (*AddFeatOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrs.Wrap(err, "invalid add feat input")
	}

	feat, err := s.client.GetFeat(input.FeatID)
	if err != nil {
		return nil, apperrs.Wrapf(err, "failed to get feat '%s'", input.FeatID)
	}

	c := input.Character.Clone()
	s.tracker.Replay(c)

	decision := s.tracker.CanSelect(c, feat)
	if !decision.Allowed {
		return &AddFeatOutput{Character: input.Character, Decision: decision}, nil
	}

	c.Feats = append(c.Feats, &char.FeatSelection{
		FeatID:   feat.ID,
		Level:    input.Level,
		Source:   input.Source,
		SlotType: input.SlotType,
		Choices:  input.Choices,
	})

	// auto-grant feats referenced by the feat's own grant rules
	for _, entry := range feat.Rules {
		grant, ok := rulebook.Classify(entry).(rulebook.GrantItemRule)
		if !ok {
			continue
		}
		grantedID := rulebook.GrantRefID(grant.Ref)
		if grantedID == "" || c.FeatSelectionByID(grantedID) != nil {
			continue
		}
		if _, err := s.client.GetFeat(grantedID); err != nil {
			continue
		}
		c.Feats = append(c.Feats, &char.FeatSelection{
			FeatID:    grantedID,
			Level:     input.Level,
			Source:    feat.ID,
			GrantedBy: feat.ID,
			Locked:    true,
		})
	}

	return &AddFeatOutput{Character: s.recalcWithReplay(c), Decision: decision}, nil
}

// RemoveFeat removes a single feat selection
func (s *service) RemoveFeat(ctx context.Context, input *RemoveFeatInput) (*MutationOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrs.Wrap(err, "invalid remove feat input")
	}

	c := input.Character.Clone()
	kept := c.Feats[:0]
	for _, sel := range c.Feats {
		if sel.FeatID == input.FeatID {
			continue
		}
		kept = append(kept, sel)
	}
	c.Feats = kept
	return s.finish(c), nil
}

// RemoveArchetype removes a dedication and all its feats
func (s *service) RemoveArchetype(ctx context.Context, input *RemoveArchetypeInput) (*MutationOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrs.Wrap(err, "invalid remove archetype input")
	}

	c := input.Character.Clone()
	s.tracker.Replay(c)
	s.tracker.RemoveDedication(c, input.Archetype)
	return &MutationOutput{Character: s.engine.Recalculate(c)}, nil
}

// AddItem adds an item to the equipment list
func (s *service) AddItem(ctx context.Context, input *AddItemInput) (*MutationOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrs.Wrap(err, "invalid add item input")
	}

	if _, err := s.client.GetItem(input.ItemID); err != nil {
		return nil, apperrs.Wrapf(err, "failed to get item '%s'", input.ItemID)
	}

	c := input.Character.Clone()
	if c.ItemByID(input.ItemID) == nil {
		c.Equipment = append(c.Equipment, &char.OwnedItem{ItemID: input.ItemID})
	}
	return s.finish(c), nil
}

// SetItemWorn toggles an item's worn state
func (s *service) SetItemWorn(ctx context.Context, input *SetItemStateInput) (*MutationOutput, error) {
	return s.setItemState(input, func(it *char.OwnedItem) { it.Worn = input.State })
}

// SetItemInvested toggles an item's invested state
func (s *service) SetItemInvested(ctx context.Context, input *SetItemStateInput) (*MutationOutput, error) {
	return s.setItemState(input, func(it *char.OwnedItem) { it.Invested = input.State })
}

func (s *service) setItemState(input *SetItemStateInput, apply func(*char.OwnedItem)) (*MutationOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrs.Wrap(err, "invalid item state input")
	}

	c := input.Character.Clone()
	item := c.ItemByID(input.ItemID)
	if item == nil {
		return nil, apperrs.NotFoundf("item '%s' is not in the equipment list", input.ItemID)
	}
	apply(item)
	return s.finish(c), nil
}

// SelectSpellChoice picks a spell-granting item's configuration and
// initializes its daily uses
func (s *service) SelectSpellChoice(ctx context.Context, input *SelectSpellChoiceInput) (*MutationOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrs.Wrap(err, "invalid spell choice input")
	}

	item, err := s.client.GetItem(input.ItemID)
	if err != nil {
		return nil, apperrs.Wrapf(err, "failed to get item '%s'", input.ItemID)
	}
	choice := item.ChoiceByID(input.ChoiceID)
	if choice == nil {
		return nil, apperrs.InvalidArgumentf("item '%s' has no spell choice '%s'", input.ItemID, input.ChoiceID)
	}

	c := input.Character.Clone()
	owned := c.ItemByID(input.ItemID)
	if owned == nil {
		return nil, apperrs.NotFoundf("item '%s' is not in the equipment list", input.ItemID)
	}
	owned.SpellGrant = &char.SpellGrantState{
		SelectedChoice: choice.ID,
		DailyUses:      char.Uses{Current: choice.DailyUses, Max: choice.DailyUses},
	}
	return s.finish(c), nil
}

// SetSkillIncrease records the skill-increase pick for a level
func (s *service) SetSkillIncrease(ctx context.Context, input *SetSkillIncreaseInput) (*MutationOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrs.Wrap(err, "invalid skill increase input")
	}

	c := input.Character.Clone()
	if c.SkillIncreases == nil {
		c.SkillIncreases = make(map[int]shared.Skill)
	}
	c.SkillIncreases[input.Level] = input.Skill
	return s.finish(c), nil
}

// SetAbilityBoosts replaces the recorded boost choices
func (s *service) SetAbilityBoosts(ctx context.Context, input *SetAbilityBoostsInput) (*MutationOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrs.Wrap(err, "invalid ability boosts input")
	}

	c := input.Character.Clone()
	c.Boosts = input.Boosts
	return s.finish(c), nil
}

func (s *service) finish(c *char.Character) *MutationOutput {
	return &MutationOutput{Character: s.recalcWithReplay(c)}
}

func (s *service) recalcWithReplay(c *char.Character) *char.Character {
	s.tracker.Replay(c)
	return s.engine.Recalculate(c)
}
