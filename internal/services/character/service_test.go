package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	char "github.com/hearthforge/pf2-builder/internal/domain/character"
	"github.com/hearthforge/pf2-builder/internal/domain/rulebook/pf2e"
	"github.com/hearthforge/pf2-builder/internal/domain/shared"
	apperrs "github.com/hearthforge/pf2-builder/internal/errors"
	charsvc "github.com/hearthforge/pf2-builder/internal/services/character"
	"github.com/hearthforge/pf2-builder/internal/testutils"
)

type ServiceSuite struct {
	suite.Suite
	ctx context.Context
	svc charsvc.Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.svc = charsvc.NewService(&charsvc.ServiceConfig{
		Client: pf2e.NewStaticClient(),
	})
}

func (s *ServiceSuite) TestCreateCharacter() {
	out, err := s.svc.CreateCharacter(s.ctx, &charsvc.CreateCharacterInput{
		OwnerID:      "owner-1",
		Name:         "Valeros",
		AncestryID:   "human",
		BackgroundID: "soldier",
		ClassID:      "fighter",
	})
	s.Require().NoError(err)

	c := out.Character
	s.NotEmpty(c.ID)
	s.Equal(1, c.Level)

	// key ability and background boost applied, sheet fully derived
	s.Equal(14, c.AbilityScores[shared.AbilityStrength])
	s.Equal(18, c.HitPoints.Max)
	s.Equal(shared.RankTrained, c.Skills[shared.SkillAthletics])
}

func (s *ServiceSuite) TestCreateCharacter_ValidatesInput() {
	_, err := s.svc.CreateCharacter(s.ctx, &charsvc.CreateCharacterInput{
		Name:         "No Class",
		AncestryID:   "human",
		BackgroundID: "soldier",
	})
	s.Require().Error(err)
	s.True(apperrs.IsValidation(err))
}

func (s *ServiceSuite) TestCreateCharacter_UnknownAncestry() {
	_, err := s.svc.CreateCharacter(s.ctx, &charsvc.CreateCharacterInput{
		Name:         "Nobody",
		AncestryID:   "android",
		BackgroundID: "soldier",
		ClassID:      "fighter",
	})
	s.Require().Error(err)
	s.True(apperrs.IsNotFound(err))
}

func (s *ServiceSuite) TestSetLevel_RetrainingKeepsChoices() {
	c := testutils.CreateTestFighter()
	c.Level = 9
	testutils.AddFeat(c, "sprinters-stride", 9)

	out, err := s.svc.SetLevel(s.ctx, &charsvc.SetLevelInput{Character: c, Level: 1})
	s.Require().NoError(err)

	down := out.Character
	s.Equal(1, down.Level)
	// the selection persists but its effect is gone
	s.NotNil(down.FeatSelectionByID("sprinters-stride"))
	s.Equal(25, down.Speed.Land)

	out, err = s.svc.SetLevel(s.ctx, &charsvc.SetLevelInput{Character: down, Level: 9})
	s.Require().NoError(err)
	s.Equal(35, out.Character.Speed.Land)
}

func (s *ServiceSuite) TestSetLevel_OutOfRange() {
	c := testutils.CreateTestFighter()
	_, err := s.svc.SetLevel(s.ctx, &charsvc.SetLevelInput{Character: c, Level: 21})
	s.Require().Error(err)
	s.True(apperrs.IsValidation(err))
}

func (s *ServiceSuite) TestAddFeat_AppliesEffects() {
	c := testutils.CreateTestFighter()

	out, err := s.svc.AddFeat(s.ctx, &charsvc.AddFeatInput{
		Character: c, FeatID: "fleet", Level: 1,
	})
	s.Require().NoError(err)
	s.True(out.Decision.Allowed)
	s.Equal(30, out.Character.Speed.Land)
}

func (s *ServiceSuite) TestAddFeat_UnknownFeat() {
	c := testutils.CreateTestFighter()
	_, err := s.svc.AddFeat(s.ctx, &charsvc.AddFeatInput{
		Character: c, FeatID: "made-up-feat", Level: 1,
	})
	s.Require().Error(err)
	s.True(apperrs.IsNotFound(err))
}

func (s *ServiceSuite) TestAddFeat_DedicationAutoGrants() {
	c := testutils.CreateTestFighter()
	c.Level = 2

	out, err := s.svc.AddFeat(s.ctx, &charsvc.AddFeatInput{
		Character: c, FeatID: "wizard-dedication", Level: 2,
	})
	s.Require().NoError(err)
	s.True(out.Decision.Allowed)

	granted := out.Character.FeatSelectionByID("school-familiarity")
	s.Require().NotNil(granted)
	s.Equal("wizard-dedication", granted.GrantedBy)
	s.True(granted.Locked)

	// both the dedication and its grant count toward progress
	s.Equal(2, out.Character.Dedications["wizard"].FeatCount)
}

func (s *ServiceSuite) TestAddFeat_DedicationConstraint() {
	c := testutils.CreateTestFighter()
	c.Level = 4
	testutils.AddFeat(c, "wizard-dedication", 2)

	out, err := s.svc.AddFeat(s.ctx, &charsvc.AddFeatInput{
		Character: c, FeatID: "sentinel-dedication", Level: 4,
	})
	s.Require().NoError(err)

	// a refusal is a decision, not an error, and the record is unchanged
	s.False(out.Decision.Allowed)
	s.NotEmpty(out.Decision.Reason)
	s.Nil(out.Character.FeatSelectionByID("sentinel-dedication"))
}

func (s *ServiceSuite) TestRemoveFeat() {
	c := testutils.CreateTestFighter()
	testutils.AddFeat(c, "fleet", 1)

	out, err := s.svc.RemoveFeat(s.ctx, &charsvc.RemoveFeatInput{Character: c, FeatID: "fleet"})
	s.Require().NoError(err)

	s.Nil(out.Character.FeatSelectionByID("fleet"))
	s.Equal(25, out.Character.Speed.Land)
	s.NotContains(out.Character.Buffs, "feat:fleet:speed")
}

func (s *ServiceSuite) TestRemoveArchetype_Cascades() {
	c := testutils.CreateTestFighter()
	c.Level = 4
	testutils.AddFeat(c, "wizard-dedication", 2)
	granted := testutils.AddFeat(c, "school-familiarity", 2)
	granted.GrantedBy = "wizard-dedication"
	testutils.AddFeat(c, "basic-arcana", 4)
	testutils.AddFeat(c, "fleet", 1)

	out, err := s.svc.RemoveArchetype(s.ctx, &charsvc.RemoveArchetypeInput{
		Character: c, Archetype: "wizard",
	})
	s.Require().NoError(err)

	result := out.Character
	s.Require().Len(result.Feats, 1)
	s.Equal("fleet", result.Feats[0].FeatID)
	s.NotContains(result.Dedications, "wizard")

	// the dedication's skill training is gone too
	s.Equal(shared.RankUntrained, result.Skills[shared.SkillArcana])
}

func (s *ServiceSuite) TestItemLifecycle() {
	c := testutils.CreateTestFighter()

	out, err := s.svc.AddItem(s.ctx, &charsvc.AddItemInput{Character: c, ItemID: "full-plate"})
	s.Require().NoError(err)
	s.Equal(shared.RankTrained, out.Character.ArmorProficiencies[shared.ArmorHeavy])
	s.NotContains(out.Character.Buffs, "equipment:full-plate:ac")

	out, err = s.svc.SetItemWorn(s.ctx, &charsvc.SetItemStateInput{
		Character: out.Character, ItemID: "full-plate", State: true,
	})
	s.Require().NoError(err)
	s.Contains(out.Character.Buffs, "equipment:full-plate:ac")

	out, err = s.svc.SetItemWorn(s.ctx, &charsvc.SetItemStateInput{
		Character: out.Character, ItemID: "full-plate", State: false,
	})
	s.Require().NoError(err)
	s.NotContains(out.Character.Buffs, "equipment:full-plate:ac")
}

func (s *ServiceSuite) TestSetItemState_MissingItem() {
	c := testutils.CreateTestFighter()
	_, err := s.svc.SetItemWorn(s.ctx, &charsvc.SetItemStateInput{
		Character: c, ItemID: "full-plate", State: true,
	})
	s.Require().Error(err)
	s.True(apperrs.IsNotFound(err))
}

func (s *ServiceSuite) TestSelectSpellChoice() {
	c := testutils.CreateTestFighter()
	testutils.AddItem(c, "pearly-white-spindle", false, true)

	out, err := s.svc.SelectSpellChoice(s.ctx, &charsvc.SelectSpellChoiceInput{
		Character: c, ItemID: "pearly-white-spindle", ChoiceID: "shield",
	})
	s.Require().NoError(err)

	owned := out.Character.ItemByID("pearly-white-spindle")
	s.Require().NotNil(owned.SpellGrant)
	s.Equal("shield", owned.SpellGrant.SelectedChoice)
	s.Equal(1, owned.SpellGrant.DailyUses.Max)

	// the spell is granted immediately
	s.True(out.Character.Spellcasting.KnowsSpell("shield"))
}

func (s *ServiceSuite) TestSelectSpellChoice_UnknownChoice() {
	c := testutils.CreateTestFighter()
	testutils.AddItem(c, "pearly-white-spindle", false, true)

	_, err := s.svc.SelectSpellChoice(s.ctx, &charsvc.SelectSpellChoiceInput{
		Character: c, ItemID: "pearly-white-spindle", ChoiceID: "fireball",
	})
	s.Require().Error(err)
	s.True(apperrs.IsInvalidArgument(err))
}

func (s *ServiceSuite) TestSetSkillIncrease() {
	c := testutils.CreateTestFighter()
	c.Level = 3

	out, err := s.svc.SetSkillIncrease(s.ctx, &charsvc.SetSkillIncreaseInput{
		Character: c, Level: 3, Skill: shared.SkillAthletics,
	})
	s.Require().NoError(err)
	s.Equal(shared.RankExpert, out.Character.Skills[shared.SkillAthletics])
}

func (s *ServiceSuite) TestSetAbilityBoosts() {
	c := testutils.CreateTestFighter()

	boosts := c.Boosts
	boosts.LevelOneFree = []shared.Ability{shared.AbilityWisdom, shared.AbilityWisdom}
	out, err := s.svc.SetAbilityBoosts(s.ctx, &charsvc.SetAbilityBoostsInput{
		Character: c, Boosts: boosts,
	})
	s.Require().NoError(err)
	s.Equal(14, out.Character.AbilityScores[shared.AbilityWisdom])
}

func (s *ServiceSuite) TestSetAbilityBoosts_RejectsUnknownAbility() {
	c := testutils.CreateTestFighter()
	boosts := char.Boosts{LevelOneFree: []shared.Ability{"luck"}}

	_, err := s.svc.SetAbilityBoosts(s.ctx, &charsvc.SetAbilityBoostsInput{
		Character: c, Boosts: boosts,
	})
	s.Require().Error(err)
	s.True(apperrs.IsValidation(err))
}

func (s *ServiceSuite) TestMutationsDoNotAliasInput() {
	c := testutils.CreateTestFighter()

	out, err := s.svc.AddFeat(s.ctx, &charsvc.AddFeatInput{Character: c, FeatID: "fleet", Level: 1})
	s.Require().NoError(err)

	s.NotSame(c, out.Character)
	s.Nil(c.FeatSelectionByID("fleet"))
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}
