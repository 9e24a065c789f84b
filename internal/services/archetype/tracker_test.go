package archetype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
	mockrulebook "github.com/hearthforge/pf2-builder/internal/domain/rulebook/mock"
	"github.com/hearthforge/pf2-builder/internal/domain/rulebook/pf2e"
	"github.com/hearthforge/pf2-builder/internal/errors"
	"github.com/hearthforge/pf2-builder/internal/services/archetype"
	"github.com/hearthforge/pf2-builder/internal/testutils"
)

type TrackerSuite struct {
	suite.Suite
	client  *pf2e.StaticClient
	tracker *archetype.Tracker
}

func (s *TrackerSuite) SetupTest() {
	s.client = pf2e.NewStaticClient()
	s.tracker = archetype.NewTracker(s.client)
}

func (s *TrackerSuite) feat(id string) *rulebook.Feat {
	feat, err := s.client.GetFeat(id)
	s.Require().NoError(err)
	return feat
}

func (s *TrackerSuite) TestArchetypeOf() {
	s.Equal("wizard", s.tracker.ArchetypeOf(s.feat("wizard-dedication")))
	s.Equal("sentinel", s.tracker.ArchetypeOf(s.feat("sentinel-dedication")))
	s.Empty(s.tracker.ArchetypeOf(s.feat("fleet")))
}

func (s *TrackerSuite) TestBelongsTo() {
	s.True(s.tracker.BelongsTo(s.feat("wizard-dedication"), "wizard"))
	s.True(s.tracker.BelongsTo(s.feat("basic-arcana"), "wizard"))         // via prerequisite
	s.True(s.tracker.BelongsTo(s.feat("school-familiarity"), "wizard"))   // via prerequisite
	s.True(s.tracker.BelongsTo(s.feat("opportunist"), "fighter"))         // via prerequisite
	s.False(s.tracker.BelongsTo(s.feat("wizard-dedication"), "fighter"))
	s.False(s.tracker.BelongsTo(s.feat("fleet"), "wizard"))
}

func (s *TrackerSuite) TestReplay_CountsDedicationAsFirstFeat() {
	c := testutils.CreateTestFighter()
	c.Level = 4
	testutils.AddFeat(c, "wizard-dedication", 2)

	s.tracker.Replay(c)

	s.Require().Contains(c.Dedications, "wizard")
	progress := c.Dedications["wizard"]
	s.Equal(2, progress.DedicationLevel)
	s.Equal(1, progress.FeatCount)
	s.False(progress.Satisfied())
}

func (s *TrackerSuite) TestReplay_CountsArchetypeFeats() {
	c := testutils.CreateTestFighter()
	c.Level = 6
	testutils.AddFeat(c, "wizard-dedication", 2)
	testutils.AddFeat(c, "school-familiarity", 2)
	testutils.AddFeat(c, "basic-arcana", 4)

	s.tracker.Replay(c)

	s.Require().Contains(c.Dedications, "wizard")
	s.Equal(3, c.Dedications["wizard"].FeatCount)
	s.True(c.Dedications["wizard"].Satisfied())
}

func (s *TrackerSuite) TestCanSelect_NoDedicationsAllowsAnything() {
	c := testutils.CreateTestFighter()
	s.tracker.Replay(c)

	s.True(s.tracker.CanSelect(c, s.feat("wizard-dedication")).Allowed)
	s.True(s.tracker.CanSelect(c, s.feat("fleet")).Allowed)
}

func (s *TrackerSuite) TestCanSelect_UnsatisfiedDedicationBlocksOtherArchetypes() {
	c := testutils.CreateTestFighter()
	c.Level = 4
	testutils.AddFeat(c, "wizard-dedication", 2)
	s.tracker.Replay(c)

	// another archetype's dedication is blocked with a reason
	decision := s.tracker.CanSelect(c, s.feat("fighter-dedication"))
	s.False(decision.Allowed)
	s.Contains(decision.Reason, "wizard")
	s.Contains(decision.Reason, "2 more")

	// feats of the constrained archetype are fine
	s.True(s.tracker.CanSelect(c, s.feat("basic-arcana")).Allowed)

	// so are plain non-archetype feats
	s.True(s.tracker.CanSelect(c, s.feat("toughness")).Allowed)

	// and the constrained archetype's own dedication (a swap)
	s.True(s.tracker.CanSelect(c, s.feat("wizard-dedication")).Allowed)
}

func (s *TrackerSuite) TestCanSelect_SatisfiedDedicationUnblocks() {
	c := testutils.CreateTestFighter()
	c.Level = 6
	testutils.AddFeat(c, "wizard-dedication", 2)
	testutils.AddFeat(c, "school-familiarity", 2)
	testutils.AddFeat(c, "basic-arcana", 4)
	s.tracker.Replay(c)

	s.True(s.tracker.CanSelect(c, s.feat("sentinel-dedication")).Allowed)
}

func (s *TrackerSuite) TestRemoveDedication_Cascades() {
	c := testutils.CreateTestFighter()
	c.Level = 6
	testutils.AddFeat(c, "fleet", 1)
	testutils.AddFeat(c, "wizard-dedication", 2)
	granted := testutils.AddFeat(c, "school-familiarity", 2)
	granted.GrantedBy = "wizard-dedication"
	granted.Locked = true
	testutils.AddFeat(c, "basic-arcana", 4)
	s.tracker.Replay(c)

	s.tracker.RemoveDedication(c, "wizard")

	s.Require().Len(c.Feats, 1)
	s.Equal("fleet", c.Feats[0].FeatID)
	s.NotContains(c.Dedications, "wizard")
}

func (s *TrackerSuite) TestRemoveDedication_GrantMatchedByRuleParsing() {
	c := testutils.CreateTestFighter()
	c.Level = 4
	testutils.AddFeat(c, "wizard-dedication", 2)
	// granted feat recorded without a back-reference; the dedication's own
	// grant rules still identify it
	testutils.AddFeat(c, "school-familiarity", 2)
	s.tracker.Replay(c)

	s.tracker.RemoveDedication(c, "wizard")

	s.Empty(c.Feats)
}

func (s *TrackerSuite) TestRemoveDedication_OtherArchetypesUntouched() {
	c := testutils.CreateTestFighter()
	c.Level = 8
	testutils.AddFeat(c, "wizard-dedication", 2)
	testutils.AddFeat(c, "school-familiarity", 2)
	testutils.AddFeat(c, "basic-arcana", 4)
	testutils.AddFeat(c, "sentinel-dedication", 6)
	s.tracker.Replay(c)

	s.tracker.RemoveDedication(c, "wizard")

	s.Require().Len(c.Feats, 1)
	s.Equal("sentinel-dedication", c.Feats[0].FeatID)
	s.Contains(c.Dedications, "sentinel")

	var ids []string
	for _, sel := range c.Feats {
		ids = append(ids, sel.FeatID)
	}
	s.NotContains(ids, "wizard-dedication")
}

func (s *TrackerSuite) TestReplay_IgnoresUnknownFeatIDs() {
	c := testutils.CreateTestFighter()
	testutils.AddFeat(c, "from-a-newer-content-pack", 2)

	s.tracker.Replay(c)

	s.Empty(c.Dedications)
}

func (s *TrackerSuite) TestReplay_NotGatedByCurrentLevel() {
	c := testutils.CreateTestFighter()
	c.Level = 1
	testutils.AddFeat(c, "wizard-dedication", 2)

	s.tracker.Replay(c)

	// the stored build is constrained even while the feat is out of level
	s.Contains(c.Dedications, "wizard")
}

func TestTrackerSuite(t *testing.T) {
	suite.Run(t, new(TrackerSuite))
}

// content where the sentinel archetype feats lack the generic archetype
// trait and match only by id prefix or prerequisite text
func traitlessSentinelClient(t *testing.T) *mockrulebook.MockClient {
	ctrl := gomock.NewController(t)
	mockClient := mockrulebook.NewMockClient(ctrl)

	feats := map[string]*rulebook.Feat{
		"wizard-dedication": {
			ID: "wizard-dedication", Name: "Wizard Dedication", Level: 2,
			Traits: []string{"archetype", "dedication"},
		},
		"sentinel-dedication": {
			ID: "sentinel-dedication", Name: "Sentinel Dedication", Level: 2,
			Traits: []string{"archetype", "dedication"},
		},
		"sentinel-armor": {
			ID: "sentinel-armor", Name: "Sentinel Armor", Level: 4,
		},
		"shielded-stance": {
			ID: "shielded-stance", Name: "Shielded Stance", Level: 4,
			Prerequisites: []string{"Sentinel Dedication"},
		},
	}
	mockClient.EXPECT().GetFeat(gomock.Any()).DoAndReturn(func(id string) (*rulebook.Feat, error) {
		if feat, ok := feats[id]; ok {
			return feat, nil
		}
		return nil, errors.NotFound("feat not found")
	}).AnyTimes()
	return mockClient
}

func TestReplay_CountsTraitlessFeatsByPrefixAndPrerequisite(t *testing.T) {
	tracker := archetype.NewTracker(traitlessSentinelClient(t))

	c := testutils.CreateTestFighter()
	c.Level = 4
	testutils.AddFeat(c, "sentinel-dedication", 2)
	testutils.AddFeat(c, "sentinel-armor", 3)
	testutils.AddFeat(c, "shielded-stance", 4)

	tracker.Replay(c)

	require.Contains(t, c.Dedications, "sentinel")
	assert.Equal(t, 3, c.Dedications["sentinel"].FeatCount)
	assert.True(t, c.Dedications["sentinel"].Satisfied())
}

func TestCanSelect_BlocksTraitlessFeatOfAnotherArchetype(t *testing.T) {
	tracker := archetype.NewTracker(traitlessSentinelClient(t))

	c := testutils.CreateTestFighter()
	c.Level = 4
	testutils.AddFeat(c, "sentinel-dedication", 2)
	testutils.AddFeat(c, "sentinel-armor", 3)
	testutils.AddFeat(c, "shielded-stance", 4)
	testutils.AddFeat(c, "wizard-dedication", 4)
	tracker.Replay(c)

	require.False(t, c.Dedications["wizard"].Satisfied())

	// a sentinel feat with no archetype trait is still another archetype's
	// feat while the wizard dedication is owed
	decision := tracker.CanSelect(c, &rulebook.Feat{
		ID: "mighty-bulwark", Name: "Mighty Bulwark", Level: 4,
		Prerequisites: []string{"Sentinel Dedication"},
	})
	assert.False(t, decision.Allowed)
	assert.Contains(t, decision.Reason, "wizard")

	// plain feats with no archetype ties stay selectable
	allowed := tracker.CanSelect(c, &rulebook.Feat{ID: "toughness", Name: "Toughness", Level: 1})
	assert.True(t, allowed.Allowed)
}
