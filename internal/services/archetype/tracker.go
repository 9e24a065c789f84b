// Package archetype enforces the dedication rule: after taking an archetype
// dedication feat, two more feats of that archetype are required before any
// other archetype's dedication may be taken.
package archetype

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hearthforge/pf2-builder/internal/domain/character"
	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
)

// Decision is the answer to "may this feat be selected". Constraint
// violations are results, never errors.
type Decision struct {
	Allowed bool
	Reason  string
}

// Tracker recomputes and queries per-archetype dedication state
type Tracker struct {
	client rulebook.Client
}

// NewTracker creates a tracker over the given content client
func NewTracker(client rulebook.Client) *Tracker {
	return &Tracker{client: client}
}

// ArchetypeOf returns the archetype name a dedication feat opens, derived
// from the feat name ("Wizard Dedication" -> "wizard"), falling back to the
// id with its "-dedication" suffix stripped. Empty for non-dedications.
func (t *Tracker) ArchetypeOf(feat *rulebook.Feat) string {
	if !feat.IsDedication() {
		return ""
	}
	name := strings.ToLower(feat.Name)
	if cut, ok := strings.CutSuffix(name, " dedication"); ok {
		return strings.ReplaceAll(strings.TrimSpace(cut), " ", "-")
	}
	return strings.TrimSuffix(feat.ID, "-dedication")
}

// BelongsTo reports whether a feat belongs to the named archetype: by
// trait, by id prefix, or by prerequisite text referencing the archetype's
// dedication.
func (t *Tracker) BelongsTo(feat *rulebook.Feat, archetype string) bool {
	if archetype == "" {
		return false
	}
	if feat.IsDedication() {
		return t.ArchetypeOf(feat) == archetype
	}
	if feat.HasTrait(archetype) {
		return true
	}
	if strings.HasPrefix(feat.ID, archetype+"-") {
		return true
	}
	want := strings.ReplaceAll(archetype, "-", " ") + " dedication"
	for _, prereq := range feat.Prerequisites {
		if strings.Contains(strings.ToLower(prereq), want) {
			return true
		}
	}
	return false
}

// Replay rebuilds the character's dedication map from scratch by walking
// the full feat list sorted by acquisition level. Incremental updates are
// not trusted across arbitrary edits and undo; callers re-replay instead.
func (t *Tracker) Replay(c *character.Character) {
	c.Dedications = make(map[string]*character.DedicationProgress)

	for _, sel := range c.FeatsSortedByLevel() {
		feat, err := t.client.GetFeat(sel.FeatID)
		if err != nil {
			continue
		}

		if feat.IsDedication() {
			arch := t.ArchetypeOf(feat)
			// dedication counts as the first of the required feats
			c.Dedications[arch] = &character.DedicationProgress{
				DedicationLevel: sel.Level,
				FeatCount:       1,
			}
			continue
		}

		// membership is decided per channel (trait, id prefix, prerequisite
		// text), not by the generic archetype trait alone
		for arch, progress := range c.Dedications {
			if t.BelongsTo(feat, arch) {
				progress.FeatCount++
			}
		}
	}
}

// CanSelect reports whether the feat may be taken given current dedication
// state. While any archetype is still owed feats, only feats of that
// archetype (its own dedication included, allowing a swap) and plain
// non-archetype feats are allowed.
func (t *Tracker) CanSelect(c *character.Character, feat *rulebook.Feat) Decision {
	constrained, progress := t.constrainedArchetype(c)
	if constrained == "" {
		return Decision{Allowed: true}
	}

	if t.BelongsTo(feat, constrained) {
		return Decision{Allowed: true}
	}
	if !t.boundToOtherArchetype(c, feat, constrained) {
		return Decision{Allowed: true}
	}

	return Decision{
		Allowed: false,
		Reason: fmt.Sprintf("%s dedication requires %d more %s feat(s) before another archetype feat can be selected",
			constrained, progress.Remaining(), constrained),
	}
}

// boundToOtherArchetype reports whether the feat is an archetype feat
// outside the constrained archetype: anything carrying the generic
// archetype trait, or a trait-less feat matching another tracked archetype
// through the remaining membership channels.
func (t *Tracker) boundToOtherArchetype(c *character.Character, feat *rulebook.Feat, constrained string) bool {
	if feat.HasTrait(rulebook.TraitArchetype) {
		return true
	}
	for arch := range c.Dedications {
		if arch != constrained && t.BelongsTo(feat, arch) {
			return true
		}
	}
	return false
}

// constrainedArchetype returns the unsatisfied archetype, if any. Names are
// visited in sorted order so the answer is deterministic.
func (t *Tracker) constrainedArchetype(c *character.Character) (string, *character.DedicationProgress) {
	names := make([]string, 0, len(c.Dedications))
	for name := range c.Dedications {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if p := c.Dedications[name]; !p.Satisfied() {
			return name, p
		}
	}
	return "", nil
}

// RemoveDedication removes an archetype's dedication feat and cascades to
// every feat belonging to that archetype, including feats the dedication
// granted automatically (matched via the grant back-reference or by parsing
// the dedication's own grant rules). The tracking entry is deleted.
func (t *Tracker) RemoveDedication(c *character.Character, archetype string) {
	var dedicationID string
	grantRefs := make(map[string]bool)

	for _, sel := range c.Feats {
		feat, err := t.client.GetFeat(sel.FeatID)
		if err != nil {
			continue
		}
		if feat.IsDedication() && t.ArchetypeOf(feat) == archetype {
			dedicationID = feat.ID
			for _, entry := range feat.Rules {
				if grant, ok := rulebook.Classify(entry).(rulebook.GrantItemRule); ok {
					grantRefs[rulebook.GrantRefID(grant.Ref)] = true
				}
			}
		}
	}

	kept := c.Feats[:0]
	for _, sel := range c.Feats {
		if sel.GrantedBy != "" && sel.GrantedBy == dedicationID {
			continue
		}
		if grantRefs[sel.FeatID] {
			continue
		}
		if feat, err := t.client.GetFeat(sel.FeatID); err == nil && t.BelongsTo(feat, archetype) {
			continue
		}
		kept = append(kept, sel)
	}
	c.Feats = kept

	delete(c.Dedications, archetype)
	t.Replay(c)
}
