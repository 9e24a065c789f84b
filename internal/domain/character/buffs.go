package character

import "strings"

// Origin prefixes. Every buff is tagged with an origin; the stage that
// produces a prefix owns every buff under it and regenerates them from
// scratch each pass.
const (
	OriginPrefixFeat      = "feat:"
	OriginPrefixEquipment = "equipment:"
)

// FeatOrigin builds the origin tag for a feat-sourced buff
func FeatOrigin(featID string) string {
	return OriginPrefixFeat + featID
}

// EquipmentOrigin builds the origin tag for an item-sourced buff
func EquipmentOrigin(itemID string) string {
	return OriginPrefixEquipment + itemID
}

// Buff is a named, sourced numeric modifier on a target stat. Its id is
// derived from origin and target so re-resolution overwrites instead of
// duplicating.
type Buff struct {
	ID        string
	Origin    string
	Target    string
	BonusType string
	Value     int
}

// BuffID derives the stable buff id
func BuffID(origin, target string) string {
	return origin + ":" + target
}

// NewBuff builds a buff with its derived id
func NewBuff(origin, target, bonusType string, value int) *Buff {
	return &Buff{
		ID:        BuffID(origin, target),
		Origin:    origin,
		Target:    target,
		BonusType: bonusType,
		Value:     value,
	}
}

// SetBuff inserts or overwrites a buff by id
func (c *Character) SetBuff(b *Buff) {
	if c.Buffs == nil {
		c.Buffs = make(map[string]*Buff)
	}
	c.Buffs[b.ID] = b
}

// RemoveBuffsByOriginPrefix deletes every buff whose origin starts with the
// prefix. Stages call this before regenerating their buffs so stale entries
// from removed feats or items cannot survive.
func (c *Character) RemoveBuffsByOriginPrefix(prefix string) {
	for id, b := range c.Buffs {
		if strings.HasPrefix(b.Origin, prefix) {
			delete(c.Buffs, id)
		}
	}
}

// BuffTotal sums every buff on a target
func (c *Character) BuffTotal(target string) int {
	total := 0
	for _, b := range c.Buffs {
		if b.Target == target {
			total += b.Value
		}
	}
	return total
}

// MaxBuff returns the single highest buff value on a target, zero when none
func (c *Character) MaxBuff(target string) int {
	max := 0
	for _, b := range c.Buffs {
		if b.Target == target && b.Value > max {
			max = b.Value
		}
	}
	return max
}
