package character

// Spellcasting is the character's spell state
type Spellcasting struct {
	Tradition string
	Rank      int

	// Known lists spells the character can cast, each with exactly one
	// explanatory source at a time
	Known []KnownSpell

	// Innate lists innate spells with their daily uses
	Innate []InnateSpell

	// Slots maps spell level to the slot pool at that level
	Slots map[int]Uses

	Focus Uses
}

// KnownSpell is one known spell and where it came from
type KnownSpell struct {
	SpellID string

	// Source is "item:<id>", "feat:<id>", "background:<id>" or "class"
	Source string
}

// InnateSpell is an innate spell with tracked uses
type InnateSpell struct {
	SpellID string
	Source  string
	Uses    Uses
}

// KnowsSpell reports whether the spell id is in the known list
func (s *Spellcasting) KnowsSpell(spellID string) bool {
	for _, k := range s.Known {
		if k.SpellID == spellID {
			return true
		}
	}
	return false
}

// AddKnownSpell records a spell if not already known
func (s *Spellcasting) AddKnownSpell(spellID, source string) {
	if s.KnowsSpell(spellID) {
		return
	}
	s.Known = append(s.Known, KnownSpell{SpellID: spellID, Source: source})
}

// RemoveKnownSpell drops a spell from the known list
func (s *Spellcasting) RemoveKnownSpell(spellID string) {
	out := s.Known[:0]
	for _, k := range s.Known {
		if k.SpellID != spellID {
			out = append(out, k)
		}
	}
	s.Known = out
}

func (s Spellcasting) clone() Spellcasting {
	out := s
	out.Known = append([]KnownSpell(nil), s.Known...)
	out.Innate = append([]InnateSpell(nil), s.Innate...)
	out.Slots = make(map[int]Uses, len(s.Slots))
	for lvl, u := range s.Slots {
		out.Slots[lvl] = u
	}
	return out
}
