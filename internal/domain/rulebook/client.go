package rulebook

//go:generate mockgen -destination=mock/mock_client.go -package=mockrulebook . Client

// Client looks up static rules content by id. Implementations return
// errors.NotFound for missing ids; callers in the recalculation pipeline
// treat that as "skip this entry's contribution".
type Client interface {
	GetClass(id string) (*Class, error)
	GetAncestry(id string) (*Ancestry, error)
	GetBackground(id string) (*Background, error)
	GetFeat(id string) (*Feat, error)
	GetItem(id string) (*Item, error)
	GetSpell(id string) (*Spell, error)

	ListClasses() ([]*Class, error)
	ListFeats() ([]*Feat, error)
	ListItems() ([]*Item, error)
	ListSpells() ([]*Spell, error)

	// SpellGrantingSpellIDs returns the global set of spell ids any
	// spell-granting item could grant. Spell reconciliation only ever
	// removes spells inside this set.
	SpellGrantingSpellIDs() []string
}
