package rulebook

// ConditionKind identifies what a predicate condition tests
type ConditionKind string

const (
	// ConditionClass tests the character's class id
	ConditionClass ConditionKind = "class"
	// ConditionFeat tests possession of a feat by id
	ConditionFeat ConditionKind = "feat"
)

// Condition is a single predicate test
type Condition struct {
	Kind ConditionKind
	ID   string
}

// Clause is a disjunction: it holds when any condition holds
type Clause struct {
	Any []Condition
}

// Predicate gates a rule. It is a conjunction of clauses: every clause must
// hold. A nil predicate always matches.
type Predicate struct {
	All []Clause
}

// PredicateContext supplies the character facts predicates test against
type PredicateContext struct {
	ClassID string
	HasFeat func(id string) bool
}

// Matches evaluates the predicate against the context. Conditions of an
// unknown kind fail closed inside their clause but do not poison siblings.
func (p *Predicate) Matches(ctx PredicateContext) bool {
	if p == nil {
		return true
	}
	for _, clause := range p.All {
		if !clause.matches(ctx) {
			return false
		}
	}
	return true
}

func (c Clause) matches(ctx PredicateContext) bool {
	for _, cond := range c.Any {
		switch cond.Kind {
		case ConditionClass:
			if ctx.ClassID == cond.ID {
				return true
			}
		case ConditionFeat:
			if ctx.HasFeat != nil && ctx.HasFeat(cond.ID) {
				return true
			}
		}
	}
	return false
}

// ClassIs builds a single-clause predicate testing the class id
func ClassIs(classID string) *Predicate {
	return &Predicate{All: []Clause{{Any: []Condition{{Kind: ConditionClass, ID: classID}}}}}
}

// AnyOf builds a clause from conditions
func AnyOf(conds ...Condition) Clause {
	return Clause{Any: conds}
}
