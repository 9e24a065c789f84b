package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearthforge/pf2-builder/internal/domain/rulebook"
)

func TestParseFormula_Literal(t *testing.T) {
	assert.Equal(t, 2, rulebook.ParseFormula("2").Eval(1))
	assert.Equal(t, -1, rulebook.ParseFormula("-1").Eval(10))
	assert.Equal(t, 5, rulebook.ParseFormula(" 5 ").Eval(20))
}

func TestParseFormula_ActorLevel(t *testing.T) {
	f := rulebook.ParseFormula("@actor.level")
	assert.Equal(t, 1, f.Eval(1))
	assert.Equal(t, 17, f.Eval(17))
}

func TestParseFormula_ClampedLinear(t *testing.T) {
	f := rulebook.ParseFormula("@actor.level+clamp(-2,floor((@actor.level-7)/2),0)")

	tests := []struct {
		level    int
		expected int
	}{
		{1, -1}, // floor(-6/2) = -3, clamped to -2
		{3, 1},
		{5, 4}, // floor(-2/2) = -1
		{7, 7},
		{8, 8},
		{9, 9}, // floor(2/2) = 1, clamped to 0
		{20, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, f.Eval(tt.level), "level %d", tt.level)
	}
}

func TestParseFormula_ClampedLinearSpaces(t *testing.T) {
	f := rulebook.ParseFormula("@actor.level + clamp(-2, floor((@actor.level - 7) / 2), 0)")
	assert.Equal(t, 8, f.Eval(8))
}

func TestParseFormula_LevelThreshold(t *testing.T) {
	f := rulebook.ParseFormula("ternary(gte(@actor.level,17),3,2)")
	assert.Equal(t, 2, f.Eval(1))
	assert.Equal(t, 2, f.Eval(16))
	assert.Equal(t, 3, f.Eval(17))
	assert.Equal(t, 3, f.Eval(20))
}

func TestParseFormula_MalformedIsNoOp(t *testing.T) {
	for _, s := range []string{"", "  ", "banana", "@actor.hp", "ternary(gte(@actor.level,x),3,2)", "clamp(1,2)"} {
		assert.Equal(t, 0, rulebook.ParseFormula(s).Eval(10), "input %q", s)
	}
}
