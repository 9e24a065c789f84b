package rulebook

import (
	"regexp"
	"strconv"
	"strings"
)

// Formula is a closed representation of the level-dependent value
// expressions rule entries may carry. A single interpreter replaces ad hoc
// string probing at application time.
type Formula interface {
	Eval(level int) int
}

// Literal is a constant value
type Literal int

// Eval returns the constant
func (l Literal) Eval(int) int { return int(l) }

// ActorLevel evaluates to the character's level
type ActorLevel struct{}

// Eval returns the level
func (ActorLevel) Eval(level int) int { return level }

// ClampedLinear evaluates level + clamp(Min, floor((level-Pivot)/Step), Max)
type ClampedLinear struct {
	Pivot int
	Step  int
	Min   int
	Max   int
}

// Eval applies the clamped linear formula
func (f ClampedLinear) Eval(level int) int {
	step := f.Step
	if step == 0 {
		step = 1
	}
	v := floorDiv(level-f.Pivot, step)
	if v < f.Min {
		v = f.Min
	}
	if v > f.Max {
		v = f.Max
	}
	return level + v
}

// LevelThreshold evaluates to Below under the cutoff level and AtOrAbove
// from the cutoff on
type LevelThreshold struct {
	Cutoff    int
	Below     int
	AtOrAbove int
}

// Eval applies the threshold
func (f LevelThreshold) Eval(level int) int {
	if level >= f.Cutoff {
		return f.AtOrAbove
	}
	return f.Below
}

var (
	clampedLinearRe  = regexp.MustCompile(`^@actor\.level\+clamp\((-?\d+),floor\(\(@actor\.level-(\d+)\)/(\d+)\),(-?\d+)\)$`)
	levelThresholdRe = regexp.MustCompile(`^ternary\(gte\(@actor\.level,(\d+)\),(-?\d+),(-?\d+)\)$`)
)

// ParseFormula parses a content value string into a Formula. Anything it
// cannot recognize parses to Literal(0); bad content must degrade to a
// no-op, never an error.
func ParseFormula(s string) Formula {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return Literal(0)
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Literal(n)
	}
	if s == "@actor.level" {
		return ActorLevel{}
	}
	if m := clampedLinearRe.FindStringSubmatch(s); m != nil {
		return ClampedLinear{
			Min:   atoi(m[1]),
			Pivot: atoi(m[2]),
			Step:  atoi(m[3]),
			Max:   atoi(m[4]),
		}
	}
	if m := levelThresholdRe.FindStringSubmatch(s); m != nil {
		return LevelThreshold{
			Cutoff:    atoi(m[1]),
			AtOrAbove: atoi(m[2]),
			Below:     atoi(m[3]),
		}
	}
	return Literal(0)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
