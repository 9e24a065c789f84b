package shared

// Rank is a proficiency rank on the engine's 0/2/4/6/8 scale. The spacing
// matches the rank bonus added to checks, so ranks can be folded straight
// into modifiers.
type Rank int

const (
	RankUntrained Rank = 0
	RankTrained   Rank = 2
	RankExpert    Rank = 4
	RankMaster    Rank = 6
	RankLegendary Rank = 8
)

// String returns the rank name
func (r Rank) String() string {
	switch {
	case r >= RankLegendary:
		return "legendary"
	case r >= RankMaster:
		return "master"
	case r >= RankExpert:
		return "expert"
	case r >= RankTrained:
		return "trained"
	default:
		return "untrained"
	}
}

// MaxRank returns the higher of two ranks. Rank-setting stages always keep
// the stronger source, never downgrade.
func MaxRank(a, b Rank) Rank {
	if a >= b {
		return a
	}
	return b
}

// NormalizeSourceRank converts a rank expressed on the content sources'
// 0..4 scale (untrained..legendary) to the engine scale by doubling.
// Out-of-range values clamp to the nearest valid rank.
func NormalizeSourceRank(v int) Rank {
	if v <= 0 {
		return RankUntrained
	}
	if v > 4 {
		v = 4
	}
	return Rank(v * 2)
}
