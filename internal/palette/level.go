package palette

import "image/color"

// Level grades a gauge reading against its maximum.
type Level int

const (
	LevelGood Level = iota
	LevelModerate
	LevelPoor
)

func (l Level) String() string {
	switch l {
	case LevelGood:
		return "good"
	case LevelModerate:
		return "moderate"
	default:
		return "poor"
	}
}

// LevelFor grades value as a share of limit: under 30% is good, under 70% is
// moderate, anything else is poor. A non-positive limit grades as poor.
func LevelFor(value, limit float64) Level {
	if limit <= 0 {
		return LevelPoor
	}
	pct := value / limit * 100
	switch {
	case pct < 30:
		return LevelGood
	case pct < 70:
		return LevelModerate
	default:
		return LevelPoor
	}
}

// Color returns the gauge color of the level.
func (l Level) Color() color.RGBA {
	switch l {
	case LevelGood:
		return toRGBA(green)
	case LevelModerate:
		return toRGBA(yellow)
	default:
		return toRGBA(red)
	}
}
