package risk

// Level is the ordinal risk level derived from the composite score.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
	LevelVeryHigh Level = "very_high"
)

// Urgency is the coarse triage tier attached to a risk level.
type Urgency string

const (
	UrgencyRoutine   Urgency = "routine"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyImmediate Urgency = "immediate"
)

// Classification carries the level, its fixed risk percentage, and the
// urgency tier. The percentage is a per-level lookup, not a calibrated
// probability.
type Classification struct {
	Level      Level
	Percentage int
	Urgency    Urgency
}

// Classify maps a composite score onto its classification. Thresholds are
// evaluated high to low with inclusive lower bounds; first match wins.
func Classify(score int) Classification {
	switch {
	case score >= 70:
		return Classification{Level: LevelVeryHigh, Percentage: 50, Urgency: UrgencyImmediate}
	case score >= 50:
		return Classification{Level: LevelHigh, Percentage: 25, Urgency: UrgencyUrgent}
	case score >= 30:
		return Classification{Level: LevelModerate, Percentage: 10, Urgency: UrgencyRoutine}
	default:
		return Classification{Level: LevelLow, Percentage: 2, Urgency: UrgencyRoutine}
	}
}
