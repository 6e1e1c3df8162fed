package risk

import "time"

// screeningMonths is the follow-up interval per level, in 30-day months.
// The 30-day approximation mirrors the established screening schedule and
// differs from calendar-month arithmetic on purpose; switching to true
// calendar months is a behavior change, not a cleanup.
var screeningMonths = map[Level]int{
	LevelVeryHigh: 3,
	LevelHigh:     6,
	LevelModerate: 12,
	LevelLow:      36,
}

// levelRecommendations is the fixed per-level template the plan starts from.
var levelRecommendations = map[Level][]string{
	LevelVeryHigh: {
		"Schedule an appointment with a physician immediately for diagnostic evaluation",
		"Begin intensive lifestyle modification under clinical supervision",
		"Repeat fasting glucose and HbA1c testing within 2 weeks",
		"Monitor blood glucose at home daily until reviewed",
	},
	LevelHigh: {
		"Consult a physician within the next month",
		"Adopt a structured diet and exercise program",
		"Repeat laboratory screening within 3 months",
	},
	LevelModerate: {
		"Discuss diabetes prevention with your care provider at the next visit",
		"Increase weekly physical activity and review dietary habits",
	},
	LevelLow: {
		"Maintain current healthy habits",
		"Continue routine screening at the recommended interval",
	},
}

// conditional is a level-independent recommendation gated on a single
// profile predicate. A false predicate contributes nothing.
type conditional struct {
	Match func(*Profile) bool
	Text  string
}

// conditionals are appended after the level template, in fixed order.
var conditionals = []conditional{
	{
		Match: func(p *Profile) bool { return p.BMI >= 25 },
		Text:  "Work toward gradual weight loss through portion control and a balanced diet",
	},
	{
		Match: func(p *Profile) bool { return p.PhysicalActivity == ActivityLow },
		Text:  "Build up to at least 150 minutes of moderate physical activity per week",
	},
	{
		Match: func(p *Profile) bool { return p.SystolicBP >= 130 },
		Text:  "Monitor blood pressure regularly and reduce sodium intake",
	},
	{
		Match: func(p *Profile) bool { return p.Smoking },
		Text:  "Seek support for smoking cessation",
	},
	{
		Match: func(p *Profile) bool { return p.FamilyHistoryDiabetes },
		Text:  "Encourage first-degree relatives to undergo diabetes screening",
	},
}

// Plan derives the recommendation list and next screening date for a level
// and profile. Deterministic: a fixed (level, profile) pair always yields
// the same list.
func Plan(level Level, p *Profile, now time.Time) ([]string, time.Time) {
	base := levelRecommendations[level]
	recs := make([]string, 0, len(base)+len(conditionals))
	recs = append(recs, base...)
	for _, c := range conditionals {
		if c.Match(p) {
			recs = append(recs, c.Text)
		}
	}
	next := now.AddDate(0, 0, screeningMonths[level]*30)
	return recs, next
}
