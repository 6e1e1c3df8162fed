package risk

import (
	"strings"
	"time"

	"github.com/diabrisk/diabrisk/internal/domain/patient"
)

// Projector maps a raw record bundle onto a normalized Profile. Every
// missing or malformed optional input degrades to its documented default;
// the only fatal condition is an absent demographic record, which the bundle
// fetch has already rejected.
type Projector struct{}

func NewProjector() *Projector {
	return &Projector{}
}

// Project builds the risk-factor profile for the bundle as of now. The
// caller supplies now so that age and screening-date arithmetic is
// reproducible under test.
func (pr *Projector) Project(b *patient.Bundle, now time.Time) *Profile {
	p := &Profile{
		Gender:           normalizeGender(b.Demographics.Gender),
		PhysicalActivity: ActivityLow,
		Alcohol:          AlcoholNone,
		SystolicBP:       120,
		DiastolicBP:      80,
	}

	if b.Demographics.BirthDate != nil {
		p.Age = yearsBetween(*b.Demographics.BirthDate, now)
	}

	pr.projectVitals(b.Vitals, p)
	pr.projectLabs(b.GlucoseLabs, p)
	pr.projectHistory(b.History, p)
	pr.projectCriticalLabs(b.CriticalLabs, p)
	pr.projectNutrition(b.Nutrition, p)
	pr.projectExercise(b.Exercise, p)

	return p
}

// yearsBetween counts whole years, decrementing when the current month/day
// precedes the birthday this year.
func yearsBetween(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

func normalizeGender(g *string) Gender {
	if g == nil {
		return GenderMale
	}
	switch strings.ToLower(strings.TrimSpace(*g)) {
	case "female", "f", "perempuan", "wanita":
		return GenderFemale
	default:
		return GenderMale
	}
}

func (pr *Projector) projectVitals(v *patient.VitalSigns, p *Profile) {
	if v == nil {
		return
	}
	// Preferred BMI: recompute from weight and height, falling back to the
	// stored value, then to zero.
	if v.WeightKg != nil && v.HeightCm != nil && *v.HeightCm > 0 {
		h := *v.HeightCm / 100
		p.BMI = *v.WeightKg / (h * h)
	} else if v.BMI != nil {
		p.BMI = *v.BMI
	}
	if v.SystolicBP != nil {
		p.SystolicBP = *v.SystolicBP
	}
	if v.DiastolicBP != nil {
		p.DiastolicBP = *v.DiastolicBP
	}
	p.WaistCircumference = v.WaistCm
	p.BodyFatPct = v.BodyFatPct
}

// projectLabs scans the glucose-like lab list for the first numeric match of
// each target substring.
func (pr *Projector) projectLabs(labs []*patient.LabResult, p *Profile) {
	for _, lab := range labs {
		if lab == nil || lab.Value == nil {
			continue
		}
		name := strings.ToLower(lab.TestName)
		switch {
		case p.FastingGlucose == nil && strings.Contains(name, "glucose"):
			p.FastingGlucose = lab.Value
		case p.FastingGlucose == nil && strings.Contains(name, "gula darah"):
			p.FastingGlucose = lab.Value
		case p.HbA1c == nil && strings.Contains(name, "hba1c"):
			p.HbA1c = lab.Value
		}
	}
}

func (pr *Projector) projectHistory(h *patient.HistoryNote, p *Profile) {
	if h == nil {
		return
	}
	if h.FamilyHistory != nil {
		p.FamilyHistoryDiabetes = diabetesTerms.Matches(*h.FamilyHistory)
		p.FamilyHistoryHypertension = hypertensionTerms.Matches(*h.FamilyHistory)
	}
	if h.SocialHistory != nil {
		p.Smoking = smokingTerms.Matches(*h.SocialHistory)
		if outcome, ok := alcoholTerms.Classify(*h.SocialHistory); ok {
			p.Alcohol = AlcoholUse(outcome)
		}
	}
	if h.Lifestyle != nil {
		if outcome, ok := activityTerms.Classify(*h.Lifestyle); ok {
			p.PhysicalActivity = ActivityLevel(outcome)
		}
		p.SleepHours = ExtractSleepHours(*h.Lifestyle)
		if outcome, ok := sleepQualityTerms.Classify(*h.Lifestyle); ok {
			q := sleepQualityBuckets[outcome]
			p.SleepQuality = &q
		}
		if outcome, ok := stressTerms.Classify(*h.Lifestyle); ok {
			s := stressBuckets[outcome]
			p.StressLevel = &s
		}
		if depressionTerms.Matches(*h.Lifestyle) {
			// Above the screening threshold; a structured instrument score
			// would replace this bucket if one were recorded.
			d := 12
			p.DepressionScore = &d
		}
	}
	if h.PregnancyNotes != nil && p.Gender == GenderFemale {
		if gestationalTerms.Matches(*h.PregnancyNotes) {
			v := true
			p.GestationalDiabetes = &v
		}
		if pcosTerms.Matches(*h.PregnancyNotes) {
			v := true
			p.PCOS = &v
		}
	}
	if h.PriorDiagnoses != nil {
		p.Hypertension = hypertensionTerms.Matches(*h.PriorDiagnoses)
		p.Dyslipidemia = dyslipidemiaTerms.Matches(*h.PriorDiagnoses)
		p.CardiovascularDisease = cardiovascularTerms.Matches(*h.PriorDiagnoses)
	}
}

// projectCriticalLabs copies the structured panel through. HbA1c here
// overwrites any history-derived value: last write by fetch order wins.
func (pr *Projector) projectCriticalLabs(c *patient.CriticalLabPanel, p *Profile) {
	if c == nil {
		return
	}
	if c.HbA1c != nil {
		p.HbA1c = c.HbA1c
	}
	p.FastingInsulin = c.FastingInsulin
	p.CPeptide = c.CPeptide
	p.TotalCholesterol = c.TotalChol
	p.Triglycerides = c.Triglycerides
	p.HDL = c.HDL
	p.LDL = c.LDL
	p.Creatinine = c.Creatinine
	p.EGFR = c.EGFR
	p.ALT = c.ALT
	p.AST = c.AST
	p.TSH = c.TSH
	p.CRP = c.CRP
	p.VitaminD = c.VitaminD
	p.Ferritin = c.Ferritin
}

func (pr *Projector) projectNutrition(n *patient.NutritionAssessment, p *Profile) {
	if n == nil {
		return
	}
	p.DailyCalories = n.DailyCalories
	p.SugarIntakeG = n.SugarG
	p.SodiumIntakeMg = n.SodiumMg
	p.FiberIntakeG = n.FiberG
}

func (pr *Projector) projectExercise(e *patient.ExerciseAssessment, p *Profile) {
	if e == nil {
		return
	}
	p.ExerciseType = e.ExerciseType
	p.ExerciseMinutesPerDay = e.MinutesPerDay
	p.ExerciseSessionsPerWeek = e.SessionsPerWeek
	if e.Intensity != nil {
		intensity := strings.ToLower(strings.TrimSpace(*e.Intensity))
		p.ExerciseIntensity = &intensity
	}
	p.METs = e.METs
	p.VO2Max = e.VO2Max
	p.DailySteps = e.DailySteps
}
