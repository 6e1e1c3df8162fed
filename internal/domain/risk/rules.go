package risk

// Rule is one immutable scoring rule: a predicate over the profile, the
// points it contributes, and the human-readable contributing-factor label
// emitted when it fires.
type Rule struct {
	Label  string
	Points int
	Match  func(*Profile) bool
}

// catalogue is the fixed, ordered rule set. Within a tiered group the rules
// carry mutually exclusive predicates in descending-threshold order, so only
// the highest matching tier fires. Evaluation order fixes the display order
// of contributing factors; the score itself is order-independent.
var catalogue = []Rule{
	// Age
	{Label: "Age 65 or older", Points: 25, Match: func(p *Profile) bool { return p.Age >= 65 }},
	{Label: "Age 45-64", Points: 15, Match: func(p *Profile) bool { return p.Age >= 45 && p.Age < 65 }},
	{Label: "Age 35-44", Points: 10, Match: func(p *Profile) bool { return p.Age >= 35 && p.Age < 45 }},

	// BMI
	{Label: "Obesity (BMI 30 or higher)", Points: 20, Match: func(p *Profile) bool { return p.BMI >= 30 }},
	{Label: "Overweight (BMI 25-29.9)", Points: 10, Match: func(p *Profile) bool { return p.BMI >= 25 && p.BMI < 30 }},

	// Blood pressure
	{Label: "Stage 2 hypertension range (140/90 or higher)", Points: 15,
		Match: func(p *Profile) bool { return p.SystolicBP >= 140 || p.DiastolicBP >= 90 }},
	{Label: "Elevated blood pressure (130/85 or higher)", Points: 8,
		Match: func(p *Profile) bool {
			if p.SystolicBP >= 140 || p.DiastolicBP >= 90 {
				return false
			}
			return p.SystolicBP >= 130 || p.DiastolicBP >= 85
		}},

	// Family history
	{Label: "Family history of diabetes", Points: 15, Match: func(p *Profile) bool { return p.FamilyHistoryDiabetes }},

	// Physical activity
	{Label: "Low physical activity", Points: 10, Match: func(p *Profile) bool { return p.PhysicalActivity == ActivityLow }},
	{Label: "Moderate physical activity", Points: 5, Match: func(p *Profile) bool { return p.PhysicalActivity == ActivityModerate }},

	// Smoking
	{Label: "Current smoker", Points: 5, Match: func(p *Profile) bool { return p.Smoking }},

	// Comorbidities
	{Label: "Diagnosed hypertension", Points: 10, Match: func(p *Profile) bool { return p.Hypertension }},
	{Label: "Dyslipidemia", Points: 10, Match: func(p *Profile) bool { return p.Dyslipidemia }},

	// Fasting glucose
	{Label: "Fasting glucose in diabetic range (126 or higher)", Points: 25,
		Match: func(p *Profile) bool { return p.FastingGlucose != nil && *p.FastingGlucose >= 126 }},
	{Label: "Impaired fasting glucose (100-125)", Points: 15,
		Match: func(p *Profile) bool { return p.FastingGlucose != nil && *p.FastingGlucose >= 100 && *p.FastingGlucose < 126 }},

	// HbA1c
	{Label: "HbA1c in diabetic range (6.5 or higher)", Points: 20,
		Match: func(p *Profile) bool { return p.HbA1c != nil && *p.HbA1c >= 6.5 }},
	{Label: "HbA1c in prediabetic range (5.7-6.4)", Points: 10,
		Match: func(p *Profile) bool { return p.HbA1c != nil && *p.HbA1c >= 5.7 && *p.HbA1c < 6.5 }},

	// Reproductive history, female only
	{Label: "History of gestational diabetes", Points: 10,
		Match: func(p *Profile) bool {
			return p.Gender == GenderFemale && p.GestationalDiabetes != nil && *p.GestationalDiabetes
		}},
	{Label: "Polycystic ovary syndrome", Points: 5,
		Match: func(p *Profile) bool { return p.Gender == GenderFemale && p.PCOS != nil && *p.PCOS }},

	// Independent secondary factors
	{Label: "High body fat percentage", Points: 8,
		Match: func(p *Profile) bool { return p.BodyFatPct != nil && *p.BodyFatPct > 30 }},
	{Label: "Poor sleep quality", Points: 5,
		Match: func(p *Profile) bool { return p.SleepQuality != nil && *p.SleepQuality < 5 }},
	{Label: "High stress level", Points: 5,
		Match: func(p *Profile) bool { return p.StressLevel != nil && *p.StressLevel > 7 }},
	{Label: "Elevated depression score", Points: 4,
		Match: func(p *Profile) bool { return p.DepressionScore != nil && *p.DepressionScore > 10 }},
	{Label: "Low quality-of-life score", Points: 3,
		Match: func(p *Profile) bool { return p.QualityOfLife != nil && *p.QualityOfLife < 50 }},
	{Label: "Elevated fasting insulin", Points: 8,
		Match: func(p *Profile) bool { return p.FastingInsulin != nil && *p.FastingInsulin > 25 }},
	{Label: "Low C-peptide", Points: 5,
		Match: func(p *Profile) bool { return p.CPeptide != nil && *p.CPeptide < 1.0 }},
	{Label: "Elevated triglycerides", Points: 4,
		Match: func(p *Profile) bool { return p.Triglycerides != nil && *p.Triglycerides > 200 }},
	{Label: "Low HDL cholesterol", Points: 3,
		Match: func(p *Profile) bool { return p.HDL != nil && *p.HDL < 40 }},
	{Label: "Elevated C-reactive protein", Points: 3,
		Match: func(p *Profile) bool { return p.CRP != nil && *p.CRP > 3.0 }},
	{Label: "Vitamin D deficiency", Points: 2,
		Match: func(p *Profile) bool { return p.VitaminD != nil && *p.VitaminD < 20 }},
	{Label: "High caloric intake", Points: 5,
		Match: func(p *Profile) bool { return p.DailyCalories != nil && *p.DailyCalories > 2500 }},
	{Label: "High sugar intake", Points: 4,
		Match: func(p *Profile) bool { return p.SugarIntakeG != nil && *p.SugarIntakeG > 50 }},
	{Label: "High sodium intake", Points: 3,
		Match: func(p *Profile) bool { return p.SodiumIntakeMg != nil && *p.SodiumIntakeMg > 2300 }},
	{Label: "Low fiber intake", Points: 3,
		Match: func(p *Profile) bool { return p.FiberIntakeG != nil && *p.FiberIntakeG < 25 }},
	{Label: "Infrequent exercise", Points: 5,
		Match: func(p *Profile) bool { return p.ExerciseSessionsPerWeek != nil && *p.ExerciseSessionsPerWeek < 3 }},
	{Label: "Low daily step count", Points: 3,
		Match: func(p *Profile) bool { return p.DailySteps != nil && *p.DailySteps < 5000 }},
	{Label: "Low exercise intensity", Points: 2,
		Match: func(p *Profile) bool { return p.ExerciseIntensity != nil && *p.ExerciseIntensity == "low" }},
}

// Catalogue returns the rule catalogue. The slice must be treated as
// read-only.
func Catalogue() []Rule {
	return catalogue
}
