package risk

// Gender is the normalized administrative gender used by the scoring rules.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel is the normalized physical-activity category.
type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
)

// AlcoholUse is the normalized alcohol-consumption category.
type AlcoholUse string

const (
	AlcoholNone     AlcoholUse = "none"
	AlcoholLight    AlcoholUse = "light"
	AlcoholModerate AlcoholUse = "moderate"
	AlcoholHeavy    AlcoholUse = "heavy"
)

// Profile is the normalized risk-factor snapshot built fresh per assessment.
// A nil pointer means "not evaluated" and never scores; only demographics,
// BMI and blood pressure carry mandatory or defaulted values. Blood pressure
// defaults to 120/80 when unmeasured, which downstream scoring treats as
// normal rather than as missing.
type Profile struct {
	// Demographics
	Age    int
	Gender Gender

	// Anthropometrics
	BMI                float64
	WaistCircumference *float64
	BodyFatPct         *float64

	// Family history
	FamilyHistoryDiabetes     bool
	FamilyHistoryHypertension bool

	// Vitals
	SystolicBP  int
	DiastolicBP int

	// Primary labs
	FastingGlucose *float64
	HbA1c          *float64

	// Secondary lab panel
	FastingInsulin   *float64
	CPeptide         *float64
	TotalCholesterol *float64
	Triglycerides    *float64
	HDL              *float64
	LDL              *float64
	Creatinine       *float64
	EGFR             *float64
	ALT              *float64
	AST              *float64
	TSH              *float64
	CRP              *float64
	VitaminD         *float64
	Ferritin         *float64

	// Lifestyle
	PhysicalActivity ActivityLevel
	Smoking          bool
	Alcohol          AlcoholUse

	// Reproductive history, meaningful only when Gender is female
	GestationalDiabetes *bool
	PCOS                *bool

	// Comorbidities
	Hypertension          bool
	Dyslipidemia          bool
	CardiovascularDisease bool

	// Psychosocial
	SleepHours      *float64
	SleepQuality    *int
	StressLevel     *int
	DepressionScore *int
	QualityOfLife   *int

	// Nutrition
	DailyCalories  *float64
	SugarIntakeG   *float64
	SodiumIntakeMg *float64
	FiberIntakeG   *float64

	// Exercise
	ExerciseType             *string
	ExerciseMinutesPerDay    *float64
	ExerciseSessionsPerWeek  *float64
	ExerciseIntensity        *string
	METs                     *float64
	VO2Max                   *float64
	DailySteps               *float64
}
