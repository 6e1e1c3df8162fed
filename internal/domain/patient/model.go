package patient

import (
	"time"

	"github.com/google/uuid"
)

// Demographics maps to the patient table. It is the only record whose
// absence is fatal to an assessment.
type Demographics struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	MRN       string     `db:"mrn" json:"mrn"`
	FirstName string     `db:"first_name" json:"first_name"`
	LastName  string     `db:"last_name" json:"last_name"`
	BirthDate *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	Gender    *string    `db:"gender" json:"gender,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// VitalSigns maps to the vital_signs table. One row per measurement session;
// the bundle carries only the most recent row.
type VitalSigns struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	PatientID   uuid.UUID  `db:"patient_id" json:"patient_id"`
	HeightCm    *float64   `db:"height_cm" json:"height_cm,omitempty"`
	WeightKg    *float64   `db:"weight_kg" json:"weight_kg,omitempty"`
	BMI         *float64   `db:"bmi" json:"bmi,omitempty"`
	WaistCm     *float64   `db:"waist_cm" json:"waist_cm,omitempty"`
	SystolicBP  *int       `db:"systolic_bp" json:"systolic_bp,omitempty"`
	DiastolicBP *int       `db:"diastolic_bp" json:"diastolic_bp,omitempty"`
	BodyFatPct  *float64   `db:"body_fat_pct" json:"body_fat_pct,omitempty"`
	MeasuredAt  *time.Time `db:"measured_at" json:"measured_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// LabResult maps to the lab_result table. TestName is free-form; callers
// match on substrings ("glucose", "hba1c") rather than coded values.
type LabResult struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	PatientID  uuid.UUID  `db:"patient_id" json:"patient_id"`
	TestName   string     `db:"test_name" json:"test_name"`
	Value      *float64   `db:"value" json:"value,omitempty"`
	Unit       *string    `db:"unit" json:"unit,omitempty"`
	ResultedAt *time.Time `db:"resulted_at" json:"resulted_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// HistoryNote maps to the history_note table: the free-text intake blocks a
// clinician records per visit. All fields are unstructured prose and may be
// in English or Indonesian.
type HistoryNote struct {
	ID             uuid.UUID `db:"id" json:"id"`
	PatientID      uuid.UUID `db:"patient_id" json:"patient_id"`
	FamilyHistory  *string   `db:"family_history" json:"family_history,omitempty"`
	SocialHistory  *string   `db:"social_history" json:"social_history,omitempty"`
	Lifestyle      *string   `db:"lifestyle" json:"lifestyle,omitempty"`
	PregnancyNotes *string   `db:"pregnancy_notes" json:"pregnancy_notes,omitempty"`
	DietaryHabits  *string   `db:"dietary_habits" json:"dietary_habits,omitempty"`
	PriorDiagnoses *string   `db:"prior_diagnoses" json:"prior_diagnoses,omitempty"`
	RecordedAt     time.Time `db:"recorded_at" json:"recorded_at"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// CriticalLabPanel maps to the critical_lab_panel table: the structured
// secondary panel drawn at screening visits. Every analyte is optional.
type CriticalLabPanel struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	PatientID      uuid.UUID  `db:"patient_id" json:"patient_id"`
	HbA1c          *float64   `db:"hba1c" json:"hba1c,omitempty"`
	FastingInsulin *float64   `db:"fasting_insulin" json:"fasting_insulin,omitempty"`
	CPeptide       *float64   `db:"c_peptide" json:"c_peptide,omitempty"`
	TotalChol      *float64   `db:"total_cholesterol" json:"total_cholesterol,omitempty"`
	Triglycerides  *float64   `db:"triglycerides" json:"triglycerides,omitempty"`
	HDL            *float64   `db:"hdl" json:"hdl,omitempty"`
	LDL            *float64   `db:"ldl" json:"ldl,omitempty"`
	Creatinine     *float64   `db:"creatinine" json:"creatinine,omitempty"`
	EGFR           *float64   `db:"egfr" json:"egfr,omitempty"`
	ALT            *float64   `db:"alt" json:"alt,omitempty"`
	AST            *float64   `db:"ast" json:"ast,omitempty"`
	TSH            *float64   `db:"tsh" json:"tsh,omitempty"`
	CRP            *float64   `db:"crp" json:"crp,omitempty"`
	VitaminD       *float64   `db:"vitamin_d" json:"vitamin_d,omitempty"`
	Ferritin       *float64   `db:"ferritin" json:"ferritin,omitempty"`
	DrawnAt        *time.Time `db:"drawn_at" json:"drawn_at,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// NutritionAssessment maps to the nutrition_assessment table.
type NutritionAssessment struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	PatientID     uuid.UUID  `db:"patient_id" json:"patient_id"`
	DailyCalories *float64   `db:"daily_calories" json:"daily_calories,omitempty"`
	ProteinG      *float64   `db:"protein_g" json:"protein_g,omitempty"`
	CarbsG        *float64   `db:"carbs_g" json:"carbs_g,omitempty"`
	FatG          *float64   `db:"fat_g" json:"fat_g,omitempty"`
	SugarG        *float64   `db:"sugar_g" json:"sugar_g,omitempty"`
	SodiumMg      *float64   `db:"sodium_mg" json:"sodium_mg,omitempty"`
	FiberG        *float64   `db:"fiber_g" json:"fiber_g,omitempty"`
	AssessedAt    *time.Time `db:"assessed_at" json:"assessed_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// ExerciseAssessment maps to the exercise_assessment table.
type ExerciseAssessment struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	PatientID       uuid.UUID  `db:"patient_id" json:"patient_id"`
	ExerciseType    *string    `db:"exercise_type" json:"exercise_type,omitempty"`
	MinutesPerDay   *float64   `db:"minutes_per_day" json:"minutes_per_day,omitempty"`
	SessionsPerWeek *float64   `db:"sessions_per_week" json:"sessions_per_week,omitempty"`
	Intensity       *string    `db:"intensity" json:"intensity,omitempty"`
	METs            *float64   `db:"mets" json:"mets,omitempty"`
	VO2Max          *float64   `db:"vo2_max" json:"vo2_max,omitempty"`
	DailySteps      *float64   `db:"daily_steps" json:"daily_steps,omitempty"`
	AssessedAt      *time.Time `db:"assessed_at" json:"assessed_at,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// Bundle is everything the risk engine reads for one patient. Demographics
// is always non-nil; every other field is nil/empty when the patient has no
// such record, never an error.
type Bundle struct {
	Demographics *Demographics
	Vitals       *VitalSigns
	GlucoseLabs  []*LabResult
	History      *HistoryNote
	CriticalLabs *CriticalLabPanel
	Nutrition    *NutritionAssessment
	Exercise     *ExerciseAssessment
}
