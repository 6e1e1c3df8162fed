package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recordRepoPG struct{ pool *pgxpool.Pool }

// NewRecordRepoPG returns the Postgres-backed record repository.
func NewRecordRepoPG(pool *pgxpool.Pool) RecordRepository {
	return &recordRepoPG{pool: pool}
}

func (r *recordRepoPG) GetDemographics(ctx context.Context, patientID uuid.UUID) (*Demographics, error) {
	var d Demographics
	err := r.pool.QueryRow(ctx, `
		SELECT id, mrn, first_name, last_name, birth_date, gender, created_at, updated_at
		FROM patient WHERE id = $1`, patientID).
		Scan(&d.ID, &d.MRN, &d.FirstName, &d.LastName, &d.BirthDate, &d.Gender, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get demographics: %w", err)
	}
	return &d, nil
}

func (r *recordRepoPG) LatestVitalSigns(ctx context.Context, patientID uuid.UUID) (*VitalSigns, error) {
	var v VitalSigns
	err := r.pool.QueryRow(ctx, `
		SELECT id, patient_id, height_cm, weight_kg, bmi, waist_cm, systolic_bp, diastolic_bp,
			body_fat_pct, measured_at, created_at
		FROM vital_signs WHERE patient_id = $1
		ORDER BY measured_at DESC NULLS LAST, created_at DESC LIMIT 1`, patientID).
		Scan(&v.ID, &v.PatientID, &v.HeightCm, &v.WeightKg, &v.BMI, &v.WaistCm, &v.SystolicBP,
			&v.DiastolicBP, &v.BodyFatPct, &v.MeasuredAt, &v.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest vital signs: %w", err)
	}
	return &v, nil
}

func (r *recordRepoPG) RecentGlucoseLabs(ctx context.Context, patientID uuid.UUID) ([]*LabResult, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, test_name, value, unit, resulted_at, created_at
		FROM lab_result
		WHERE patient_id = $1
		  AND (test_name ILIKE '%glucose%' OR test_name ILIKE '%hba1c%' OR test_name ILIKE '%gula darah%')
		ORDER BY resulted_at DESC NULLS LAST, created_at DESC LIMIT 50`, patientID)
	if err != nil {
		return nil, fmt.Errorf("recent glucose labs: %w", err)
	}
	defer rows.Close()
	var results []*LabResult
	for rows.Next() {
		var l LabResult
		if err := rows.Scan(&l.ID, &l.PatientID, &l.TestName, &l.Value, &l.Unit, &l.ResultedAt, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lab result: %w", err)
		}
		results = append(results, &l)
	}
	return results, rows.Err()
}

func (r *recordRepoPG) LatestHistoryNote(ctx context.Context, patientID uuid.UUID) (*HistoryNote, error) {
	var h HistoryNote
	err := r.pool.QueryRow(ctx, `
		SELECT id, patient_id, family_history, social_history, lifestyle, pregnancy_notes,
			dietary_habits, prior_diagnoses, recorded_at, created_at
		FROM history_note WHERE patient_id = $1
		ORDER BY recorded_at DESC LIMIT 1`, patientID).
		Scan(&h.ID, &h.PatientID, &h.FamilyHistory, &h.SocialHistory, &h.Lifestyle,
			&h.PregnancyNotes, &h.DietaryHabits, &h.PriorDiagnoses, &h.RecordedAt, &h.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest history note: %w", err)
	}
	return &h, nil
}

func (r *recordRepoPG) LatestCriticalLabs(ctx context.Context, patientID uuid.UUID) (*CriticalLabPanel, error) {
	var p CriticalLabPanel
	err := r.pool.QueryRow(ctx, `
		SELECT id, patient_id, hba1c, fasting_insulin, c_peptide, total_cholesterol, triglycerides,
			hdl, ldl, creatinine, egfr, alt, ast, tsh, crp, vitamin_d, ferritin, drawn_at, created_at
		FROM critical_lab_panel WHERE patient_id = $1
		ORDER BY drawn_at DESC NULLS LAST, created_at DESC LIMIT 1`, patientID).
		Scan(&p.ID, &p.PatientID, &p.HbA1c, &p.FastingInsulin, &p.CPeptide, &p.TotalChol,
			&p.Triglycerides, &p.HDL, &p.LDL, &p.Creatinine, &p.EGFR, &p.ALT, &p.AST,
			&p.TSH, &p.CRP, &p.VitaminD, &p.Ferritin, &p.DrawnAt, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest critical labs: %w", err)
	}
	return &p, nil
}

func (r *recordRepoPG) LatestNutrition(ctx context.Context, patientID uuid.UUID) (*NutritionAssessment, error) {
	var n NutritionAssessment
	err := r.pool.QueryRow(ctx, `
		SELECT id, patient_id, daily_calories, protein_g, carbs_g, fat_g, sugar_g, sodium_mg,
			fiber_g, assessed_at, created_at
		FROM nutrition_assessment WHERE patient_id = $1
		ORDER BY assessed_at DESC NULLS LAST, created_at DESC LIMIT 1`, patientID).
		Scan(&n.ID, &n.PatientID, &n.DailyCalories, &n.ProteinG, &n.CarbsG, &n.FatG,
			&n.SugarG, &n.SodiumMg, &n.FiberG, &n.AssessedAt, &n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest nutrition assessment: %w", err)
	}
	return &n, nil
}

func (r *recordRepoPG) LatestExercise(ctx context.Context, patientID uuid.UUID) (*ExerciseAssessment, error) {
	var e ExerciseAssessment
	err := r.pool.QueryRow(ctx, `
		SELECT id, patient_id, exercise_type, minutes_per_day, sessions_per_week, intensity,
			mets, vo2_max, daily_steps, assessed_at, created_at
		FROM exercise_assessment WHERE patient_id = $1
		ORDER BY assessed_at DESC NULLS LAST, created_at DESC LIMIT 1`, patientID).
		Scan(&e.ID, &e.PatientID, &e.ExerciseType, &e.MinutesPerDay, &e.SessionsPerWeek,
			&e.Intensity, &e.METs, &e.VO2Max, &e.DailySteps, &e.AssessedAt, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest exercise assessment: %w", err)
	}
	return &e, nil
}
