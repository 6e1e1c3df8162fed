package risk

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAssessmentNotFound is returned when an assessment row does not exist.
var ErrAssessmentNotFound = errors.New("assessment not found")

type assessmentRepoPG struct{ pool *pgxpool.Pool }

func NewAssessmentRepoPG(pool *pgxpool.Pool) AssessmentRepository {
	return &assessmentRepoPG{pool: pool}
}

const assessmentCols = `id, fhir_id, patient_id, risk_score, risk_level, risk_percentage,
	contributing_factors, recommendations, next_screening_date, urgency_level,
	assessed_at, created_at`

func scanAssessment(row pgx.Row) (*Assessment, error) {
	var a Assessment
	err := row.Scan(&a.ID, &a.FHIRID, &a.PatientID, &a.RiskScore, &a.RiskLevel, &a.RiskPercentage,
		&a.ContributingFactors, &a.Recommendations, &a.NextScreeningDate, &a.UrgencyLevel,
		&a.AssessedAt, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAssessmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan assessment: %w", err)
	}
	return &a, nil
}

func (r *assessmentRepoPG) Create(ctx context.Context, a *Assessment) error {
	a.ID = uuid.New()
	if a.FHIRID == "" {
		a.FHIRID = a.ID.String()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO risk_assessment (id, fhir_id, patient_id, risk_score, risk_level,
			risk_percentage, contributing_factors, recommendations, next_screening_date,
			urgency_level, assessed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		a.ID, a.FHIRID, a.PatientID, a.RiskScore, a.RiskLevel,
		a.RiskPercentage, a.ContributingFactors, a.Recommendations, a.NextScreeningDate,
		a.UrgencyLevel, a.AssessedAt)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return scanAssessment(r.pool.QueryRow(ctx,
		`SELECT `+assessmentCols+` FROM risk_assessment WHERE id = $1`, id))
}

func (r *assessmentRepoPG) GetByFHIRID(ctx context.Context, fhirID string) (*Assessment, error) {
	return scanAssessment(r.pool.QueryRow(ctx,
		`SELECT `+assessmentCols+` FROM risk_assessment WHERE fhir_id = $1`, fhirID))
}

func (r *assessmentRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM risk_assessment WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count assessments: %w", err)
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+assessmentCols+` FROM risk_assessment WHERE patient_id = $1
		ORDER BY assessed_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()
	items, err := collectAssessments(rows)
	return items, total, err
}

func (r *assessmentRepoPG) List(ctx context.Context, limit, offset int) ([]*Assessment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM risk_assessment`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count assessments: %w", err)
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+assessmentCols+` FROM risk_assessment
		ORDER BY assessed_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()
	items, err := collectAssessments(rows)
	return items, total, err
}

func collectAssessments(rows pgx.Rows) ([]*Assessment, error) {
	var items []*Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
