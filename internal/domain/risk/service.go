package risk

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/diabrisk/diabrisk/internal/domain/patient"
)

// BundleSource supplies the raw record bundle for a patient. Satisfied by
// patient.BundleFetcher.
type BundleSource interface {
	Fetch(ctx context.Context, patientID uuid.UUID) (*patient.Bundle, error)
}

// Service runs the assessment pipeline: fetch bundle, project profile,
// score, classify, plan, persist. The pipeline stages are pure; the service
// owns the only I/O.
type Service struct {
	bundles     BundleSource
	assessments AssessmentRepository
	projector   *Projector
	logger      zerolog.Logger
	now         func() time.Time
}

func NewService(bundles BundleSource, assessments AssessmentRepository, logger zerolog.Logger) *Service {
	return &Service{
		bundles:     bundles,
		assessments: assessments,
		projector:   NewProjector(),
		logger:      logger,
		now:         time.Now,
	}
}

// Assess runs one full assessment for a patient and appends the result to
// the history. It fails with patient.ErrNotFound when the patient does not
// exist; every other missing input degrades to a default and still scores.
func (s *Service) Assess(ctx context.Context, patientID uuid.UUID) (*Assessment, error) {
	bundle, err := s.bundles.Fetch(ctx, patientID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	profile := s.projector.Project(bundle, now)
	score, factors := Score(profile)
	cls := Classify(score)
	recommendations, nextScreening := Plan(cls.Level, profile, now)

	a := &Assessment{
		PatientID:           patientID,
		RiskScore:           score,
		RiskLevel:           cls.Level,
		RiskPercentage:      cls.Percentage,
		ContributingFactors: factors,
		Recommendations:     recommendations,
		NextScreeningDate:   nextScreening,
		UrgencyLevel:        cls.Urgency,
		AssessedAt:          now,
	}

	if err := s.assessments.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("persist assessment: %w", err)
	}

	s.logger.Info().
		Str("patient_id", patientID.String()).
		Int("risk_score", score).
		Str("risk_level", string(cls.Level)).
		Str("urgency", string(cls.Urgency)).
		Int("factors", len(factors)).
		Msg("risk assessment completed")

	return a, nil
}

// BatchResult is the outcome of one patient within a bulk run.
type BatchResult struct {
	PatientID  uuid.UUID   `json:"patient_id"`
	Assessment *Assessment `json:"assessment,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// batchWorkers bounds concurrent assessments within one bulk request.
const batchWorkers = 8

// AssessMany assesses each patient independently. One patient's failure is
// recorded in its slot and never aborts the others.
func (s *Service) AssessMany(ctx context.Context, patientIDs []uuid.UUID) []BatchResult {
	results := make([]BatchResult, len(patientIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)
	for i, id := range patientIDs {
		i, id := i, id
		g.Go(func() error {
			a, err := s.Assess(gctx, id)
			if err != nil {
				results[i] = BatchResult{PatientID: id, Error: err.Error()}
				return nil
			}
			results[i] = BatchResult{PatientID: id, Assessment: a}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// GetAssessment returns one stored assessment.
func (s *Service) GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return s.assessments.GetByID(ctx, id)
}

// GetAssessmentByFHIRID returns one stored assessment by its FHIR id.
func (s *Service) GetAssessmentByFHIRID(ctx context.Context, fhirID string) (*Assessment, error) {
	return s.assessments.GetByFHIRID(ctx, fhirID)
}

// ListAssessmentsByPatient returns a page of a patient's screening history,
// newest first.
func (s *Service) ListAssessmentsByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	return s.assessments.ListByPatient(ctx, patientID, limit, offset)
}

// ListAssessments returns a page across all patients, newest first.
func (s *Service) ListAssessments(ctx context.Context, limit, offset int) ([]*Assessment, int, error) {
	return s.assessments.List(ctx, limit, offset)
}
