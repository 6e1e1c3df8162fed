package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the demographic record for a patient does not
// exist. Repositories return it only from GetDemographics; the optional
// record fetches return (nil, nil) instead.
var ErrNotFound = errors.New("patient not found")

// RecordRepository exposes the read-only record fetches the risk engine
// depends on. Each method returns the latest record of its kind, or nil when
// the patient has none.
type RecordRepository interface {
	GetDemographics(ctx context.Context, patientID uuid.UUID) (*Demographics, error)
	LatestVitalSigns(ctx context.Context, patientID uuid.UUID) (*VitalSigns, error)
	RecentGlucoseLabs(ctx context.Context, patientID uuid.UUID) ([]*LabResult, error)
	LatestHistoryNote(ctx context.Context, patientID uuid.UUID) (*HistoryNote, error)
	LatestCriticalLabs(ctx context.Context, patientID uuid.UUID) (*CriticalLabPanel, error)
	LatestNutrition(ctx context.Context, patientID uuid.UUID) (*NutritionAssessment, error)
	LatestExercise(ctx context.Context, patientID uuid.UUID) (*ExerciseAssessment, error)
}
