package risk

import (
	"context"

	"github.com/google/uuid"
)

// AssessmentRepository persists assessment rows. Rows are append-only; there
// is no update or delete because the history is the audit trail.
type AssessmentRepository interface {
	Create(ctx context.Context, a *Assessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error)
	GetByFHIRID(ctx context.Context, fhirID string) (*Assessment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error)
	List(ctx context.Context, limit, offset int) ([]*Assessment, int, error)
}
