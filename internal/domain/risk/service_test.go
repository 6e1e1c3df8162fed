package risk

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/diabrisk/diabrisk/internal/domain/patient"
)

type mockBundleSource struct {
	bundles map[uuid.UUID]*patient.Bundle
}

func (m *mockBundleSource) Fetch(_ context.Context, patientID uuid.UUID) (*patient.Bundle, error) {
	b, ok := m.bundles[patientID]
	if !ok {
		return nil, patient.ErrNotFound
	}
	return b, nil
}

type mockAssessmentRepo struct {
	mu        sync.Mutex
	items     []*Assessment
	createErr error
}

func (m *mockAssessmentRepo) Create(_ context.Context, a *Assessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	a.ID = uuid.New()
	if a.FHIRID == "" {
		a.FHIRID = a.ID.String()
	}
	a.CreatedAt = time.Now()
	m.items = append(m.items, a)
	return nil
}

func (m *mockAssessmentRepo) GetByID(_ context.Context, id uuid.UUID) (*Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.items {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, ErrAssessmentNotFound
}

func (m *mockAssessmentRepo) GetByFHIRID(_ context.Context, fhirID string) (*Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.items {
		if a.FHIRID == fhirID {
			return a, nil
		}
	}
	return nil, ErrAssessmentNotFound
}

func (m *mockAssessmentRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []*Assessment
	for _, a := range m.items {
		if a.PatientID == patientID {
			matched = append(matched, a)
		}
	}
	return page(matched, limit, offset), len(matched), nil
}

func (m *mockAssessmentRepo) List(_ context.Context, limit, offset int) ([]*Assessment, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return page(m.items, limit, offset), len(m.items), nil
}

func page(items []*Assessment, limit, offset int) []*Assessment {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

var serviceNow = time.Date(2026, 4, 10, 8, 30, 0, 0, time.UTC)

func newTestService(bundles map[uuid.UUID]*patient.Bundle, repo *mockAssessmentRepo) *Service {
	svc := NewService(&mockBundleSource{bundles: bundles}, repo, zerolog.Nop())
	svc.now = func() time.Time { return serviceNow }
	return svc
}

func highRiskBundle() *patient.Bundle {
	birth := time.Date(1956, 1, 15, 0, 0, 0, 0, time.UTC)
	gender := "male"
	return &patient.Bundle{
		Demographics: &patient.Demographics{ID: uuid.New(), BirthDate: &birth, Gender: &gender},
		Vitals: &patient.VitalSigns{
			HeightCm: f64(170), WeightKg: f64(92.5),
			SystolicBP: i(150), DiastolicBP: i(95),
		},
		GlucoseLabs: []*patient.LabResult{
			{TestName: "Fasting Glucose", Value: f64(130)},
			{TestName: "HbA1c", Value: f64(7.0)},
		},
		History: &patient.HistoryNote{
			FamilyHistory:  s("Mother has diabetes"),
			SocialHistory:  s("Current smoker"),
			PriorDiagnoses: s("Hypertension, dyslipidemia"),
		},
	}
}

func TestAssess_HighRiskPatient(t *testing.T) {
	patientID := uuid.New()
	repo := &mockAssessmentRepo{}
	svc := newTestService(map[uuid.UUID]*patient.Bundle{patientID: highRiskBundle()}, repo)

	a, err := svc.Assess(context.Background(), patientID)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if a.RiskScore != 100 {
		t.Errorf("score = %d, want clamped 100", a.RiskScore)
	}
	if a.RiskLevel != LevelVeryHigh || a.RiskPercentage != 50 || a.UrgencyLevel != UrgencyImmediate {
		t.Errorf("classification = %s/%d/%s, want very_high/50/immediate",
			a.RiskLevel, a.RiskPercentage, a.UrgencyLevel)
	}
	if !a.AssessedAt.Equal(serviceNow) {
		t.Errorf("assessed_at = %s, want injected clock %s", a.AssessedAt, serviceNow)
	}
	if want := serviceNow.AddDate(0, 0, 90); !a.NextScreeningDate.Equal(want) {
		t.Errorf("next screening = %s, want %s", a.NextScreeningDate, want)
	}
	if len(a.ContributingFactors) == 0 || len(a.Recommendations) == 0 {
		t.Error("factors and recommendations must be populated")
	}
	if a.ID == uuid.Nil || a.FHIRID == "" {
		t.Error("persisted assessment missing identifiers")
	}
	if len(repo.items) != 1 {
		t.Fatalf("repo rows = %d, want 1", len(repo.items))
	}
}

func TestAssess_DemographicsOnlyPatient(t *testing.T) {
	patientID := uuid.New()
	birth := time.Date(2001, 2, 1, 0, 0, 0, 0, time.UTC)
	gender := "female"
	bundle := &patient.Bundle{
		Demographics: &patient.Demographics{ID: patientID, BirthDate: &birth, Gender: &gender},
	}
	repo := &mockAssessmentRepo{}
	svc := newTestService(map[uuid.UUID]*patient.Bundle{patientID: bundle}, repo)

	a, err := svc.Assess(context.Background(), patientID)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	// Only the defaulted low-activity rule fires: defaulted vitals read as
	// normal and absent labs do not score.
	if a.RiskScore != 10 {
		t.Errorf("score = %d, want 10", a.RiskScore)
	}
	if a.RiskLevel != LevelLow || a.RiskPercentage != 2 || a.UrgencyLevel != UrgencyRoutine {
		t.Errorf("classification = %s/%d/%s, want low/2/routine",
			a.RiskLevel, a.RiskPercentage, a.UrgencyLevel)
	}
	if want := serviceNow.AddDate(0, 0, 1080); !a.NextScreeningDate.Equal(want) {
		t.Errorf("next screening = %s, want %s (1080 days out)", a.NextScreeningDate, want)
	}
}

func TestAssess_UnknownPatient(t *testing.T) {
	repo := &mockAssessmentRepo{}
	svc := newTestService(map[uuid.UUID]*patient.Bundle{}, repo)

	_, err := svc.Assess(context.Background(), uuid.New())
	if !errors.Is(err, patient.ErrNotFound) {
		t.Fatalf("err = %v, want patient.ErrNotFound", err)
	}
	if len(repo.items) != 0 {
		t.Error("nothing should be persisted for an unknown patient")
	}
}

func TestAssess_PersistFailureSurfaces(t *testing.T) {
	patientID := uuid.New()
	repo := &mockAssessmentRepo{createErr: errors.New("connection reset")}
	svc := newTestService(map[uuid.UUID]*patient.Bundle{patientID: highRiskBundle()}, repo)

	if _, err := svc.Assess(context.Background(), patientID); err == nil {
		t.Fatal("expected persist error to propagate")
	}
}

func TestAssess_RepeatAppendsHistory(t *testing.T) {
	patientID := uuid.New()
	repo := &mockAssessmentRepo{}
	svc := newTestService(map[uuid.UUID]*patient.Bundle{patientID: highRiskBundle()}, repo)

	first, err := svc.Assess(context.Background(), patientID)
	if err != nil {
		t.Fatalf("first Assess: %v", err)
	}
	second, err := svc.Assess(context.Background(), patientID)
	if err != nil {
		t.Fatalf("second Assess: %v", err)
	}
	if first.ID == second.ID {
		t.Error("re-assessment must append a new row, not reuse the old one")
	}
	if first.RiskScore != second.RiskScore {
		t.Errorf("identical inputs scored %d then %d", first.RiskScore, second.RiskScore)
	}
	items, total, err := svc.ListAssessmentsByPatient(context.Background(), patientID, 20, 0)
	if err != nil {
		t.Fatalf("ListAssessmentsByPatient: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("history = %d items (total %d), want 2", len(items), total)
	}
}

func TestAssessMany_IsolatesFailures(t *testing.T) {
	known := uuid.New()
	unknown := uuid.New()
	repo := &mockAssessmentRepo{}
	svc := newTestService(map[uuid.UUID]*patient.Bundle{known: highRiskBundle()}, repo)

	results := svc.AssessMany(context.Background(), []uuid.UUID{known, unknown, known})
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if results[0].PatientID != known || results[0].Assessment == nil || results[0].Error != "" {
		t.Errorf("slot 0 = %+v, want successful assessment for %s", results[0], known)
	}
	if results[1].PatientID != unknown || results[1].Assessment != nil || results[1].Error == "" {
		t.Errorf("slot 1 = %+v, want an error for the unknown patient", results[1])
	}
	if results[2].Assessment == nil {
		t.Errorf("slot 2 = %+v, want success; one failure must not abort the rest", results[2])
	}
	if len(repo.items) != 2 {
		t.Errorf("repo rows = %d, want 2", len(repo.items))
	}
}

func TestAssessMany_ManyPatientsPreserveOrder(t *testing.T) {
	bundles := make(map[uuid.UUID]*patient.Bundle)
	var ids []uuid.UUID
	for i := 0; i < 25; i++ {
		id := uuid.New()
		bundles[id] = highRiskBundle()
		ids = append(ids, id)
	}
	svc := newTestService(bundles, &mockAssessmentRepo{})

	results := svc.AssessMany(context.Background(), ids)
	for i, r := range results {
		if r.PatientID != ids[i] {
			t.Fatalf("slot %d holds %s, want %s", i, r.PatientID, ids[i])
		}
		if r.Assessment == nil {
			t.Fatalf("slot %d has no assessment", i)
		}
	}
}

func TestGetAssessment_NotFound(t *testing.T) {
	svc := newTestService(map[uuid.UUID]*patient.Bundle{}, &mockAssessmentRepo{})
	if _, err := svc.GetAssessment(context.Background(), uuid.New()); !errors.Is(err, ErrAssessmentNotFound) {
		t.Fatalf("err = %v, want ErrAssessmentNotFound", err)
	}
}
