package risk

import (
	"time"

	"github.com/google/uuid"

	"github.com/diabrisk/diabrisk/internal/platform/fhir"
)

// Assessment maps to the risk_assessment table. One immutable row per run;
// re-assessing a patient appends rather than updates, so the table doubles
// as the screening history.
type Assessment struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	FHIRID              string    `db:"fhir_id" json:"fhir_id"`
	PatientID           uuid.UUID `db:"patient_id" json:"patient_id"`
	RiskScore           int       `db:"risk_score" json:"risk_score"`
	RiskLevel           Level     `db:"risk_level" json:"risk_level"`
	RiskPercentage      int       `db:"risk_percentage" json:"risk_percentage"`
	ContributingFactors []string  `db:"contributing_factors" json:"contributing_factors"`
	Recommendations     []string  `db:"recommendations" json:"recommendations"`
	NextScreeningDate   time.Time `db:"next_screening_date" json:"next_screening_date"`
	UrgencyLevel        Urgency   `db:"urgency_level" json:"urgency_level"`
	AssessedAt          time.Time `db:"assessed_at" json:"assessed_at"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}

// ToFHIR renders the assessment as a FHIR RiskAssessment resource so the
// surrounding EHR can consume it alongside other clinical resources.
func (a *Assessment) ToFHIR() map[string]interface{} {
	probability := float64(a.RiskPercentage)
	prediction := map[string]interface{}{
		"outcome": fhir.CodeableConcept{
			Coding: []fhir.Coding{{Display: "Type 2 diabetes mellitus"}},
		},
		"probabilityDecimal": probability,
		"qualitativeRisk": fhir.CodeableConcept{
			Coding: []fhir.Coding{{Code: string(a.RiskLevel), Display: string(a.RiskLevel)}},
		},
	}

	result := map[string]interface{}{
		"resourceType": "RiskAssessment",
		"id":           a.FHIRID,
		"status":       "final",
		"subject":      fhir.Reference{Reference: fhir.FormatReference("Patient", a.PatientID.String())},
		"method": fhir.CodeableConcept{
			Coding: []fhir.Coding{{Code: "composite-rule-score", Display: "Composite rule-based risk score"}},
			Text:   "Diabetes composite risk score",
		},
		"occurrenceDateTime": a.AssessedAt.Format(time.RFC3339),
		"prediction":         []interface{}{prediction},
		"meta":               fhir.Meta{LastUpdated: a.CreatedAt},
	}

	if len(a.ContributingFactors) > 0 {
		basis := make([]fhir.CodeableConcept, 0, len(a.ContributingFactors))
		for _, f := range a.ContributingFactors {
			basis = append(basis, fhir.CodeableConcept{Text: f})
		}
		result["reasonCode"] = basis
	}
	if len(a.Recommendations) > 0 {
		result["mitigation"] = a.Recommendations[0]
		notes := make([]map[string]string, 0, len(a.Recommendations))
		for _, r := range a.Recommendations {
			notes = append(notes, map[string]string{"text": r})
		}
		result["note"] = notes
	}
	return result
}
