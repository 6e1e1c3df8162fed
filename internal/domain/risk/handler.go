package risk

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/diabrisk/diabrisk/internal/domain/patient"
	"github.com/diabrisk/diabrisk/internal/platform/auth"
	"github.com/diabrisk/diabrisk/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group, fhirGroup *echo.Group) {
	readGroup := api.Group("", auth.RequireRole("admin", "physician", "nurse"))
	readGroup.GET("/risk-assessments", h.ListAssessments)
	readGroup.GET("/risk-assessments/:id", h.GetAssessment)
	readGroup.GET("/patients/:id/risk-assessments", h.ListByPatient)

	writeGroup := api.Group("", auth.RequireRole("admin", "physician"))
	writeGroup.POST("/patients/:id/risk-assessments", h.RunAssessment)
	writeGroup.POST("/risk-assessments/batch", h.RunBatch)

	fhirGroup.GET("/RiskAssessment/:fhir_id", h.GetAssessmentFHIR)
}

// RunAssessment executes the full pipeline for one patient.
func (h *Handler) RunAssessment(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	a, err := h.svc.Assess(c.Request().Context(), patientID)
	if errors.Is(err, patient.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "assessment failed")
	}
	return c.JSON(http.StatusCreated, a)
}

type batchRequest struct {
	PatientIDs []uuid.UUID `json:"patient_ids"`
}

// RunBatch assesses a list of patients with per-patient failure isolation.
func (h *Handler) RunBatch(c echo.Context) error {
	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.PatientIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_ids is required")
	}
	results := h.svc.AssessMany(c.Request().Context(), req.PatientIDs)
	return c.JSON(http.StatusOK, map[string]interface{}{"results": results})
}

func (h *Handler) GetAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid assessment id")
	}
	a, err := h.svc.GetAssessment(c.Request().Context(), id)
	if errors.Is(err, ErrAssessmentNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "lookup failed")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) ListAssessments(c echo.Context) error {
	p := pagination.FromContext(c)
	items, total, err := h.svc.ListAssessments(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "list failed")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	p := pagination.FromContext(c)
	items, total, err := h.svc.ListAssessmentsByPatient(c.Request().Context(), patientID, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "list failed")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

// GetAssessmentFHIR serves the FHIR RiskAssessment rendering.
func (h *Handler) GetAssessmentFHIR(c echo.Context) error {
	a, err := h.svc.GetAssessmentByFHIRID(c.Request().Context(), c.Param("fhir_id"))
	if errors.Is(err, ErrAssessmentNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "lookup failed")
	}
	return c.JSON(http.StatusOK, a.ToFHIR())
}
