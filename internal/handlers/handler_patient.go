package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omarionadde/DHOOL/internal/apperrors"
	portssvc "github.com/omarionadde/DHOOL/internal/core/ports/services"
	"github.com/omarionadde/DHOOL/internal/core/services"
	"github.com/omarionadde/DHOOL/internal/dto"
	"github.com/omarionadde/DHOOL/internal/middleware"
)

type patientHandler struct {
	patientService  portssvc.PatientSvcFacade
	ledgerService   portssvc.LedgerSvcFacade
	clinicalService portssvc.ClinicalSvcFacade
}

func newPatientHandler(ps portssvc.PatientSvcFacade, ls portssvc.LedgerSvcFacade, cs portssvc.ClinicalSvcFacade) *patientHandler {
	return &patientHandler{patientService: ps, ledgerService: ls, clinicalService: cs}
}

// registerPatientRoutes registers patient records plus the per-patient
// billing and clinical subroutes.
func registerPatientRoutes(rg *gin.RouterGroup, patientService portssvc.PatientSvcFacade, ledgerService portssvc.LedgerSvcFacade, clinicalService portssvc.ClinicalSvcFacade) {
	h := newPatientHandler(patientService, ledgerService, clinicalService)

	patients := rg.Group("/patients")
	{
		patients.POST("", h.createPatient)
		patients.GET("", h.listPatients)
		patients.GET("/:id", h.getPatient)
		patients.DELETE("/:id", h.deletePatient)

		patients.GET("/:id/balance", h.getPatientBalance)
		patients.POST("/:id/settlements", h.settleBalance)

		patients.POST("/:id/history", h.addHistory)
		patients.GET("/:id/history", h.listHistory)
		patients.POST("/:id/prescriptions", h.addPrescription)
		patients.GET("/:id/prescriptions", h.listPrescriptions)
	}
}

// createPatient godoc
// @Summary Register a patient
// @Tags patients
// @Accept  json
// @Produce  json
// @Param   patient body dto.CreatePatientRequest true "Patient details"
// @Success 201 {object} dto.PatientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /patients [post]
func (h *patientHandler) createPatient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	patient, err := h.patientService.CreatePatient(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create patient", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create patient"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPatientResponse(patient))
}

// listPatients godoc
// @Summary List patients
// @Tags patients
// @Produce  json
// @Param   limit query int false "Max results" default(100)
// @Param   offset query int false "Results offset" default(0)
// @Success 200 {array} dto.PatientResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /patients [get]
func (h *patientHandler) listPatients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params struct {
		Limit  int `form:"limit,default=100"`
		Offset int `form:"offset,default=0"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	patients, err := h.patientService.ListPatients(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list patients", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list patients"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPatientResponses(patients))
}

// getPatient godoc
// @Summary Get a patient
// @Tags patients
// @Produce  json
// @Param   id path string true "Patient ID"
// @Success 200 {object} dto.PatientResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /patients/{id} [get]
func (h *patientHandler) getPatient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	patientID := c.Param("id")

	patient, err := h.patientService.GetPatientByID(c.Request.Context(), patientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Patient not found"})
			return
		}
		logger.Error("Failed to get patient", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve patient"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPatientResponse(patient))
}

// deletePatient godoc
// @Summary Delete a patient
// @Description Removes the patient record. Their transactions, history and prescriptions are retained.
// @Tags patients
// @Param   id path string true "Patient ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /patients/{id} [delete]
func (h *patientHandler) deletePatient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	patientID := c.Param("id")

	if err := h.patientService.DeletePatient(c.Request.Context(), patientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Patient not found"})
			return
		}
		logger.Error("Failed to delete patient", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete patient"})
		return
	}

	c.Status(http.StatusNoContent)
}

// getPatientBalance godoc
// @Summary Get a patient's outstanding balance
// @Description Recomputes the balance from the ledger. Positive means the patient owes money.
// @Tags patients
// @Produce  json
// @Param   id path string true "Patient ID"
// @Success 200 {object} dto.PatientBalanceResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /patients/{id}/balance [get]
func (h *patientHandler) getPatientBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	patientID := c.Param("id")

	balance, err := h.ledgerService.GetPatientBalance(c.Request.Context(), patientID)
	if err != nil {
		logger.Error("Failed to compute patient balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, dto.PatientBalanceResponse{PatientID: patientID, Balance: balance})
}

// settleBalance godoc
// @Summary Settle a patient's outstanding balance
// @Description Records a payment against the patient's debt as a zero-total ledger entry.
// @Tags patients
// @Accept  json
// @Produce  json
// @Param   id path string true "Patient ID"
// @Param   settlement body dto.SettleBalanceRequest true "Settlement details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /patients/{id}/settlements [post]
func (h *patientHandler) settleBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	patientID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SettleBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.SettleBalance(c.Request.Context(), patientID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Patient not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrOverSettlement):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Settlement amount exceeds outstanding balance"})
		default:
			logger.Error("Failed to settle balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to settle balance"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// addHistory godoc
// @Summary Add a visit history entry
// @Tags patients
// @Accept  json
// @Produce  json
// @Param   id path string true "Patient ID"
// @Param   entry body dto.CreateHistoryRequest true "Visit details"
// @Success 201 {object} domain.PatientHistory
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /patients/{id}/history [post]
func (h *patientHandler) addHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	patientID := c.Param("id")

	var req dto.CreateHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.clinicalService.AddHistory(c.Request.Context(), patientID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Patient not found"})
			return
		}
		logger.Error("Failed to add history entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add history entry"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// listHistory godoc
// @Summary List a patient's visit history
// @Tags patients
// @Produce  json
// @Param   id path string true "Patient ID"
// @Success 200 {array} domain.PatientHistory
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /patients/{id}/history [get]
func (h *patientHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	patientID := c.Param("id")

	entries, err := h.clinicalService.ListHistory(c.Request.Context(), patientID)
	if err != nil {
		logger.Error("Failed to list history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list history"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// addPrescription godoc
// @Summary Issue a prescription
// @Tags patients
// @Accept  json
// @Produce  json
// @Param   id path string true "Patient ID"
// @Param   prescription body dto.CreatePrescriptionRequest true "Prescription details"
// @Success 201 {object} domain.Prescription
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /patients/{id}/prescriptions [post]
func (h *patientHandler) addPrescription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	patientID := c.Param("id")

	var req dto.CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	prescription, err := h.clinicalService.AddPrescription(c.Request.Context(), patientID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Patient not found"})
			return
		}
		logger.Error("Failed to add prescription", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add prescription"})
		return
	}

	c.JSON(http.StatusCreated, prescription)
}

// listPrescriptions godoc
// @Summary List a patient's prescriptions
// @Tags patients
// @Produce  json
// @Param   id path string true "Patient ID"
// @Success 200 {array} domain.Prescription
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /patients/{id}/prescriptions [get]
func (h *patientHandler) listPrescriptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	patientID := c.Param("id")

	prescriptions, err := h.clinicalService.ListPrescriptions(c.Request.Context(), patientID)
	if err != nil {
		logger.Error("Failed to list prescriptions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list prescriptions"})
		return
	}

	c.JSON(http.StatusOK, prescriptions)
}
