package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omarionadde/DHOOL/internal/apperrors"
	portssvc "github.com/omarionadde/DHOOL/internal/core/ports/services"
	"github.com/omarionadde/DHOOL/internal/dto"
	"github.com/omarionadde/DHOOL/internal/middleware"
)

type appointmentHandler struct {
	appointmentService portssvc.AppointmentSvcFacade
}

func newAppointmentHandler(as portssvc.AppointmentSvcFacade) *appointmentHandler {
	return &appointmentHandler{appointmentService: as}
}

// registerAppointmentRoutes registers the scheduling routes.
func registerAppointmentRoutes(rg *gin.RouterGroup, appointmentService portssvc.AppointmentSvcFacade) {
	h := newAppointmentHandler(appointmentService)

	appointments := rg.Group("/appointments")
	{
		appointments.POST("", h.createAppointment)
		appointments.GET("", h.listAppointments)
		appointments.PUT("/:id/status", h.updateStatus)
		appointments.DELETE("/:id", h.deleteAppointment)
	}
}

// createAppointment godoc
// @Summary Book an appointment
// @Description Creates an appointment in Pending status.
// @Tags appointments
// @Accept  json
// @Produce  json
// @Param   appointment body dto.CreateAppointmentRequest true "Appointment details"
// @Success 201 {object} domain.Appointment
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /appointments [post]
func (h *appointmentHandler) createAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create appointment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create appointment"})
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// listAppointments godoc
// @Summary List appointments
// @Tags appointments
// @Produce  json
// @Param   limit query int false "Max results" default(100)
// @Param   offset query int false "Results offset" default(0)
// @Success 200 {array} domain.Appointment
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /appointments [get]
func (h *appointmentHandler) listAppointments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params struct {
		Limit  int `form:"limit,default=100"`
		Offset int `form:"offset,default=0"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	appointments, err := h.appointmentService.ListAppointments(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list appointments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list appointments"})
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// updateStatus godoc
// @Summary Update an appointment's status
// @Tags appointments
// @Accept  json
// @Param   id path string true "Appointment ID"
// @Param   status body dto.UpdateAppointmentStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /appointments/{id}/status [put]
func (h *appointmentHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	appointmentID := c.Param("id")

	var req dto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.appointmentService.UpdateAppointmentStatus(c.Request.Context(), appointmentID, req.Status); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Appointment not found"})
			return
		}
		logger.Error("Failed to update appointment status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update appointment status"})
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteAppointment godoc
// @Summary Delete an appointment
// @Tags appointments
// @Param   id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /appointments/{id} [delete]
func (h *appointmentHandler) deleteAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	appointmentID := c.Param("id")

	if err := h.appointmentService.DeleteAppointment(c.Request.Context(), appointmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Appointment not found"})
			return
		}
		logger.Error("Failed to delete appointment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete appointment"})
		return
	}

	c.Status(http.StatusNoContent)
}
