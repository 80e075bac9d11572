package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/omarionadde/DHOOL/internal/core/ports/services"
	"github.com/omarionadde/DHOOL/internal/dto"
	"github.com/omarionadde/DHOOL/internal/middleware"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the read-only reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/sales", h.salesReport)
		reports.GET("/dashboard", h.dashboard)
	}
}

// salesReport godoc
// @Summary Sales report
// @Description Revenue, received, outstanding and item rollups over the ledger, optionally filtered by cashier and free-text search.
// @Tags reports
// @Produce  json
// @Param   userId query string false "Restrict to one cashier"
// @Param   search query string false "Case-insensitive match on id, method, cashier and patient name"
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/sales [get]
func (h *reportingHandler) salesReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SalesReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	summary, txns, err := h.reportingService.SalesSummary(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to build sales report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build sales report"})
		return
	}

	c.JSON(http.StatusOK, dto.SalesReportResponse{
		Summary:      *summary,
		Transactions: dto.ToTransactionResponses(txns),
	})
}

// dashboard godoc
// @Summary Dashboard summary
// @Description System-wide snapshot: revenue, expenses, net profit, low-stock count, patient count and today's appointments.
// @Tags reports
// @Produce  json
// @Success 200 {object} domain.DashboardSummary
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) dashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.DashboardSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
