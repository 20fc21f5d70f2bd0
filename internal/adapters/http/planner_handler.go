package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/studentplanner/core/internal/application/services"
	"github.com/studentplanner/core/internal/infrastructure/logger"
)

// PlannerHandler serves the calendar month view and the dashboard
type PlannerHandler struct {
	plannerService *services.PlannerService
	logger         *logger.Logger
}

// NewPlannerHandler creates a new planner handler
func NewPlannerHandler(plannerService *services.PlannerService, appLogger *logger.Logger) *PlannerHandler {
	return &PlannerHandler{
		plannerService: plannerService,
		logger:         appLogger,
	}
}

// MonthView returns the 42-slot calendar grid for a month
// @Summary Calendar month view
// @Tags calendar
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} services.MonthView
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/calendar/{year}/{month} [get]
func (h *PlannerHandler) MonthView(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid year parameter")
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid month parameter")
	}

	view, buildErr := h.plannerService.MonthView(c.Request().Context(), year, month)
	if buildErr != nil {
		return echo.NewHTTPError(http.StatusBadRequest, buildErr.Error())
	}

	return c.JSON(http.StatusOK, view)
}

// Dashboard returns the planner counters
func (h *PlannerHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.plannerService.Dashboard(c.Request().Context()))
}
