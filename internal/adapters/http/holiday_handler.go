package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/studentplanner/core/internal/application/services"
	"github.com/studentplanner/core/internal/infrastructure/logger"
)

// HolidayHandler handles holiday-related requests
type HolidayHandler struct {
	holidayService *services.HolidayService
	upcomingWindow int
	logger         *logger.Logger
}

// NewHolidayHandler creates a new holiday handler
func NewHolidayHandler(holidayService *services.HolidayService, upcomingWindow int, appLogger *logger.Logger) *HolidayHandler {
	return &HolidayHandler{
		holidayService: holidayService,
		upcomingWindow: upcomingWindow,
		logger:         appLogger,
	}
}

// ListHolidays returns custom holidays merged with the year's official
// ones, narrowed by optional search and type filters
// @Summary List holidays
// @Tags holidays
// @Produce json
// @Param year query int false "Year to merge official holidays for"
// @Param search query string false "Substring match on name and description"
// @Param type query string false "Holiday type"
// @Success 200 {array} entities.Holiday
// @Router /api/v1/holidays [get]
func (h *HolidayHandler) ListHolidays(c echo.Context) error {
	year := 0
	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid year parameter")
		}
		year = parsed
	}

	filter := services.HolidayListFilter{
		Search: c.QueryParam("search"),
		Type:   c.QueryParam("type"),
	}

	return c.JSON(http.StatusOK, h.holidayService.ListHolidays(c.Request().Context(), year, filter))
}

// CreateHoliday handles custom holiday creation
func (h *HolidayHandler) CreateHoliday(c echo.Context) error {
	var req services.CreateHolidayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	holiday, err := h.holidayService.CreateCustomHoliday(req)
	if err != nil {
		h.logger.Errorw("Create holiday failed", "error", err)
		return err
	}

	return c.JSON(http.StatusCreated, holiday)
}

// UpdateHoliday handles custom holiday updates
func (h *HolidayHandler) UpdateHoliday(c echo.Context) error {
	var req services.UpdateHolidayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	holiday, err := h.holidayService.UpdateCustomHoliday(c.Param("id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, holiday)
}

// DeleteHoliday handles custom holiday deletion
func (h *HolidayHandler) DeleteHoliday(c echo.Context) error {
	if err := h.holidayService.DeleteCustomHoliday(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Holiday deleted successfully"})
}

// UpcomingHolidays returns holidays within the upcoming window
func (h *HolidayHandler) UpcomingHolidays(c echo.Context) error {
	days := h.upcomingWindow
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid days parameter")
		}
		days = parsed
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid limit parameter")
		}
		limit = parsed
	}

	return c.JSON(http.StatusOK, h.holidayService.UpcomingHolidays(c.Request().Context(), days, limit))
}

// OfficialHolidays serves the plain year lookup at
// /api/holidays?year=YYYY, kept unversioned for older clients
// @Summary Official holidays for a year
// @Tags holidays
// @Produce json
// @Param year query int true "Year"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/holidays [get]
func (h *HolidayHandler) OfficialHolidays(c echo.Context) error {
	raw := c.QueryParam("year")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Year parameter is required"})
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Year parameter is required"})
	}

	holidays, err := h.holidayService.OfficialHolidays(c.Request().Context(), year)
	if err != nil {
		h.logger.Errorw("Official holiday lookup failed", "error", err, "year", year)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch holidays"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"holidays": holidays})
}
