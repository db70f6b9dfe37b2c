package handlers

import (
	"errors"
	"net/http"
	"time"

	"lazarus_guide/internal/adapter/http/dto/response"
	"lazarus_guide/internal/usecase"
	"lazarus_guide/pkg"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

var errInvalidDate = pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date. Expected format: YYYY-MM-DD", http.StatusBadRequest)

// AnalyticsHandler serves the reporting endpoints built on the guide corpus.
type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

// GetDailySummary returns per-state counts and value totals for one day.
//
// @Summary      Daily guide summary
// @Tags         Analytics
// @Security     ApiKeyAuth
// @Param        date        query  string  false  "Reference day (YYYY-MM-DD, default today)"
// @Param        hospitalId  query  string  false  "Tenant override"
// @Success      200  {object}  response.AnalyticsEnvelope
// @Router       /analytics/guides/daily-summary [get]
func (h *AnalyticsHandler) GetDailySummary(c *gin.Context) {
	date, ok := parseDate(c)
	if !ok {
		return
	}

	summary, err := h.usecase.GetDailySummary(c.Request.Context(), date, c.Query("hospitalId"))
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.AnalyticsOK(summary, date.Format(dateLayout)))
}

// GetGuidesByStatus lists the guides in a given lifecycle state on one day.
//
// @Summary      Guides by status
// @Tags         Analytics
// @Security     ApiKeyAuth
// @Param        status      query  string  true   "FINALIZADA, EM_ANDAMENTO or CANCELADA"
// @Param        date        query  string  false  "Reference day (YYYY-MM-DD, default today)"
// @Param        limit       query  int     false  "Max results (default 100)"
// @Param        hospitalId  query  string  false  "Tenant override"
// @Success      200  {object}  response.AnalyticsEnvelope
// @Router       /analytics/guides/by-status [get]
func (h *AnalyticsHandler) GetGuidesByStatus(c *gin.Context) {
	date, ok := parseDate(c)
	if !ok {
		return
	}
	status := c.Query("status")

	guides, err := h.usecase.GetGuidesByStatus(c.Request.Context(), status, date, intQuery(c, "limit", 0), c.Query("hospitalId"))
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.AnalyticsOK(guides, date.Format(dateLayout)).
		WithStatus(status).
		WithCount(len(guides)))
}

// GetStatistics returns aggregate indicators over a backward-looking window.
//
// @Summary      Guide statistics over a period
// @Tags         Analytics
// @Security     ApiKeyAuth
// @Param        period      query  string  false  "day, week, month or year (default day)"
// @Param        date        query  string  false  "Window end day (YYYY-MM-DD, default today)"
// @Param        hospitalId  query  string  false  "Tenant override"
// @Success      200  {object}  response.AnalyticsEnvelope
// @Router       /analytics/guides/statistics [get]
func (h *AnalyticsHandler) GetStatistics(c *gin.Context) {
	date, ok := parseDate(c)
	if !ok {
		return
	}
	period := c.DefaultQuery("period", "day")

	stats, err := h.usecase.GetStatistics(c.Request.Context(), period, date, c.Query("hospitalId"))
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.AnalyticsOK(stats, date.Format(dateLayout)).WithPeriod(period))
}

// GetRevenue returns the billed-revenue breakdown for a period.
//
// @Summary      Revenue over a period
// @Tags         Analytics
// @Security     ApiKeyAuth
// @Param        period      query  string  false  "day, week, month or year (default day)"
// @Param        date        query  string  false  "Window end day (YYYY-MM-DD, default today)"
// @Param        hospitalId  query  string  false  "Tenant override"
// @Success      200  {object}  response.AnalyticsEnvelope
// @Router       /analytics/guides/revenue [get]
func (h *AnalyticsHandler) GetRevenue(c *gin.Context) {
	date, ok := parseDate(c)
	if !ok {
		return
	}
	period := c.DefaultQuery("period", "day")

	revenue, err := h.usecase.GetRevenue(c.Request.Context(), period, date, c.Query("hospitalId"))
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.AnalyticsOK(revenue, date.Format(dateLayout)).WithPeriod(period))
}

// parseDate reads the optional date query param. It writes the error response
// itself so callers just bail out on !ok.
func parseDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	date, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		c.JSON(errInvalidDate.HTTPStatus, errInvalidDate.ToHTTPError())
		return time.Time{}, false
	}
	return date, true
}

func mapAnalyticsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_PERIOD", "Invalid period. Must be one of: day, week, month, year", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusFilter):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status. Must be one of: FINALIZADA, EM_ANDAMENTO, CANCELADA", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
