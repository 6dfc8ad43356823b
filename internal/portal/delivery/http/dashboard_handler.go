package http

import (
	"net/http"
	"strconv"

	"econgov-portal/internal/portal/service"
	"econgov-portal/pkg/common"
	"econgov-portal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles HTTP requests for the indicator dashboards.
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
	defaultPeriods   int
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger, defaultPeriods int) *DashboardHandler {
	if defaultPeriods <= 0 {
		defaultPeriods = common.DefaultChartPeriods
	}
	return &DashboardHandler{dashboardService: dashboardService, logger: logger, defaultPeriods: defaultPeriods}
}

// RegisterRoutes registers the dashboard routes to the Echo group.
func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/debt", h.GetDebtOverview)
	g.GET("/debt/creditors", h.GetCreditorBreakdown)
	g.GET("/inflation", h.GetInflationSeries)
	g.GET("/gdp", h.GetGDPSeries)
	g.GET("/exchange-rate", h.GetExchangeRateSeries)
	g.GET("/reserves", h.GetReservesSeries)
	g.GET("/imf/disbursements", h.GetIMFDisbursements)
	g.GET("/imf/conditionalities", h.GetConditionalities)
	g.GET("/imf/milestones", h.GetMilestones)
}

func (h *DashboardHandler) periods(c echo.Context) int {
	raw := c.QueryParam("periods")
	if raw == "" {
		return h.defaultPeriods
	}
	periods, err := strconv.Atoi(raw)
	if err != nil || periods <= 0 {
		return h.defaultPeriods
	}
	if periods > common.MaxChartPeriods {
		return common.MaxChartPeriods
	}
	return periods
}

// GetDebtOverview godoc
// @Summary Get the public debt overview
// @Description Total debt series with domestic/external split and the derived external share
// @Tags dashboard
// @Produce  json
// @Param   periods  query   int false   "Number of periods"
// @Success 200 {object} dto.DebtOverview
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/debt [get]
func (h *DashboardHandler) GetDebtOverview(c echo.Context) error {
	overview, err := h.dashboardService.GetDebtOverview(c.Request().Context(), h.periods(c))
	if err != nil {
		h.logger.Error("Failed to get debt overview", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get debt overview"})
	}
	return c.JSON(http.StatusOK, overview)
}

// GetCreditorBreakdown godoc
// @Summary Get the creditor composition snapshot
// @Description All creditor slices at the most recent snapshot date
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.CreditorBreakdown
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/debt/creditors [get]
func (h *DashboardHandler) GetCreditorBreakdown(c echo.Context) error {
	breakdown, err := h.dashboardService.GetCreditorBreakdown(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get creditor breakdown", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get creditor breakdown"})
	}
	return c.JSON(http.StatusOK, breakdown)
}

// GetInflationSeries godoc
// @Summary Get the inflation series
// @Description Headline inflation with food/non-food sub-indices and the policy rate
// @Tags dashboard
// @Produce  json
// @Param   periods  query   int false   "Number of periods"
// @Success 200 {object} dto.InflationSeries
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/inflation [get]
func (h *DashboardHandler) GetInflationSeries(c echo.Context) error {
	series, err := h.dashboardService.GetInflationSeries(c.Request().Context(), h.periods(c))
	if err != nil {
		h.logger.Error("Failed to get inflation series", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get inflation series"})
	}
	return c.JSON(http.StatusOK, series)
}

// GetGDPSeries godoc
// @Summary Get the GDP growth series
// @Tags dashboard
// @Produce  json
// @Param   periods  query   int false   "Number of periods"
// @Success 200 {object} dto.GDPSeries
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/gdp [get]
func (h *DashboardHandler) GetGDPSeries(c echo.Context) error {
	series, err := h.dashboardService.GetGDPSeries(c.Request().Context(), h.periods(c))
	if err != nil {
		h.logger.Error("Failed to get GDP series", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get GDP series"})
	}
	return c.JSON(http.StatusOK, series)
}

// GetExchangeRateSeries godoc
// @Summary Get the exchange rate series
// @Tags dashboard
// @Produce  json
// @Param   periods  query   int false   "Number of periods"
// @Success 200 {object} dto.RateSeries
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/exchange-rate [get]
func (h *DashboardHandler) GetExchangeRateSeries(c echo.Context) error {
	series, err := h.dashboardService.GetExchangeRateSeries(c.Request().Context(), h.periods(c))
	if err != nil {
		h.logger.Error("Failed to get exchange rate series", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get exchange rate series"})
	}
	return c.JSON(http.StatusOK, series)
}

// GetReservesSeries godoc
// @Summary Get the gross reserves series
// @Tags dashboard
// @Produce  json
// @Param   periods  query   int false   "Number of periods"
// @Success 200 {object} dto.RateSeries
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/reserves [get]
func (h *DashboardHandler) GetReservesSeries(c echo.Context) error {
	series, err := h.dashboardService.GetReservesSeries(c.Request().Context(), h.periods(c))
	if err != nil {
		h.logger.Error("Failed to get reserves series", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get reserves series"})
	}
	return c.JSON(http.StatusOK, series)
}

// GetIMFDisbursements godoc
// @Summary Get IMF disbursements
// @Description All tranches with the running total received
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DisbursementSeries
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/imf/disbursements [get]
func (h *DashboardHandler) GetIMFDisbursements(c echo.Context) error {
	series, err := h.dashboardService.GetIMFDisbursements(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get IMF disbursements", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get IMF disbursements"})
	}
	return c.JSON(http.StatusOK, series)
}

// GetConditionalities godoc
// @Summary List IMF program conditions
// @Tags dashboard
// @Produce  json
// @Success 200 {array} dto.ConditionalityItem
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/imf/conditionalities [get]
func (h *DashboardHandler) GetConditionalities(c echo.Context) error {
	items, err := h.dashboardService.GetConditionalities(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get conditionalities", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get conditionalities"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetMilestones godoc
// @Summary List IMF program milestones
// @Tags dashboard
// @Produce  json
// @Success 200 {array} dto.MilestoneItem
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/imf/milestones [get]
func (h *DashboardHandler) GetMilestones(c echo.Context) error {
	items, err := h.dashboardService.GetMilestones(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get milestones", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get milestones"})
	}
	return c.JSON(http.StatusOK, items)
}
