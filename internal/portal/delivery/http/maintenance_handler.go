package http

import (
	"errors"
	"io"
	"net/http"

	"econgov-portal/internal/portal/dto"
	"econgov-portal/internal/portal/service"
	"econgov-portal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MaintenanceHandler handles the administrator maintenance actions.
type MaintenanceHandler struct {
	maintenanceService service.MaintenanceService
	logger             *logger.Logger
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(maintenanceService service.MaintenanceService, logger *logger.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService, logger: logger}
}

// RegisterRoutes registers the maintenance routes to the admin Echo group.
func (h *MaintenanceHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/maintenance/:action", h.RunAction)
}

// RunAction godoc
// @Summary Run a maintenance action
// @Description Runs one of migrate, seed, sync or full synchronously. Sync reads an export file from the request body.
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   action path   string true   "Action name" Enums(migrate, seed, sync, full)
// @Success 200 {object} dto.MaintenanceResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.MaintenanceResult
// @Router /admin/maintenance/{action} [post]
func (h *MaintenanceHandler) RunAction(c echo.Context) error {
	action := c.Param("action")

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "failed to read request body"})
	}

	result, err := h.maintenanceService.Run(c.Request().Context(), action, payload)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		}
		h.logger.Error("Maintenance action failed",
			logger.StringField("action", action),
			logger.ErrorField(err))
		// The result still carries partial output and the failure status.
		return c.JSON(http.StatusInternalServerError, result)
	}
	return c.JSON(http.StatusOK, result)
}
