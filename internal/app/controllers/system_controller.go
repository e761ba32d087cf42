package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravikt/tuitiondesk/internal/app/models/dto"
	"github.com/ravikt/tuitiondesk/internal/app/services"
	"github.com/ravikt/tuitiondesk/internal/middleware"
)

// SystemController handles health, statistics and backup endpoints
type SystemController struct {
	systemService services.SystemService
}

// NewSystemController creates a new SystemController
func NewSystemController(systemService services.SystemService) *SystemController {
	return &SystemController{
		systemService: systemService,
	}
}

// Health reports service liveness
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *SystemController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.systemService.Health(ctx))
}

// Stats reports collection statistics
// @Summary Server statistics
// @Tags system
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StatsResponse}
// @Router /stats [get]
func (c *SystemController) Stats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.systemService.Stats(ctx), ""))
}

// Backup snapshots both data files
// @Summary Trigger a backup
// @Description Copies both data files into the backup directory with a timestamp suffix
// @Tags system
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse "Backup failed"
// @Router /backup [post]
func (c *SystemController) Backup(ctx *gin.Context) {
	if err := c.systemService.Backup(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Backup created successfully"))
}
