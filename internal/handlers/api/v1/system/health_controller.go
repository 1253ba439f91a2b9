// file: internal/handlers/api/v1/system/health_controller.go
package system

import (
	"net/http"

	"go.uber.org/zap"

	"jobtrust/internal/response"
	"jobtrust/internal/services"
)

type HealthController struct {
	serviceCollection *services.ServiceCollection
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewHealthController creates a new health controller
func NewHealthController(serviceCollection *services.ServiceCollection, logger *zap.Logger, responseBuilder *response.Builder) *HealthController {
	return &HealthController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// Health reports store and cache status
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} docs.HealthResponse
// @Failure 503 {object} docs.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	health := c.serviceCollection.HealthCheck(r.Context())
	if health.Status != services.StatusHealthy {
		c.logger.Warn("Health check reported issues",
			zap.String("status", health.Status),
			zap.Strings("issues", health.Issues),
		)
	}
	c.responseBuilder.WriteHealth(w, r, health)
}
