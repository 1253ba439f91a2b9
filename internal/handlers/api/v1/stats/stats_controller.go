// file: internal/handlers/api/v1/stats/stats_controller.go
package stats

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"jobtrust/internal/response"
	"jobtrust/internal/services"
)

type StatsController struct {
	serviceCollection *services.ServiceCollection
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewStatsController creates a new stats controller
func NewStatsController(serviceCollection *services.ServiceCollection, logger *zap.Logger, responseBuilder *response.Builder) *StatsController {
	return &StatsController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// RegisterRoutes mounts the stats endpoint on r
func (c *StatsController) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/stats", c.GetStats).Methods(http.MethodGet)
}

// GetStats returns the platform dashboard counters
// @Summary Platform statistics
// @Tags Stats
// @Produce json
// @Success 200 {object} docs.StatsResponse
// @Router /stats [get]
func (c *StatsController) GetStats(w http.ResponseWriter, r *http.Request) {
	summary, err := c.serviceCollection.StatsService.GetStats(r.Context())
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteSuccess(w, r, summary)
}
