// file: internal/handlers/api/v1/savedjobs/saved_jobs_controller.go
package savedjobs

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"jobtrust/internal/handlers/api/v1/common"
	"jobtrust/internal/response"
	"jobtrust/internal/services"
)

type SavedJobController struct {
	serviceCollection *services.ServiceCollection
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewSavedJobController creates a new saved job controller
func NewSavedJobController(serviceCollection *services.ServiceCollection, logger *zap.Logger, responseBuilder *response.Builder) *SavedJobController {
	return &SavedJobController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// RegisterRoutes mounts the bookmark endpoints on r
func (c *SavedJobController) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/saved-jobs", c.ListSavedJobs).Methods(http.MethodGet)
	r.HandleFunc("/saved-jobs", c.SaveJob).Methods(http.MethodPost)
	r.HandleFunc("/saved-jobs", c.UnsaveJob).Methods(http.MethodDelete)
}

// ListSavedJobs returns a user's bookmarked jobs, newest bookmark first
// @Summary List saved jobs
// @Tags Saved Jobs
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} docs.JobListResponse
// @Failure 400 {object} docs.ErrorResponse
// @Router /saved-jobs [get]
func (c *SavedJobController) ListSavedJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := c.serviceCollection.SavedJobService.ListSavedJobs(r.Context(), common.QueryParam(r, "userId"))
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteCollection(w, r, jobs, len(jobs))
}

// SaveJob bookmarks a job for a user
// @Summary Save a job
// @Tags Saved Jobs
// @Accept json
// @Produce json
// @Param bookmark body services.SaveJobRequest true "Bookmark"
// @Success 201 {object} docs.SavedJobResponse
// @Failure 404 {object} docs.ErrorResponse
// @Failure 409 {object} docs.ErrorResponse
// @Router /saved-jobs [post]
func (c *SavedJobController) SaveJob(w http.ResponseWriter, r *http.Request) {
	var req services.SaveJobRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	saved, err := c.serviceCollection.SavedJobService.SaveJob(r.Context(), &req)
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteCreated(w, r, saved)
}

// UnsaveJob removes a bookmark. The pair may come from the query string
// or from a JSON body.
// @Summary Remove a saved job
// @Tags Saved Jobs
// @Param userId query string false "User ID"
// @Param jobId query string false "Job ID"
// @Success 204
// @Failure 400 {object} docs.ErrorResponse
// @Router /saved-jobs [delete]
func (c *SavedJobController) UnsaveJob(w http.ResponseWriter, r *http.Request) {
	req := services.SaveJobRequest{
		UserID: common.QueryParam(r, "userId"),
		JobID:  common.QueryParam(r, "jobId"),
	}
	if req.UserID == "" && req.JobID == "" && r.ContentLength != 0 {
		if err := common.DecodeJSON(r, &req); err != nil {
			c.responseBuilder.WriteError(w, r, err)
			return
		}
	}

	if err := c.serviceCollection.SavedJobService.UnsaveJob(r.Context(), &req); err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteNoContent(w, r)
}
