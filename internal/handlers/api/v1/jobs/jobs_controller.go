// file: internal/handlers/api/v1/jobs/jobs_controller.go
package jobs

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"jobtrust/internal/contextutils"
	"jobtrust/internal/filters"
	"jobtrust/internal/handlers/api/v1/common"
	"jobtrust/internal/response"
	"jobtrust/internal/services"
)

type JobController struct {
	serviceCollection *services.ServiceCollection
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewJobController creates a new job controller
func NewJobController(serviceCollection *services.ServiceCollection, logger *zap.Logger, responseBuilder *response.Builder) *JobController {
	return &JobController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// RegisterRoutes mounts the job endpoints on r
func (c *JobController) RegisterRoutes(r *mux.Router, admin common.AdminMiddleware) {
	r.HandleFunc("/jobs", c.ListJobs).Methods(http.MethodGet)
	r.Handle("/jobs", admin(http.HandlerFunc(c.CreateJob))).Methods(http.MethodPost)
	r.HandleFunc("/jobs/{id}", c.GetJob).Methods(http.MethodGet)
	r.Handle("/jobs/{id}/status", admin(http.HandlerFunc(c.UpdateJobStatus))).Methods(http.MethodPatch)
	r.Handle("/jobs/{id}/report-count", admin(http.HandlerFunc(c.ResetReportCount))).Methods(http.MethodDelete)
}

// ListJobs handles job listing with filters taken from the query string
// @Summary List jobs
// @Tags Jobs
// @Produce json
// @Param search query string false "Case-insensitive match on title, description or company name"
// @Param location query string false "Case-insensitive location substring"
// @Param jobType query []string false "full-time, part-time, remote, internship, hybrid, on-site" collectionFormat(csv)
// @Param experienceLevel query []string false "entry, mid, senior, executive" collectionFormat(csv)
// @Param status query []string false "pending, verified, suspicious, fake" collectionFormat(csv)
// @Param trustScoreMin query int false "Minimum company trust score"
// @Param companySize query []string false "startup, medium, large" collectionFormat(csv)
// @Success 200 {object} docs.JobListResponse
// @Router /jobs [get]
func (c *JobController) ListJobs(w http.ResponseWriter, r *http.Request) {
	f := filters.Parse(r.URL.Query())

	jobs, err := c.serviceCollection.JobService.ListJobs(r.Context(), f)
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteCollection(w, r, jobs, len(jobs))
}

// GetJob handles retrieving a specific job with its company
// @Summary Get a job
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} docs.JobResponse
// @Failure 404 {object} docs.ErrorResponse
// @Router /jobs/{id} [get]
func (c *JobController) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := c.serviceCollection.JobService.GetJob(r.Context(), common.PathParam(r, "id"))
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteSuccess(w, r, job)
}

// CreateJob handles job creation
// @Summary Create a job
// @Tags Jobs
// @Accept json
// @Produce json
// @Security AdminBearer
// @Param job body services.CreateJobRequest true "Job"
// @Success 201 {object} docs.JobResponse
// @Failure 400 {object} docs.ErrorResponse
// @Router /jobs [post]
func (c *JobController) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req services.CreateJobRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	job, err := c.serviceCollection.JobService.CreateJob(r.Context(), &req)
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteCreated(w, r, job)
}

// UpdateJobStatus handles moderation status changes
// @Summary Update a job's moderation status
// @Tags Jobs
// @Accept json
// @Produce json
// @Security AdminBearer
// @Param id path string true "Job ID"
// @Param status body services.UpdateJobStatusRequest true "New status"
// @Success 200 {object} docs.JobResponse
// @Failure 400 {object} docs.ErrorResponse
// @Failure 404 {object} docs.ErrorResponse
// @Router /jobs/{id}/status [patch]
func (c *JobController) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateJobStatusRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}
	req.JobID = common.PathParam(r, "id")

	job, err := c.serviceCollection.JobService.UpdateJobStatus(r.Context(), &req)
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteSuccess(w, r, job)
}

// ResetReportCount clears a job's report counter after review
// @Summary Reset a job's report count
// @Tags Jobs
// @Produce json
// @Security AdminBearer
// @Param id path string true "Job ID"
// @Success 200 {object} docs.JobResponse
// @Failure 404 {object} docs.ErrorResponse
// @Router /jobs/{id}/report-count [delete]
func (c *JobController) ResetReportCount(w http.ResponseWriter, r *http.Request) {
	job, err := c.serviceCollection.JobService.ResetReportCount(r.Context(), common.PathParam(r, "id"))
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.logger.Info("Job report count reset",
		zap.String("job_id", job.ID),
		zap.String("admin", contextutils.GetAdminSubject(r.Context())),
	)
	c.responseBuilder.WriteSuccess(w, r, job)
}
