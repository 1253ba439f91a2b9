// file: internal/handlers/api/v1/reports/reports_controller.go
package reports

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"jobtrust/internal/handlers/api/v1/common"
	"jobtrust/internal/response"
	"jobtrust/internal/services"
)

type ReportController struct {
	serviceCollection *services.ServiceCollection
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewReportController creates a new report controller
func NewReportController(serviceCollection *services.ServiceCollection, logger *zap.Logger, responseBuilder *response.Builder) *ReportController {
	return &ReportController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// RegisterRoutes mounts the report and leaderboard endpoints on r
func (c *ReportController) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/job-reports", c.ListReports).Methods(http.MethodGet)
	r.HandleFunc("/job-reports", c.FileReport).Methods(http.MethodPost)
	r.HandleFunc("/top-reporters", c.TopReporters).Methods(http.MethodGet)
}

// ListReports returns every filed report
// @Summary List job reports
// @Tags Reports
// @Produce json
// @Success 200 {object} docs.ReportListResponse
// @Router /job-reports [get]
func (c *ReportController) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := c.serviceCollection.ReportService.ListReports(r.Context())
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteCollection(w, r, reports, len(reports))
}

// FileReport records a report and bumps the job's report count
// @Summary File a job report
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body services.FileReportRequest true "Report"
// @Success 201 {object} docs.ReportResponse
// @Failure 400 {object} docs.ErrorResponse
// @Failure 404 {object} docs.ErrorResponse
// @Router /job-reports [post]
func (c *ReportController) FileReport(w http.ResponseWriter, r *http.Request) {
	var req services.FileReportRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	report, err := c.serviceCollection.ReportService.FileReport(r.Context(), &req)
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteCreated(w, r, report)
}

// TopReporters returns the reporter leaderboard
// @Summary Top reporters
// @Tags Reports
// @Produce json
// @Param limit query int false "Maximum entries (default 10, max 100)"
// @Success 200 {object} docs.LeaderboardResponse
// @Failure 400 {object} docs.ErrorResponse
// @Router /top-reporters [get]
func (c *ReportController) TopReporters(w http.ResponseWriter, r *http.Request) {
	limit, err := common.QueryInt(r, "limit")
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	entries, err := c.serviceCollection.ReportService.TopReporters(r.Context(), limit)
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteCollection(w, r, entries, len(entries))
}
