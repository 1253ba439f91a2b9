// file: internal/handlers/api/v1/companies/companies_controller.go
package companies

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"jobtrust/internal/contextutils"
	"jobtrust/internal/handlers/api/v1/common"
	"jobtrust/internal/response"
	"jobtrust/internal/services"
)

type CompanyController struct {
	serviceCollection *services.ServiceCollection
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewCompanyController creates a new company controller
func NewCompanyController(serviceCollection *services.ServiceCollection, logger *zap.Logger, responseBuilder *response.Builder) *CompanyController {
	return &CompanyController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// RegisterRoutes mounts the company endpoints on r
func (c *CompanyController) RegisterRoutes(r *mux.Router, admin common.AdminMiddleware) {
	r.HandleFunc("/companies", c.ListCompanies).Methods(http.MethodGet)
	r.Handle("/companies", admin(http.HandlerFunc(c.CreateCompany))).Methods(http.MethodPost)
	r.HandleFunc("/companies/{id}", c.GetCompany).Methods(http.MethodGet)
	r.Handle("/companies/{id}", admin(http.HandlerFunc(c.UpdateCompany))).Methods(http.MethodPatch)
}

// ListCompanies returns companies in creation order
// @Summary List companies
// @Tags Companies
// @Produce json
// @Success 200 {object} docs.CompanyListResponse
// @Router /companies [get]
func (c *CompanyController) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := c.serviceCollection.CompanyService.ListCompanies(r.Context())
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteCollection(w, r, companies, len(companies))
}

// GetCompany returns one company
// @Summary Get a company
// @Tags Companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} docs.CompanyResponse
// @Failure 404 {object} docs.ErrorResponse
// @Router /companies/{id} [get]
func (c *CompanyController) GetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := c.serviceCollection.CompanyService.GetCompany(r.Context(), common.PathParam(r, "id"))
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteSuccess(w, r, company)
}

// CreateCompany registers a company
// @Summary Create a company
// @Tags Companies
// @Accept json
// @Produce json
// @Security AdminBearer
// @Param company body services.CreateCompanyRequest true "Company"
// @Success 201 {object} docs.CompanyResponse
// @Failure 400 {object} docs.ErrorResponse
// @Router /companies [post]
func (c *CompanyController) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req services.CreateCompanyRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	company, err := c.serviceCollection.CompanyService.CreateCompany(r.Context(), &req)
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteCreated(w, r, company)
}

// UpdateCompany adjusts trust score and job counters
// @Summary Update a company's trust data
// @Tags Companies
// @Accept json
// @Produce json
// @Security AdminBearer
// @Param id path string true "Company ID"
// @Param update body services.UpdateCompanyRequest true "Fields to change"
// @Success 200 {object} docs.CompanyResponse
// @Failure 400 {object} docs.ErrorResponse
// @Failure 404 {object} docs.ErrorResponse
// @Router /companies/{id} [patch]
func (c *CompanyController) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateCompanyRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}
	req.CompanyID = common.PathParam(r, "id")

	company, err := c.serviceCollection.CompanyService.UpdateCompany(r.Context(), &req)
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.logger.Info("Company trust data updated",
		zap.String("company_id", company.ID),
		zap.Int("trust_score", company.TrustScore),
		zap.String("admin", contextutils.GetAdminSubject(r.Context())),
	)
	c.responseBuilder.WriteSuccess(w, r, company)
}
