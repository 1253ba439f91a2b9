// file: internal/handlers/api/v1/courses/courses_controller.go
package courses

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"jobtrust/internal/handlers/api/v1/common"
	"jobtrust/internal/response"
	"jobtrust/internal/services"
)

type CourseController struct {
	serviceCollection *services.ServiceCollection
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewCourseController creates a new course controller
func NewCourseController(serviceCollection *services.ServiceCollection, logger *zap.Logger, responseBuilder *response.Builder) *CourseController {
	return &CourseController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// RegisterRoutes mounts the course endpoints on r
func (c *CourseController) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/courses", c.ListCourses).Methods(http.MethodGet)
}

// ListCourses returns courses by rating, optionally for one category
// @Summary List courses
// @Tags Courses
// @Produce json
// @Param category query string false "Exact category"
// @Success 200 {object} docs.CourseListResponse
// @Router /courses [get]
func (c *CourseController) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := c.serviceCollection.CourseService.ListCourses(r.Context(), common.QueryParam(r, "category"))
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteCollection(w, r, courses, len(courses))
}
