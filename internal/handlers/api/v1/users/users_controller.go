// file: internal/handlers/api/v1/users/users_controller.go
package users

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"jobtrust/internal/handlers/api/v1/common"
	"jobtrust/internal/response"
	"jobtrust/internal/services"
)

// UserController handles account endpoints
type UserController struct {
	serviceCollection *services.ServiceCollection
	responseBuilder   *response.Builder
	logger            *zap.Logger
}

// NewUserController creates a new user API controller
func NewUserController(
	serviceCollection *services.ServiceCollection,
	logger *zap.Logger,
	responseBuilder *response.Builder,
) *UserController {
	return &UserController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// RegisterRoutes mounts the user endpoints on r
func (c *UserController) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/users", c.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}", c.GetUser).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}/avatar", c.UpdateAvatar).Methods(http.MethodPut)
}

// CreateUser registers an account from signup data
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body services.CreateUserRequest true "Signup data"
// @Success 201 {object} docs.UserResponse
// @Failure 400 {object} docs.ErrorResponse
// @Failure 409 {object} docs.ErrorResponse
// @Router /users [post]
func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req services.CreateUserRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	user, err := c.serviceCollection.UserService.CreateUser(r.Context(), &req)
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteCreated(w, r, user)
}

// GetUser returns a public user profile
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} docs.UserResponse
// @Failure 404 {object} docs.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := c.serviceCollection.UserService.GetUser(r.Context(), common.PathParam(r, "id"))
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteSuccess(w, r, user)
}

// UpdateAvatar replaces a user's avatar; a null avatar clears it
// @Summary Update a user's avatar
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param avatar body services.UpdateAvatarRequest true "Avatar URL"
// @Success 200 {object} docs.UserResponse
// @Failure 400 {object} docs.ErrorResponse
// @Failure 404 {object} docs.ErrorResponse
// @Router /users/{id}/avatar [put]
func (c *UserController) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateAvatarRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}
	req.UserID = common.PathParam(r, "id")

	user, err := c.serviceCollection.UserService.UpdateAvatar(r.Context(), &req)
	if err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteSuccess(w, r, user)
}
