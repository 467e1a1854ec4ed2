package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citypulse/backend/internal/domain"
	"github.com/citypulse/backend/internal/service"
)

func (h *Handler) initUsersRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	users.GET("", h.getUsers)
	users.GET("/:id", h.getUserByID)
	users.POST("", h.createUser)
	users.PUT("/:id", h.updateUser)
}

type createUserRequest struct {
	Email       string `json:"email" binding:"required,email,max=255"`
	DisplayName string `json:"display_name" binding:"required,min=1,max=255"`
}

type updateUserRequest struct {
	Email       *string `json:"email" binding:"omitempty,email,max=255"`
	DisplayName *string `json:"display_name" binding:"omitempty,min=1,max=255"`
}

// @Summary List Users
// @Tags Users
// @Produce json
// @Success 200 {array} domain.User
// @Failure 500
// @Router /users [get]
func (h *Handler) getUsers(c *gin.Context) {
	users, err := h.services.Users.GetAll(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Get User
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /users/{id} [get]
func (h *Handler) getUserByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Create User
// @Tags Users
// @Accept json
// @Produce json
// @Param input body createUserRequest true "user payload"
// @Success 201 {object} domain.User
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} ErrorStruct
// @Router /users [post]
func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	user, err := h.services.Users.Create(c.Request.Context(), req.Email, req.DisplayName)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// @Summary Update User
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param input body updateUserRequest true "fields to update"
// @Success 200 {object} domain.User
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	user, err := h.services.Users.Update(c.Request.Context(), id, service.UpdateUserInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
