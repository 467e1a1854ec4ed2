package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/citypulse/backend/internal/domain"
)

func (h *Handler) initRegionsRoutes(api *gin.RouterGroup) {
	regions := api.Group("/regions")
	regions.GET("", h.getRegions)
	regions.GET("/:id", h.getRegionByID)
	regions.POST("", h.createRegion)
	regions.GET("/:id/events", h.getRegionEvents)
	regions.GET("/:id/users", h.getRegionUsers)
	regions.POST("/:id/members", h.addRegionMember)
}

type createRegionRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Slug string `json:"slug" binding:"required,max=255,slug"`
}

type addMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// @Summary List Regions
// @Tags Regions
// @Produce json
// @Param slug query string false "exact slug filter"
// @Success 200 {array} domain.Region
// @Failure 500
// @Router /regions [get]
func (h *Handler) getRegions(c *gin.Context) {
	var slug *string
	if s := c.Query("slug"); s != "" {
		slug = &s
	}

	regions, err := h.services.Regions.GetAll(c.Request.Context(), slug)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	if regions == nil {
		regions = []domain.Region{}
	}
	c.JSON(http.StatusOK, regions)
}

// @Summary Get Region
// @Tags Regions
// @Produce json
// @Param id path string true "Region ID"
// @Success 200 {object} domain.Region
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /regions/{id} [get]
func (h *Handler) getRegionByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	region, err := h.services.Regions.GetOneByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, region)
}

// @Summary Create Region
// @Tags Regions
// @Accept json
// @Produce json
// @Param input body createRegionRequest true "region payload"
// @Success 201 {object} domain.Region
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} ErrorStruct
// @Router /regions [post]
func (h *Handler) createRegion(c *gin.Context) {
	var req createRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	region, err := h.services.Regions.Create(c.Request.Context(), req.Name, req.Slug)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, region)
}

// @Summary List Events In Region
// @Tags Regions
// @Produce json
// @Param id path string true "Region ID"
// @Success 200 {array} domain.Event
// @Failure 404 {object} ErrorStruct
// @Router /regions/{id}/events [get]
func (h *Handler) getRegionEvents(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	events, err := h.services.Regions.EventsIn(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// @Summary List Users In Region
// @Tags Regions
// @Produce json
// @Param id path string true "Region ID"
// @Success 200 {array} domain.User
// @Failure 404 {object} ErrorStruct
// @Router /regions/{id}/users [get]
func (h *Handler) getRegionUsers(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	users, err := h.services.Regions.UsersIn(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Add Region Member
// @Tags Regions
// @Accept json
// @Produce json
// @Param id path string true "Region ID"
// @Param input body addMemberRequest true "user to add"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /regions/{id}/members [post]
func (h *Handler) addRegionMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, InvalidIDCode)
		return
	}

	if err := h.services.Regions.AddMember(c.Request.Context(), id, userID); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
