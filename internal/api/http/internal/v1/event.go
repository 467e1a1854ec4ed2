package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/citypulse/backend/internal/domain"
	"github.com/citypulse/backend/internal/repository"
	"github.com/citypulse/backend/internal/service"
)

func (h *Handler) initEventsRoutes(api *gin.RouterGroup) {
	events := api.Group("/events")
	events.GET("", h.getEvents)
	events.GET("/:id", h.getEventByID)
	events.POST("", h.createEvent)
	events.PUT("/:id", h.updateEvent)
}

type createEventRequest struct {
	RegionID       string                 `json:"region_id" binding:"required,uuid"`
	Timestamp      *time.Time             `json:"timestamp"`
	Category       string                 `json:"category" binding:"required,min=1,max=255"`
	SentimentScore *float64               `json:"sentiment_score" binding:"required,gte=-1,lte=1"`
	SourceURL      string                 `json:"source_url" binding:"required,url,max=2048"`
	RawData        map[string]interface{} `json:"raw_data"`
	Title          string                 `json:"title" binding:"required,min=1,max=512"`
	Summary        string                 `json:"summary" binding:"max=10000"`
}

type updateEventRequest struct {
	Category       *string  `json:"category" binding:"omitempty,min=1,max=255"`
	SentimentScore *float64 `json:"sentiment_score" binding:"omitempty,gte=-1,lte=1"`
	Title          *string  `json:"title" binding:"omitempty,min=1,max=512"`
	Summary        *string  `json:"summary" binding:"omitempty,max=10000"`
}

// @Summary List Events
// @Tags Events
// @Produce json
// @Param region_id query string false "region filter"
// @Param category query string false "exact category filter"
// @Success 200 {array} domain.Event
// @Failure 400 {object} ErrorStruct
// @Router /events [get]
func (h *Handler) getEvents(c *gin.Context) {
	filters := &repository.EventFilters{}

	if s := c.Query("region_id"); s != "" {
		regionID, err := uuid.Parse(s)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, InvalidIDCode)
			return
		}
		filters.RegionID = &regionID
	}
	if s := c.Query("category"); s != "" {
		filters.Category = &s
	}

	events, err := h.services.Events.GetAll(c.Request.Context(), filters)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// @Summary Get Event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /events/{id} [get]
func (h *Handler) getEventByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	event, err := h.services.Events.GetOneByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// @Summary Create Event
// @Tags Events
// @Accept json
// @Produce json
// @Param input body createEventRequest true "event payload"
// @Success 201 {object} domain.Event
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct "unknown region"
// @Router /events [post]
func (h *Handler) createEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	regionID, err := uuid.Parse(req.RegionID)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, InvalidIDCode)
		return
	}

	input := service.CreateEventInput{
		RegionID:       regionID,
		Category:       req.Category,
		SentimentScore: *req.SentimentScore,
		SourceURL:      req.SourceURL,
		RawData:        domain.RawData(req.RawData),
		Title:          req.Title,
		Summary:        req.Summary,
	}
	if req.Timestamp != nil {
		input.Timestamp = *req.Timestamp
	}

	event, err := h.services.Events.Create(c.Request.Context(), input)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// @Summary Update Event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param input body updateEventRequest true "fields to update"
// @Success 200 {object} domain.Event
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /events/{id} [put]
func (h *Handler) updateEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	event, err := h.services.Events.Update(c.Request.Context(), id, service.UpdateEventInput{
		Category:       req.Category,
		SentimentScore: req.SentimentScore,
		Title:          req.Title,
		Summary:        req.Summary,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}
