package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initInteractionsRoutes(api *gin.RouterGroup) {
	interactions := api.Group("/interactions")
	interactions.GET("", h.getInteractions)

	events := interactions.Group("/events/:id")
	events.PUT("/likes", h.addLike)
	events.DELETE("/likes", h.removeLike)
	events.PUT("/comments", h.addComment)
	events.DELETE("/comments/:comment_id", h.removeComment)
	events.PUT("/attending", h.addAttending)
	events.DELETE("/attending", h.removeAttending)
}

type likeRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type commentRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Text   string `json:"text" binding:"required,min=1,max=5000"`
}

// @Summary List Events With Interactions
// @Tags Interactions
// @Produce json
// @Param region_id query string false "region filter"
// @Success 200 {array} domain.EventInteractions
// @Failure 400 {object} ErrorStruct
// @Router /interactions [get]
func (h *Handler) getInteractions(c *gin.Context) {
	var regionID *uuid.UUID
	if s := c.Query("region_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, InvalidIDCode)
			return
		}
		regionID = &id
	}

	out, err := h.services.Interactions.List(c.Request.Context(), regionID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Like Event
// @Tags Interactions
// @Description Idempotent: liking twice is a success with a single row
// @Accept json
// @Param id path string true "Event ID"
// @Param input body likeRequest true "user liking the event"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} ErrorStruct
// @Router /interactions/events/{id}/likes [put]
func (h *Handler) addLike(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, InvalidIDCode)
		return
	}

	if err := h.services.Interactions.AddLike(c.Request.Context(), eventID, userID); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Unlike Event
// @Tags Interactions
// @Param id path string true "Event ID"
// @Param user_id query string true "user whose like to remove"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} ErrorStruct
// @Router /interactions/events/{id}/likes [delete]
func (h *Handler) removeLike(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseUserIDQuery(c)
	if !ok {
		return
	}

	if err := h.services.Interactions.RemoveLike(c.Request.Context(), eventID, userID); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Comment On Event
// @Tags Interactions
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param input body commentRequest true "comment payload"
// @Success 201 {object} domain.EventComment
// @Failure 404 {object} ErrorStruct
// @Router /interactions/events/{id}/comments [put]
func (h *Handler) addComment(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, InvalidIDCode)
		return
	}

	comment, err := h.services.Interactions.AddComment(c.Request.Context(), eventID, userID, req.Text)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// @Summary Delete Comment
// @Tags Interactions
// @Description Only the comment author may delete it
// @Param id path string true "Event ID"
// @Param comment_id path string true "Comment ID"
// @Param user_id query string true "comment author"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /interactions/events/{id}/comments/{comment_id} [delete]
func (h *Handler) removeComment(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}
	userID, ok := parseUserIDQuery(c)
	if !ok {
		return
	}

	if err := h.services.Interactions.RemoveComment(c.Request.Context(), eventID, commentID, userID); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Attend Event
// @Tags Interactions
// @Description Idempotent: marking attendance twice is a success with a single row
// @Accept json
// @Param id path string true "Event ID"
// @Param input body likeRequest true "user attending the event"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} ErrorStruct
// @Router /interactions/events/{id}/attending [put]
func (h *Handler) addAttending(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, InvalidIDCode)
		return
	}

	if err := h.services.Interactions.AddAttending(c.Request.Context(), eventID, userID); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Unattend Event
// @Tags Interactions
// @Param id path string true "Event ID"
// @Param user_id query string true "user whose attendance to remove"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} ErrorStruct
// @Router /interactions/events/{id}/attending [delete]
func (h *Handler) removeAttending(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseUserIDQuery(c)
	if !ok {
		return
	}

	if err := h.services.Interactions.RemoveAttending(c.Request.Context(), eventID, userID); err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func parseUserIDQuery(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, InvalidIDCode)
		return uuid.Nil, false
	}
	return userID, true
}
