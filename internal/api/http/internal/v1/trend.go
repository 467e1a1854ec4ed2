package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/citypulse/backend/internal/service"
)

func (h *Handler) initTrendsRoutes(api *gin.RouterGroup) {
	trends := api.Group("/trends")
	trends.GET("", h.getTrends)
}

// @Summary Get Trends
// @Tags Trends
// @Description Events grouped by topic and region with count and mean sentiment
// @Produce json
// @Param region_slug query string false "region slug filter"
// @Param category query string false "category filter"
// @Param limit query int false "max groups returned (default 10, max 100)"
// @Success 200 {array} domain.TrendGroup
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct "unknown region slug"
// @Router /trends [get]
func (h *Handler) getTrends(c *gin.Context) {
	params := service.TrendParams{}

	if s := c.Query("region_slug"); s != "" {
		params.RegionSlug = &s
	}
	if s := c.Query("category"); s != "" {
		params.Category = &s
	}
	if s := c.Query("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 1 {
			errorResponse(c, http.StatusBadRequest, InvalidParamCode)
			return
		}
		params.Limit = limit
	}

	groups, err := h.services.Trends.Get(c.Request.Context(), params)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}
