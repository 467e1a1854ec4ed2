package v1

import (
	"net/http"

	"github.com/citypulse/backend/internal/config"
	"github.com/citypulse/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @title City Pulse API
// @version 1.0
// @description Users, regions, events and trends over city data

// @BasePath /api/v1

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandler(services *service.Services, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initUsersRoutes(v1)
	h.initRegionsRoutes(v1)
	h.initEventsRoutes(v1)
	h.initTrendsRoutes(v1)
	h.initInteractionsRoutes(v1)
}

// parseIDParam reads a uuid path parameter, writing a 400 on failure.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, InvalidIDCode)
		return uuid.Nil, false
	}
	return id, true
}
