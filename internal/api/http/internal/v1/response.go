package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/citypulse/backend/internal/service"
	"github.com/citypulse/backend/pkg/logger"
)

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

// serviceErrorResponse maps service sentinels to client errors; anything
// else is an unexpected storage failure, logged and returned as 500.
func serviceErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserAlreadyExist):
		errorResponse(c, http.StatusConflict, UserAlreadyExistsCode)
	case errors.Is(err, service.ErrUserNotFound):
		errorResponse(c, http.StatusNotFound, UserNotFoundCode)
	case errors.Is(err, service.ErrRegionNotFound):
		errorResponse(c, http.StatusNotFound, RegionNotFoundCode)
	case errors.Is(err, service.ErrSlugTaken):
		errorResponse(c, http.StatusConflict, RegionSlugTakenCode)
	case errors.Is(err, service.ErrEventNotFound):
		errorResponse(c, http.StatusNotFound, EventNotFoundCode)
	case errors.Is(err, service.ErrCommentNotFound):
		errorResponse(c, http.StatusNotFound, CommentNotFoundCode)
	case errors.Is(err, service.ErrLikeNotFound):
		errorResponse(c, http.StatusNotFound, LikeNotFoundCode)
	case errors.Is(err, service.ErrAttendanceNotFound):
		errorResponse(c, http.StatusNotFound, AttendanceNotFoundCode)
	case errors.Is(err, service.ErrNotCommentOwner):
		errorResponse(c, http.StatusForbidden, NotCommentOwnerCode)
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		response := ValidationErrorStruct{
			ErrorCode:    6000,
			ErrorMessage: "Validation error",
		}
		response.Errors = out
		c.AbortWithStatusJSON(http.StatusBadRequest, response)
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "url":
		return "Invalid URL format"
	case "uuid":
		return "Must be a valid UUID"
	case "min":
		return fmt.Sprintf("Minimum length is %v", value)
	case "max":
		return fmt.Sprintf("Maximum length is %v", value)
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %v", value)
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %v", value)
	case "slug":
		return "Must be a URL-safe slug like 'san-diego'"
	}
	return tag
}
