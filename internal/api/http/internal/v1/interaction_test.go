package v1

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/citypulse/backend/internal/domain"
	"github.com/citypulse/backend/internal/service"
)

func TestAddLike(t *testing.T) {
	interactionsService := new(MockInteractionsService)
	router := newTestRouter(&service.Services{Interactions: interactionsService})

	eventID := uuid.New()
	userID := uuid.New()
	interactionsService.On("AddLike", mock.Anything, eventID, userID).Return(nil)

	recorder := performRequest(t, router, http.MethodPut,
		"/api/v1/interactions/events/"+eventID.String()+"/likes",
		`{"user_id":"`+userID.String()+`"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true}`, recorder.Body.String())
}

func TestRemoveLike_Missing(t *testing.T) {
	interactionsService := new(MockInteractionsService)
	router := newTestRouter(&service.Services{Interactions: interactionsService})

	eventID := uuid.New()
	userID := uuid.New()
	interactionsService.On("RemoveLike", mock.Anything, eventID, userID).Return(service.ErrLikeNotFound)

	recorder := performRequest(t, router, http.MethodDelete,
		"/api/v1/interactions/events/"+eventID.String()+"/likes?user_id="+userID.String(), "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var response ErrorStruct
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, ErrorCode(LikeNotFoundCode), response.ErrorCode)
}

func TestRemoveLike_MissingUserIDQuery(t *testing.T) {
	interactionsService := new(MockInteractionsService)
	router := newTestRouter(&service.Services{Interactions: interactionsService})

	recorder := performRequest(t, router, http.MethodDelete,
		"/api/v1/interactions/events/"+uuid.NewString()+"/likes", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	interactionsService.AssertNotCalled(t, "RemoveLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddComment(t *testing.T) {
	interactionsService := new(MockInteractionsService)
	router := newTestRouter(&service.Services{Interactions: interactionsService})

	eventID := uuid.New()
	userID := uuid.New()
	comment := &domain.EventComment{ID: uuid.New(), EventID: eventID, UserID: userID, Text: "stay inside"}
	interactionsService.On("AddComment", mock.Anything, eventID, userID, "stay inside").Return(comment, nil)

	recorder := performRequest(t, router, http.MethodPut,
		"/api/v1/interactions/events/"+eventID.String()+"/comments",
		`{"user_id":"`+userID.String()+`","text":"stay inside"}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var out domain.EventComment
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out))
	assert.Equal(t, comment.ID, out.ID)
}

func TestRemoveComment_Forbidden(t *testing.T) {
	interactionsService := new(MockInteractionsService)
	router := newTestRouter(&service.Services{Interactions: interactionsService})

	eventID := uuid.New()
	commentID := uuid.New()
	userID := uuid.New()
	interactionsService.On("RemoveComment", mock.Anything, eventID, commentID, userID).
		Return(service.ErrNotCommentOwner)

	recorder := performRequest(t, router, http.MethodDelete,
		"/api/v1/interactions/events/"+eventID.String()+"/comments/"+commentID.String()+
			"?user_id="+userID.String(), "")

	assert.Equal(t, http.StatusForbidden, recorder.Code)

	var response ErrorStruct
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, ErrorCode(NotCommentOwnerCode), response.ErrorCode)
}

func TestGetInteractions_RegionFilter(t *testing.T) {
	interactionsService := new(MockInteractionsService)
	router := newTestRouter(&service.Services{Interactions: interactionsService})

	regionID := uuid.New()
	interactionsService.On("List", mock.Anything, mock.MatchedBy(func(id *uuid.UUID) bool {
		return id != nil && *id == regionID
	})).Return([]domain.EventInteractions{}, nil)

	recorder := performRequest(t, router, http.MethodGet,
		"/api/v1/interactions?region_id="+regionID.String(), "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())
}

func TestAddAttending_UnknownEvent(t *testing.T) {
	interactionsService := new(MockInteractionsService)
	router := newTestRouter(&service.Services{Interactions: interactionsService})

	eventID := uuid.New()
	userID := uuid.New()
	interactionsService.On("AddAttending", mock.Anything, eventID, userID).Return(service.ErrEventNotFound)

	recorder := performRequest(t, router, http.MethodPut,
		"/api/v1/interactions/events/"+eventID.String()+"/attending",
		`{"user_id":"`+userID.String()+`"}`)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
