package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	UserAlreadyExistsCode    = 1001
	UserAlreadyExistsMessage = "user already exists"
	UserNotFoundCode         = 1002
	UserNotFoundMessage      = "user not found"

	RegionNotFoundCode     = 2001
	RegionNotFoundMessage  = "region not found"
	RegionSlugTakenCode    = 2002
	RegionSlugTakenMessage = "region slug already taken"

	EventNotFoundCode    = 3001
	EventNotFoundMessage = "event not found"

	CommentNotFoundCode       = 4001
	CommentNotFoundMessage    = "comment not found"
	LikeNotFoundCode          = 4002
	LikeNotFoundMessage       = "like not found"
	AttendanceNotFoundCode    = 4003
	AttendanceNotFoundMessage = "attendance record not found"
	NotCommentOwnerCode       = 4004
	NotCommentOwnerMessage    = "comment belongs to another user"

	InvalidIDCode       = 5001
	InvalidIDMessage    = "invalid id"
	InvalidParamCode    = 5002
	InvalidParamMessage = "invalid query parameter"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

var errorMessages = map[ErrorCode]ErrorMessage{
	UserAlreadyExistsCode:  UserAlreadyExistsMessage,
	UserNotFoundCode:       UserNotFoundMessage,
	RegionNotFoundCode:     RegionNotFoundMessage,
	RegionSlugTakenCode:    RegionSlugTakenMessage,
	EventNotFoundCode:      EventNotFoundMessage,
	CommentNotFoundCode:    CommentNotFoundMessage,
	LikeNotFoundCode:       LikeNotFoundMessage,
	AttendanceNotFoundCode: AttendanceNotFoundMessage,
	NotCommentOwnerCode:    NotCommentOwnerMessage,
	InvalidIDCode:          InvalidIDMessage,
	InvalidParamCode:       InvalidParamMessage,
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	if message, ok := errorMessages[code]; ok {
		return &ErrorStruct{ErrorCode: code, ErrorMessage: message}
	}
	return &ErrorStruct{ErrorCode: UnknownErrorCode, ErrorMessage: UnknownErrorMessage}
}
