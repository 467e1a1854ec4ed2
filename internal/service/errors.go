package service

import "errors"

var (
	ErrUserAlreadyExist = errors.New("user already exist")
	ErrUserNotFound     = errors.New("user not found")

	ErrRegionNotFound = errors.New("region not found")
	ErrSlugTaken      = errors.New("region slug already taken")

	ErrEventNotFound = errors.New("event not found")

	ErrCommentNotFound    = errors.New("comment not found")
	ErrLikeNotFound       = errors.New("like not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNotCommentOwner    = errors.New("comment belongs to another user")
)
