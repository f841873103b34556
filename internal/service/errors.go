package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid        = errors.New("invalid request parameters")
	ErrPostNotFound        = errors.New("post not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrActionDuplicate     = errors.New("duplicate action")
	ErrReactionInvalid     = errors.New("reaction must be like or dislike")
	ErrStatusInvalid       = errors.New("invalid post status")
	ErrSortInvalid         = errors.New("invalid sort field")
	ErrFileNotSupported    = errors.New("unsupported file type")
	ErrConversationInvalid = errors.New("invalid conversation")
	UnauthorizedError      = errors.New("insufficient permissions")
	UnExpectedError        = errors.New("internal error, try again later")
)

// ErrorMap translates service errors into HTTP status codes; anything
// unknown becomes a 500.
var ErrorMap = map[error]int{
	ErrParamInvalid:        http.StatusBadRequest,
	ErrPostNotFound:        http.StatusNotFound,
	ErrUserNotFound:        http.StatusNotFound,
	ErrActionDuplicate:     http.StatusBadRequest,
	ErrReactionInvalid:     http.StatusBadRequest,
	ErrStatusInvalid:       http.StatusBadRequest,
	ErrSortInvalid:         http.StatusBadRequest,
	ErrFileNotSupported:    http.StatusBadRequest,
	ErrConversationInvalid: http.StatusBadRequest,
	UnauthorizedError:      http.StatusForbidden,
	UnExpectedError:        http.StatusInternalServerError,
}
