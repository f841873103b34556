package response

import (
	"Inkwell/internal/service"
	"encoding/json"
	"errors"
	"io"
	log "log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorBody is the uniform error payload; successful responses carry
// their own top-level shapes with success=true.
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OK writes a success payload. The payload is expected to carry its own
// success flag.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Fail writes an error with an explicit status.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Success: false, Message: message})
}

// Error maps a service error onto an HTTP status. Unknown errors are
// logged in full and surface as a generic 500.
func Error(c *gin.Context, err error) {
	if isBindError(err) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		log.ErrorContext(c.Request.Context(), "unhandled error", "err", err)
		Fail(c, http.StatusInternalServerError, service.UnExpectedError.Error())
		return
	}
	Fail(c, status, err.Error())
}

// isBindError recognizes the errors gin's query/body binding produces:
// validator failures, numeric conversion failures and malformed JSON.
func isBindError(err error) bool {
	var (
		ve        validator.ValidationErrors
		numErr    *strconv.NumError
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	return errors.As(err, &ve) ||
		errors.As(err, &numErr) ||
		errors.As(err, &typeErr) ||
		errors.As(err, &syntaxErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
