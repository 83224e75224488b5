package utils

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps sentinel errors from the service layer onto
// HTTP status codes. Anything unrecognized is a 500; the underlying error
// text leaks into the response only when DEBUG is set.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrLocationNotFound),
		errors.Is(err, ErrTagNotFound),
		errors.Is(err, ErrAddressNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidTagKind),
		errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrInvalidFileType),
		errors.Is(err, ErrEmptyUploadBody):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrIdentityNotConfigured):
		RespondError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, ErrIdentityUnavailable),
		errors.Is(err, ErrStorageUnavailable),
		errors.Is(err, ErrLookupUpstream):
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		msg := "Internal server error"
		if os.Getenv("DEBUG") == "true" {
			msg = err.Error()
		}
		RespondError(c, http.StatusInternalServerError, msg)
	}
}
