package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pravhesh/GrievAI/internal/usecase"
)

// ErrorResponse represents a mapped HTTP error
type ErrorResponse struct {
	StatusCode int
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// It provides consistent error handling across all handlers; unknown
// errors collapse to a generic 503 so internals never leak to clients.
func MapUsecaseError(err error) ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrEmptyText):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Message:    "Text cannot be empty",
		}
	case errors.Is(err, usecase.ErrEmptyImageURL):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Message:    "image_url cannot be empty",
		}
	case errors.Is(err, usecase.ErrClassificationTimeout):
		return ErrorResponse{
			StatusCode: http.StatusServiceUnavailable,
			Message:    "Classification timed out, please retry",
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusServiceUnavailable,
			Message:    "Classification service unavailable",
		}
	}
}

// HandleUsecaseError handles a usecase error by sending the mapped
// HTTP response.
func HandleUsecaseError(c *gin.Context, err error) {
	errResp := MapUsecaseError(err)
	respondDetail(c, errResp.StatusCode, errResp.Message)
}
