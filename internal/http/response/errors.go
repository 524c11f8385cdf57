package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ideaforge/ideaforge-backend/internal/platform/apperr"
)

// RespondDomainError maps core error types onto HTTP statuses. Serialization
// conflicts come back as 503 so clients know the operation is retryable.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case apperr.IsNotFound(err):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case apperr.IsInvalidState(err):
		RespondError(c, http.StatusConflict, "invalid_state", err)
	case apperr.IsValidation(err):
		RespondError(c, http.StatusBadRequest, "validation_failed", err)
	case apperr.IsSerializationConflict(err):
		RespondError(c, http.StatusServiceUnavailable, "conflict_retry", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
