package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yungbote/exocatalog/internal/pkg/errors"
	"github.com/yungbote/exocatalog/internal/platform/apierr"
)

type APIError struct {
	Message string              `json:"message"`
	Code    string              `json:"code,omitempty"`
	Fields  []apierr.FieldError `json:"fields,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
		_ = c.Error(err)
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAPIError maps service errors onto the error envelope. Anything that
// is not an *apierr.Error is a 500.
func RespondAPIError(c *gin.Context, err error) {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		status := ae.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		_ = c.Error(err)
		c.JSON(status, ErrorEnvelope{
			Error: APIError{
				Message: ae.Error(),
				Code:    ae.Code,
				Fields:  ae.Fields,
			},
		})
		return
	}
	switch {
	case errors.Is(err, apperrors.ErrInvalidFilter):
		RespondError(c, http.StatusBadRequest, "invalid_filter", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
