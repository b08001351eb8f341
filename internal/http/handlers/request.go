package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yungbote/exocatalog/internal/http/response"
	"github.com/yungbote/exocatalog/internal/pkg/dbctx"
	"github.com/yungbote/exocatalog/internal/platform/apierr"
	"github.com/yungbote/exocatalog/internal/services"
)

func dbcFrom(c *gin.Context) dbctx.Context {
	return dbctx.New(c.Request.Context())
}

// pathID parses the :id segment, answering 400 invalid_id itself on failure.
func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid id %q", raw))
		return 0, false
	}
	return uint(id), true
}

// queryParam returns the value of key when it is present in the query string.
func queryParam(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok {
		return &v
	}
	return nil
}

// bindJSON decodes the body into in and runs its binding rules. An empty body
// is accepted when allowEmpty is set, leaving in untouched.
func bindJSON(c *gin.Context, in any, allowEmpty bool) bool {
	err := c.ShouldBindJSON(in)
	if err == nil {
		return true
	}
	if allowEmpty && errors.Is(err, io.EOF) {
		if verr := services.Validate(in); verr != nil {
			response.RespondAPIError(c, apierr.Validation(services.FieldErrors(verr)))
			return false
		}
		return true
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		response.RespondAPIError(c, apierr.Validation(services.FieldErrors(err)))
		return false
	}
	response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
	return false
}
