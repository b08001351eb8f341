package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/exocatalog/internal/http/response"
	"github.com/yungbote/exocatalog/internal/services"
)

type ReportHandler struct {
	reports services.ReportService
}

func NewReportHandler(reports services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GET /report
func (h *ReportHandler) Index(c *gin.Context) {
	response.RespondOK(c, gin.H{"forms": h.reports.Forms()})
}

// Form serves the field schema of one report form.
func (h *ReportHandler) Form(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := h.reports.Form(kind)
		if err != nil {
			response.RespondAPIError(c, err)
			return
		}
		response.RespondOK(c, form)
	}
}

// Submit creates one record from a form post and redirects to its list.
func (h *ReportHandler) Submit(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() == gin.MIMEMultipartPOSTForm {
			if err := c.Request.ParseMultipartForm(1 << 20); err != nil {
				response.RespondError(c, http.StatusBadRequest, "invalid_form", err)
				return
			}
		} else if err := c.Request.ParseForm(); err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_form", err)
			return
		}
		location, err := h.reports.Submit(dbcFrom(c), kind, c.Request.PostForm)
		if err != nil {
			response.RespondAPIError(c, err)
			return
		}
		c.Redirect(http.StatusFound, location)
	}
}
