package page

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-page/internal/shared/server/middleware"
	"resume-page/internal/shared/server/respond"
	"resume-page/internal/shared/util"
	"resume-page/resume/loader"
	"resume-page/resume/render"
)

const htmlContentType = "text/html; charset=utf-8"

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the page route.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.page)
}

// RegisterAPIRoutes attaches the document route to the API group.
func (h *Handler) RegisterAPIRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume", h.document)
}

func (h *Handler) page(c *gin.Context) {
	view, err := h.Svc.Render(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to render page", nil)
		return
	}
	c.Set(middleware.PageStateKey, view.State().String())

	var buf bytes.Buffer
	if err := view.WriteHTML(&buf); err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to render page", nil)
		return
	}

	if view.State() == render.StateError {
		c.Data(http.StatusServiceUnavailable, htmlContentType, buf.Bytes())
		return
	}

	etag := util.ETag(buf.Bytes())
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

func (h *Handler) document(c *gin.Context) {
	doc, err := h.Svc.Document(c.Request.Context())
	if err != nil {
		if unavailable, ok := loader.AsUnavailable(err); ok {
			respond.Error(c, http.StatusServiceUnavailable, respond.CodeDataUnavailable, "resume data unavailable", gin.H{
				"location": unavailable.Location,
				"detail":   unavailable.Detail(),
				"status":   unavailable.Status(),
			})
			return
		}
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to load resume", nil)
		return
	}
	respond.OK(c, doc)
}
