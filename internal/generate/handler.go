package generate

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-renderer/internal/shared/server/middleware"
	"resume-renderer/internal/shared/server/respond"
	"resume-renderer/internal/shared/telemetry"
	"resume-renderer/internal/shared/util"
)

const defaultMaxBodyBytes = 1 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc          *Service
	MaxBodyBytes int64
}

// NewHandler constructs a Handler. maxBodyBytes <= 0 means 1 MiB.
func NewHandler(svc *Service, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &Handler{Svc: svc, MaxBodyBytes: maxBodyBytes}
}

// RegisterRoutes attaches the generate route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBodyBytes)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large",
				fmt.Sprintf("Request body exceeds %d bytes.", h.MaxBodyBytes))
			return
		}
		respond.Error(c, http.StatusBadRequest, "invalid_input", "Unable to read request body.")
		return
	}

	doc, err := h.Svc.Generate(c.Request.Context(), body)
	if err != nil {
		status, code, message := statusFor(err)
		if status >= http.StatusInternalServerError {
			telemetry.Error("generate.render_failed", map[string]any{
				"request_id": middleware.RequestIDFromContext(c),
				"error":      err,
			})
		}
		respond.Error(c, status, code, message)
		return
	}

	middleware.SetDocument(c, string(doc.Format), len(doc.Bytes))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.DownloadName))
	c.Header("Content-Length", strconv.Itoa(len(doc.Bytes)))
	c.Header("ETag", `"`+util.HashBytes(doc.Bytes)+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Bytes)
}
