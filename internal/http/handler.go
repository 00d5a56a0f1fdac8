package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"vrm-lookup/internal/dvla"
	"vrm-lookup/internal/service"
)

const (
	serviceName    = "UK VRM Lookup"
	serviceVersion = "1.0.0"
	serviceDocs    = "/docs"
)

type Handler struct {
	lookupService *service.LookupService
	log           zerolog.Logger
}

func NewHandler(lookupService *service.LookupService, log zerolog.Logger) *Handler {
	return &Handler{
		lookupService: lookupService,
		log:           log,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.root)
	r.GET("/health", h.health)
	r.POST("/lookup", h.lookup)
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": serviceName,
		"version": serviceVersion,
		"docs":    serviceDocs,
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type lookupRequest struct {
	Plate string `json:"plate"`
}

func (h *Handler) lookup(c *gin.Context) {
	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	result, err := h.lookupService.Lookup(c.Request.Context(), req.Plate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var upstreamErr *dvla.UpstreamError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse("plate required"))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse("Vehicle not found"))
	case errors.As(err, &upstreamErr):
		h.log.Error().
			Int("upstream_status", upstreamErr.Status).
			Str("upstream_message", upstreamErr.Message).
			Msg("upstream lookup failure")
		c.JSON(upstreamErr.Status, errorResponse("DVLA error: "+upstreamErr.Message))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
