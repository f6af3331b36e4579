package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/greenlens/backend/internal/domain"
	"github.com/greenlens/backend/internal/usecase"
	"github.com/greenlens/backend/pkg/logger"
	"go.uber.org/zap"
)

// Version is reported by the health check
const Version = "1.0.0"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service *usecase.SustainabilityService
}

// NewHandler creates a new HTTP handler. A nil service leaves the panel
// endpoints answering 503.
func NewHandler(service *usecase.SustainabilityService) *Handler {
	return &Handler{service: service}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "greenlens-backend",
		"version": Version,
	})
}

// ListSections returns the dashboard navigation
func (h *Handler) ListSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": usecase.SectionList()})
}

// GetSectionForm returns a panel's input contract
func (h *Handler) GetSectionForm(c *gin.Context) {
	section, err := domain.ParseSection(c.Param("section"))
	if err != nil {
		respondError(c, err)
		return
	}
	form, err := usecase.PanelForm(section)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// Dashboard returns the static overview datasets
func (h *Handler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, usecase.DashboardOverview())
}

// switchSectionRequest is the body of PUT /session/section
type switchSectionRequest struct {
	Section string `json:"section" binding:"required"`
}

// GetSession returns the caller's view state
func (h *Handler) GetSession(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	state, err := h.service.Session(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SwitchSection changes the caller's active view
func (h *Handler) SwitchSection(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	var req switchSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}
	section, err := domain.ParseSection(req.Section)
	if err != nil {
		respondError(c, err)
		return
	}
	state, err := h.service.SwitchSection(c.Request.Context(), sessionID(c), section)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// CalculateCarbon handles carbon footprint requests
func (h *Handler) CalculateCarbon(c *gin.Context) {
	var req domain.CarbonRequest
	if !h.ready(c) || !bindForm(c, &req) {
		return
	}
	result, err := h.service.CalculateCarbon(c.Request.Context(), sessionID(c), &req)
	respond(c, result, err)
}

// GetCarbonResult returns the latest carbon result
func (h *Handler) GetCarbonResult(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	result, err := h.service.CarbonResult(c.Request.Context(), sessionID(c))
	respond(c, result, err)
}

// AnalyzeESG handles ESG scoring requests
func (h *Handler) AnalyzeESG(c *gin.Context) {
	var req domain.ESGRequest
	if !h.ready(c) || !bindForm(c, &req) {
		return
	}
	result, err := h.service.AnalyzeESG(c.Request.Context(), sessionID(c), &req)
	respond(c, result, err)
}

// GetESGResult returns the latest ESG result
func (h *Handler) GetESGResult(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	result, err := h.service.ESGResult(c.Request.Context(), sessionID(c))
	respond(c, result, err)
}

// SuggestPackaging handles packaging recommendation requests
func (h *Handler) SuggestPackaging(c *gin.Context) {
	var req domain.PackagingRequest
	if !h.ready(c) || !bindForm(c, &req) {
		return
	}
	result, err := h.service.SuggestPackaging(c.Request.Context(), sessionID(c), &req)
	respond(c, result, err)
}

// GetPackagingResult returns the latest packaging result
func (h *Handler) GetPackagingResult(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	result, err := h.service.PackagingResult(c.Request.Context(), sessionID(c))
	respond(c, result, err)
}

// RecommendProducts handles product recommendation requests
func (h *Handler) RecommendProducts(c *gin.Context) {
	var req domain.RecommendationRequest
	if !h.ready(c) || !bindForm(c, &req) {
		return
	}
	result, err := h.service.RecommendProducts(c.Request.Context(), sessionID(c), &req)
	respond(c, result, err)
}

// GetProductsResult returns the latest recommendation result
func (h *Handler) GetProductsResult(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	result, err := h.service.ProductsResult(c.Request.Context(), sessionID(c))
	respond(c, result, err)
}

// ListCatalog returns every catalog product
func (h *Handler) ListCatalog(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	products, err := h.service.Catalog(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

// GetProduct returns one catalog product
func (h *Handler) GetProduct(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}
	product, err := h.service.Product(c.Request.Context(), id)
	respond(c, product, err)
}

// ready answers 503 when no service is wired
func (h *Handler) ready(c *gin.Context) bool {
	if h.service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "sustainability service not configured",
		})
		return false
	}
	return true
}

// bindForm decodes a panel form. An empty body is an empty form, so every
// field takes its default.
func bindForm(c *gin.Context, req any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return false
	}
	return true
}

func respond(c *gin.Context, result any, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownSection),
		errors.Is(err, domain.ErrResultNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAnalysisInProgress):
		return http.StatusConflict
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		message = "internal server error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
