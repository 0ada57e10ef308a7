package ai

import (
	"errors"
	"net/http"
	"strconv"

	"klture/internal/api"
	"klture/internal/auth"
	"klture/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Marketing godoc
// @Summary      Generate a marketing campaign strategy
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body MarketingInput true "Campaign brief"
// @Success      200 {object} map[string]string
// @Failure      400 {object} api.ErrorResponse
// @Failure      502 {object} api.ErrorResponse
// @Router       /ai/marketing [post]
func (h *Handler) Marketing(c *gin.Context) {
	email, _ := auth.GetUserEmail(c)

	var in MarketingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "business name, product/service and budget are required"})
		return
	}

	text, err := h.service.MarketingCampaign(c.Request.Context(), in)
	if err != nil {
		metrics.RecordAIGeneration(ToolMarketing, "failed")
		if errors.Is(err, ErrNoAPIKey) {
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "ai generation is not configured"})
			return
		}
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to generate campaign"})
		return
	}

	metrics.RecordAIGeneration(ToolMarketing, "success")
	h.service.recordHistory(c.Request.Context(), email, ToolMarketing, in, gin.H{"text": text})

	c.JSON(http.StatusOK, gin.H{"text": text})
}

// Boosting godoc
// @Summary      Derive a boosted-post plan
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body BoostingInput true "Post details"
// @Success      200 {object} BoostingResult
// @Failure      400 {object} api.ErrorResponse
// @Router       /ai/boosting [post]
func (h *Handler) Boosting(c *gin.Context) {
	email, _ := auth.GetUserEmail(c)

	var in BoostingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "business, budget and days are required"})
		return
	}

	result, err := BoostingPlan(in)
	if err != nil {
		metrics.RecordAIGeneration(ToolBoosting, "failed")
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	metrics.RecordAIGeneration(ToolBoosting, "success")
	h.service.recordHistory(c.Request.Context(), email, ToolBoosting, in, result)

	c.JSON(http.StatusOK, result)
}

// Spy godoc
// @Summary      Estimate a competitor post's ad setup
// @Tags         ai
// @Produce      json
// @Security     BearerAuth
// @Param        url query string true "Post URL"
// @Success      200 {object} SpyResult
// @Failure      400 {object} api.ErrorResponse
// @Router       /ai/spy [get]
func (h *Handler) Spy(c *gin.Context) {
	email, _ := auth.GetUserEmail(c)

	postURL := c.Query("url")
	if postURL == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "url is required"})
		return
	}

	result := SpyAnalysis(postURL)

	metrics.RecordAIGeneration(ToolSpy, "success")
	h.service.recordHistory(c.Request.Context(), email, ToolSpy, gin.H{"url": postURL}, result)

	c.JSON(http.StatusOK, result)
}

// Paraphrase godoc
// @Summary      Rewrite content into short post variations
// @Description  Falls back to locally synthesized variants when the model
// @Description  is unreachable; the provider field marks simulated output.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ParaphraseInput true "Content to rewrite"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} api.ErrorResponse
// @Router       /ai/paraphrase [post]
func (h *Handler) Paraphrase(c *gin.Context) {
	email, _ := auth.GetUserEmail(c)

	var in ParaphraseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "content is required"})
		return
	}

	tweets, provider := h.service.TweetVariations(c.Request.Context(), in)

	status := "success"
	if provider == fallbackProvider {
		status = "fallback"
	}
	metrics.RecordAIGeneration(ToolParaphrase, status)
	h.service.recordHistory(c.Request.Context(), email, ToolParaphrase, in, gin.H{"tweets": tweets, "provider": provider})

	c.JSON(http.StatusOK, gin.H{"tweets": tweets, "provider": provider})
}

// History godoc
// @Summary      Recent AI generations of the caller
// @Tags         ai
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Max entries" default(20)
// @Success      200 {array} HistoryEntry
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /me/ai-history [get]
func (h *Handler) History(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, err := h.service.history.ListByEmail(c.Request.Context(), email, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load history"})
		return
	}

	if entries == nil {
		entries = []HistoryEntry{}
	}
	c.JSON(http.StatusOK, entries)
}
