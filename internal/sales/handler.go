package sales

import (
	"net/http"
	"strconv"

	"klture/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary      Sales ledger (admin)
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Max rows"   default(50)
// @Param        offset query int false "Row offset" default(0)
// @Success      200 {array} Record
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/sales [get]
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	records, err := h.repo.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load sales records"})
		return
	}

	if records == nil {
		records = []Record{}
	}
	c.JSON(http.StatusOK, records)
}
