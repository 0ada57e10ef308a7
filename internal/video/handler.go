package video

import (
	"net/http"

	"klture/internal/api"

	"github.com/gin-gonic/gin"
)

// ResolveHandler godoc
// @Summary      Resolve a pasted video URL into an embeddable player URL
// @Tags         video
// @Produce      json
// @Param        url query string true "Raw video URL"
// @Success      200 {object} Resolution
// @Failure      400 {object} api.ErrorResponse
// @Router       /video/resolve [get]
func ResolveHandler(c *gin.Context) {
	raw := c.Query("url")
	if raw == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "url parameter required"})
		return
	}

	c.JSON(http.StatusOK, Resolve(raw))
}
