package trainer

import (
	"errors"
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
// @Summary      Trainer roster
// @Tags         trainers
// @Produce      json
// @Success      200 {array} Trainer
// @Failure      500 {object} api.ErrorResponse
// @Router       /trainers [get]
func (h *Handler) List(c *gin.Context) {
	trainers, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load trainers"})
		return
	}

	if trainers == nil {
		trainers = []Trainer{}
	}
	c.JSON(http.StatusOK, trainers)
}

// Create godoc
// @Summary      Add a trainer (admin)
// @Tags         trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateTrainerRequest true "Trainer data"
// @Success      201 {object} Trainer
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/trainers [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "name and role are required"})
		return
	}

	trainer, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create trainer"})
		return
	}

	c.JSON(http.StatusCreated, trainer)
}

// Delete godoc
// @Summary      Remove a trainer (admin)
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Trainer ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/trainers/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid trainer id"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete trainer"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "trainer deleted"})
}
