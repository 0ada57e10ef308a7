package catalog

import (
	"net/http"

	"klture/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

// ListMiniPrograms godoc
// @Summary      List mini programs
// @Tags         catalog
// @Produce      json
// @Success      200 {array} MiniProgram
// @Failure      500 {object} api.ErrorResponse
// @Router       /catalog/mini [get]
func (h *Handler) ListMiniPrograms(c *gin.Context) {
	programs, err := h.repo.ListMiniPrograms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load mini programs"})
		return
	}

	c.JSON(http.StatusOK, programs)
}

// ListOtherPrograms godoc
// @Summary      List other live programs
// @Tags         catalog
// @Produce      json
// @Success      200 {array} OtherProgram
// @Failure      500 {object} api.ErrorResponse
// @Router       /catalog/other [get]
func (h *Handler) ListOtherPrograms(c *gin.Context) {
	programs, err := h.repo.ListOtherPrograms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load programs"})
		return
	}

	c.JSON(http.StatusOK, programs)
}

// ListOnlineCourses godoc
// @Summary      List online courses
// @Tags         catalog
// @Produce      json
// @Success      200 {array} OnlineCourse
// @Failure      500 {object} api.ErrorResponse
// @Router       /catalog/online [get]
func (h *Handler) ListOnlineCourses(c *gin.Context) {
	courses, err := h.repo.ListOnlineCourses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load online courses"})
		return
	}

	c.JSON(http.StatusOK, courses)
}

// ListFreeCourses godoc
// @Summary      List free video courses
// @Tags         catalog
// @Produce      json
// @Success      200 {array} FreeCourse
// @Failure      500 {object} api.ErrorResponse
// @Router       /catalog/free [get]
func (h *Handler) ListFreeCourses(c *gin.Context) {
	courses, err := h.repo.ListFreeCourses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load free courses"})
		return
	}

	c.JSON(http.StatusOK, courses)
}

func (h *Handler) CreateMiniProgram(c *gin.Context) {
	var req CreateMiniProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.repo.CreateMiniProgram(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create mini program"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) CreateOtherProgram(c *gin.Context) {
	var req CreateOtherProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.repo.CreateOtherProgram(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create program"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) CreateOnlineCourse(c *gin.Context) {
	var req CreateOnlineCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	course, err := h.repo.CreateOnlineCourse(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create online course"})
		return
	}

	c.JSON(http.StatusCreated, course)
}

func (h *Handler) CreateFreeCourse(c *gin.Context) {
	var req CreateFreeCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	course, err := h.repo.CreateFreeCourse(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create free course"})
		return
	}

	c.JSON(http.StatusCreated, course)
}
