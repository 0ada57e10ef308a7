package community

import (
	"errors"
	"net/http"

	"klture/internal/api"
	"klture/internal/auth"
	"klture/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// ListMembers godoc
// @Summary      Community member directory
// @Description  One entry per email, newest registration first. Passwords
// @Description  are never included.
// @Tags         community
// @Produce      json
// @Success      200 {array} Member
// @Failure      500 {object} api.ErrorResponse
// @Router       /community/members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	members, err := h.repo.ListMembers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load members"})
		return
	}

	if members == nil {
		members = []Member{}
	}
	c.JSON(http.StatusOK, members)
}

// MyFollows godoc
// @Summary      Emails the caller follows
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} string
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /me/follows [get]
func (h *Handler) MyFollows(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	emails, err := h.repo.ListFollowing(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load follows"})
		return
	}

	if emails == nil {
		emails = []string{}
	}
	c.JSON(http.StatusOK, emails)
}

// Follow godoc
// @Summary      Follow a member
// @Tags         community
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body FollowRequest true "Member to follow"
// @Success      201 {object} Follow
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /community/follow [post]
func (h *Handler) Follow(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "a valid email is required"})
		return
	}

	follow, err := h.repo.Follow(c.Request.Context(), email, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfFollow):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrAlreadyFollowing):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to follow"})
		}
		return
	}

	metrics.RecordFollow("follow")
	c.JSON(http.StatusCreated, follow)
}

// Unfollow godoc
// @Summary      Unfollow a member
// @Tags         community
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body FollowRequest true "Member to unfollow"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /community/unfollow [post]
func (h *Handler) Unfollow(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "a valid email is required"})
		return
	}

	if err := h.repo.Unfollow(c.Request.Context(), email, req.Email); err != nil {
		if errors.Is(err, ErrNotFollowing) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to unfollow"})
		return
	}

	metrics.RecordFollow("unfollow")
	c.JSON(http.StatusOK, api.MessageResponse{Message: "unfollowed"})
}
