package account

import (
	"errors"
	"net/http"
	"strings"

	"klture/internal/ai"
	"klture/internal/api"
	"klture/internal/auth"
	"klture/internal/credit"
	"klture/internal/enrollment"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Handler struct {
	repo        Repository
	jwtSecret   string
	adminEmails map[string]bool

	enrollments enrollment.Repository
	creditRepo  credit.Repository
	reader      *credit.Reader
	aiHistory   ai.HistoryRepository
}

func NewHandler(
	repo Repository,
	jwtSecret string,
	adminEmails []string,
	enrollments enrollment.Repository,
	creditRepo credit.Repository,
	reader *credit.Reader,
	aiHistory ai.HistoryRepository,
) *Handler {
	admins := make(map[string]bool, len(adminEmails))
	for _, email := range adminEmails {
		admins[strings.ToLower(email)] = true
	}

	return &Handler{
		repo:        repo,
		jwtSecret:   jwtSecret,
		adminEmails: admins,
		enrollments: enrollments,
		creditRepo:  creditRepo,
		reader:      reader,
		aiHistory:   aiHistory,
	}
}

func (h *Handler) roleFor(email string) string {
	if h.adminEmails[strings.ToLower(email)] {
		return "admin"
	}
	return "member"
}

// SignUp godoc
// @Summary      Create a member account
// @Description  Writes a registration row that doubles as the account. A
// @Description  program label links the account to the course the member
// @Description  arrived from.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignUpRequest true "Account data"
// @Success      201 {object} AuthResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /auth/signup [post]
func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if verrs := api.ValidateStruct(req); len(verrs) > 0 {
			api.RespondWithValidationErrors(c, verrs)
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	exists, err := h.repo.EmailExists(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "database error"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "this email is already registered, please sign in"})
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to hash password"})
		return
	}

	acc, err := h.repo.Create(c.Request.Context(), req, passwordHash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create account"})
		return
	}
	acc.Role = h.roleFor(acc.Email)

	accessToken, refreshToken, err := auth.GenerateTokens(acc.ID, acc.Email, acc.Role, h.jwtSecret, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to generate tokens"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      *acc,
	})
}

// SignIn godoc
// @Summary      Sign in with email and password
// @Description  Authenticates against the newest registration row carrying
// @Description  a password; profile fields come from the newest row overall.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignInRequest true "Credentials"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /auth/signin [post]
func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email and password are required"})
		return
	}

	creds, err := h.repo.FindCredentials(c.Request.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "database error"})
		return
	}

	if creds.PasswordHash == nil || !auth.CheckPassword(*creds.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		return
	}

	acc, err := h.repo.FindLatestByEmail(c.Request.Context(), creds.Email)
	if err != nil {
		acc = &creds.Account
	}
	acc.Role = h.roleFor(acc.Email)

	accessToken, refreshToken, err := auth.GenerateTokens(acc.ID, acc.Email, acc.Role, h.jwtSecret, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      *acc,
	})
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshRequest true "Refresh token"
// @Success      200 {object} map[string]string
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "refresh token is required"})
		return
	}

	accessToken, _, err := auth.RefreshAccessToken(req.RefreshToken, h.jwtSecret, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

// ProfileResponse aggregates everything the member's profile page shows.
type ProfileResponse struct {
	Account      Account                   `json:"account"`
	Balance      decimal.Decimal           `json:"balance"`
	Enrollments  []enrollment.Registration `json:"enrollments"`
	Transactions []credit.Entry            `json:"transactions"`
	AIHistory    []ai.HistoryEntry         `json:"ai_history"`
}

// Me godoc
// @Summary      Profile aggregate of the signed-in member
// @Description  Latest account row, credit balance and ledger, enrollments
// @Description  and recent AI generations in one response.
// @Tags         me
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ProfileResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /me [get]
func (h *Handler) Me(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	acc, err := h.repo.FindLatestByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "database error"})
		return
	}
	acc.Role = h.roleFor(acc.Email)

	resp := ProfileResponse{
		Account:      *acc,
		Balance:      h.reader.Balance(c.Request.Context(), email),
		Enrollments:  []enrollment.Registration{},
		Transactions: []credit.Entry{},
		AIHistory:    []ai.HistoryEntry{},
	}

	// Side sections fail independently; the profile renders what loaded.
	if regs, err := h.enrollments.ListByEmail(c.Request.Context(), email); err == nil && regs != nil {
		resp.Enrollments = regs
	}
	if entries, err := h.creditRepo.ListEntries(c.Request.Context(), email); err == nil && entries != nil {
		resp.Transactions = entries
	}
	if history, err := h.aiHistory.ListByEmail(c.Request.Context(), email, 20); err == nil && history != nil {
		resp.AIHistory = history
	}

	c.JSON(http.StatusOK, resp)
}
