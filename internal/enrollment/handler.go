package enrollment

import (
	"errors"
	"net/http"

	"klture/internal/api"
	"klture/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary      Enroll in a program or course
// @Description  Writes a registration. Priced programs require a signed-in
// @Description  caller with sufficient credit balance; free programs accept
// @Description  anonymous callers (a password creates an account).
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Param        request body RegisterInput true "Registration data"
// @Success      201 {object} Outcome
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      402 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /enroll [post]
func (h *Handler) Register(c *gin.Context) {
	var in RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		if verrs := api.ValidateStruct(in); len(verrs) > 0 {
			api.RespondWithValidationErrors(c, verrs)
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	callerEmail, _ := auth.GetUserEmail(c)

	outcome, err := h.service.Register(c.Request.Context(), in, callerEmail)
	if err != nil {
		switch {
		case errors.Is(err, ErrAuthRequired):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrAlreadyEnrolled):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrPasswordRequired), errors.Is(err, ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to register"})
		}
		return
	}

	c.JSON(http.StatusCreated, outcome)
}

// Quote godoc
// @Summary      Affordability check for a program
// @Description  Returns price, balance and shortfall for the caller without
// @Description  writing anything. Anonymous callers never have funds.
// @Tags         enrollments
// @Produce      json
// @Param        program query string true "Program label"
// @Success      200 {object} Quote
// @Failure      500 {object} api.ErrorResponse
// @Router       /enroll/quote [get]
func (h *Handler) Quote(c *gin.Context) {
	program := c.Query("program")
	callerEmail, _ := auth.GetUserEmail(c)

	quote, err := h.service.QuoteFor(c.Request.Context(), program, callerEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to compute quote"})
		return
	}

	c.JSON(http.StatusOK, quote)
}

// MyEnrollments godoc
// @Summary      Registrations of the signed-in member
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Registration
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /me/enrollments [get]
func (h *Handler) MyEnrollments(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	regs, err := h.service.MyEnrollments(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load enrollments"})
		return
	}

	if regs == nil {
		regs = []Registration{}
	}
	c.JSON(http.StatusOK, regs)
}
