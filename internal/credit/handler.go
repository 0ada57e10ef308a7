package credit

import (
	"context"
	"net/http"

	"klture/internal/api"
	"klture/internal/auth"
	"klture/internal/logger"
	"klture/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// ReceiptSender queues the confirmation mail for a recorded top-up.
// Satisfied by the email service.
type ReceiptSender interface {
	SendTopUpReceipt(ctx context.Context, to, name, amount string) error
}

// NameLookup resolves a member's display name for the receipt. The account
// store lives in another package, so the server wires it in as a closure.
type NameLookup func(ctx context.Context, email string) (string, bool)

type Handler struct {
	repo     Repository
	reader   *Reader
	receipts ReceiptSender
	names    NameLookup
}

func NewHandler(db *sqlx.DB, receipts ReceiptSender, names NameLookup) *Handler {
	repo := NewRepository(db)
	return &Handler{
		repo:     repo,
		reader:   NewReader(repo),
		receipts: receipts,
		names:    names,
	}
}

// Reader exposes the balance reader for wiring into the enrollment service.
func (h *Handler) Reader() *Reader {
	return h.reader
}

// GetBalance godoc
// @Summary      Current credit balance of the caller
// @Tags         credits
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} BalanceResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /credits/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	balance := h.reader.Balance(c.Request.Context(), email)

	c.JSON(http.StatusOK, BalanceResponse{UserEmail: email, Balance: balance})
}

// ListTransactions godoc
// @Summary      Credit ledger entries of the caller, newest first
// @Tags         credits
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Entry
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /credits/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	entries, err := h.repo.ListEntries(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load transactions"})
		return
	}

	if entries == nil {
		entries = []Entry{}
	}
	c.JSON(http.StatusOK, entries)
}

// TopUp godoc
// @Summary      Credit a member's wallet (sales staff)
// @Tags         credits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TopUpRequest true "Top-up data"
// @Success      201 {object} Entry
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/credits/topup [post]
func (h *Handler) TopUp(c *gin.Context) {
	adminEmail, _ := auth.GetUserEmail(c)

	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "amount must be positive"})
		return
	}

	entry, err := h.repo.TopUp(c.Request.Context(), req.UserEmail, req.Amount, req.Note, adminEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to record top-up"})
		return
	}

	metrics.RecordCreditTopUp()
	h.reader.Refresh(c.Request.Context(), req.UserEmail)

	// The receipt is a courtesy: a queue failure never fails the top-up.
	if h.receipts != nil {
		name := req.UserEmail
		if h.names != nil {
			if n, ok := h.names(c.Request.Context(), req.UserEmail); ok {
				name = n
			}
		}
		if err := h.receipts.SendTopUpReceipt(c.Request.Context(), req.UserEmail, name, req.Amount.StringFixed(2)); err != nil {
			logger.Errorf("failed to queue top-up receipt for %s: %v", req.UserEmail, err)
		}
	}

	c.JSON(http.StatusCreated, entry)
}

// Adjust godoc
// @Summary      Record a manual ledger adjustment (either sign)
// @Tags         credits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AdjustRequest true "Adjustment data"
// @Success      201 {object} Entry
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/credits/adjust [post]
func (h *Handler) Adjust(c *gin.Context) {
	adminEmail, _ := auth.GetUserEmail(c)

	var req AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if req.Amount.IsZero() {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "amount must be non-zero"})
		return
	}

	entry, err := h.repo.Adjust(c.Request.Context(), req.UserEmail, req.Amount, req.Note, adminEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to record adjustment"})
		return
	}

	h.reader.Refresh(c.Request.Context(), req.UserEmail)

	c.JSON(http.StatusCreated, entry)
}
