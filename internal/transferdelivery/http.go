// Package transferdelivery manages delivery layer of deposits and transfers.
package transferdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"
	"github.com/go-petr/pet-wallet/pkg/jsonresponse"
)

// validAmountInput reports whether the bound amount parses as a decimal
// number. Positivity stays a service rule so that its error can name the
// offending value.
var validAmountInput validator.Func = func(fl validator.FieldLevel) bool {
	if raw, ok := fl.Field().Interface().(string); ok {
		_, err := decimal.NewFromString(raw)
		return err == nil
	}

	return false
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("amount", validAmountInput)
	}
}

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Deposit(ctx context.Context, toUserID int64, amount string) (domain.TransferTxResult, error)
	Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

type depositRequest struct {
	UserID int64  `json:"user_id" binding:"required,min=1"`
	Amount string `json:"amount" binding:"required,amount"`
}

type transferRequest struct {
	FromUserID int64  `json:"from_user_id" binding:"required,min=1"`
	ToUserID   int64  `json:"to_user_id" binding:"required,min=1"`
	Amount     string `json:"amount" binding:"required,amount"`
}

type data struct {
	DebitTransactionID  int64  `json:"debit_transaction_id"`
	CreditTransactionID *int64 `json:"credit_transaction_id"`
}

func newData(result domain.TransferTxResult) data {
	d := data{
		DebitTransactionID: result.DebitTransaction.ID,
	}

	if result.CreditTransaction != nil {
		d.CreditTransactionID = &result.CreditTransaction.ID
	}

	return d
}

// Deposit handles http request to credit money into a user's wallet.
func (h *Handler) Deposit(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req depositRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	result, err := h.service.Deposit(ctx, req.UserID, req.Amount)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.Data(newData(result)))
}

// Transfer handles http request to move money between two users' wallets.
func (h *Handler) Transfer(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req transferRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	arg := domain.CreateTransferParams{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Amount:     req.Amount,
	}

	result, err := h.service.Transfer(ctx, arg)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.Data(newData(result)))
}

// writeError maps service errors to http status codes. Validation failures
// keep their message naming the violated rule and the offending value.
func writeError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrSameParty),
		errors.Is(err, domain.ErrInsufficientFunds):
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
	case errors.Is(err, domain.ErrWalletNotFound):
		gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
	case errors.Is(err, errorspkg.ErrUnavailable):
		gctx.JSON(http.StatusServiceUnavailable, jsonresponse.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
	}
}
