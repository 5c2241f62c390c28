// Package walletdelivery manages delivery layer of wallets.
package walletdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"
	"github.com/go-petr/pet-wallet/pkg/jsonresponse"
)

// Service provides service layer interface needed by wallet delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package walletdelivery
type Service interface {
	Get(ctx context.Context, userID int64) (domain.Wallet, error)
	ListTransactions(ctx context.Context, userID int64, pageSize, pageID int32) ([]domain.Transaction, error)
}

// Handler facilitates wallet delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns wallet handler.
func NewHandler(ws Service) *Handler {
	return &Handler{
		service: ws,
	}
}

type getRequest struct {
	UserID int64 `uri:"userid" binding:"required,min=1"`
}

type data struct {
	Wallet domain.Wallet `json:"wallet"`
}

// Get handles http request to get the wallet of a user.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	wallet, err := h.service.Get(ctx, req.UserID)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.Data(data{wallet}))
}

type listRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

type dataTransactions struct {
	Transactions []domain.Transaction `json:"transactions"`
}

// ListTransactions handles http request to list the ledger transactions of a user's wallet.
func (h *Handler) ListTransactions(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uriReq getRequest
	if err := gctx.ShouldBindUri(&uriReq); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	transactions, err := h.service.ListTransactions(ctx, uriReq.UserID, req.PageSize, req.PageID)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.Data(dataTransactions{transactions}))
}

func writeError(gctx *gin.Context, err error) {
	if errors.Is(err, domain.ErrWalletNotFound) {
		gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
		return
	}

	if errors.Is(err, errorspkg.ErrUnavailable) {
		gctx.JSON(http.StatusServiceUnavailable, jsonresponse.Error(err))
		return
	}

	gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
}
