// Package transferservice manages business logic layer of deposits and transfers.
package transferservice

import (
	"context"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	Deposit(ctx context.Context, toUserID int64, amount string) (domain.TransferTxResult, error)
	Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	repo Repo
}

// New returns transfer service struct to manage deposit and transfer bussines logic.
func New(tr Repo) *Service {
	return &Service{
		repo: tr,
	}
}

// Deposit validates the requested amount and then credits it into the wallet
// of the given user. Validation failures abort the call before any store access.
func (s *Service) Deposit(ctx context.Context, toUserID int64, amount string) (domain.TransferTxResult, error) {
	l := zerolog.Ctx(ctx)

	if _, err := domain.ValidAmount(amount); err != nil {
		l.Info().Err(err).Send()
		return domain.TransferTxResult{}, err
	}

	return s.repo.Deposit(ctx, toUserID, amount)
}

// Transfer validates the request and then moves the amount between the
// wallets of two distinct users. Sufficient funds are re-checked by the
// engine against the locked sending balance.
func (s *Service) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error) {
	l := zerolog.Ctx(ctx)

	if _, err := domain.ValidAmount(arg.Amount); err != nil {
		l.Info().Err(err).Send()
		return domain.TransferTxResult{}, err
	}

	if err := domain.ValidParties(arg.FromUserID, arg.ToUserID); err != nil {
		l.Info().Err(err).Send()
		return domain.TransferTxResult{}, err
	}

	return s.repo.Transfer(ctx, arg)
}
