// Package walletservice manages business logic layer of wallets.
package walletservice

import (
	"context"

	"github.com/go-petr/pet-wallet/internal/domain"
)

// WalletRepo provides wallet data access layer interface needed by wallet service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package walletservice
type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int64) (domain.Wallet, error)
}

// TransactionRepo provides transaction data access layer interface needed by wallet service layer.
type TransactionRepo interface {
	List(ctx context.Context, walletID int64, limit, offset int32) ([]domain.Transaction, error)
}

// Service facilitates wallet service layer logic.
type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
}

// New returns wallet service struct to manage wallet bussines logic.
func New(wr WalletRepo, tr TransactionRepo) *Service {
	return &Service{
		walletRepo:      wr,
		transactionRepo: tr,
	}
}

// Get returns the wallet owned by the given user.
func (s *Service) Get(ctx context.Context, userID int64) (domain.Wallet, error) {
	return s.walletRepo.GetByUserID(ctx, userID)
}

// ListTransactions returns one page of the ledger transactions of the wallet
// owned by the given user.
func (s *Service) ListTransactions(ctx context.Context, userID int64, pageSize, pageID int32) ([]domain.Transaction, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	limit := pageSize
	offset := (pageID - 1) * pageSize

	return s.transactionRepo.List(ctx, wallet.ID, limit, offset)
}
