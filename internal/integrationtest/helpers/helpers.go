// Package helpers provides shared seeding helpers for integration tests.
package helpers

import (
	"context"
	"testing"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/internal/transactionrepo"
	"github.com/go-petr/pet-wallet/internal/userrepo"
	"github.com/go-petr/pet-wallet/internal/walletrepo"
	"github.com/go-petr/pet-wallet/pkg/dbpkg"
	"github.com/go-petr/pet-wallet/pkg/randompkg"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// RequireEqualAmounts asserts that two numeric strings hold the same value.
// The database reports numerics with the scale of the arithmetic that produced
// them, so "2" and "2.000" must compare equal.
func RequireEqualAmounts(t *testing.T, want, got string) {
	t.Helper()

	wantDecimal, err := decimal.NewFromString(want)
	require.NoError(t, err)

	gotDecimal, err := decimal.NewFromString(got)
	require.NoError(t, err)

	require.True(t, wantDecimal.Equal(gotDecimal), "want amount %s, got %s", want, got)
}

// SeedUser creates random User inside a test transaction.
func SeedUser(t *testing.T, tx dbpkg.SQLInterface) domain.User {
	t.Helper()

	arg := domain.CreateUserParams{
		FirstName: randompkg.FirstName(),
		LastName:  randompkg.LastName(),
	}

	userRepo := userrepo.NewTxRepoPGS(tx)

	user, err := userRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("userRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return user
}

// SeedWallet creates Wallet with the given balance inside a test transaction.
func SeedWallet(t *testing.T, tx dbpkg.SQLInterface, userID int64, balance string) domain.Wallet {
	t.Helper()

	walletRepo := walletrepo.NewRepoPGS(tx)

	wallet, err := walletRepo.Create(context.Background(), userID, balance)
	if err != nil {
		t.Fatalf("walletRepo.Create(context.Background(), %v, %v) returned error: %v", userID, balance, err)
	}

	return wallet
}

// SeedTransaction creates a ledger Transaction inside a test transaction.
func SeedTransaction(t *testing.T, tx dbpkg.SQLInterface, walletID int64, transactionType domain.TransactionType, amount string) domain.Transaction {
	t.Helper()

	transactionRepo := transactionrepo.NewRepoPGS(tx)

	transaction, err := transactionRepo.Create(context.Background(), walletID, transactionType, amount)
	if err != nil {
		t.Fatalf("transactionRepo.Create(context.Background(), %v, %v, %v) returned error: %v",
			walletID, transactionType, amount, err)
	}

	return transaction
}
