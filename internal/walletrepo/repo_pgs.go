// Package walletrepo manages repository layer of wallets.
package walletrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/dbpkg"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates wallet repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns wallet RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    wallets (user_id, balance)
VALUES
    ($1, $2)
RETURNING id, user_id, balance
`

// Create creates a wallet owned by the given user and then returns it.
func (r *RepoPGS) Create(ctx context.Context, userID int64, balance string) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, userID, balance)

	var w domain.Wallet

	err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Balance,
	)

	if err != nil {
		l.Error().Err(err).Send()

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Constraint {
			case "wallets_user_id_fkey":
				return w, domain.ErrUserNotFound
			case "wallets_user_id_key":
				return w, domain.ErrWalletAlreadyExists
			}
		}

		return w, errorspkg.ErrInternal
	}

	return w, nil
}

const getByUserIDQuery = `
SELECT
	id, user_id, balance
FROM wallets
WHERE user_id = $1
`

// GetByUserID returns the wallet owned by the given user.
func (r *RepoPGS) GetByUserID(ctx context.Context, userID int64) (domain.Wallet, error) {
	return r.getByUserID(ctx, getByUserIDQuery, userID)
}

const lockByUserIDQuery = getByUserIDQuery + `
FOR UPDATE
`

// LockByUserID reads the wallet owned by the given user and acquires an
// exclusive row lock on it, blocking until the lock is available. The lock is
// held until the enclosing transaction ends.
func (r *RepoPGS) LockByUserID(ctx context.Context, userID int64) (domain.Wallet, error) {
	return r.getByUserID(ctx, lockByUserIDQuery, userID)
}

func (r *RepoPGS) getByUserID(ctx context.Context, query string, userID int64) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, query, userID)

	var w domain.Wallet

	err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Balance,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return w, fmt.Errorf("%w for user %d", domain.ErrWalletNotFound, userID)
		}

		l.Error().Err(err).Send()

		if dbpkg.IsTransient(err) {
			return w, errorspkg.ErrUnavailable
		}

		return w, errorspkg.ErrInternal
	}

	return w, nil
}

const addBalanceQuery = `
UPDATE wallets
SET balance = balance + $1
WHERE id = $2
RETURNING id, user_id, balance
`

// AddBalance changes the wallet's balance by the given signed amount and
// returns the changed wallet.
func (r *RepoPGS) AddBalance(ctx context.Context, amount string, id int64) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, addBalanceQuery, amount, id)

	var w domain.Wallet

	err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Balance,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if errors.Is(err, sql.ErrNoRows) {
			return w, domain.ErrWalletNotFound
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Constraint == "wallets_balance_check" {
				return w, domain.ErrInsufficientFunds
			}
		}

		if dbpkg.IsTransient(err) {
			return w, errorspkg.ErrUnavailable
		}

		return w, errorspkg.ErrInternal
	}

	return w, nil
}
