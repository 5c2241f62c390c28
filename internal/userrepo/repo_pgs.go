// Package userrepo manages repository layer of users.
package userrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/internal/walletrepo"
	"github.com/go-petr/pet-wallet/pkg/dbpkg"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// RepoPGS facilitates user repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns user RepoPGS scoped to an already running transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns user RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

// CreateQuery inserts into users table.
const CreateQuery = `
INSERT INTO users (
    first_name,
    last_name
) VALUES (
    $1, $2
) RETURNING id, first_name, last_name
`

// Create creates the user and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, CreateQuery, arg.FirstName, arg.LastName)

	var u domain.User

	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if dbpkg.IsTransient(err) {
			return u, errorspkg.ErrUnavailable
		}

		return u, errorspkg.ErrInternal
	}

	return u, nil
}

const getQuery = `
SELECT
	id, first_name, last_name
FROM users
WHERE id = $1
`

// Get returns the user with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var u domain.User

	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if errors.Is(err, sql.ErrNoRows) {
			return u, domain.ErrUserNotFound
		}

		return u, errorspkg.ErrInternal
	}

	return u, nil
}

// CreateWithWallet creates the user and its zero balance wallet within a
// single database transaction. Either both rows land durably or none do.
func (r *RepoPGS) CreateWithWallet(ctx context.Context, arg domain.CreateUserParams) (domain.UserWithWallet, error) {
	l := zerolog.Ctx(ctx)

	var result domain.UserWithWallet

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()

		if dbpkg.IsTransient(err) {
			return result, errorspkg.ErrUnavailable
		}

		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			l.Error().Err(err).Send()
		}
	}()

	userRepo := NewTxRepoPGS(tx)
	walletRepo := walletrepo.NewRepoPGS(tx)

	user, err := userRepo.Create(ctx, arg)
	if err != nil {
		return result, err
	}

	wallet, err := walletRepo.Create(ctx, user.ID, "0")
	if err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()

		if dbpkg.IsTransient(err) {
			return result, errorspkg.ErrUnavailable
		}

		return result, errorspkg.ErrInternal
	}

	result = domain.UserWithWallet{
		UserID:    user.ID,
		WalletID:  wallet.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}

	return result, nil
}
