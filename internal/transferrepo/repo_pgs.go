// Package transferrepo implements the atomic balance transfer engine.
//
// Deposit and Transfer each run inside a single database transaction. The
// involved wallet rows are locked with SELECT ... FOR UPDATE before any
// validation against balances or any write, so concurrent operations on
// overlapping wallets serialize at the row lock boundary. Either every write
// of an operation (ledger transactions plus balance updates) commits, or the
// whole transaction rolls back.
package transferrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/internal/transactionrepo"
	"github.com/go-petr/pet-wallet/internal/walletrepo"
	"github.com/go-petr/pet-wallet/pkg/dbpkg"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates transfer repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns transfer RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		conn: db,
	}
}

// Deposit credits amount into the wallet of the given user.
//
// It locks the receiving wallet row, appends one debit ledger transaction and
// applies the balance delta within a single database transaction.
func (r *RepoPGS) Deposit(ctx context.Context, toUserID int64, amount string) (domain.TransferTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TransferTxResult

	// Writes use the canonical decimal form. Raw input may carry a leading
	// sign or an exponent that the database would reject once negated.
	value, err := domain.ValidAmount(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	tx, err := r.begin(ctx)
	if err != nil {
		return result, err
	}
	defer rollback(ctx, tx)

	walletRepo := walletrepo.NewRepoPGS(tx)
	transactionRepo := transactionrepo.NewRepoPGS(tx)

	toWallet, err := walletRepo.LockByUserID(ctx, toUserID)
	if err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	result.DebitTransaction, err = transactionRepo.Create(ctx, toWallet.ID, domain.Debit, value.String())
	if err != nil {
		return result, err
	}

	result.ToWallet, err = walletRepo.AddBalance(ctx, value.String(), toWallet.ID)
	if err != nil {
		return result, err
	}

	return result, r.commit(ctx, tx)
}

// Transfer moves amount between the wallets of two distinct users.
//
// Both wallet rows are locked in ascending user id order so that two
// concurrent transfers in opposite directions cannot deadlock. Sufficient
// funds are validated against the locked, freshly read sending balance. The
// transfer appends exactly two amount-equal ledger transactions: a debit on
// the receiving wallet and a credit on the sending wallet.
func (r *RepoPGS) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TransferTxResult

	amount, err := domain.ValidAmount(arg.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	if err := domain.ValidParties(arg.FromUserID, arg.ToUserID); err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	tx, err := r.begin(ctx)
	if err != nil {
		return result, err
	}
	defer rollback(ctx, tx)

	walletRepo := walletrepo.NewRepoPGS(tx)
	transactionRepo := transactionrepo.NewRepoPGS(tx)

	fromWallet, toWallet, err := lockWallets(ctx, walletRepo, arg.FromUserID, arg.ToUserID)
	if err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	fromBalance, err := decimal.NewFromString(fromWallet.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	if err := domain.CheckBalance(fromBalance, amount); err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	result.DebitTransaction, err = transactionRepo.Create(ctx, toWallet.ID, domain.Debit, amount.String())
	if err != nil {
		return result, err
	}

	creditTransaction, err := transactionRepo.Create(ctx, fromWallet.ID, domain.Credit, amount.String())
	if err != nil {
		return result, err
	}
	result.CreditTransaction = &creditTransaction

	result.ToWallet, err = walletRepo.AddBalance(ctx, amount.String(), toWallet.ID)
	if err != nil {
		return result, err
	}

	// Negate the parsed decimal, not the raw string: "-" + "+20" is not a
	// number the database accepts.
	fromWallet, err = walletRepo.AddBalance(ctx, amount.Neg().String(), fromWallet.ID)
	if err != nil {
		return result, err
	}
	result.FromWallet = &fromWallet

	return result, r.commit(ctx, tx)
}

// lockWallets acquires both wallet row locks in ascending user id order.
func lockWallets(ctx context.Context, walletRepo *walletrepo.RepoPGS, fromUserID, toUserID int64) (domain.Wallet, domain.Wallet, error) {
	firstUserID, secondUserID := fromUserID, toUserID
	if secondUserID < firstUserID {
		firstUserID, secondUserID = secondUserID, firstUserID
	}

	firstWallet, err := walletRepo.LockByUserID(ctx, firstUserID)
	if err != nil {
		return domain.Wallet{}, domain.Wallet{}, err
	}

	secondWallet, err := walletRepo.LockByUserID(ctx, secondUserID)
	if err != nil {
		return domain.Wallet{}, domain.Wallet{}, err
	}

	if firstUserID == fromUserID {
		return firstWallet, secondWallet, nil
	}

	return secondWallet, firstWallet, nil
}

func (r *RepoPGS) begin(ctx context.Context) (*sql.Tx, error) {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()

		if dbpkg.IsTransient(err) {
			return nil, errorspkg.ErrUnavailable
		}

		return nil, errorspkg.ErrInternal
	}

	return tx, nil
}

func (r *RepoPGS) commit(ctx context.Context, tx *sql.Tx) error {
	l := zerolog.Ctx(ctx)

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()

		if dbpkg.IsTransient(err) {
			return errorspkg.ErrUnavailable
		}

		return errorspkg.ErrInternal
	}

	return nil
}

func rollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		zerolog.Ctx(ctx).Error().Err(err).Send()
	}
}
