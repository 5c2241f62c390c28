package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidAmount indicates that the amount is not a positive decimal number.
	ErrInvalidAmount = errors.New("amount must be a positive number")
	// ErrSameParty indicates a transfer between a user and itself.
	ErrSameParty = errors.New("cannot transfer to the same user")
	// ErrInsufficientFunds indicates that the sending wallet does not hold enough money.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// TransactionType marks the direction of a ledger entry relative to its wallet.
type TransactionType string

// Money entering a wallet is a debit leg, money leaving it is a credit leg.
const (
	Debit  TransactionType = "debit"
	Credit TransactionType = "credit"
)

// Transaction holds one immutable ledger entry of a wallet.
type Transaction struct {
	ID        int64           `json:"id"`
	WalletID  int64           `json:"wallet_id"`
	Type      TransactionType `json:"type"`
	Amount    string          `json:"amount"` // always positive
	CreatedAt time.Time       `json:"created_at"`
}

// CreateTransferParams is the input data for a transfer between two wallets.
type CreateTransferParams struct {
	FromUserID int64  `json:"from_user_id"`
	ToUserID   int64  `json:"to_user_id"`
	Amount     string `json:"amount"`
}

// TransferTxResult is the result of a deposit or transfer transaction.
// CreditTransaction and FromWallet are nil for deposits.
type TransferTxResult struct {
	DebitTransaction  Transaction  `json:"debit_transaction"`
	CreditTransaction *Transaction `json:"credit_transaction,omitempty"`
	ToWallet          Wallet       `json:"to_wallet"`
	FromWallet        *Wallet      `json:"from_wallet,omitempty"`
}
