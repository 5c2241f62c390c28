package domain

import "errors"

var (
	// ErrWalletNotFound indicates that the wallet for the given user is not found.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrWalletAlreadyExists indicates that the user already owns a wallet.
	ErrWalletAlreadyExists = errors.New("wallet already exists")
)

// Wallet holds the balance attached 1:1 to a user.
type Wallet struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	Balance string `json:"balance"`
}
