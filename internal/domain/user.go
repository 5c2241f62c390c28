// Package domain provides defenitions of all entities.
package domain

import "errors"

// ErrUserNotFound indicates that the user is not found.
var ErrUserNotFound = errors.New("user not found")

// User holds user identity data.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CreateUserParams is the input data to create a user with its wallet.
type CreateUserParams struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserWithWallet is the result of provisioning a user and its wallet together.
type UserWithWallet struct {
	UserID    int64  `json:"user_id"`
	WalletID  int64  `json:"wallet_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
