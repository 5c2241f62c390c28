package dbpkg

import (
	"context"
	"database/sql"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users
(
    id bigserial PRIMARY KEY,
    first_name varchar(64) NOT NULL,
    last_name varchar(64) NOT NULL
)
`

const walletsSchema = `
CREATE TABLE IF NOT EXISTS wallets
(
    id bigserial PRIMARY KEY,
    user_id bigint NOT NULL,
    balance numeric NOT NULL DEFAULT 0,
    CONSTRAINT wallets_user_id_key UNIQUE (user_id),
    CONSTRAINT wallets_user_id_fkey FOREIGN KEY (user_id) REFERENCES users (id),
    CONSTRAINT wallets_balance_check CHECK (balance >= 0)
)
`

const transactionsSchema = `
CREATE TABLE IF NOT EXISTS transactions
(
    id bigserial PRIMARY KEY,
    wallet_id bigint NOT NULL,
    type varchar(32) NOT NULL,
    amount numeric NOT NULL,
    created_at timestamptz NOT NULL DEFAULT now(),
    CONSTRAINT transactions_wallet_id_fkey FOREIGN KEY (wallet_id) REFERENCES wallets (id),
    CONSTRAINT transactions_type_check CHECK (type IN ('credit', 'debit')),
    CONSTRAINT transactions_amount_check CHECK (amount > 0)
)
`

// CreateSchema provisions the users, wallets and transactions tables if they
// do not exist yet.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{usersSchema, walletsSchema, transactionsSchema} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
