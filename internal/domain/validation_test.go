package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestValidAmount(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "OK", raw: "100", want: "100"},
		{name: "OKFractional", raw: "1.123", want: "1.123"},
		{name: "OKKeepsPrecision", raw: "0.000000001", want: "0.000000001"},
		{name: "OKLeadingPlus", raw: "+20", want: "20"},
		{name: "OKExponent", raw: "1e2", want: "100"},
		{name: "NotANumber", raw: "!@#$", wantErr: ErrInvalidAmount},
		{name: "Empty", raw: "", wantErr: ErrInvalidAmount},
		{name: "Zero", raw: "0", wantErr: ErrInvalidAmount},
		{name: "Negative", raw: "-1", wantErr: ErrInvalidAmount},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidAmount(tc.raw)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.ErrorContains(t, err, tc.raw)

				return
			}

			require.NoError(t, err)
			require.True(t, got.Equal(decimal.RequireFromString(tc.want)))
		})
	}
}

func TestValidParties(t *testing.T) {
	require.NoError(t, ValidParties(1, 2))

	err := ValidParties(7, 7)
	require.ErrorIs(t, err, ErrSameParty)
	require.ErrorContains(t, err, "7")
}

func TestCheckBalance(t *testing.T) {
	testCases := []struct {
		name    string
		balance string
		amount  string
		wantErr error
	}{
		{name: "OK", balance: "100", amount: "20"},
		{name: "OKExact", balance: "100", amount: "100"},
		{name: "OKFractional", balance: "2.0001", amount: "2.0001"},
		{name: "Insufficient", balance: "80", amount: "100", wantErr: ErrInsufficientFunds},
		{name: "InsufficientByFraction", balance: "99.9999", amount: "100", wantErr: ErrInsufficientFunds},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			balance := decimal.RequireFromString(tc.balance)
			amount := decimal.RequireFromString(tc.amount)

			err := CheckBalance(balance, amount)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.ErrorContains(t, err, tc.balance)
				require.ErrorContains(t, err, tc.amount)

				return
			}

			require.NoError(t, err)
		})
	}
}
