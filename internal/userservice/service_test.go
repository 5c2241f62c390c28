package userservice

import (
	"context"
	"testing"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"
	"github.com/go-petr/pet-wallet/pkg/randompkg"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	firstName := randompkg.FirstName()
	lastName := randompkg.LastName()

	testUser := domain.UserWithWallet{
		UserID:    1,
		WalletID:  1,
		FirstName: firstName,
		LastName:  lastName,
	}

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.UserWithWallet, err error)
	}{
		{
			name: "RepoInternalError",
			buildStubs: func(repo *MockRepo) {
				arg := domain.CreateUserParams{
					FirstName: firstName,
					LastName:  lastName,
				}

				repo.EXPECT().CreateWithWallet(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(domain.UserWithWallet{}, errorspkg.ErrInternal)
			},
			checkResponse: func(res domain.UserWithWallet, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, errorspkg.ErrInternal)
			},
		},
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				arg := domain.CreateUserParams{
					FirstName: firstName,
					LastName:  lastName,
				}

				repo.EXPECT().CreateWithWallet(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(testUser, nil)
			},
			checkResponse: func(res domain.UserWithWallet, err error) {
				require.NoError(t, err)
				require.Equal(t, testUser, res)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := NewMockRepo(ctrl)
			userService := New(userRepo)

			tc.buildStubs(userRepo)

			tc.checkResponse(userService.Create(context.Background(), firstName, lastName))
		})
	}
}
