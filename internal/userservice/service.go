// Package userservice manages business logic layer of users.
package userservice

import (
	"context"

	"github.com/go-petr/pet-wallet/internal/domain"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	CreateWithWallet(ctx context.Context, arg domain.CreateUserParams) (domain.UserWithWallet, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo Repo
}

// New returns user service struct to manage user bussines logic.
func New(ur Repo) *Service {
	return &Service{
		repo: ur,
	}
}

// Create provisions a user together with its zero balance wallet and returns both ids.
func (s *Service) Create(ctx context.Context, firstName, lastName string) (domain.UserWithWallet, error) {
	arg := domain.CreateUserParams{
		FirstName: firstName,
		LastName:  lastName,
	}

	return s.repo.CreateWithWallet(ctx, arg)
}
