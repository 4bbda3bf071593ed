package service

import (
	"context"

	"github.com/MKhiriev/go-pooja-site/models"
)

type AuthService interface {
	// Register creates an account. The very first account becomes admin.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.TokenUser) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	// ListUsers returns every account with the plain user role.
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, requester models.TokenUser, id string) (models.User, error)
	UpdateUser(ctx context.Context, requester models.TokenUser, req models.UpdateUserRequest) (models.User, error)
	UpdatePassword(ctx context.Context, requester models.TokenUser, req models.UpdatePasswordRequest) error
}
