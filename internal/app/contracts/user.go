package contracts

import (
	"context"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
}

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.RegisterUser) (*responses.Register, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.Login, error)
	Logout(ctx context.Context, sessionData string) error
}
