package contracts

import (
	"context"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
}

type DoctorUsecase interface {
	RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*responses.Doctor, error)
	FindAll(ctx context.Context) ([]responses.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
}
