package contracts

import (
	"context"
	"mime/multipart"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/dto/responses"
)

type DocumentRepository interface {
	CreateDocument(ctx context.Context, document *models.Document) (*models.Document, error)
	FindByID(ctx context.Context, documentID string) (*models.Document, error)
	FindAllByOwnerID(ctx context.Context, ownerID string) ([]models.Document, error)
}

type DocumentUsecase interface {
	Upload(ctx context.Context, sessionData string, file multipart.File, fileHeader *multipart.FileHeader) (*responses.Document, error)
	FindAll(ctx context.Context, sessionData string) ([]responses.Document, error)
	DownloadURL(ctx context.Context, sessionData, documentID string) (*responses.Document, error)
}
