package documents

import (
	"context"
	"fmt"
	"mime/multipart"
	"nanomed-service/internal/app/config"
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/dto/responses"
	"nanomed-service/internal/pkg/exceptions"
	"nanomed-service/internal/pkg/utils"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	documentUsecaseInstance contracts.DocumentUsecase
	onceDocumentUsecase     sync.Once
)

type documentUsecase struct {
	DocumentRepository contracts.DocumentRepository
	Storage            contracts.Storage
	SessionService     contracts.SessionService
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewDocumentUsecase(
	documentRepository contracts.DocumentRepository,
	storage contracts.Storage,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DocumentUsecase {
	onceDocumentUsecase.Do(func() {
		documentUsecaseInstance = &documentUsecase{
			DocumentRepository: documentRepository,
			Storage:            storage,
			SessionService:     sessionService,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return documentUsecaseInstance
}

func (uc *documentUsecase) Upload(ctx context.Context, sessionData string, file multipart.File, fileHeader *multipart.FileHeader) (*responses.Document, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("documentUsecase.Upload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("file_size", fileHeader.Size),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	maxSizeBytes := uc.InternalConfig.Minio.DocumentMaxUploadSizeInMB * 1024 * 1024
	if fileHeader.Size > maxSizeBytes {
		return nil, exceptions.ErrDocumentTooLarge(fmt.Errorf("file is %d bytes, limit is %d", fileHeader.Size, maxSizeBytes))
	}

	contentType := fileHeader.Header.Get(constvars.HeaderContentType)
	objectName := utils.GenerateObjectName("exam", session.UserID, filepath.Ext(fileHeader.Filename))

	_, err = uc.Storage.UploadFile(ctx, file, objectName, contentType, fileHeader.Size)
	if err != nil {
		uc.Log.Error("documentUsecase.Upload error storing object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	document := &models.Document{
		OwnerID:     session.UserID,
		FileName:    fileHeader.Filename,
		ObjectName:  objectName,
		ContentType: contentType,
		SizeBytes:   fileHeader.Size,
		UploadedAt:  time.Now(),
	}
	document, err = uc.DocumentRepository.CreateDocument(ctx, document)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("documentUsecase.Upload succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, document.ID),
	)
	return &responses.Document{
		ID:          document.ID,
		FileName:    document.FileName,
		ContentType: document.ContentType,
		SizeBytes:   document.SizeBytes,
		UploadedAt:  document.UploadedAt,
	}, nil
}

func (uc *documentUsecase) FindAll(ctx context.Context, sessionData string) ([]responses.Document, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	documents, err := uc.DocumentRepository.FindAllByOwnerID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Document, 0, len(documents))
	for _, document := range documents {
		result = append(result, responses.Document{
			ID:          document.ID,
			FileName:    document.FileName,
			ContentType: document.ContentType,
			SizeBytes:   document.SizeBytes,
			UploadedAt:  document.UploadedAt,
		})
	}
	return result, nil
}

func (uc *documentUsecase) DownloadURL(ctx context.Context, sessionData, documentID string) (*responses.Document, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	document, err := uc.DocumentRepository.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if document == nil || document.OwnerID != session.UserID {
		return nil, exceptions.ErrDocumentNotFound(fmt.Errorf("document %s not found for user %s", documentID, session.UserID))
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PresignedUrlExpiryTimeInHours) * time.Hour
	url, err := uc.Storage.PresignedGetURL(ctx, document.ObjectName, expiry)
	if err != nil {
		uc.Log.Error("documentUsecase.DownloadURL error presigning object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, document.ObjectName),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.Document{
		ID:          document.ID,
		FileName:    document.FileName,
		ContentType: document.ContentType,
		SizeBytes:   document.SizeBytes,
		UploadedAt:  document.UploadedAt,
		DownloadURL: url,
	}, nil
}
