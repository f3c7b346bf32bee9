package auth

import (
	"context"
	"fmt"
	"nanomed-service/internal/app/config"
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/dto/responses"
	"nanomed-service/internal/pkg/exceptions"
	"nanomed-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterUser) (*responses.Register, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterPatient error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s already registered", request.Email))
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Role:     constvars.NanomedRolePatient,
		Email:    request.Email,
		FullName: request.FullName,
		Password: hashedPassword,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	user, err = uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterPatient error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.RegisterPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, user.ID),
	)
	return &responses.Register{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(fmt.Errorf("no user for email %s", request.Email))
	}

	err = utils.ComparePassword(user.Password, request.Password)
	if err != nil {
		return nil, err
	}

	sessionID := utils.GenerateRequestID()
	session := &models.Session{
		SessionID: sessionID,
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour),
	}
	if user.IsPatient() {
		session.PatientID = user.ID
	}
	if user.IsDoctor() {
		session.DoctorID = user.DoctorID
	}

	err = uc.SessionService.CreateSession(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.Login{Token: token}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}
