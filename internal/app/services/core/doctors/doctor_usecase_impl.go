package doctors

import (
	"context"
	"fmt"
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
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	UserRepository   contracts.UserRepository
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			UserRepository:   userRepository,
			Log:              logger,
		}
	})
	return doctorUsecaseInstance
}

// RegisterDoctor creates both the doctor profile and its login user. The user
// carries the doctor ID so sessions can resolve the profile without a lookup.
func (uc *doctorUsecase) RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.RegisterDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
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
	doctor := &models.Doctor{
		FullName:  request.FullName,
		Email:     request.Email,
		Specialty: request.Specialty,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	doctor, err = uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.RegisterDoctor error creating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	user := &models.User{
		Role:     constvars.NanomedRoleDoctor,
		Email:    request.Email,
		FullName: request.FullName,
		Password: hashedPassword,
		DoctorID: doctor.ID,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	_, err = uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("doctorUsecase.RegisterDoctor error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.RegisterDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
	)

	return &responses.Doctor{
		ID:        doctor.ID,
		FullName:  doctor.FullName,
		Specialty: doctor.Specialty,
		Email:     doctor.Email,
	}, nil
}

func (uc *doctorUsecase) FindAll(ctx context.Context) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		result = append(result, responses.Doctor{
			ID:        doctor.ID,
			FullName:  doctor.FullName,
			Specialty: doctor.Specialty,
			Email:     doctor.Email,
		})
	}
	return result, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not found", doctorID))
	}

	return &responses.Doctor{
		ID:        doctor.ID,
		FullName:  doctor.FullName,
		Specialty: doctor.Specialty,
		Email:     doctor.Email,
	}, nil
}
