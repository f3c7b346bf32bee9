package session

import (
	"context"
	"fmt"
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/app/models"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = &sessionService{
			RedisRepository: redisRepository,
		}
	})
	return sessionServiceInstance
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	key := fmt.Sprintf(constvars.RedisSessionKeyFormat, session.SessionID)
	expiry := time.Until(session.ExpiresAt)
	return svc.RedisRepository.Set(ctx, key, session, expiry)
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	key := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	sessionData, err := svc.RedisRepository.Get(ctx, key)
	if err != nil {
		return "", exceptions.ErrSessionNotFound(err)
	}
	if sessionData == "" {
		return "", exceptions.ErrSessionNotFound(nil)
	}
	return sessionData, nil
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	return svc.RedisRepository.Delete(ctx, key)
}
