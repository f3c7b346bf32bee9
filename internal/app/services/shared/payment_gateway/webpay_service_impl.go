package payment_gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"nanomed-service/internal/app/config"
	"nanomed-service/internal/app/contracts"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/dto/responses"
	"nanomed-service/internal/pkg/exceptions"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	webpayServiceInstance contracts.PaymentGatewayService
	onceWebpayService     sync.Once
)

type webpayService struct {
	BaseUrl        string
	CommerceCode   string
	ApiKeySecret   string
	RequestTimeout time.Duration
	Client         *http.Client
	Limiter        *rate.Limiter
	Log            *zap.Logger
}

func NewWebpayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	onceWebpayService.Do(func() {
		requestsPerSecond := internalConfig.Webpay.RequestsPerSecond
		if requestsPerSecond <= 0 {
			requestsPerSecond = 10
		}
		service := &webpayService{
			BaseUrl:        internalConfig.Webpay.BaseUrl + constvars.WebpayTransactionsPath,
			CommerceCode:   internalConfig.Webpay.CommerceCode,
			ApiKeySecret:   internalConfig.Webpay.ApiKeySecret,
			RequestTimeout: time.Duration(internalConfig.Webpay.RequestTimeoutInSeconds) * time.Second,
			Client:         &http.Client{},
			Limiter:        rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
			Log:            logger,
		}
		webpayServiceInstance = service
	})
	return webpayServiceInstance
}

func (s *webpayService) CreateTransaction(ctx context.Context, request *requests.WebpayCreateTransaction) (*responses.PaymentSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("webpayService.CreateTransaction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingRequestKey, request),
	)

	body, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	var paymentSession responses.PaymentSession
	err = s.doRequest(ctx, constvars.MethodPost, s.BaseUrl, body, constvars.StatusOK, &paymentSession)
	if err != nil {
		s.Log.Error("webpayService.CreateTransaction error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if isTimeout(err) {
			return nil, exceptions.ErrWebpayRequestTimeout(err)
		}
		return nil, exceptions.ErrWebpayCreateTransaction(err)
	}

	s.Log.Info("webpayService.CreateTransaction succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentTokenKey, paymentSession.Token),
	)
	return &paymentSession, nil
}

func (s *webpayService) CommitTransaction(ctx context.Context, token string) (*responses.WebpayCommitResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("webpayService.CommitTransaction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentTokenKey, token),
	)

	url := fmt.Sprintf("%s/%s", s.BaseUrl, token)
	var commitResult responses.WebpayCommitResult
	err := s.doRequest(ctx, constvars.MethodPut, url, nil, constvars.StatusOK, &commitResult)
	if err != nil {
		s.Log.Error("webpayService.CommitTransaction error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if isTimeout(err) {
			return nil, exceptions.ErrWebpayRequestTimeout(err)
		}
		return nil, exceptions.ErrWebpayCommitTransaction(err)
	}

	s.Log.Info("webpayService.CommitTransaction succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentTokenKey, token),
	)
	return &commitResult, nil
}

func (s *webpayService) doRequest(ctx context.Context, method, url string, body []byte, expectedStatus int, result interface{}) error {
	if err := s.Limiter.Wait(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderTbkApiKeyID, s.CommerceCode)
	req.Header.Set(constvars.HeaderTbkApiKeySecret, s.ApiKeySecret)

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		return fmt.Errorf("webpay responded with status %d", resp.StatusCode)
	}

	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, "webpay")
	}
	return nil
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
