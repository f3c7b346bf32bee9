package payment_gateway

import (
	"context"
	"nanomed-service/internal/app/config"
	"nanomed-service/internal/pkg/constvars"
	"nanomed-service/internal/pkg/dto/requests"
	"nanomed-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWebpayService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "597055555532", r.Header.Get(constvars.HeaderTbkApiKeyID))
		assert.Equal(t, "secret-key", r.Header.Get(constvars.HeaderTbkApiKeySecret))

		switch {
		case r.Method == http.MethodPost && r.URL.Path == constvars.WebpayTransactionsPath:
			var body requests.WebpayCreateTransaction
			err := json.NewDecoder(r.Body).Decode(&body)
			assert.NoError(t, err)
			assert.Equal(t, "nm-ab12cd34-1", body.BuyOrder)
			assert.Equal(t, 25000, body.Amount)
			assert.NotEmpty(t, body.ReturnURL)

			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			json.NewEncoder(w).Encode(map[string]string{
				"token": "T1",
				"url":   "https://pay.example/form",
			})
		case r.Method == http.MethodPut && r.URL.Path == constvars.WebpayTransactionsPath+"/T1":
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"buy_order":     "nm-ab12cd34-1",
				"status":        constvars.WebpayStatusAuthorized,
				"amount":        25000,
				"response_code": 0,
			})
		case r.Method == http.MethodPut && r.URL.Path == constvars.WebpayTransactionsPath+"/slow-token":
			time.Sleep(1500 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	internalConfig := &config.InternalConfig{
		Webpay: config.Webpay{
			BaseUrl:                 server.URL,
			CommerceCode:            "597055555532",
			ApiKeySecret:            "secret-key",
			ReturnUrl:               "http://localhost:8080/api/v1/payments/return",
			RequestTimeoutInSeconds: 1,
			RequestsPerSecond:       10,
		},
	}
	service := NewWebpayService(internalConfig, zap.NewNop())

	t.Run("CreateTransaction returns token and redirect url", func(t *testing.T) {
		session, err := service.CreateTransaction(context.Background(), &requests.WebpayCreateTransaction{
			BuyOrder:  "nm-ab12cd34-1",
			SessionID: "session-1",
			Amount:    25000,
			ReturnURL: internalConfig.Webpay.ReturnUrl,
		})

		assert.NoError(t, err)
		assert.Equal(t, "T1", session.Token)
		assert.Equal(t, "https://pay.example/form", session.RedirectURL)
	})

	t.Run("CommitTransaction returns authorized result", func(t *testing.T) {
		result, err := service.CommitTransaction(context.Background(), "T1")

		assert.NoError(t, err)
		assert.Equal(t, constvars.WebpayStatusAuthorized, result.Status)
		assert.Equal(t, 25000, result.Amount)
	})

	t.Run("slow gateway surfaces a timeout error", func(t *testing.T) {
		result, err := service.CommitTransaction(context.Background(), "slow-token")

		assert.Nil(t, result)
		assert.Error(t, err)
		assert.Equal(t, constvars.ErrClientPaymentGatewayTimeout, exceptions.ClientMessage(err))
	})
}
