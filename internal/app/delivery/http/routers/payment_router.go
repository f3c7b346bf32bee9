package routers

import (
	"nanomed-service/internal/app/delivery/http/controllers"
	"nanomed-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	// Webpay redirects the browser back here, both verbs are in the wild.
	router.Get("/return", paymentController.Return)
	router.Post("/return", paymentController.Return)
	router.With(middlewares.Authenticate).Post("/retry", paymentController.Retry)
}
