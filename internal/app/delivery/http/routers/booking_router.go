package routers

import (
	"nanomed-service/internal/app/delivery/http/controllers"
	"nanomed-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.With(middlewares.Authenticate).Post("/", bookingController.ConfirmAndPay)
}
