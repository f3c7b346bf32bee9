package routers

import (
	"nanomed-service/internal/app/delivery/http/controllers"
	"nanomed-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Authenticate).Get("/", appointmentController.FindAll)
}
