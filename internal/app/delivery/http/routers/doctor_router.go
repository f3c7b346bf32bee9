package routers

import (
	"nanomed-service/internal/app/delivery/http/controllers"
	"nanomed-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Post("/", doctorController.Register)
	router.Get("/", doctorController.FindAll)
	router.Get("/{doctorID}", doctorController.FindByID)
}
