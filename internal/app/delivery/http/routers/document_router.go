package routers

import (
	"nanomed-service/internal/app/delivery/http/controllers"
	"nanomed-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDocumentRoutes(router chi.Router, middlewares *middlewares.Middlewares, documentController *controllers.DocumentController) {
	router.With(middlewares.Authenticate).Post("/", documentController.Upload)
	router.With(middlewares.Authenticate).Get("/", documentController.FindAll)
	router.With(middlewares.Authenticate).Get("/{documentID}/url", documentController.DownloadURL)
}
