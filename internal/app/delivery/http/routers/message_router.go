package routers

import (
	"nanomed-service/internal/app/delivery/http/controllers"
	"nanomed-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMessageRoutes(router chi.Router, middlewares *middlewares.Middlewares, messageController *controllers.MessageController) {
	router.With(middlewares.Authenticate).Post("/", messageController.Send)
	router.With(middlewares.Authenticate).Get("/{userID}", messageController.Conversation)
}
