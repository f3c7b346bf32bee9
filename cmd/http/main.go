package main

import (
	"context"
	"nanomed-service/internal/app/config"
	"nanomed-service/internal/app/delivery/http/controllers"
	"nanomed-service/internal/app/delivery/http/middlewares"
	"nanomed-service/internal/app/delivery/http/routers"
	"nanomed-service/internal/app/drivers/database"
	"nanomed-service/internal/app/drivers/logger"
	"nanomed-service/internal/app/drivers/messaging"
	"nanomed-service/internal/app/drivers/storage"
	"nanomed-service/internal/app/services/core/appointments"
	"nanomed-service/internal/app/services/core/auth"
	"nanomed-service/internal/app/services/core/bookings"
	"nanomed-service/internal/app/services/core/doctors"
	"nanomed-service/internal/app/services/core/documents"
	"nanomed-service/internal/app/services/core/messages"
	"nanomed-service/internal/app/services/core/payments"
	"nanomed-service/internal/app/services/core/session"
	"nanomed-service/internal/app/services/core/users"
	"nanomed-service/internal/app/services/shared/notification"
	"nanomed-service/internal/app/services/shared/payment_gateway"
	"nanomed-service/internal/app/services/shared/redirect"
	sharedredis "nanomed-service/internal/app/services/shared/redis"
	sharedstorage "nanomed-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location: " + err.Error())
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: " + err.Error())
		}
	}()
	log.Info("Server started on " + internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown: " + err.Error())
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during shutdown: " + err.Error())
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(minioClient, bootstrap.InternalConfig.Minio.BucketName)
	webpayService := payment_gateway.NewWebpayService(bootstrap.InternalConfig, bootstrap.Logger)
	formRedirect := redirect.NewFormRedirect()
	notificationService, err := notification.NewNotificationService(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.MailerQueue, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to initialize notification service: " + err.Error())
	}

	// Session
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(sessionService, bootstrap.InternalConfig, bootstrap.Logger)

	// Repositories
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	userRepository := users.NewUserMongoRepository(bootstrap.MongoClient, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoClient, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, dbName)
	transactionRepository := payments.NewTransactionMongoRepository(bootstrap.MongoClient, dbName)
	messageRepository := messages.NewMessageMongoRepository(bootstrap.MongoClient, dbName)
	documentRepository := documents.NewDocumentMongoRepository(bootstrap.MongoClient, dbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(userRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Doctors
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, userRepository, bootstrap.Logger)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Appointments
	appointmentService := appointments.NewAppointmentService(appointmentRepository, transactionRepository, doctorRepository, sessionService, bootstrap.Logger)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentService)

	// Bookings
	bookingOrchestrator := bookings.NewBookingUsecase(appointmentService, transactionRepository, webpayService, formRedirect, bootstrap.InternalConfig, bootstrap.Logger)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingOrchestrator, sessionService)

	// Payments
	paymentUsecase := payments.NewPaymentUsecase(
		transactionRepository,
		appointmentService,
		webpayService,
		formRedirect,
		sessionService,
		userRepository,
		notificationService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase)

	// Documents
	documentUsecase := documents.NewDocumentUsecase(documentRepository, minioStorage, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	documentController := controllers.NewDocumentController(bootstrap.Logger, documentUsecase, bootstrap.InternalConfig)

	// Messages
	messageUsecase := messages.NewMessageUsecase(messageRepository, sessionService, bootstrap.Logger)
	messageController := controllers.NewMessageController(bootstrap.Logger, messageUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		authController,
		bookingController,
		appointmentController,
		doctorController,
		paymentController,
		documentController,
		messageController,
	)
}
