package config

import (
	"nanomed-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "nanomed"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "no-reply@nanomed.cl"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                            utils.GetEnvString("APP_ENV", "development"),
			Port:                           utils.GetEnvString("APP_PORT", ":8080"),
			Version:                        utils.GetEnvString("APP_VERSION", "v1"),
			BaseUrl:                        utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"),
			Timezone:                       utils.GetEnvString("APP_TIMEZONE", "America/Santiago"),
			EndpointPrefix:                 utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                    utils.GetEnvInt("APP_MAX_REQUESTS", 10),
			ShutdownTimeoutInSeconds:       utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte:     utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			LoginSessionExpiredTimeInHours: utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 12),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
		Minio: AppMinio{
			BucketName:                    utils.GetEnvString("APP_MINIO_BUCKET_NAME", "nanomed-exams"),
			DocumentMaxUploadSizeInMB:     utils.GetEnvInt64("APP_MINIO_DOCUMENT_UPLOAD_MAX_SIZE_IN_MB", 10),
			PresignedUrlExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRESIGNED_URL_EXPIRY_TIME_IN_HOURS", 1),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "nanomed.mailer"),
		},
		Webpay: Webpay{
			BaseUrl:                 utils.GetEnvString("WEBPAY_BASE_URL", "https://webpay3gint.transbank.cl"),
			CommerceCode:            utils.GetEnvString("WEBPAY_COMMERCE_CODE", "597055555532"),
			ApiKeySecret:            utils.GetEnvString("WEBPAY_API_KEY_SECRET", ""),
			ReturnUrl:               utils.GetEnvString("WEBPAY_RETURN_URL", "http://localhost:8080/api/v1/payments/return"),
			RequestTimeoutInSeconds: utils.GetEnvInt("WEBPAY_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestsPerSecond:       utils.GetEnvInt("WEBPAY_REQUESTS_PER_SECOND", 10),
		},
		Mailer: AppMailer{
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "no-reply@nanomed.cl"),
		},
	}
}
