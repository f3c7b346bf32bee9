package config

type InternalConfig struct {
	App      App
	JWT      JWT
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
	Webpay   Webpay
	Mailer   AppMailer
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	BaseUrl                        string
	Timezone                       string
	EndpointPrefix                 string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	RequestBodyLimitInMegabyte     int
	LoginSessionExpiredTimeInHours int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	BucketName                     string
	DocumentMaxUploadSizeInMB      int64
	PresignedUrlExpiryTimeInHours  int
}

type AppRabbitMQ struct {
	MailerQueue string
}

type Webpay struct {
	BaseUrl                 string
	CommerceCode            string
	ApiKeySecret            string
	ReturnUrl               string
	RequestTimeoutInSeconds int
	RequestsPerSecond       int
}

type AppMailer struct {
	EmailSender string
}
