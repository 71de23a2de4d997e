package config

type InternalConfig struct {
	App         App            `mapstructure:"app"`
	ClinicApi   AppClinicApi   `mapstructure:"clinic_api"`
	JWT         AppJWT         `mapstructure:"jwt"`
	Session     AppSession     `mapstructure:"session"`
	Workflow    AppWorkflow    `mapstructure:"workflow"`
	Idempotency AppIdempotency `mapstructure:"idempotency"`
	Mailer      AppMailer      `mapstructure:"mailer"`
	Minio       AppMinio       `mapstructure:"minio"`
	RabbitMQ    AppRabbitMQ    `mapstructure:"rabbitmq"`
	MongoDB     AppMongoDB     `mapstructure:"mongodb"`
	Audit       AppAudit       `mapstructure:"audit"`
}

type App struct {
	Env                          string `mapstructure:"env"`
	Port                         string `mapstructure:"port"`
	Version                      string `mapstructure:"version"`
	Address                      string `mapstructure:"address"`
	Timezone                     string `mapstructure:"timezone"`
	FrontendDomain               string `mapstructure:"frontend_domain"`
	EndpointPrefix               string `mapstructure:"endpoint_prefix"`
	MaxRequests                  int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds     int    `mapstructure:"shutdown_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds    int    `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInMegabyte   int    `mapstructure:"request_body_limit_in_megabyte"`
	RequestTimeoutInSeconds      int    `mapstructure:"request_timeout_in_seconds"`
	LoginMaxAttemptsPerMinute    int    `mapstructure:"login_max_attempts_per_minute"`
	LoginBlockTimeInMinutes      int    `mapstructure:"login_block_time_in_minutes"`
	AuditRecentEventsMaxLimit    int    `mapstructure:"audit_recent_events_max_limit"`
	NotificationPatientPortalUrl string `mapstructure:"notification_patient_portal_url"`
}

// AppClinicApi points at the clinic REST backend. BaseUrl is the only place
// the backend host is configured.
type AppClinicApi struct {
	BaseUrl                 string  `mapstructure:"base_url"`
	RequestTimeoutInSeconds int     `mapstructure:"request_timeout_in_seconds"`
	RateLimitPerSecond      float64 `mapstructure:"rate_limit_per_second"`
	RateLimitBurst          int     `mapstructure:"rate_limit_burst"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppSession struct {
	ExpiredTimeInHours int    `mapstructure:"expired_time_in_hours"`
	SealSecret         string `mapstructure:"seal_secret"`
}

type AppWorkflow struct {
	DraftExpiredTimeInHours  int `mapstructure:"draft_expired_time_in_hours"`
	LockExpiredTimeInSeconds int `mapstructure:"lock_expired_time_in_seconds"`
}

type AppIdempotency struct {
	ReplayExpiredTimeInHours int `mapstructure:"replay_expired_time_in_hours"`
	LockExpiredTimeInSeconds int `mapstructure:"lock_expired_time_in_seconds"`
}

type AppMailer struct {
	EmailSender string `mapstructure:"email_sender"`
}

type AppMinio struct {
	BucketName                   string `mapstructure:"bucket_name"`
	PublicBaseUrl                string `mapstructure:"public_base_url"`
	CertificateMaxUploadSizeInMB int64  `mapstructure:"certificate_max_upload_size_in_mb"`
}

type AppRabbitMQ struct {
	MailerQueue string `mapstructure:"mailer_queue"`
}

type AppMongoDB struct {
	DBName          string `mapstructure:"db_name"`
	AuditCollection string `mapstructure:"audit_collection"`
}

// AppAudit controls how long audit events are kept. RetentionCronSpec uses
// the standard five field cron syntax or descriptors such as @daily.
type AppAudit struct {
	RetentionInDays   int    `mapstructure:"retention_in_days"`
	RetentionCronSpec string `mapstructure:"retention_cron_spec"`
}
