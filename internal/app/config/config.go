package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads .env (when present) and the process environment. Keys map to
// env vars by upper casing and replacing dots, so clinic_api.base_url is
// read from CLINIC_API_BASE_URL.
func Load() (*InternalConfig, *DriverConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	internalConfig := new(InternalConfig)
	if err := v.Unmarshal(internalConfig); err != nil {
		return nil, nil, fmt.Errorf("unmarshal internal config: %w", err)
	}

	driverConfig := new(DriverConfig)
	if err := v.Unmarshal(driverConfig); err != nil {
		return nil, nil, fmt.Errorf("unmarshal driver config: %w", err)
	}

	if err := internalConfig.validate(); err != nil {
		return nil, nil, err
	}
	return internalConfig, driverConfig, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.version", "v1")
	v.SetDefault("app.address", "localhost")
	v.SetDefault("app.timezone", "Asia/Jakarta")
	v.SetDefault("app.frontend_domain", "*")
	v.SetDefault("app.endpoint_prefix", "")
	v.SetDefault("app.max_requests", 100)
	v.SetDefault("app.shutdown_timeout_in_seconds", 10)
	v.SetDefault("app.max_time_requests_per_seconds", 1)
	v.SetDefault("app.request_body_limit_in_megabyte", 6)
	v.SetDefault("app.request_timeout_in_seconds", 15)
	v.SetDefault("app.login_max_attempts_per_minute", 10)
	v.SetDefault("app.login_block_time_in_minutes", 5)
	v.SetDefault("app.audit_recent_events_max_limit", 200)
	v.SetDefault("app.notification_patient_portal_url", "")

	v.SetDefault("clinic_api.base_url", "")
	v.SetDefault("clinic_api.request_timeout_in_seconds", 10)
	v.SetDefault("clinic_api.rate_limit_per_second", 20)
	v.SetDefault("clinic_api.rate_limit_burst", 40)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.exp_time_in_hour", 8)

	v.SetDefault("session.expired_time_in_hours", 8)
	v.SetDefault("session.seal_secret", "")

	v.SetDefault("workflow.draft_expired_time_in_hours", 24)
	v.SetDefault("workflow.lock_expired_time_in_seconds", 30)

	v.SetDefault("idempotency.replay_expired_time_in_hours", 24)
	v.SetDefault("idempotency.lock_expired_time_in_seconds", 30)

	v.SetDefault("mailer.email_sender", "no-reply@clinic.local")

	v.SetDefault("minio.host", "localhost")
	v.SetDefault("minio.port", "9000")
	v.SetDefault("minio.username", "")
	v.SetDefault("minio.password", "")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.bucket_name", "clinic-certificates")
	v.SetDefault("minio.public_base_url", "")
	v.SetDefault("minio.certificate_max_upload_size_in_mb", 2)

	v.SetDefault("rabbitmq.host", "localhost")
	v.SetDefault("rabbitmq.port", "5672")
	v.SetDefault("rabbitmq.username", "guest")
	v.SetDefault("rabbitmq.password", "guest")
	v.SetDefault("rabbitmq.mailer_queue", "clinic-mailer")

	v.SetDefault("mongodb.host", "localhost")
	v.SetDefault("mongodb.port", "27017")
	v.SetDefault("mongodb.username", "")
	v.SetDefault("mongodb.password", "")
	v.SetDefault("mongodb.db_name", "clinic_portal")
	v.SetDefault("mongodb.audit_collection", "audit_events")

	v.SetDefault("audit.retention_in_days", 180)
	v.SetDefault("audit.retention_cron_spec", "@daily")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_filename", "logger.log")
	v.SetDefault("logger.output_error_filename", "logger_error.log")
}

func (c *InternalConfig) validate() error {
	var errs []error
	if c.ClinicApi.BaseUrl == "" {
		errs = append(errs, errors.New("CLINIC_API_BASE_URL is required"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.Session.SealSecret == "" {
		c.Session.SealSecret = c.JWT.Secret
	}
	c.ClinicApi.BaseUrl = strings.TrimRight(c.ClinicApi.BaseUrl, "/")
	return errors.Join(errs...)
}
