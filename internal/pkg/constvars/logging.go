package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorTypeKey      = "error_type"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingSessionIDKey      = "session_id"
	LoggingUserIDKey         = "user_id"
	LoggingRoleKey           = "role"
	LoggingUsernameKey       = "username"
	LoggingPermissionKey     = "permission"
	LoggingClinicApiUrlKey   = "clinic_api_url"
	LoggingClinicResourceKey = "clinic_resource"
	LoggingResourceIDKey     = "resource_id"
	LoggingRecordCountKey    = "record_count"

	LoggingWorkflowIDKey    = "workflow_id"
	LoggingWorkflowStepKey  = "workflow_step"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingTestResultIDKey  = "test_result_id"
	LoggingRegimenIDKey     = "regimen_id"
	LoggingTreatmentIDKey   = "treatment_id"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingIdempotencyKey        = "idempotency_key"
	LoggingQueueNameKey          = "queue_name"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
	LoggingAuditActionKey        = "audit_action"
	LoggingAuditCutoffKey        = "audit_cutoff"
	LoggingDeletedCountKey       = "deleted_count"
	LoggingCronSpecKey           = "cron_spec"
)
