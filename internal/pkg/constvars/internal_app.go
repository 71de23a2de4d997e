package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CLNC_PRTL_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

// Redis key formats
const (
	RedisKeySessionFormat         = "session:%s"
	RedisKeyWorkflowFormat        = "workflow:%s"
	RedisKeyWorkflowLockFormat    = "workflow:%s:lock"
	RedisKeyIdempotencyFormat     = "idempotency:%s:%s"
	RedisKeyIdempotencyLockFormat = "idempotency:%s:%s:lock"
	RedisKeyAuditRetentionLeader  = "audit:retention:leader"
)

// Frontend routes used as redirect hints
const (
	RouteLogin              = "/login"
	RouteDoctorAppointments = "/doctor/appointments"
	RouteWorkflowTestResult = "/doctor/workflow/test-result"
	RouteWorkflowRegimen    = "/doctor/workflow/regimen"
	RouteWorkflowTreatment  = "/doctor/workflow/treatment"
)
