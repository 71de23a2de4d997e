package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":             "is required",
	"email":                "must be a valid email",
	"alphanum":             "must contain only alphanumeric characters",
	"min":                  "must be at least %s",
	"max":                  "must be at most %s",
	"numeric":              "must be a number",
	"len":                  "must be %s characters long",
	"oneof":                "must be one of [%s]",
	"gt":                   "must be greater than %s",
	"gte":                  "must be greater than or equal to %s",
	"lt":                   "must be less than %s",
	"lte":                  "must be less than or equal to %s",
	"url":                  "must be a valid URL",
	"uuid":                 "must be a valid UUID",
	"unique":               "must not contain duplicates",
	"required_if":          "is required when %s",
	"required_without":     "is required when %s is not present",
	"clinic_date":          "must be a date formatted as YYYY-MM-DD",
	"clinic_time":          "must be a time formatted as HH:MM",
	"clinic_role":          "must be one of [Patient, Doctor, Staff, Manager, Admin]",
	"phone_number":         "phone number must be a valid international number",
	"appointment_status":   "must be one of [Pending, Confirmed, Completed, Cancelled]",
	"appointment_category": "must be one of [Appointment, Medication]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"len":              true,
	"gt":               true,
	"gte":              true,
	"lt":               true,
	"lte":              true,
	"oneof":            true,
	"required_if":      true,
	"required_without": true,
}

// Tags whose message is returned verbatim, without the field name prefix
var TagsWithoutFieldName = map[string]bool{
	"phone_number": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientClinicApiUnavailable          = "the clinic service is unavailable, please try again"
	ErrClientClinicApiValidation           = "some fields are invalid"
	ErrClientResourceNotFound              = "the requested data was not found"
	ErrClientDuplicateSubmission           = "your previous submission is still being processed"
	ErrClientSlotMustBeInFuture            = "appointment date and time must be in the future"
	ErrClientTestTypeRequired              = "test type is required for a medication appointment"
	ErrClientPatientRequired               = "patient is required when booking on behalf of a patient"
	ErrClientAppointmentNoTestType         = "the appointment has no assigned test type"
	ErrClientStartDateMustBeFuture         = "start date must be after today"
	ErrClientEndDateMustBeAfterStart       = "end date must be after start date"
	ErrClientWorkflowMissingTestResult     = "test result is missing, please record the test result first"
	ErrClientWorkflowMissingRegimen        = "regimen is missing, please choose a regimen first"
	ErrClientWorkflowMissingAppointment    = "appointment is missing, please start from the appointment list"
	ErrClientWorkflowNotFound              = "the workflow was not found or already expired"
	ErrClientWorkflowNotOwner              = "the workflow belongs to another user"
	ErrClientWorkflowCompleted             = "the workflow is already completed"
	ErrClientRegimenNotStandard            = "the selected regimen is not an active standard regimen"
	ErrClientComponentNotActive            = "one of the selected components is not active"
	ErrClientRegimenNoComponents           = "choose at least one component for a customized regimen"
	ErrClientUnknownResource               = "unknown resource"
	ErrClientResourceReadOnly              = "this resource cannot be modified"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientRequestTooLarge               = "the request is too large"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevReadHTTPResponse         = "failed to read HTTP response body"
	ErrDevMissingRequestID         = "request ID not found in context"
	ErrDevMissingSession           = "session not found in context"

	// Clinic API messages
	ErrDevClinicApiUnauthorized   = "clinic API rejected the bearer token"
	ErrDevClinicApiValidation     = "clinic API rejected %s payload with field errors"
	ErrDevClinicApiRequestFailed  = "clinic API request %s failed with status code %d"
	ErrDevClinicApiDecodeResponse = "failed to decode clinic API %s response"
	ErrDevClinicApiBusinessStatus = "clinic API reported unsuccessful status for %s"
	ErrDevClinicApiNotFound       = "clinic API returned no %s data"
	ErrDevClinicApiThrottle       = "clinic API throttle wait aborted"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"
	ErrDevSlotInPast                 = "appointment slot is not in the future"
	ErrDevTestTypeRequired           = "medication appointment without test type"
	ErrDevPatientRequired            = "booking on behalf without patient id"
	ErrDevTreatmentDateOrder         = "treatment date constraint violated"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenExpired          = "clinic API token expired"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthPermissionDenied      = "permission %s denied for role %s"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthRoleNotExists         = "role claim missing or unknown in clinic API token"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevAuthSealToken             = "failed to seal or open clinic API token"

	// Workflow messages
	ErrDevWorkflowMissingCarryState = "workflow %s missing carry-state %s"
	ErrDevWorkflowNotFound          = "workflow %s not found"
	ErrDevWorkflowNotOwner          = "workflow %s owned by another user"
	ErrDevWorkflowCompleted         = "workflow %s already completed"
	ErrDevWorkflowLocked            = "workflow %s lock held by another submission"
	ErrDevRegimenNotStandard        = "regimen %d is not an active standard regimen"
	ErrDevComponentNotActive        = "component %d is not active"
	ErrDevRegimenNoComponents       = "customized regimen without components"
	ErrDevAppointmentNoTestType     = "appointment %d has no test type"

	// Idempotency messages
	ErrDevIdempotencyInFlight = "idempotency key %s is still in flight"

	// Request body messages
	ErrDevReadBody            = "failed to read request body"
	ErrDevRequestBodyTooLarge = "request body exceeds %d bytes"

	// Reference data messages
	ErrDevUnknownResource   = "unknown reference resource %s"
	ErrDevResourceReadOnly  = "reference resource %s is read only"
	ErrDevResourceMissingID = "reference record of %s has no %s field"

	// Database messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument = "failed to delete documents from database"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisUnlock     = "failed to release lock in redis"
	ErrDevRedisExpire     = "failed to EXPIRE data in redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanicRecovered   = "panic recovered"
)
