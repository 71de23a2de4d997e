package responses

import "time"

type AuditEvent struct {
	ID         string                 `json:"id"`
	Action     string                 `json:"action"`
	Resource   string                 `json:"resource"`
	ResourceID string                 `json:"resourceId,omitempty"`
	UserID     int                    `json:"userId"`
	Role       string                 `json:"role"`
	RequestID  string                 `json:"requestId,omitempty"`
	Detail     map[string]interface{} `json:"detail,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
}
