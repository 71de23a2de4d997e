package models

import "time"

type AuditEvent struct {
	ID         string                 `bson:"_id"`
	Action     string                 `bson:"action"`
	Resource   string                 `bson:"resource"`
	ResourceID string                 `bson:"resource_id,omitempty"`
	UserID     int                    `bson:"user_id"`
	Role       string                 `bson:"role"`
	RequestID  string                 `bson:"request_id,omitempty"`
	Detail     map[string]interface{} `bson:"detail,omitempty"`
	CreatedAt  time.Time              `bson:"created_at"`
}
