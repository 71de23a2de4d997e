package models

// IdempotentResponse is the replayable copy of a finished mutating request.
type IdempotentResponse struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}
