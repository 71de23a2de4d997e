package requests

// EmailPayload is the message shape consumed by the mailer queue worker.
// ReferenceID lets the worker drop duplicates of the same notification.
type EmailPayload struct {
	Subject     string   `json:"subject"`
	From        string   `json:"from"`
	To          []string `json:"to"`
	Cc          []string `json:"cc,omitempty"`
	Bcc         []string `json:"bcc,omitempty"`
	HTMLCode    string   `json:"html_code"`
	Encoded     bool     `json:"encoded"`
	ReferenceID string   `json:"reference_id,omitempty"`
}
