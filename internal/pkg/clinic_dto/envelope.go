package clinic_dto

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// Envelope is the wrapper every clinic API response is sent in.
type Envelope struct {
	Status     bool            `json:"status"`
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Errors     FieldErrors     `json:"errors"`
}

// HasData reports whether the envelope carries a non-null payload.
func (e *Envelope) HasData() bool {
	trimmed := bytes.TrimSpace(e.Data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// Succeeded is false when status is false or when a business status code
// outside 2xx is reported, even inside an HTTP 200.
func (e *Envelope) Succeeded() bool {
	if !e.Status {
		return false
	}
	return e.StatusCode == 0 || (e.StatusCode >= 200 && e.StatusCode < 300)
}

// FieldErrors maps a request field to its validation messages. The backend
// sends either {"field": "msg"}, {"field": ["msg", ...]} or ["msg", ...];
// messages without a field are kept under GeneralFieldKey.
type FieldErrors map[string][]string

const GeneralFieldKey = "general"

func (f *FieldErrors) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = nil
		return nil
	}

	result := FieldErrors{}
	switch trimmed[0] {
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		for field, value := range raw {
			messages := decodeMessages(value)
			if len(messages) > 0 {
				result[lowerFirst(field)] = messages
			}
		}
	case '[':
		messages := decodeMessages(trimmed)
		if len(messages) > 0 {
			result[GeneralFieldKey] = messages
		}
	case '"':
		var message string
		if err := json.Unmarshal(trimmed, &message); err != nil {
			return err
		}
		if message != "" {
			result[GeneralFieldKey] = []string{message}
		}
	}

	if len(result) == 0 {
		*f = nil
		return nil
	}
	*f = result
	return nil
}

func decodeMessages(value json.RawMessage) []string {
	var many []string
	if err := json.Unmarshal(value, &many); err == nil {
		return many
	}
	var one string
	if err := json.Unmarshal(value, &one); err == nil && one != "" {
		return []string{one}
	}
	return nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
