package utils

import (
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/dto/requests"
	"encoding/base64"
	"fmt"
	"html"
)

func BuildTreatmentCreatedEmailPayload(fromEmail, toEmail, patientFullName, startDate, endDate, portalLink string) *requests.EmailPayload {
	to := []string{toEmail}
	htmlCode := fmt.Sprintf(constvars.EmailTreatmentCreatedHTMLFormat,
		html.EscapeString(patientFullName),
		html.EscapeString(startDate),
		html.EscapeString(endDate),
		html.EscapeString(portalLink),
	)
	encoded := base64.StdEncoding.EncodeToString([]byte(htmlCode))

	return &requests.EmailPayload{
		Subject:  constvars.EmailSubjectTreatmentCreated,
		From:     fromEmail,
		To:       to,
		Cc:       []string{},
		Bcc:      []string{},
		HTMLCode: encoded,
		Encoded:  true,
	}
}
