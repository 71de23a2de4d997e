package utils

import (
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/dto/responses"
	"clinic-portal-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	writeJSON(w, code, response)
}

// BuildSuccessResponseWithWarnings is used when the main operation succeeded
// but a follow-up step failed and the user should still be told about it.
func BuildSuccessResponseWithWarnings(w http.ResponseWriter, code int, message string, data interface{}, warnings []string) {
	response := responses.ResponseDTO{
		Success:  true,
		Message:  message,
		Data:     data,
		Warnings: warnings,
	}
	writeJSON(w, code, response)
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, message string, data interface{}, pagination *responses.Pagination) {
	response := responses.ResponseDTO{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	}
	writeJSON(w, code, response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		fields := []zap.Field{zap.Int(constvars.LoggingStatusCodeKey, code)}
		if customErr.Location != nil {
			fields = append(fields, zap.Any("location", customErr.Location))
		}
		log.Error(customErr.DevMessage, fields...)
	} else if err != nil {
		log.Error(err.Error())
	}

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	if customErr != nil {
		response.FieldErrors = customErr.FieldErrors
		response.RedirectTo = customErr.RedirectTo
		response.BackTo = customErr.BackTo
		if customErr.RedirectTo != "" {
			w.Header().Set(constvars.HeaderRedirectTo, customErr.RedirectTo)
		}
	}

	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	if customErr != nil && appEnvironment != constvars.AppEnvProduction {
		response.DevMessage = customErr.DevMessage
		response.Location = customErr.Location
	}
	writeJSON(w, code, response)
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
