package controllers

import (
	"clinic-portal-service/internal/pkg/exceptions"
	"clinic-portal-service/internal/pkg/utils"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

// decodeJSON binds the body into request. The returned error is ready to be
// written to the client.
func decodeJSON(r *http.Request, request interface{}) error {
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

// decodeOptionalJSON is decodeJSON that leaves request untouched when the
// body is empty.
func decodeOptionalJSON(r *http.Request, request interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil && !errors.Is(err, io.EOF) {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func validate(request interface{}) error {
	err := utils.ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func urlParamID(r *http.Request, name string) (int, error) {
	id, err := utils.ParseUrlParamID(chi.URLParam(r, name))
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, name)
	}
	return id, nil
}
