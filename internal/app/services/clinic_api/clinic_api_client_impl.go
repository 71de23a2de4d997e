package clinic_api

import (
	"bytes"
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/exceptions"
	"clinic-portal-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var errClinicApiStatusFalse = errors.New("clinic API envelope reported failure")

type clinicApiClient struct {
	BaseUrl    string
	HttpClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewClinicApiClient builds the only client that talks to the clinic
// backend. Outgoing calls are throttled to ratePerSecond with burst.
func NewClinicApiClient(baseUrl string, timeout time.Duration, ratePerSecond float64, burst int, logger *zap.Logger) contracts.ClinicApiClient {
	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}
	if burst <= 0 {
		burst = 1
	}
	return &clinicApiClient{
		BaseUrl:    baseUrl,
		HttpClient: &http.Client{Timeout: timeout},
		Limiter:    rate.NewLimiter(limit, burst),
		Log:        logger,
	}
}

func (c *clinicApiClient) Do(ctx context.Context, method, resource, action string, query url.Values, body interface{}, out interface{}) error {
	requestID := utils.GetRequestID(ctx)

	requestUrl := fmt.Sprintf(constvars.ClinicApiPathFormat, c.BaseUrl, resource, action)
	if len(query) > 0 {
		requestUrl = requestUrl + "?" + query.Encode()
	}
	c.Log.Info("clinicApiClient.Do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingClinicApiUrlKey, requestUrl),
	)

	err := c.Limiter.Wait(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.Log.Error("clinicApiClient.Do error waiting for throttle",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrClinicApiThrottle(err)
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("clinicApiClient.Do error marshaling request body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrCannotMarshalJSON(err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestUrl, bodyReader)
	if err != nil {
		c.Log.Error("clinicApiClient.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if session, ok := models.SessionFromContext(ctx); ok && session.ClinicToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+session.ClinicToken)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.Log.Error("clinicApiClient.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("clinicApiClient.Do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrReadHTTPResponse(err)
	}

	if resp.StatusCode == constvars.StatusUnauthorized {
		c.Log.Warn("clinicApiClient.Do clinic API answered unauthorized",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicResourceKey, resource),
		)
		return exceptions.ErrClinicApiUnauthorized(nil)
	}

	var envelope clinic_dto.Envelope
	decodeErr := json.Unmarshal(bodyBytes, &envelope)

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		customErr := c.mapFailure(resource, resp.StatusCode, &envelope, decodeErr)
		c.Log.Error("clinicApiClient.Do clinic API request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(customErr),
		)
		return customErr
	}

	if decodeErr != nil {
		c.Log.Error("clinicApiClient.Do error decoding envelope",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(decodeErr),
		)
		return exceptions.ErrClinicApiDecodeResponse(decodeErr, resource)
	}

	if !envelope.Succeeded() {
		c.Log.Error("clinicApiClient.Do clinic API reported unsuccessful status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, envelope.StatusCode),
			zap.String(constvars.LoggingResponseKey, envelope.Message),
		)
		if len(envelope.Errors) > 0 {
			return exceptions.ErrClinicApiValidation(errClinicApiStatusFalse, resource, envelope.Errors, envelope.Message)
		}
		return exceptions.ErrClinicApiBusinessStatus(errClinicApiStatusFalse, resource, envelope.Message)
	}

	if out != nil && envelope.HasData() {
		err = json.Unmarshal(envelope.Data, out)
		if err != nil {
			c.Log.Error("clinicApiClient.Do error decoding envelope data",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrClinicApiDecodeResponse(err, resource)
		}
	}

	c.Log.Info("clinicApiClient.Do succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicResourceKey, resource),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return nil
}

// mapFailure turns a non 2xx answer into the error taxonomy. Field errors
// only come with 400.
func (c *clinicApiClient) mapFailure(resource string, statusCode int, envelope *clinic_dto.Envelope, decodeErr error) error {
	message := ""
	if decodeErr == nil {
		message = envelope.Message
	}
	cause := fmt.Errorf("status %d", statusCode)

	switch {
	case statusCode == constvars.StatusBadRequest && decodeErr == nil && len(envelope.Errors) > 0:
		return exceptions.ErrClinicApiValidation(cause, resource, envelope.Errors, message)
	case statusCode == constvars.StatusNotFound:
		return exceptions.ErrClinicApiNotFound(cause, resource)
	default:
		return exceptions.ErrClinicApiRequestFailed(cause, resource, statusCode, message)
	}
}
