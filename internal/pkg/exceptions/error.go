package exceptions

import (
	"clinic-portal-service/internal/pkg/constvars"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int                 `json:"status_code"`
	Success       bool                `json:"success"`
	ClientMessage string              `json:"message"`
	FieldErrors   map[string][]string `json:"errors,omitempty"`
	RedirectTo    string              `json:"redirect_to,omitempty"`
	BackTo        string              `json:"back_to,omitempty"`
	DevMessage    string              `json:"dev_message,omitempty"`
	Location      *Location           `json:"location,omitempty"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if e.Location == nil {
		return e.DevMessage
	}
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

// WithFieldErrors attaches field level messages surfaced next to form inputs.
func (e *CustomError) WithFieldErrors(fieldErrors map[string][]string) *CustomError {
	e.FieldErrors = fieldErrors
	return e
}

// WithRedirect tells the client which screen to navigate to after the error.
func (e *CustomError) WithRedirect(route string) *CustomError {
	e.RedirectTo = route
	return e
}

// WithBackTo tells the client which previous wizard step to return to.
func (e *CustomError) WithBackTo(route string) *CustomError {
	e.BackTo = route
	return e
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      &location,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
