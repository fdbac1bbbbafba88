package exceptions

import (
	"fmt"
	"health-records-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int      `json:"-"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	Detail        string   `json:"error,omitempty"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
	Err           error    `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError records the caller of the named constructor, not the
// constructor itself.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(3),
		Err:           err,
	}
	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return customErr
}

// BuildNewCustomErrorWithDetail is BuildNewCustomError for store failures,
// whose underlying message is returned to the caller as-is.
func BuildNewCustomErrorWithDetail(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	customErr := BuildNewCustomError(err, statusCode, clientMessage, devMessage)
	customErr.Location = getLocation(3)
	if err != nil {
		customErr.Detail = rootMessage(err)
	}
	return customErr
}

func rootMessage(err error) string {
	if customErr, ok := err.(*CustomError); ok {
		if customErr.Detail != "" {
			return customErr.Detail
		}
		if customErr.Err != nil {
			return rootMessage(customErr.Err)
		}
	}
	return err.Error()
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
