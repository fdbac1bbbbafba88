package exceptions

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestCustomError_Unwrap(t *testing.T) {
	err := ErrServerDeadlineExceeded(context.DeadlineExceeded)

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, http.StatusGatewayTimeout, err.StatusCode)
}

func TestBuildNewCustomErrorWithDetail(t *testing.T) {
	t.Run("Nested Detail Wins", func(t *testing.T) {
		inner := ErrMongoDBInsertDocument(errors.New("connection refused"))
		outer := ErrCreateDoctor(inner)

		assert.Equal(t, "connection refused", outer.Detail)
		assert.Contains(t, outer.DevMessage, "connection refused")
	})

	t.Run("Without Cause", func(t *testing.T) {
		err := ErrCreateDoctor(nil)
		assert.Empty(t, err.Detail)
	})
}

func TestBuildNewCustomError_Location(t *testing.T) {
	err := ErrPatientNotFound(nil, "p1")

	assert.Contains(t, err.Location.File, "error_test.go")
	assert.Contains(t, err.Location.FunctionName, "TestBuildNewCustomError_Location")
	assert.Contains(t, err.Error(), "p1")
}

func TestErrInputValidation(t *testing.T) {
	type options struct {
		Limit  int      `validate:"gte=0"`
		Fields []string `validate:"required,min=1"`
	}

	t.Run("First Failure Is Reported", func(t *testing.T) {
		err := validator.New().Struct(options{Limit: -1, Fields: []string{"first"}})

		customErr := ErrInputValidation(err)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "limit must be greater than or equal to 0", customErr.ClientMessage)
	})

	t.Run("Empty List", func(t *testing.T) {
		err := validator.New().Struct(options{Fields: []string{}})

		assert.Equal(t, "fields must contain at least 1 item(s)", ErrInputValidation(err).ClientMessage)
	})
}
