package utils

import (
	"errors"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/dto/responses"
	"health-records-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, response responses.ResponseDTO) {
	response.Success = true
	BuildJSONResponse(w, code, response)
}

// BuildJSONResponse writes data as the whole body, without an envelope.
func BuildJSONResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	response := exceptions.CustomError{
		StatusCode:    constvars.StatusInternalServerError,
		ClientMessage: constvars.ErrClientSomethingWrongWithApplication,
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		response.StatusCode = customErr.StatusCode
		response.ClientMessage = customErr.ClientMessage
		response.Detail = customErr.Detail
		location := map[string]interface{}{
			"file":          customErr.Location.File,
			"line":          customErr.Location.Line,
			"function_name": customErr.Location.FunctionName,
		}
		if customErr.StatusCode >= constvars.StatusInternalServerError {
			log.Error(customErr.DevMessage, zap.Any("location", location))
		} else {
			log.Warn(customErr.DevMessage, zap.Any("location", location))
		}
	} else {
		log.Error(err.Error())
	}

	BuildJSONResponse(w, response.StatusCode, response)
}
