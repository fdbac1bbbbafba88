package utils

import (
	"context"
	"health-records-service/internal/pkg/constvars"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// ParseJSONBody decodes the request body into dst. An empty body leaves dst
// untouched.
func ParseJSONBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, dst)
}

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
