package controllers

import (
	"context"
	"errors"
	"health-records-service/internal/pkg/exceptions"
	"health-records-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// requestContext bounds store calls made on behalf of r. The request id set
// by the middleware stays reachable.
func requestContext(r *http.Request, timeoutInSeconds int) (context.Context, context.CancelFunc) {
	if timeoutInSeconds <= 0 {
		timeoutInSeconds = 10
	}
	return context.WithTimeout(r.Context(), time.Duration(timeoutInSeconds)*time.Second)
}

func respondUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
