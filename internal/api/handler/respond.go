package handler

import (
	"blogapi/internal/common"
	"net/http"

	"go.uber.org/zap"
)

// respondError writes a service error through the response envelope. Internal
// errors are logged and replaced with a generic message; the raw error detail
// never reaches the client.
func respondError(logger *zap.Logger, w http.ResponseWriter, err error) {
	status := common.HTTPStatusFromError(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		common.RespondWithError(w, status, "Internal server error")
		return
	}
	common.RespondWithError(w, status, err.Error())
}
