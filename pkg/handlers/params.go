package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// PathID parses the named path segment as a positive integer id. On
// failure it writes a 400 and returns ok=false.
func PathID(w http.ResponseWriter, r *http.Request, name string, logger *zap.Logger) (int64, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_id", "Valid "+name+" is required"); err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
		return 0, false
	}
	return id, true
}
