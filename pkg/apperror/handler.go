package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteError renders err as a JSON error response.
// 5xx errors are logged at error level; HEAD requests get no body.
func WriteError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	code, body := ToHTTPError(err)

	if code >= 500 && log != nil {
		log.Error("request error",
			slog.Int("status", code),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(code)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
