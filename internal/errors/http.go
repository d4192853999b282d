package errors

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// HTTPResponse is the JSON body written for failed requests.
type HTTPResponse struct {
	Error string                 `json:"error"`
	Code  string                 `json:"code"`
	Meta  map[string]interface{} `json:"meta,omitempty"`
}

// WriteHTTP writes err as a JSON error response. The status code and body
// are derived from the error's code; unrecognized errors become 500s with
// a generic message so internal details never leak to clients.
func WriteHTTP(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	resp := HTTPResponse{
		Error: "internal server error",
		Code:  string(CodeInternal),
	}
	status := http.StatusInternalServerError

	var customErr *Error
	if As(err, &customErr) {
		status = customErr.Code.HTTPStatus()
		resp.Code = string(customErr.Code)
		resp.Error = customErr.Message
		resp.Meta = customErr.Meta
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed", "error", err)
		// Keep the generic message for 5xx responses.
		resp.Error = http.StatusText(status)
		resp.Meta = nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		slog.ErrorContext(ctx, "failed to encode error response", "error", encodeErr)
	}
}

// HTTPStatus returns the HTTP status code for any error.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var customErr *Error
	if As(err, &customErr) {
		return customErr.Code.HTTPStatus()
	}

	return http.StatusInternalServerError
}
