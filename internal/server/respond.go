package server

import (
	"encoding/json"
	"net/http"
)

// Error codes returned in the error envelope.
const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodePresetNotFound = "PRESET_NOT_FOUND"
	ErrCodeComputeFailed  = "COMPUTE_FAILED"
	ErrCodeRenderFailed   = "RENDER_FAILED"
	ErrCodeStoreFailed    = "STORE_FAILED"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)

// errorBody is the JSON error envelope returned by all endpoints.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var body errorBody
	body.Error.Code = code
	body.Error.Message = message
	body.RequestID = requestIDFromContext(r.Context())
	writeJSON(w, status, body)
}
