package webserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/hauqxngo/NomNom/pkg/errors"
)

// envelope is the uniform JSON success response shape.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: true, Message: message})
}

// respondError maps application errors to HTTP status codes. Anything
// that is not an AppError is treated as an internal failure and its
// detail is not leaked to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError("An internal error occurred")
	}
	writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr, middleware.GetReqID(r.Context())))
}

func errorBody(code errors.ErrorCode, message string) errors.ErrorResponse {
	return errors.ErrorResponse{Error: errors.ErrorDetails{Code: code, Message: message}}
}
