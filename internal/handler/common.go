package handler

import (
	"encoding/json"
	"net/http"

	"bank-account/internal/errors"
)

type Response struct {
	Data  interface{} `json:"data,omitempty"`
	Error *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// writeJSON encodes before writing the header; a payload JSON cannot carry,
// such as a +Inf balance, is reported as an internal error.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	body, err := json.Marshal(Response{Data: data})
	if err != nil {
		writeError(w, errors.NewAppError(errors.InternalError, "failed to encode response").WithDetails(err.Error()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, appErr *errors.AppError) {
	w.Header().Set("Content-Type", "application/json")

	statusCode := appErr.HTTPStatus()
	errResponse := Error{
		Code:    string(appErr.Code),
		Message: appErr.Message,
		Details: appErr.Details,
	}

	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(Response{Error: &errResponse})
}

// writeServiceError writes err as-is when it is an AppError and hides anything else.
func writeServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := errors.As(err); ok {
		writeError(w, appErr)
		return
	}
	writeError(w, errors.NewAppError(errors.InternalError, "an unexpected error occurred"))
}
