package response

import (
	"encoding/json"
	"net/http"

	"github.com/I2oman/HospitalAssessment/pkg/outcome"
)

type Response struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Severity string      `json:"severity,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Error    interface{} `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	JSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation failed",
		Error:   errors,
	})
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, nil)
}

// Outcome renders a mutation outcome, passing its message and severity
// through verbatim. successStatus is used when the mutation was applied.
func Outcome(w http.ResponseWriter, o outcome.Outcome, successStatus int) {
	JSON(w, statusForReason(o.Reason, successStatus), Response{
		Success:  o.Succeeded(),
		Message:  o.Message,
		Severity: string(o.Severity),
	})
}

func statusForReason(reason outcome.Reason, successStatus int) int {
	switch reason {
	case "":
		return successStatus
	case outcome.ReasonDuplicateKey, outcome.ReasonDuplicateNaturalKey, outcome.ReasonReferenced:
		return http.StatusConflict
	case outcome.ReasonNotFound:
		return http.StatusNotFound
	case outcome.ReasonInvalidField, outcome.ReasonUnresolvedReference:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
