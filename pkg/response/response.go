package response

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Message writes a {"message": ...} body.
func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, map[string]string{"message": message})
}

// Error writes an {"error": ...} body.
func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, map[string]string{"error": message})
}

// FieldErrors writes the field-keyed validation errors as the response body,
// so clients can render inline feedback per field.
func FieldErrors(w http.ResponseWriter, errors map[string]string) {
	JSON(w, http.StatusBadRequest, errors)
}

// NonFieldError writes a validation failure that is not tied to a single
// field, e.g. a failed credential check on login.
func NonFieldError(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, map[string][]string{
		"non_field_errors": {message},
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}
