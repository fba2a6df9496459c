package api

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform wrapper for every non-204 response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message"`
}

// The canonical header set, applied to every response including 204.
const (
	allowOrigin  = "*"
	allowHeaders = "Content-Type,X-Amz-Date,Authorization,X-Api-Key"
	allowMethods = "OPTIONS,POST,GET,PUT,DELETE"
)

func writeHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Access-Control-Allow-Origin", allowOrigin)
	h.Set("Access-Control-Allow-Headers", allowHeaders)
	h.Set("Access-Control-Allow-Methods", allowMethods)
}

// Success writes a success envelope with the given status code.
func Success(w http.ResponseWriter, status int, data interface{}, message string) {
	writeHeaders(w)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Error writes an error envelope carrying a machine-readable tag and a
// human-readable message.
func Error(w http.ResponseWriter, status int, code, message string) {
	writeHeaders(w)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Envelope{
		Success: false,
		Error:   code,
		Message: message,
	})
}

// NoContent writes an empty-body 204 with the canonical header set.
func NoContent(w http.ResponseWriter) {
	writeHeaders(w)
	w.WriteHeader(http.StatusNoContent)
}
