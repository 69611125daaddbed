package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/camden-git/starwarsapi/repository"
)

// internalErrorDetail is the only error text a client ever sees for a 500.
const internalErrorDetail = "internal server error"

// MessageResponse is the body of every status or error reply.
type MessageResponse struct {
	Msg   string `json:"msg"`
	Error string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Error encoding JSON response: %v", err)
		}
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageResponse{Msg: msg})
}

// StatusForError maps repository errors onto HTTP status codes.
// Duplicates are 400 rather than 409 to keep the established API contract.
func StatusForError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case repository.IsNotFound(err):
		return http.StatusNotFound
	case repository.IsDuplicate(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeInternalError logs the real failure and replies with a generic 500.
func writeInternalError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, msg string, err error) {
	logger.Error(msg,
		zap.Error(err),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Bool("storage_failure", repository.IsStorageFailure(err)),
	)
	writeJSON(w, http.StatusInternalServerError, MessageResponse{Msg: "Error", Error: internalErrorDetail})
}

// NotFound answers unmatched routes, including ids that are not integers.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, "resource not found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusMethodNotAllowed, "method not allowed")
}
