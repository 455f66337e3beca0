package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	log "github.com/sirupsen/logrus"
)

func decodeJsonBody(body io.Reader, target any) error {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func respondWithJson(w http.ResponseWriter, statusCode int, response []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(response); err != nil {
		log.Errorf("cannot write response body, %v", err)
	}
}

// handlerError maps service errors to http status codes. Anything not in the
// taxonomy is an internal error and must not leak details to the client.
func handlerError(err error, w http.ResponseWriter) {
	switch {
	case errors.Is(err, iteens_errors.ErrInvalidRequest),
		errors.Is(err, iteens_errors.ErrUnsupportedLanguage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, iteens_errors.ErrNotFound),
		errors.Is(err, iteens_errors.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, iteens_errors.ErrUnAuthorized),
		errors.Is(err, iteens_errors.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, iteens_errors.ErrExecutionTimeout):
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
	case errors.Is(err, iteens_errors.ErrSubmissionFailed),
		errors.Is(err, iteens_errors.ErrResultFetch):
		http.Error(w, err.Error(), http.StatusBadGateway)
	case errors.Is(err, iteens_errors.ErrEntityAlreadyExist):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, iteens_errors.ErrInternal.Error(), http.StatusInternalServerError)
	}
}
