package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	log "github.com/sirupsen/logrus"
)

// HandlerGetUser serves a user's public profile by username: the aggregate
// row only, no submission history.
func (a *Api) HandlerGetUser(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		err := fmt.Errorf(
			"%w, username must be provided",
			iteens_errors.ErrInvalidRequest,
		)
		handlerError(err, w)
		return
	}

	user, err := a.UserServiceConfig.FetchUserByUsername(r.Context(), username)
	if err != nil {
		handlerError(err, w)
		return
	}

	responseBytes, err := json.Marshal(user)
	if err != nil {
		log.Errorf("unable to marshal user profile, %v", err)
		http.Error(w, iteens_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	respondWithJson(w, http.StatusOK, responseBytes)
}
