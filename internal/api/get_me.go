package api

import (
	"encoding/json"
	"net/http"

	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	log "github.com/sirupsen/logrus"
)

func (a *Api) HandlerGetMe(w http.ResponseWriter, r *http.Request) {
	profile, err := a.UserServiceConfig.GetMe(r.Context())
	if err != nil {
		handlerError(err, w)
		return
	}

	responseBytes, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("cannot marshal profile of user %s, %v", profile.UserID, err)
		http.Error(w, iteens_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	respondWithJson(w, http.StatusOK, responseBytes)
}
