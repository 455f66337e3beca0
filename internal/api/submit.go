package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	"github.com/bighasbula/ITEENS/internal/service/submission_service"
	log "github.com/sirupsen/logrus"
)

func (a *Api) HandlerSubmit(w http.ResponseWriter, r *http.Request) {
	var request submission_service.RecordSubmissionRequest

	if err := decodeJsonBody(r.Body, &request); err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	response, err := a.SubmissionServiceConfig.Record(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	responseBytes, err := json.Marshal(response)
	if err != nil {
		log.Errorf("unable to marshal submission response, %v", err)
		http.Error(w, iteens_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	respondWithJson(w, http.StatusCreated, responseBytes)
}
