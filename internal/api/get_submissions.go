package api

import (
	"encoding/json"
	"net/http"

	"github.com/bighasbula/ITEENS/internal/database"
	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	log "github.com/sirupsen/logrus"
)

// HandlerGetSubmissions serves submission history. With mine=true the scope
// is the caller's history, optionally narrowed to one problem; otherwise a
// problem_id is required and the problem's whole history is returned.
func (a *Api) HandlerGetSubmissions(w http.ResponseWriter, r *http.Request) {
	problemID := r.URL.Query().Get("problem_id")
	mine := r.URL.Query().Get("mine") == "true"

	var (
		submissions []database.Submission
		err         error
	)
	switch {
	case mine && problemID != "":
		submissions, err = a.SubmissionServiceConfig.GetUserProblemSubmissions(r.Context(), problemID)
	case mine:
		submissions, err = a.SubmissionServiceConfig.GetUserSubmissions(r.Context())
	default:
		submissions, err = a.SubmissionServiceConfig.GetProblemSubmissions(r.Context(), problemID)
	}
	if err != nil {
		handlerError(err, w)
		return
	}

	responseBytes, marshalErr := json.Marshal(submissions)
	if marshalErr != nil {
		log.Errorf("unable to marshal submissions, %v", marshalErr)
		http.Error(w, iteens_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	respondWithJson(w, http.StatusOK, responseBytes)
}

func (a *Api) HandlerGetSubmissionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.SubmissionServiceConfig.GetUserSubmissionStats(r.Context())
	if err != nil {
		handlerError(err, w)
		return
	}

	responseBytes, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("unable to marshal submission stats, %v", err)
		http.Error(w, iteens_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	respondWithJson(w, http.StatusOK, responseBytes)
}
