package api

import (
	"encoding/json"
	"net/http"

	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	"github.com/bighasbula/ITEENS/internal/service/problem_service"
	log "github.com/sirupsen/logrus"
)

func (a *Api) HandlerGetProblems(w http.ResponseWriter, r *http.Request) {
	// a problem id means a single full problem is wanted
	problemID := r.URL.Query().Get("problem_id")
	if problemID != "" {
		a.getProblemByID(problemID, w)
		return
	}

	filter := problem_service.ListProblemsFilter{
		Difficulty: problem_service.Difficulty(r.URL.Query().Get("difficulty")),
		Tag:        r.URL.Query().Get("tag"),
	}

	problems := a.ProblemServiceConfig.ListProblems(filter)

	responseBytes, err := json.Marshal(problems)
	if err != nil {
		log.Errorf("unable to marshal problems, %v", err)
		http.Error(w, iteens_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	respondWithJson(w, http.StatusOK, responseBytes)
}

func (a *Api) getProblemByID(problemID string, w http.ResponseWriter) {
	problem, err := a.ProblemServiceConfig.GetProblemByID(problemID)
	if err != nil {
		handlerError(err, w)
		return
	}

	responseBytes, err := json.Marshal(problem)
	if err != nil {
		log.Errorf("unable to marshal problem %s, %v", problemID, err)
		http.Error(w, iteens_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	respondWithJson(w, http.StatusOK, responseBytes)
}
