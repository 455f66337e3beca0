package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	"github.com/bighasbula/ITEENS/internal/service"
	"github.com/bighasbula/ITEENS/internal/service/judge_service"
	log "github.com/sirupsen/logrus"
)

// HandlerRunCode judges the caller's code against the problem's test cases
// and returns the per-case breakdown. Nothing is persisted here; recording
// happens when the UI submits the finished session.
func (a *Api) HandlerRunCode(w http.ResponseWriter, r *http.Request) {
	var request RunCodeRequest

	if err := decodeJsonBody(r.Body, &request); err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if err := service.ValidateInput(request); err != nil {
		handlerError(err, w)
		return
	}

	problem, err := a.ProblemServiceConfig.GetProblemByID(request.ProblemID)
	if err != nil {
		handlerError(err, w)
		return
	}

	testRun := a.JudgeServiceConfig.RunTests(
		r.Context(),
		request.Code,
		judge_service.Language(request.Language),
		problem.TestCases,
	)

	responseBytes, err := json.Marshal(testRun)
	if err != nil {
		log.Errorf("unable to marshal test run, %v", err)
		http.Error(w, iteens_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	respondWithJson(w, http.StatusOK, responseBytes)
}
