package judge_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	log "github.com/sirupsen/logrus"
)

// Execute runs the given source against the remote judge and waits for a
// terminal result. The returned error covers client level failures only;
// judge-reported failures land in ExecutionResult.Error.
func (j *JudgeService) Execute(
	ctx context.Context,
	code string,
	language Language,
	stdin string,
) (ExecutionResult, error) {
	languageID, ok := languageIDs[language]
	if !ok {
		err := fmt.Errorf(
			"%w, %s",
			iteens_errors.ErrUnsupportedLanguage,
			language,
		)
		log.Error(err)
		return ExecutionResult{}, err
	}

	token, err := j.submitCode(ctx, judgeSubmission{
		SourceCode: code,
		LanguageID: languageID,
		Stdin:      stdin,
	})
	if err != nil {
		return ExecutionResult{}, err
	}

	result, err := j.waitForResult(ctx, token)
	if err != nil {
		return ExecutionResult{}, err
	}

	return normalizeResult(result), nil
}

func (j *JudgeService) submitCode(
	ctx context.Context,
	submission judgeSubmission,
) (string, error) {
	body, err := json.Marshal(submission)
	if err != nil {
		err = fmt.Errorf(
			"%w, cannot marshal judge submission, %w",
			iteens_errors.ErrInternal,
			err,
		)
		log.Error(err)
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		j.BaseURL+"/submissions",
		bytes.NewReader(body),
	)
	if err != nil {
		err = fmt.Errorf(
			"%w, failed to create http request with ctx: %w",
			iteens_errors.ErrInternal,
			err,
		)
		log.Error(err)
		return "", err
	}
	j.setHeaders(req)

	res, err := j.HTTPClient.Do(req)
	if err != nil {
		err = fmt.Errorf(
			"%w, %w",
			iteens_errors.ErrSubmissionFailed,
			err,
		)
		log.Error(err)
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		err = fmt.Errorf(
			"%w, judge responded with status %s",
			iteens_errors.ErrSubmissionFailed,
			res.Status,
		)
		log.Error(err)
		return "", err
	}

	var tokenRes judgeToken
	if err = json.NewDecoder(res.Body).Decode(&tokenRes); err != nil {
		err = fmt.Errorf(
			"%w, cannot decode judge token response, %w",
			iteens_errors.ErrSubmissionFailed,
			err,
		)
		log.Error(err)
		return "", err
	}

	log.Debugf("judge accepted submission with token %s", tokenRes.Token)
	return tokenRes.Token, nil
}

func (j *JudgeService) getResult(ctx context.Context, token string) (judgeResult, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		j.BaseURL+"/submissions/"+token,
		nil,
	)
	if err != nil {
		err = fmt.Errorf(
			"%w, failed to create http request with ctx: %w",
			iteens_errors.ErrInternal,
			err,
		)
		log.Error(err)
		return judgeResult{}, err
	}
	j.setHeaders(req)

	res, err := j.HTTPClient.Do(req)
	if err != nil {
		err = fmt.Errorf(
			"%w, %w",
			iteens_errors.ErrResultFetch,
			err,
		)
		log.Error(err)
		return judgeResult{}, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		err = fmt.Errorf(
			"%w, judge responded with status %s for token %s",
			iteens_errors.ErrResultFetch,
			res.Status,
			token,
		)
		log.Error(err)
		return judgeResult{}, err
	}

	var result judgeResult
	if err = json.NewDecoder(res.Body).Decode(&result); err != nil {
		err = fmt.Errorf(
			"%w, cannot decode judge result for token %s, %w",
			iteens_errors.ErrResultFetch,
			token,
			err,
		)
		log.Error(err)
		return judgeResult{}, err
	}

	return result, nil
}

// waitForResult polls the judge until the submission leaves the queued and
// processing states. The attempt budget bounds the total wait; the context
// lets the caller abort between attempts.
func (j *JudgeService) waitForResult(ctx context.Context, token string) (judgeResult, error) {
	for attempt := 0; attempt < j.MaxPollAttempts; attempt++ {
		result, err := j.getResult(ctx, token)
		if err != nil {
			return judgeResult{}, err
		}

		if result.Status.ID != statusInQueue && result.Status.ID != statusProcessing {
			return result, nil
		}

		log.Debugf(
			"submission %s still %s, attempt %d/%d",
			token,
			result.Status.Description,
			attempt+1,
			j.MaxPollAttempts,
		)

		select {
		case <-ctx.Done():
			err = fmt.Errorf(
				"%w, caller aborted while waiting for the judge, %w",
				iteens_errors.ErrResultFetch,
				ctx.Err(),
			)
			log.Warn(err)
			return judgeResult{}, err
		case <-time.After(j.PollInterval):
		}
	}

	err := fmt.Errorf(
		"%w, no terminal status after %d attempts",
		iteens_errors.ErrExecutionTimeout,
		j.MaxPollAttempts,
	)
	log.Error(err)
	return judgeResult{}, err
}

func (j *JudgeService) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if j.RapidAPIKey != "" {
		req.Header.Set("X-RapidAPI-Key", j.RapidAPIKey)
		req.Header.Set("X-RapidAPI-Host", j.RapidAPIHost)
	}
}

// normalizeResult flattens the judge payload. The error field is the first
// non-empty of stderr, compile output and status message; all empty means the
// run produced output without any judge-reported failure.
func normalizeResult(result judgeResult) ExecutionResult {
	normalized := ExecutionResult{}

	if result.Stdout != nil {
		normalized.Output = *result.Stdout
	}
	if result.Time != nil {
		normalized.ExecutionTime = *result.Time
	}
	normalized.Memory = result.Memory

	switch {
	case result.Stderr != nil && *result.Stderr != "":
		normalized.Error = result.Stderr
	case result.CompileOutput != nil && *result.CompileOutput != "":
		normalized.Error = result.CompileOutput
	case result.Message != nil && *result.Message != "":
		normalized.Error = result.Message
	}

	return normalized
}
