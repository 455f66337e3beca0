package judge_service

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
)

// RunTests judges the code once per test case, strictly in list order, and
// aggregates the outcome. A failing execution marks its own case as failed
// and the remaining cases still run; nothing short circuits.
func (j *JudgeService) RunTests(
	ctx context.Context,
	code string,
	language Language,
	testCases []TestCase,
) TestRun {
	results := make([]TestCaseResult, 0, len(testCases))
	passed := 0

	for _, testCase := range testCases {
		execution, err := j.Execute(ctx, code, language, testCase.Input)
		if err != nil {
			// client level failure, isolate it to this case
			msg := err.Error()
			results = append(results, TestCaseResult{
				Input:          testCase.Input,
				ExpectedOutput: testCase.ExpectedOutput,
				ActualOutput:   "",
				Passed:         false,
				Error:          &msg,
			})
			continue
		}

		isPassed := strings.TrimSpace(execution.Output) == strings.TrimSpace(testCase.ExpectedOutput)
		if isPassed {
			passed++
		}

		result := TestCaseResult{
			Input:          testCase.Input,
			ExpectedOutput: testCase.ExpectedOutput,
			ActualOutput:   execution.Output,
			Passed:         isPassed,
			Error:          execution.Error,
			Memory:         execution.Memory,
		}
		if execution.ExecutionTime != "" {
			executionTime := execution.ExecutionTime
			result.ExecutionTime = &executionTime
		}

		results = append(results, result)
	}

	log.WithFields(log.Fields{
		"language": language,
		"passed":   passed,
		"total":    len(testCases),
	}).Info("test run completed")

	return TestRun{
		Passed:  passed,
		Total:   len(testCases),
		Results: results,
	}
}
