package judge_service

import (
	"context"
	"testing"
)

// behaveByStdin serves a canned stdout per stdin, standing in for a correct
// solution run against each test case.
func behaveByStdin(outputs map[string]string) func(judgeSubmission) judgeResult {
	return func(sub judgeSubmission) judgeResult {
		output, ok := outputs[sub.Stdin]
		if !ok {
			output = "unexpected input"
		}
		return acceptedResult(output)
	}
}

var sleepInCases = []TestCase{
	{Input: "False\nFalse", ExpectedOutput: "true"},
	{Input: "True\nTrue", ExpectedOutput: "true"},
	{Input: "True\nFalse", ExpectedOutput: "false"},
}

func TestRunTestsAllPass(t *testing.T) {
	mock := newMockJudge(t, behaveByStdin(map[string]string{
		"False\nFalse": "true\n",
		"True\nTrue":   "true\n",
		"True\nFalse":  "false\n",
	}))

	run := mock.client().RunTests(context.Background(), "def sleep_in(...)", LanguagePython, sleepInCases)
	if run.Passed != 3 || run.Total != 3 {
		t.Fatalf("expected 3/3 passed, got %d/%d", run.Passed, run.Total)
	}
	for i, result := range run.Results {
		if !result.Passed {
			t.Errorf("case %d unexpectedly failed: expected %q, got %q", i, result.ExpectedOutput, result.ActualOutput)
		}
	}
}

func TestRunTestsPartialPass(t *testing.T) {
	// a buggy solution that always answers true
	mock := newMockJudge(t, func(judgeSubmission) judgeResult {
		return acceptedResult("true\n")
	})

	run := mock.client().RunTests(context.Background(), "return True", LanguagePython, sleepInCases)
	if run.Passed != 2 || run.Total != 3 {
		t.Fatalf("expected 2/3 passed, got %d/%d", run.Passed, run.Total)
	}
	if run.Results[2].Passed {
		t.Error("expected the True/False case to fail")
	}
	if run.Results[2].ActualOutput != "true\n" {
		t.Errorf("failed case must keep its actual output, got %q", run.Results[2].ActualOutput)
	}
}

func TestRunTestsPreservesCaseOrder(t *testing.T) {
	mock := newMockJudge(t, behaveByStdin(map[string]string{
		"1": "a", "2": "b", "3": "c",
	}))
	cases := []TestCase{
		{Input: "1", ExpectedOutput: "a"},
		{Input: "2", ExpectedOutput: "b"},
		{Input: "3", ExpectedOutput: "c"},
	}

	run := mock.client().RunTests(context.Background(), "code", LanguageJavascript, cases)
	if len(run.Results) != len(cases) {
		t.Fatalf("expected %d results, got %d", len(cases), len(run.Results))
	}
	for i, result := range run.Results {
		if result.Input != cases[i].Input {
			t.Errorf("result %d out of order: got input %q, expected %q", i, result.Input, cases[i].Input)
		}
	}
}

func TestRunTestsTrimmedComparison(t *testing.T) {
	mock := newMockJudge(t, behaveByStdin(map[string]string{
		"a": "5\n",
		"b": "5.0\n",
	}))
	cases := []TestCase{
		{Input: "a", ExpectedOutput: "5"},
		{Input: "b", ExpectedOutput: "5"},
	}

	run := mock.client().RunTests(context.Background(), "code", LanguagePython, cases)
	if !run.Results[0].Passed {
		t.Error("trailing newline must not fail an otherwise exact match")
	}
	if run.Results[1].Passed {
		t.Error("5.0 must not match 5, trimming is whitespace only")
	}
	if run.Passed != 1 {
		t.Errorf("expected exactly 1 passed, got %d", run.Passed)
	}
}

func TestRunTestsIsolatesClientFailures(t *testing.T) {
	mock := newMockJudge(t, behaveByStdin(map[string]string{
		"ok-1": "fine",
		"ok-2": "fine",
	}))
	mock.failOnStdin = "boom"

	cases := []TestCase{
		{Input: "ok-1", ExpectedOutput: "fine"},
		{Input: "boom", ExpectedOutput: "fine"},
		{Input: "ok-2", ExpectedOutput: "fine"},
	}

	run := mock.client().RunTests(context.Background(), "code", LanguageCpp, cases)
	if run.Total != 3 {
		t.Fatalf("expected all 3 cases accounted for, got total %d", run.Total)
	}
	if run.Passed != 2 {
		t.Errorf("expected the 2 healthy cases to pass, got %d", run.Passed)
	}
	if len(run.Results) != 3 {
		t.Fatalf("a failing case must still produce a result, got %d results", len(run.Results))
	}

	failed := run.Results[1]
	if failed.Passed {
		t.Error("the failing case must be marked failed")
	}
	if failed.Error == nil || *failed.Error == "" {
		t.Error("the failing case must carry the client error message")
	}
	if failed.ActualOutput != "" {
		t.Errorf("a case with no execution has no output, got %q", failed.ActualOutput)
	}
}

func TestRunTestsEmptyCaseList(t *testing.T) {
	mock := newMockJudge(t, func(judgeSubmission) judgeResult {
		t.Error("judge must not be contacted without test cases")
		return judgeResult{}
	})

	run := mock.client().RunTests(context.Background(), "code", LanguagePython, nil)
	if run.Passed != 0 || run.Total != 0 {
		t.Errorf("expected an empty run, got %d/%d", run.Passed, run.Total)
	}
	if len(run.Results) != 0 {
		t.Errorf("expected no results, got %d", len(run.Results))
	}
}

func TestRunTestsKeepsZeroMemoryReport(t *testing.T) {
	mock := newMockJudge(t, func(judgeSubmission) judgeResult {
		return judgeResult{
			Stdout: strPtr("true"),
			Status: judgeStatus{ID: 3, Description: "Accepted"},
			Memory: intPtr(0),
		}
	})

	run := mock.client().RunTests(context.Background(), "code", LanguagePython, []TestCase{
		{Input: "", ExpectedOutput: "true"},
	})
	result := run.Results[0]
	if result.Memory == nil {
		t.Fatal("a reported memory of 0 must survive, not read as unset")
	}
	if *result.Memory != 0 {
		t.Errorf("expected memory 0, got %d", *result.Memory)
	}
}

func TestRunTestsReportedErrorsFailTheCase(t *testing.T) {
	mock := newMockJudge(t, func(judgeSubmission) judgeResult {
		return judgeResult{
			Stderr: strPtr("NameError: name 'x' is not defined"),
			Status: judgeStatus{ID: 11, Description: "Runtime Error"},
		}
	})

	run := mock.client().RunTests(context.Background(), "x", LanguagePython, []TestCase{
		{Input: "", ExpectedOutput: "true"},
	})
	if run.Passed != 0 {
		t.Errorf("a runtime error cannot pass, got %d passed", run.Passed)
	}
	result := run.Results[0]
	if result.Error == nil || *result.Error != "NameError: name 'x' is not defined" {
		t.Error("expected the judge-reported stderr on the case result")
	}
}
