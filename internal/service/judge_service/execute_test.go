package judge_service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logrus.SetLevel(logrus.DebugLevel)

	os.Exit(m.Run())
}

// mockJudge is an in-process stand-in for the remote judge. Each submission
// gets a token; its result is computed up front by behave and served after
// nonTerminalPolls queued/processing rounds.
type mockJudge struct {
	t                *testing.T
	nonTerminalPolls int
	failOnStdin      string
	failPolls        bool
	behave           func(sub judgeSubmission) judgeResult

	mu        sync.Mutex
	nextToken int
	results   map[string]judgeResult
	remaining map[string]int
	lastReq   *http.Request

	srv *httptest.Server
}

func newMockJudge(t *testing.T, behave func(sub judgeSubmission) judgeResult) *mockJudge {
	m := &mockJudge{
		t:         t,
		behave:    behave,
		results:   make(map[string]judgeResult),
		remaining: make(map[string]int),
	}
	m.srv = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.srv.Close)
	return m
}

func (m *mockJudge) handle(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastReq = r

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/submissions":
		var sub judgeSubmission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			m.t.Errorf("mock judge got undecodable submission: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if m.failOnStdin != "" && sub.Stdin == m.failOnStdin {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		m.nextToken++
		token := fmt.Sprintf("token-%d", m.nextToken)
		m.results[token] = m.behave(sub)
		m.remaining[token] = m.nonTerminalPolls
		json.NewEncoder(w).Encode(judgeToken{Token: token})

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/submissions/"):
		if m.failPolls {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "judge internal failure"})
			return
		}
		token := strings.TrimPrefix(r.URL.Path, "/submissions/")
		result, ok := m.results[token]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if m.remaining[token] > 0 {
			m.remaining[token]--
			json.NewEncoder(w).Encode(judgeResult{
				Status: judgeStatus{ID: statusInQueue, Description: "In Queue"},
			})
			return
		}
		json.NewEncoder(w).Encode(result)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (m *mockJudge) client() *JudgeService {
	return &JudgeService{
		BaseURL:         m.srv.URL,
		HTTPClient:      m.srv.Client(),
		PollInterval:    time.Millisecond,
		MaxPollAttempts: 10,
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func acceptedResult(stdout string) judgeResult {
	return judgeResult{
		Stdout: strPtr(stdout),
		Status: judgeStatus{ID: 3, Description: "Accepted"},
		Time:   strPtr("0.012"),
		Memory: intPtr(912),
	}
}

func TestExecuteTerminalResult(t *testing.T) {
	mock := newMockJudge(t, func(sub judgeSubmission) judgeResult {
		if sub.LanguageID != 71 {
			t.Errorf("expected python language id 71, got %d", sub.LanguageID)
		}
		if sub.Stdin != "some input" {
			t.Errorf("unexpected stdin %q", sub.Stdin)
		}
		return acceptedResult("hello\n")
	})

	result, err := mock.client().Execute(context.Background(), "print('hello')", LanguagePython, "some input")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if result.Output != "hello\n" {
		t.Errorf("expected output %q, got %q", "hello\n", result.Output)
	}
	if result.Error != nil {
		t.Errorf("expected nil error field, got %q", *result.Error)
	}
	if result.ExecutionTime != "0.012" {
		t.Errorf("expected execution time passed through verbatim, got %q", result.ExecutionTime)
	}
	if result.Memory == nil || *result.Memory != 912 {
		t.Errorf("expected memory 912, got %v", result.Memory)
	}
}

func TestExecutePollsUntilTerminal(t *testing.T) {
	mock := newMockJudge(t, func(judgeSubmission) judgeResult {
		return acceptedResult("done")
	})
	mock.nonTerminalPolls = 3

	result, err := mock.client().Execute(context.Background(), "code", LanguageJavascript, "")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if result.Output != "done" {
		t.Errorf("expected output %q, got %q", "done", result.Output)
	}
}

func TestExecuteTimeout(t *testing.T) {
	mock := newMockJudge(t, func(judgeSubmission) judgeResult {
		return acceptedResult("never served")
	})
	mock.nonTerminalPolls = 100

	client := mock.client()
	client.MaxPollAttempts = 3

	_, err := client.Execute(context.Background(), "code", LanguageCpp, "")
	if !errors.Is(err, iteens_errors.ErrExecutionTimeout) {
		t.Fatalf("expected ErrExecutionTimeout, got %v", err)
	}
}

func TestExecuteUnsupportedLanguage(t *testing.T) {
	mock := newMockJudge(t, func(judgeSubmission) judgeResult {
		t.Error("judge must not be contacted for an unsupported language")
		return judgeResult{}
	})

	_, err := mock.client().Execute(context.Background(), "code", Language("haskell"), "")
	if !errors.Is(err, iteens_errors.ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
}

func TestExecuteErrorPrecedence(t *testing.T) {
	cases := []struct {
		name     string
		result   judgeResult
		expected string
	}{
		{
			name: "stderr wins",
			result: judgeResult{
				Stderr:        strPtr("runtime boom"),
				CompileOutput: strPtr("also compiled badly"),
				Message:       strPtr("some message"),
				Status:        judgeStatus{ID: 11, Description: "Runtime Error"},
			},
			expected: "runtime boom",
		},
		{
			name: "compile output next",
			result: judgeResult{
				CompileOutput: strPtr("syntax error on line 3"),
				Message:       strPtr("some message"),
				Status:        judgeStatus{ID: 6, Description: "Compilation Error"},
			},
			expected: "syntax error on line 3",
		},
		{
			name: "status message last",
			result: judgeResult{
				Message: strPtr("exit code 1"),
				Status:  judgeStatus{ID: 12, Description: "Runtime Error (NZEC)"},
			},
			expected: "exit code 1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.result
			mock := newMockJudge(t, func(judgeSubmission) judgeResult { return result })

			execution, err := mock.client().Execute(context.Background(), "code", LanguagePython, "")
			if err != nil {
				t.Fatalf("judge-reported failures must not be client errors, got %v", err)
			}
			if execution.Error == nil {
				t.Fatal("expected a judge-reported error")
			}
			if *execution.Error != tc.expected {
				t.Errorf("expected error %q, got %q", tc.expected, *execution.Error)
			}
		})
	}
}

func TestExecutePollFailure(t *testing.T) {
	mock := newMockJudge(t, func(judgeSubmission) judgeResult {
		return acceptedResult("never served")
	})
	mock.failPolls = true

	_, err := mock.client().Execute(context.Background(), "code", LanguagePython, "")
	if !errors.Is(err, iteens_errors.ErrResultFetch) {
		t.Fatalf("a failing poll must surface as ErrResultFetch, got %v", err)
	}
}

func TestExecuteSubmitFailure(t *testing.T) {
	mock := newMockJudge(t, func(judgeSubmission) judgeResult { return judgeResult{} })
	client := mock.client()
	mock.srv.Close()

	_, err := client.Execute(context.Background(), "code", LanguagePython, "")
	if !errors.Is(err, iteens_errors.ErrSubmissionFailed) {
		t.Fatalf("expected ErrSubmissionFailed, got %v", err)
	}
}

func TestExecuteAbortsOnCanceledContext(t *testing.T) {
	mock := newMockJudge(t, func(judgeSubmission) judgeResult {
		return acceptedResult("never")
	})
	mock.nonTerminalPolls = 100

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := mock.client().Execute(ctx, "code", LanguagePython, "")
	if err == nil {
		t.Fatal("expected an error from a canceled context")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("cancellation must not wait out the poll budget, took %v", elapsed)
	}
}

func TestExecuteIdempotentOutput(t *testing.T) {
	mock := newMockJudge(t, func(judgeSubmission) judgeResult {
		return acceptedResult("42\n")
	})
	client := mock.client()

	first, err := client.Execute(context.Background(), "print(42)", LanguagePython, "")
	if err != nil {
		t.Fatalf("first execute failed: %v", err)
	}
	second, err := client.Execute(context.Background(), "print(42)", LanguagePython, "")
	if err != nil {
		t.Fatalf("second execute failed: %v", err)
	}
	if first.Output != second.Output {
		t.Errorf("identical submissions must yield identical output, got %q and %q", first.Output, second.Output)
	}
}

func TestExecuteHostedHeaders(t *testing.T) {
	mock := newMockJudge(t, func(judgeSubmission) judgeResult {
		return acceptedResult("ok")
	})
	client := mock.client()
	client.RapidAPIKey = "secret-key"
	client.RapidAPIHost = "judge.example.com"

	if _, err := client.Execute(context.Background(), "code", LanguageJava, ""); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	mock.mu.Lock()
	defer mock.mu.Unlock()
	if got := mock.lastReq.Header.Get("X-RapidAPI-Key"); got != "secret-key" {
		t.Errorf("expected rapid api key header, got %q", got)
	}
	if got := mock.lastReq.Header.Get("X-RapidAPI-Host"); got != "judge.example.com" {
		t.Errorf("expected rapid api host header, got %q", got)
	}
}
