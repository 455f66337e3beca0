package judge_service

import (
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// Language is the fixed set of selectors the editor offers.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavascript Language = "javascript"
	LanguageJava       Language = "java"
	LanguageCpp        Language = "cpp"
)

// language ids of the remote judge
var languageIDs = map[Language]int{
	LanguagePython:     71,
	LanguageJavascript: 63,
	LanguageJava:       62,
	LanguageCpp:        54,
}

const (
	statusInQueue    = 1
	statusProcessing = 2

	defaultJudgeURL        = "http://localhost:2358"
	defaultPollInterval    = time.Second
	defaultMaxPollAttempts = 10

	keyJudgeURL          = "JUDGE_URL"
	keyJudgeRapidAPIKey  = "JUDGE_RAPIDAPI_KEY"
	keyJudgeRapidAPIHost = "JUDGE_RAPIDAPI_HOST"
)

// JudgeService talks to the remote code execution service. It keeps no state
// between calls; every execution is a submit followed by a bounded poll.
type JudgeService struct {
	BaseURL         string
	RapidAPIKey     string
	RapidAPIHost    string
	HTTPClient      *http.Client
	PollInterval    time.Duration
	MaxPollAttempts int
}

// NewJudgeService builds a judge client from the environment. A rapid api key
// switches the client to the hosted deployment, otherwise the base url is
// assumed to be self hosted. The difference is headers only.
func NewJudgeService() *JudgeService {
	baseURL := os.Getenv(keyJudgeURL)
	if baseURL == "" {
		baseURL = defaultJudgeURL
		log.Warnf("judge url not found in environment. using default %s", baseURL)
	}

	return &JudgeService{
		BaseURL:         baseURL,
		RapidAPIKey:     os.Getenv(keyJudgeRapidAPIKey),
		RapidAPIHost:    os.Getenv(keyJudgeRapidAPIHost),
		HTTPClient:      http.DefaultClient,
		PollInterval:    defaultPollInterval,
		MaxPollAttempts: defaultMaxPollAttempts,
	}
}

// ExecutionResult is the normalized outcome of one run. Error carries
// judge-reported failures (compile errors, runtime errors); it being non-nil
// does not mean the execution request itself failed.
type ExecutionResult struct {
	Output        string  `json:"output"`
	Error         *string `json:"error"`
	ExecutionTime string  `json:"execution_time"`
	Memory        *int    `json:"memory"`
}

type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

type TestCaseResult struct {
	Input          string  `json:"input"`
	ExpectedOutput string  `json:"expected_output"`
	ActualOutput   string  `json:"actual_output"`
	Passed         bool    `json:"passed"`
	Error          *string `json:"error,omitempty"`
	ExecutionTime  *string `json:"execution_time,omitempty"`
	Memory         *int    `json:"memory,omitempty"`
}

type TestRun struct {
	Passed  int              `json:"passed"`
	Total   int              `json:"total"`
	Results []TestCaseResult `json:"results"`
}

// wire types of the remote judge

type judgeSubmission struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin,omitempty"`
}

type judgeToken struct {
	Token string `json:"token"`
}

type judgeStatus struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type judgeResult struct {
	Stdout        *string     `json:"stdout"`
	Stderr        *string     `json:"stderr"`
	CompileOutput *string     `json:"compile_output"`
	Message       *string     `json:"message"`
	Status        judgeStatus `json:"status"`
	Time          *string     `json:"time"`
	Memory        *int        `json:"memory"`
}
