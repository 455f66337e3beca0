package problem_service

import (
	"github.com/bighasbula/ITEENS/internal/service/judge_service"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Problem is a catalog entry. The catalog is compiled into the binary and
// read only at runtime; handing out values (not pointers) keeps it that way.
type Problem struct {
	ID            string                            `json:"id"`
	Name          string                            `json:"name"`
	Difficulty    Difficulty                        `json:"difficulty"`
	Description   string                            `json:"description"`
	SampleInput   string                            `json:"sample_input"`
	SampleOutput  string                            `json:"sample_output"`
	Tags          []string                          `json:"tags"`
	StarterCode   map[judge_service.Language]string `json:"starter_code"`
	IdealSolution map[judge_service.Language]string `json:"ideal_solution"`
	TestCases     []judge_service.TestCase          `json:"test_cases"`
}

// ProblemMetaData is the listing shape, without statements and code blobs.
type ProblemMetaData struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Difficulty Difficulty `json:"difficulty"`
	Tags       []string   `json:"tags"`
}

type ProblemService struct{}
