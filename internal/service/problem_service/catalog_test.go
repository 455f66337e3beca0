package problem_service

import (
	"errors"
	"os"
	"testing"

	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	"github.com/bighasbula/ITEENS/internal/service/judge_service"
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

func TestGetProblemByID(t *testing.T) {
	svc := &ProblemService{}

	problem, err := svc.GetProblemByID("sleep-in")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if problem.Name != "Sleep In" {
		t.Errorf("unexpected name %q", problem.Name)
	}
	if problem.Difficulty != DifficultyEasy {
		t.Errorf("unexpected difficulty %q", problem.Difficulty)
	}
	if len(problem.TestCases) == 0 {
		t.Error("a catalog problem must carry test cases")
	}
	if _, ok := problem.StarterCode[judge_service.LanguagePython]; !ok {
		t.Error("expected python starter code")
	}
}

func TestGetProblemByIDNotFound(t *testing.T) {
	svc := &ProblemService{}

	_, err := svc.GetProblemByID("no-such-problem")
	if !errors.Is(err, iteens_errors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListProblemsUnfiltered(t *testing.T) {
	svc := &ProblemService{}

	listed := svc.ListProblems(ListProblemsFilter{})
	if len(listed) != len(problems) {
		t.Fatalf("expected the whole catalog, got %d of %d", len(listed), len(problems))
	}
	for i, meta := range listed {
		if meta.ID != problems[i].ID {
			t.Errorf("listing must keep catalog order: position %d is %q, expected %q", i, meta.ID, problems[i].ID)
		}
	}
}

func TestListProblemsByDifficulty(t *testing.T) {
	svc := &ProblemService{}

	listed := svc.ListProblems(ListProblemsFilter{Difficulty: DifficultyHard})
	if len(listed) == 0 {
		t.Fatal("expected at least one hard problem")
	}
	for _, meta := range listed {
		if meta.Difficulty != DifficultyHard {
			t.Errorf("problem %q leaked through the difficulty filter", meta.ID)
		}
	}
}

func TestListProblemsByTag(t *testing.T) {
	svc := &ProblemService{}

	listed := svc.ListProblems(ListProblemsFilter{Tag: "booleans"})
	if len(listed) != 3 {
		t.Fatalf("expected 3 boolean problems, got %d", len(listed))
	}
	ids := map[string]bool{}
	for _, meta := range listed {
		ids[meta.ID] = true
	}
	if !ids["sleep-in"] || !ids["monkey-trouble"] || !ids["parrot-trouble"] {
		t.Errorf("unexpected tag filter result: %v", ids)
	}
}

func TestCatalogComplete(t *testing.T) {
	svc := &ProblemService{}

	wanted := []string{
		"sleep-in", "monkey-trouble", "sum-double", "diff21", "parrot-trouble",
		"string-times", "front-times", "array-123", "same-first-last", "two-sum",
	}
	for _, id := range wanted {
		if _, err := svc.GetProblemByID(id); err != nil {
			t.Errorf("catalog is missing %q: %v", id, err)
		}
	}
	if len(problems) != len(wanted) {
		t.Errorf("expected %d catalog entries, got %d", len(wanted), len(problems))
	}
}

func TestListProblemsCombinedFilter(t *testing.T) {
	svc := &ProblemService{}

	listed := svc.ListProblems(ListProblemsFilter{Difficulty: DifficultyEasy, Tag: "math"})
	for _, meta := range listed {
		if meta.Difficulty != DifficultyEasy {
			t.Errorf("problem %q leaked through the difficulty filter", meta.ID)
		}
	}
	if len(listed) == 0 {
		t.Fatal("expected easy math problems")
	}
}

func TestCatalogIntegrity(t *testing.T) {
	seen := map[string]bool{}
	for _, problem := range problems {
		if seen[problem.ID] {
			t.Errorf("duplicate problem id %q", problem.ID)
		}
		seen[problem.ID] = true

		if len(problem.TestCases) == 0 {
			t.Errorf("problem %q has no test cases", problem.ID)
		}
		for language := range problem.StarterCode {
			if _, ok := problem.IdealSolution[language]; !ok {
				t.Errorf("problem %q offers %s starter code without an ideal solution", problem.ID, language)
			}
		}
	}
}
