package problem_service

import (
	"fmt"
	"slices"

	"github.com/bighasbula/ITEENS/internal/iteens_errors"
)

// problemsByID fronts the ordered catalog for O(1) id lookups.
var problemsByID = func() map[string]Problem {
	byID := make(map[string]Problem, len(problems))
	for _, problem := range problems {
		byID[problem.ID] = problem
	}
	return byID
}()

func (p *ProblemService) GetProblemByID(id string) (Problem, error) {
	problem, ok := problemsByID[id]
	if !ok {
		return Problem{}, fmt.Errorf(
			"%w, no problem exist with id %s",
			iteens_errors.ErrNotFound,
			id,
		)
	}
	return problem, nil
}

type ListProblemsFilter struct {
	Difficulty Difficulty
	Tag        string
}

// ListProblems returns catalog metadata in catalog order, optionally
// narrowed by difficulty and tag.
func (p *ProblemService) ListProblems(filter ListProblemsFilter) []ProblemMetaData {
	metadata := make([]ProblemMetaData, 0, len(problems))
	for _, problem := range problems {
		if filter.Difficulty != "" && problem.Difficulty != filter.Difficulty {
			continue
		}
		if filter.Tag != "" && !slices.Contains(problem.Tags, filter.Tag) {
			continue
		}
		metadata = append(metadata, ProblemMetaData{
			ID:         problem.ID,
			Name:       problem.Name,
			Difficulty: problem.Difficulty,
			Tags:       problem.Tags,
		})
	}
	return metadata
}
