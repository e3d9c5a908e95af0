package quiz

import (
	"fmt"
	"math"
	"strings"

	"github.com/ppiankov/verbtrainer/internal/model"
	"github.com/ppiankov/verbtrainer/internal/store"
)

// Grader checks submitted conjugations against the reference forms
type Grader struct {
	store *store.Store
}

// NewGrader creates a grader backed by the given store
func NewGrader(s *store.Store) *Grader {
	return &Grader{store: s}
}

// CheckAnswer compares one submitted set of forms against the reference.
// Submitted forms are trimmed of leading and trailing whitespace only;
// matching is otherwise exact, case- and diacritic-sensitive ("Geht" does
// not match "geht").
func (g *Grader) CheckAnswer(infinitive, praesens, praeteritum, perfekt string) (model.FormCheck, error) {
	forms, err := g.store.Forms()
	if err != nil {
		return model.FormCheck{}, err
	}

	ref, ok := forms[infinitive]
	if !ok {
		return model.FormCheck{}, fmt.Errorf("verb %q not found in database: %w", infinitive, store.ErrNotFound)
	}

	return model.FormCheck{
		Praesens:    strings.TrimSpace(praesens) == ref.Praesens,
		Praeteritum: strings.TrimSpace(praeteritum) == ref.Praeteritum,
		Perfekt:     strings.TrimSpace(perfekt) == ref.Perfekt,
	}, nil
}

// GradeSession grades all answers of a session in submission order. Each
// verb contributes exactly three graded forms. Any unknown infinitive
// aborts the whole call; there is no partial result.
func (g *Grader) GradeSession(answers []model.Answer) (*model.SessionResult, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: no answers provided", ErrValidation)
	}

	forms, err := g.store.Forms()
	if err != nil {
		return nil, err
	}

	results := make([]model.VerbResult, 0, len(answers))
	totalCorrect := 0
	totalForms := len(answers) * 3

	for _, a := range answers {
		ref, ok := forms[a.Infinitive]
		if !ok {
			return nil, fmt.Errorf("verb %q not found in database: %w", a.Infinitive, store.ErrNotFound)
		}

		check, err := g.CheckAnswer(a.Infinitive, a.Praesens, a.Praeteritum, a.Perfekt)
		if err != nil {
			return nil, err
		}
		totalCorrect += check.CorrectCount()

		results = append(results, model.VerbResult{
			Infinitive: a.Infinitive,
			Correct:    check,
			UserAnswers: model.FormAnswers{
				Praesens:    a.Praesens,
				Praeteritum: a.Praeteritum,
				Perfekt:     a.Perfekt,
			},
			CorrectAnswers: model.FormAnswers{
				Praesens:    ref.Praesens,
				Praeteritum: ref.Praeteritum,
				Perfekt:     ref.Perfekt,
			},
			AllCorrect: check.AllCorrect(),
		})
	}

	score := 0.0
	if totalForms > 0 {
		score = math.Round(float64(totalCorrect)/float64(totalForms)*1000) / 10
	}

	return &model.SessionResult{
		TotalVerbs:      len(answers),
		TotalForms:      totalForms,
		CorrectCount:    totalCorrect,
		ScorePercentage: score,
		Results:         results,
	}, nil
}
