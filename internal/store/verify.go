package store

import (
	"fmt"
	"sort"
)

// VerifyReport lists data-quality problems found across the three tables
type VerifyReport struct {
	Verbs    int
	Problems []string
}

// OK reports whether the dataset passed every check
func (r *VerifyReport) OK() bool {
	return len(r.Problems) == 0
}

// Verify checks the dataset invariants that the runtime assumes but never
// enforces: the three tables share an identical key set, every verb has
// three non-empty forms, at least one translation, and 2-3 non-empty
// example sentences. Intended for build-time linting via the CLI.
func (s *Store) Verify() (*VerifyReport, error) {
	forms, err := s.Forms()
	if err != nil {
		return nil, err
	}
	translations, err := s.Translations()
	if err != nil {
		return nil, err
	}
	examples, err := s.Examples()
	if err != nil {
		return nil, err
	}

	report := &VerifyReport{Verbs: len(forms)}
	add := func(format string, a ...interface{}) {
		report.Problems = append(report.Problems, fmt.Sprintf(format, a...))
	}

	for _, inf := range sortedKeys(forms) {
		f := forms[inf]
		if f.Praesens == "" || f.Praeteritum == "" || f.Perfekt == "" {
			add("%s: one or more empty conjugation forms", inf)
		}

		tr, ok := translations[inf]
		if !ok {
			add("%s: missing from translations", inf)
		} else if len(tr) == 0 {
			add("%s: empty translation list", inf)
		} else {
			for _, t := range tr {
				if t == "" {
					add("%s: empty translation entry", inf)
					break
				}
			}
		}

		ex, ok := examples[inf]
		switch {
		case !ok:
			add("%s: missing from examples", inf)
		case len(ex) < 2 || len(ex) > 3:
			add("%s: expected 2-3 examples, got %d", inf, len(ex))
		default:
			for _, e := range ex {
				if e == "" {
					add("%s: empty example sentence", inf)
					break
				}
			}
		}
	}

	for _, inf := range sortedKeys(translations) {
		if _, ok := forms[inf]; !ok {
			add("%s: present in translations but not in forms", inf)
		}
	}
	for _, inf := range sortedKeys(examples) {
		if _, ok := forms[inf]; !ok {
			add("%s: present in examples but not in forms", inf)
		}
	}

	return report, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
