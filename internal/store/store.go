package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ppiankov/verbtrainer/internal/cache"
	"github.com/ppiankov/verbtrainer/internal/model"
)

// ErrNotFound marks lookups for verbs absent from a loaded table. It is a
// caller-fault error, distinct from data loading failures.
var ErrNotFound = errors.New("not found")

const (
	formsFile    = "verbs_forms.json"
	examplesFile = "verbs_examples.json"

	keyForms        = "forms"
	keyTranslations = "translations"
	keyExamples     = "examples"
)

// Store loads and caches the three static verb tables: conjugation forms,
// translations, and example sentences. Each table is read from disk once and
// held for the process lifetime; there is no invalidation or expiry.
type Store struct {
	dataDir  string
	language string

	mu     sync.Mutex // guards load-then-cache for all tables
	tables cache.Cache

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewStore creates a store reading from dataDir, with translations for the
// given language code. A nil rng falls back to a time-seeded source; tests
// inject a fixed seed to make example selection deterministic.
func NewStore(dataDir, language string, rng *rand.Rand) *Store {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Store{
		dataDir:  dataDir,
		language: language,
		tables:   cache.NewMemoryCache(),
		rng:      rng,
	}
}

// Forms returns the verb forms table, loading it on first call
func (s *Store) Forms() (map[string]model.VerbForms, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.tables.Get(keyForms); ok {
		return v.(map[string]model.VerbForms), nil
	}

	var forms map[string]model.VerbForms
	if err := readJSON(filepath.Join(s.dataDir, formsFile), &forms); err != nil {
		return nil, fmt.Errorf("load verb forms: %w", err)
	}

	s.tables.Set(keyForms, forms)
	return forms, nil
}

// Translations returns the translation table, loading it on first call
func (s *Store) Translations() (map[string][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.tables.Get(keyTranslations); ok {
		return v.(map[string][]string), nil
	}

	path := filepath.Join(s.dataDir, "translations", "verbs_translation_"+s.language+".json")
	var translations map[string][]string
	if err := readJSON(path, &translations); err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	s.tables.Set(keyTranslations, translations)
	return translations, nil
}

// Examples returns the example sentence table, loading it on first call
func (s *Store) Examples() (map[string][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.tables.Get(keyExamples); ok {
		return v.(map[string][]string), nil
	}

	var examples map[string][]string
	if err := readJSON(filepath.Join(s.dataDir, examplesFile), &examples); err != nil {
		return nil, fmt.Errorf("load examples: %w", err)
	}

	s.tables.Set(keyExamples, examples)
	return examples, nil
}

// Count returns the number of verbs in the forms table
func (s *Store) Count() (int, error) {
	forms, err := s.Forms()
	if err != nil {
		return 0, err
	}
	return len(forms), nil
}

// Hints returns the translations and one randomly chosen example sentence
// for a verb. The translation and example tables are checked independently
// so a missing verb is reported against the table it is actually absent from.
func (s *Store) Hints(infinitive string) (model.Hints, error) {
	translations, err := s.Translations()
	if err != nil {
		return model.Hints{}, err
	}
	examples, err := s.Examples()
	if err != nil {
		return model.Hints{}, err
	}

	tr, ok := translations[infinitive]
	if !ok {
		return model.Hints{}, fmt.Errorf("verb %q not found in translations: %w", infinitive, ErrNotFound)
	}
	ex, ok := examples[infinitive]
	if !ok {
		return model.Hints{}, fmt.Errorf("verb %q not found in examples: %w", infinitive, ErrNotFound)
	}
	if len(ex) == 0 {
		return model.Hints{}, fmt.Errorf("verb %q has an empty example list", infinitive)
	}

	return model.Hints{
		Translations: tr,
		Example:      ex[s.pick(len(ex))],
	}, nil
}

// pick draws a random index; the rng is shared across requests
func (s *Store) pick(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(n)
}

func readJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("data file not found: %s", path)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
