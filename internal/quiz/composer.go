package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ppiankov/verbtrainer/internal/model"
	"github.com/ppiankov/verbtrainer/internal/store"
)

// ErrValidation marks caller-fault input errors: a bad verb count or an
// empty answer list.
var ErrValidation = errors.New("invalid input")

// Composer assembles randomized quiz sessions from the verb store
type Composer struct {
	store *store.Store

	mu  sync.Mutex
	rng *rand.Rand
}

// NewComposer creates a composer. A nil rng falls back to a time-seeded
// source; tests inject a fixed seed for deterministic sampling.
func NewComposer(s *store.Store, rng *rand.Rand) *Composer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Composer{store: s, rng: rng}
}

// StartSession draws count distinct verbs uniformly at random, decorates
// each with translations and one example sentence, and mints a fresh
// session identifier. The identifier is an opaque token for the caller to
// round-trip on submission; nothing is persisted server-side.
func (c *Composer) StartSession(count int) (*model.SessionStart, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: verb count must be positive, got %d", ErrValidation, count)
	}

	forms, err := c.store.Forms()
	if err != nil {
		return nil, err
	}
	if count > len(forms) {
		return nil, fmt.Errorf("%w: not enough verbs in database: requested %d, but only %d available",
			ErrValidation, count, len(forms))
	}

	infinitives := c.sample(keysOf(forms), count)

	verbs := make([]model.VerbInfo, 0, count)
	for i, inf := range infinitives {
		hints, err := c.store.Hints(inf)
		if err != nil {
			return nil, err
		}
		verbs = append(verbs, model.VerbInfo{
			Infinitive:   inf,
			Index:        i,
			Translations: hints.Translations,
			Example:      hints.Example,
		})
	}

	return &model.SessionStart{
		SessionID:  uuid.NewString(),
		Verbs:      verbs,
		TotalVerbs: len(verbs),
	}, nil
}

// sample draws count entries without replacement via a Fisher-Yates shuffle.
// The input is sorted first so map iteration order carries no bias into the
// draw and a seeded rng yields reproducible selections.
func (c *Composer) sample(keys []string, count int) []string {
	sort.Strings(keys)

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(keys) - 1; i > 0; i-- {
		j := c.rng.Intn(i + 1)
		keys[i], keys[j] = keys[j], keys[i]
	}
	return keys[:count]
}

func keysOf(m map[string]model.VerbForms) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
