package quiz

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/verbtrainer/internal/store"
)

// newTestStore writes a consistent five-verb dataset and opens a store on it
func newTestStore(t *testing.T, rng *rand.Rand) *store.Store {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"verbs_forms.json": `{
			"gehen": {"Präsens": "geht", "Präteritum": "ging", "Perfekt": "ist gegangen"},
			"sehen": {"Präsens": "sieht", "Präteritum": "sah", "Perfekt": "hat gesehen"},
			"kommen": {"Präsens": "kommt", "Präteritum": "kam", "Perfekt": "ist gekommen"},
			"lesen": {"Präsens": "liest", "Präteritum": "las", "Perfekt": "hat gelesen"},
			"trinken": {"Präsens": "trinkt", "Präteritum": "trank", "Perfekt": "hat getrunken"}
		}`,
		"verbs_examples.json": `{
			"gehen": ["Er geht zur Arbeit.", "Sie ging nach Hause."],
			"sehen": ["Er sieht den Bus.", "Sie sah einen Film."],
			"kommen": ["Sie kommt pünktlich.", "Er kam zu spät."],
			"lesen": ["Er liest ein Buch.", "Sie las die Zeitung."],
			"trinken": ["Sie trinkt Kaffee.", "Er trank Wasser."]
		}`,
		filepath.Join("translations", "verbs_translation_ru.json"): `{
			"gehen": ["идти", "ходить"],
			"sehen": ["видеть"],
			"kommen": ["приходить"],
			"lesen": ["читать"],
			"trinken": ["пить"]
		}`,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	return store.NewStore(dir, "ru", rng)
}

func TestComposer_StartSession_CountAndIndices(t *testing.T) {
	c := NewComposer(newTestStore(t, nil), nil)

	session, err := c.StartSession(3)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	if session.TotalVerbs != 3 || len(session.Verbs) != 3 {
		t.Fatalf("Expected 3 verbs, got total=%d len=%d", session.TotalVerbs, len(session.Verbs))
	}
	if session.SessionID == "" {
		t.Error("Expected a non-empty session ID")
	}

	seen := make(map[string]bool)
	for i, v := range session.Verbs {
		if v.Index != i {
			t.Errorf("Verb %d has index %d", i, v.Index)
		}
		if seen[v.Infinitive] {
			t.Errorf("Duplicate infinitive in session: %s", v.Infinitive)
		}
		seen[v.Infinitive] = true
	}
}

func TestComposer_StartSession_HintsAttached(t *testing.T) {
	c := NewComposer(newTestStore(t, nil), nil)

	session, err := c.StartSession(5)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	for _, v := range session.Verbs {
		if len(v.Translations) == 0 {
			t.Errorf("%s: no translations attached", v.Infinitive)
		}
		if v.Example == "" {
			t.Errorf("%s: no example attached", v.Infinitive)
		}
	}
}

func TestComposer_StartSession_TooManyRequested(t *testing.T) {
	c := NewComposer(newTestStore(t, nil), nil)

	_, err := c.StartSession(6)
	if err == nil {
		t.Fatal("Expected error for count above population")
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation, got: %v", err)
	}
	if !strings.Contains(err.Error(), "requested 6") || !strings.Contains(err.Error(), "5 available") {
		t.Errorf("Expected requested vs available counts in message, got: %v", err)
	}
}

func TestComposer_StartSession_NonPositiveCount(t *testing.T) {
	c := NewComposer(newTestStore(t, nil), nil)

	for _, count := range []int{0, -1} {
		if _, err := c.StartSession(count); !errors.Is(err, ErrValidation) {
			t.Errorf("count=%d: expected ErrValidation, got: %v", count, err)
		}
	}
}

func TestComposer_StartSession_UniqueSessionIDs(t *testing.T) {
	c := NewComposer(newTestStore(t, nil), nil)

	first, err := c.StartSession(2)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	second, err := c.StartSession(2)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if first.SessionID == second.SessionID {
		t.Errorf("Consecutive sessions share an ID: %s", first.SessionID)
	}
}

func TestComposer_StartSession_DeterministicWithSeed(t *testing.T) {
	draw := func() []string {
		c := NewComposer(newTestStore(t, rand.New(rand.NewSource(42))), rand.New(rand.NewSource(42)))
		session, err := c.StartSession(3)
		if err != nil {
			t.Fatalf("StartSession: %v", err)
		}
		infs := make([]string, len(session.Verbs))
		for i, v := range session.Verbs {
			infs[i] = v.Infinitive
		}
		return infs
	}

	first := draw()
	second := draw()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Seeded draws differ: %v vs %v", first, second)
		}
	}
}
