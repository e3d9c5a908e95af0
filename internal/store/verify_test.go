package store

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestVerify_ConsistentDataset(t *testing.T) {
	s := NewStore(writeDataset(t), "ru", nil)

	report, err := s.Verify()
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !report.OK() {
		t.Errorf("Expected clean report, got problems: %v", report.Problems)
	}
	if report.Verbs != 3 {
		t.Errorf("Expected 3 verbs checked, got %d", report.Verbs)
	}
}

func TestVerify_KeySetMismatch(t *testing.T) {
	dir := writeDataset(t)
	// gehen missing from translations, extra verb only in examples
	writeFile(t, filepath.Join(dir, "translations", "verbs_translation_ru.json"),
		`{"sehen": ["видеть"], "kommen": ["приходить"]}`)
	writeFile(t, filepath.Join(dir, "verbs_examples.json"),
		`{"gehen": ["a", "b"], "sehen": ["a", "b"], "kommen": ["a", "b"], "tanzen": ["a", "b"]}`)
	s := NewStore(dir, "ru", nil)

	report, err := s.Verify()
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if report.OK() {
		t.Fatal("Expected problems for mismatched key sets")
	}

	joined := strings.Join(report.Problems, "\n")
	if !strings.Contains(joined, "gehen: missing from translations") {
		t.Errorf("Missing-translation problem not reported: %v", report.Problems)
	}
	if !strings.Contains(joined, "tanzen: present in examples but not in forms") {
		t.Errorf("Orphan-example problem not reported: %v", report.Problems)
	}
}

func TestVerify_ShapeProblems(t *testing.T) {
	dir := writeDataset(t)
	writeFile(t, filepath.Join(dir, "verbs_forms.json"),
		`{"gehen": {"Präsens": "geht", "Präteritum": "", "Perfekt": "ist gegangen"}}`)
	writeFile(t, filepath.Join(dir, "translations", "verbs_translation_ru.json"),
		`{"gehen": []}`)
	writeFile(t, filepath.Join(dir, "verbs_examples.json"),
		`{"gehen": ["Er geht zur Arbeit."]}`)
	s := NewStore(dir, "ru", nil)

	report, err := s.Verify()
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	joined := strings.Join(report.Problems, "\n")
	for _, want := range []string{
		"empty conjugation forms",
		"empty translation list",
		"expected 2-3 examples, got 1",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected problem %q, got: %v", want, report.Problems)
		}
	}
}
