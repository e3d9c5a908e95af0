package model

// VerbForms holds the three conjugated slots graded for one verb.
// The JSON keys match the dataset files, which use the German grammar terms.
type VerbForms struct {
	Praesens    string `json:"Präsens"`    // 3rd person singular present
	Praeteritum string `json:"Präteritum"` // 3rd person singular simple past
	Perfekt     string `json:"Perfekt"`    // present perfect construction
}

// FormCheck records per-slot correctness for a graded verb
type FormCheck struct {
	Praesens    bool `json:"praesens"`
	Praeteritum bool `json:"praeteritum"`
	Perfekt     bool `json:"perfekt"`
}

// AllCorrect reports whether every slot was answered correctly
func (c FormCheck) AllCorrect() bool {
	return c.Praesens && c.Praeteritum && c.Perfekt
}

// CorrectCount returns the number of correctly answered slots (0-3)
func (c FormCheck) CorrectCount() int {
	n := 0
	for _, ok := range []bool{c.Praesens, c.Praeteritum, c.Perfekt} {
		if ok {
			n++
		}
	}
	return n
}

// FormAnswers holds one set of submitted or reference forms as plain strings
type FormAnswers struct {
	Praesens    string `json:"praesens"`
	Praeteritum string `json:"praeteritum"`
	Perfekt     string `json:"perfekt"`
}

// Hints carries the study aids attached to a verb when a session starts
type Hints struct {
	Translations []string `json:"translations"` // ordered target-language translations
	Example      string   `json:"example"`      // one example sentence, chosen at random
}
