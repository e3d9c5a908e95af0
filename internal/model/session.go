package model

// VerbInfo is one quiz entry handed to the client when a session starts
type VerbInfo struct {
	Infinitive   string   `json:"infinitive"`   // dictionary form, lookup key everywhere
	Index        int      `json:"index"`        // 0-based position in presentation order
	Translations []string `json:"translations"` // target-language translations
	Example      string   `json:"example"`      // one example sentence
}

// SessionStart is the response for a new quiz session
type SessionStart struct {
	SessionID  string     `json:"session_id"`
	Verbs      []VerbInfo `json:"verbs"`
	TotalVerbs int        `json:"total_verbs"`
}

// Answer is one submitted set of conjugated forms for a verb.
// Form fields are deliberately not required: a blank answer is a wrong
// answer, not a malformed request.
type Answer struct {
	Infinitive  string `json:"infinitive" binding:"required"`
	Praesens    string `json:"praesens"`
	Praeteritum string `json:"praeteritum"`
	Perfekt     string `json:"perfekt"`
}

// SubmitRequest is the payload for grading a finished session.
// The session ID is an opaque passthrough token: it is never validated or
// reconciled against server-side state, only echoed back in the result.
// Answers carries no required tag so that an empty list reaches the grader
// and produces its "no answers provided" error.
type SubmitRequest struct {
	SessionID string   `json:"session_id" binding:"required"`
	Answers   []Answer `json:"answers"`
}

// VerbResult is the graded outcome for a single verb
type VerbResult struct {
	Infinitive     string      `json:"infinitive"`
	Correct        FormCheck   `json:"correct"`
	UserAnswers    FormAnswers `json:"user_answers"`
	CorrectAnswers FormAnswers `json:"correct_answers"`
	AllCorrect     bool        `json:"all_correct"`
}

// SessionResult aggregates a graded session
type SessionResult struct {
	SessionID       string       `json:"session_id"`
	TotalVerbs      int          `json:"total_verbs"`
	TotalForms      int          `json:"total_forms"` // always TotalVerbs * 3
	CorrectCount    int          `json:"correct_count"`
	ScorePercentage float64      `json:"score_percentage"` // 0-100, one decimal place
	Results         []VerbResult `json:"results"`          // same order as submitted answers
}
