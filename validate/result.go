package validate

// Severity ranks validation findings. Only critical findings block overall
// validity; major and minor findings are recorded but never block.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// Error is a structured validation finding
type Error struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Warning is an informational finding that never affects validity
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result aggregates the findings of one or more checks. Valid is always
// recomputed from the critical-error count, never stored independently of
// the errors that justify it.
type Result struct {
	Valid    bool      `json:"valid"`
	Errors   []Error   `json:"errors"`
	Warnings []Warning `json:"warnings"`
}

func newResult() Result {
	return Result{Valid: true}
}

func (r *Result) addError(field, message string, severity Severity) {
	r.Errors = append(r.Errors, Error{Field: field, Message: message, Severity: severity})
	r.recompute()
}

func (r *Result) addWarning(field, message string) {
	r.Warnings = append(r.Warnings, Warning{Field: field, Message: message})
}

// Merge unions another result's findings into r and recomputes validity.
// Merging can only move Valid from true to false, never the reverse.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.recompute()
}

// CriticalCount returns the number of critical errors in the result.
func (r *Result) CriticalCount() int {
	count := 0
	for _, e := range r.Errors {
		if e.Severity == SeverityCritical {
			count++
		}
	}
	return count
}

func (r *Result) recompute() {
	r.Valid = r.CriticalCount() == 0
}
