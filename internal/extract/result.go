package extract

import "sort"

// Result holds the four extraction collections for one source unit.
// Each collection is unique under full-string equality; Patterns,
// Comments and Literals preserve first-insertion order.
type Result struct {
	File string `json:"file"`

	// Patterns are finalized anonymous chain patterns.
	Patterns []string `json:"patterns"`

	// Accumulators maps accumulator variable names to their final
	// accumulated strings.
	Accumulators map[string]string `json:"accumulators"`

	// Comments are free-standing comments above the word threshold.
	Comments []string `json:"comments"`

	// Literals are free-standing string literals not consumed by a chain.
	Literals []string `json:"literals"`

	// Errors are the failures recorded during extraction. When non-empty
	// the other collections are incomplete and must not be trusted.
	Errors []*ExtractError `json:"errors,omitempty"`

	patternSeen map[string]bool
	commentSeen map[string]bool
	literalSeen map[string]bool
}

func newResult(file string) *Result {
	return &Result{
		File:         file,
		Patterns:     []string{},
		Accumulators: map[string]string{},
		Comments:     []string{},
		Literals:     []string{},
		patternSeen:  map[string]bool{},
		commentSeen:  map[string]bool{},
		literalSeen:  map[string]bool{},
	}
}

func (r *Result) addPattern(s string) {
	if r.patternSeen[s] {
		return
	}
	r.patternSeen[s] = true
	r.Patterns = append(r.Patterns, s)
}

func (r *Result) addComment(s string) {
	if r.commentSeen[s] {
		return
	}
	r.commentSeen[s] = true
	r.Comments = append(r.Comments, s)
}

func (r *Result) addLiteral(s string) {
	if r.literalSeen[s] {
		return
	}
	r.literalSeen[s] = true
	r.Literals = append(r.Literals, s)
}

// Combined flattens all four collections into a single string slice:
// patterns, accumulator values (by sorted variable name), comments,
// literals. This is the shape the baseline output is built from.
func (r *Result) Combined() []string {
	combined := make([]string, 0, len(r.Patterns)+len(r.Accumulators)+len(r.Comments)+len(r.Literals))
	combined = append(combined, r.Patterns...)

	names := make([]string, 0, len(r.Accumulators))
	for name := range r.Accumulators {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		combined = append(combined, r.Accumulators[name])
	}

	combined = append(combined, r.Comments...)
	combined = append(combined, r.Literals...)
	return combined
}
