package extract

import "strings"

// Options controls extraction behavior. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// MinWords is the acceptance threshold for comments and free-standing
	// string literals.
	MinWords int

	// MinPatternWords is the acceptance threshold for finalized anonymous
	// chain patterns. Shorter fragments (log-level tags and such) are
	// expected noise and dropped silently.
	MinPatternWords int

	// BuilderCalls are call-expression texts that start an anonymous
	// builder chain, e.g. str::stream().
	BuilderCalls []string

	// SinkStreams are qualified identifiers recognized as output streams.
	SinkStreams []string

	// Sentinels are identifiers and qualified identifiers that terminate a
	// line and contribute an empty string instead of a placeholder.
	Sentinels []string

	// BuilderTypes are type names whose declarations register a variable
	// as a named accumulator.
	BuilderTypes []string

	// StrictAccumulators controls the policy for a chain that targets a
	// variable never declared as an accumulator: true fails the run,
	// false registers an implicit binding.
	StrictAccumulators bool
}

// DefaultOptions returns the extraction defaults.
func DefaultOptions() Options {
	return Options{
		MinWords:           3,
		MinPatternWords:    3,
		BuilderCalls:       []string{"str::stream()", "std::stream()"},
		SinkStreams:        []string{"std::cout", "std::cerr", "std::clog"},
		Sentinels:          []string{"endl", "std::endl"},
		BuilderTypes:       []string{"StringBuilder"},
		StrictAccumulators: true,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// containsAnySubstring reports whether any entry of list occurs in s.
func containsAnySubstring(s string, list []string) bool {
	for _, v := range list {
		if v != "" && strings.Contains(s, v) {
			return true
		}
	}
	return false
}
