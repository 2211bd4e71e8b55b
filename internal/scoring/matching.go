package scoring

import "strings"

// PreferredStack is the reference vocabulary for stack alignment.
var PreferredStack = []string{
	"react",
	"next.js",
	"nextjs",
	"typescript",
	"javascript",
	"node.js",
	"nodejs",
	"three.js",
	"webgl",
	"tailwind",
	"framer motion",
	"python",
	"postgresql",
	"graphql",
	"rust",
	"golang",
}

// KnownComplianceStandards is the reference vocabulary for the compliance category.
var KnownComplianceStandards = []string{
	"gdpr",
	"hipaa",
	"soc 2",
	"soc2",
	"iso 27001",
	"iso 13485",
	"fda",
	"iec 62304",
	"ce marking",
	"mdr",
}

func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Matches reports whether term and reference contain one another,
// ignoring case. Blank terms never match.
func Matches(term, reference string) bool {
	a, b := normalizeTerm(term), normalizeTerm(reference)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// MatchesAny reports whether term matches at least one reference term.
func MatchesAny(term string, references []string) bool {
	for _, ref := range references {
		if Matches(term, ref) {
			return true
		}
	}
	return false
}

// CountMatches returns how many terms match the reference vocabulary.
func CountMatches(terms, references []string) int {
	n := 0
	for _, t := range terms {
		if MatchesAny(t, references) {
			n++
		}
	}
	return n
}
