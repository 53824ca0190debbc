package vocabulary

import (
	"regexp"
	"strings"
)

// annotationPattern matches inline 【…】 annotations of archive headwords.
var annotationPattern = regexp.MustCompile(`【(.*?)】`)

// StripAnnotation removes every 【…】 segment and the surrounding blanks.
func StripAnnotation(s string) string {
	return strings.TrimSpace(annotationPattern.ReplaceAllString(s, ""))
}

// ExtractAnnotation returns the text inside the first 【…】 segment.
func ExtractAnnotation(s string) (string, bool) {
	match := annotationPattern.FindStringSubmatch(s)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

// HasAnnotation reports whether s carries an annotation opening bracket.
func HasAnnotation(s string) bool {
	return strings.Contains(s, "【")
}

// CleanForms turns raw archive forms into answerable ones.
// The phonetic form loses its annotations; the logographic form becomes the
// annotated text of the logographic form, or else of the phonetic form, when present.
func CleanForms(logographic, phonetic string) (string, string) {
	source := phonetic
	if HasAnnotation(logographic) {
		source = logographic
	}
	cleanLogographic := logographic
	if annotated, ok := ExtractAnnotation(source); ok {
		cleanLogographic = annotated
	}
	return cleanLogographic, StripAnnotation(phonetic)
}
