package catalog

import (
	"regexp"
	"strings"
)

var (
	nonASCIIRe   = regexp.MustCompile(`[^\x00-\x7F]+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeText lowers a product title and strips everything that gets
// in the way of attribute extraction: Turkish "inç" becomes "inch",
// decimal commas become dots, remaining non-ASCII runs become single
// spaces and whitespace is collapsed.
func NormalizeText(text string) string {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, "inç", "inch")
	s = strings.ReplaceAll(s, ",", ".")
	s = nonASCIIRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
