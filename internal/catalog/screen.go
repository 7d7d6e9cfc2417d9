package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// Screen sizes outside this range are misparses (resolution fragments,
// model numbers) rather than laptop panels.
const (
	screenMinIn = 10.0
	screenMaxIn = 20.0
)

var (
	screenUnitRe   = regexp.MustCompile(`(\d{1,2}(?:\.\d+)?)\s*(?:"|inch)`)
	screenSimpleRe = regexp.MustCompile(`^\d{1,2}(?:\.\d+)?$`)
	screenLooseRe  = regexp.MustCompile(`(?:^|[^0-9])(\d{1,2}(?:\.\d)?)\b`)
	screenResRe    = regexp.MustCompile(`^\s*[x×]\s*\d`)
	screenDotRe    = regexp.MustCompile(`^\.\s*[a-z]`)
	screenWinRe    = regexp.MustCompile(`(windows|win)\s*$`)
)

func validScreenIn(size float64) bool {
	return size >= screenMinIn && size <= screenMaxIn
}

// ParseScreenSize parses a screen size out of a column value or a
// title fragment. Unit spellings vary wildly across feeds ("15.6 inç",
// `14"`, "16 in.", bare "13.3"), so explicit unit matches are tried
// first and a guarded unitless scan last.
func (e *Extractor) ParseScreenSize(value string) *float64 {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return nil
	}
	replacer := strings.NewReplacer(
		"inç", "inch",
		"inc", "inch",
		"in ", "inch ",
		"in.", "inch ",
		",", ".",
		"”", `"`,
		"″", `"`,
	)
	s = replacer.Replace(s)

	simple := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(s, `"`, ""), "inch", ""))
	if screenSimpleRe.MatchString(simple) {
		if size, err := strconv.ParseFloat(simple, 64); err == nil && validScreenIn(size) {
			return &size
		}
		return nil
	}

	for _, m := range screenUnitRe.FindAllStringSubmatch(s, -1) {
		size, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if validScreenIn(size) {
			return &size
		}
	}

	// Unitless sizes like "15.6 fhd". Skip resolution fragments, model
	// suffixes and Windows version numbers.
	for _, idx := range screenLooseRe.FindAllStringSubmatchIndex(s, -1) {
		rest := s[idx[3]:]
		if screenResRe.MatchString(rest) || screenDotRe.MatchString(rest) {
			continue
		}
		if screenWinRe.MatchString(s[:idx[2]]) {
			continue
		}
		size, err := strconv.ParseFloat(s[idx[2]:idx[3]], 64)
		if err != nil {
			continue
		}
		if validScreenIn(size) {
			return &size
		}
	}
	return nil
}

// screenCandidatesInTitle collects every unit-tagged screen size in a
// title, valid or not, for warning checks.
func screenCandidatesInTitle(title string) []float64 {
	s := NormalizeText(title)
	if s == "" {
		return nil
	}
	var vals []float64
	for _, m := range screenUnitRe.FindAllStringSubmatch(s, -1) {
		if size, err := strconv.ParseFloat(m[1], 64); err == nil {
			vals = append(vals, size)
		}
	}
	return vals
}
