package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	appleCtxRe   = regexp.MustCompile(`\bmacbook\b|\bapple\b`)
	appleCPURe   = regexp.MustCompile(`\bm([1-4])\b(?:\s*(pro|max))?`)
	ultraCPURe   = regexp.MustCompile(`\b(?:core\s*)?ultra\s*([579])\s*-?\s*(\d{3,4}[a-z]{0,2})?\b`)
	intelCPURe   = regexp.MustCompile(`\b(i[3579])[-\s]?(\d{4,5})([a-z]{0,2})\b`)
	ryzenCPURe   = regexp.MustCompile(`\bryzen\s*([3579])\s*-?\s*(\d{4,5})([a-z]{0,2})\b`)
	ryzenShortRe = regexp.MustCompile(`\br([3579])\s*-?\s*(\d{4,5})([a-z]{0,2})\b`)
)

// NormalizeCPU extracts a canonical CPU label from a product title.
// Apple M-series is only recognized in Apple context, because "M3"
// also appears in non-Apple model numbers. Returns nil when no CPU was
// found; an unknown CPU is not the same as a low-end one.
func NormalizeCPU(title, brand string) *string {
	s := NormalizeText(title)
	if s == "" {
		return nil
	}

	if strings.ToLower(brand) == "apple" || appleCtxRe.MatchString(s) {
		if m := appleCPURe.FindStringSubmatch(s); m != nil {
			label := "M" + m[1]
			if m[2] != "" {
				label += " " + titleCase(m[2])
			}
			return &label
		}
	}

	if m := ultraCPURe.FindStringSubmatch(s); m != nil {
		label := "Ultra " + m[1]
		if m[2] != "" {
			label += " " + strings.ToUpper(m[2])
		}
		return &label
	}

	if m := intelCPURe.FindStringSubmatch(s); m != nil {
		label := fmt.Sprintf("%s-%s%s", strings.ToUpper(m[1]), m[2], strings.ToUpper(m[3]))
		return &label
	}

	if m := ryzenCPURe.FindStringSubmatch(s); m != nil {
		label := fmt.Sprintf("Ryzen %s %s%s", m[1], m[2], strings.ToUpper(m[3]))
		return &label
	}

	// Shorthand like "R7 7735HS", unless the digits belong to a Radeon.
	if m := ryzenShortRe.FindStringSubmatch(s); m != nil && !strings.Contains(s, "radeon") {
		label := fmt.Sprintf("Ryzen %s %s%s", m[1], m[2], strings.ToUpper(m[3]))
		return &label
	}

	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var (
	rtxTitleRe    = regexp.MustCompile(`\brtx\s*([0-9]{4})\b`)
	rtxCompactRe  = regexp.MustCompile(`rtx([0-9]{4})`)
	gtxTitleRe    = regexp.MustCompile(`\bgtx\s*([0-9]{3,4})\b`)
	gtxCompactRe  = regexp.MustCompile(`gtx([0-9]{3,4})`)
	mxTitleRe     = regexp.MustCompile(`\bmx\s*([0-9]{2,3})\b`)
	mxCompactRe   = regexp.MustCompile(`mx([0-9]{2,3})`)
	rxCompactRe   = regexp.MustCompile(`rx\s*([0-9]{3,4})(m|s|xt|xtx)?\b`)
	arcTitleRe    = regexp.MustCompile(`\barc\s*([a-z]?\d{3,4}m?)\b`)
	radeonMRe     = regexp.MustCompile(`radeon\s*(\d{3})m\b`)
)

// GPUFromTitle extracts a short GPU label from a product title, like
// "RTX 4060" or "Iris Xe". Returns nil when the title names no GPU;
// the cleaner maps that to "integrated" since retailers only spell out
// discrete chips.
func GPUFromTitle(title, brand string) *string {
	s := NormalizeText(title)
	if s == "" {
		return nil
	}
	compact := strings.ReplaceAll(s, " ", "")

	if m := firstMatch(rtxTitleRe, s, rtxCompactRe, compact); m != "" {
		return ptr("RTX " + m)
	}
	if m := firstMatch(gtxTitleRe, s, gtxCompactRe, compact); m != "" {
		return ptr("GTX " + m)
	}
	if m := firstMatch(mxTitleRe, s, mxCompactRe, compact); m != "" {
		return ptr("MX " + m)
	}
	if m := rxCompactRe.FindStringSubmatch(compact); m != nil {
		return ptr(strings.TrimSpace("RX " + m[1] + strings.ToUpper(m[2])))
	}
	if m := arcTitleRe.FindStringSubmatch(s); m != nil {
		return ptr("Arc " + strings.ToUpper(m[1]))
	}

	switch {
	case strings.Contains(s, "iris xe"):
		return ptr("Iris Xe")
	case strings.Contains(s, "iris plus"):
		return ptr("Iris Plus")
	case strings.Contains(s, "uhd"):
		return ptr("Intel UHD")
	}
	if m := radeonMRe.FindStringSubmatch(s); m != nil {
		return ptr("Radeon " + m[1] + "M")
	}
	if strings.Contains(s, "radeon") && strings.Contains(s, "graphics") {
		return ptr("Radeon Graphics")
	}

	if strings.ToLower(brand) == "apple" || appleCtxRe.MatchString(s) {
		if m := appleCPURe.FindStringSubmatch(s); m != nil {
			label := "Apple M" + m[1]
			if m[2] != "" {
				label += " " + titleCase(m[2])
			}
			return ptr(label + " GPU")
		}
	}

	return nil
}

func firstMatch(spaced *regexp.Regexp, s string, compactRe *regexp.Regexp, compact string) string {
	if m := spaced.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := compactRe.FindStringSubmatch(compact); m != nil {
		return m[1]
	}
	return ""
}

func ptr(s string) *string { return &s }
