package hardware

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kaganyildiz/laprop/internal/config"
)

// Scorer scores CPU and GPU labels against configured tables. The
// tables are copied at construction, so a Scorer never changes
// behavior after creation.
type Scorer struct {
	cpu config.CPUTables
	gpu config.GPUTables
}

// NewScorer builds a Scorer from validated tables.
func NewScorer(tables *config.Tables) *Scorer {
	return &Scorer{cpu: tables.CPU, gpu: tables.GPU}
}

// CPUScore rates a normalized CPU label. A nil label scores the
// table's default: unknown hardware is assumed mid-range, not absent.
// The family table is ordered most specific first, so "m1 pro" is
// checked before "m1".
func (sc *Scorer) CPUScore(label *string) float64 {
	if label == nil || *label == "" {
		return sc.cpu.Default
	}
	s := strings.ToLower(*label)

	for _, family := range sc.cpu.Families {
		if !strings.Contains(s, family.Pattern) {
			continue
		}
		switch {
		case strings.Contains(s, "hx"):
			return min(10, family.Score+sc.cpu.HXBonus)
		case strings.Contains(s, " u") || strings.Contains(s, "-u"):
			return max(1, family.Score-sc.cpu.UPenalty)
		case strings.Contains(s, " p") || strings.Contains(s, "-p"):
			return family.Score - sc.cpu.PPenalty
		}
		return family.Score
	}

	switch {
	case strings.Contains(s, "i9"), strings.Contains(s, "ryzen 9"):
		return sc.cpu.FallbackI9
	case strings.Contains(s, "i7"), strings.Contains(s, "ryzen 7"):
		return sc.cpu.FallbackI7
	case strings.Contains(s, "i5"), strings.Contains(s, "ryzen 5"):
		return sc.cpu.FallbackI5
	case strings.Contains(s, "i3"), strings.Contains(s, "ryzen 3"):
		return sc.cpu.FallbackI3
	}
	return sc.cpu.Default
}

var (
	rtxScoreRe     = regexp.MustCompile(`rtx\s*([345]\d{3})`)
	rtxScoreAnyRe  = regexp.MustCompile(`rtx(\d{4})`)
	gtxScoreRe     = regexp.MustCompile(`gtx\s*(\d{3,4})`)
	mxScoreRe      = regexp.MustCompile(`\bmx\s*(\d{2,3})\b`)
	mxScoreTightRe = regexp.MustCompile(`mx(\d{2,3})`)
	rxScoreRe      = regexp.MustCompile(`\brx[\s-]?(\d{3,4}m?)\b`)
	appleScoreRe   = regexp.MustCompile(`\bm([1-4])\b`)
)

var igpuKeywords = []string{
	"iris xe", "iris plus", "uhd graphics", "hd graphics",
	"radeon graphics", "radeon 780m", "radeon 760m", "radeon 680m",
	"vega 8", "vega 7", "vega 6", "vega 3", "integrated", "igpu", "apu graphics",
}

// GPUScore rates a normalized GPU label. Unknown GPUs score the
// table's default rather than zero; a listing without graphics info is
// still a working laptop.
func (sc *Scorer) GPUScore(label string) float64 {
	s := strings.ToLower(label)
	if strings.TrimSpace(s) == "" {
		return sc.gpu.Default
	}

	for _, kw := range igpuKeywords {
		if strings.Contains(s, kw) {
			switch {
			case strings.Contains(s, "780m"), strings.Contains(s, "680m"):
				return sc.gpu.IGPUHigh
			case strings.Contains(s, "760m"), strings.Contains(s, "660m"):
				return sc.gpu.IGPUMid
			}
			return sc.gpu.IGPULow
		}
	}

	if m := arcModelRe.FindStringSubmatch(s); m != nil {
		code := strings.ToUpper(m[1])
		switch {
		case strings.Contains(code, "A770"), strings.Contains(code, "A750"):
			return sc.gpu.ArcHigh
		case strings.Contains(code, "A570"), strings.Contains(code, "A550"):
			return sc.gpu.ArcMid
		case strings.Contains(code, "A370"), strings.Contains(code, "A350"):
			return sc.gpu.ArcLow
		}
		return sc.gpu.ArcDefault
	}

	if m := firstSubmatch(rtxScoreRe, rtxScoreAnyRe, s); m != "" {
		if score, ok := sc.gpu.RTXModels[m]; ok {
			return score
		}
		switch {
		case strings.HasPrefix(m, "50"):
			return sc.gpu.RTX50Fallback
		case strings.HasPrefix(m, "40"):
			return sc.gpu.RTX40Fallback
		case strings.HasPrefix(m, "30"):
			return sc.gpu.RTX30Fallback
		}
		return sc.gpu.RTXDefault
	}

	if m := gtxScoreRe.FindStringSubmatch(s); m != nil {
		if score, ok := sc.gpu.GTXModels[m[1]]; ok {
			return score
		}
		return sc.gpu.GTXDefault
	}

	if m := firstSubmatch(mxScoreRe, mxScoreTightRe, s); m != "" {
		if score, ok := sc.gpu.MXModels[m]; ok {
			return score
		}
		return sc.gpu.MXDefault
	}

	if m := rxScoreRe.FindStringSubmatch(s); m != nil {
		code := strings.ToUpper(m[1])
		base := strings.TrimSuffix(code, "M")
		if score, ok := sc.gpu.RXModels[code]; ok {
			return score
		}
		if score, ok := sc.gpu.RXModels[base]; ok {
			return score
		}
		for prefix, score := range sc.gpu.RXPrefixFallback {
			if strings.HasPrefix(base, prefix) {
				return score
			}
		}
		return sc.gpu.RXDefault
	}

	if m := appleScoreRe.FindStringSubmatch(s); m != nil {
		switch m[1] {
		case "4":
			return sc.gpu.AppleM4
		case "3":
			return sc.gpu.AppleM3
		case "2":
			return sc.gpu.AppleM2
		}
		return sc.gpu.AppleM1
	}

	for _, kw := range []string{"geforce", "nvidia", "radeon", "discrete"} {
		if strings.Contains(s, kw) {
			return sc.gpu.DiscreteUnknown
		}
	}
	return sc.gpu.Default
}

// NormalizeAndScoreGPU normalizes raw GPU text and scores the result
// in one pass.
func (sc *Scorer) NormalizeAndScoreGPU(raw string) (string, float64) {
	norm := NormalizeGPUModel(raw)
	return norm, sc.GPUScore(norm)
}

func firstSubmatch(primary, fallback *regexp.Regexp, s string) string {
	if m := primary.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := fallback.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

var rtxTierRe = regexp.MustCompile(`rtx\s*(\d{4})`)

// RTXTier extracts the 4-digit RTX model number, 0 when absent.
func RTXTier(label string) int {
	m := rtxTierRe.FindStringSubmatch(strings.ToLower(label))
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
