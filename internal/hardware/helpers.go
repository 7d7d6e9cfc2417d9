package hardware

import (
	"regexp"
	"strings"
)

// Suffix is the mobile CPU power class parsed from a label.
type Suffix string

const (
	SuffixNone Suffix = ""
	SuffixHX   Suffix = "hx"
	SuffixH    Suffix = "h"
	SuffixP    Suffix = "p"
	SuffixU    Suffix = "u"
)

var lunarLakeRe = regexp.MustCompile(`\b2\d{2}v\b`)

// CPUSuffix classifies a CPU label by its power-class suffix. Core
// Ultra 2xxV parts behave like P-class despite the V marketing name.
func CPUSuffix(label string) Suffix {
	s := strings.ToLower(label)
	if s == "" {
		return SuffixNone
	}
	if strings.Contains(s, "hx") {
		return SuffixHX
	}
	if hasLoneH(s) {
		return SuffixH
	}
	if strings.Contains(s, "-p") || strings.Contains(s, " p") {
		return SuffixP
	}
	if strings.Contains(s, "-u") || strings.Contains(s, " u") {
		return SuffixU
	}
	if strings.Contains(s, "ultra") && lunarLakeRe.MatchString(s) {
		return SuffixP
	}
	return SuffixNone
}

// hasLoneH reports an 'h' that is neither part of "hx" nor doubled.
func hasLoneH(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != 'h' {
			continue
		}
		if i > 0 && s[i-1] == 'h' {
			continue
		}
		if i+1 < len(s) && s[i+1] == 'x' {
			continue
		}
		return true
	}
	return false
}

var igpuLabelHints = []string{"(igpu)", "integrated", "intel uhd", "iris"}

// HasDiscreteGPU reports whether a normalized GPU label names discrete
// graphics. Unlabeled GPUs count as discrete; filters that require a
// dGPU should combine this with a model check.
func HasDiscreteGPU(label string) bool {
	s := strings.ToLower(label)
	for _, hint := range igpuLabelHints {
		if strings.Contains(s, hint) {
			return false
		}
	}
	return true
}

// IsNVIDIACUDA reports whether the GPU label implies a CUDA-capable
// NVIDIA chip.
func IsNVIDIACUDA(label string) bool {
	s := strings.ToLower(label)
	return strings.Contains(s, "rtx") || strings.Contains(s, "geforce")
}

// heavyDGPUMinRTXTier is the lowest RTX model treated as a heavy
// gaming-class dGPU by the dev heuristics.
const heavyDGPUMinRTXTier = 4060

// IsHeavyDiscrete reports a gaming-class dGPU: RTX at or above the
// heavy tier, or any RTX 50 part.
func IsHeavyDiscrete(label string) bool {
	s := strings.ToLower(label)
	if s == "" {
		return false
	}
	if RTXTier(s) >= heavyDGPUMinRTXTier {
		return true
	}
	return strings.Contains(s, "rtx 50") || strings.Contains(s, "rtx50")
}
