// Package hardware normalizes GPU labels and scores CPUs and GPUs on a
// 0-10 quality scale from configured lookup tables.
package hardware

import (
	"fmt"
	"regexp"
	"strings"
)

// Generic GPU labels for hardware that could not be identified. They
// are real labels, not error values: scoring knows what to do with
// each of them.
const (
	GPUIntegratedGeneric = "Integrated (generic)"
	GPUDiscreteUnknown   = "Discrete GPU (Unknown)"
	GPUUnlabeled         = "GPU (Unlabeled)"
)

var (
	rtxModelRe    = regexp.MustCompile(`\brtx[\s\-]?(\d{3,4})(?:\s*(?:ti|super|max\-q|laptop))?\b`)
	gtxModelRe    = regexp.MustCompile(`\bgtx[\s\-]?(\d{3,4})(?:\s*(ti|super))?\b`)
	mxModelRe     = regexp.MustCompile(`\bmx[\s\-]?(\d{2,3})\b`)
	rxModelRe     = regexp.MustCompile(`\brx[\s\-]?(\d{3,4})(?:\s*([ms]|xt|xtx))?\b`)
	arcModelRe    = regexp.MustCompile(`\barc[\s\-]?([a-z]?\d{3,4}m?)\b`)
	appleGPURe    = regexp.MustCompile(`\bm([1-4])\b`)
	uhdRe         = regexp.MustCompile(`\buhd\b`)
	radeonIGPURe  = regexp.MustCompile(`radeon\s*(\d{3})m\b`)
	vegaIGPURe    = regexp.MustCompile(`\bvega\s*(8|7|6|3)\b`)
)

// NormalizeGPUModel maps raw GPU text onto a canonical label, like
// "GeForce RTX 4060", "Radeon 780M (iGPU)" or "Intel Iris Xe (iGPU)".
// Empty input means the listing said nothing about graphics, which on
// a laptop means integrated.
func NormalizeGPUModel(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return GPUIntegratedGeneric
	}

	if m := rtxModelRe.FindStringSubmatch(s); m != nil {
		return "GeForce RTX " + m[1]
	}
	if m := gtxModelRe.FindStringSubmatch(s); m != nil {
		if m[2] != "" {
			return fmt.Sprintf("GeForce GTX %s %s", m[1], strings.ToUpper(m[2]))
		}
		return "GeForce GTX " + m[1]
	}
	if m := mxModelRe.FindStringSubmatch(s); m != nil {
		return "NVIDIA MX " + m[1]
	}
	if m := rxModelRe.FindStringSubmatch(strings.ReplaceAll(s, " ", "")); m != nil {
		return "Radeon RX " + m[1] + strings.ToUpper(m[2])
	}
	if m := arcModelRe.FindStringSubmatch(s); m != nil {
		return "Intel Arc " + strings.ToUpper(m[1])
	}
	if m := appleGPURe.FindStringSubmatch(s); m != nil {
		return "Apple M" + m[1] + " GPU"
	}

	switch {
	case strings.Contains(s, "iris xe"):
		return "Intel Iris Xe (iGPU)"
	case strings.Contains(s, "iris plus"):
		return "Intel Iris Plus (iGPU)"
	case strings.Contains(s, "uhd graphics"), strings.Contains(s, "hd graphics"), uhdRe.MatchString(s):
		return "Intel UHD (iGPU)"
	case strings.Contains(s, "radeon graphics"):
		return "Radeon Graphics (iGPU)"
	}
	if m := radeonIGPURe.FindStringSubmatch(s); m != nil {
		return "Radeon " + m[1] + "M (iGPU)"
	}
	if m := vegaIGPURe.FindStringSubmatch(s); m != nil {
		return "Radeon Vega " + m[1] + " (iGPU)"
	}

	switch {
	case strings.Contains(s, "integrated"), strings.Contains(s, "igpu"), strings.Contains(s, "apu graphics"):
		return GPUIntegratedGeneric
	case strings.Contains(s, "geforce"), strings.Contains(s, "nvidia"), strings.Contains(s, "radeon"):
		return GPUDiscreteUnknown
	}
	return GPUUnlabeled
}
