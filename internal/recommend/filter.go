package recommend

import (
	"regexp"
	"strings"

	"github.com/kaganyildiz/laprop/internal/catalog"
	"github.com/kaganyildiz/laprop/internal/config"
	"github.com/kaganyildiz/laprop/internal/hardware"
	"github.com/kaganyildiz/laprop/internal/logging"
)

// webHeavyRTXRe matches GPU labels too power hungry for a web dev
// machine: any RTX 4050 and up, and the whole 50 series.
var webHeavyRTXRe = regexp.MustCompile(`(?i)rtx\s*(4050|4060|4070|4080|4090|50)`)

// Filter narrows a candidate set to the ones plausible for a usage
// profile, with one level of relaxation when the strict pass leaves
// too few results.
type Filter struct {
	tables *config.Tables
	log    *logging.Logger
}

// NewFilter builds a usage filter over validated tables.
func NewFilter(tables *config.Tables, log *logging.Logger) *Filter {
	return &Filter{tables: tables, log: log}
}

// Apply runs the strict filter for the preferences' usage profile,
// then the profile's relaxation policy if fewer than MinResults
// survive while the input had more. gamingThreshold is the resolved
// minimum GPU score and is only consulted for the gaming profile.
// The returned flag reports whether relaxation kicked in.
func (f *Filter) Apply(cands []*catalog.Candidate, prefs *Preferences, gamingThreshold float64) ([]*catalog.Candidate, bool) {
	var filtered []*catalog.Candidate
	switch prefs.Usage {
	case UsageGaming:
		filtered = f.filterGaming(cands, gamingThreshold)
	case UsagePortability:
		filtered = f.filterPortability(cands)
	case UsageDesign:
		filtered = f.filterDesign(cands, prefs)
	case UsageDev:
		filtered = f.filterDev(cands, prefs.DevMode)
	default:
		filtered = f.filterProductivity(cands)
	}

	ft := f.tables.Filter
	if len(filtered) >= ft.MinResults || len(cands) <= ft.MinResults {
		return filtered, false
	}

	f.log.Warn("strict %s filter left %d candidates, relaxing", prefs.Usage, len(filtered))
	return f.relax(cands, prefs.Usage), true
}

// relax applies the one-level fallback policy: a single loosened
// criterion over the unfiltered input.
func (f *Filter) relax(cands []*catalog.Candidate, usage UsageKey) []*catalog.Candidate {
	ft := f.tables.Filter
	switch usage {
	case UsageGaming:
		return keep(cands, func(c *catalog.Candidate) bool {
			return c.GPUScore >= ft.GamingRelaxedGPUScore
		})
	case UsagePortability:
		return keep(cands, func(c *catalog.Candidate) bool {
			return floatOr(c.ScreenIn, assumedScreenIn) <= ft.PortabilityRelaxedScreen
		})
	case UsageDesign, UsageDev:
		return keep(cands, func(c *catalog.Candidate) bool {
			return intOr(c.RAMGB, assumedRAMGB) >= ft.RelaxedMinRAMGB
		})
	default:
		return cands
	}
}

func (f *Filter) filterGaming(cands []*catalog.Candidate, threshold float64) []*catalog.Candidate {
	ft := f.tables.Filter
	return keep(cands, func(c *catalog.Candidate) bool {
		if c.GPUScore < threshold {
			return false
		}
		if intOr(c.RAMGB, assumedRAMGB) < ft.GamingMinRAMGB {
			return false
		}
		// Apple silicon is scored well but its game libraries are not.
		name := strings.ToLower(c.Name)
		return !strings.Contains(name, "apple") && !strings.Contains(name, "macbook")
	})
}

func (f *Filter) filterPortability(cands []*catalog.Candidate) []*catalog.Candidate {
	ft := f.tables.Filter
	filtered := keep(cands, func(c *catalog.Candidate) bool {
		return floatOr(c.ScreenIn, assumedScreenIn) <= ft.PortabilityMaxScreen
	})

	// With a big enough pool, also shed heavy GPUs.
	var ceil float64
	switch {
	case len(filtered) > ft.PortabilityLargeSetSize:
		ceil = ft.PortabilityLargeGPUCeil
	case len(filtered) > ft.PortabilityMidSetSize:
		ceil = ft.PortabilityMidGPUCeil
	default:
		return filtered
	}
	return keep(filtered, func(c *catalog.Candidate) bool {
		return gpuOr(c) <= ceil
	})
}

func (f *Filter) filterProductivity(cands []*catalog.Candidate) []*catalog.Candidate {
	ft := f.tables.Filter
	return keep(cands, func(c *catalog.Candidate) bool {
		return intOr(c.RAMGB, assumedRAMGB) >= ft.ProductivityMinRAMGB &&
			cpuOr(c) >= ft.ProductivityMinCPUScore
	})
}

func (f *Filter) filterDesign(cands []*catalog.Candidate, prefs *Preferences) []*catalog.Candidate {
	ft := f.tables.Filter

	minGPU := ft.DesignMinGPUScore
	if prefs.DesignGPUHint != "" {
		if hinted, ok := ft.DesignGPUHints[prefs.DesignGPUHint]; ok {
			minGPU = hinted
		}
	}
	minRAM := ft.DesignMinRAMGB
	if prefs.DesignMinRAMGB > 0 {
		minRAM = prefs.DesignMinRAMGB
	}

	return keep(cands, func(c *catalog.Candidate) bool {
		return intOr(c.RAMGB, assumedRAMGB) >= minRAM &&
			gpuOr(c) >= minGPU &&
			floatOr(c.ScreenIn, assumedScreenIn) >= ft.DesignMinScreen
	})
}

func (f *Filter) filterDev(cands []*catalog.Candidate, mode DevMode) []*catalog.Candidate {
	ft := f.tables.Filter
	preset := mode.Preset(f.tables.Dev)

	filtered := cands
	if mode == DevWeb {
		filtered = keep(filtered, func(c *catalog.Candidate) bool {
			if webHeavyRTXRe.MatchString(c.GPU) {
				return false
			}
			if hardware.CPUSuffix(strOr(c.CPU)) == hardware.SuffixHX {
				return false
			}
			dgpu := hardware.HasDiscreteGPU(c.GPU)
			if dgpu && floatOr(c.ScreenIn, assumedScreenIn) >= 16.0 {
				return false
			}
			if dgpu && c.OS == catalog.OSFreeDOS {
				return false
			}
			return true
		})
		if len(filtered) == 0 {
			return filtered
		}
	}

	minRAM := max(ft.DevMinRAMGB, preset.MinRAMGB)
	minSSD := max(ft.DevMinStorageGB, preset.MinStorageGB)

	return keep(filtered, func(c *catalog.Candidate) bool {
		if intOr(c.RAMGB, assumedRAMGB) < minRAM {
			return false
		}
		if cpuOr(c) < ft.DevMinCPUScore {
			return false
		}
		if intOr(c.StorageGB, assumedStorageGB) < minSSD {
			return false
		}
		if floatOr(c.ScreenIn, assumedScreenIn) > preset.ScreenMax {
			return false
		}
		if preset.NeedDiscreteGPU || preset.NeedCUDA {
			if !hardware.HasDiscreteGPU(c.GPU) {
				return false
			}
			if preset.NeedCUDA && !hardware.IsNVIDIACUDA(c.GPU) {
				return false
			}
		}
		return true
	})
}

func cpuOr(c *catalog.Candidate) float64 {
	if c.CPUScore == 0 {
		return assumedCPUScore
	}
	return c.CPUScore
}

func gpuOr(c *catalog.Candidate) float64 {
	if c.GPUScore == 0 {
		return assumedGPUScore
	}
	return c.GPUScore
}

func keep(cands []*catalog.Candidate, pred func(*catalog.Candidate) bool) []*catalog.Candidate {
	out := make([]*catalog.Candidate, 0, len(cands))
	for _, c := range cands {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}
