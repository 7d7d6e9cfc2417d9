package recommend

import (
	"strings"

	"github.com/kaganyildiz/laprop/internal/catalog"
	"github.com/kaganyildiz/laprop/internal/config"
	"github.com/kaganyildiz/laprop/internal/hardware"
)

// Dev-fit point allocation. The per-part points add up to devFitParts;
// the fit is the earned share scaled to 0-100.
const (
	devFitRAMPoints     = 20.0
	devFitSSDPoints     = 15.0
	devFitCPUMultiplier = 4.0
	devFitGPUBasePoints = 20.0
	devFitGPUMaxPoints  = 25.0
	devFitScreenPoints  = 10.0
	devFitScreenParts   = 20.0

	devFitSizeOK      = 1.0
	devFitSizePenalty = 0.7
	devFitAppleBonus  = 3.0

	devFitParts = devFitRAMPoints + devFitSSDPoints + devFitCPUMultiplier +
		devFitGPUMaxPoints + devFitScreenParts
)

// ML and gamedev GPU bonuses by RTX tier.
const (
	devMLBonus4060   = 5.0
	devMLBonus4050   = 3.0
	devMLBonusAnyD   = 1.0
	devGamedevBonus4070 = 6.0
	devGamedevBonus4060 = 4.0
	devGamedevBonus4050 = 2.0

	devGeneralDGPUPenalty = 1.5
	devMobileDGPUPenalty  = 2.5
)

// Web dev adjustments, applied after normalization. Web dev wants
// efficient CPUs, no discrete GPU and a small screen.
const (
	devWebCPUUBonus             = 3.0
	devWebCPUPBonus             = 2.0
	devWebCPUHXPenalty          = 2.0
	devWebDGPUPenalty           = 6.0
	devWebDGPURTXExtraPenalty   = 4.0
	devWebSmallScreenBonus      = 2.0
	devWebLargeScreenPenalty    = 3.0
	devWebDGPULargeScreenPenalty = 2.0
	devWebFreeDOSPenalty        = 6.0
)

// devFitBlend is the final total/fit mix per dev mode.
func devFitBlend(mode DevMode) (base, fit float64) {
	switch mode {
	case DevWeb:
		return 0.5, 0.5
	case DevMobile:
		return 0.55, 0.45
	case DevGeneral:
		return 0.65, 0.35
	default:
		return 0.7, 0.3
	}
}

func cpuBiasFor(bias config.CPUBias, suffix hardware.Suffix) float64 {
	switch suffix {
	case hardware.SuffixHX:
		return bias.HX
	case hardware.SuffixH:
		return bias.H
	case hardware.SuffixU:
		return bias.U
	case hardware.SuffixP:
		return bias.P
	default:
		return 0
	}
}

func portBiasFor(bias config.PortBias, screen float64) float64 {
	switch {
	case screen <= 13.6:
		return bias.LE136
	case screen <= 14.5:
		return bias.LE145
	case screen <= 15.6:
		return bias.LE156
	case screen > 16:
		return bias.GT16
	default:
		return bias.Mid
	}
}

func osPreferenceFor(pref config.OSPreference, os catalog.OSHint) float64 {
	switch os {
	case catalog.OSWindows:
		return pref.Windows
	case catalog.OSMacOS:
		return pref.MacOS
	case catalog.OSLinux:
		return pref.Linux
	default:
		return pref.Other
	}
}

// ComputeDevFit rates how well a candidate matches a development
// discipline, 0-100. Hard requirements (discrete GPU, CUDA) zero the
// fit outright.
func ComputeDevFit(c *catalog.Candidate, mode DevMode, presets config.DevPresets) float64 {
	p := mode.Preset(presets)

	score := 0.0

	ram := float64(intOr(c.RAMGB, 8))
	score += min(1.0, ram/float64(p.MinRAMGB)) * devFitRAMPoints

	storage := float64(intOr(c.StorageGB, 256))
	score += min(1.0, storage/float64(p.MinStorageGB)) * devFitSSDPoints

	suffix := hardware.CPUSuffix(strOr(c.CPU))
	score += max(0.0, cpuBiasFor(p.CPUBias, suffix)) * devFitCPUMultiplier

	webAdjust := 0.0
	if mode == DevWeb {
		switch suffix {
		case hardware.SuffixU:
			webAdjust += devWebCPUUBonus
		case hardware.SuffixP:
			webAdjust += devWebCPUPBonus
		case hardware.SuffixHX:
			webAdjust -= devWebCPUHXPenalty
		}
	}

	hasDiscrete := hardware.HasDiscreteGPU(c.GPU)
	if p.NeedDiscreteGPU && !hasDiscrete {
		return 0
	}
	if p.NeedCUDA && !hardware.IsNVIDIACUDA(c.GPU) {
		return 0
	}

	gpuPts := min(1.0, c.GPUScore/8.0) * devFitGPUBasePoints
	tier := hardware.RTXTier(c.GPU)
	switch mode {
	case DevML:
		switch {
		case tier >= 4060:
			gpuPts += devMLBonus4060
		case tier >= 4050:
			gpuPts += devMLBonus4050
		case hasDiscrete:
			gpuPts += devMLBonusAnyD
		}
	case DevGamedev:
		switch {
		case tier >= 4070:
			gpuPts += devGamedevBonus4070
		case tier >= 4060:
			gpuPts += devGamedevBonus4060
		case tier >= 4050:
			gpuPts += devGamedevBonus4050
		}
	case DevWeb, DevGeneral:
		if hasDiscrete {
			gpuPts -= devGeneralDGPUPenalty
		}
	case DevMobile:
		if hasDiscrete {
			gpuPts -= devMobileDGPUPenalty
		}
	}
	gpuPts = max(0.0, min(devFitGPUMaxPoints, gpuPts))
	if mode == DevWeb {
		// For web dev the GPU contributes nothing positive; a dGPU only
		// costs battery and money.
		gpuPts = 0
		if hasDiscrete {
			webAdjust -= devWebDGPUPenalty
			if tier >= 4050 {
				webAdjust -= devWebDGPURTXExtraPenalty
			}
		}
	}
	score += gpuPts

	screen := floatOr(c.ScreenIn, 15.6)
	sizeFactor := devFitSizeOK
	if screen > p.ScreenMax {
		sizeFactor = devFitSizePenalty
	}
	score += sizeFactor*devFitScreenPoints + portBiasFor(p.PortBias, screen)*devFitScreenPoints
	if mode == DevWeb {
		if screen <= 14.5 {
			webAdjust += devWebSmallScreenBonus
		} else if screen > 16.0 {
			webAdjust -= devWebLargeScreenPenalty
		}
		if hasDiscrete && screen >= 15.6 {
			webAdjust -= devWebDGPULargeScreenPenalty
		}
	}

	score *= osPreferenceFor(p.PreferOS, c.OS)
	if mode == DevWeb && c.OS == catalog.OSFreeDOS {
		webAdjust -= devWebFreeDOSPenalty
	}

	if isAppleGPU(c.GPU) && (mode == DevMobile || mode == DevGeneral) {
		score += devFitAppleBonus
	}

	fit := score / devFitParts * 100
	if mode == DevWeb {
		fit += webAdjust
	}
	return max(0.0, min(100.0, fit))
}

func isAppleGPU(label string) bool {
	s := strings.ToLower(label)
	for _, k := range []string{"apple m1", "apple m2", "apple m3", "apple m4"} {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func strOr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
