package recommend

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kaganyildiz/laprop/internal/catalog"
	"github.com/kaganyildiz/laprop/internal/config"
	"github.com/kaganyildiz/laprop/internal/hardware"
)

// Criterion names one weighted component of the composite score.
type Criterion string

const (
	CriterionPrice        Criterion = "price"
	CriterionPerformance  Criterion = "performance"
	CriterionRAM          Criterion = "ram"
	CriterionStorage      Criterion = "storage"
	CriterionBrand        Criterion = "brand"
	CriterionBrandPurpose Criterion = "brand_purpose"
	CriterionBattery      Criterion = "battery"
	CriterionPortability  Criterion = "portability"
)

// criterionOrder fixes the rendering order of breakdowns.
var criterionOrder = []Criterion{
	CriterionPrice, CriterionPerformance, CriterionRAM, CriterionStorage,
	CriterionBrand, CriterionBrandPurpose, CriterionBattery, CriterionPortability,
}

// Breakdown holds each criterion's weighted contribution to the
// composite score.
type Breakdown map[Criterion]float64

// String renders the breakdown in fixed criterion order.
func (b Breakdown) String() string {
	parts := make([]string, 0, len(criterionOrder))
	for _, c := range criterionOrder {
		if v, ok := b[c]; ok {
			parts = append(parts, fmt.Sprintf("%s:%.1f", c, v))
		}
	}
	return strings.Join(parts, " | ")
}

// Price scoring shape: a downward ramp across the budget with a small
// bonus near the midpoint, and a decaying consolation score outside.
// The factors are tuned; changing them reshuffles rankings.
const (
	priceBaseFactor     = 0.95
	priceMidBonusMax    = 4.0
	priceOutOfRangeBase = 50.0
)

// Battery heuristic adjustments by CPU class.
const (
	batteryBase           = 50.0
	batteryAppleM         = 30.0
	batteryIntelU         = 20.0
	batteryIntelP         = 10.0
	batteryIntelHX        = -20.0
	batteryIntelH         = -10.0
	batteryRyzenU         = 20.0
	batteryRyzenHS        = 5.0
	batteryRyzenH         = -15.0
	batteryUltra          = 15.0
	batteryGPULowBonus    = 15.0
	batteryGPUHighPenalty = 20.0
	batteryGPUMidPenalty  = 10.0
)

// Portability heuristic adjustments by screen size and GPU class.
const (
	portabilityBase           = 50.0
	portabilityScreen13       = 40.0
	portabilityScreen14       = 30.0
	portabilityScreen15       = 10.0
	portabilityLargePenalty   = 30.0
	portabilityDefaultPenalty = 10.0
	portabilityGPULowBonus    = 10.0
	portabilityGPUHighPenalty = 15.0
)

// Dev composite GPU adjustment for mobile/general modes.
const (
	devGPUNoDGPUBonus   = 1.0
	devGPUHeavyPenalty  = 4.0
	devGPULightPenalty  = 1.5
)

// Fallbacks for attributes the cleaner could not parse. Both the
// filter and the scorer substitute these neutral mid-catalog
// assumptions, so an unparsed listing is treated as ordinary rather
// than dropped.
const (
	assumedRAMGB     = 8
	assumedStorageGB = 256
	assumedScreenIn  = 15.6
	assumedCPUScore  = 5.0
	assumedGPUScore  = 3.0
)

// Scorer computes composite scores against one set of tables.
type Scorer struct {
	tables *config.Tables
}

// NewScorer builds a composite scorer over validated tables.
func NewScorer(tables *config.Tables) *Scorer {
	return &Scorer{tables: tables}
}

// Score rates a candidate 0-100 for the given preferences and returns
// the weighted per-criterion breakdown alongside.
func (s *Scorer) Score(c *catalog.Candidate, prefs *Preferences) (float64, Breakdown) {
	weights := weightsFor(s.tables.Weights, prefs.Usage)
	parts := Breakdown{}
	isDevWeb := prefs.Usage == UsageDev && prefs.DevMode == DevWeb

	parts[CriterionPrice] = s.priceScore(c.PriceValue(), prefs) * weights.Price / 100

	mix := perfMixFor(prefs)
	cpuScore := cpuOr(c)
	gpuScore := gpuOr(c)
	perf := (cpuScore*mix.cpu + gpuScore*mix.gpu) * 10
	parts[CriterionPerformance] = perf * weights.Performance / 100

	ram := float64(intOr(c.RAMGB, assumedRAMGB))
	parts[CriterionRAM] = tierScore(s.tables.Tiers.RAM, ram) * weights.RAM / 100

	storage := float64(intOr(c.StorageGB, assumedStorageGB))
	parts[CriterionStorage] = tierScore(s.tables.Tiers.Storage, storage) * weights.Storage / 100

	trust, ok := s.tables.Brand.Trust[c.Brand]
	if !ok {
		trust = s.tables.Brand.OtherTrust
	}
	parts[CriterionBrand] = trust * 10 * weights.Brand / 100

	parts[CriterionBrandPurpose] = s.brandPurpose(c.Brand, prefs.Usage) * weights.BrandPurpose / 100

	screen := floatOr(c.ScreenIn, assumedScreenIn)
	parts[CriterionBattery] = batteryScore(strOr(c.CPU), gpuScore, isDevWeb) * weights.Battery / 100
	parts[CriterionPortability] = portabilityScore(screen, gpuScore, isDevWeb) * weights.Portability / 100

	base := 0.0
	for _, v := range parts {
		base += v
	}

	devGPUBonus := 0.0
	if prefs.Usage == UsageDev && !isDevWeb &&
		(prefs.DevMode == DevMobile || prefs.DevMode == DevGeneral) {
		switch {
		case !hardware.HasDiscreteGPU(c.GPU):
			devGPUBonus += devGPUNoDGPUBonus
		case hardware.IsHeavyDiscrete(c.GPU):
			devGPUBonus -= devGPUHeavyPenalty
		default:
			devGPUBonus -= devGPULightPenalty
		}
	}

	total := (base + devGPUBonus) * s.osMultiplier(prefs.Usage, c.OS)
	total = clamp(total, 0, 100)

	if prefs.Usage == UsageDev {
		fit := ComputeDevFit(c, prefs.DevMode, s.tables.Dev)
		baseW, fitW := devFitBlend(prefs.DevMode)
		total = clamp(baseW*total+fitW*fit, 0, 100)
	}

	return total, parts
}

// priceScore ramps from 100 at the budget floor down across the range,
// with a bonus peaking at the midpoint. Out-of-budget prices keep a
// consolation score that decays with relative distance.
func (s *Scorer) priceScore(price int, prefs *Preferences) float64 {
	minB, maxB := float64(prefs.MinBudget), float64(prefs.MaxBudget)
	p := float64(price)

	if p >= minB && p <= maxB {
		priceRange := maxB - minB
		score := 100.0
		// A zero-width budget puts the price exactly at the midpoint.
		midBonus := priceMidBonusMax
		if priceRange > 0 {
			score = 100 * (1 - (p-minB)/priceRange)
			mid := (minB + maxB) / 2
			distance := (p - mid) / (priceRange / 2)
			if distance < 0 {
				distance = -distance
			}
			midBonus = max(0, (1-distance)*priceMidBonusMax)
		}
		return min(100, score*priceBaseFactor+midBonus)
	}

	var penalty float64
	if p < minB {
		penalty = (minB - p) / minB
	} else {
		penalty = (p - maxB) / maxB
	}
	return max(0, priceOutOfRangeBase*(1-penalty))
}

func (s *Scorer) brandPurpose(brand string, usage UsageKey) float64 {
	row, ok := s.tables.Brand.Purpose[brand]
	if !ok {
		return s.tables.Brand.PurposeDefault
	}
	switch usage {
	case UsageGaming:
		return row.Gaming
	case UsagePortability:
		return row.Portability
	case UsageDesign:
		return row.Design
	case UsageDev:
		return row.Dev
	default:
		return row.Productivity
	}
}

func (s *Scorer) osMultiplier(usage UsageKey, os catalog.OSHint) float64 {
	switch usage {
	case UsageDesign, UsageDev:
		switch os {
		case catalog.OSMacOS:
			return 1.05
		case catalog.OSWindows:
			return 1.03
		case catalog.OSLinux:
			return 1.02
		default:
			return 0.95
		}
	case UsageProductivity:
		switch os {
		case catalog.OSWindows, catalog.OSMacOS:
			return 1.02
		case catalog.OSFreeDOS:
			return 0.97
		}
	}
	return 1.0
}

// tierScore returns the score of the first tier at or below the value.
// Tiers are validated to be descending with a zero floor.
func tierScore(tiers []config.CapacityTier, value float64) float64 {
	for _, tier := range tiers {
		if value >= float64(tier.MinGB) {
			return tier.Score
		}
	}
	return tiers[len(tiers)-1].Score
}

var (
	intelURe = regexp.MustCompile(`i[3579]-\d+u`)
	intelPRe = regexp.MustCompile(`i[3579]-\d+p`)
	intelHRe = regexp.MustCompile(`i[3579]-\d+h(?:$|[^x])`)
)

// batteryScore estimates battery life 0-100 from the CPU power class
// and GPU weight. Apple silicon and U-class chips sip power; HX parts
// and big GPUs drain it.
func batteryScore(cpuLabel string, gpuScore float64, isDevWeb bool) float64 {
	cpu := strings.ToLower(cpuLabel)
	score := batteryBase

	switch {
	case containsAny(cpu, "m1", "m2", "m3", "m4"):
		score += batteryAppleM
	case intelURe.MatchString(cpu) || strings.HasSuffix(cpu, "-u"):
		score += batteryIntelU
	case intelPRe.MatchString(cpu) || strings.Contains(cpu, "-p"):
		score += batteryIntelP
	case strings.Contains(cpu, "hx"):
		score += batteryIntelHX
	case intelHRe.MatchString(cpu) || strings.HasSuffix(cpu, "-h") || strings.Contains(cpu, " h "):
		score += batteryIntelH
	case strings.Contains(cpu, "ryzen") && (strings.Contains(cpu, " u") || strings.HasSuffix(cpu, "u")):
		score += batteryRyzenU
	case strings.Contains(cpu, "ryzen") && strings.Contains(cpu, "hs"):
		score += batteryRyzenHS
	case strings.Contains(cpu, "ryzen") && (strings.Contains(cpu, " h") || strings.HasSuffix(cpu, "h")):
		score += batteryRyzenH
	case strings.Contains(cpu, "ultra"):
		score += batteryUltra
	}

	if !isDevWeb {
		switch {
		case gpuScore < 3:
			score += batteryGPULowBonus
		case gpuScore > 7:
			score -= batteryGPUHighPenalty
		case gpuScore > 5:
			score -= batteryGPUMidPenalty
		}
	}
	return clamp(score, 0, 100)
}

// portabilityScore estimates carry comfort 0-100 from screen size and
// GPU weight.
func portabilityScore(screen, gpuScore float64, isDevWeb bool) float64 {
	score := portabilityBase
	switch {
	case screen <= 13:
		score += portabilityScreen13
	case screen <= 14:
		score += portabilityScreen14
	case screen <= 15:
		score += portabilityScreen15
	case screen >= 17:
		score -= portabilityLargePenalty
	default:
		score -= portabilityDefaultPenalty
	}
	if !isDevWeb {
		switch {
		case gpuScore < 3:
			score += portabilityGPULowBonus
		case gpuScore > 7:
			score -= portabilityGPUHighPenalty
		}
	}
	return clamp(score, 0, 100)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
