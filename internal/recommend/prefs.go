// Package recommend filters, scores and ranks laptop candidates
// against user preferences.
package recommend

import (
	"errors"
	"fmt"

	"github.com/kaganyildiz/laprop/internal/config"
)

// UsageKey identifies the usage profile driving weights, filters and
// heuristics. The set is closed: adding a profile means touching the
// weight tables too.
type UsageKey int

const (
	UsageProductivity UsageKey = iota
	UsageGaming
	UsagePortability
	UsageDesign
	UsageDev
)

var usageNames = map[UsageKey]string{
	UsageProductivity: "productivity",
	UsageGaming:       "gaming",
	UsagePortability:  "portability",
	UsageDesign:       "design",
	UsageDev:          "dev",
}

var usageLabels = map[UsageKey]string{
	UsageProductivity: "Productivity / Office",
	UsageGaming:       "Gaming",
	UsagePortability:  "Portability / Travel",
	UsageDesign:       "Design / Content Creation",
	UsageDev:          "Software Development",
}

func (u UsageKey) String() string { return usageNames[u] }

// Label returns the human readable profile name.
func (u UsageKey) Label() string { return usageLabels[u] }

// ParseUsageKey converts a profile name into a UsageKey.
func ParseUsageKey(s string) (UsageKey, error) {
	for key, name := range usageNames {
		if name == s {
			return key, nil
		}
	}
	return UsageProductivity, fmt.Errorf("unknown usage %q (valid: gaming, portability, productivity, design, dev)", s)
}

// DevMode narrows the dev profile to a development discipline.
type DevMode int

const (
	DevGeneral DevMode = iota
	DevWeb
	DevML
	DevMobile
	DevGamedev
)

var devModeNames = map[DevMode]string{
	DevGeneral: "general",
	DevWeb:     "web",
	DevML:      "ml",
	DevMobile:  "mobile",
	DevGamedev: "gamedev",
}

func (m DevMode) String() string { return devModeNames[m] }

// ParseDevMode converts a mode name into a DevMode.
func ParseDevMode(s string) (DevMode, error) {
	for mode, name := range devModeNames {
		if name == s {
			return mode, nil
		}
	}
	return DevGeneral, fmt.Errorf("unknown dev mode %q (valid: general, web, ml, mobile, gamedev)", s)
}

// Preset returns the configured preset for this mode.
func (m DevMode) Preset(presets config.DevPresets) config.DevPreset {
	switch m {
	case DevWeb:
		return presets.Web
	case DevML:
		return presets.ML
	case DevMobile:
		return presets.Mobile
	case DevGamedev:
		return presets.Gamedev
	default:
		return presets.General
	}
}

// Preferences captures one recommendation request.
type Preferences struct {
	MinBudget int
	MaxBudget int

	Usage   UsageKey
	DevMode DevMode

	// GamingTitles raises the gaming GPU threshold to the most
	// demanding selected title.
	GamingTitles []string
	// MinGPUScore overrides the derived gaming threshold when positive.
	MinGPUScore float64

	// DesignGPUHint is "high", "mid", "low" or empty.
	DesignGPUHint string
	// DesignMinRAMGB tightens the design RAM floor when positive.
	DesignMinRAMGB int

	// Multitask switches productivity to a CPU-heavier performance mix.
	Multitask bool

	// ScreenMax caps screen size before any usage filtering, nil for
	// no cap.
	ScreenMax *float64
}

// Validate checks the request for range errors.
func (p *Preferences) Validate() error {
	var errs []error
	if p.MinBudget <= 0 {
		errs = append(errs, fmt.Errorf("min budget must be positive, got %d", p.MinBudget))
	}
	if p.MaxBudget < p.MinBudget {
		errs = append(errs, fmt.Errorf("max budget %d below min budget %d", p.MaxBudget, p.MinBudget))
	}
	if p.ScreenMax != nil && *p.ScreenMax <= 0 {
		errs = append(errs, fmt.Errorf("screen max must be positive, got %g", *p.ScreenMax))
	}
	if p.DesignGPUHint != "" && p.DesignGPUHint != "high" && p.DesignGPUHint != "mid" && p.DesignGPUHint != "low" {
		errs = append(errs, fmt.Errorf("design gpu hint must be high, mid or low, got %q", p.DesignGPUHint))
	}
	return errors.Join(errs...)
}

// GamingThreshold resolves the minimum GPU score for a gaming request:
// the configured floor, raised to the most demanding selected title.
// Unknown titles are an error rather than being silently ignored.
func (p *Preferences) GamingThreshold(gaming config.GamingTables) (float64, error) {
	if p.MinGPUScore > 0 {
		return p.MinGPUScore, nil
	}
	threshold := gaming.MinGPUScore
	for _, title := range p.GamingTitles {
		need, ok := gaming.TitleThresholds[title]
		if !ok {
			return 0, fmt.Errorf("unknown game title %q", title)
		}
		if need > threshold {
			threshold = need
		}
	}
	return threshold, nil
}
