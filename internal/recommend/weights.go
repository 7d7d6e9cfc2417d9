package recommend

import "github.com/kaganyildiz/laprop/internal/config"

// weightsFor returns the criterion weights for a usage profile. The
// tables are validated to sum to 100 at load time, so no runtime
// normalization happens here.
func weightsFor(tables config.WeightTables, usage UsageKey) config.Weights {
	switch usage {
	case UsageGaming:
		return tables.Gaming
	case UsagePortability:
		return tables.Portability
	case UsageDesign:
		return tables.Design
	case UsageDev:
		return tables.Dev
	default:
		return tables.Productivity
	}
}

// perfMix is the CPU/GPU split of the performance criterion.
type perfMix struct {
	cpu, gpu float64
}

var (
	mixDefault     = perfMix{0.7, 0.3}
	mixGaming      = perfMix{0.3, 0.7}
	mixDesign      = perfMix{0.5, 0.5}
	mixPortability = perfMix{0.8, 0.2}
	mixMultitask   = perfMix{0.85, 0.15}
	mixDevWeb      = perfMix{1.0, 0.0}
)

func perfMixFor(prefs *Preferences) perfMix {
	switch prefs.Usage {
	case UsageGaming:
		return mixGaming
	case UsageDesign:
		return mixDesign
	case UsagePortability:
		return mixPortability
	case UsageProductivity:
		if prefs.Multitask {
			return mixMultitask
		}
	case UsageDev:
		if prefs.DevMode == DevWeb {
			return mixDevWeb
		}
	}
	return mixDefault
}
