package config

import (
	"errors"
	"fmt"
	"math"
)

const weightSumTolerance = 1e-9

// Validate checks the whole configuration and returns every problem
// found, joined into a single error.
func (c *Config) Validate() error {
	var errs []error

	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path must not be empty"))
	}
	if c.Recommend.TopN < 1 {
		errs = append(errs, fmt.Errorf("recommend.top_n must be at least 1, got %d", c.Recommend.TopN))
	}
	if c.Recommend.DiversityTolerance < 0 {
		errs = append(errs, fmt.Errorf("recommend.diversity_tolerance must not be negative, got %g", c.Recommend.DiversityTolerance))
	}

	if err := c.Tables.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks every scoring table for internal consistency. A nil
// return means the engine can rely on the tables without rechecking.
func (t *Tables) Validate() error {
	var errs []error

	errs = append(errs, t.CPU.validate()...)
	errs = append(errs, t.GPU.validate()...)
	errs = append(errs, t.Brand.validate()...)
	errs = append(errs, t.Weights.validate()...)
	errs = append(errs, t.Tiers.validate()...)
	errs = append(errs, t.Gaming.validate()...)
	errs = append(errs, t.Dev.validate()...)
	errs = append(errs, t.Filter.validate()...)

	if t.Filter.GamingRelaxedGPUScore > t.Gaming.MinGPUScore {
		errs = append(errs, fmt.Errorf("filter.gaming_relaxed_gpu_score %g above gaming.min_gpu_score %g", t.Filter.GamingRelaxedGPUScore, t.Gaming.MinGPUScore))
	}

	return errors.Join(errs...)
}

func (t *CPUTables) validate() []error {
	var errs []error
	if len(t.Families) == 0 {
		errs = append(errs, errors.New("cpu.families must not be empty"))
	}
	for i, f := range t.Families {
		if f.Pattern == "" {
			errs = append(errs, fmt.Errorf("cpu.families[%d]: pattern must not be empty", i))
		}
		if f.Score < 0 || f.Score > 10 {
			errs = append(errs, fmt.Errorf("cpu.families[%d] (%q): score %g outside [0,10]", i, f.Pattern, f.Score))
		}
	}
	if t.Default <= 0 || t.Default > 10 {
		errs = append(errs, fmt.Errorf("cpu.default score %g outside (0,10]", t.Default))
	}
	return errs
}

func (t *GPUTables) validate() []error {
	var errs []error
	for name, m := range map[string]map[string]float64{
		"gpu.rtx_models": t.RTXModels,
		"gpu.gtx_models": t.GTXModels,
		"gpu.mx_models":  t.MXModels,
		"gpu.rx_models":  t.RXModels,
	} {
		if len(m) == 0 {
			errs = append(errs, fmt.Errorf("%s must not be empty", name))
		}
		for model, score := range m {
			if score < 0 || score > 10 {
				errs = append(errs, fmt.Errorf("%s[%q]: score %g outside [0,10]", name, model, score))
			}
		}
	}
	if t.Default <= 0 || t.Default > 10 {
		errs = append(errs, fmt.Errorf("gpu.default score %g outside (0,10]", t.Default))
	}
	return errs
}

func (t *BrandTables) validate() []error {
	var errs []error
	for brand, score := range t.Trust {
		if score < 0 || score > 10 {
			errs = append(errs, fmt.Errorf("brand.trust[%q]: score %g outside [0,10]", brand, score))
		}
	}
	for brand, row := range t.Purpose {
		for usage, score := range map[string]float64{
			"gaming": row.Gaming, "portability": row.Portability,
			"productivity": row.Productivity, "design": row.Design, "dev": row.Dev,
		} {
			if score < 0 || score > 100 {
				errs = append(errs, fmt.Errorf("brand.purpose[%q].%s: score %g outside [0,100]", brand, usage, score))
			}
		}
	}
	if t.PurposeDefault < 0 || t.PurposeDefault > 100 {
		errs = append(errs, fmt.Errorf("brand.purpose_default %g outside [0,100]", t.PurposeDefault))
	}
	return errs
}

func (t *WeightTables) validate() []error {
	var errs []error
	for usage, w := range map[string]Weights{
		"gaming": t.Gaming, "portability": t.Portability,
		"productivity": t.Productivity, "design": t.Design, "dev": t.Dev,
	} {
		if sum := w.Sum(); math.Abs(sum-100) > weightSumTolerance {
			errs = append(errs, fmt.Errorf("weights.%s must sum to 100, got %g", usage, sum))
		}
	}
	return errs
}

func (t *CapacityTiers) validate() []error {
	var errs []error
	errs = append(errs, validateTiers("tiers.ram", t.RAM)...)
	errs = append(errs, validateTiers("tiers.storage", t.Storage)...)
	return errs
}

func validateTiers(name string, tiers []CapacityTier) []error {
	var errs []error
	if len(tiers) == 0 {
		return []error{fmt.Errorf("%s must not be empty", name)}
	}
	for i, tier := range tiers {
		if i > 0 && tier.MinGB >= tiers[i-1].MinGB {
			errs = append(errs, fmt.Errorf("%s[%d]: min_gb %d not strictly below previous %d", name, i, tier.MinGB, tiers[i-1].MinGB))
		}
		if tier.Score < 0 || tier.Score > 100 {
			errs = append(errs, fmt.Errorf("%s[%d]: score %g outside [0,100]", name, i, tier.Score))
		}
	}
	if last := tiers[len(tiers)-1]; last.MinGB != 0 {
		errs = append(errs, fmt.Errorf("%s: last tier min_gb must be 0, got %d", name, last.MinGB))
	}
	return errs
}

func (t *GamingTables) validate() []error {
	var errs []error
	if t.MinGPUScore < 0 || t.MinGPUScore > 10 {
		errs = append(errs, fmt.Errorf("gaming.min_gpu_score %g outside [0,10]", t.MinGPUScore))
	}
	for title, score := range t.TitleThresholds {
		if score < 0 || score > 10 {
			errs = append(errs, fmt.Errorf("gaming.title_thresholds[%q]: score %g outside [0,10]", title, score))
		}
	}
	return errs
}

func (t *DevPresets) validate() []error {
	var errs []error
	for mode, p := range map[string]DevPreset{
		"web": t.Web, "ml": t.ML, "mobile": t.Mobile,
		"gamedev": t.Gamedev, "general": t.General,
	} {
		if p.MinRAMGB <= 0 {
			errs = append(errs, fmt.Errorf("dev.%s.min_ram_gb must be positive, got %d", mode, p.MinRAMGB))
		}
		if p.MinStorageGB <= 0 {
			errs = append(errs, fmt.Errorf("dev.%s.min_storage_gb must be positive, got %d", mode, p.MinStorageGB))
		}
		if p.ScreenMax <= 10 || p.ScreenMax > 20 {
			errs = append(errs, fmt.Errorf("dev.%s.screen_max %g outside (10,20]", mode, p.ScreenMax))
		}
		if p.NeedCUDA && !p.NeedDiscreteGPU {
			errs = append(errs, fmt.Errorf("dev.%s: need_cuda requires need_dgpu", mode))
		}
	}
	return errs
}

func (t *FilterTables) validate() []error {
	var errs []error
	if t.MinResults < 1 {
		errs = append(errs, fmt.Errorf("filter.min_results must be at least 1, got %d", t.MinResults))
	}
	if t.PortabilityRelaxedScreen < t.PortabilityMaxScreen {
		errs = append(errs, fmt.Errorf("filter.portability_relaxed_screen %g below strict limit %g", t.PortabilityRelaxedScreen, t.PortabilityMaxScreen))
	}
	if t.RelaxedMinRAMGB > t.DevMinRAMGB {
		errs = append(errs, fmt.Errorf("filter.relaxed_min_ram_gb %d above dev minimum %d", t.RelaxedMinRAMGB, t.DevMinRAMGB))
	}
	if t.RelaxedMinRAMGB > t.DesignMinRAMGB {
		errs = append(errs, fmt.Errorf("filter.relaxed_min_ram_gb %d above design minimum %d", t.RelaxedMinRAMGB, t.DesignMinRAMGB))
	}
	return errs
}
