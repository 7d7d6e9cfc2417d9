package config

// Tables holds every lookup table the recommendation engine consumes.
// The engine treats them as read-only data: swapping values changes
// behavior, but the algorithms stay the same. All of them can be
// overridden from the TOML config file and are validated at load time.
type Tables struct {
	CPU     CPUTables     `toml:"cpu"`
	GPU     GPUTables     `toml:"gpu"`
	Brand   BrandTables   `toml:"brand"`
	Weights WeightTables  `toml:"weights"`
	Tiers   CapacityTiers `toml:"tiers"`
	Gaming  GamingTables  `toml:"gaming"`
	Dev     DevPresets    `toml:"dev"`
	Filter  FilterTables  `toml:"filter"`
}

// CPUPattern maps a CPU family substring to a base quality score.
type CPUPattern struct {
	Pattern string  `toml:"pattern"`
	Score   float64 `toml:"score"`
}

// CPUTables drives CPU quality scoring. Families are matched in order,
// most specific pattern first; the first match wins.
type CPUTables struct {
	Families []CPUPattern `toml:"families"`

	// Suffix adjustments applied on top of a family match.
	HXBonus  float64 `toml:"hx_bonus"`
	UPenalty float64 `toml:"u_penalty"`
	PPenalty float64 `toml:"p_penalty"`

	// Family fallbacks when no generation pattern matched.
	FallbackI9 float64 `toml:"fallback_i9"`
	FallbackI7 float64 `toml:"fallback_i7"`
	FallbackI5 float64 `toml:"fallback_i5"`
	FallbackI3 float64 `toml:"fallback_i3"`

	// Default is the unknown-CPU score: entry-level, not zero.
	Default float64 `toml:"default"`
}

// GPUTables drives GPU quality scoring from normalized labels.
type GPUTables struct {
	RTXModels map[string]float64 `toml:"rtx_models"`
	GTXModels map[string]float64 `toml:"gtx_models"`
	MXModels  map[string]float64 `toml:"mx_models"`
	RXModels  map[string]float64 `toml:"rx_models"`

	// RXPrefixFallback scores an RX model by its leading two digits when
	// the exact model is not in RXModels.
	RXPrefixFallback map[string]float64 `toml:"rx_prefix_fallback"`

	// Generation fallbacks for RTX models missing from RTXModels.
	RTX50Fallback float64 `toml:"rtx50_fallback"`
	RTX40Fallback float64 `toml:"rtx40_fallback"`
	RTX30Fallback float64 `toml:"rtx30_fallback"`
	RTXDefault    float64 `toml:"rtx_default"`

	GTXDefault float64 `toml:"gtx_default"`
	MXDefault  float64 `toml:"mx_default"`
	RXDefault  float64 `toml:"rx_default"`

	ArcHigh    float64 `toml:"arc_high"`
	ArcMid     float64 `toml:"arc_mid"`
	ArcLow     float64 `toml:"arc_low"`
	ArcDefault float64 `toml:"arc_default"`

	IGPUHigh float64 `toml:"igpu_high"`
	IGPUMid  float64 `toml:"igpu_mid"`
	IGPULow  float64 `toml:"igpu_low"`

	AppleM4 float64 `toml:"apple_m4"`
	AppleM3 float64 `toml:"apple_m3"`
	AppleM2 float64 `toml:"apple_m2"`
	AppleM1 float64 `toml:"apple_m1"`

	DiscreteUnknown float64 `toml:"discrete_unknown"`

	// Default is the unknown-GPU score: entry-level, not zero.
	Default float64 `toml:"default"`
}

// UsageScores is a per-usage score row of a brand×usage matrix.
type UsageScores struct {
	Gaming       float64 `toml:"gaming"`
	Portability  float64 `toml:"portability"`
	Productivity float64 `toml:"productivity"`
	Design       float64 `toml:"design"`
	Dev          float64 `toml:"dev"`
}

// BrandTables holds brand trust scores and the brand×usage fit matrix.
type BrandTables struct {
	Trust      map[string]float64 `toml:"trust"` // 0-10
	OtherTrust float64            `toml:"other_trust"`

	Purpose        map[string]UsageScores `toml:"purpose"` // 0-100
	PurposeDefault float64                `toml:"purpose_default"`
}

// Weights is one usage profile's criterion weight row. Every row must
// sum to exactly 100.
type Weights struct {
	Price        float64 `toml:"price"`
	Performance  float64 `toml:"performance"`
	RAM          float64 `toml:"ram"`
	Storage      float64 `toml:"storage"`
	Brand        float64 `toml:"brand"`
	BrandPurpose float64 `toml:"brand_purpose"`
	Battery      float64 `toml:"battery"`
	Portability  float64 `toml:"portability"`
}

// Sum returns the total of all criterion weights.
func (w Weights) Sum() float64 {
	return w.Price + w.Performance + w.RAM + w.Storage +
		w.Brand + w.BrandPurpose + w.Battery + w.Portability
}

// WeightTables holds one weight row per usage key. The closed struct
// keeps the set of usages exhaustive at compile time.
type WeightTables struct {
	Gaming       Weights `toml:"gaming"`
	Portability  Weights `toml:"portability"`
	Productivity Weights `toml:"productivity"`
	Design       Weights `toml:"design"`
	Dev          Weights `toml:"dev"`
}

// CapacityTier maps a minimum capacity to a criterion score. Tiers are
// ordered descending by MinGB; lookup takes the first tier at or below
// the candidate's capacity.
type CapacityTier struct {
	MinGB int     `toml:"min_gb"`
	Score float64 `toml:"score"`
}

// CapacityTiers holds the RAM and storage step functions.
type CapacityTiers struct {
	RAM     []CapacityTier `toml:"ram"`
	Storage []CapacityTier `toml:"storage"`
}

// GamingTables maps game titles to the GPU score they require. The
// effective gaming threshold is max(MinGPUScore, selected titles).
type GamingTables struct {
	MinGPUScore     float64            `toml:"min_gpu_score"`
	TitleThresholds map[string]float64 `toml:"title_thresholds"`
}

// CPUBias adjusts dev-fit by CPU power-class suffix.
type CPUBias struct {
	HX float64 `toml:"hx"`
	H  float64 `toml:"h"`
	U  float64 `toml:"u"`
	P  float64 `toml:"p"`
}

// PortBias adjusts dev-fit by screen-size bracket.
type PortBias struct {
	LE136 float64 `toml:"le_13_6"`
	LE145 float64 `toml:"le_14_5"`
	LE156 float64 `toml:"le_15_6"`
	Mid   float64 `toml:"mid_15_16"`
	GT16  float64 `toml:"gt_16"`
}

// OSPreference multiplies dev-fit by operating system. Other covers
// anything not listed (FreeDOS included).
type OSPreference struct {
	Windows float64 `toml:"windows"`
	MacOS   float64 `toml:"macos"`
	Linux   float64 `toml:"linux"`
	Other   float64 `toml:"other"`
}

// DevPreset captures one development profile's hardware expectations.
type DevPreset struct {
	MinRAMGB     int     `toml:"min_ram_gb"`
	MinStorageGB int     `toml:"min_storage_gb"`
	ScreenMax    float64 `toml:"screen_max"`

	NeedDiscreteGPU bool `toml:"need_dgpu"`
	NeedCUDA        bool `toml:"need_cuda"`

	PreferOS OSPreference `toml:"prefer_os"`
	CPUBias  CPUBias      `toml:"cpu_bias"`
	PortBias PortBias     `toml:"port_bias"`
}

// DevPresets holds one preset per dev mode.
type DevPresets struct {
	Web     DevPreset `toml:"web"`
	ML      DevPreset `toml:"ml"`
	Mobile  DevPreset `toml:"mobile"`
	Gamedev DevPreset `toml:"gamedev"`
	General DevPreset `toml:"general"`
}

// FilterTables holds the hard-constraint thresholds of the usage filter
// and the relaxation ladder. Relaxed values must only loosen their
// strict counterparts; Validate enforces that.
type FilterTables struct {
	// MinResults triggers relaxation when fewer candidates survive.
	MinResults int `toml:"min_results"`

	GamingMinRAMGB        int     `toml:"gaming_min_ram_gb"`
	GamingRelaxedGPUScore float64 `toml:"gaming_relaxed_gpu_score"`

	PortabilityMaxScreen     float64 `toml:"portability_max_screen"`
	PortabilityRelaxedScreen float64 `toml:"portability_relaxed_screen"`
	// GPU-weight ceilings keep gaming-class machines out of portability
	// results while the candidate pool is large enough to afford it.
	PortabilityLargeSetSize int     `toml:"portability_large_set_size"`
	PortabilityLargeGPUCeil float64 `toml:"portability_large_gpu_ceil"`
	PortabilityMidSetSize   int     `toml:"portability_mid_set_size"`
	PortabilityMidGPUCeil   float64 `toml:"portability_mid_gpu_ceil"`

	ProductivityMinRAMGB    int     `toml:"productivity_min_ram_gb"`
	ProductivityMinCPUScore float64 `toml:"productivity_min_cpu_score"`

	DesignMinRAMGB    int                `toml:"design_min_ram_gb"`
	DesignMinGPUScore float64            `toml:"design_min_gpu_score"`
	DesignMinScreen   float64            `toml:"design_min_screen"`
	DesignGPUHints    map[string]float64 `toml:"design_gpu_hints"`

	DevMinRAMGB     int     `toml:"dev_min_ram_gb"`
	DevMinCPUScore  float64 `toml:"dev_min_cpu_score"`
	DevMinStorageGB int     `toml:"dev_min_storage_gb"`

	RelaxedMinRAMGB int `toml:"relaxed_min_ram_gb"`
}

// DefaultTables returns the built-in scoring tables.
func DefaultTables() Tables {
	return Tables{
		CPU: CPUTables{
			Families: []CPUPattern{
				// Intel by generation.
				{"i9-14", 9.5}, {"i7-14", 8.5}, {"i5-14", 7.0}, {"i3-14", 5.0},
				{"i9-13", 9.0}, {"i7-13", 8.0}, {"i5-13", 6.5}, {"i3-13", 4.5},
				{"i9-12", 8.5}, {"i7-12", 7.5}, {"i5-12", 6.0}, {"i3-12", 4.0},

				// Intel Core Ultra.
				{"ultra 9", 9.0}, {"ultra 7", 8.0}, {"ultra 5", 7.0},

				// AMD Ryzen, coarse 7xxx/8xxx tiers.
				{"ryzen 9 8", 9.5}, {"ryzen 7 8", 8.5}, {"ryzen 5 8", 7.0},
				{"ryzen 9 7", 9.2}, {"ryzen 7 7", 8.2}, {"ryzen 5 7", 6.8},

				// Apple Silicon, Pro/Max before base so the more specific
				// pattern wins.
				{"m4 max", 9.8}, {"m4 pro", 9.6}, {"m4", 9.1},
				{"m3 max", 9.4}, {"m3 pro", 8.7}, {"m3", 8.6},
				{"m2 max", 9.0}, {"m2 pro", 8.8}, {"m2", 8.2},
				{"m1 max", 8.5}, {"m1 pro", 8.3}, {"m1", 7.8},
			},
			HXBonus:    0.5,
			UPenalty:   1.0,
			PPenalty:   0.3,
			FallbackI9: 9.0,
			FallbackI7: 7.5,
			FallbackI5: 6.0,
			FallbackI3: 4.0,
			Default:    5.0,
		},
		GPU: GPUTables{
			RTXModels: map[string]float64{
				"5090": 10.0, "5080": 9.7, "5070": 8.8, "5060": 8.4, "5050": 7.8,
				"4090": 9.8, "4080": 9.3, "4070": 8.8, "4060": 8.0, "4050": 7.2,
				"3090": 8.9, "3080": 8.5, "3070": 7.8, "3060": 7.0, "3050": 6.0,
				"2080": 8.0, "2070": 7.2, "2060": 6.7,
				// Workstation Ada / A-series, coarse.
				"5000": 9.1, "4000": 8.9, "3500": 8.4, "2000": 7.3,
			},
			GTXModels: map[string]float64{
				"1070": 5.3, "1660": 5.5, "1650": 5.0,
				"1060": 4.5, "1050": 4.2, "970": 4.2, "960": 3.8,
			},
			MXModels: map[string]float64{
				"570": 4.2, "550": 4.0, "450": 3.6, "350": 3.2, "330": 3.0,
			},
			RXModels: map[string]float64{
				"7900M": 9.4, "7800M": 8.8, "7700S": 8.0,
				"7600MXT": 7.2, "7600M": 7.0,
				"6800M": 7.6, "6700M": 7.0, "6600M": 6.6,
				// Suffix-less catch: some catalogs write "RX 7800".
				"7900": 9.4, "7800": 8.8, "7700": 8.0, "7600": 7.2,
				"6800": 7.6, "6700": 7.0, "6600": 6.6,
			},
			RXPrefixFallback: map[string]float64{
				"79": 8.6, "78": 8.2, "77": 7.7,
				"76": 7.1, "67": 6.9, "66": 6.5,
			},
			RTX50Fallback:   8.3,
			RTX40Fallback:   8.0,
			RTX30Fallback:   7.0,
			RTXDefault:      6.5,
			GTXDefault:      4.5,
			MXDefault:       3.5,
			RXDefault:       5.5,
			ArcHigh:         7.5,
			ArcMid:          6.5,
			ArcLow:          5.5,
			ArcDefault:      3.0,
			IGPUHigh:        3.5,
			IGPUMid:         3.0,
			IGPULow:         2.5,
			AppleM4:         8.5,
			AppleM3:         8.0,
			AppleM2:         7.5,
			AppleM1:         7.0,
			DiscreteUnknown: 4.0,
			Default:         2.0,
		},
		Brand: BrandTables{
			Trust: map[string]float64{
				"apple": 9.5, "lenovo": 9.0, "dell": 8.8, "asus": 8.5,
				"hp": 8.3, "microsoft": 8.5, "huawei": 8.0, "samsung": 8.0,
				"msi": 8.0, "acer": 7.5, "monster": 7.0, "casper": 6.8,
			},
			OtherTrust: 5.0,
			Purpose: map[string]UsageScores{
				"apple":     {Gaming: 65, Portability: 95, Productivity: 90, Design: 98, Dev: 92},
				"lenovo":    {Gaming: 85, Portability: 82, Productivity: 95, Design: 85, Dev: 93},
				"asus":      {Gaming: 92, Portability: 75, Productivity: 85, Design: 88, Dev: 85},
				"dell":      {Gaming: 80, Portability: 83, Productivity: 92, Design: 87, Dev: 90},
				"hp":        {Gaming: 78, Portability: 82, Productivity: 88, Design: 90, Dev: 84},
				"huawei":    {Gaming: 60, Portability: 90, Productivity: 82, Design: 92, Dev: 80},
				"samsung":   {Gaming: 65, Portability: 92, Productivity: 80, Design: 91, Dev: 78},
				"msi":       {Gaming: 95, Portability: 60, Productivity: 75, Design: 78, Dev: 80},
				"acer":      {Gaming: 80, Portability: 78, Productivity: 78, Design: 75, Dev: 78},
				"microsoft": {Gaming: 55, Portability: 88, Productivity: 86, Design: 90, Dev: 85},
				"monster":   {Gaming: 90, Portability: 55, Productivity: 70, Design: 70, Dev: 75},
				"casper":    {Gaming: 75, Portability: 70, Productivity: 72, Design: 70, Dev: 73},
			},
			PurposeDefault: 70,
		},
		Weights: WeightTables{
			Gaming: Weights{
				Price: 15, Performance: 40, RAM: 15, Storage: 10,
				Brand: 7, BrandPurpose: 8, Battery: 3, Portability: 2,
			},
			Portability: Weights{
				Price: 15, Performance: 10, RAM: 10, Storage: 8,
				Brand: 6, BrandPurpose: 6, Battery: 20, Portability: 25,
			},
			Productivity: Weights{
				Price: 15, Performance: 25, RAM: 20, Storage: 12,
				Brand: 6, BrandPurpose: 6, Battery: 8, Portability: 8,
			},
			Design: Weights{
				Price: 12, Performance: 22, RAM: 18, Storage: 15,
				Brand: 7, BrandPurpose: 6, Battery: 10, Portability: 10,
			},
			Dev: Weights{
				Price: 12, Performance: 28, RAM: 22, Storage: 15,
				Brand: 4, BrandPurpose: 4, Battery: 8, Portability: 7,
			},
		},
		Tiers: CapacityTiers{
			RAM: []CapacityTier{
				{64, 100}, {32, 90}, {24, 80}, {16, 70}, {12, 55}, {8, 40}, {0, 20},
			},
			Storage: []CapacityTier{
				{2048, 100}, {1024, 85}, {512, 70}, {256, 50}, {0, 30},
			},
		},
		Gaming: GamingTables{
			MinGPUScore: 6.0,
			TitleThresholds: map[string]float64{
				"Starfield":                  7.5,
				"Call of Duty: Black Ops 6":  7.0,
				"Forza Horizon 5":            5.2,
				"Baldur's Gate 3":            6.5,
				"Helldivers 2":               6.5,
				"Cyberpunk 2077 (2.0)":       6.6,
				"Assassin's Creed Mirage":    5.8,
				"Forza Motorsport (2023)":    7.5,
				"Lies of P":                  5.5,
				"Apex/Fortnite (high)":       5.0,
			},
		},
		Dev: DevPresets{
			Web: DevPreset{
				MinRAMGB: 16, MinStorageGB: 512, ScreenMax: 15.6,
				NeedDiscreteGPU: false, NeedCUDA: false,
				PreferOS: OSPreference{Windows: 1.0, MacOS: 1.0, Linux: 1.05, Other: 0.98},
				CPUBias:  CPUBias{HX: 1.0, H: 0.5, U: -0.2, P: 0.2},
				PortBias: PortBias{LE145: 0.3, LE156: 0.2, GT16: -0.4},
			},
			ML: DevPreset{
				MinRAMGB: 32, MinStorageGB: 1024, ScreenMax: 16.0,
				NeedDiscreteGPU: true, NeedCUDA: true,
				PreferOS: OSPreference{Windows: 1.04, MacOS: 1.00, Linux: 1.03, Other: 0.98},
				CPUBias:  CPUBias{HX: 0.8, H: 0.5, U: -0.6, P: -0.2},
				PortBias: PortBias{LE145: -0.2, LE156: 0.2, GT16: -0.1},
			},
			Mobile: DevPreset{
				MinRAMGB: 16, MinStorageGB: 512, ScreenMax: 14.5,
				NeedDiscreteGPU: false, NeedCUDA: false,
				PreferOS: OSPreference{Windows: 1.0, MacOS: 1.06, Linux: 0.98, Other: 0.98},
				CPUBias:  CPUBias{HX: -0.5, H: -0.2, U: 0.6, P: 0.3},
				PortBias: PortBias{LE136: 0.8, LE145: 0.5, Mid: -0.2, GT16: -0.2},
			},
			Gamedev: DevPreset{
				MinRAMGB: 32, MinStorageGB: 1024, ScreenMax: 16.0,
				NeedDiscreteGPU: true, NeedCUDA: true,
				PreferOS: OSPreference{Windows: 1.04, MacOS: 0.97, Linux: 1.0, Other: 0.98},
				CPUBias:  CPUBias{HX: 1.0, H: 0.6, U: -0.8, P: -0.3},
				PortBias: PortBias{LE145: -0.2, LE156: 0.2, GT16: 0.1},
			},
			General: DevPreset{
				MinRAMGB: 16, MinStorageGB: 512, ScreenMax: 15.6,
				NeedDiscreteGPU: false, NeedCUDA: false,
				PreferOS: OSPreference{Windows: 1.02, MacOS: 1.02, Linux: 1.02, Other: 0.98},
				CPUBias:  CPUBias{HX: -0.1, H: 0.3, U: 0.0, P: 0.2},
				PortBias: PortBias{LE145: 0.3, LE156: 0.2, GT16: -0.2},
			},
		},
		Filter: FilterTables{
			MinResults: 5,

			GamingMinRAMGB:        8,
			GamingRelaxedGPUScore: 5.0,

			PortabilityMaxScreen:     14.5,
			PortabilityRelaxedScreen: 15.6,
			PortabilityLargeSetSize:  50,
			PortabilityLargeGPUCeil:  5.0,
			PortabilityMidSetSize:    30,
			PortabilityMidGPUCeil:    6.0,

			ProductivityMinRAMGB:    8,
			ProductivityMinCPUScore: 5.0,

			DesignMinRAMGB:    16,
			DesignMinGPUScore: 4.0,
			DesignMinScreen:   14.0,
			DesignGPUHints:    map[string]float64{"high": 6.5, "mid": 4.5, "low": 2.5},

			DevMinRAMGB:     16,
			DevMinCPUScore:  6.0,
			DevMinStorageGB: 256,

			RelaxedMinRAMGB: 12,
		},
	}
}
