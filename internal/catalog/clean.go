package catalog

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/kaganyildiz/laprop/internal/config"
	"github.com/kaganyildiz/laprop/internal/hardware"
	"github.com/kaganyildiz/laprop/internal/logging"
)

// Listings below this price are accessories, spare parts or category
// pages that leaked into the feed, not laptops.
const cleanMinPrice = 5000

const (
	priceMinValid = 1000
	priceMaxValid = 500000
)

var (
	nonDigitRe  = regexp.MustCompile(`[^\d]`)
	hasDigitRe  = regexp.MustCompile(`\d`)
	vatanHTMLRe = regexp.MustCompile(`\.html(?:$|[?#])`)
)

// Cleaner turns raw listings into scored candidates. It owns an
// Extractor for attribute parsing and a hardware.Scorer for CPU and
// GPU quality scores.
type Cleaner struct {
	extractor *Extractor
	scorer    *hardware.Scorer
	log       *logging.Logger
}

// NewCleaner builds a Cleaner over validated tables.
func NewCleaner(tables *config.Tables, params ExtractorParams, log *logging.Logger) *Cleaner {
	return &Cleaner{
		extractor: NewExtractor(params),
		scorer:    hardware.NewScorer(tables),
		log:       log,
	}
}

// CleanPrice parses a price string by stripping everything but digits.
// Values outside the plausible laptop range are rejected as misreads
// (truncated prices, phone numbers, units).
func CleanPrice(raw string) *int {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if digits == "" {
		return nil
	}
	n := 0
	for _, c := range digits {
		n = n*10 + int(c-'0')
		if n > priceMaxValid {
			return nil
		}
	}
	if n < priceMinValid {
		return nil
	}
	return &n
}

// InferVendor identifies the retailer from a listing URL.
func InferVendor(url string) string {
	u := strings.ToLower(url)
	switch {
	case strings.Contains(u, "amazon"):
		return "amazon"
	case strings.Contains(u, "vatanbilgisayar.com"):
		return "vatan"
	case strings.Contains(u, "incehesap"):
		return "incehesap"
	default:
		return "other"
	}
}

// Clean converts one raw listing into a candidate. The second return
// is false when the row is not a usable laptop listing: missing name,
// missing or implausible price, or a category page.
func (cl *Cleaner) Clean(raw RawListing) (*Candidate, bool) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return nil, false
	}

	// Vatan exports interleave category and placeholder rows; only
	// .html URLs are product pages.
	urlLower := strings.ToLower(raw.URL)
	if strings.Contains(urlLower, "vatanbilgisayar.com") && !vatanHTMLRe.MatchString(urlLower) {
		return nil, false
	}

	price := CleanPrice(raw.Price)
	if price == nil || *price <= cleanMinPrice {
		return nil, false
	}

	brand := ExtractBrand(name)
	cpu := NormalizeCPU(name, brand)

	gpuRaw := "integrated"
	if g := GPUFromTitle(name, brand); g != nil {
		gpuRaw = *g
	}

	ramTitle := cl.extractor.RAMFromTitle(name)
	var ramCol *int
	if hasDigitRe.MatchString(raw.RAM) {
		ramCol = cl.extractor.CleanColumnRAM(raw.RAM)
	}
	// The title is more reliable than the RAM column, which retailers
	// reuse for whatever spec fits.
	ram := coalesceInt(ramTitle, ramCol)

	storageTitle := cl.extractor.StorageFromTitle(name)
	var storageCol *int
	if hasDigitRe.MatchString(raw.Storage) {
		storageCol = cl.extractor.CleanColumnStorage(raw.Storage)
	}
	// Storage works the other way around: the column is cleaner when
	// present.
	storage := coalesceInt(storageCol, storageTitle)

	screen := cl.extractor.ParseScreenSize(raw.ScreenSize)
	if screen == nil {
		screen = cl.extractor.ParseScreenSize(name)
	}

	titleHint := cl.extractor.LargerStorageInTitle(name)
	ram, storage = cl.repairCapacities(ram, storage, ramCol, ramTitle, storageCol, storageTitle, titleHint)

	if storage != nil && !ValidStorageGB(*storage) {
		storage = nil
	}

	gpuNorm, gpuScore := cl.scorer.NormalizeAndScoreGPU(gpuRaw)

	source := raw.Source
	if source == "" {
		source = InferVendor(raw.URL)
	}

	return &Candidate{
		ID:        uuid.NewString(),
		Name:      name,
		Brand:     brand,
		Price:     price,
		RAMGB:     ram,
		StorageGB: storage,
		ScreenIn:  screen,
		CPU:       cpu,
		GPU:       gpuNorm,
		CPUScore:  cl.scorer.CPUScore(cpu),
		GPUScore:  gpuScore,
		OS:        DetectOS(raw.OS, name, brand),
		Source:    source,
		URL:       raw.URL,
		Warnings:  parseWarnings(name),
	}, true
}

// repairCapacities fixes two recurring feed defects: a RAM column that
// actually held storage, and tiny storage values next to a RAM-sized
// one (the two columns swapped).
func (cl *Cleaner) repairCapacities(ram, storage, ramCol, ramTitle, storageCol, storageTitle, titleHint *int) (*int, *int) {
	// A tiny storage value with a larger common SSD size in the title
	// means the column held the wrong field.
	if storage != nil && storageTinyGB[*storage] && titleHint != nil && *titleHint > *storage {
		storage = titleHint
	}

	candidateRAM := firstBelow(ramMaxGB, ramCol, ramTitle)
	candidateStorage := firstValidStorage(storageCol, storageTitle, titleHint)

	if ram != nil && *ram > ramMaxGB &&
		(storage == nil || *storage < storageMinGB || storageFormFactorGB[*storage]) {
		if candidateStorage == nil && storageCommonGB[*ram] {
			candidateStorage = ram
		}
		if candidateStorage != nil {
			storage = candidateStorage
			ram = candidateRAM
		}
	}

	if storage != nil && (*storage == 8 || *storage == 16 || *storage == 32) &&
		(ram == nil || ramStorageSwapGB[*ram]) {
		swapTarget := candidateStorage
		if ram != nil && ramStorageSwapGB[*ram] {
			swapTarget = ram
		}
		if swapTarget != nil && !storageTinyGB[*swapTarget] {
			ram, storage = storage, swapTarget
		}
	}

	return ram, storage
}

func parseWarnings(title string) []string {
	var warnings []string
	for _, v := range ramCandidatesInTitle(title) {
		if v > ramMaxGB {
			warnings = append(warnings, "ram_over_128")
			break
		}
	}
	for _, v := range screenCandidatesInTitle(title) {
		if !validScreenIn(v) {
			warnings = append(warnings, "screen_size_out_of_range")
			break
		}
	}
	return warnings
}

func coalesceInt(vals ...*int) *int {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstBelow(limit int, vals ...*int) *int {
	for _, v := range vals {
		if v != nil && *v <= limit {
			return v
		}
	}
	return nil
}

func firstValidStorage(vals ...*int) *int {
	for _, v := range vals {
		if v != nil && ValidStorageGB(*v) {
			return v
		}
	}
	return nil
}

// CleanAll cleans a batch of raw listings and logs a per-vendor data
// quality report.
func (cl *Cleaner) CleanAll(rows []RawListing) []Candidate {
	type vendorStats struct {
		total, missingScreen, missingRAM, missingStorage int
	}
	stats := map[string]*vendorStats{}

	var out []Candidate
	for _, raw := range rows {
		c, ok := cl.Clean(raw)
		if !ok {
			continue
		}
		out = append(out, *c)

		vs := stats[c.Source]
		if vs == nil {
			vs = &vendorStats{}
			stats[c.Source] = vs
		}
		vs.total++
		if c.ScreenIn == nil {
			vs.missingScreen++
		}
		if c.RAMGB == nil {
			vs.missingRAM++
		}
		if c.StorageGB == nil {
			vs.missingStorage++
		}
	}

	for _, vendor := range []string{"amazon", "vatan", "incehesap", "other"} {
		vs := stats[vendor]
		if vs == nil {
			continue
		}
		cl.log.Info("%s: rows=%d, missing screen=%.1f%%, ram=%.1f%%, storage=%.1f%%",
			vendor, vs.total,
			pct(vs.missingScreen, vs.total),
			pct(vs.missingRAM, vs.total),
			pct(vs.missingStorage, vs.total))
	}
	cl.log.Info("cleaned %d of %d listings", len(out), len(rows))
	return out
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
