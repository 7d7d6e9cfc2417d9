package catalog

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Marketing sizes are canonicalized to their binary equivalents so tier
// lookups see one value per class.
func normalizeCapacityGB(gb int) int {
	switch gb {
	case 500:
		return 512
	case 1000:
		return 1024
	case 2000:
		return 2048
	default:
		return gb
	}
}

var (
	// Common SSD sizes; a capacity matching one of these is more likely
	// to be storage than RAM or VRAM.
	storageCommonGB = map[int]bool{
		128: true, 256: true, 512: true, 1024: true,
		2048: true, 3072: true, 4096: true,
	}

	// Sizes too small for a modern laptop SSD. Seen when the storage
	// column actually held RAM.
	storageTinyGB = map[int]bool{8: true, 16: true, 32: true, 40: true, 48: true, 64: true}

	// M.2 form factor designations that match the capacity regex.
	storageFormFactorGB = map[int]bool{2242: true, 2280: true}

	// RAM sizes that show up in a swapped storage column.
	ramStorageSwapGB = map[int]bool{256: true, 512: true, 1024: true}
)

const (
	storageMinGB = 32
	storageMaxGB = 8192
	ramMaxGB     = 128
)

var storageAnchors = []string{"ssd", "nvme", "m.2", "m2", "pcie", "pci-e", "depolama", "storage"}
var ramHints = []string{"ram", "ddr", "lpddr"}
var gpuHints = []string{"rtx", "gtx", "gddr", "vram", "radeon", "arc", "geforce"}
var hddHints = []string{"hdd", "harddisk", "hard disk"}

// ExtractorParams are the tunables of windowed capacity extraction: how
// far around a capacity match to look for context, and how much each
// kind of context moves the candidate's score.
type ExtractorParams struct {
	WindowRadius int

	AnchorBonus     int
	SSDKeywordBonus int
	RAMPenalty      int
	GPUPenalty      int
	HDDPenalty      int
	CommonSizeBonus int

	// NoUnitAnchorBonus rewards patterns like "1TB NVMe" where the
	// anchor is part of the match itself.
	NoUnitAnchorBonus int
}

// DefaultExtractorParams returns the tuned extraction weights.
func DefaultExtractorParams() ExtractorParams {
	return ExtractorParams{
		WindowRadius:      40,
		AnchorBonus:       4,
		SSDKeywordBonus:   2,
		RAMPenalty:        4,
		GPUPenalty:        3,
		HDDPenalty:        2,
		CommonSizeBonus:   1,
		NoUnitAnchorBonus: 3,
	}
}

// Extractor parses RAM, storage and screen size out of free-text
// titles and columns. It is stateless and safe for concurrent use.
type Extractor struct {
	params ExtractorParams
}

// NewExtractor returns an Extractor with the given tunables.
func NewExtractor(params ExtractorParams) *Extractor {
	return &Extractor{params: params}
}

type capacityCandidate struct {
	gb         int
	start, end int
}

var (
	capacityRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(tb|gb)`)

	// No-unit storage patterns: "2TB NVMe", "512 SSD". The leading
	// non-digit group stands in for a lookbehind.
	noUnitTBRe = regexp.MustCompile(`(?:^|[^0-9])(\d{1,2})\s*tb\s*(ssd|nvme|m\.2|m2|pcie|pci-e)\b`)
	noUnitGBRe = regexp.MustCompile(`(?:^|[^0-9])(\d{3,4})\s*(?:gb)?\s*(ssd|nvme|m\.2|m2|pcie|pci-e)\b`)
)

func (e *Extractor) capacityCandidates(text string) []capacityCandidate {
	var out []capacityCandidate
	for _, idx := range capacityRe.FindAllStringSubmatchIndex(text, -1) {
		val, err := strconv.ParseFloat(text[idx[2]:idx[3]], 64)
		if err != nil {
			continue
		}
		unit := text[idx[4]:idx[5]]
		gb := int(math.Round(val))
		if unit == "tb" {
			gb = int(math.Round(val * 1024))
		}
		out = append(out, capacityCandidate{
			gb:    normalizeCapacityGB(gb),
			start: idx[0],
			end:   idx[1],
		})
	}
	return out
}

func (e *Extractor) noUnitStorageCandidates(text string) []capacityCandidate {
	var out []capacityCandidate
	for _, idx := range noUnitTBRe.FindAllStringSubmatchIndex(text, -1) {
		n, err := strconv.Atoi(text[idx[2]:idx[3]])
		if err != nil {
			continue
		}
		out = append(out, capacityCandidate{
			gb:    normalizeCapacityGB(n * 1024),
			start: idx[2],
			end:   idx[1],
		})
	}
	for _, idx := range noUnitGBRe.FindAllStringSubmatchIndex(text, -1) {
		n, err := strconv.Atoi(text[idx[2]:idx[3]])
		if err != nil {
			continue
		}
		out = append(out, capacityCandidate{
			gb:    normalizeCapacityGB(n),
			start: idx[2],
			end:   idx[1],
		})
	}
	return out
}

func windowHasAny(window string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(window, k) {
			return true
		}
	}
	return false
}

// scoreStorageCandidate rates how storage-like a capacity match is
// from its surrounding text window. Positive scores mean storage;
// zero or below means the match is probably RAM, VRAM or noise.
func (e *Extractor) scoreStorageCandidate(text string, c capacityCandidate) int {
	lo := max(0, c.start-e.params.WindowRadius)
	hi := min(len(text), c.end+e.params.WindowRadius)
	window := text[lo:hi]

	score := 0
	if windowHasAny(window, storageAnchors) {
		score += e.params.AnchorBonus
	}
	if strings.Contains(window, "ssd") {
		score += e.params.SSDKeywordBonus
	}
	if windowHasAny(window, ramHints) {
		score -= e.params.RAMPenalty
	}
	if windowHasAny(window, gpuHints) {
		score -= e.params.GPUPenalty
	}
	if windowHasAny(window, hddHints) {
		score -= e.params.HDDPenalty
	}
	if storageCommonGB[c.gb] {
		score += e.params.CommonSizeBonus
	}
	return score
}

// ValidStorageGB reports whether a capacity is plausible as laptop
// storage: not an M.2 form factor designation and inside the valid
// size range.
func ValidStorageGB(gb int) bool {
	if storageFormFactorGB[gb] {
		return false
	}
	return gb >= storageMinGB && gb <= storageMaxGB
}

// pickBestStorage scores every capacity candidate in normalized text
// and returns the winner, or nil when no candidate scores positive.
// Ties go to the larger capacity.
func (e *Extractor) pickBestStorage(text string) *int {
	type scored struct {
		score, gb int
	}
	var candidates []scored

	for _, c := range e.capacityCandidates(text) {
		if !ValidStorageGB(c.gb) {
			continue
		}
		candidates = append(candidates, scored{e.scoreStorageCandidate(text, c), c.gb})
	}
	for _, c := range e.noUnitStorageCandidates(text) {
		if !storageCommonGB[c.gb] || !ValidStorageGB(c.gb) {
			continue
		}
		candidates = append(candidates, scored{
			e.scoreStorageCandidate(text, c) + e.params.NoUnitAnchorBonus, c.gb,
		})
	}

	if len(candidates) == 0 {
		return nil
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score || (c.score == best.score && c.gb > best.gb) {
			best = c
		}
	}
	if best.score <= 0 {
		return nil
	}
	return &best.gb
}

// StorageFromTitle extracts the storage capacity from a product title.
func (e *Extractor) StorageFromTitle(title string) *int {
	s := NormalizeText(title)
	if s == "" {
		return nil
	}
	return e.pickBestStorage(s)
}

// LargerStorageInTitle returns the largest common SSD size mentioned
// anywhere in the title, ignoring window scores. Used to repair rows
// where the storage column held a tiny bogus value.
func (e *Extractor) LargerStorageInTitle(title string) *int {
	s := NormalizeText(title)
	if s == "" {
		return nil
	}
	best := 0
	for _, c := range e.capacityCandidates(s) {
		if storageCommonGB[c.gb] && c.gb > best {
			best = c.gb
		}
	}
	for _, c := range e.noUnitStorageCandidates(s) {
		if storageCommonGB[c.gb] && c.gb > best {
			best = c.gb
		}
	}
	if best == 0 {
		return nil
	}
	return &best
}

var ramTitleRes = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,3})\s*GB\s*(?:RAM|DDR\d|LPDDR\d)`),
	regexp.MustCompile(`RAM\s*(\d{1,3})\s*GB`),
	regexp.MustCompile(`(?:DDR\d|LPDDR\d)\s*(\d{1,3})\s*GB`),
}

func ramCandidatesInTitle(title string) []int {
	s := strings.ToUpper(NormalizeText(title))
	if s == "" {
		return nil
	}
	var vals []int
	for _, re := range ramTitleRes {
		for _, m := range re.FindAllStringSubmatch(s, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil {
				vals = append(vals, n)
			}
		}
	}
	return vals
}

// RAMFromTitle extracts the RAM size from a product title. When a
// title mentions several (like "8GB + 8GB = 16GB") the largest wins.
// Values over the laptop RAM ceiling are rejected as misparses.
func (e *Extractor) RAMFromTitle(title string) *int {
	vals := ramCandidatesInTitle(title)
	if len(vals) == 0 {
		return nil
	}
	best := vals[0]
	for _, v := range vals[1:] {
		if v > best {
			best = v
		}
	}
	if best > ramMaxGB {
		return nil
	}
	return &best
}

var sanitizeRAMRe = regexp.MustCompile(`(\d{1,3})\s*(gb|g)\s*(ram|ddr\d?|lpddr\d?|memory)?`)

var sanitizeRAMValid = map[int]bool{
	4: true, 8: true, 12: true, 16: true, 24: true, 32: true, 48: true, 64: true,
}

var vramWindowHints = []string{"gddr", "vram", "rtx", "radeon", "gpu"}

// SanitizeRAMGB re-derives a plausible RAM value from the title for
// candidates whose parsed RAM exceeds 64 GB. Matches inside a VRAM
// context window are skipped; with no usable match the ceiling value
// 64 is assumed rather than dropping the candidate.
func (e *Extractor) SanitizeRAMGB(title string) int {
	s := NormalizeText(title)
	if s == "" {
		return 64
	}
	best := 0
	for _, idx := range sanitizeRAMRe.FindAllStringSubmatchIndex(s, -1) {
		val, err := strconv.Atoi(s[idx[2]:idx[3]])
		if err != nil || !sanitizeRAMValid[val] {
			continue
		}
		lo := max(0, idx[0]-e.params.WindowRadius)
		hi := min(len(s), idx[1]+e.params.WindowRadius)
		if windowHasAny(s[lo:hi], vramWindowHints) {
			continue
		}
		if val > best {
			best = val
		}
	}
	if best == 0 {
		return 64
	}
	return best
}

var (
	parenGBRe  = regexp.MustCompile(`\((\d+)\s*GB\)`)
	anyGBRe    = regexp.MustCompile(`(\d+)\s*GB`)
	bareNumRe  = regexp.MustCompile(`\d+`)
	pureNumRe  = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	columnRAMs = map[int]bool{
		4: true, 8: true, 12: true, 16: true, 24: true,
		32: true, 48: true, 64: true, 128: true,
	}
)

// CleanColumnRAM parses a RAM column value like "16 GB", "(8 GB)" or
// "16". Returns nil when nothing plausible is found.
func (e *Extractor) CleanColumnRAM(raw string) *int {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return nil
	}

	if m := parenGBRe.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &n
		}
	}

	var best int
	for _, m := range anyGBRe.FindAllStringSubmatch(s, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > best {
			best = n
		}
	}
	if best > 0 {
		return &best
	}

	if m := bareNumRe.FindString(s); m != "" {
		if n, err := strconv.Atoi(m); err == nil && columnRAMs[n] {
			return &n
		}
	}
	return nil
}

// CleanColumnStorage parses a storage column value. Bare numbers are
// taken as GB after marketing-size canonicalization; free text goes
// through the same windowed scoring as titles.
func (e *Extractor) CleanColumnStorage(raw string) *int {
	s := NormalizeText(raw)
	if s == "" {
		return nil
	}
	if pureNumRe.MatchString(s) {
		val, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		gb := normalizeCapacityGB(int(math.Round(val)))
		if !ValidStorageGB(gb) {
			return nil
		}
		return &gb
	}
	return e.pickBestStorage(s)
}
