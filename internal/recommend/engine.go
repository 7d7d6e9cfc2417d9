package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kaganyildiz/laprop/internal/catalog"
	"github.com/kaganyildiz/laprop/internal/config"
	"github.com/kaganyildiz/laprop/internal/logging"
)

// budgetCloseFactor widens the budget by 10% when counting near-miss
// listings for the empty-result hint.
const budgetCloseFactor = 0.1

// diversitySlots is how many leading result slots prefer brand
// variety over raw score order.
const diversitySlots = 3

// ramSanityCeilGB flags RAM values that almost certainly came from a
// storage capacity and need re-extraction from the title.
const ramSanityCeilGB = 64

// Item is one ranked recommendation.
type Item struct {
	Candidate *catalog.Candidate
	Score     float64
	Breakdown Breakdown
}

// Result is a ranked recommendation set with summary metadata.
type Result struct {
	Items      []Item
	UsageLabel string
	AvgScore   float64
	PriceMin   int
	PriceMax   int
	// Relaxed reports that the strict usage filter left too few
	// candidates and the loosened fallback was used instead.
	Relaxed bool
}

// Engine runs the recommendation pipeline: budget and screen caps,
// usage filtering, dedup, scoring, and diversity-aware ranking.
type Engine struct {
	cfg       *config.Config
	log       *logging.Logger
	scorer    *Scorer
	filter    *Filter
	extractor *catalog.Extractor
}

// NewEngine wires an engine over a validated config.
func NewEngine(cfg *config.Config, log *logging.Logger) *Engine {
	return &Engine{
		cfg:       cfg,
		log:       log,
		scorer:    NewScorer(&cfg.Tables),
		filter:    NewFilter(&cfg.Tables, log),
		extractor: catalog.NewExtractor(catalog.DefaultExtractorParams()),
	}
}

// Recommend ranks candidates for the given preferences. It returns an
// EmptyResultError when a pipeline stage eliminates every candidate,
// with near-budget counts and hints where they help.
func (e *Engine) Recommend(cands []*catalog.Candidate, prefs *Preferences) (*Result, error) {
	if err := prefs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preferences: %w", err)
	}

	pool := keep(cands, func(c *catalog.Candidate) bool {
		p := c.PriceValue()
		return p >= prefs.MinBudget && p <= prefs.MaxBudget
	})
	if len(pool) == 0 {
		closeCount := e.countCloseOptions(cands, prefs)
		hint := ""
		if closeCount > 0 {
			hint = "widening the budget by 10% would add options"
		}
		return nil, &EmptyResultError{Stage: StageBudget, CloseOptions: closeCount, Hint: hint}
	}

	if prefs.ScreenMax != nil {
		pool = keep(pool, func(c *catalog.Candidate) bool {
			return c.ScreenIn != nil && *c.ScreenIn <= *prefs.ScreenMax
		})
		if len(pool) == 0 {
			return nil, &EmptyResultError{Stage: StageScreen}
		}
	}

	gamingThreshold := 0.0
	if prefs.Usage == UsageGaming {
		t, err := prefs.GamingThreshold(e.cfg.Tables.Gaming)
		if err != nil {
			return nil, err
		}
		gamingThreshold = t
	}

	pool, relaxed := e.filter.Apply(pool, prefs, gamingThreshold)

	// Relaxation may have readmitted GPUs below the gaming threshold.
	if prefs.Usage == UsageGaming {
		before := len(pool)
		pool = keep(pool, func(c *catalog.Candidate) bool {
			return c.GPUScore >= gamingThreshold
		})
		e.log.Info("gaming GPU threshold %.1f kept %d/%d", gamingThreshold, len(pool), before)
		if len(pool) == 0 {
			return nil, &EmptyResultError{
				Stage: StageGaming,
				Hint:  "raise the budget or pick less demanding titles",
			}
		}
	}

	pool = dedupe(pool)
	if len(pool) == 0 {
		return nil, &EmptyResultError{Stage: StageUsage}
	}

	e.sanitizeRAM(pool)

	scored := make([]Item, len(pool))
	for i, c := range pool {
		score, breakdown := e.scorer.Score(c, prefs)
		scored[i] = Item{Candidate: c, Score: score, Breakdown: breakdown}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Candidate.PriceValue() < scored[j].Candidate.PriceValue()
	})

	items := e.pickTop(scored, prefs)

	res := &Result{
		Items:      items,
		UsageLabel: prefs.Usage.Label(),
		Relaxed:    relaxed,
	}
	if len(items) > 0 {
		sum := 0.0
		res.PriceMin = items[0].Candidate.PriceValue()
		res.PriceMax = res.PriceMin
		for _, it := range items {
			sum += it.Score
			p := it.Candidate.PriceValue()
			if p < res.PriceMin {
				res.PriceMin = p
			}
			if p > res.PriceMax {
				res.PriceMax = p
			}
		}
		res.AvgScore = sum / float64(len(items))
	}
	return res, nil
}

// pickTop fills up to TopN slots. The first diversitySlots slots
// prefer an unseen brand when one scores within DiversityTolerance of
// the best remaining candidate; after that, pure score order.
func (e *Engine) pickTop(scored []Item, prefs *Preferences) []Item {
	topN := e.cfg.Recommend.TopN
	tolerance := e.cfg.Recommend.DiversityTolerance

	items := make([]Item, 0, topN)
	used := make([]bool, len(scored))
	seen := map[string]bool{}

	nextUnused := func() int {
		for i := range scored {
			if !used[i] {
				return i
			}
		}
		return -1
	}

	for len(items) < topN {
		best := nextUnused()
		if best < 0 {
			break
		}
		pick := best
		if len(items) < diversitySlots && seen[scored[best].Candidate.Brand] {
			for i := best + 1; i < len(scored); i++ {
				if used[i] || seen[scored[i].Candidate.Brand] {
					continue
				}
				if scored[best].Score-scored[i].Score <= tolerance {
					pick = i
				}
				break
			}
		}
		used[pick] = true
		seen[scored[pick].Candidate.Brand] = true
		items = append(items, scored[pick])
	}

	// Diversity swaps can pick a lower-scored brand early; present the
	// final selection in score order regardless.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].Candidate.PriceValue() < items[j].Candidate.PriceValue()
	})
	return items
}

func (e *Engine) countCloseOptions(cands []*catalog.Candidate, prefs *Preferences) int {
	lo := int(float64(prefs.MinBudget) * (1 - budgetCloseFactor))
	hi := int(float64(prefs.MaxBudget) * (1 + budgetCloseFactor))
	n := 0
	for _, c := range cands {
		if p := c.PriceValue(); p >= lo && p <= hi {
			n++
		}
	}
	return n
}

// sanitizeRAM re-extracts RAM from the title for values that look like
// a storage capacity landed in the RAM column.
func (e *Engine) sanitizeRAM(pool []*catalog.Candidate) {
	for _, c := range pool {
		if c.RAMGB != nil && *c.RAMGB > ramSanityCeilGB {
			fixed := e.extractor.SanitizeRAMGB(c.Name)
			c.RAMGB = &fixed
		}
	}
}

// dedupe drops repeat listings, first by URL, then by (name, price)
// for listings without one. Keeps the first occurrence.
func dedupe(pool []*catalog.Candidate) []*catalog.Candidate {
	seenURL := map[string]bool{}
	seenNP := map[string]bool{}
	out := make([]*catalog.Candidate, 0, len(pool))
	for _, c := range pool {
		if c.URL != "" {
			if seenURL[c.URL] {
				continue
			}
			seenURL[c.URL] = true
		}
		np := fmt.Sprintf("%s|%d", strings.ToLower(c.Name), c.PriceValue())
		if seenNP[np] {
			continue
		}
		seenNP[np] = true
		out = append(out, c)
	}
	return out
}
