// Package output renders recommendation results and catalog listings
// as tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kaganyildiz/laprop/internal/catalog"
	"github.com/kaganyildiz/laprop/internal/recommend"
)

// JSON writes data as JSON to stdout
func JSON(data interface{}) error {
	return JSONTo(os.Stdout, data)
}

// JSONTo writes data as JSON to the given writer
func JSONTo(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(convert(data))
}

// Output writes data in the specified format
func Output(format string, data interface{}) error {
	switch format {
	case "json":
		return JSON(data)
	case "table", "":
		return Table(data)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// convert swaps domain types for their JSON shapes; anything else is
// encoded as-is.
func convert(data interface{}) interface{} {
	switch v := data.(type) {
	case *recommend.Result:
		return resultJSON(v)
	case []*catalog.Candidate:
		items := make([]candidatePayload, len(v))
		for i, c := range v {
			items[i] = candidateJSON(c)
		}
		return items
	default:
		return data
	}
}

type resultPayload struct {
	Usage    string        `json:"usage"`
	AvgScore float64       `json:"avg_score"`
	PriceMin int           `json:"price_min"`
	PriceMax int           `json:"price_max"`
	Relaxed  bool          `json:"relaxed"`
	Items    []itemPayload `json:"items"`
}

type itemPayload struct {
	Rank      int     `json:"rank"`
	Score     float64 `json:"score"`
	Breakdown string  `json:"score_breakdown"`
	candidatePayload
}

type candidatePayload struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Brand     string   `json:"brand"`
	Price     *int     `json:"price,omitempty"`
	RAMGB     *int     `json:"ram_gb,omitempty"`
	StorageGB *int     `json:"storage_gb,omitempty"`
	ScreenIn  *float64 `json:"screen_in,omitempty"`
	CPU       *string  `json:"cpu,omitempty"`
	GPU       string   `json:"gpu"`
	CPUScore  float64  `json:"cpu_score"`
	GPUScore  float64  `json:"gpu_score"`
	OS        string   `json:"os"`
	Source    string   `json:"source,omitempty"`
	URL       string   `json:"url,omitempty"`
}

func resultJSON(res *recommend.Result) resultPayload {
	payload := resultPayload{
		Usage:    res.UsageLabel,
		AvgScore: res.AvgScore,
		PriceMin: res.PriceMin,
		PriceMax: res.PriceMax,
		Relaxed:  res.Relaxed,
		Items:    make([]itemPayload, len(res.Items)),
	}
	for i, item := range res.Items {
		payload.Items[i] = itemPayload{
			Rank:             i + 1,
			Score:            item.Score,
			Breakdown:        item.Breakdown.String(),
			candidatePayload: candidateJSON(item.Candidate),
		}
	}
	return payload
}

func candidateJSON(c *catalog.Candidate) candidatePayload {
	return candidatePayload{
		ID:        c.ID,
		Name:      c.Name,
		Brand:     c.Brand,
		Price:     c.Price,
		RAMGB:     c.RAMGB,
		StorageGB: c.StorageGB,
		ScreenIn:  c.ScreenIn,
		CPU:       c.CPU,
		GPU:       c.GPU,
		CPUScore:  c.CPUScore,
		GPUScore:  c.GPUScore,
		OS:        c.OS.String(),
		Source:    c.Source,
		URL:       c.URL,
	}
}
