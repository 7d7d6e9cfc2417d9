package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/kaganyildiz/laprop/internal/catalog"
	"github.com/kaganyildiz/laprop/internal/recommend"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case *recommend.Result:
		return resultTable(w, v)
	case []*catalog.Candidate:
		return candidatesTable(w, v)
	case map[string]int:
		return sourceCountsTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func resultTable(w io.Writer, res *recommend.Result) error {
	if len(res.Items) == 0 {
		fmt.Fprintln(w, "No recommendations.")
		return nil
	}

	fmt.Fprintf(w, "%s: %d recommendation(s)\n", res.UsageLabel, len(res.Items))
	if res.Relaxed {
		fmt.Fprintln(w, "Note: strict filters left too few results, criteria were relaxed.")
	}
	fmt.Fprintln(w)

	table := tablewriter.NewTable(w)
	table.Header("#", "Model", "Brand", "Price", "RAM", "SSD", "Screen", "Score")
	for i, item := range res.Items {
		c := item.Candidate
		if err := table.Append([]string{
			strconv.Itoa(i + 1),
			truncate(c.Name, 45),
			c.Brand,
			formatInt(c.Price),
			formatGB(c.RAMGB),
			formatGB(c.StorageGB),
			formatScreen(c.ScreenIn),
			fmt.Sprintf("%.1f", item.Score),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nAverage score: %.1f | Price range: %d - %d\n",
		res.AvgScore, res.PriceMin, res.PriceMax)
	for i, item := range res.Items {
		fmt.Fprintf(w, "%d. %s\n", i+1, item.Breakdown)
	}
	return nil
}

func candidatesTable(w io.Writer, cands []*catalog.Candidate) error {
	if len(cands) == 0 {
		fmt.Fprintln(w, "No listings stored.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("Model", "Brand", "Price", "RAM", "SSD", "CPU", "GPU", "OS", "Source")
	for _, c := range cands {
		cpu := "-"
		if c.CPU != nil {
			cpu = *c.CPU
		}
		if err := table.Append([]string{
			truncate(c.Name, 40),
			c.Brand,
			formatInt(c.Price),
			formatGB(c.RAMGB),
			formatGB(c.StorageGB),
			truncate(cpu, 20),
			truncate(c.GPU, 22),
			c.OS.String(),
			c.Source,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func sourceCountsTable(w io.Writer, counts map[string]int) error {
	sources := make([]string, 0, len(counts))
	total := 0
	for source, n := range counts {
		sources = append(sources, source)
		total += n
	}
	sort.Strings(sources)

	table := tablewriter.NewTable(w)
	table.Header("Source", "Listings")
	for _, source := range sources {
		if err := table.Append([]string{source, strconv.Itoa(counts[source])}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Total: %d\n", total)
	return nil
}

func formatInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func formatGB(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d GB", *v)
}

func formatScreen(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f\"", *v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
