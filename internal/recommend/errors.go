package recommend

import "fmt"

// Stage names the pipeline step that produced an empty result.
type Stage string

const (
	StageBudget Stage = "budget"
	StageScreen Stage = "screen"
	StageUsage  Stage = "usage"
	StageGaming Stage = "gaming"
)

// EmptyResultError reports that a pipeline stage eliminated every
// candidate. CloseOptions counts listings just outside the budget when
// the budget stage failed; Hint carries a user-facing suggestion.
type EmptyResultError struct {
	Stage        Stage
	CloseOptions int
	Hint         string
}

func (e *EmptyResultError) Error() string {
	msg := fmt.Sprintf("no candidates left after %s filter", e.Stage)
	if e.CloseOptions > 0 {
		msg += fmt.Sprintf(" (%d close options within 10%% of the budget)", e.CloseOptions)
	}
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}
