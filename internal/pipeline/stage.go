package pipeline

import (
	"errors"
	"fmt"

	"indicator-engine/internal/domain"
	"indicator-engine/internal/fx"
	"indicator-engine/internal/rescale"
)

// workItem carries one record through the pipeline stages.
type workItem struct {
	rec    domain.IndicatorRecord
	bucket domain.Bucket
	rule   string // classification rule that matched, "" when fell through
	det    domain.FXDetection

	value   float64 // running normalized value
	unit    string  // running normalized unit
	explain domain.Explain

	exempt   bool
	mismatch bool       // peer-group unit type disagrees with majority
	failure  *ItemError // set once, first failing stage wins
}

// stageFunc processes a single item. Returning an error fails the item,
// never the batch.
type stageFunc func(it *workItem) error

// runStage applies fn to every live item, isolating per-item failures.
// The stage contract: empty input skips straight to done; a processing
// failure moves only that item to the error state; everything else
// completes. Exempted and already-failed items are skipped.
func runStage(name string, items []*workItem, fn stageFunc) {
	if len(items) == 0 {
		return
	}
	for _, it := range items {
		if it.exempt || it.failure != nil {
			continue
		}
		if err := fn(it); err != nil {
			it.failure = &ItemError{
				RecordID: it.rec.ID,
				Type:     errorType(err),
				Message:  fmt.Sprintf("%s: %v", name, err),
			}
		}
	}
}

// errorType maps an error to the taxonomy used in Result.Errors.
func errorType(err error) string {
	var missing *fx.MissingRateError
	if errors.As(err, &missing) {
		return ErrorTypeMissingRate
	}
	var invalid *fx.InvalidRateError
	if errors.As(err, &invalid) {
		return ErrorTypeInvalidRate
	}
	if errors.Is(err, rescale.ErrUnknownPeriod) {
		return ErrorTypeUnknownPeriod
	}
	return ErrorTypeProcessing
}
