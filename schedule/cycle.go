// Package schedule implements the repeating work/off-day schedule domain.
// It uses the calendar primitives to enumerate working dates and to report
// the workload a generated schedule implies.
package schedule

import (
	"fmt"

	"github.com/warp/schedule-engine/calendar"
)

// =============================================================================
// CYCLE - The repeating work-days-then-off-days pattern
// =============================================================================

// Cycle describes a repeating pattern: WorkDays consecutive working dates
// followed by OffDays consecutive non-working dates, repeating until the end
// of the period being generated.
type Cycle struct {
	WorkDays int
	OffDays  int
}

// Length returns the number of days one full repetition spans.
func (c Cycle) Length() int {
	return c.WorkDays + c.OffDays
}

// Validate checks the cycle against its allowed ranges. A cycle with no
// working days would never advance past an emission point, so it is rejected
// rather than looped on.
func (c Cycle) Validate() error {
	if c.WorkDays < 1 {
		return fmt.Errorf("%w: work days must be >= 1, got %d", calendar.ErrInvalidArgument, c.WorkDays)
	}
	if c.OffDays < 0 {
		return fmt.Errorf("%w: off days must be >= 0, got %d", calendar.ErrInvalidArgument, c.OffDays)
	}
	return nil
}

// String renders the cycle in the conventional "N on / M off" form.
func (c Cycle) String() string {
	return fmt.Sprintf("%d on / %d off", c.WorkDays, c.OffDays)
}
