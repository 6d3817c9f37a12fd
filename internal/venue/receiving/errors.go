package receiving

import (
	"errors"
	"fmt"
)

var (
	// ErrExceedsOrdered rejects a receive quantity that would push the local
	// received quantity above the ordered quantity. Raised locally, never
	// persisted.
	ErrExceedsOrdered = errors.New("receive quantity exceeds quantity ordered")

	// ErrNegativeQuantity rejects negative receive quantities.
	ErrNegativeQuantity = errors.New("receive quantity cannot be negative")

	// ErrUnknownItem is returned when an edit references an item id that is
	// not on the order. Edits must target the original line item id, never a
	// synthetic split-row id.
	ErrUnknownItem = errors.New("unknown line item")

	// ErrOrderFinalized rejects edits against a received or cancelled order.
	ErrOrderFinalized = errors.New("purchase order is finalized")
)

// CommitError reports a failed commit batch. The pending edit state is left
// untouched by the caller so the user can retry; item updates that already
// succeeded stay persisted (they are idempotent and safe to re-send).
type CommitError struct {
	Failed int   // number of item updates that failed
	Total  int   // number of item updates in the batch
	Err    error // first underlying failure
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit failed: %d/%d item updates failed: %v", e.Failed, e.Total, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}
