package receiving

import (
	"fmt"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/entity"
	"github.com/shopspring/decimal"
)

// Action types accepted from clients. The client submits its edit session as
// an ordered action list; replaying it through the engine makes the server
// the single validator of quantity bounds and status rules.
const (
	ActionReceiveItem      = "receive_item"
	ActionMarkDamaged      = "mark_damaged"
	ActionMarkNotProcessed = "mark_not_processed"
	ActionUndoStatus       = "undo_status"
	ActionReceiveAll       = "receive_all"
	ActionReceiveNone      = "receive_none"
)

// Action is one user edit in a receiving session.
type Action struct {
	Type           string          `json:"type" binding:"required"`
	ItemID         string          `json:"item_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	SplitRemaining bool            `json:"split_remaining"`
}

// Apply replays an ordered action list on top of a fresh state initialized
// from the persisted items. The first invalid action aborts the replay.
func Apply(items []entity.POItem, actions []Action) (State, error) {
	st := NewState(items)
	var err error
	for i, a := range actions {
		switch a.Type {
		case ActionReceiveItem:
			st, err = ReceiveItem(items, st, a.ItemID, a.Quantity, a.SplitRemaining)
		case ActionMarkDamaged:
			st, err = MarkDamaged(items, st, a.ItemID)
		case ActionMarkNotProcessed:
			st, err = MarkNotProcessed(items, st, a.ItemID)
		case ActionUndoStatus:
			st, err = UndoStatus(items, st, a.ItemID)
		case ActionReceiveAll:
			st = ReceiveAll(items)
		case ActionReceiveNone:
			st = ReceiveNone(items)
		default:
			err = fmt.Errorf("action %d: unknown type %q", i, a.Type)
		}
		if err != nil {
			return State{}, fmt.Errorf("action %d (%s): %w", i, a.Type, err)
		}
	}
	return st, nil
}
