package ports

import (
	"github.com/mikey/ceknomor/internal/core"
)

// SlotStore is a history slot backend holding resources until stopped
type SlotStore interface {
	core.HistorySlot

	// Stop releases connections and files
	Stop()
}
