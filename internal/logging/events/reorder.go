package events

import "github.com/atomicstack/dragmenu/internal/logging"

type ReorderTracer struct{}

type cancelReason string

const (
	CancelEscape  cancelReason = "escape"
	CancelSameRow cancelReason = "same-row"
	CancelOutside cancelReason = "outside"
)

var Reorder = ReorderTracer{}

func (ReorderTracer) Drag(key string) {
	logging.Trace("reorder.drag", map[string]interface{}{"drag": key})
}

func (ReorderTracer) Drop(drag, hover, kind string) {
	logging.Trace("reorder.drop", map[string]interface{}{"drag": drag, "hover": hover, "kind": kind})
}

// Reject records a drop that left the tree unchanged.
func (ReorderTracer) Reject(drag, hover, kind string) {
	logging.Trace("reorder.reject", map[string]interface{}{"drag": drag, "hover": hover, "kind": kind})
}

func (ReorderTracer) Cancel(drag string, reason cancelReason) {
	logging.Trace("reorder.cancel", map[string]interface{}{"drag": drag, "reason": string(reason)})
}
