package settings

import (
	"github.com/go-drift/settings/pkg/controls"
	"github.com/go-drift/settings/pkg/errors"
	"github.com/go-drift/settings/pkg/handlers"
	"github.com/go-drift/settings/pkg/store"
)

// walkOp selects the per-node operation a traversal applies.
type walkOp int

const (
	opSave walkOp = iota
	opLoad
	opConnect
	opCompare
	opCollect
)

func (op walkOp) String() string {
	switch op {
	case opSave:
		return "save"
	case opLoad:
		return "load"
	case opConnect:
		return "connect"
	case opCompare:
		return "compare"
	case opCollect:
		return "collect"
	default:
		return "unknown"
	}
}

// walk visits c and, depending on handler ownership, its children. The
// return value is meaningful only for opCompare, where true means a
// difference was found and the traversal stops.
//
// Recursion policy: transparent containers (windows, group boxes) are
// always recursed into. Otherwise children are visited only when no
// exact-kind handler claimed the node — an exact match owns composite
// state and its internal children must not be independently persisted,
// while an ancestor-fallback match handles the node only generically.
// Skipped and unnamed nodes contribute no operation but still recurse
// under the same policy, so an unnamed layout container never hides its
// named descendants.
func (m *Manager) walk(c controls.Control, st store.Store, op walkOp, collected *[]controls.Control) bool {
	handler, exact := m.registry.Resolve(c)

	if handler != nil && !m.shouldSkip(c) {
		if m.applyOp(c, handler, st, op, collected) && op == opCompare {
			return true
		}
	}

	if isTransparentContainer(c) || !exact {
		if host, ok := c.(controls.ContentHost); ok {
			if content := host.Content(); content != nil {
				if m.walk(content, st, op, collected) {
					return true
				}
			}
		} else if container, ok := c.(controls.Container); ok {
			for _, child := range container.Children() {
				if m.walk(child, st, op, collected) {
					return true
				}
			}
		}
	}
	return false
}

// applyOp runs a single handler operation on c with panic recovery. A
// handler failure is logged and reported; for opCompare it counts as a
// difference (fail safe toward "assume dirty"), for every other operation
// the traversal simply continues.
func (m *Manager) applyOp(c controls.Control, h handlers.Handler, st store.Store, op walkOp, collected *[]controls.Control) (diff bool) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         "settings.walk/" + op.String(),
				Value:      r,
				Control:    c.Name(),
				StackTrace: errors.CaptureStack(),
			})
			if op == opCompare {
				diff = true
			}
		}
	}()

	switch op {
	case opSave:
		if err := h.Save(c, st); err != nil {
			m.reportOpError(op, c, err)
		}
	case opLoad:
		// Block the control's own signals while the value is applied so
		// loading never looks like a user edit.
		blocker, blockable := c.(controls.SignalBlocker)
		if blockable {
			blocker.SetBlockSignals(true)
		}
		err := h.Load(c, st)
		if blockable {
			blocker.SetBlockSignals(false)
		}
		if err != nil {
			m.reportOpError(op, c, err)
		}
	case opConnect:
		m.connectControl(c, h)
	case opCompare:
		d, err := h.Compare(c, st)
		if err != nil {
			m.reportOpError(op, c, err)
			return true
		}
		if d {
			m.log.Info().Str("control", c.Name()).Str("kind", c.Kind().Name()).
				Msg("difference found")
		}
		return d
	case opCollect:
		if collected != nil {
			*collected = append(*collected, c)
		}
	}
	return false
}

func (m *Manager) reportOpError(op walkOp, c controls.Control, err error) {
	errors.Report(&errors.SettingsError{
		Op:      "settings.walk/" + op.String(),
		Kind:    errors.KindHandler,
		Control: c.Name(),
		Err:     err,
	})
}

// isTransparentContainer reports whether c is always recursed into
// regardless of handler ownership.
func isTransparentContainer(c controls.Control) bool {
	kind := c.Kind()
	if kind == nil {
		return false
	}
	return kind.DerivesFrom(controls.KindMainWindow) || kind.DerivesFrom(controls.KindGroupBox)
}
