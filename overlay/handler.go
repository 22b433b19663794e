// SPDX-License-Identifier: Unlicense OR MIT

package overlay

// TapHandler responds to taps on a dimmed area. It is either a
// TapFunc or a TargetAction.
type TapHandler interface {
	isTapHandler()
}

// TapFunc is called with the presented content.
type TapFunc func(presented any)

// ActionTarget performs named actions.
type ActionTarget interface {
	Perform(action string, sender any)
}

// TargetAction performs Action on Target with the presented content
// as sender.
type TargetAction struct {
	Target ActionTarget
	Action string
}

func (TapFunc) isTapHandler()      {}
func (TargetAction) isTapHandler() {}

// Dispatch delivers a tap to h. A nil handler, function or target
// ignores the tap.
func Dispatch(h TapHandler, presented any) {
	switch h := h.(type) {
	case TapFunc:
		if h != nil {
			h(presented)
		}
	case TargetAction:
		if h.Target != nil {
			h.Target.Perform(h.Action, presented)
		}
	case nil:
	default:
		panic("unreachable")
	}
}
