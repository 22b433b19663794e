// SPDX-License-Identifier: Unlicense OR MIT

package transition

// Curve is the timing curve of an animation.
type Curve uint8

const (
	EaseInOut Curve = iota
	EaseIn
	EaseOut
	Linear
)

// Ease maps linear progress t in [0, 1] to eased progress.
func (c Curve) Ease(t float32) float32 {
	switch c {
	case EaseInOut:
		return t * t * (3 - 2*t)
	case EaseIn:
		return t * t
	case EaseOut:
		return t * (2 - t)
	case Linear:
		return t
	default:
		panic("unreachable")
	}
}

func (c Curve) String() string {
	switch c {
	case EaseInOut:
		return "EaseInOut"
	case EaseIn:
		return "EaseIn"
	case EaseOut:
		return "EaseOut"
	case Linear:
		return "Linear"
	default:
		panic("unreachable")
	}
}
