// Package anim easing functions and sentinel errors.
package anim

import (
	"errors"
	"time"
)

// DefaultDuration is the standard entrance-animation length.
const DefaultDuration = 800 * time.Millisecond

// Easing names accepted by EasingByName (and the config layer).
const (
	EasingLinear       = "linear"
	EasingOutCubic     = "ease-out-cubic"
	EasingInOutQuad    = "ease-in-out-quad"
	easingHalfProgress = 0.5 // split point of the in-out curve
)

// ErrUnknownEasing indicates an easing name outside the registry.
var ErrUnknownEasing = errors.New("anim: unknown easing name")

// Easing reshapes a progress value; it must map 0→0 and 1→1 and is only
// ever called with t already clamped to [0, 1].
type Easing func(t float64) float64

// Linear leaves progress unchanged.
func Linear(t float64) float64 { return t }

// EaseOutCubic starts fast and decelerates: 1 - (1-t)³.
func EaseOutCubic(t float64) float64 {
	u := 1 - t

	return 1 - u*u*u
}

// EaseInOutQuad accelerates through the first half and decelerates through
// the second.
func EaseInOutQuad(t float64) float64 {
	if t < easingHalfProgress {
		return 2 * t * t
	}
	u := -2*t + 2

	return 1 - u*u/2
}

// EasingByName resolves a configuration string to its easing function.
// An empty name selects Linear.
func EasingByName(name string) (Easing, error) {
	switch name {
	case "", EasingLinear:
		return Linear, nil
	case EasingOutCubic:
		return EaseOutCubic, nil
	case EasingInOutQuad:
		return EaseInOutQuad, nil
	default:
		return nil, ErrUnknownEasing
	}
}

// Clamp01 constrains progress to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}

	return t
}
