package models

import (
	"fmt"
	"math"
	"time"
)

// WindowSeconds is the width of a tumbling window in whole seconds.
type WindowSeconds int64

func NewWindowSeconds(seconds int) (WindowSeconds, error) {
	if seconds <= 0 {
		return 0, fmt.Errorf("window seconds must be positive, got %d", seconds)
	}
	return WindowSeconds(seconds), nil
}

func (w WindowSeconds) Duration() time.Duration {
	return time.Duration(w) * time.Second
}

// Key returns the start of the window containing ts: floor(ts) rounded down to
// a multiple of w. Pre-epoch timestamps still round toward negative infinity.
func (w WindowSeconds) Key(ts float64) int64 {
	sec := int64(math.Floor(ts))
	width := int64(w)
	rem := sec % width
	if rem < 0 {
		rem += width
	}
	return sec - rem
}

// KeyOf is Key for a time.Time.
func (w WindowSeconds) KeyOf(t time.Time) int64 {
	return w.Key(float64(t.Unix()))
}
