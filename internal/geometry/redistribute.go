package geometry

import (
	"errors"
	"fmt"
)

// DefaultMinSize is the floor no sibling may shrink below during a drag.
const DefaultMinSize = 80

var (
	ErrEmptySnapshot   = errors.New("empty snapshot")
	ErrInvalidIndex    = errors.New("divider index out of range")
	ErrNegativeMinSize = errors.New("negative min size")
)

// Result holds the outcome of redistributing a pan across siblings.
type Result struct {
	// NextSizes has one entry per snapshot entry.
	NextSizes []float64
	// Remainder is the part of the pan that could not be taken from any
	// sibling because it hit the floor.
	Remainder float64
}

// Redistribute moves the divider sitting between sibling currentIndex and
// currentIndex+1 by pan, measured against snapshot (the sibling sizes at
// drag start).
//
// A negative pan shrinks the siblings before the divider, scanning from the
// divider towards the start, and grows the sibling right after it. A
// positive pan shrinks the siblings after the divider, scanning away from
// it, and grows the sibling at currentIndex. The growing sibling receives
// exactly what was reclaimed.
func Redistribute(currentIndex int, pan float64, snapshot []float64, minSize float64) (Result, error) {
	if len(snapshot) == 0 {
		return Result{}, ErrEmptySnapshot
	}
	if minSize < 0 {
		return Result{}, ErrNegativeMinSize
	}
	if currentIndex < 0 || currentIndex >= len(snapshot) {
		return Result{}, fmt.Errorf("%w: %d of %d", ErrInvalidIndex, currentIndex, len(snapshot))
	}

	switch {
	case pan < 0:
		return panTowardStart(currentIndex, pan, snapshot, minSize)
	case pan > 0:
		return panTowardEnd(currentIndex, pan, snapshot, minSize), nil
	}

	return Result{NextSizes: Clone(snapshot)}, nil
}

// panTowardStart handles dragging up or left.
func panTowardStart(currentIndex int, pan float64, snapshot []float64, minSize float64) (Result, error) {
	expanding := currentIndex + 1
	if expanding >= len(snapshot) {
		return Result{}, fmt.Errorf("%w: no sibling after divider %d", ErrInvalidIndex, currentIndex)
	}

	next := make([]float64, len(snapshot))
	remainder := -pan

	for i := len(snapshot) - 1; i >= 0; i-- {
		if i >= expanding {
			next[i] = snapshot[i]
			continue
		}
		size := shrink(snapshot[i], remainder, minSize)
		remainder -= snapshot[i] - size
		next[i] = size
	}

	next[expanding] = snapshot[expanding] - pan - remainder

	return Result{NextSizes: next, Remainder: remainder}, nil
}

// panTowardEnd handles dragging down or right.
func panTowardEnd(currentIndex int, pan float64, snapshot []float64, minSize float64) Result {
	next := make([]float64, len(snapshot))
	remainder := pan

	for i := range snapshot {
		if i <= currentIndex {
			next[i] = snapshot[i]
			continue
		}
		size := shrink(snapshot[i], remainder, minSize)
		remainder -= snapshot[i] - size
		next[i] = size
	}

	next[currentIndex] = snapshot[currentIndex] + pan - remainder

	return Result{NextSizes: next, Remainder: remainder}
}

// shrink takes amount from size, never going below floor. A size that is
// already under the floor comes back as exactly floor.
func shrink(size, amount, floor float64) float64 {
	next := size - amount
	if next <= floor {
		return floor
	}
	return next
}

// Sum returns the total of sizes.
func Sum(sizes []float64) float64 {
	var total float64
	for _, s := range sizes {
		total += s
	}
	return total
}

// Clone returns a copy of sizes.
func Clone(sizes []float64) []float64 {
	out := make([]float64, len(sizes))
	copy(out, sizes)
	return out
}
