package layout

import "math"

// Distribute splits available cells between siblings the way a flex row
// with grow 1 and shrink 1 would: each sibling starts from its basis, extra
// space is shared equally, missing space is taken in proportion to the
// basis, and no sibling goes below its minimum. The result is rounded so
// that it sums to available whenever the minimums allow it.
func Distribute(available int, bases []float64, mins []int) []int {
	n := len(bases)
	if n == 0 {
		return nil
	}
	if available < 0 {
		available = 0
	}

	sizes := make([]float64, n)
	frozen := make([]bool, n)

	for {
		space := float64(available)
		var basisSum float64
		open := 0
		for i := range bases {
			if frozen[i] {
				space -= sizes[i]
				continue
			}
			space -= bases[i]
			basisSum += bases[i]
			open++
		}
		if open == 0 {
			break
		}

		for i := range bases {
			if frozen[i] {
				continue
			}
			switch {
			case space >= 0:
				sizes[i] = bases[i] + space/float64(open)
			case basisSum > 0:
				sizes[i] = bases[i] + space*bases[i]/basisSum
			default:
				sizes[i] = bases[i] + space/float64(open)
			}
		}

		violated := false
		for i := range bases {
			if !frozen[i] && sizes[i] < float64(mins[i]) {
				sizes[i] = float64(mins[i])
				frozen[i] = true
				violated = true
			}
		}
		if !violated {
			break
		}
	}

	return round(sizes, available)
}

// round converts sizes to whole cells, carrying the fractions so adjacent
// edges line up, then trims from the end when the total overflows.
func round(sizes []float64, available int) []int {
	out := make([]int, len(sizes))
	var acc float64
	prev := 0
	for i, s := range sizes {
		acc += s
		edge := int(math.Round(acc))
		out[i] = max(edge-prev, 0)
		prev = edge
	}

	over := prev - available
	for i := len(out) - 1; i >= 0 && over > 0; i-- {
		cut := min(out[i], over)
		out[i] -= cut
		over -= cut
	}
	return out
}
