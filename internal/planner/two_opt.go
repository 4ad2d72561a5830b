package planner

// A reversal must shorten the path by more than this to count as an
// improvement; prevents endless swaps on floating-point noise.
const twoOptImprovementKm = 1e-3

// improveOrder2Opt refines an open path with repeated 2-opt passes: reverse a
// segment whenever that shortens the total path, until a full pass finds no
// improvement or the pass cap is reached. The first element stays pinned so
// the tour keeps its start city.
func improveOrder2Opt(dist [][]float64, order []int, passes int) []int {
	if passes <= 0 {
		passes = 1
	}

	best := append([]int(nil), order...)
	bestDist := pathDistance(dist, best)
	n := len(best)

	for p := 0; p < passes; p++ {
		improved := false
		for i := 1; i < n-1; i++ {
			for k := i + 1; k < n; k++ {
				cand := twoOptSwap(best, i, k)
				d := pathDistance(dist, cand)
				if d+twoOptImprovementKm < bestDist {
					best = cand
					bestDist = d
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	return best
}

// twoOptSwap returns the order with positions i..k reversed.
func twoOptSwap(order []int, i, k int) []int {
	out := make([]int, len(order))
	copy(out, order[:i])
	pos := i
	for j := k; j >= i; j-- {
		out[pos] = order[j]
		pos++
	}
	copy(out[pos:], order[k+1:])
	return out
}

// pathDistance sums consecutive-leg distances over an open path.
func pathDistance(dist [][]float64, order []int) float64 {
	total := 0.0
	for i := 0; i < len(order)-1; i++ {
		total += dist[order[i]][order[i+1]]
	}
	return total
}
