package pipeline

import "sort"

// selectTop picks the n highest-scoring rows. Ties break toward the
// earlier document position, so identical inputs always select the same
// rows. n larger than the row count is clamped. The picked rows are
// returned re-sorted into document order: summaries preserve narrative
// order, not score order.
func selectTop(scores []float64, n int) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if scores[a] != scores[b] {
			return scores[a] > scores[b]
		}
		return a < b
	})
	if n > len(order) {
		n = len(order)
	}
	picked := order[:n]
	sort.Ints(picked)
	return picked
}
