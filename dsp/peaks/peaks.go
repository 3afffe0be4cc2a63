package peaks

// MaxCandidates bounds the number of local maxima recorded by [AboveHeight].
const MaxCandidates = 15

// Find returns the indices of at most maxCount peaks of x in ascending order.
//
// Every returned peak is strictly greater than minHeight, lies at index
// minDistance or later, and differs from every other returned index by more
// than minDistance. When more peaks survive than maxCount allows, the
// earliest ones are kept.
func Find(x []int32, minHeight, minDistance int32, maxCount int) []int {
	return find(x, len(x), minHeight, minDistance, maxCount)
}

// FindGuarded is [Find] over x[:len(x)-1], with the last element of x
// acting as a guard: it is never a candidate itself, but it closes a plateau
// that reaches the end of the searched region. This matches detectors that
// scan a fixed-size region of a larger buffer and read one sample past it.
// x must hold at least one element.
func FindGuarded(x []int32, minHeight, minDistance int32, maxCount int) []int {
	if len(x) == 0 {
		return []int{}
	}

	return find(x, len(x)-1, minHeight, minDistance, maxCount)
}

func find(x []int32, n int, minHeight, minDistance int32, maxCount int) []int {
	if maxCount <= 0 {
		return []int{}
	}

	locs := aboveHeight(x, n, minHeight)
	locs = RemoveClose(x, locs, minDistance)

	if len(locs) > maxCount {
		locs = locs[:maxCount]
	}

	return locs
}

// AboveHeight returns the first index of every local maximum (or plateau)
// of x that exceeds minHeight, in scan order, capped at [MaxCandidates].
//
// The first and last samples are never peaks. A plateau that runs into the
// end of x has no right edge and is not reported.
func AboveHeight(x []int32, minHeight int32) []int {
	return aboveHeight(x, len(x), minHeight)
}

// aboveHeight scans candidates in x[:n]; a plateau reaching n is closed by
// x[n] when it exists.
func aboveHeight(x []int32, n int, minHeight int32) []int {
	locs := make([]int, 0, MaxCandidates)

	i := 1
	for i < n-1 {
		if x[i] <= minHeight || x[i] <= x[i-1] {
			i++
			continue
		}

		width := 1
		for i+width < n && x[i] == x[i+width] {
			width++
		}

		if i+width < len(x) && x[i] > x[i+width] && len(locs) < MaxCandidates {
			locs = append(locs, i)
			i += width + 1
		} else {
			i += width
		}
	}

	return locs
}

// RemoveClose drops every peak in locs that lies within minDistance samples
// of a taller kept peak and returns the survivors in ascending order.
// The sweep starts from a virtual peak at index -1, so peaks at indices
// below minDistance are dropped as well. locs is reordered in place.
func RemoveClose(x []int32, locs []int, minDistance int32) []int {
	kept := suppress(x, locs, minDistance)
	sortAscend(kept)

	return kept
}

// suppress sorts locs by descending value and sweeps it strongest first.
// The result shares storage with locs and stays in descending value order.
func suppress(x []int32, locs []int, minDistance int32) []int {
	sortIndicesDescend(x, locs)

	d := int(minDistance)
	kept := locs[:0]

	for _, loc := range locs {
		if loc+1 <= d || tooClose(loc, kept, d) {
			continue
		}

		kept = append(kept, loc)
	}

	return kept
}

func tooClose(loc int, kept []int, minDistance int) bool {
	for _, k := range kept {
		dist := loc - k
		if dist <= minDistance && dist >= -minDistance {
			return true
		}
	}

	return false
}

// sortAscend is a stable insertion sort; peak lists are short.
func sortAscend(v []int) {
	for i := 1; i < len(v); i++ {
		tmp := v[i]

		j := i
		for ; j > 0 && tmp < v[j-1]; j-- {
			v[j] = v[j-1]
		}

		v[j] = tmp
	}
}

// sortIndicesDescend orders idx by descending x[idx], keeping the original
// order among equal values.
func sortIndicesDescend(x []int32, idx []int) {
	for i := 1; i < len(idx); i++ {
		tmp := idx[i]

		j := i
		for ; j > 0 && x[tmp] > x[idx[j-1]]; j-- {
			idx[j] = idx[j-1]
		}

		idx[j] = tmp
	}
}
