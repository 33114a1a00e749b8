package ga

import "math"

// eliteEpsilon absorbs float noise in size*fraction (100*0.07 is
// 7.000000000000001) so the ceiling lands on the intended integer.
const eliteEpsilon = 1e-9

// SelectionShare returns how many individuals the selector at position i of
// k must produce so that k selectors jointly produce total. Every selector
// gets floor(total/k); the last one also absorbs the remainder.
func SelectionShare(i, k, total int) int {
	each := total / k
	if i < k-1 {
		return each
	}
	return total - (k-1)*each
}

// SelectionShares returns the shares of all k selectors in registration order
func SelectionShares(k, total int) []int {
	shares := make([]int, k)
	for i := range shares {
		shares[i] = SelectionShare(i, k, total)
	}
	return shares
}

// EliteCount returns ceil(size*fraction), bounded by size
func EliteCount(size int, fraction float64) int {
	if fraction <= 0 || size <= 0 {
		return 0
	}
	n := int(math.Ceil(float64(size)*fraction - eliteEpsilon))
	if n > size {
		n = size
	}
	return n
}
