package textutil

// Ratio computes a similarity ratio in [0,1] between a and b: twice the number
// of characters matched by the longest-matching-block recursion divided by the
// combined length. Two empty strings are considered identical (ratio 1).
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	matched := matchCount(ra, rb, 0, len(ra), 0, len(rb))
	return 2 * float64(matched) / float64(total)
}

// matchCount sums the sizes of all matching blocks inside the given window by
// locating the longest block and recursing on both sides of it.
func matchCount(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	return size +
		matchCount(a, b, alo, i, blo, j) +
		matchCount(a, b, i+size, ahi, j+size, bhi)
}

// longestMatch finds the longest run of equal characters within
// a[alo:ahi] and b[blo:bhi]. Ties resolve to the leftmost block in a, then
// the leftmost in b, because longer runs are only accepted on strict
// improvement.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo
	runLengths := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for j := blo; j < bhi; j++ {
			if a[i] != b[j] {
				continue
			}
			k := runLengths[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		runLengths = next
	}
	return besti, bestj, bestsize
}
