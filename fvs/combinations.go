package fvs

// forEachCombination calls fn with every k-subset of {0..n-1} as ascending
// indices, in lexicographic order, until fn returns false. The slice passed to
// fn is reused between calls.
//
// Complexity: O(C(n,k) · k).
func forEachCombination(n, k int, fn func(idx []int) bool) {
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return
		}
		// Advance the rightmost index that can still move.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// pick maps indices to IDs, reusing buf.
func pick(ids []string, idx []int, buf []string) []string {
	buf = buf[:0]
	for _, i := range idx {
		buf = append(buf, ids[i])
	}

	return buf
}
