package eval

// Similarity computes a Ratcliff/Obershelp matching ratio in [0,1]
// between two strings: 2*M/T where M is the total length of matching
// blocks and T the combined length. Symmetric. Two empty strings are
// fully similar; an empty string against a non-empty one scores zero.
func Similarity(a, b string) float64 {
	ar, br := []rune(a), []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 1
	}
	m := matchingBlocks(ar, br)
	return 2 * float64(m) / float64(total)
}

// matchingBlocks finds the longest common contiguous block and recurses
// on the unmatched pieces to either side.
func matchingBlocks(a, b []rune) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingBlocks(a[:ai], b[:bi])
	total += matchingBlocks(a[ai+size:], b[bi+size:])
	return total
}

func longestCommonBlock(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// prev[j] is the length of the common suffix ending at a[i-1], b[j-1].
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > size {
					size = cur[j]
					ai = i - size
					bi = j - size
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return ai, bi, size
}
