package bwt

// rotationBucket is a set of rotation start offsets that share their first
// `step` bytes.
type rotationBucket struct {
	starts []int
	step   int
}

// radixSortRotations sorts the starting offsets of every cyclic rotation of
// `text` in DESCENDING lexicographic order.
//
// Pending buckets live on an explicit stack rather than the call stack. Each
// bucket is split on the byte at offset `step` into sub-buckets that are pushed
// in ascending key order, so they come back off the stack largest first. A
// bucket is finished once it holds fewer than two offsets, or once every byte
// of the rotation has been compared (the rotations in it are identical).
//
// Sub-buckets are carved out of their parent's slice in place, so the only
// extra memory is the stack and one scratch buffer, both O(len(text)).
func radixSortRotations(text []byte) []int {
	size := len(text)
	all := make([]int, size)
	for i := range all {
		all[i] = i
	}

	sorted := make([]int, 0, size)
	scratch := make([]int, size)
	stack := []rotationBucket{{starts: all, step: 0}}

	for len(stack) > 0 {
		bucket := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(bucket.starts) < 2 || bucket.step >= size {
			sorted = append(sorted, bucket.starts...)
			continue
		}

		var counts [256]int
		for _, start := range bucket.starts {
			counts[text[(start+bucket.step)%size]]++
		}

		var offsets [256]int
		total := 0
		for key, count := range counts {
			offsets[key] = total
			total += count
		}

		// Stable counting sort of this bucket by key, then copy it back so the
		// sub-buckets can share the parent's storage.
		for _, start := range bucket.starts {
			key := text[(start+bucket.step)%size]
			scratch[offsets[key]] = start
			offsets[key]++
		}
		copy(bucket.starts, scratch[:len(bucket.starts)])

		low := 0
		for _, count := range counts {
			if count == 0 {
				continue
			}
			stack = append(
				stack,
				rotationBucket{
					starts: bucket.starts[low : low+count],
					step:   bucket.step + 1,
				},
			)
			low += count
		}
	}
	return sorted
}
