package timeseries

// LongestRun returns the length of the longest contiguous run of true
// values in cond. A run starts at the first element and wherever the
// value differs from its predecessor. Returns 0 for an empty sequence
// or one with no true element.
func LongestRun(cond []bool) int {
	best := 0
	current := 0
	for _, v := range cond {
		if v {
			current++
			if current > best {
				best = current
			}
		} else {
			current = 0
		}
	}
	return best
}
