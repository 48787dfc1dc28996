package grain

// IndexAt locates the grain whose interval contains target using a binary
// search over the sorted, contiguous sequence. It returns the grain's index
// and true, or (0, false) when target falls before the first grain or at or
// after the last grain's end. The comparator is derived from Contains:
// targets below a grain's Start move left, targets at or above its End move
// right, so a grain's End sample belongs to the next grain.
func (s Sequence) IndexAt(target int64) (int, bool) {
	s.mustNotBeEmpty()

	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		g := s[mid]
		switch {
		case target < g.Start:
			hi = mid - 1
		case target >= g.End:
			lo = mid + 1
		default:
			return mid, true
		}
	}
	return 0, false
}

// IndexWithin is IndexAt with an explicit upper bound, typically the total
// track length. Targets at or beyond the bound short-circuit to (0, false)
// without searching; the view layer uses that to clamp to the last grain.
func (s Sequence) IndexWithin(target, upperBound int64) (int, bool) {
	if target >= upperBound {
		return 0, false
	}
	return s.IndexAt(target)
}
