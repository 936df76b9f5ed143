package rowan

// CeilDiv returns a divided by b, rounded toward positive infinity.
// Used for sizing tile windows that must cover a partial trailing tile.
// Panics if b is zero.
func CeilDiv(a, b int) int {
	if b == 0 {
		panic("rowan: CeilDiv by zero")
	}
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}

// ContainsAll reports whether haystack contains every element of needles.
// An empty needles slice is trivially contained.
func ContainsAll[T comparable](haystack, needles []T) bool {
	for _, want := range needles {
		found := false
		for _, have := range haystack {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
