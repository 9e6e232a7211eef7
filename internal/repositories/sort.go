package repositories

// Sort order values accepted by the query operations.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// orderMultiplier maps a sort order to a comparator sign: ascending
// keeps the natural comparison, descending inverts it. Anything other
// than "asc" falls back to descending, the API default.
func orderMultiplier(order string) int {
	if order == OrderAsc {
		return 1
	}
	return -1
}

// lessInt builds a directed comparison for numeric sort keys.
func lessInt(a, b int64, mult int) bool {
	if mult < 0 {
		return a > b
	}
	return a < b
}

// lessString builds a directed comparison for lexicographic sort keys.
func lessString(a, b string, mult int) bool {
	if mult < 0 {
		return a > b
	}
	return a < b
}
