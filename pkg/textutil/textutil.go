// Package textutil holds small string helpers shared by reports and logs.
package textutil

// Head returns at most n items and how many were left out.
func Head(items []string, n int) ([]string, int) {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items, 0
	}
	return items[:n], len(items) - n
}

// Preview returns the first n runes of s followed by "...".
func Preview(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r) + "..."
}
