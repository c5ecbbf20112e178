package ui

// Down moves the cursor one row down a list of n rows, wrapping to the top.
func Down(p, n int) int {
	p++
	if p >= n {
		return 0
	}
	return p
}

// Up moves the cursor one row up a list of n rows, wrapping to the bottom.
// An empty list always yields 0.
func Up(p, n int) int {
	p--
	if p < 0 || p >= n {
		if n == 0 {
			return 0
		}
		return n - 1
	}
	return p
}

// FirstVisible returns the first list row shown in a box of height h
// (borders included) when the cursor is at p. The cursor stays on the last
// inner row once it scrolls past the fold.
func FirstVisible(p, h int) int {
	return max(0, p-(h-3))
}
