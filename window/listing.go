package window

// add1/sub1/safeAdd are the cyclic-navigation helpers the spec calls for
// (§9), parameterized by the cycle length since Go has no const generics.
func safeAdd(a, b, limit int) int {
	if limit == 0 {
		return 0
	}
	return (a + b) % limit
}

func add1(v, limit int) int { return safeAdd(v, 1, limit) }
func sub1(v, limit int) int { return safeAdd(v, limit-1, limit) }

// NextFile and PrevFile move the listing's focused index, wrapping
// modulo the number of files currently in the directory.
func (w *Window) NextFile(numFiles int) { w.FocusedFile = add1(w.FocusedFile, numFiles) }
func (w *Window) PrevFile(numFiles int) { w.FocusedFile = sub1(w.FocusedFile, numFiles) }

// ClampFocusedFile keeps FocusedFile in range after the directory changes
// size (e.g. a new file was created).
func (w *Window) ClampFocusedFile(numFiles int) {
	if numFiles == 0 {
		w.FocusedFile = 0
		return
	}
	if w.FocusedFile >= numFiles {
		w.FocusedFile = numFiles - 1
	}
}
