// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzw

package lzw

// ratioTracker implements the adaptive-CLEAR heuristic of spec §4.2.3. It is
// consulted only once the dictionary is full and a new entry would
// otherwise be discarded (the caller enforces that); internally it still
// gates its own sampling to once per checkInterval input bytes, exactly the
// way original_source/lzw.c's checkRatio does by combining the periodic
// sample and the clear decision into one call.
type ratioTracker struct {
	best        float64
	checkOffset int64
}

func newRatioTracker() *ratioTracker {
	return &ratioTracker{checkOffset: checkInterval}
}

// shouldClear reports whether the encoder should clear its dictionary now,
// given the running input/output byte counts. It only samples (and only
// ever returns true) once inputBytes has reached the next checkpoint.
func (t *ratioTracker) shouldClear(inputBytes, outputBytes int64) bool {
	if inputBytes < t.checkOffset {
		return false
	}
	t.checkOffset = inputBytes + checkInterval

	ratio := float64(inputBytes) / float64(outputBytes)
	if ratio >= t.best {
		t.best = ratio
		return false
	}
	t.best = 0
	return true
}
