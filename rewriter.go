package main

// Window is the maximum lookahead used by the forward scan in R1.
// Most other rules look at a fixed small prefix of T[i..]; R24 and R36
// scan forward without this bound, and R37 searches 32 lines either
// side of the cursor.
const Window = 30

// Run performs peephole optimisation passes over lines until a pass
// fires zero counted rules (R25's reorder is not counted), then returns
// the final emission buffer. At least one
// pass always runs; repeating to a fixpoint is permitted,
// provided the catalogue is stable; R1-R37 each strictly shrink or
// preserve the remaining line count and the cursor never regresses, so
// repetition terminates.
func Run(lines []Line, bssNames map[string]struct{}) []Line {
	rw := NewRewriter(lines, bssNames)
	for {
		rw.runPass()
		if rw.opted == 0 {
			return rw.out
		}
		rw.lines = rw.out
	}
}

// RunOnce performs exactly one optimisation pass and reports how many
// rules fired, for callers (and tests) that want pass-by-pass control.
func RunOnce(lines []Line, bssNames map[string]struct{}) (out []Line, opted int) {
	rw := NewRewriter(lines, bssNames)
	rw.runPass()
	return rw.out, rw.opted
}

// runPass is the single forward scan: at each cursor position the
// catalogue is attempted in a fixed order; the first rule whose
// antecedent holds fires exclusively
// and advances the cursor past the lines it consumed. If nothing fires,
// T[i] is copied through and the cursor advances by one.
func (rw *Rewriter) runPass() {
	rw.opted = 0
	rw.out = nil
	i := 0
	for i < rw.n() {
		newI, fired, counts := rw.dispatch(i)
		if fired {
			if counts {
				rw.opted++
			}
			i = newI
			continue
		}
		rw.emit(rw.lines[i])
		i++
	}
}

// dispatch attempts Group A or Group B rules based on T[i]'s prefix,
// then falls through to the dispatch-free Group C rules regardless of
// whether A/B were even attempted - they are tried at every position,
// regardless of dispatch prefix.
func (rw *Rewriter) dispatch(i int) (newI int, fired bool, counts bool) {
	line := rw.lines[i]
	switch {
	case startsWith(line, "st"):
		if newI, fired, counts = rw.tryStoreGroup(i); fired {
			return newI, fired, counts
		}
	case startsWith(line, "ld"):
		if newI, fired, counts = rw.tryLoadGroup(i); fired {
			return newI, fired, counts
		}
	}
	return rw.tryMiscGroup(i)
}
