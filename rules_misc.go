package main

import (
	"fmt"
	"strings"
)

// tryMiscGroup attempts R32-R37. Unlike Groups A and B these carry no
// dispatch prefix and are tried at every cursor position where A and B
// did not fire.
func (rw *Rewriter) tryMiscGroup(i int) (int, bool, bool) {
	line := rw.lines[i]

	// R32: a width-switch pair that immediately undoes itself.
	if line == "rep #$20" && rw.at(i+1) == "sep #$20" {
		return i + 2, true, true
	}

	// R33: two 8-bit immediate pushes fuse into one 16-bit pea.
	if line == "sep #$20" && startsWith(rw.at(i+1), "lda #") && rw.at(i+2) == "pha" &&
		startsWith(rw.at(i+3), "lda #") && rw.at(i+4) == "pha" {
		a := strings.TrimPrefix(rw.at(i+1), "lda #")
		b := strings.TrimPrefix(rw.at(i+3), "lda #")
		rw.emit(fmt.Sprintf("pea.w (%s * 256 + %s)", a, b), "sep #$20")
		return i + 5, true, true
	}

	// R34: an immediate add folded with two subsequent increments of
	// the same pseudo-register slot.
	if m := reAdcImm.FindStringSubmatch(line); m != nil {
		k := m[1]
		if m2 := reStaPregFR.FindStringSubmatch(rw.at(i + 1)); m2 != nil {
			slot := m2[1]
			incLine := "inc.b " + slot
			if rw.at(i+2) == incLine && rw.at(i+3) == incLine {
				rw.emit(fmt.Sprintf("adc #%s + 2", k), rw.at(i+1))
				return i + 4, true, true
			}
		}
	}

	// R35: a long-addressed access to a known BSS symbol narrows to a
	// bank-relative one.
	if startsWith(line, "lda.l ") || startsWith(line, "sta.l ") {
		tail := line[2:]
		for name := range rw.bssNames {
			if startsWith(tail, "a.l "+name+" ") {
				rw.emit(strings.Replace(line, "a.l", "a.w", 1))
				return i + 1, true, true
			}
		}
	}

	// R36: an unconditional jump to the very next label is dead.
	if startsWith(line, "jmp.w ") || startsWith(line, "bra ") {
		var label string
		if startsWith(line, "jmp.w ") {
			label = line[len("jmp.w "):]
		} else {
			label = line[len("bra "):]
		}
		for j := i + 1; j < rw.n() && endsWith(rw.at(j), ":"); j++ {
			if rw.at(j) == label+":" {
				return i + 1, true, true
			}
		}
	}

	// R37: a long jump whose target lies within the short-branch range
	// shortens to a bra.
	if startsWith(line, "jmp.w ") {
		target := line[len("jmp.w "):] + ":"
		lo, hi := i-32, i+32
		if lo < 0 {
			lo = 0
		}
		if n := rw.n(); hi > n {
			hi = n
		}
		for l := lo; l < hi; l++ {
			if rw.at(l) == target {
				rw.emit(strings.Replace(line, "jmp.w", "bra", 1))
				return i + 1, true, true
			}
		}
	}

	return i, false, false
}
