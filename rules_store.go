package main

import "strings"

// tryStoreGroup attempts R1-R18, the rules dispatched when T[i] starts
// with "st". The first antecedent that holds fires exclusively.
func (rw *Rewriter) tryStoreGroup(i int) (int, bool, bool) {
	line := rw.lines[i]

	// R1: a store to a pseudo-register is redundant if the window ahead
	// stores to it again (or calls a real subroutine, which clobbers it)
	// before anything reads it.
	if m := reStoreAXYZ.FindStringSubmatch(line); m != nil {
		reg := m[2]
		if rw.scanRedundantStore(i, reg) {
			return i + 1, true, true
		}
	}

	// R2-R4: a hardware index register stashed into a pseudo-register
	// via pei, either pushed for a call or reloaded straight back into
	// the accumulator.
	if m := reStoreXY.FindStringSubmatch(line); m != nil {
		hw := m[1]
		reg := m[2]
		pei := "pei (tcc__" + reg + ")"

		if rw.at(i+1) == pei {
			if startsWith(rw.at(i+2), "jsr.l ") {
				rw.emit("ph" + hw)
				return i + 2, true, true
			}
			rw.emit(line, "ph"+hw)
			return i + 2, true, true
		}

		lda := "lda.b tcc__" + reg
		if rw.at(i+1) == lda || rw.at(i+1) == lda+" ; DON'T OPTIMIZE" {
			rw.emit(line, "t"+hw+"a")
			return i + 2, true, true
		}
	}

	// R5-R17: the accumulator stashed into a pseudo-register.
	if m := reStoreA.FindStringSubmatch(line); m != nil {
		reg := m[1]
		if newI, ok := rw.tryStoreAGroup(i, line, reg); ok {
			return newI, true, true
		}
	}

	// R18: a stack-relative store immediately reloaded from the same
	// slot is a redundant round trip.
	if m := reStaStack.FindStringSubmatch(line); m != nil {
		loc := m[1]
		if rw.at(i+1) == "lda "+loc+",s" {
			rw.emit(line)
			return i + 2, true, true
		}
	}

	return i, false, false
}

// scanRedundantStore implements R1's bounded forward scan: starting
// just past the store at i, look for another store to reg within Window
// lines. A call to a real subroutine (not a pseudo-register-prefixed
// stub) also makes the store dead. The scan stops the moment a control
// line or a reference to reg's storage is seen without having found
// either.
func (rw *Rewriter) scanRedundantStore(i int, reg string) bool {
	pat := storeAXYZPat(reg)
	end := i + Window
	if n := rw.n(); end > n {
		end = n
	}
	for j := i + 1; j < end; j++ {
		tj := rw.lines[j]
		if pat.MatchString(tj) {
			return true
		}
		if startsWith(tj, "jsr.l ") && !startsWith(tj, "jsr.l tcc__") {
			return true
		}
		if isControl(tj) || containsStr(tj, "tcc__"+reg) {
			return false
		}
		if endsWith(reg, "h") {
			base := strings.TrimSuffix(reg, "h")
			if containsStr(tj, "[tcc__"+base) {
				return false
			}
		}
	}
	return false
}

// tryStoreAGroup attempts R5-R17 for the pseudo-register reg that line
// (at position i) just stored the accumulator into.
func (rw *Rewriter) tryStoreAGroup(i int, line, reg string) (int, bool) {
	ldaReg := "lda.b tcc__" + reg

	// R5: immediate reload, drop it.
	if rw.at(i+1) == ldaReg {
		rw.emit(line)
		return i + 2, true
	}

	// R6: an index load interposed before the reload still lets the
	// reload drop.
	if (startsWith(rw.at(i+1), "ldx") || startsWith(rw.at(i+1), "ldy")) && rw.at(i+2) == ldaReg {
		rw.emit(line, rw.at(i+1))
		return i + 3, true
	}

	pei := "pei (tcc__" + reg + ")"
	if rw.at(i+1) == pei {
		// R7/R8: push the preg straight from the accumulator via pha.
		if startsWith(rw.at(i+2), "jsr.l ") {
			rw.emit("pha")
			return i + 2, true
		}
		rw.emit(line, "pha")
		return i + 2, true
	}
	if startsWith(rw.at(i+1), "pei ") && rw.at(i+2) == pei {
		// R9: a different preg is pushed first; reorder ours to a pha.
		rw.emit(rw.at(i+1), line, "pha")
		return i + 3, true
	}

	// R10: inc/dec folded through the pseudo-register, one or two
	// applications before a reload.
	for _, op := range [...]string{"inc", "dec"} {
		opLine := op + ".b tcc__" + reg
		if rw.at(i+1) != opLine {
			continue
		}
		if rw.at(i+2) == opLine && startsWith(rw.at(i+3), "lda") {
			rw.emit(op+" a", op+" a", "sta.b tcc__"+reg)
			if rw.at(i+3) == ldaReg {
				return i + 4, true
			}
			return i + 3, true
		}
		if startsWith(rw.at(i+2), "lda") {
			rw.emit(op+" a", "sta.b tcc__"+reg)
			if rw.at(i+2) == ldaReg {
				return i + 3, true
			}
			return i + 2, true
		}
		break
	}

	// R11: a load from a different preg immediately and/ora'd with this
	// one propagates straight through without the intermediate reload.
	if m := reLdaPreg.FindStringSubmatch(rw.at(i + 1)); m != nil {
		reg2 := m[1]
		next := rw.at(i + 2)
		if len(next) >= 3 {
			opcode := next[:3]
			if (opcode == "and" || opcode == "ora") && endsWith(next, ".b tcc__"+reg) {
				rw.emit(line, opcode+".b tcc__"+reg2)
				return i + 3, true
			}
		}
	}

	// R12: a width-narrowing sep immediately followed by the reload.
	if rw.at(i+1) == "sep #$20" && rw.at(i+2) == ldaReg {
		rw.emit(line, rw.at(i+1))
		return i + 3, true
	}

	// R13: an unrelated line sandwiched between two identical stores
	// collapses to one.
	if !isControl(rw.at(i+1)) && !containsStr(rw.at(i+1), "tcc__"+reg) && rw.at(i+2) == line {
		rw.emit(rw.at(i+1), rw.at(i+2))
		return i + 3, true
	}

	// R14: the very next line reloads reg straight into a hardware
	// index register; skip the round trip through the accumulator.
	if m := ldIndexPat(reg).FindStringSubmatch(rw.at(i + 1)); m != nil {
		idx := m[1]
		rw.emit(line, "ta"+idx)
		return i + 2, true
	}

	// R15: an unrelated line that doesn't touch the accumulator,
	// sandwiched before the reload, leaves the reload redundant; drop it.
	if !isControl(rw.at(i+1)) && !changesAccu(rw.at(i+1)) && !containsStr(rw.at(i+1), "tcc__"+reg) && rw.at(i+2) == ldaReg {
		rw.emit(line, rw.at(i+1))
		return i + 3, true
	}

	// R16: store, clear carry, reload a second preg, then add this one
	// back in - forward the add directly off the two pregs.
	if rw.at(i+1) == "clc" {
		if m := reLdaR2.FindStringSubmatch(rw.at(i + 2)); m != nil {
			reg2 := m[1]
			if rw.at(i+3) == "adc.b tcc__"+reg {
				rw.emit(line, "clc", "adc.b tcc__"+reg2)
				return i + 4, true
			}
		}
	}

	// R17: shift folded through the pseudo-register.
	if rw.at(i+1) == "asl.b tcc__"+reg {
		rw.emit("asl a", line)
		return i + 2, true
	}

	return i, false
}
