package main

import (
	"fmt"
	"strconv"
	"strings"
)

// tryLoadGroup attempts R19-R31, the rules dispatched when T[i] starts
// with "ld". The first antecedent that holds fires exclusively.
func (rw *Rewriter) tryLoadGroup(i int) (int, bool, bool) {
	line := rw.lines[i]

	// R19: ldx #0 ahead of a long indexed load is dead weight once the
	// load is rewritten to a plain long load; when T[i+3] is also
	// x-indexed, it is consumed too and emitted with its ",x" removed.
	if line == "ldx #0" {
		if m := reLdaLongX.FindStringSubmatch(rw.at(i + 1)); m != nil {
			sym := m[1]
			if !endsWith(rw.at(i+3), ",x") {
				rw.emit("lda.l " + sym)
				return i + 2, true, true
			}
			rw.emit("lda.l "+sym, rw.at(i+2), strings.TrimSuffix(rw.at(i+3), ",x"))
			return i + 4, true, true
		}
	}

	// R20: two 16-bit immediate halves staged through a pseudo-register
	// pair fuse into one 32-bit long store when both halves are decimal
	// literals.
	if newI, ok := rw.tryFuse32(i, line); ok {
		return newI, true, true
	}

	// R21: a zero literal headed for a plain store is a stz.
	if line == "lda.w #0" && startsWith(rw.at(i+1), "sta.b ") && startsWith(rw.at(i+2), "lda") {
		rw.emit(strings.Replace(rw.at(i+1), "sta.", "stz.", 1))
		return i + 2, true, true
	}

	// R22: an 8-bit literal narrowed through a sep/rep bracket around an
	// intervening store.
	if startsWith(line, "lda.w #") && rw.at(i+1) == "sep #$20" && startsWith(rw.at(i+2), "sta ") &&
		rw.at(i+3) == "rep #$20" && startsWith(rw.at(i+4), "lda") {
		narrow := strings.Replace(line, "lda.w", "lda.b", 1)
		rw.emit("sep #$20", narrow, rw.at(i+2), rw.at(i+3))
		return i + 4, true, true
	}

	// R23: a load that is immediately overwritten by another load
	// before the accumulator is read is dead.
	if startsWith(line, "lda.b") && !isControl(rw.at(i+1)) && !containsStr(rw.at(i+1), "a") && startsWith(rw.at(i+2), "lda.b") {
		rw.emit(rw.at(i+1), rw.at(i+2))
		return i + 3, true, true
	}

	// R24: a stack value saved into the high half of a pseudo-register
	// around unrelated code, then reloaded and stored straight back to
	// the same stack slot, round-trips for nothing.
	if newI, ok := rw.tryPregRoundTrip(i, line); ok {
		return newI, true, true
	}

	// R25: reorders a 32-bit value's low/high stores so the low half is
	// produced last, letting later rules coalesce the pair. Does not
	// count as an optimisation in its own right.
	if newI, ok := rw.tryReorder32(i, line); ok {
		return newI, true, false
	}

	// R26-R31: the compare-and-branch lowering family.
	if newI, ok := rw.tryCompareLowering(i); ok {
		return newI, true, true
	}

	return i, false, false
}

// tryFuse32 implements R20: lda.w #A / sta.b tcc__r9 / lda.w #B /
// sta.b tcc__r9h / sep #$20 / lda.b <loc> / sta.b [tcc__r9] / rep #$20,
// with A and B decimal literals, fuses into a single 32-bit long store.
func (rw *Rewriter) tryFuse32(i int, line string) (int, bool) {
	if !startsWith(line, "lda.w #") {
		return i, false
	}
	if rw.at(i+1) != "sta.b tcc__r9" {
		return i, false
	}
	l2 := rw.at(i + 2)
	if !startsWith(l2, "lda.w #") {
		return i, false
	}
	if rw.at(i+3) != "sta.b tcc__r9h" {
		return i, false
	}
	if rw.at(i+4) != "sep #$20" {
		return i, false
	}
	l5 := rw.at(i + 5)
	if !startsWith(l5, "lda.b ") {
		return i, false
	}
	if rw.at(i+6) != "sta.b [tcc__r9]" {
		return i, false
	}
	if rw.at(i+7) != "rep #$20" {
		return i, false
	}

	aVal, errA := strconv.ParseInt(strings.TrimPrefix(line, "lda.w #"), 10, 64)
	bVal, errB := strconv.ParseInt(strings.TrimPrefix(l2, "lda.w #"), 10, 64)
	if errA != nil || errB != nil {
		return i, false
	}
	k := bVal*65536 + aVal
	rw.emit("sep #$20", l5, fmt.Sprintf("sta.l %d", k), "rep #$20")
	return i + 8, true
}

// tryPregRoundTrip implements R24: a stack value parked in a
// pseudo-register's high half, a bounded run of code that never
// mentions it, then reloaded and stored straight back to the same
// stack slot.
func (rw *Rewriter) tryPregRoundTrip(i int, line string) (int, bool) {
	if !startsWith(line, "lda ") || !endsWith(line, ",s") {
		return i, false
	}
	l1 := rw.at(i + 1)
	if !startsWith(l1, "sta.b tcc__r") || !endsWith(l1, "h") {
		return i, false
	}
	loc := line[len("lda "):]
	reg := l1[len("sta.b "):]

	limit := rw.n() - 2
	j := i + 2
	for j < limit && !isControl(rw.at(j)) && !containsStr(rw.at(j), reg) {
		j++
	}
	if rw.at(j) == "lda.b "+reg && rw.at(j+1) == "sta "+loc {
		for k := i; k < j; k++ {
			rw.emit(rw.at(k))
		}
		return j + 2, true
	}
	return i, false
}

// tryReorder32 implements R25: lda <src1> / sta.b tcc__rN / lda <src2>
// (not ending in tcc__rN) / sta.b tcc__rMh, followed by a line that
// ends in tcc__rN, is reordered so the low-half store happens last.
func (rw *Rewriter) tryReorder32(i int, line string) (int, bool) {
	if !startsWith(line, "lda") {
		return i, false
	}
	l1 := rw.at(i + 1)
	if !startsWith(l1, "sta.b tcc__r") {
		return i, false
	}
	reg := strings.TrimPrefix(l1, "sta.b ")
	if endsWith(reg, "h") {
		return i, false
	}
	l2 := rw.at(i + 2)
	if !startsWith(l2, "lda") || endsWith(l2, reg) {
		return i, false
	}
	l3 := rw.at(i + 3)
	if !startsWith(l3, "sta.b tcc__r") || !endsWith(l3, "h") {
		return i, false
	}
	l4 := rw.at(i + 4)
	if !endsWith(l4, reg) {
		return i, false
	}
	rw.emit(l2, l3, line, l1)
	return i + 4, true
}

// tryCompareLowering implements the R26-R31 family: ldx #1 / lda.b
// tcc__<reg> / sec / one of three sbc forms / tay / beq + / dex / + /
// stx.b tcc__<reg> / txa / bne + / brl <target> / +, guarded by a
// following line that isn't tya. The long-long compare idiom this
// unwinds collapses to a direct cmp carrying the same operand the sbc
// line did, followed by the kept beq/brl/+ tail.
func (rw *Rewriter) tryCompareLowering(i int) (int, bool) {
	if rw.at(i) != "ldx #1" {
		return i, false
	}
	if !startsWith(rw.at(i+1), "lda.b tcc__") {
		return i, false
	}
	keptLda := rw.at(i + 1)
	if rw.at(i+2) != "sec" {
		return i, false
	}
	sbcLine := rw.at(i + 3)
	if !startsWith(sbcLine, "sbc #") && !startsWith(sbcLine, "sbc.w #") && !startsWith(sbcLine, "sbc.b tcc__r") {
		return i, false
	}
	if rw.at(i+4) != "tay" {
		return i, false
	}
	beqLine := rw.at(i + 5)
	if beqLine != "beq +" {
		return i, false
	}
	if rw.at(i+6) != "dex" {
		return i, false
	}
	if rw.at(i+7) != "+" {
		return i, false
	}
	if !startsWith(rw.at(i+8), "stx.b tcc__") {
		return i, false
	}
	if rw.at(i+9) != "txa" {
		return i, false
	}
	if rw.at(i+10) != "bne +" {
		return i, false
	}
	brlLine := rw.at(i + 11)
	if !startsWith(brlLine, "brl ") {
		return i, false
	}
	plusLine := rw.at(i + 12)
	if plusLine != "+" {
		return i, false
	}
	if rw.at(i+13) == "tya" {
		return i, false
	}

	rw.emit(keptLda, compareFromSbc(sbcLine), beqLine, brlLine, plusLine)
	return i + 13, true
}

// compareFromSbc derives the cmp line that replaces a sbc line's
// subtract-with-borrow, carrying the same operand forward: an
// immediate, a 16-bit immediate, or a pseudo-register.
func compareFromSbc(sbcLine string) string {
	switch {
	case startsWith(sbcLine, "sbc.w #"):
		return "cmp.w #" + strings.TrimPrefix(sbcLine, "sbc.w #")
	case startsWith(sbcLine, "sbc.b "):
		return "cmp.b " + strings.TrimPrefix(sbcLine, "sbc.b ")
	default:
		return "cmp #" + strings.TrimPrefix(sbcLine, "sbc #")
	}
}
