package main

import (
	"fmt"
	"regexp"
)

// Fixed regex patterns used by the rule files. Pseudo-register names
// ([rf][0-9]+h?) never contain regex metacharacters, so dynamically
// formatted patterns below are built with plain fmt.Sprintf rather than
// regexp.QuoteMeta.
var (
	reStoreAXYZ = regexp.MustCompile(`^st([axyz])\.b tcc__([rf][0-9]*h?)$`)
	reStoreXY   = regexp.MustCompile(`^st([xy])\.b tcc__([rf][0-9]*h?)$`)
	reStoreA    = regexp.MustCompile(`^sta\.b tcc__([rf][0-9]*h?)$`)

	reLdaPreg   = regexp.MustCompile(`^lda\.b tcc__([rf][0-9]*)$`)
	reLdaLongX  = regexp.MustCompile(`^lda\.l (.*),x$`)
	reStaStack  = regexp.MustCompile(`^sta (.*),s$`)
	reAdcImm    = regexp.MustCompile(`^adc #(.*)$`)
	reStaPregFR = regexp.MustCompile(`^sta\.b (tcc__[fr][0-9]+)$`)
	reLdaR2     = regexp.MustCompile(`^lda\.b tcc__(r[0-9]*)$`)
)

// storeAXYZPat builds the dynamic "st([axyz]).b tcc__<reg>$" pattern
// used by R1's forward scan for a specific captured register.
func storeAXYZPat(reg string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^st([axyz])\.b tcc__%s$`, reg))
}

// ldIndexPat builds the dynamic "ld([xy]).b tcc__<reg>" pattern used by
// R14 to detect a hardware-index reload from a pseudo-register.
func ldIndexPat(reg string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^ld([xy])\.b tcc__%s$`, reg))
}
