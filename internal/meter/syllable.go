package meter

// The syllable rules below are lexical: they match common opening words
// and particles whose scansion in classical Persian verse is known. Each
// rule operates on the reconstructed letter skeleton of a hemistich.
//
// The windows the rules inspect assume hemistichs of realistic length;
// a skeleton shorter than a rule's window simply fails that rule.

// hasPrefix reports whether the skeleton begins with the runes of pat.
func hasPrefix(skel []rune, pat string) bool {
	p := []rune(pat)
	if len(skel) < len(p) {
		return false
	}
	for i, r := range p {
		if skel[i] != r {
			return false
		}
	}
	return true
}

// hasPrefixIn reports whether the skeleton begins with any of pats.
func hasPrefixIn(skel []rune, pats ...string) bool {
	for _, pat := range pats {
		if hasPrefix(skel, pat) {
			return true
		}
	}
	return false
}

// consonantAt reports whether the skeleton has a recognized consonant at
// index idx.
func consonantAt(skel []rune, idx int) bool {
	return idx < len(skel) && isConsonant(skel[idx])
}

// longFirstSyllable reports indications that the hemistich opens with a
// long syllable.
func longFirstSyllable(skel []rune) bool {
	if len(skel) < 2 {
		return false
	}

	// Initial alif maddah, or alif as the second letter
	if skel[0] == 'آ' || skel[1] == 'ا' {
		return true
	}

	// Initial "īn" or "khwā-"
	if hasPrefixIn(skel, "این", "خوا") {
		return true
	}

	// Initial "az," "har," "gar," "ay," or "ham" followed by a space and
	// then a consonant
	// "Bar" is deliberately absent: it can be "bar-i" with iżāfa
	if hasPrefixIn(skel, "از ", "هر ", "گر ", "ای ", "هم ") && consonantAt(skel, 3) {
		return true
	}

	// Initial "amrūz"; also flagged as a long second syllable
	if hasPrefix(skel, "امروز") {
		return true
	}

	return false
}

// shortFirstSyllable reports indications that the hemistich opens with a
// short syllable.
func shortFirstSyllable(skel []rune) bool {
	// Initial "zih" followed by a consonant after a space
	if hasPrefix(skel, "ز ") && consonantAt(skel, 2) {
		return true
	}

	// Initial "bi," "ki," "chu," "chi," or "na" followed by a space;
	// initial "kujā," "hamī," "khudā," "agar," "chirā," or "digar"
	if hasPrefixIn(skel,
		"به ", "که ", "چو ", "چه ", "نه ",
		"کجا", "همی", "خدا", "اگر", "چرا", "دگر") {
		return true
	}

	// Initial "shavad," "magar," "marā," "turā," or "hama" followed by a
	// space; initial "chunīn," "chunān," or "bi-bīn-"
	if hasPrefixIn(skel,
		"شود ", "مگر ", "مرا ", "ترا ", "همه ",
		"چنین", "چنان", "ببین") {
		return true
	}

	return false
}

// longSecondSyllable reports indications that the second syllable of the
// hemistich is long.
func longSecondSyllable(skel []rune) bool {
	if len(skel) < 3 {
		return false
	}

	// Alif as the third letter, non-word-initial, not after vāv or
	// another alif
	// Known weakness: "nā-umīd" scans short in the second syllable
	if skel[2] == 'ا' && skel[1] != ' ' && skel[1] != 'و' && skel[1] != 'ا' {
		return true
	}

	// Initial "agar" followed by a consonant; already flagged as a short
	// first syllable
	if hasPrefix(skel, "اگر ") && consonantAt(skel, 4) {
		return true
	}

	// Initial "bāshad" followed by a consonant; already flagged as a long
	// first syllable
	// "Sāqī" used to be checked here, but it can be spoiled by iżāfa
	if hasPrefix(skel, "باشد ") && consonantAt(skel, 5) {
		return true
	}

	// Initial "amrūz"; also flagged as a long first syllable
	if hasPrefix(skel, "امروز") {
		return true
	}

	// Opening word like "tā," "bā," "yā," etc.: check whether what
	// follows is clearly another long syllable
	if skel[1] == 'ا' && skel[2] == ' ' && longFirstSyllable(skel[3:]) {
		return true
	}

	// Opening "ay," "gar," or "az" followed by a consonant, then a clear
	// long syllable
	if hasPrefixIn(skel, "ای ", "گر ", "از ") &&
		consonantAt(skel, 3) && longFirstSyllable(skel[3:]) {
		return true
	}

	// Opening "bi" or "ki" (short), then a clear long syllable
	if hasPrefixIn(skel, "به ", "که ") && longFirstSyllable(skel[3:]) {
		return true
	}

	// Initial "chunīn" or "chunān"; also flagged as a short first syllable
	if hasPrefixIn(skel, "چنین", "چنان") {
		return true
	}

	return false
}

// shortSecondSyllable reports indications that the second syllable of the
// hemistich is short. It inspects both the skeleton and its space-free
// form.
func shortSecondSyllable(skel, nospace []rune) bool {
	if len(skel) < 3 {
		return false
	}

	// Opening "bi" or "ki" (very common), then a clear short syllable
	if hasPrefixIn(skel, "به ", "که ") && shortFirstSyllable(skel[3:]) {
		return true
	}

	// Opening word like "tā," "bā," "yā," etc., then a clear short
	// syllable
	if skel[1] == 'ا' && skel[2] == ' ' && shortFirstSyllable(skel[3:]) {
		return true
	}

	// Initial "har-ki," "ān-ki," "gar-chi," or "ān-chi" (with or without
	// a space); initial "pādishā-" (already flagged as a long first
	// syllable)
	if hasPrefixIn(skel, "هرکه ", "آنکه ", "گرچه ", "آنچه ", "پادشا") {
		return true
	}
	if hasPrefixIn(skel, "هر که ", "آن که ", "گر چه ", "آن چه ") {
		return true
	}

	// "Chunīn" or "chunān" starting at the third letter of the space-free
	// skeleton
	if len(nospace) >= 6 {
		mid := nospace[2:6]
		if hasPrefixIn(mid, "چنین", "چنان") {
			return true
		}
	}

	// Opening "īn" followed by a consonant, then a clear short syllable
	if hasPrefix(skel, "این ") && consonantAt(skel, 4) && shortFirstSyllable(skel[4:]) {
		return true
	}

	return false
}

// initialClues matches opening words that determine both of the first two
// syllables at once. The returned tag selects the combination to record;
// empty means no clue matched.
func initialClues(skel []rune) string {
	// "Kasī" or "yakī" followed by a consonant: short-long
	if hasPrefix(skel, "کسی ") && consonantAt(skel, 4) {
		return "kasi"
	}
	if hasPrefix(skel, "یکی ") && consonantAt(skel, 4) {
		return "yaki"
	}

	// "Chīst," "dūst," "kīst": always long-short, regardless of what
	// follows
	if hasPrefix(skel, "چیست") {
		return "chist"
	}
	if hasPrefix(skel, "دوست") {
		return "dust"
	}
	if hasPrefix(skel, "کیست") {
		return "kist"
	}

	// "Nīst" followed by a space: long-short ("nayistān" would trip the
	// spaceless form)
	if hasPrefix(skel, "نیست ") {
		return "nist"
	}

	// "Ham-chu" followed by a space, with or without an internal space:
	// long-short
	if hasPrefix(skel, "همچو ") || hasPrefix(skel, "هم چو ") {
		return "ham-chu"
	}

	// "Chandān": long-long, regardless of what follows
	if hasPrefix(skel, "چندان") {
		return "chandan"
	}

	return ""
}
