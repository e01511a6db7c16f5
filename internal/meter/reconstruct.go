package meter

import (
	"fmt"
	"strconv"

	"github.com/theodore-s-beers/hemistich/internal/model"
)

// consonants are the Perso-Arabic consonant letters recognized by the
// analyzer (isolated hamzah included, hā’ counted as a consonant).
var consonants = map[rune]bool{
	'ء': true, 'ب': true, 'پ': true, 'ت': true, 'ث': true, 'ج': true,
	'چ': true, 'ح': true, 'خ': true, 'د': true, 'ذ': true, 'ر': true,
	'ز': true, 'ژ': true, 'س': true, 'ش': true, 'ص': true, 'ض': true,
	'ط': true, 'ظ': true, 'ع': true, 'غ': true, 'ف': true, 'ق': true,
	'ک': true, 'گ': true, 'ل': true, 'م': true, 'ن': true, 'ه': true,
}

// isConsonant reports whether r is a recognized consonant.
func isConsonant(r rune) bool {
	return consonants[r]
}

// Reconstruct normalizes one hemistich into the letter skeleton the
// syllable rules operate on:
//
//   - plain vowel letters and consonants pass through;
//   - hamzah carrier forms fold to their base letter, tā’ marbūṭah to hā’;
//   - vowel diacritics, tanwīn, sukūn, shaddah, and punctuation drop;
//   - ZWNJ becomes a space, spaces stay.
//
// Any other character is an error carrying ExitBadScript: the analyzer
// only understands text fully in Persian/Arabic script.
func Reconstruct(hem string) ([]rune, error) {
	var out []rune

	for _, c := range []rune(trimHemistich(hem)) {
		switch c {
		// Vowel letters
		case 'ا', 'آ', 'و', 'ی':
			out = append(out, c)
		// Alif hamzah
		case 'أ':
			out = append(out, 'ا')
		// Vāv hamzah
		case 'ؤ':
			out = append(out, 'و')
		// Yā’ hamzah
		case 'ئ':
			out = append(out, 'ی')
		// Tā’ marbūṭah becomes hā’
		case 'ة':
			out = append(out, 'ه')
		// Hamzah diacritic, fatḥah, shaddah, ḍammah, kasrah, sukūn,
		// tanwīn fatḥah, dagger alif, tanwīn kasrah, tanwīn ḍammah
		case 'ٔ', 'َ', 'ّ', 'ُ', 'ِ', 'ْ',
			'ً', 'ٰ', 'ٍ', 'ٌ':
			// dropped
		case ' ':
			out = append(out, c)
		// ZWNJ becomes a space
		case '‌':
			out = append(out, ' ')
		// Comma, question mark, exclamation mark
		case '،', '؟', '!':
			// dropped
		default:
			if isConsonant(c) {
				out = append(out, c)
				continue
			}
			return nil, model.NewCLIError(model.ExitBadScript,
				fmt.Sprintf("Unexpected character: %s. Text must be fully in Persian/Arabic script.",
					strconv.QuoteRuneToASCII(c)))
		}
	}

	return out, nil
}

// StripSpaces returns the skeleton with spaces removed, for letter
// counting and the rules that look at letter positions only.
func StripSpaces(skeleton []rune) []rune {
	out := make([]rune, 0, len(skeleton))
	for _, r := range skeleton {
		if r != ' ' {
			out = append(out, r)
		}
	}
	return out
}

// trimHemistich removes surrounding whitespace, including a trailing
// carriage return from CRLF input.
func trimHemistich(hem string) string {
	start, end := 0, len(hem)
	for start < end && isASCIISpace(hem[start]) {
		start++
	}
	for end > start && isASCIISpace(hem[end-1]) {
		end--
	}
	return hem[start:end]
}

func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
