// Package textutil holds small text transforms.
package textutil

import (
	"unicode/utf8"
)

// PigLatin moves the first character of word to the end behind a hyphen and
// appends "ay": "first" becomes "irst-fay" and "apple" becomes "pple-aay".
// Every word follows this one rule; vowel-initial words get no special
// treatment. The first character is a whole UTF-8 encoded rune, never a
// partial byte sequence.
func PigLatin(word string) string {
	if word == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(word)
	return word[size:] + "-" + word[:size] + "ay"
}
