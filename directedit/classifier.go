package directedit

import (
	"unicode/utf16"
	"unicode/utf8"
)

// extraChars lists the non-word characters that may start a direct edit.
const extraChars = `é§èàùçÔØÁÛÊË"«»’”„´$¥€£\¿?!=+-,;:%/{}[]–#@*.`

var extraSet = func() map[rune]bool {
	set := make(map[rune]bool, utf8.RuneCountInString(extraChars))
	for _, r := range extraChars {
		set[r] = true
	}
	return set
}()

// IsDirectEditChar reports whether key is a single character that may begin
// a direct edit. Key names such as "Escape" or "F2" are never accepted.
func IsDirectEditChar(key string) bool {
	r, ok := singleUnit(key)
	if !ok {
		return false
	}
	return isWordChar(r) || extraSet[r]
}

// AcceptedChars returns the literal accepted set, word characters first.
func AcceptedChars() []rune {
	out := make([]rune, 0, 63+len(extraSet))
	for r := 'A'; r <= 'Z'; r++ {
		out = append(out, r)
	}
	for r := 'a'; r <= 'z'; r++ {
		out = append(out, r)
	}
	for r := '0'; r <= '9'; r++ {
		out = append(out, r)
	}
	out = append(out, '_')
	for _, r := range extraChars {
		out = append(out, r)
	}
	return out
}

// singleUnit decodes key when it is exactly one UTF-16 code unit long.
func singleUnit(key string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || size != len(key) {
		return 0, false
	}
	if utf16.RuneLen(r) != 1 {
		return 0, false
	}
	return r, true
}

func isWordChar(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r >= '0' && r <= '9' ||
		r == '_'
}
