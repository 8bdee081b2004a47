package naming

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// invalidChars matches every character that some major platform rejects in
// a file name. The set is fixed; only the replacement is configurable.
var invalidChars = regexp.MustCompile("[#%&{}\\\\<>?/$!'\":@+`|=]")

// vowels matches the characters removed by dropVowels.
var vowels = regexp.MustCompile(`[AaEeIiOoUu]`)

// ReplaceInvalid substitutes replacement for every invalid filename
// character in s. It does not trim: prefixes and suffixes may legitimately
// carry leading or trailing spaces, so trimming is the caller's decision.
func ReplaceInvalid(s, replacement string) string {
	return invalidChars.ReplaceAllString(s, replacement)
}

// ContainsInvalid reports whether s contains any invalid filename
// character.
func ContainsInvalid(s string) bool {
	return invalidChars.MatchString(s)
}

// CollapseWhitespace reduces every run of two or more spaces to a single
// space. The two-space substitution repeats to convergence, so runs of any
// length collapse fully. Runs like these typically appear when invalid
// characters are removed with an empty replacement.
func CollapseWhitespace(s string) string {
	for {
		collapsed := strings.ReplaceAll(s, "  ", " ")
		if collapsed == s {
			return s
		}
		s = collapsed
	}
}

// HasVowels reports whether s contains any of A/E/I/O/U, case-insensitive.
func HasVowels(s string) bool {
	return vowels.MatchString(s)
}

// dropVowels removes all vowels from s, case-insensitive.
func dropVowels(s string) string {
	return vowels.ReplaceAllString(s, "")
}

// TruncateBy removes at least n bytes from the end of s. The cut point
// moves back to the nearest rune boundary, so a multi-byte character is
// never split. If n is at least the length of s, the empty string is
// returned.
func TruncateBy(s string, n int) string {
	if len(s) <= n {
		return ""
	}
	cut := len(s) - n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
