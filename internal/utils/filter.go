package utils

import (
	"unicode"
)

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsSpecialChars reports whether s holds anything other than letters,
// digits, apostrophes and hyphens.
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '-' {
			return true
		}
	}
	return false
}

// IsValidToken reports whether a prefix word typed into the CLI is worth
// estimating. Bare numbers and tokens with symbols are rejected.
func IsValidToken(s string) bool {
	return s != "" && !IsOnlyNumbers(s) && !ContainsSpecialChars(s)
}

// ValidTokens reports whether every token passes IsValidToken.
func ValidTokens(tokens []string) bool {
	for _, tok := range tokens {
		if !IsValidToken(tok) {
			return false
		}
	}
	return len(tokens) > 0
}
