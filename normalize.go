package katsuyou

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Katakana range that has a hiragana counterpart 0x60 code points lower.
const (
	katakanaFirst = 'ァ'
	katakanaLast  = 'ヶ'
	kanaOffset    = 'ァ' - 'ぁ'
)

// splitLast splits s before its final character. Both parts are empty
// when s is.
func splitLast(s string) (head, last string) {
	if s == "" {
		return "", ""
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size], s[len(s)-size:]
}

// NormalizeKana folds half-width and full-width variants to their
// canonical width, composes voiced marks (ｶﾞ → ガ) and maps katakana
// to hiragana. Kanji and other characters pass through unchanged.
func NormalizeKana(s string) string {
	s = norm.NFC.String(width.Fold.String(s))
	return strings.Map(func(r rune) rune {
		if r >= katakanaFirst && r <= katakanaLast {
			return r - kanaOffset
		}
		return r
	}, s)
}

// NormalizeKey returns the lookup key for a dictionary or inflected
// form: surrounding space trimmed and kana normalized.
func NormalizeKey(s string) string {
	return NormalizeKana(strings.TrimSpace(s))
}
