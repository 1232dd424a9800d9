package katsuyou

import (
	"fmt"
	"strings"
)

// godanStems maps a Godan ending character to its a/i/e/o row stems.
var godanStems = map[string][4]string{
	"う": {"わ", "い", "え", "お"},
	"く": {"か", "き", "け", "こ"},
	"ぐ": {"が", "ぎ", "げ", "ご"},
	"す": {"さ", "し", "せ", "そ"},
	"つ": {"た", "ち", "て", "と"},
	"ぬ": {"な", "に", "ね", "の"},
	"ぶ": {"ば", "び", "べ", "ぼ"},
	"む": {"ま", "み", "め", "も"},
	"る": {"ら", "り", "れ", "ろ"},
}

// tStems holds the sound-changed stem used before て/た.
var tStems = map[string]string{
	"う": "っ", "く": "い", "ぐ": "い", "す": "し", "つ": "っ",
	"ぬ": "ん", "ぶ": "ん", "む": "ん", "る": "っ",
}

// voicedTEndings are the endings whose te/ta forms voice to で/だ.
var voicedTEndings = map[string]bool{
	"ぐ": true, "ぬ": true, "ぶ": true, "む": true,
}

var (
	suruStems = [4]string{"さ", "し", "せ", "そ"}
	kuruStems = [4]string{"か", "き", "け", "こ"}
)

// Stem rows.
const (
	rowA = iota
	rowI
	rowE
	rowO
)

// IsVerbEnding reports whether s is a character a dictionary-form verb
// can end in.
func IsVerbEnding(s string) bool {
	_, ok := godanStems[s]
	return ok
}

// stems returns the verb's stem in the given row (0-3: a, i, e, o).
// Godan verbs get the row character as a suffix; する and 来る get a
// replacement kana stem; Ichidan verbs get an empty step.
func stems(v ProcessedVerb, row int) (Step, error) {
	if row < rowA || row > rowO {
		return Step{}, fmt.Errorf("%w: %d", ErrInvalidIndex, row)
	}

	if row == rowI && v.Irregular.isKeigo() {
		return Step{Suffix: "い"}, nil
	}
	switch v.Irregular {
	case Suru:
		return replaceStemTail(v, "す", suruStems[row], ""), nil
	case Kuru:
		return replaceStemTail(v, "く", kuruStems[row], ""), nil
	}

	if v.godan() {
		row4, ok := godanStems[v.Ending]
		if !ok {
			return Step{}, fmt.Errorf("%w: ending %q", ErrNotAVerb, v.Ending)
		}
		return Step{Suffix: row4[row]}, nil
	}
	return Step{}, nil
}

// replaceStemTail substitutes the irregular stem of する/来る. The kana
// stem always ends in the dictionary character (す or く) and is
// replaced by sub, keeping whatever precedes it. The kanji stem is
// only touched when it is itself written in kana (e.g. 勉強す); then
// it gets the same substitution, or kanjiSub when one is given.
// A kanji stem such as 為 or 来 keeps its own character unless
// kanjiSub is non-empty.
func replaceStemTail(v ProcessedVerb, tail, sub, kanjiSub string) Step {
	var step Step
	if v.Stem.Kana != nil {
		step.KanaStem = strp(strings.TrimSuffix(*v.Stem.Kana, tail) + sub)
	}
	if v.Stem.Kanji != nil {
		kanji := *v.Stem.Kanji
		switch {
		case strings.HasSuffix(kanji, tail):
			step.KanjiStem = strp(strings.TrimSuffix(kanji, tail) + sub)
		case kanjiSub != "":
			step.KanjiStem = strp(kanjiSub)
		}
	}
	return step
}
