package katsuyou

import "fmt"

// negativeTails are appended to the negative stem (…な).
var negativeTails = map[NegativeForm]string{
	NegNai:       "い",
	NegNakute:    "くて",
	NegNakatta:   "かった",
	NegNaide:     "いで",
	NegNakereba:  "ければ",
	NegNakattara: "かったら",
	NegNakarou:   "かろう",
}

// negativeForm returns the requested negative inflection of v.
// Zu and Tai do not go through the …な stem.
func negativeForm(v ProcessedVerb, kind NegativeForm) (Step, error) {
	switch kind {
	case NegZu:
		st, err := stems(v, rowA)
		if err != nil {
			return Step{}, err
		}
		return st.plus("ず"), nil
	case NegTai:
		st, err := stems(v, rowI)
		if err != nil {
			return Step{}, err
		}
		return st.plus("たくない"), nil
	}

	tail, ok := negativeTails[kind]
	if !ok {
		return Step{}, fmt.Errorf("%w: %s", ErrUnknownNegativeForm, kind)
	}
	st, err := negativeStem(v)
	if err != nil {
		return Step{}, err
	}
	return st.plus(tail), nil
}

// negativeStem returns the a-row stem followed by な. ある has no stem
// at all in the negative (ない), so its own あ is dropped.
func negativeStem(v ProcessedVerb) (Step, error) {
	switch v.Irregular {
	case Aru:
		return Step{
			Suffix:    "な",
			KanaStem:  dropLast(v.Stem.Kana),
			KanjiStem: dropLast(v.Stem.Kanji),
		}, nil
	case Suru:
		st, err := stems(v, rowI)
		if err != nil {
			return Step{}, err
		}
		return st.Then(Step{Suffix: "な"}), nil
	case Kuru:
		st, err := stems(v, rowO)
		if err != nil {
			return Step{}, err
		}
		return st.Then(Step{Suffix: "な"}), nil
	}

	if v.godan() {
		st, err := stems(v, rowA)
		if err != nil {
			return Step{}, err
		}
		return Step{Suffix: st.Suffix + "な"}, nil
	}
	return Step{Suffix: "な"}, nil
}

// dropLast returns s without its final character, or nil when s is nil.
func dropLast(s *string) *string {
	if s == nil {
		return nil
	}
	head, _ := splitLast(*s)
	return strp(head)
}
