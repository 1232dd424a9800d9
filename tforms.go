package katsuyou

import "fmt"

// tForm returns the te-form (te == true) or ta-form suffix of v,
// applying the Godan sound changes and the lexical exceptions of 行く
// and 問う.
func tForm(v ProcessedVerb, te bool) (Step, error) {
	tail := "た"
	if te {
		tail = "て"
	}

	switch v.Irregular {
	case Iku:
		return Step{Suffix: "っ" + tail}, nil
	case Tou:
		return Step{Suffix: "う" + tail}, nil
	case Suru, Kuru:
		st, err := stems(v, rowI)
		if err != nil {
			return Step{}, err
		}
		return st.plus(tail), nil
	}

	if v.godan() {
		t, ok := tStems[v.Ending]
		if !ok {
			return Step{}, fmt.Errorf("%w: ending %q", ErrNotAVerb, v.Ending)
		}
		if voicedTEndings[v.Ending] {
			tail = voice(tail)
		}
		return Step{Suffix: t + tail}, nil
	}
	return Step{Suffix: tail}, nil
}

// voice turns て/た into で/だ.
func voice(tail string) string {
	switch tail {
	case "て":
		return "で"
	case "た":
		return "だ"
	}
	return tail
}
