package katsuyou

import "fmt"

// Conjugate applies f to v and returns the step to assemble onto v's
// stem. Layers run in the order auxiliary, additional, base; each
// layer that is set replaces the working verb before the next runs,
// and the returned step then carries the working verb's stem as its
// override on every channel v has.
func Conjugate(v ProcessedVerb, f Form) (Step, error) {
	w := v
	if f.Auxiliary != 0 {
		aux, err := auxiliaryForm(w, f.Auxiliary, f.Short)
		if err != nil {
			return Step{}, err
		}
		w = ProcessedVerb{
			Stem: Channels{
				Kana:  extend(w.Stem.Kana, aux.step.KanaStem, aux.step.Suffix),
				Kanji: extend(w.Stem.Kanji, aux.step.KanjiStem, aux.step.Suffix),
			},
			Ending: aux.ending,
			Type:   aux.typ,
		}
	}

	if f.Additional != 0 {
		next, err := additionalForm(w, f.Additional, f.Short)
		if err != nil {
			return Step{}, err
		}
		w = next
	}

	var (
		step Step
		err  error
	)
	if f.Polite {
		step, err = politeForm(w, f.Base, f.Negative, f.Short)
	} else {
		step, err = baseForm(w, f.Base, f.Negative)
	}
	if err != nil {
		return Step{}, err
	}
	if f.Auxiliary != 0 || f.Additional != 0 {
		step = rebase(step, w.Stem)
	}
	return step, nil
}

// rebase fills the unset overrides of step with stem, so that the step
// assembles onto the verb a layer produced rather than the input verb.
func rebase(step Step, stem Channels) Step {
	if step.KanaStem == nil {
		step.KanaStem = stem.Kana
	}
	if step.KanjiStem == nil {
		step.KanjiStem = stem.Kanji
	}
	return step
}

func baseForm(v ProcessedVerb, base BaseForm, negative bool) (Step, error) {
	switch base {
	case Stem:
		if negative {
			return Step{}, fmt.Errorf("%w: %s", ErrNoNegativeForm, base)
		}
		return stems(v, rowI)
	case Present:
		if negative {
			return negativeForm(v, NegNai)
		}
		return Step{Suffix: v.Ending}, nil
	case Past:
		if negative {
			return negativeForm(v, NegNakatta)
		}
		return tForm(v, false)
	case Te:
		if negative {
			return negativeForm(v, NegNakute)
		}
		return tForm(v, true)
	case Imperative:
		if negative {
			return Step{Suffix: v.Ending + "な"}, nil
		}
		return imperative(v)
	case Volitional:
		if negative {
			return negativeForm(v, NegNakarou)
		}
		return volitional(v)
	case BaConditional:
		if negative {
			return negativeForm(v, NegNakereba)
		}
		return baConditional(v)
	case TaraConditional:
		if negative {
			return negativeForm(v, NegNakattara)
		}
		st, err := tForm(v, false)
		if err != nil {
			return Step{}, err
		}
		return st.plus("ら"), nil
	case Zu:
		if negative {
			return Step{}, fmt.Errorf("%w: %s", ErrNoNegativeForm, base)
		}
		return zu(v)
	case Naide:
		if negative {
			return Step{}, fmt.Errorf("%w: %s", ErrNoNegativeForm, base)
		}
		return negativeForm(v, NegNaide)
	case Tai:
		return taiForm(v, negative)
	}
	return Step{}, fmt.Errorf("%w: %s", ErrUnknownForm, base)
}

// rowPlus returns the stem in row followed by tail.
func rowPlus(v ProcessedVerb, row int, tail string) (Step, error) {
	st, err := stems(v, row)
	if err != nil {
		return Step{}, err
	}
	return st.plus(tail), nil
}

func imperative(v ProcessedVerb) (Step, error) {
	switch v.Irregular {
	case Kureru:
		return Step{}, nil
	case Suru:
		return rowPlus(v, rowI, "ろ")
	case Kuru:
		return rowPlus(v, rowO, "い")
	}
	if v.godan() {
		return stems(v, rowE)
	}
	return Step{Suffix: "ろ"}, nil
}

func volitional(v ProcessedVerb) (Step, error) {
	switch v.Irregular {
	case Suru:
		return rowPlus(v, rowI, "よう")
	case Kuru:
		return rowPlus(v, rowO, "よう")
	}
	if v.godan() {
		return rowPlus(v, rowO, "う")
	}
	return Step{Suffix: "よう"}, nil
}

func baConditional(v ProcessedVerb) (Step, error) {
	if v.Irregular == Suru || v.Irregular == Kuru {
		return Step{Suffix: "れば"}, nil
	}
	if v.godan() {
		return rowPlus(v, rowE, "ば")
	}
	return Step{Suffix: "れば"}, nil
}

func zu(v ProcessedVerb) (Step, error) {
	switch v.Irregular {
	case Aru:
		return Step{Suffix: "らず"}, nil
	case Suru:
		return rowPlus(v, rowE, "ず")
	case Kuru:
		return rowPlus(v, rowO, "ず")
	}
	return negativeForm(v, NegZu)
}

// taiForm returns ～たい, or ～たくない when negative.
func taiForm(v ProcessedVerb, negative bool) (Step, error) {
	if negative {
		return negativeForm(v, NegTai)
	}
	return rowPlus(v, rowI, "たい")
}
