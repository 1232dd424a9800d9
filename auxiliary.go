package katsuyou

import "fmt"

// auxResult is an auxiliary form's step, without its final verb ending,
// plus the ending and class of the verb the auxiliary turns v into.
type auxResult struct {
	step   Step
	ending string
	typ    VerbClass
}

// passCaus selects one of the three forms built by passCausForm.
type passCaus uint8

const (
	passivePC passCaus = iota
	causativePC
	causativePassivePC
)

// auxiliaryForm applies kind to v. The returned step never contains the
// final る/す; the caller builds the new verb from ending and typ.
func auxiliaryForm(v ProcessedVerb, kind AuxiliaryForm, short bool) (auxResult, error) {
	switch kind {
	case Potential:
		st, err := potentialForm(v, short)
		if err != nil {
			return auxResult{}, err
		}
		return auxResult{step: st, ending: "る", typ: Ichidan}, nil
	case Passive:
		return passCausForm(v, passivePC, short)
	case Causative:
		return passCausForm(v, causativePC, short)
	case CausativePassive:
		return passCausForm(v, causativePassivePC, short)
	case Tagaru:
		st, err := stems(v, rowI)
		if err != nil {
			return auxResult{}, err
		}
		return auxResult{step: st.plus("たが"), ending: "る", typ: Godan}, nil
	}
	return auxResult{}, fmt.Errorf("%w: %s", ErrUnknownAuxForm, kind)
}

// potentialForm returns the potential stem: できる for する, e-row for
// Godan, (ら)れ for Ichidan and 来る. short drops the ら.
func potentialForm(v ProcessedVerb, short bool) (Step, error) {
	ra := "ら"
	if short {
		ra = ""
	}

	switch v.Irregular {
	case Suru:
		return replaceStemTail(v, "す", "でき", "出来"), nil
	case Kuru:
		st, err := stems(v, rowO)
		if err != nil {
			return Step{}, err
		}
		return st.plus(ra + "れ"), nil
	}

	if v.godan() {
		return stems(v, rowE)
	}
	return Step{Suffix: ra + "れ"}, nil
}

// passCausForm builds the passive, causative and causative-passive
// stems. Irregular verbs other than する/来る follow their structural class.
func passCausForm(v ProcessedVerb, kind passCaus, short bool) (auxResult, error) {
	var (
		full       Step
		extra      = true
		validShort = false
		err        error
	)
	switch {
	case v.Irregular == Suru:
		full, err = stems(v, rowA)
		extra = false
	case v.Irregular == Kuru:
		full, err = stems(v, rowO)
	case v.godan():
		full, err = stems(v, rowA)
		extra = false
		validShort = v.Ending != "す"
	}
	if err != nil {
		return auxResult{}, err
	}

	switch kind {
	case passivePC:
		return auxResult{step: full.plus(pick(extra, "ら") + "れ"), ending: "る", typ: Ichidan}, nil
	case causativePC:
		if short {
			return auxResult{step: full.plus(pick(extra, "さ")), ending: "す", typ: Godan}, nil
		}
		return auxResult{step: full.plus(pick(extra, "さ") + "せ"), ending: "る", typ: Ichidan}, nil
	default:
		tail := "せられ"
		if short && validShort {
			tail = "され"
		}
		return auxResult{step: full.plus(pick(extra, "さ") + tail), ending: "る", typ: Ichidan}, nil
	}
}

// pick returns s when cond holds and "" otherwise.
func pick(cond bool, s string) string {
	if cond {
		return s
	}
	return ""
}
