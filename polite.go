package katsuyou

import "fmt"

// politeSuffixes holds the ます-form endings attached to the i-row
// stem: affirmative first, negative second. An empty negative means the
// form has no negative polite register.
var politeSuffixes = map[BaseForm][2]string{
	Present:         {"ます", "ません"},
	Past:            {"ました", "ませんでした"},
	Te:              {"まして", "ませんで"},
	Naide:           {"ませんで", ""},
	Volitional:      {"ましょう", ""},
	Imperative:      {"なさい", ""},
	TaraConditional: {"ましたら", "ませんでしたら"},
	BaConditional:   {"ますれば", ""},
}

// politeForm returns the polite register of base for v.
func politeForm(v ProcessedVerb, base BaseForm, negative, short bool) (Step, error) {
	switch base {
	case Stem, Zu:
		return Step{}, fmt.Errorf("%w: %s", ErrNoPoliteForm, base)
	case Tai:
		// たい is an adjective; its polite register is plain たい/たくない + です.
		st, err := taiForm(v, negative)
		if err != nil {
			return Step{}, err
		}
		return st.plus("です"), nil
	}

	suffixes, ok := politeSuffixes[base]
	if !ok {
		return Step{}, fmt.Errorf("%w: %s", ErrUnknownForm, base)
	}
	suffix := suffixes[0]
	if negative {
		if suffixes[1] == "" {
			return Step{}, fmt.Errorf("%w: polite %s", ErrNoNegativeForm, base)
		}
		suffix = suffixes[1]
	}
	if base == BaConditional && short {
		suffix = "ませば"
	}

	st, err := stems(v, rowI)
	if err != nil {
		return Step{}, err
	}
	return st.plus(suffix), nil
}
