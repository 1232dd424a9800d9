package katsuyou

import "fmt"

// compound is the fixed part of a te-form compound: the text added
// after the te-form and the verb the compound becomes.
type compound struct {
	add       string
	ending    string
	typ       VerbClass
	irregular VerbClass
}

var compounds = map[AdditionalForm]compound{
	Continuous: {add: "い", ending: "る", typ: Ichidan},
	TeAru:      {add: "あ", ending: "る", typ: Godan, irregular: Aru},
	TeOku:      {add: "お", ending: "く", typ: Godan},
	TeIku:      {add: "い", ending: "く", typ: Godan, irregular: Iku},
	TeKuru:     {add: "く", ending: "る", typ: Ichidan, irregular: Kuru},
	TeAgeru:    {add: "あげ", ending: "る", typ: Ichidan},
	TeKureru:   {add: "くれ", ending: "る", typ: Ichidan, irregular: Kureru},
	TeMorau:    {add: "もら", ending: "う", typ: Godan},
	TeShimau:   {add: "しま", ending: "う", typ: Godan},
}

// additionalForm turns v into the compound verb kind (食べる → 食べてい|る
// for Continuous). short selects ～てる, ～とく/どく and ～ちゃう/じゃう.
func additionalForm(v ProcessedVerb, kind AdditionalForm, short bool) (ProcessedVerb, error) {
	cp, ok := compounds[kind]
	if !ok {
		return ProcessedVerb{}, fmt.Errorf("%w: %s", ErrUnknownAdditionalForm, kind)
	}
	if kind == TeShimau && short {
		return chauForm(v)
	}

	te, err := tForm(v, true)
	if err != nil {
		return ProcessedVerb{}, err
	}

	teSuffix, add := te.Suffix, cp.add
	if short {
		switch kind {
		case Continuous:
			add = ""
		case TeOku:
			head, last := splitLast(te.Suffix)
			teSuffix = head
			add = "と"
			if last == "で" {
				add = "ど"
			}
		}
	}

	return ProcessedVerb{
		Stem: Channels{
			Kana:  extend(v.Stem.Kana, te.KanaStem, teSuffix+add),
			Kanji: extend(v.Stem.Kanji, te.KanjiStem, teSuffix+add),
		},
		Ending:    cp.ending,
		Type:      cp.typ,
		Irregular: cp.irregular,
	}, nil
}

// chauForm builds ～ちゃう/じゃう from the ta-form: the final た/だ
// becomes ちゃ/じゃ and the result conjugates like a Godan う verb.
func chauForm(v ProcessedVerb) (ProcessedVerb, error) {
	past, err := tForm(v, false)
	if err != nil {
		return ProcessedVerb{}, err
	}
	head, last := splitLast(past.Suffix)
	suffix := head + "ちゃ"
	if last == "だ" {
		suffix = head + "じゃ"
	}

	return ProcessedVerb{
		Stem: Channels{
			Kana:  extend(v.Stem.Kana, past.KanaStem, suffix),
			Kanji: extend(v.Stem.Kanji, past.KanjiStem, suffix),
		},
		Ending: "う",
		Type:   Godan,
	}, nil
}
