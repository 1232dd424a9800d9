package katsuyou

// Step is the value every resolver returns: a suffix to append and,
// for irregular verbs, optional per-channel stem overrides. The two
// overrides are independent; a nil override keeps the verb's own stem.
type Step struct {
	Suffix    string
	KanaStem  *string
	KanjiStem *string
}

// plus returns a copy of s with tail appended to its suffix. Overrides
// carry over unchanged.
func (s Step) plus(tail string) Step {
	s.Suffix += tail
	return s
}

// Then layers next over s: next's suffix replaces s's, and each of
// next's overrides wins only when it is set.
func (s Step) Then(next Step) Step {
	s.Suffix = next.Suffix
	if next.KanaStem != nil {
		s.KanaStem = next.KanaStem
	}
	if next.KanjiStem != nil {
		s.KanjiStem = next.KanjiStem
	}
	return s
}

// extend builds one channel of a new stem: nil when the channel is
// absent, otherwise the override (or the stem) followed by extra.
func extend(stem, override *string, extra string) *string {
	if stem == nil {
		return nil
	}
	base := *stem
	if override != nil {
		base = *override
	}
	return strp(base + extra)
}

// Result is a fully inflected verb. Each channel is present iff it was
// present on the input verb.
type Result struct {
	Kana  *string `json:"kana,omitempty" yaml:"kana,omitempty"`
	Kanji *string `json:"kanji,omitempty" yaml:"kanji,omitempty"`
}

// KanaString returns the kana channel or "" when absent.
func (r Result) KanaString() string {
	if r.Kana == nil {
		return ""
	}
	return *r.Kana
}

// KanjiString returns the kanji channel or "" when absent.
func (r Result) KanjiString() string {
	if r.Kanji == nil {
		return ""
	}
	return *r.Kanji
}

// String renders the result as "kanji (kana)", or whichever channel exists.
func (r Result) String() string {
	switch {
	case r.Kana != nil && r.Kanji != nil:
		return *r.Kanji + " (" + *r.Kana + ")"
	case r.Kanji != nil:
		return *r.Kanji
	case r.Kana != nil:
		return *r.Kana
	}
	return ""
}
