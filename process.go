package katsuyou

import "fmt"

// Process splits raw into stem and ending per channel and resolves its
// class to a structural type plus irregularity.
func Process(raw RawVerb) (ProcessedVerb, error) {
	if raw.Kana == "" && raw.Kanji == "" {
		return ProcessedVerb{}, ErrNoKanaOrKanji
	}
	if !raw.Class.IsValid() {
		return ProcessedVerb{}, fmt.Errorf("%w: %d", ErrUnknownVerbClass, uint8(raw.Class))
	}

	var (
		v      ProcessedVerb
		ending string
	)
	for _, ch := range []struct {
		s   string
		dst **string
	}{
		{raw.Kana, &v.Stem.Kana},
		{raw.Kanji, &v.Stem.Kanji},
	} {
		if ch.s == "" {
			continue
		}
		head, last := splitLast(ch.s)
		if ending != "" && last != ending {
			return ProcessedVerb{}, fmt.Errorf("%w: %q and %q", ErrEndingMismatch, raw.Kana, raw.Kanji)
		}
		ending = last
		*ch.dst = strp(head)
	}

	if !IsVerbEnding(ending) {
		return ProcessedVerb{}, fmt.Errorf("%w: ending %q", ErrNotAVerb, ending)
	}

	v.Ending = ending
	v.Type = raw.Class.Mostly()
	if raw.Class.IsIrregular() {
		v.Irregular = raw.Class
	}
	if v.Type == Ichidan && ending != "る" {
		return ProcessedVerb{}, fmt.Errorf("%w: %s verb must end in る, got %q", ErrNotAVerb, raw.Class, ending)
	}
	return v, nil
}

// Assemble joins step onto v's stem, channel by channel. A channel
// absent from v stays absent whatever the step overrides.
func Assemble(step Step, v ProcessedVerb) Result {
	return Result{
		Kana:  extend(v.Stem.Kana, step.KanaStem, step.Suffix),
		Kanji: extend(v.Stem.Kanji, step.KanjiStem, step.Suffix),
	}
}
