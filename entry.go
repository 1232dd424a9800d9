package katsuyou

import (
	"fmt"
	"strings"
)

// Entry is a dictionary verb of the lexicon.
type Entry struct {
	// Key is the normalized lookup key: the kanji form, or the kana
	// form for verbs usually written in kana.
	Key string
	// Kanji is the dictionary form in kanji, or "" when absent.
	Kanji string
	// Kana is the dictionary form in kana, or "" when absent.
	Kana string
	// Class is the conjugation class.
	Class VerbClass
	// glosses maps language code → gloss.
	glosses map[string]string
}

// newEntry parses a line from verbs.txt.
// Line format: kanji|kana|class
// where either kanji or kana may be empty, but not both.
func newEntry(line string) (*Entry, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 3 {
		return nil, fmt.Errorf("want 3 fields, got %d", len(parts))
	}
	class, err := ParseVerbClass(parts[2])
	if err != nil {
		return nil, err
	}

	e := &Entry{
		Kanji:   strings.TrimSpace(parts[0]),
		Kana:    NormalizeKey(parts[1]),
		Class:   class,
		glosses: make(map[string]string),
	}
	e.Key = NormalizeKey(e.Kanji)
	if e.Key == "" {
		e.Key = e.Kana
	}
	if _, err := Process(e.Raw()); err != nil {
		return nil, err
	}
	return e, nil
}

// Raw returns the entry as engine input.
func (e *Entry) Raw() RawVerb {
	return RawVerb{Kana: e.Kana, Kanji: e.Kanji, Class: e.Class}
}

// Gloss returns the gloss in language lang, or "" if there is none.
func (e *Entry) Gloss(lang string) string {
	return e.glosses[lang]
}

// Glosses returns a copy of all glosses keyed by language code.
func (e *Entry) Glosses() map[string]string {
	out := make(map[string]string, len(e.glosses))
	for k, v := range e.glosses {
		out[k] = v
	}
	return out
}

// AddGloss sets the gloss for language lang.
func (e *Entry) AddGloss(lang, gloss string) {
	e.glosses[lang] = gloss
}

// String renders the entry as "kanji (kana)".
func (e *Entry) String() string {
	return Result{Kana: nonEmpty(e.Kana), Kanji: nonEmpty(e.Kanji)}.String()
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func unknownVerb(key string) error {
	return fmt.Errorf("%w: %q", ErrUnknownVerb, key)
}
