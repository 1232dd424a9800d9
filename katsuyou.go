// Package katsuyou conjugates Japanese verbs. Given a dictionary form
// (kana and/or kanji), its conjugation class and a requested Form, it
// produces the inflected kana and kanji strings, layering auxiliary
// forms, te-form compounds, negation and politeness in a fixed order.
//
// The engine functions (Process, Conjugate, Assemble, ConjugateVerb,
// ConjugateVerbs) are pure and safe for concurrent use. Conjugator adds
// a verb lexicon loaded from a data directory on top of them.
package katsuyou

import (
	"sort"
	"sync"
)

// ConjugateVerb inflects raw into f.
func ConjugateVerb(raw RawVerb, f Form) (Result, error) {
	v, err := Process(raw)
	if err != nil {
		return Result{}, err
	}
	step, err := Conjugate(v, f)
	if err != nil {
		return Result{}, err
	}
	return Assemble(step, v), nil
}

// Outcome is one entry of a batch conjugation: either a Result or the
// error that request produced.
type Outcome struct {
	Form   Form
	Result Result
	Err    error
}

// ConjugateVerbs processes raw once and inflects it into every form.
// An invalid verb fails the whole batch; a failing form only fails its
// own Outcome.
func ConjugateVerbs(raw RawVerb, forms []Form) ([]Outcome, error) {
	v, err := Process(raw)
	if err != nil {
		return nil, err
	}
	out := make([]Outcome, len(forms))
	for i, f := range forms {
		out[i].Form = f
		step, err := Conjugate(v, f)
		if err != nil {
			out[i].Err = err
			continue
		}
		out[i].Result = Assemble(step, v)
	}
	return out, nil
}

// Conjugator holds a loaded verb lexicon.
type Conjugator struct {
	// entries maps Entry.Key → *Entry.
	entries map[string]*Entry

	// byKana maps the normalized kana reading → entries sharing it
	// (かえる: 帰る, 変える, 返る).
	byKana map[string][]*Entry

	// languages maps language code (e.g. "en") → language name.
	languages map[string]string

	// forms maps a normalized inflected surface form → analyses.
	// Built on the first Identify call.
	forms     map[string][]Analysis
	formsOnce sync.Once
}

// New loads data/verbs.txt from dataDir and returns a ready-to-use
// Conjugator.
func New(dataDir string) (*Conjugator, error) {
	c := &Conjugator{
		entries:   make(map[string]*Entry),
		byKana:    make(map[string][]*Entry),
		languages: make(map[string]string),
	}
	if err := c.loadLexicon(dataDir); err != nil {
		return nil, err
	}
	return c, nil
}

// Verb looks up an entry by its kanji or kana dictionary form. When a
// kana reading is shared by several entries, the first loaded wins.
func (c *Conjugator) Verb(key string) *Entry {
	key = NormalizeKey(key)
	if e, ok := c.entries[key]; ok {
		return e
	}
	if es := c.byKana[key]; len(es) > 0 {
		return es[0]
	}
	return nil
}

// Verbs returns every entry sorted by key.
func (c *Conjugator) Verbs() []*Entry {
	out := make([]*Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Languages returns a map of language code → language name for all
// loaded gloss files.
func (c *Conjugator) Languages() map[string]string {
	out := make(map[string]string, len(c.languages))
	for k, v := range c.languages {
		out[k] = v
	}
	return out
}

// Len returns the number of loaded entries.
func (c *Conjugator) Len() int {
	return len(c.entries)
}

// Conjugate inflects the lexicon verb key into f.
func (c *Conjugator) Conjugate(key string, f Form) (Result, error) {
	e := c.Verb(key)
	if e == nil {
		return Result{}, unknownVerb(key)
	}
	return ConjugateVerb(e.Raw(), f)
}

// Table computes the full paradigm of the lexicon verb key.
func (c *Conjugator) Table(key string) (*Table, error) {
	e := c.Verb(key)
	if e == nil {
		return nil, unknownVerb(key)
	}
	return inflectionTable(e)
}

// add registers e, replacing any entry with the same key.
func (c *Conjugator) add(e *Entry) {
	if old, ok := c.entries[e.Key]; ok {
		c.removeKana(old)
	}
	c.entries[e.Key] = e
	if e.Kana != "" {
		k := NormalizeKey(e.Kana)
		c.byKana[k] = append(c.byKana[k], e)
	}
}

func (c *Conjugator) removeKana(e *Entry) {
	k := NormalizeKey(e.Kana)
	es := c.byKana[k]
	for i, x := range es {
		if x == e {
			c.byKana[k] = append(es[:i:i], es[i+1:]...)
			break
		}
	}
	if len(c.byKana[k]) == 0 {
		delete(c.byKana, k)
	}
}
