package katsuyou

import (
	"fmt"
	"strings"
)

// VerbClass is the conjugation class of a dictionary verb.
// Ichidan and Godan are the two structural classes; the rest tag
// lexically irregular verbs. The zero value means "no class" and, on a
// ProcessedVerb's Irregular field, marks a regular verb.
type VerbClass uint8

const (
	Ichidan VerbClass = iota + 1
	Godan
	Suru
	Kuru
	Aru
	Iku
	Kureru
	Tou
	Irassharu
	Ossharu
	Kudasaru
	Gozaru
	Nasaru
)

var verbClassNames = [...]string{
	Ichidan:   "ichidan",
	Godan:     "godan",
	Suru:      "suru",
	Kuru:      "kuru",
	Aru:       "aru",
	Iku:       "iku",
	Kureru:    "kureru",
	Tou:       "tou",
	Irassharu: "irassharu",
	Ossharu:   "ossharu",
	Kudasaru:  "kudasaru",
	Gozaru:    "gozaru",
	Nasaru:    "nasaru",
}

// irregularVerb describes a lexically irregular verb: its dictionary
// form and the structural class it mostly behaves as.
type irregularVerb struct {
	dictionary string
	mostly     VerbClass
}

// irregularVerbs is the lexical irregularity table.
var irregularVerbs = map[VerbClass]irregularVerb{
	Suru:      {dictionary: "する", mostly: Ichidan},
	Kuru:      {dictionary: "来る", mostly: Ichidan},
	Aru:       {dictionary: "ある", mostly: Godan},
	Iku:       {dictionary: "行く", mostly: Godan},
	Kureru:    {dictionary: "くれる", mostly: Ichidan},
	Tou:       {dictionary: "問う", mostly: Godan},
	Irassharu: {dictionary: "いらっしゃる", mostly: Godan},
	Ossharu:   {dictionary: "おっしゃる", mostly: Godan},
	Kudasaru:  {dictionary: "下さる", mostly: Godan},
	Gozaru:    {dictionary: "ござる", mostly: Godan},
	Nasaru:    {dictionary: "なさる", mostly: Godan},
}

func (c VerbClass) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("VerbClass(%d)", uint8(c))
	}
	return verbClassNames[c]
}

// IsValid reports whether c is one of the declared classes.
func (c VerbClass) IsValid() bool {
	return c >= Ichidan && c <= Nasaru
}

// IsIrregular reports whether c tags a lexically irregular verb.
func (c VerbClass) IsIrregular() bool {
	_, ok := irregularVerbs[c]
	return ok
}

// Mostly returns the structural class (Ichidan or Godan) that c falls
// back to whenever no irregular-specific rule applies.
func (c VerbClass) Mostly() VerbClass {
	if c == Ichidan || c == Godan {
		return c
	}
	return irregularVerbs[c].mostly
}

// Dictionary returns the canonical dictionary form of an irregular class,
// or "" for the structural classes.
func (c VerbClass) Dictionary() string {
	return irregularVerbs[c].dictionary
}

// isKeigo reports whether c is one of the five honorific verbs whose
// i-row stem is い instead of り.
func (c VerbClass) isKeigo() bool {
	switch c {
	case Irassharu, Ossharu, Kudasaru, Gozaru, Nasaru:
		return true
	}
	return false
}

// ParseVerbClass parses a class name such as "godan" (case-insensitive).
func ParseVerbClass(s string) (VerbClass, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c := Ichidan; c <= Nasaru; c++ {
		if verbClassNames[c] == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVerbClass, s)
}

func (c VerbClass) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVerbClass, uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *VerbClass) UnmarshalText(b []byte) error {
	v, err := ParseVerbClass(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// RawVerb is a caller-supplied dictionary-form verb. At least one of
// Kana and Kanji must be non-empty; an empty string means the channel
// is absent.
type RawVerb struct {
	Kana  string    `json:"kana,omitempty" yaml:"kana,omitempty"`
	Kanji string    `json:"kanji,omitempty" yaml:"kanji,omitempty"`
	Class VerbClass `json:"class" yaml:"class"`
}

// Channels holds one string per orthographic channel. A nil channel is
// absent; a non-nil empty string is present but empty.
type Channels struct {
	Kana  *string
	Kanji *string
}

// ProcessedVerb is a verb split into its stem and ending character,
// with its class resolved to a structural type and an optional lexical
// irregularity. Values are never mutated; layers that change the verb
// build a new one.
type ProcessedVerb struct {
	// Stem is the dictionary form minus its final character, per channel.
	Stem Channels
	// Ending is the final character of the dictionary form.
	Ending string
	// Type is Ichidan or Godan.
	Type VerbClass
	// Irregular is the lexical irregularity, or zero for a regular verb.
	Irregular VerbClass
}

// godan reports whether v conjugates on the five-row pattern.
func (v ProcessedVerb) godan() bool {
	return v.Type == Godan
}

func strp(s string) *string {
	return &s
}
