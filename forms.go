package katsuyou

import (
	"fmt"
	"strings"
)

// BaseForm is a basic tense/mood form.
type BaseForm uint8

const (
	Stem BaseForm = iota + 1
	Present
	Past
	Te
	Imperative
	Volitional
	BaConditional
	TaraConditional
	Naide
	Zu
	Tai
)

// AuxiliaryForm is a productive auxiliary applied before the base form.
// The zero value means none.
type AuxiliaryForm uint8

const (
	Potential AuxiliaryForm = iota + 1
	Passive
	Causative
	CausativePassive
	Tagaru
)

// AdditionalForm is a te-form compound applied after the auxiliary form.
// The zero value means none.
type AdditionalForm uint8

const (
	Continuous AdditionalForm = iota + 1
	TeAru
	TeOku
	TeIku
	TeKuru
	TeAgeru
	TeKureru
	TeMorau
	TeShimau
)

// NegativeForm selects the tail attached to a negative stem.
type NegativeForm uint8

const (
	NegNai NegativeForm = iota + 1
	NegNakute
	NegNakatta
	NegNaide
	NegNakereba
	NegNakattara
	NegNakarou
	NegZu
	NegTai
)

var baseFormNames = [...]string{
	Stem:            "stem",
	Present:         "present",
	Past:            "past",
	Te:              "te",
	Imperative:      "imperative",
	Volitional:      "volitional",
	BaConditional:   "ba-conditional",
	TaraConditional: "tara-conditional",
	Naide:           "naide",
	Zu:              "zu",
	Tai:             "tai",
}

var auxiliaryFormNames = [...]string{
	Potential:        "potential",
	Passive:          "passive",
	Causative:        "causative",
	CausativePassive: "causative-passive",
	Tagaru:           "tagaru",
}

var additionalFormNames = [...]string{
	Continuous: "continuous",
	TeAru:      "te-aru",
	TeOku:      "te-oku",
	TeIku:      "te-iku",
	TeKuru:     "te-kuru",
	TeAgeru:    "te-ageru",
	TeKureru:   "te-kureru",
	TeMorau:    "te-morau",
	TeShimau:   "te-shimau",
}

var negativeFormNames = [...]string{
	NegNai:       "nai",
	NegNakute:    "nakute",
	NegNakatta:   "nakatta",
	NegNaide:     "naide",
	NegNakereba:  "nakereba",
	NegNakattara: "nakattara",
	NegNakarou:   "nakarou",
	NegZu:        "zu",
	NegTai:       "tai",
}

// Flag tokens accepted by ParseForm.
const (
	tokenNegative = "negative"
	tokenPolite   = "polite"
	tokenShort    = "short"
)

func enumName[T ~uint8](names []string, v T, kind string) string {
	if v == 0 || int(v) >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, uint8(v))
	}
	return names[v]
}

func enumValid[T ~uint8](names []string, v T) bool {
	return v != 0 && int(v) < len(names)
}

func parseEnum[T ~uint8](names []string, s string, kind error) (T, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := 1; i < len(names); i++ {
		if names[i] == s {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", kind, s)
}

func (f BaseForm) String() string       { return enumName(baseFormNames[:], f, "BaseForm") }
func (f AuxiliaryForm) String() string  { return enumName(auxiliaryFormNames[:], f, "AuxiliaryForm") }
func (f AdditionalForm) String() string { return enumName(additionalFormNames[:], f, "AdditionalForm") }
func (f NegativeForm) String() string   { return enumName(negativeFormNames[:], f, "NegativeForm") }

func (f BaseForm) IsValid() bool       { return enumValid(baseFormNames[:], f) }
func (f AuxiliaryForm) IsValid() bool  { return enumValid(auxiliaryFormNames[:], f) }
func (f AdditionalForm) IsValid() bool { return enumValid(additionalFormNames[:], f) }
func (f NegativeForm) IsValid() bool   { return enumValid(negativeFormNames[:], f) }

// ParseBaseForm parses a base form token such as "tara-conditional".
func ParseBaseForm(s string) (BaseForm, error) {
	return parseEnum[BaseForm](baseFormNames[:], s, ErrUnknownForm)
}

// ParseAuxiliaryForm parses an auxiliary form token such as "causative-passive".
func ParseAuxiliaryForm(s string) (AuxiliaryForm, error) {
	return parseEnum[AuxiliaryForm](auxiliaryFormNames[:], s, ErrUnknownAuxForm)
}

// ParseAdditionalForm parses an additional form token such as "te-oku".
func ParseAdditionalForm(s string) (AdditionalForm, error) {
	return parseEnum[AdditionalForm](additionalFormNames[:], s, ErrUnknownAdditionalForm)
}

func (f BaseForm) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownForm, uint8(f))
	}
	return []byte(f.String()), nil
}

func (f *BaseForm) UnmarshalText(b []byte) error {
	v, err := ParseBaseForm(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f AuxiliaryForm) MarshalText() ([]byte, error) {
	if f == 0 {
		return []byte{}, nil
	}
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAuxForm, uint8(f))
	}
	return []byte(f.String()), nil
}

func (f *AuxiliaryForm) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*f = 0
		return nil
	}
	v, err := ParseAuxiliaryForm(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f AdditionalForm) MarshalText() ([]byte, error) {
	if f == 0 {
		return []byte{}, nil
	}
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAdditionalForm, uint8(f))
	}
	return []byte(f.String()), nil
}

func (f *AdditionalForm) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*f = 0
		return nil
	}
	v, err := ParseAdditionalForm(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// BaseForms lists every base form in declaration order.
func BaseForms() []BaseForm {
	out := make([]BaseForm, 0, len(baseFormNames)-1)
	for f := Stem; f <= Tai; f++ {
		out = append(out, f)
	}
	return out
}

// AuxiliaryForms lists every auxiliary form in declaration order.
func AuxiliaryForms() []AuxiliaryForm {
	out := make([]AuxiliaryForm, 0, len(auxiliaryFormNames)-1)
	for f := Potential; f <= Tagaru; f++ {
		out = append(out, f)
	}
	return out
}

// AdditionalForms lists every additional form in declaration order.
func AdditionalForms() []AdditionalForm {
	out := make([]AdditionalForm, 0, len(additionalFormNames)-1)
	for f := Continuous; f <= TeShimau; f++ {
		out = append(out, f)
	}
	return out
}

// Form describes a requested inflection. Layers are applied in the
// fixed order Auxiliary, Additional, Base; Negative, Polite and Short
// modify whichever layers support them.
type Form struct {
	Base       BaseForm       `json:"base" yaml:"base"`
	Auxiliary  AuxiliaryForm  `json:"auxiliary,omitempty" yaml:"auxiliary,omitempty"`
	Additional AdditionalForm `json:"additional,omitempty" yaml:"additional,omitempty"`
	Negative   bool           `json:"negative,omitempty" yaml:"negative,omitempty"`
	Polite     bool           `json:"polite,omitempty" yaml:"polite,omitempty"`
	Short      bool           `json:"short,omitempty" yaml:"short,omitempty"`
}

// Key returns the canonical comma-separated token form of f, e.g.
// "potential,continuous,present,negative,polite,short".
func (f Form) Key() string {
	tokens := make([]string, 0, 6)
	if f.Auxiliary != 0 {
		tokens = append(tokens, f.Auxiliary.String())
	}
	if f.Additional != 0 {
		tokens = append(tokens, f.Additional.String())
	}
	tokens = append(tokens, f.Base.String())
	if f.Negative {
		tokens = append(tokens, tokenNegative)
	}
	if f.Polite {
		tokens = append(tokens, tokenPolite)
	}
	if f.Short {
		tokens = append(tokens, tokenShort)
	}
	return strings.Join(tokens, ",")
}

func (f Form) String() string {
	return f.Key()
}

// ParseForm parses a comma-separated list of form tokens in any order.
// Exactly one base form is required; at most one auxiliary and one
// additional form may be given.
func ParseForm(s string) (Form, error) {
	var f Form
	for _, tok := range strings.Split(s, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		switch tok {
		case tokenNegative:
			f.Negative = true
			continue
		case tokenPolite:
			f.Polite = true
			continue
		case tokenShort:
			f.Short = true
			continue
		}
		if b, err := ParseBaseForm(tok); err == nil {
			if f.Base != 0 {
				return Form{}, fmt.Errorf("%w: more than one base form in %q", ErrUnknownForm, s)
			}
			f.Base = b
			continue
		}
		if a, err := ParseAuxiliaryForm(tok); err == nil {
			if f.Auxiliary != 0 {
				return Form{}, fmt.Errorf("%w: more than one auxiliary form in %q", ErrUnknownAuxForm, s)
			}
			f.Auxiliary = a
			continue
		}
		if a, err := ParseAdditionalForm(tok); err == nil {
			if f.Additional != 0 {
				return Form{}, fmt.Errorf("%w: more than one additional form in %q", ErrUnknownAdditionalForm, s)
			}
			f.Additional = a
			continue
		}
		return Form{}, fmt.Errorf("%w: unknown token %q", ErrUnknownForm, tok)
	}
	if f.Base == 0 {
		return Form{}, fmt.Errorf("%w: no base form in %q", ErrUnknownForm, s)
	}
	return f, nil
}
