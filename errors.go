package katsuyou

import "errors"

// Sentinel errors returned by the engine. Callers match them with
// errors.Is; returned errors usually wrap one of these with detail.
var (
	ErrNoKanaOrKanji         = errors.New("neither kana nor kanji was given")
	ErrNotAVerb              = errors.New("not recognised as a verb")
	ErrEndingMismatch        = errors.New("kana and kanji end in different characters")
	ErrUnknownVerbClass      = errors.New("verb class was not recognised")
	ErrUnknownForm           = errors.New("form name was not recognised")
	ErrUnknownAuxForm        = errors.New("auxiliary form name was not recognised")
	ErrUnknownAdditionalForm = errors.New("additional form name was not recognised")
	ErrUnknownNegativeForm   = errors.New("negative form name was not recognised")
	ErrNoPoliteForm          = errors.New("form does not have a polite form")
	ErrNoNegativeForm        = errors.New("form does not have a negative form")
	ErrInvalidIndex          = errors.New("stem row index is not in the valid range")
	ErrUnknownVerb           = errors.New("verb is not in the lexicon")
)

// Code is a stable machine-readable error identifier.
type Code string

const (
	CodeNoKanaOrKanji         Code = "NO_KANA_OR_KANJI"
	CodeNotAVerb              Code = "NOT_A_VERB"
	CodeEndingMismatch        Code = "ENDING_MISMATCH"
	CodeUnknownVerbClass      Code = "UNKNOWN_VERB_CLASS"
	CodeUnknownForm           Code = "UNKNOWN_FORM_NAME"
	CodeUnknownAuxForm        Code = "UNKNOWN_AUX_FORM_NAME"
	CodeUnknownAdditionalForm Code = "UNKNOWN_ADDITIONAL_FORM_NAME"
	CodeUnknownNegativeForm   Code = "UNKNOWN_NEGATIVE_FORM_NAME"
	CodeNoPoliteForm          Code = "NO_POLITE_FORM"
	CodeNoNegativeForm        Code = "NO_NEGATIVE_FORM"
	CodeInvalidIndex          Code = "INVALID_INDEX"
	CodeUnknownVerb           Code = "UNKNOWN_VERB"
	CodeInternal              Code = "INTERNAL"
)

var errorCodes = []struct {
	err  error
	code Code
}{
	{ErrNoKanaOrKanji, CodeNoKanaOrKanji},
	{ErrNotAVerb, CodeNotAVerb},
	{ErrEndingMismatch, CodeEndingMismatch},
	{ErrUnknownVerbClass, CodeUnknownVerbClass},
	{ErrUnknownForm, CodeUnknownForm},
	{ErrUnknownAuxForm, CodeUnknownAuxForm},
	{ErrUnknownAdditionalForm, CodeUnknownAdditionalForm},
	{ErrUnknownNegativeForm, CodeUnknownNegativeForm},
	{ErrNoPoliteForm, CodeNoPoliteForm},
	{ErrNoNegativeForm, CodeNoNegativeForm},
	{ErrInvalidIndex, CodeInvalidIndex},
	{ErrUnknownVerb, CodeUnknownVerb},
}

// ErrorCode maps err to its Code. Errors that wrap none of the package
// sentinels map to CodeInternal; nil maps to "".
func ErrorCode(err error) Code {
	if err == nil {
		return ""
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeInternal
}

// IsRequestError reports whether err was caused by the verb or form
// the caller supplied rather than by an internal fault.
func IsRequestError(err error) bool {
	switch ErrorCode(err) {
	case "", CodeInternal, CodeInvalidIndex:
		return false
	}
	return true
}
