package rest

import (
	"github.com/cours-de-japonais/katsuyou"
)

// ---- JSON request/response types -----------------------------------------

type verbJSON struct {
	Kana  string `json:"kana,omitempty"`
	Kanji string `json:"kanji,omitempty"`
	Class string `json:"class"`
}

type entryJSON struct {
	Key     string            `json:"key"`
	Kanji   string            `json:"kanji,omitempty"`
	Kana    string            `json:"kana,omitempty"`
	Class   string            `json:"class"`
	Glosses map[string]string `json:"glosses,omitempty"`
}

type errorJSON struct {
	Code    katsuyou.Code `json:"code"`
	Message string        `json:"message"`
}

type resultJSON struct {
	Form  string     `json:"form"`
	Kana  *string    `json:"kana,omitempty"`
	Kanji *string    `json:"kanji,omitempty"`
	Error *errorJSON `json:"error,omitempty"`
}

type conjugateResponse struct {
	Verb   verbJSON   `json:"verb"`
	Result resultJSON `json:"result"`
}

type batchRequest struct {
	Verb  verbJSON `json:"verb"`
	Forms []string `json:"forms"`
}

type batchResponse struct {
	Verb    verbJSON     `json:"verb"`
	Results []resultJSON `json:"results"`
}

type tableResponse struct {
	Verb  entryJSON    `json:"verb"`
	Cells []resultJSON `json:"cells"`
}

type analysisJSON struct {
	Verb  entryJSON `json:"verb"`
	Form  string    `json:"form"`
	Kana  *string   `json:"kana,omitempty"`
	Kanji *string   `json:"kanji,omitempty"`
}

type identifyResponse struct {
	Form     string         `json:"form"`
	Analyses []analysisJSON `json:"analyses"`
}

type verbsResponse struct {
	Verbs []entryJSON `json:"verbs"`
}

type formsResponse struct {
	Base       []string `json:"base"`
	Auxiliary  []string `json:"auxiliary"`
	Additional []string `json:"additional"`
	Flags      []string `json:"flags"`
}

type languagesResponse struct {
	Languages map[string]string `json:"languages"`
}

type healthResponse struct {
	Status string `json:"status"`
	Verbs  int    `json:"verbs"`
}

type errorResponse struct {
	Error errorJSON `json:"error"`
}

// ---- conversions ---------------------------------------------------------

func toVerbJSON(raw katsuyou.RawVerb) verbJSON {
	return verbJSON{Kana: raw.Kana, Kanji: raw.Kanji, Class: raw.Class.String()}
}

func toEntryJSON(e *katsuyou.Entry) entryJSON {
	return entryJSON{
		Key:     e.Key,
		Kanji:   e.Kanji,
		Kana:    e.Kana,
		Class:   e.Class.String(),
		Glosses: e.Glosses(),
	}
}

func toResultJSON(form string, r katsuyou.Result, err error) resultJSON {
	if err != nil {
		return resultJSON{Form: form, Error: toErrorJSON(err)}
	}
	return resultJSON{Form: form, Kana: r.Kana, Kanji: r.Kanji}
}

func toErrorJSON(err error) *errorJSON {
	return &errorJSON{Code: katsuyou.ErrorCode(err), Message: err.Error()}
}
