// Package rest exposes the conjugation engine and the verb lexicon as a
// JSON REST API.
//
// Endpoints:
//
//	GET  /api/conjugate?verb=<key>&form=<tokens>
//	GET  /api/conjugate?kana=<kana>&kanji=<kanji>&class=<class>&form=<tokens>
//	POST /api/conjugate   body: {"verb":{...},"forms":["present,negative",...]}
//	GET  /api/table?verb=<key>
//	GET  /api/identify?form=<surface>
//	GET  /api/verbs
//	GET  /api/forms
//	GET  /api/languages
//	GET  /health
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/cours-de-japonais/katsuyou"
)

// maxBodyBytes bounds POST bodies.
const maxBodyBytes = 1 << 20

// Codes for malformed requests that never reach the engine.
const (
	codeBadRequest    katsuyou.Code = "BAD_REQUEST"
	codeBatchTooLarge katsuyou.Code = "BATCH_TOO_LARGE"
)

// Handler serves the REST API.
type Handler struct {
	conj     *katsuyou.Conjugator
	tables   *cache.Cache
	log      *zap.Logger
	maxBatch int
}

// NewHandler returns a Handler over conj. tables caches paradigm
// responses and may be nil to disable caching.
func NewHandler(conj *katsuyou.Conjugator, tables *cache.Cache, logger *zap.Logger, maxBatch int) *Handler {
	return &Handler{conj: conj, tables: tables, log: logger, maxBatch: maxBatch}
}

// Routes returns the API mux.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/conjugate", h.handleConjugate)
	mux.HandleFunc("POST /api/conjugate", h.handleConjugateBatch)
	mux.HandleFunc("GET /api/table", h.handleTable)
	mux.HandleFunc("GET /api/identify", h.handleIdentify)
	mux.HandleFunc("GET /api/verbs", h.handleVerbs)
	mux.HandleFunc("GET /api/forms", h.handleForms)
	mux.HandleFunc("GET /api/languages", h.handleLanguages)
	mux.HandleFunc("GET /health", h.handleHealth)
	return mux
}

// ---- helpers -------------------------------------------------------------

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Warn("encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code katsuyou.Code, msg string) {
	h.writeJSON(w, status, errorResponse{Error: errorJSON{Code: code, Message: msg}})
}

// writeEngineError maps an engine or lexicon error to a status code.
func (h *Handler) writeEngineError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, katsuyou.ErrUnknownVerb):
		status = http.StatusNotFound
	case katsuyou.IsRequestError(err):
		status = http.StatusBadRequest
	default:
		h.log.Error("conjugation failed", zap.Error(err))
	}
	h.writeError(w, status, katsuyou.ErrorCode(err), err.Error())
}

// rawVerb converts the wire verb to engine input.
func rawVerb(v verbJSON) (katsuyou.RawVerb, error) {
	class, err := katsuyou.ParseVerbClass(v.Class)
	if err != nil {
		return katsuyou.RawVerb{}, err
	}
	return katsuyou.RawVerb{
		Kana:  katsuyou.NormalizeKey(v.Kana),
		Kanji: v.Kanji,
		Class: class,
	}, nil
}

// verbFromQuery reads either ?verb= (lexicon) or ?kana=&kanji=&class=.
func (h *Handler) verbFromQuery(r *http.Request) (katsuyou.RawVerb, error) {
	q := r.URL.Query()
	if key := q.Get("verb"); key != "" {
		e := h.conj.Verb(key)
		if e == nil {
			return katsuyou.RawVerb{}, fmt.Errorf("%w: %q", katsuyou.ErrUnknownVerb, key)
		}
		return e.Raw(), nil
	}
	return rawVerb(verbJSON{Kana: q.Get("kana"), Kanji: q.Get("kanji"), Class: q.Get("class")})
}

// ---- handlers ------------------------------------------------------------

func (h *Handler) handleConjugate(w http.ResponseWriter, r *http.Request) {
	formKey := r.URL.Query().Get("form")
	if formKey == "" {
		h.writeError(w, http.StatusBadRequest, codeBadRequest, "missing 'form' query parameter")
		return
	}
	raw, err := h.verbFromQuery(r)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	f, err := katsuyou.ParseForm(formKey)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	res, err := katsuyou.ConjugateVerb(raw, f)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, conjugateResponse{
		Verb:   toVerbJSON(raw),
		Result: toResultJSON(f.Key(), res, nil),
	})
}

func (h *Handler) handleConjugateBatch(w http.ResponseWriter, r *http.Request) {
	var body batchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil || len(body.Forms) == 0 {
		h.writeError(w, http.StatusBadRequest, codeBadRequest, "body must be JSON with a verb and a non-empty 'forms' list")
		return
	}
	if len(body.Forms) > h.maxBatch {
		h.writeError(w, http.StatusRequestEntityTooLarge, codeBatchTooLarge,
			fmt.Sprintf("at most %d forms per request (got %d)", h.maxBatch, len(body.Forms)))
		return
	}
	raw, err := rawVerb(body.Verb)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	// Unparseable tokens fail their own slot only.
	results := make([]resultJSON, len(body.Forms))
	forms := make([]katsuyou.Form, 0, len(body.Forms))
	slots := make([]int, 0, len(body.Forms))
	for i, key := range body.Forms {
		f, err := katsuyou.ParseForm(key)
		if err != nil {
			results[i] = toResultJSON(key, katsuyou.Result{}, err)
			continue
		}
		forms = append(forms, f)
		slots = append(slots, i)
	}

	outcomes, err := katsuyou.ConjugateVerbs(raw, forms)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	for j, o := range outcomes {
		results[slots[j]] = toResultJSON(o.Form.Key(), o.Result, o.Err)
	}
	h.writeJSON(w, http.StatusOK, batchResponse{Verb: toVerbJSON(raw), Results: results})
}

func (h *Handler) handleTable(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("verb")
	if key == "" {
		h.writeError(w, http.StatusBadRequest, codeBadRequest, "missing 'verb' query parameter")
		return
	}
	e := h.conj.Verb(key)
	if e == nil {
		h.writeEngineError(w, fmt.Errorf("%w: %q", katsuyou.ErrUnknownVerb, key))
		return
	}

	cacheKey := "table:" + e.Key
	if h.tables != nil {
		if v, ok := h.tables.Get(cacheKey); ok {
			w.Header().Set("X-Cache", "HIT")
			h.writeJSON(w, http.StatusOK, v)
			return
		}
	}

	t, err := h.conj.Table(e.Key)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	resp := tableResponse{Verb: toEntryJSON(e), Cells: make([]resultJSON, 0, len(t.Cells))}
	for _, c := range t.Cells {
		resp.Cells = append(resp.Cells, toResultJSON(c.Form.Key(), c.Result, nil))
	}
	if h.tables != nil {
		h.tables.SetDefault(cacheKey, resp)
		w.Header().Set("X-Cache", "MISS")
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleIdentify(w http.ResponseWriter, r *http.Request) {
	form := r.URL.Query().Get("form")
	if form == "" {
		h.writeError(w, http.StatusBadRequest, codeBadRequest, "missing 'form' query parameter")
		return
	}
	analyses := h.conj.Identify(form)
	out := make([]analysisJSON, 0, len(analyses))
	for _, a := range analyses {
		out = append(out, analysisJSON{
			Verb:  toEntryJSON(a.Entry),
			Form:  a.Form.Key(),
			Kana:  a.Result.Kana,
			Kanji: a.Result.Kanji,
		})
	}
	status := http.StatusOK
	if len(out) == 0 {
		status = http.StatusNotFound
	}
	h.writeJSON(w, status, identifyResponse{Form: form, Analyses: out})
}

func (h *Handler) handleVerbs(w http.ResponseWriter, r *http.Request) {
	entries := h.conj.Verbs()
	out := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryJSON(e))
	}
	h.writeJSON(w, http.StatusOK, verbsResponse{Verbs: out})
}

func (h *Handler) handleForms(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, formCatalogue())
}

func (h *Handler) handleLanguages(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, languagesResponse{Languages: h.conj.Languages()})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Verbs: h.conj.Len()})
}

// formCatalogue lists every token ParseForm accepts, grouped by layer.
func formCatalogue() formsResponse {
	var out formsResponse
	for _, b := range katsuyou.BaseForms() {
		out.Base = append(out.Base, b.String())
	}
	for _, a := range katsuyou.AuxiliaryForms() {
		out.Auxiliary = append(out.Auxiliary, a.String())
	}
	for _, a := range katsuyou.AdditionalForms() {
		out.Additional = append(out.Additional, a.String())
	}
	out.Flags = []string{"negative", "polite", "short"}
	return out
}
