package katsuyou

import "errors"

// Paradigm returns the forms a Table covers, in order: every base form
// plain/negative × plain/polite, then each auxiliary and additional
// form in the present tense, then the short variants that differ from
// their full form.
func Paradigm() []Form {
	var out []Form
	for _, b := range BaseForms() {
		for _, polite := range []bool{false, true} {
			for _, negative := range []bool{false, true} {
				out = append(out, Form{Base: b, Negative: negative, Polite: polite})
			}
		}
	}
	out = append(out, Form{Base: BaConditional, Polite: true, Short: true})

	for _, a := range AuxiliaryForms() {
		for _, negative := range []bool{false, true} {
			out = append(out, Form{Base: Present, Auxiliary: a, Negative: negative})
		}
		if a != Tagaru {
			out = append(out, Form{Base: Present, Auxiliary: a, Short: true})
		}
	}
	for _, a := range AdditionalForms() {
		for _, negative := range []bool{false, true} {
			out = append(out, Form{Base: Present, Additional: a, Negative: negative})
		}
		switch a {
		case Continuous, TeOku, TeShimau:
			out = append(out, Form{Base: Present, Additional: a, Short: true})
		}
	}
	return out
}

// inflectionTable computes the full paradigm of e. Forms the verb has
// no register for are skipped; any other error aborts the table.
func inflectionTable(e *Entry) (*Table, error) {
	forms := Paradigm()
	outcomes, err := ConjugateVerbs(e.Raw(), forms)
	if err != nil {
		return nil, err
	}

	t := &Table{Entry: e, Cells: make([]Cell, 0, len(outcomes))}
	full := make(map[Form]string, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			if noRegister(o.Err) {
				continue
			}
			return nil, o.Err
		}
		// A short variant identical to its full form (short potential of
		// a Godan verb) adds nothing.
		if o.Form.Short {
			long := o.Form
			long.Short = false
			if s, ok := full[long]; ok && s == o.Result.String() {
				continue
			}
		} else {
			full[o.Form] = o.Result.String()
		}
		t.Cells = append(t.Cells, Cell{Form: o.Form, Result: o.Result})
	}
	return t, nil
}

func noRegister(err error) bool {
	return errors.Is(err, ErrNoNegativeForm) || errors.Is(err, ErrNoPoliteForm)
}
