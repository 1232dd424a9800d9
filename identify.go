package katsuyou

// Identify returns every lexicon verb and form whose inflection is
// surface, matched on either channel after kana normalization. Only
// the forms of Paradigm are recognized; surface must be a single
// inflected verb, not free text.
func (c *Conjugator) Identify(surface string) []Analysis {
	c.formsOnce.Do(c.buildFormIndex)

	found := c.forms[NormalizeKey(surface)]
	if len(found) == 0 {
		return nil
	}
	out := make([]Analysis, len(found))
	copy(out, found)
	return out
}

// buildFormIndex fills c.forms from the table of every entry, in key
// order so that results are stable.
func (c *Conjugator) buildFormIndex() {
	c.forms = make(map[string][]Analysis)
	for _, e := range c.Verbs() {
		t, err := inflectionTable(e)
		if err != nil {
			continue
		}
		for _, cell := range t.Cells {
			a := Analysis{Entry: e, Form: cell.Form, Result: cell.Result}
			var kana string
			if cell.Result.Kana != nil {
				kana = NormalizeKey(*cell.Result.Kana)
				c.forms[kana] = append(c.forms[kana], a)
			}
			if cell.Result.Kanji != nil {
				if k := NormalizeKey(*cell.Result.Kanji); k != kana {
					c.forms[k] = append(c.forms[k], a)
				}
			}
		}
	}
}
