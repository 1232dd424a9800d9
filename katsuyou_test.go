package katsuyou

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataDir = "data"

func newConjugator(t *testing.T) *Conjugator {
	t.Helper()
	c, err := New(dataDir)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	c := newConjugator(t)
	assert.Equal(t, 35, c.Len())
	assert.Equal(t, map[string]string{"en": "English", "fr": "Français"}, c.Languages())
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nowhere"))
	assert.Error(t, err)
}

func TestNewBadLine(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "verbs.txt"),
		[]byte("! comment\n見る|みる|ichidan\n書く|かく|ichidan\n"), 0o644))

	_, err := New(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAVerb)
	assert.Contains(t, err.Error(), "verbs.txt:3")
}

func TestVerbLookup(t *testing.T) {
	c := newConjugator(t)

	e := c.Verb("食べる")
	require.NotNil(t, e)
	assert.Equal(t, "たべる", e.Kana)
	assert.Equal(t, Ichidan, e.Class)
	assert.Same(t, e, c.Verb("たべる"))
	assert.Same(t, e, c.Verb(" タベル "))

	// Shared reading: the first loaded entry wins.
	assert.Equal(t, "変える", c.Verb("かえる").Kanji)
	assert.Equal(t, "帰る", c.Verb("帰る").Kanji)

	kana := c.Verb("いらっしゃる")
	require.NotNil(t, kana)
	assert.Equal(t, "いらっしゃる", kana.Key)
	assert.Empty(t, kana.Kanji)

	assert.Nil(t, c.Verb("走る"))
}

func TestVerbsSorted(t *testing.T) {
	c := newConjugator(t)
	vs := c.Verbs()
	require.Len(t, vs, c.Len())
	for i := 1; i < len(vs); i++ {
		assert.Less(t, vs[i-1].Key, vs[i].Key)
	}
}

func TestEntryGloss(t *testing.T) {
	c := newConjugator(t)
	e := c.Verb("食べる")
	require.NotNil(t, e)
	assert.Equal(t, "to eat", e.Gloss("en"))
	assert.Equal(t, "manger", e.Gloss("fr"))
	assert.Empty(t, e.Gloss("de"))
	assert.Equal(t, "食べる (たべる)", e.String())

	g := e.Glosses()
	g["en"] = "changed"
	assert.Equal(t, "to eat", e.Gloss("en"))
}

func TestConjugatorConjugate(t *testing.T) {
	c := newConjugator(t)

	r, err := c.Conjugate("見る", Form{Base: Past})
	require.NoError(t, err)
	assert.Equal(t, "見た (みた)", r.String())

	_, err = c.Conjugate("走る", Form{Base: Past})
	assert.ErrorIs(t, err, ErrUnknownVerb)
	assert.Equal(t, CodeUnknownVerb, ErrorCode(err))
}

func TestTable(t *testing.T) {
	c := newConjugator(t)

	tbl, err := c.Table("来る")
	require.NoError(t, err)
	assert.Equal(t, "来る", tbl.Entry.Kanji)

	cell, ok := tbl.Cell(Form{Base: Present, Negative: true})
	require.True(t, ok)
	assert.Equal(t, "こない", cell.Result.KanaString())
	assert.Equal(t, "来ない", cell.Result.KanjiString())

	cell, ok = tbl.Cell(Form{Base: Imperative})
	require.True(t, ok)
	assert.Equal(t, "こい", cell.Result.KanaString())

	_, ok = tbl.Cell(Form{Base: Stem, Negative: true})
	assert.False(t, ok, "forms without a register are left out")

	_, err = c.Table("走る")
	assert.ErrorIs(t, err, ErrUnknownVerb)
}

func TestTableSkipsRedundantShort(t *testing.T) {
	c := newConjugator(t)

	kaku, err := c.Table("書く")
	require.NoError(t, err)
	_, ok := kaku.Cell(Form{Base: Present, Auxiliary: Potential, Short: true})
	assert.False(t, ok)

	taberu, err := c.Table("食べる")
	require.NoError(t, err)
	cell, ok := taberu.Cell(Form{Base: Present, Auxiliary: Potential, Short: true})
	require.True(t, ok)
	assert.Equal(t, "たべれる", cell.Result.KanaString())
}

func TestParadigm(t *testing.T) {
	forms := Paradigm()
	seen := make(map[Form]bool, len(forms))
	for _, f := range forms {
		assert.False(t, seen[f], "duplicate %s", f)
		seen[f] = true
		assert.True(t, f.Base.IsValid())
	}
	assert.True(t, seen[Form{Base: BaConditional, Polite: true, Short: true}])
	assert.True(t, seen[Form{Base: Present, Additional: TeShimau, Short: true}])
	assert.False(t, seen[Form{Base: Present, Auxiliary: Tagaru, Short: true}])
}

func TestIdentify(t *testing.T) {
	c := newConjugator(t)

	found := c.Identify("行った")
	require.NotEmpty(t, found)
	assert.Equal(t, "行く", found[0].Entry.Kanji)
	assert.Equal(t, Form{Base: Past}, found[0].Form)

	byKana := c.Identify("イッタ")
	require.NotEmpty(t, byKana)
	assert.Equal(t, "行く", byKana[0].Entry.Kanji)

	var forms []string
	for _, a := range c.Identify("できない") {
		forms = append(forms, a.Entry.Key+" "+a.Form.Key())
	}
	assert.Contains(t, forms, "為る potential,present,negative")

	assert.Nil(t, c.Identify("走った"))
}

func TestNewBadGlossFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "verbs.txt"), []byte("見る|みる|ichidan\n"), 0o644))
	long := "Deutsch\n見る:" + strings.Repeat("x", bufio.MaxScanTokenSize) + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "glosses.de"), []byte(long), 0o644))

	_, err := New(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
	assert.Contains(t, err.Error(), "glosses.de")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "glosses.de"), []byte("! empty\n"), 0o644))
	_, err = New(dir)
	assert.ErrorContains(t, err, "no language name")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "glosses.de"), []byte("Deutsch\n見る:sehen\n"), 0o644))
	c, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"de": "Deutsch"}, c.Languages())
	assert.Equal(t, "sehen", c.Verb("見る").Gloss("de"))
}
