package katsuyou

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// loadLexicon reads data/verbs.txt into c.entries, then the gloss files.
// A malformed line fails the whole load with its line number.
func (c *Conjugator) loadLexicon(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "verbs.txt"))
	if err != nil {
		return fmt.Errorf("open verbs.txt: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		e, err := newEntry(line)
		if err != nil {
			return fmt.Errorf("verbs.txt:%d: %w", n, err)
		}
		c.add(e)
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return c.loadGlosses(dataDir)
}

// loadGlosses reads every glosses.XX file in dataDir, XX being the
// language code.
func (c *Conjugator) loadGlosses(dataDir string) error {
	matches, err := filepath.Glob(filepath.Join(dataDir, "glosses.*"))
	if err != nil {
		return err
	}
	for _, path := range matches {
		lang := strings.TrimPrefix(filepath.Ext(path), ".")
		if lang == "" {
			continue
		}
		if err := c.loadGlossFile(path, lang); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

// loadGlossFile reads a single glosses.XX file.
// Format: the first non-comment line is the language name, then one
// "key:gloss" line per verb. Keys not in the lexicon are ignored.
// Nothing is registered unless the whole file reads cleanly.
func (c *Conjugator) loadGlossFile(path, lang string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var (
		name    string
		glosses = make(map[*Entry]string)
	)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if name == "" {
			name = line
			continue
		}
		key, gloss, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if e := c.entries[NormalizeKey(key)]; e != nil {
			glosses[e] = strings.TrimSpace(gloss)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("no language name")
	}

	c.languages[lang] = name
	for e, g := range glosses {
		e.AddGloss(lang, g)
	}
	return nil
}
