package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/vaughan0/go-ini"
)

// A corpus is two groups of field-name orderings: those whose records
// loaded back correctly (passed) and those that did not (failed).
type corpus struct {
	passed []string
	failed []string
}

// defaultCorpus returns the embedded orderings. The extended corpus
// includes the second batch of examples after the original ones.
func defaultCorpus(extended bool) corpus {
	c := corpus{
		passed: append([]string(nil), passedOriginal...),
		failed: append([]string(nil), failedOriginal...),
	}
	if extended {
		c.passed = append(c.passed, passedNew...)
		c.failed = append(c.failed, failedNew...)
	}
	return c
}

func loadCorpusFile(name string) (corpus, error) {
	f, err := os.Open(name)
	if err != nil {
		return corpus{}, err
	}
	defer f.Close()
	c, err := loadCorpus(f)
	if err != nil {
		return corpus{}, fmt.Errorf("error loading corpus (%s): %s", name, err)
	}
	return c, nil
}

// loadCorpus reads an ini file with [passed] and [failed] sections.
// Each value is one sequence; keys only set the order. A repeated key
// replaces the earlier sequence.
func loadCorpus(r io.Reader) (corpus, error) {
	file, err := ini.Load(r)
	if err != nil {
		return corpus{}, err
	}
	c := corpus{
		passed: sectionValues(file.Section("passed")),
		failed: sectionValues(file.Section("failed")),
	}
	if len(c.passed) == 0 {
		return corpus{}, errors.New("no sequences in [passed]")
	}
	if len(c.failed) == 0 {
		return corpus{}, errors.New("no sequences in [failed]")
	}
	return c, nil
}

// keyLess orders numeric keys by value, ahead of any other keys,
// which sort as strings.
func keyLess(k0, k1 string) bool {
	n0, err0 := strconv.Atoi(k0)
	n1, err1 := strconv.Atoi(k1)
	switch {
	case err0 == nil && err1 == nil:
		return n0 < n1
	case err0 == nil:
		return true
	case err1 == nil:
		return false
	}
	return k0 < k1
}

func sectionValues(s ini.Section) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })
	var vals []string
	for _, k := range keys {
		if v := s[k]; len(tokens(v)) > 0 {
			vals = append(vals, v)
		}
	}
	return vals
}

var passedOriginal = []string{
	"id width height min_word_length tiles usable_tiles multipliers cumulative_score searched words evolved_via evolved_from cleaned",
	"tiles width evolved_from searched usable_tiles height cumulative_score min_word_length multipliers id cleaned evolved_via words",
	"min_word_length width multipliers cleaned words tiles evolved_via cumulative_score id usable_tiles height evolved_from searched",
	"width id cleaned usable_tiles evolved_from min_word_length multipliers tiles words evolved_via searched height cumulative_score",
	"multipliers id cleaned evolved_from width tiles evolved_via height searched words cumulative_score usable_tiles min_word_length",
	"id cumulative_score evolved_via usable_tiles cleaned searched multipliers min_word_length evolved_from tiles words height width",
	"tiles height multipliers usable_tiles evolved_from min_word_length id searched cumulative_score evolved_via words width cleaned",
	"usable_tiles height tiles evolved_from searched cleaned words width id min_word_length multipliers cumulative_score evolved_via",
}

var failedOriginal = []string{
	"words searched cumulative_score multipliers tiles min_word_length evolved_via evolved_from height width usable_tiles id cleaned",
	"usable_tiles searched evolved_from evolved_via cumulative_score width words min_word_length id height cleaned multipliers tiles",
	"cumulative_score id tiles words evolved_from cleaned searched evolved_via width height multipliers min_word_length usable_tiles",
	"cumulative_score width evolved_from words evolved_via usable_tiles cleaned id min_word_length tiles height searched multipliers",
	"height multipliers words cleaned evolved_from usable_tiles width cumulative_score evolved_via searched id tiles min_word_length",
	"cleaned cumulative_score evolved_from evolved_via height min_word_length multipliers id usable_tiles searched tiles width words",
	"height words width evolved_via cleaned multipliers searched evolved_from tiles id usable_tiles min_word_length cumulative_score",
	"evolved_via multipliers tiles min_word_length id height width searched evolved_from cumulative_score words usable_tiles cleaned",
}

var passedNew = []string{
	"tiles cleaned usable_tiles evolved_via height evolved_from multipliers min_word_length searched cumulative_score id words width",
	"height tiles width min_word_length multipliers cleaned usable_tiles cumulative_score evolved_via words searched id evolved_from",
	"usable_tiles width multipliers min_word_length cleaned searched id height tiles words cumulative_score evolved_via evolved_from",
	"height id tiles evolved_from cleaned evolved_via usable_tiles width min_word_length multipliers words searched cumulative_score",
	"usable_tiles id evolved_via cumulative_score cleaned width height min_word_length searched tiles multipliers evolved_from words",
}

var failedNew = []string{
	"width usable_tiles words searched height evolved_from evolved_via min_word_length id cumulative_score multipliers cleaned tiles",
	"words cumulative_score id cleaned multipliers tiles width evolved_via searched min_word_length usable_tiles evolved_from height",
	"words evolved_via min_word_length searched width usable_tiles cleaned cumulative_score height multipliers id evolved_from tiles",
	"searched cumulative_score evolved_from width tiles words min_word_length height cleaned id multipliers usable_tiles evolved_via",
	"cumulative_score tiles evolved_via width height min_word_length cleaned searched multipliers words id evolved_from usable_tiles",
}
