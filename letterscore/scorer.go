package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// letterValues maps a lowercase letter to its point value.
type letterValues map[rune]int

// The values in these tables are best guesses from watching the game
// (a solver once reported w as 5, another time as 4). Neither table is
// known to be right, so both are kept.
var (
	variant1Values = letterValues{
		'a': 1, 'b': 4, 'c': 4, 'd': 3, 'e': 1, 'f': 5, 'g': 3,
		'h': 5, 'i': 1, 'j': 9, 'k': 6, 'l': 2, 'm': 4, 'n': 2,
		'o': 1, 'p': 4, 'q': 12, 'r': 2, 's': 1, 't': 2, 'u': 1,
		'v': 5, 'w': 5, 'x': 9, 'y': 5, 'z': 11,
	}
	// v is 5 here too; only w, x and z were ever in doubt.
	variant2Values = letterValues{
		'a': 1, 'b': 4, 'c': 4, 'd': 3, 'e': 1, 'f': 5, 'g': 3,
		'h': 5, 'i': 1, 'j': 9, 'k': 6, 'l': 2, 'm': 4, 'n': 2,
		'o': 1, 'p': 4, 'q': 12, 'r': 2, 's': 1, 't': 2, 'u': 1,
		'v': 5, 'w': 4, 'x': 8, 'y': 5, 'z': 10,
	}
)

type formula int

const (
	// (base + extra) * len(word)
	sumThenMultiply formula = iota
	// base*len(word) + extra*len(word)
	multiplyEach
)

// A Scorer turns a word and its extras into a score.
type Scorer struct {
	Name    string
	Values  letterValues
	Formula formula
}

var presets = map[string]*Scorer{
	"variant1": {Name: "variant1", Values: variant1Values, Formula: sumThenMultiply},
	"variant2": {Name: "variant2", Values: variant2Values, Formula: multiplyEach},
}

func presetNames() []string {
	var names []string
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupPreset(name string) (*Scorer, error) {
	s, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (known presets: %s)",
			name, strings.Join(presetNames(), ", "))
	}
	return s, nil
}

// withOverrides returns a copy of s using the given letter values in
// place of its own.
func (s *Scorer) withOverrides(overrides map[rune]int) *Scorer {
	if len(overrides) == 0 {
		return s
	}
	values := make(letterValues, len(s.Values))
	for r, v := range s.Values {
		values[r] = v
	}
	for r, v := range overrides {
		values[r] = v
	}
	return &Scorer{
		Name:    s.Name + "+custom",
		Values:  values,
		Formula: s.Formula,
	}
}

// A LookupError is returned when a letter has no value in the table.
type LookupError struct {
	Letter rune
	Field  string // "word" or "extras"
	Input  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no value for letter %q in %s %q", e.Letter, e.Field, e.Input)
}

var errEmptyWord = errors.New("empty word")

func (s *Scorer) sum(field, input string) (int, error) {
	var total int
	for _, r := range input {
		v, ok := s.Values[r]
		if !ok {
			return 0, &LookupError{Letter: r, Field: field, Input: input}
		}
		total += v
	}
	return total, nil
}

// Score is the breakdown of a single scored word.
type Score struct {
	Word        string
	Extras      string
	Base        int
	Extra       int
	WordLen     int
	ExtrasLen   int
	Multipliers int // multiplier tiles used by the word
	Multiplier  int
	Total       int

	formula formula
}

var errNegativeMultipliers = errors.New("negative number of multiplier tiles")

// multiplierFor returns the factor for using n multiplier tiles.
// Each tile is worth 2x and they stack additively: none is 1x, one is
// 2x, two are 4x.
func multiplierFor(n int) int {
	if n < 1 {
		return 1
	}
	return 2 * n
}

func (s *Scorer) Score(word, extras string) (Score, error) {
	return s.ScoreWithMultipliers(word, extras, 0)
}

// ScoreWithMultipliers scores word and extras as Score does and then
// applies the multiplier for n multiplier tiles.
func (s *Scorer) ScoreWithMultipliers(word, extras string, n int) (Score, error) {
	if word == "" {
		return Score{}, errEmptyWord
	}
	if n < 0 {
		return Score{}, errNegativeMultipliers
	}
	base, err := s.sum("word", word)
	if err != nil {
		return Score{}, err
	}
	extra, err := s.sum("extras", extras)
	if err != nil {
		return Score{}, err
	}
	sc := Score{
		Word:        word,
		Extras:      extras,
		Base:        base,
		Extra:       extra,
		WordLen:     len([]rune(word)),
		ExtrasLen:   len([]rune(extras)),
		Multipliers: n,
		Multiplier:  multiplierFor(n),
		formula:     s.Formula,
	}
	switch s.Formula {
	case sumThenMultiply:
		sc.Total = (sc.Base + sc.Extra) * sc.WordLen
	case multiplyEach:
		sc.Total = sc.Base*sc.WordLen + sc.Extra*sc.WordLen
	default:
		panic(fmt.Sprintf("bad formula %d", s.Formula))
	}
	sc.Total *= sc.Multiplier
	return sc, nil
}

func (sc Score) lines() []string {
	var expr string
	switch sc.formula {
	case multiplyEach:
		expr = fmt.Sprintf("(%d * %d) + (%d * %d)", sc.Base, sc.WordLen, sc.Extra, sc.WordLen)
	default:
		expr = fmt.Sprintf("(%d + %d) * %d", sc.Base, sc.Extra, sc.WordLen)
	}
	if sc.Multipliers > 0 {
		if sc.formula == multiplyEach {
			expr = "(" + expr + ")"
		}
		expr = fmt.Sprintf("%s * %d", expr, sc.Multiplier)
	}
	return []string{
		fmt.Sprintf("  Base = %d long ; extras = %d long", sc.WordLen, sc.ExtrasLen),
		fmt.Sprintf("  Score = %s = %d", expr, sc.Total),
	}
}
