package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/chzyer/readline"
)

const (
	wordPrompt        = "Word plz: "
	extrasPrompt      = "Extras plz: "
	multipliersPrompt = "Multipliers plz: "
)

// lineReader is the part of *readline.Instance used by a session.
type lineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

type session struct {
	in     lineReader
	out    io.Writer
	errOut io.Writer
	scorer *Scorer

	// Ask how many multiplier tiles the word used.
	multipliers bool
}

// run reads words and extras until the input ends or is interrupted.
// Scoring errors are reported and the loop moves on to the next word.
func (s *session) run() error {
	for {
		word, ok, err := s.prompt(wordPrompt)
		if err != nil || !ok {
			return err
		}
		extras, ok, err := s.prompt(extrasPrompt)
		if err != nil || !ok {
			return err
		}

		var n int
		if s.multipliers {
			line, ok, err := s.prompt(multipliersPrompt)
			if err != nil || !ok {
				return err
			}
			n, err = parseMultipliers(line)
			if err != nil {
				fmt.Fprintln(s.errOut, "error:", err)
				continue
			}
		}

		sc, err := s.scorer.ScoreWithMultipliers(word, extras, n)
		if err != nil {
			fmt.Fprintln(s.errOut, "error:", err)
			continue
		}
		for _, line := range sc.lines() {
			fmt.Fprintln(s.out, line)
		}
	}
}

// prompt reads one line. It reports ok=false when the session should end.
func (s *session) prompt(p string) (line string, ok bool, err error) {
	s.in.SetPrompt(p)
	line, err = s.in.Readline()
	switch err {
	case nil:
		return line, true, nil
	case io.EOF, readline.ErrInterrupt:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("error reading input: %w", err)
	}
}

// parseMultipliers reads a count of multiplier tiles. Blank means none.
func parseMultipliers(line string) (int, error) {
	if line == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("bad multiplier count %q", line)
	}
	return n, nil
}
