package main

import (
	"flag"
	"log"
	"strings"

	"github.com/chzyer/readline"
)

func main() {
	log.SetFlags(0)
	var f flagValues
	flag.StringVar(&f.configFile, "config", "", "Read settings from this ini `file` (default ~/.letterscore.ini)")
	flag.StringVar(&f.preset, "preset", "", "Scoring preset: "+strings.Join(presetNames(), " or "))
	flag.StringVar(&f.history, "history", "", "Save input history to this `file`")
	flag.BoolVar(&f.multipliers, "multipliers", false, "Also ask how many multiplier tiles each word used")
	flag.Parse()

	cfg, err := resolveConfig(f, defaultConfigFile())
	if err != nil {
		log.Fatal(err)
	}
	scorer, err := cfg.scorer()
	if err != nil {
		log.Fatal(err)
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:      wordPrompt,
		HistoryFile: cfg.history,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	s := &session{
		in:          l,
		out:         l.Stdout(),
		errOut:      l.Stderr(),
		scorer:      scorer,
		multipliers: cfg.multipliers,
	}
	if err := s.run(); err != nil {
		l.Close()
		log.Fatal(err)
	}
}
