package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/vaughan0/go-ini"
)

const defaultPreset = "variant1"

type config struct {
	preset      string
	history     string
	multipliers bool
	overrides   map[rune]int
}

// flagValues holds the command-line settings that override the config file.
type flagValues struct {
	configFile  string
	preset      string
	history     string
	multipliers bool
}

// resolveConfig loads the file named by -config, or else defaultFile if it
// exists, and then applies the flags on top of it.
func resolveConfig(f flagValues, defaultFile string) (config, error) {
	var (
		cfg config
		err error
	)
	switch {
	case f.configFile != "":
		cfg, err = loadConfigFile(f.configFile, false)
	case defaultFile != "":
		cfg, err = loadConfigFile(defaultFile, true)
	default:
		cfg = config{preset: defaultPreset}
	}
	if err != nil {
		return config{}, err
	}
	if f.preset != "" {
		cfg.preset = f.preset
	}
	if f.history != "" {
		cfg.history = f.history
	}
	if f.multipliers {
		cfg.multipliers = true
	}
	return cfg, nil
}

// defaultConfigFile returns ~/.letterscore.ini, or "" if there is no
// home directory to look in.
func defaultConfigFile() string {
	u, err := user.Current()
	if err != nil || u.HomeDir == "" {
		return ""
	}
	return filepath.Join(u.HomeDir, ".letterscore.ini")
}

// loadConfigFile reads the named config. If the file does not exist and
// optional is set, the default config is returned.
func loadConfigFile(name string, optional bool) (config, error) {
	f, err := os.Open(name)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return config{preset: defaultPreset}, nil
		}
		return config{}, err
	}
	defer f.Close()
	cfg, err := loadConfig(f)
	if err != nil {
		return config{}, fmt.Errorf("error loading config (%s): %s", name, err)
	}
	return cfg, nil
}

func loadConfig(r io.Reader) (config, error) {
	file, err := ini.Load(r)
	if err != nil {
		return config{}, err
	}
	cfg := config{preset: defaultPreset}
	if preset, ok := file.Get("letterscore", "preset"); ok && preset != "" {
		cfg.preset = preset
	}
	cfg.history, _ = file.Get("letterscore", "history")
	if v, ok := file.Get("letterscore", "multipliers"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return config{}, fmt.Errorf("bad multipliers setting %q", v)
		}
		cfg.multipliers = b
	}

	for k, v := range file.Section("letters") {
		letter, size := utf8.DecodeRuneInString(k)
		if size != len(k) || letter < 'a' || letter > 'z' {
			return config{}, fmt.Errorf("bad letter %q in [letters]", k)
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return config{}, fmt.Errorf("bad value %q for letter %q", v, k)
		}
		if cfg.overrides == nil {
			cfg.overrides = make(map[rune]int)
		}
		cfg.overrides[letter] = n
	}
	return cfg, nil
}

func (cfg config) scorer() (*Scorer, error) {
	s, err := lookupPreset(cfg.preset)
	if err != nil {
		return nil, err
	}
	return s.withOverrides(cfg.overrides), nil
}
